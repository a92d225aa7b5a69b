// Copyright (C) 2025 pep-un
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package repositories

import (
	"github.com/google/uuid"
	"github.com/pep-un/Oxomium/common"
	"github.com/pep-un/Oxomium/database/models"
	"github.com/pep-un/Oxomium/shared"
)

type requirementRepository struct {
	db shared.DB
	common.Repository[uuid.UUID, models.Requirement, shared.DB]
}

func NewRequirementRepository(db shared.DB) *requirementRepository {
	return &requirementRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Requirement](db),
	}
}

func (repository *requirementRepository) ListByFramework(frameworkID uuid.UUID) ([]models.Requirement, error) {
	var requirements []models.Requirement
	err := repository.db.
		Where("framework_id = ?", frameworkID).
		Order("path").
		Find(&requirements).Error
	return requirements, err
}

func (repository *requirementRepository) ListRoots(frameworkID uuid.UUID) ([]models.Requirement, error) {
	var requirements []models.Requirement
	err := repository.db.
		Where("framework_id = ? AND parent_id IS NULL", frameworkID).
		Order("order_index").
		Find(&requirements).Error
	return requirements, err
}

func (repository *requirementRepository) ListChildren(parentID uuid.UUID) ([]models.Requirement, error) {
	var requirements []models.Requirement
	err := repository.db.
		Where("parent_id = ?", parentID).
		Order("order_index").
		Find(&requirements).Error
	return requirements, err
}

func (repository *requirementRepository) NextOrder(frameworkID uuid.UUID, parentID *uuid.UUID) (int, error) {
	var maxOrder *int
	query := repository.db.Model(&models.Requirement{}).
		Select("MAX(order_index)").
		Where("framework_id = ?", frameworkID)
	if parentID == nil {
		query = query.Where("parent_id IS NULL")
	} else {
		query = query.Where("parent_id = ?", *parentID)
	}

	if err := query.Scan(&maxOrder).Error; err != nil {
		return 0, err
	}
	if maxOrder == nil {
		return 1, nil
	}
	return *maxOrder + 1, nil
}

func (repository *requirementRepository) CountLeaves(frameworkID uuid.UUID) (int64, error) {
	var count int64
	err := repository.db.Model(&models.Requirement{}).
		Where("framework_id = ?", frameworkID).
		Where("NOT EXISTS (SELECT 1 FROM requirements children WHERE children.parent_id = requirements.id)").
		Count(&count).Error
	return count, err
}
