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
	"errors"

	"github.com/google/uuid"
	"github.com/pep-un/Oxomium/common"
	"github.com/pep-un/Oxomium/database/models"
	"github.com/pep-un/Oxomium/shared"
	"gorm.io/gorm"
)

type conformityRepository struct {
	db shared.DB
	common.Repository[uuid.UUID, models.Conformity, shared.DB]
}

func NewConformityRepository(db shared.DB) *conformityRepository {
	return &conformityRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Conformity](db),
	}
}

// Read preloads the requirement since every tree operation needs its
// materialized path.
func (repository *conformityRepository) Read(id uuid.UUID) (models.Conformity, error) {
	var conformity models.Conformity
	err := repository.db.
		Preload("Requirement").
		Preload("Responsible").
		First(&conformity, "id = ?", id).Error
	return conformity, err
}

func (repository *conformityRepository) ReadByOrganizationAndRequirement(organizationID, requirementID uuid.UUID) (models.Conformity, error) {
	var conformity models.Conformity
	err := repository.db.
		Preload("Requirement").
		First(&conformity, "organization_id = ? AND requirement_id = ?", organizationID, requirementID).Error
	return conformity, err
}

func (repository *conformityRepository) ListByOrganizationAndFramework(organizationID, frameworkID uuid.UUID) ([]models.Conformity, error) {
	var conformities []models.Conformity
	err := repository.db.
		Joins("JOIN requirements ON requirements.id = conformities.requirement_id").
		Where("conformities.organization_id = ? AND requirements.framework_id = ?", organizationID, frameworkID).
		Order("requirements.path").
		Preload("Requirement").
		Find(&conformities).Error
	return conformities, err
}

func (repository *conformityRepository) DeleteByOrganizationAndFramework(tx shared.DB, organizationID, frameworkID uuid.UUID) error {
	requirementIDs := repository.GetDB(tx).Model(&models.Requirement{}).
		Select("id").
		Where("framework_id = ?", frameworkID)

	return repository.GetDB(tx).
		Where("organization_id = ? AND requirement_id IN (?)", organizationID, requirementIDs).
		Delete(&models.Conformity{}).Error
}

func (repository *conformityRepository) childRequirementIDs(tx shared.DB, conformity models.Conformity) *gorm.DB {
	return repository.GetDB(tx).Model(&models.Requirement{}).
		Select("id").
		Where("parent_id = ?", conformity.RequirementID)
}

func (repository *conformityRepository) GetChildren(tx shared.DB, conformity models.Conformity) ([]models.Conformity, error) {
	var children []models.Conformity
	err := repository.GetDB(tx).
		Where("organization_id = ? AND requirement_id IN (?)", conformity.OrganizationID, repository.childRequirementIDs(tx, conformity)).
		Preload("Requirement").
		Find(&children).Error
	return children, err
}

func (repository *conformityRepository) CountChildren(tx shared.DB, conformity models.Conformity) (int64, error) {
	var count int64
	err := repository.GetDB(tx).Model(&models.Conformity{}).
		Where("organization_id = ? AND requirement_id IN (?)", conformity.OrganizationID, repository.childRequirementIDs(tx, conformity)).
		Count(&count).Error
	return count, err
}

func (repository *conformityRepository) GetParent(tx shared.DB, conformity models.Conformity) (*models.Conformity, error) {
	if conformity.Requirement.ParentID == nil {
		return nil, nil
	}

	var parent models.Conformity
	err := repository.GetDB(tx).
		Preload("Requirement").
		First(&parent, "organization_id = ? AND requirement_id = ?", conformity.OrganizationID, *conformity.Requirement.ParentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &parent, nil
}

func (repository *conformityRepository) AverageChildStatus(tx shared.DB, conformity models.Conformity) (*float64, error) {
	var mean *float64
	err := repository.GetDB(tx).Model(&models.Conformity{}).
		Select("AVG(status)").
		Where("organization_id = ? AND requirement_id IN (?)", conformity.OrganizationID, repository.childRequirementIDs(tx, conformity)).
		Where("applicable = ? AND status BETWEEN 0 AND 100", true).
		Scan(&mean).Error
	return mean, err
}

// descendantRequirementIDs matches every strict descendant of the
// conformity's requirement through the materialized path, one query, no
// link-by-link recursion.
func (repository *conformityRepository) descendantRequirementIDs(tx shared.DB, conformity models.Conformity) *gorm.DB {
	return repository.GetDB(tx).Model(&models.Requirement{}).
		Select("id").
		Where("framework_id = ? AND path LIKE ?", conformity.Requirement.FrameworkID, conformity.Requirement.Path+".%")
}

func (repository *conformityRepository) SetApplicableForDescendants(tx shared.DB, conformity models.Conformity, applicable bool) error {
	return repository.GetDB(tx).Model(&models.Conformity{}).
		Where("organization_id = ? AND requirement_id IN (?)", conformity.OrganizationID, repository.descendantRequirementIDs(tx, conformity)).
		Update("applicable", applicable).Error
}

func (repository *conformityRepository) SetApplicableForAncestors(tx shared.DB, conformity models.Conformity, applicable bool) error {
	paths := conformity.Requirement.AncestorPaths()
	if len(paths) == 0 {
		return nil
	}

	ancestorIDs := repository.GetDB(tx).Model(&models.Requirement{}).
		Select("id").
		Where("framework_id = ? AND path IN (?)", conformity.Requirement.FrameworkID, paths)

	return repository.GetDB(tx).Model(&models.Conformity{}).
		Where("organization_id = ? AND requirement_id IN (?)", conformity.OrganizationID, ancestorIDs).
		Update("applicable", applicable).Error
}

func (repository *conformityRepository) SetResponsibleForDescendants(tx shared.DB, conformity models.Conformity, responsibleID *uuid.UUID) error {
	return repository.GetDB(tx).Model(&models.Conformity{}).
		Where("organization_id = ? AND requirement_id IN (?)", conformity.OrganizationID, repository.descendantRequirementIDs(tx, conformity)).
		Update("responsible_id", responsibleID).Error
}
