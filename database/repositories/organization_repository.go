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

type organizationRepository struct {
	db shared.DB
	common.Repository[uuid.UUID, models.Organization, shared.DB]
}

func NewOrganizationRepository(db shared.DB) *organizationRepository {
	return &organizationRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Organization](db),
	}
}

func (repository *organizationRepository) ReadBySlug(slug string) (models.Organization, error) {
	var organization models.Organization
	err := repository.db.Preload("Frameworks").First(&organization, "slug = ?", slug).Error
	return organization, err
}

func (repository *organizationRepository) GetFrameworks(organizationID uuid.UUID) ([]models.Framework, error) {
	var frameworks []models.Framework
	err := repository.db.
		Joins("JOIN organization_frameworks of ON of.framework_id = frameworks.id").
		Where("of.organization_id = ?", organizationID).
		Order("frameworks.name").
		Find(&frameworks).Error
	return frameworks, err
}

func (repository *organizationRepository) AddFramework(tx shared.DB, organization *models.Organization, framework models.Framework) error {
	return repository.GetDB(tx).Model(organization).Association("Frameworks").Append(&framework)
}

func (repository *organizationRepository) RemoveFramework(tx shared.DB, organization *models.Organization, framework models.Framework) error {
	return repository.GetDB(tx).Model(organization).Association("Frameworks").Delete(&framework)
}
