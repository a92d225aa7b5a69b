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

var inProgressStatuses = []models.ActionStatus{
	models.ActionAnalysing,
	models.ActionPlanning,
	models.ActionImplementing,
	models.ActionControlling,
}

type actionRepository struct {
	db shared.DB
	common.Repository[uuid.UUID, models.Action, shared.DB]
}

func NewActionRepository(db shared.DB) *actionRepository {
	return &actionRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Action](db),
	}
}

func (repository *actionRepository) ListByOrganization(organizationID uuid.UUID) ([]models.Action, error) {
	var actions []models.Action
	err := repository.db.
		Where("organization_id = ?", organizationID).
		Order("status, updated_at DESC").
		Find(&actions).Error
	return actions, err
}

func (repository *actionRepository) ListByConformity(conformityID uuid.UUID) ([]models.Action, error) {
	var actions []models.Action
	err := repository.db.
		Joins("JOIN action_conformities ac ON ac.action_id = actions.id").
		Where("ac.conformity_id = ?", conformityID).
		Find(&actions).Error
	return actions, err
}

func (repository *actionRepository) ListActiveByConformity(conformityID uuid.UUID) ([]models.Action, error) {
	var actions []models.Action
	err := repository.db.
		Joins("JOIN action_conformities ac ON ac.action_id = actions.id").
		Where("ac.conformity_id = ? AND actions.active = ?", conformityID, true).
		Find(&actions).Error
	return actions, err
}

// ListInProgressByConformity returns the linked actions still inside their
// workflow, the negative evidence the status guards look for.
func (repository *actionRepository) ListInProgressByConformity(conformityID uuid.UUID) ([]models.Action, error) {
	var actions []models.Action
	err := repository.db.
		Joins("JOIN action_conformities ac ON ac.action_id = actions.id").
		Where("ac.conformity_id = ? AND actions.status IN (?)", conformityID, inProgressStatuses).
		Find(&actions).Error
	return actions, err
}

func (repository *actionRepository) GetConformities(actionID uuid.UUID) ([]models.Conformity, error) {
	var conformities []models.Conformity
	err := repository.db.
		Joins("JOIN action_conformities ac ON ac.conformity_id = conformities.id").
		Where("ac.action_id = ?", actionID).
		Preload("Requirement").
		Find(&conformities).Error
	return conformities, err
}

func (repository *actionRepository) GetFindings(actionID uuid.UUID) ([]models.Finding, error) {
	var findings []models.Finding
	err := repository.db.
		Joins("JOIN action_findings af ON af.finding_id = findings.id").
		Where("af.action_id = ?", actionID).
		Find(&findings).Error
	return findings, err
}

func (repository *actionRepository) ReplaceConformities(tx shared.DB, action *models.Action, conformities []models.Conformity) error {
	return repository.GetDB(tx).Model(action).Association("Conformities").Replace(conformities)
}

func (repository *actionRepository) ReplaceFindings(tx shared.DB, action *models.Action, findings []models.Finding) error {
	return repository.GetDB(tx).Model(action).Association("Findings").Replace(findings)
}
