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
	"time"

	"github.com/google/uuid"
	"github.com/pep-un/Oxomium/common"
	"github.com/pep-un/Oxomium/database/models"
	"github.com/pep-un/Oxomium/shared"
)

type controlRepository struct {
	db shared.DB
	common.Repository[uuid.UUID, models.Control, shared.DB]
}

func NewControlRepository(db shared.DB) *controlRepository {
	return &controlRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Control](db),
	}
}

func (repository *controlRepository) ListByOrganization(organizationID uuid.UUID) ([]models.Control, error) {
	var controls []models.Control
	err := repository.db.
		Where("organization_id = ?", organizationID).
		Order("level, frequency, title").
		Find(&controls).Error
	return controls, err
}

func (repository *controlRepository) GetConformities(controlID uuid.UUID) ([]models.Conformity, error) {
	var conformities []models.Conformity
	err := repository.db.
		Joins("JOIN control_conformities cc ON cc.conformity_id = conformities.id").
		Where("cc.control_id = ?", controlID).
		Preload("Requirement").
		Find(&conformities).Error
	return conformities, err
}

func (repository *controlRepository) ReplaceConformities(tx shared.DB, control *models.Control, conformities []models.Conformity) error {
	return repository.GetDB(tx).Model(control).Association("Conformities").Replace(conformities)
}

func (repository *controlRepository) ListByConformity(conformityID uuid.UUID) ([]models.Control, error) {
	var controls []models.Control
	err := repository.db.
		Joins("JOIN control_conformities cc ON cc.control_id = controls.id").
		Where("cc.conformity_id = ?", conformityID).
		Order("controls.title").
		Find(&controls).Error
	return controls, err
}

type controlPointRepository struct {
	db shared.DB
	common.Repository[uuid.UUID, models.ControlPoint, shared.DB]
}

func NewControlPointRepository(db shared.DB) *controlPointRepository {
	return &controlPointRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.ControlPoint](db),
	}
}

func (repository *controlPointRepository) ListByControl(controlID uuid.UUID) ([]models.ControlPoint, error) {
	var points []models.ControlPoint
	err := repository.db.
		Where("control_id = ?", controlID).
		Order("period_start_date").
		Find(&points).Error
	return points, err
}

func (repository *controlPointRepository) ListPending() ([]models.ControlPoint, error) {
	var points []models.ControlPoint
	err := repository.db.
		Where("status NOT IN (?)", []models.ControlPointStatus{models.ControlPointCompliant, models.ControlPointNonCompliant}).
		Preload("Control").
		Find(&points).Error
	return points, err
}

func (repository *controlPointRepository) DeletePending(tx shared.DB, controlID uuid.UUID) error {
	return repository.GetDB(tx).
		Where("control_id = ? AND status IN (?)", controlID, []models.ControlPointStatus{models.ControlPointScheduled, models.ControlPointToBeEvaluated}).
		Delete(&models.ControlPoint{}).Error
}

func (repository *controlPointRepository) ExistsWindow(controlID uuid.UUID, start, end time.Time) (bool, error) {
	var count int64
	err := repository.db.Model(&models.ControlPoint{}).
		Where("control_id = ? AND period_start_date = ? AND period_end_date = ?", controlID, start, end).
		Count(&count).Error
	return count > 0, err
}

func (repository *controlPointRepository) ListNegativeByConformity(conformityID uuid.UUID, today time.Time) ([]models.ControlPoint, error) {
	var points []models.ControlPoint
	err := repository.db.
		Joins("JOIN control_conformities cc ON cc.control_id = control_points.control_id").
		Where("cc.conformity_id = ?", conformityID).
		Where("period_start_date <= ? AND period_end_date >= ?", today, today).
		Where("status IN (?)", []models.ControlPointStatus{
			models.ControlPointNonCompliant,
			models.ControlPointMissed,
			models.ControlPointScheduled,
			models.ControlPointToBeEvaluated,
		}).
		Preload("Control").
		Find(&points).Error
	return points, err
}
