package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/pep-un/Oxomium/common"
	"github.com/pep-un/Oxomium/database/models"
	"github.com/pep-un/Oxomium/shared"
)

type indicatorRepository struct {
	db shared.DB
	common.Repository[uuid.UUID, models.Indicator, shared.DB]
}

func NewIndicatorRepository(db shared.DB) *indicatorRepository {
	return &indicatorRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Indicator](db),
	}
}

func (repository *indicatorRepository) ListByOrganization(organizationID uuid.UUID) ([]models.Indicator, error) {
	var indicators []models.Indicator
	err := repository.db.
		Where("organization_id = ?", organizationID).
		Order("name").
		Find(&indicators).Error
	return indicators, err
}

type indicatorPointRepository struct {
	db shared.DB
	common.Repository[uuid.UUID, models.IndicatorPoint, shared.DB]
}

func NewIndicatorPointRepository(db shared.DB) *indicatorPointRepository {
	return &indicatorPointRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.IndicatorPoint](db),
	}
}

func (repository *indicatorPointRepository) ListByIndicator(indicatorID uuid.UUID) ([]models.IndicatorPoint, error) {
	var points []models.IndicatorPoint
	err := repository.db.
		Where("indicator_id = ?", indicatorID).
		Order("period_start_date").
		Find(&points).Error
	return points, err
}

func (repository *indicatorPointRepository) ListPending() ([]models.IndicatorPoint, error) {
	var points []models.IndicatorPoint
	err := repository.db.
		Where("status IN (?)", []models.IndicatorPointStatus{
			models.IndicatorPointScheduled,
			models.IndicatorPointToBeEvaluated,
			models.IndicatorPointMissed,
		}).
		Preload("Indicator").
		Find(&points).Error
	return points, err
}

func (repository *indicatorPointRepository) DeletePending(tx shared.DB, indicatorID uuid.UUID) error {
	return repository.GetDB(tx).
		Where("indicator_id = ? AND status IN (?)", indicatorID, []models.IndicatorPointStatus{models.IndicatorPointScheduled, models.IndicatorPointToBeEvaluated}).
		Delete(&models.IndicatorPoint{}).Error
}

func (repository *indicatorPointRepository) ExistsWindow(indicatorID uuid.UUID, start, end time.Time) (bool, error) {
	var count int64
	err := repository.db.Model(&models.IndicatorPoint{}).
		Where("indicator_id = ? AND period_start_date = ? AND period_end_date = ?", indicatorID, start, end).
		Count(&count).Error
	return count > 0, err
}
