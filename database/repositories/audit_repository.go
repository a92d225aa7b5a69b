package repositories

import (
	"github.com/google/uuid"
	"github.com/pep-un/Oxomium/common"
	"github.com/pep-un/Oxomium/database/models"
	"github.com/pep-un/Oxomium/shared"
)

type auditRepository struct {
	db shared.DB
	common.Repository[uuid.UUID, models.Audit, shared.DB]
}

func NewAuditRepository(db shared.DB) *auditRepository {
	return &auditRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Audit](db),
	}
}

func (repository *auditRepository) ListByOrganization(organizationID uuid.UUID) ([]models.Audit, error) {
	var audits []models.Audit
	err := repository.db.
		Where("organization_id = ?", organizationID).
		Order("report_date DESC NULLS LAST, start_date DESC NULLS LAST").
		Find(&audits).Error
	return audits, err
}

type findingRepository struct {
	db shared.DB
	common.Repository[uuid.UUID, models.Finding, shared.DB]
}

func NewFindingRepository(db shared.DB) *findingRepository {
	return &findingRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Finding](db),
	}
}

func (repository *findingRepository) ListByAudit(auditID uuid.UUID) ([]models.Finding, error) {
	var findings []models.Finding
	err := repository.db.
		Where("audit_id = ?", auditID).
		Order("severity").
		Find(&findings).Error
	return findings, err
}

func (repository *findingRepository) ActionStats(findingID uuid.UUID) (int64, int64, error) {
	var stats struct {
		Total  int64
		Active int64
	}
	err := repository.db.Model(&models.Action{}).
		Select("COUNT(*) AS total, COUNT(*) FILTER (WHERE actions.active) AS active").
		Joins("JOIN action_findings af ON af.action_id = actions.id").
		Where("af.finding_id = ?", findingID).
		Scan(&stats).Error
	return stats.Total, stats.Active, err
}
