package repositories

import (
	"github.com/google/uuid"
	"github.com/pep-un/Oxomium/common"
	"github.com/pep-un/Oxomium/database/models"
	"github.com/pep-un/Oxomium/shared"
)

type frameworkRepository struct {
	db shared.DB
	common.Repository[uuid.UUID, models.Framework, shared.DB]
}

func NewFrameworkRepository(db shared.DB) *frameworkRepository {
	return &frameworkRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Framework](db),
	}
}

func (repository *frameworkRepository) ReadBySlug(slug string) (models.Framework, error) {
	var framework models.Framework
	err := repository.db.First(&framework, "slug = ?", slug).Error
	return framework, err
}
