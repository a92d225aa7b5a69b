package repositories

import (
	"github.com/google/uuid"
	"github.com/pep-un/Oxomium/common"
	"github.com/pep-un/Oxomium/database/models"
	"github.com/pep-un/Oxomium/shared"
)

type userRepository struct {
	db shared.DB
	common.Repository[uuid.UUID, models.User, shared.DB]
}

func NewUserRepository(db shared.DB) *userRepository {
	return &userRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.User](db),
	}
}

func (repository *userRepository) ReadByEmail(email string) (models.User, error) {
	var user models.User
	err := repository.db.First(&user, "email = ?", email).Error
	return user, err
}
