package database

import (
	"log/slog"

	"github.com/pep-un/Oxomium/database/models"
	"gorm.io/gorm"
)

// RunMigrations brings the schema up to date. The model list is ordered by
// foreign key dependency.
func RunMigrations(db *gorm.DB) error {
	slog.Info("running database migrations")
	return db.AutoMigrate(
		&models.User{},
		&models.Organization{},
		&models.Framework{},
		&models.Requirement{},
		&models.Conformity{},
		&models.Control{},
		&models.ControlPoint{},
		&models.Audit{},
		&models.Finding{},
		&models.Action{},
		&models.Indicator{},
		&models.IndicatorPoint{},
	)
}
