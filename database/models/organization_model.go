package models

import (
	"github.com/google/uuid"
)

// Organization represents a company, a division of a company, an
// administration... anything that can adopt conformity frameworks.
type Organization struct {
	Model
	Name             string      `json:"name" gorm:"type:text;uniqueIndex;not null"`
	Slug             string      `json:"slug" gorm:"type:text;uniqueIndex;not null"`
	AdministrativeID string      `json:"administrativeId" gorm:"type:text"`
	Description      string      `json:"description" gorm:"type:text"`
	Frameworks       []Framework `json:"frameworks" gorm:"many2many:organization_frameworks;"`
}

func (m Organization) TableName() string {
	return "organizations"
}

type User struct {
	Model
	Name  string `json:"name" gorm:"type:text;not null"`
	Email string `json:"email" gorm:"type:text;uniqueIndex;not null"`
}

func (m User) TableName() string {
	return "users"
}

type OrganizationFramework struct {
	OrganizationID uuid.UUID `gorm:"primaryKey;type:uuid"`
	FrameworkID    uuid.UUID `gorm:"primaryKey;type:uuid"`
}

func (m OrganizationFramework) TableName() string {
	return "organization_frameworks"
}
