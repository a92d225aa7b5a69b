package models

import (
	"time"

	"github.com/google/uuid"
)

// Indicator measures a risk or performance level on a periodic cadence.
// Measurement points share the calendar partitioning of control points.
type Indicator struct {
	Model
	Name           string           `json:"name" gorm:"type:text;not null"`
	Goal           string           `json:"goal" gorm:"type:text"`
	Source         string           `json:"source" gorm:"type:text"`
	Formula        string           `json:"formula" gorm:"type:text"`
	Worst          int              `json:"worst" gorm:"default:0"`
	Best           int              `json:"best" gorm:"default:100"`
	Warning        int              `json:"warning" gorm:"default:80"`
	Critical       int              `json:"critical" gorm:"default:90"`
	ResponsibleID  *uuid.UUID       `json:"responsibleId" gorm:"type:uuid"`
	Responsible    *User            `json:"responsible" gorm:"foreignKey:ResponsibleID;references:ID;constraint:OnDelete:SET NULL;"`
	OrganizationID uuid.UUID        `json:"organizationId" gorm:"type:uuid;not null"`
	Organization   Organization     `json:"-" gorm:"foreignKey:OrganizationID;references:ID;constraint:OnDelete:CASCADE;"`
	Conformities   []Conformity     `json:"conformities" gorm:"many2many:indicator_conformities;"`
	Frequency      ControlFrequency `json:"frequency" gorm:"default:4;not null"`
}

func (m Indicator) TableName() string {
	return "indicators"
}

type IndicatorPointStatus string

const (
	IndicatorPointScheduled     IndicatorPointStatus = "SCHD"
	IndicatorPointToBeEvaluated IndicatorPointStatus = "TOBE"
	IndicatorPointCompliant     IndicatorPointStatus = "OK"
	IndicatorPointWarning       IndicatorPointStatus = "WARN"
	IndicatorPointCritical      IndicatorPointStatus = "CRIT"
	IndicatorPointMissed        IndicatorPointStatus = "MISS"
)

// IndicatorPoint is one measurement of an indicator.
type IndicatorPoint struct {
	Model
	IndicatorID     uuid.UUID            `json:"indicatorId" gorm:"type:uuid;not null"`
	Indicator       Indicator            `json:"-" gorm:"foreignKey:IndicatorID;references:ID;constraint:OnDelete:CASCADE;"`
	PeriodStartDate time.Time            `json:"periodStartDate" gorm:"type:date;not null"`
	PeriodEndDate   time.Time            `json:"periodEndDate" gorm:"type:date;not null"`
	Status          IndicatorPointStatus `json:"status" gorm:"type:text;default:'SCHD';not null"`
	ControlDate     *time.Time           `json:"controlDate"`
	ControlUserID   *uuid.UUID           `json:"controlUserId" gorm:"type:uuid"`
	Value           *int                 `json:"value"`
	Comment         string               `json:"comment" gorm:"type:text"`
}

func (m IndicatorPoint) TableName() string {
	return "indicator_points"
}

func (m IndicatorPoint) IsFinal() bool {
	switch m.Status {
	case IndicatorPointCompliant, IndicatorPointWarning, IndicatorPointCritical:
		return true
	}
	return false
}
