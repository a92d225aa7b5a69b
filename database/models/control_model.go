package models

import (
	"time"

	"github.com/google/uuid"
)

// ControlFrequency is the number of control points a control generates per
// year.
type ControlFrequency int

const (
	FrequencyYearly     ControlFrequency = 1
	FrequencyHalfYearly ControlFrequency = 2
	FrequencyQuarterly  ControlFrequency = 4
	FrequencyBimonthly  ControlFrequency = 6
	FrequencyMonthly    ControlFrequency = 12
)

type ControlLevel int

const (
	ControlLevelFirst  ControlLevel = 1
	ControlLevelSecond ControlLevel = 2
)

// Control defines a periodic verification of one or more conformities.
// Concrete dated evaluations are ControlPoints.
type Control struct {
	Model
	Title          string           `json:"title" gorm:"type:text;not null"`
	Description    string           `json:"description" gorm:"type:text"`
	OrganizationID uuid.UUID        `json:"organizationId" gorm:"type:uuid;not null"`
	Organization   Organization     `json:"-" gorm:"foreignKey:OrganizationID;references:ID;constraint:OnDelete:CASCADE;"`
	Conformities   []Conformity     `json:"conformities" gorm:"many2many:control_conformities;"`
	Frequency      ControlFrequency `json:"frequency" gorm:"default:1;not null"`
	Level          ControlLevel     `json:"level" gorm:"default:1;not null"`
}

func (m Control) TableName() string {
	return "controls"
}

type ControlPointStatus string

const (
	ControlPointScheduled     ControlPointStatus = "SCHD"
	ControlPointToBeEvaluated ControlPointStatus = "TOBE"
	ControlPointCompliant     ControlPointStatus = "OK"
	ControlPointNonCompliant  ControlPointStatus = "NOK"
	ControlPointMissed        ControlPointStatus = "MISS"
)

// ControlPoint is one dated evaluation window of a control.
type ControlPoint struct {
	Model
	ControlID       uuid.UUID          `json:"controlId" gorm:"type:uuid;not null"`
	Control         Control            `json:"-" gorm:"foreignKey:ControlID;references:ID;constraint:OnDelete:CASCADE;"`
	PeriodStartDate time.Time          `json:"periodStartDate" gorm:"type:date;not null"`
	PeriodEndDate   time.Time          `json:"periodEndDate" gorm:"type:date;not null"`
	Status          ControlPointStatus `json:"status" gorm:"type:text;default:'SCHD';not null"`
	ControlDate     *time.Time         `json:"controlDate"`
	ControlUserID   *uuid.UUID         `json:"controlUserId" gorm:"type:uuid"`
	ControlUser     *User              `json:"controlUser" gorm:"foreignKey:ControlUserID;references:ID;constraint:OnDelete:SET NULL;"`
	Comment         string             `json:"comment" gorm:"type:text"`
}

func (m ControlPoint) TableName() string {
	return "control_points"
}

// IsFinal reports whether the point carries a confirmed evaluation result.
// Final statuses are never overwritten by the date-based rule.
func (m ControlPoint) IsFinal() bool {
	return m.Status == ControlPointCompliant || m.Status == ControlPointNonCompliant
}

func (m ControlPoint) IsCurrentPeriod(when time.Time) bool {
	day := truncateToDay(when)
	return !day.Before(truncateToDay(m.PeriodStartDate)) && !day.After(truncateToDay(m.PeriodEndDate))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
