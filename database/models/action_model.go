package models

import (
	"time"

	"github.com/google/uuid"
)

// ActionStatus is the phase of a remediation action. The numeric codes come
// from the ordered workflow: 1-4 are the in-progress phases, 5 is the
// completed terminal state, 7 and 9 are inactive side exits.
type ActionStatus string

const (
	ActionAnalysing    ActionStatus = "1"
	ActionPlanning     ActionStatus = "2"
	ActionImplementing ActionStatus = "3"
	ActionControlling  ActionStatus = "4"
	ActionEnded        ActionStatus = "5"
	ActionFrozen       ActionStatus = "7"
	ActionCanceled     ActionStatus = "9"
)

// Action represents a remediation task an organization runs to improve its
// conformity. Its phase classification is consumed as evidence by the
// conformity aggregation guards.
type Action struct {
	Model
	Title         string       `json:"title" gorm:"type:text;not null"`
	Status        ActionStatus `json:"status" gorm:"type:text;default:'1';not null"`
	StatusComment string       `json:"statusComment" gorm:"type:text"`
	Reference     string       `json:"reference" gorm:"type:text"`
	// Active is derived from Status on every save: false iff the action is
	// frozen, ended or canceled.
	Active bool `json:"active" gorm:"default:true;not null"`

	OrganizationID uuid.UUID    `json:"organizationId" gorm:"type:uuid;not null"`
	Organization   Organization `json:"-" gorm:"foreignKey:OrganizationID;references:ID;constraint:OnDelete:CASCADE;"`
	OwnerID        *uuid.UUID   `json:"ownerId" gorm:"type:uuid"`
	Owner          *User        `json:"owner" gorm:"foreignKey:OwnerID;references:ID;constraint:OnDelete:SET NULL;"`

	Description   string         `json:"description" gorm:"type:text"`
	Conformities  []Conformity   `json:"conformities" gorm:"many2many:action_conformities;"`
	Findings      []Finding      `json:"findings" gorm:"many2many:action_findings;"`
	ControlPoints []ControlPoint `json:"controlPoints" gorm:"many2many:action_control_points;"`

	PlanStartDate *time.Time `json:"planStartDate" gorm:"type:date"`
	PlanEndDate   *time.Time `json:"planEndDate" gorm:"type:date"`
	PlanComment   string     `json:"planComment" gorm:"type:text"`

	ImplementStartDate *time.Time `json:"implementStartDate" gorm:"type:date"`
	ImplementEndDate   *time.Time `json:"implementEndDate" gorm:"type:date"`
	ImplementStatus    int        `json:"implementStatus" gorm:"default:0"`
	ImplementComment   string     `json:"implementComment" gorm:"type:text"`

	ControlDate    *time.Time `json:"controlDate" gorm:"type:date"`
	ControlComment string     `json:"controlComment" gorm:"type:text"`
	ControlUserID  *uuid.UUID `json:"controlUserId" gorm:"type:uuid"`
}

func (m Action) TableName() string {
	return "actions"
}

// IsInProgress reports whether the action is in one of its active workflow
// phases. In-progress actions count as negative evidence.
func (m Action) IsInProgress() bool {
	switch m.Status {
	case ActionAnalysing, ActionPlanning, ActionImplementing, ActionControlling:
		return true
	case ActionEnded, ActionFrozen, ActionCanceled:
		return false
	}
	return false
}

// IsCompleted reports whether the action ran its workflow to the end. Frozen
// and canceled actions are inactive but not completed.
func (m Action) IsCompleted() bool {
	return m.Status == ActionEnded
}

// DeriveActive returns the Active flag implied by the current phase.
func (m Action) DeriveActive() bool {
	switch m.Status {
	case ActionFrozen, ActionEnded, ActionCanceled:
		return false
	}
	return true
}
