package models

import (
	"time"

	"github.com/google/uuid"
)

// StatusJustification records which evidence source last set a conformity's
// status. Guard logic in the conformity service switches exhaustively over
// these values.
type StatusJustification string

const (
	JustificationExpert    StatusJustification = "EXPT" // expert statement
	JustificationControl   StatusJustification = "CTRL" // control result
	JustificationAction    StatusJustification = "ACT"  // action outcome
	JustificationFinding   StatusJustification = "FIN"  // audit finding
	JustificationAggregate StatusJustification = "CONF" // child aggregation
)

// Conformity is the ledger entry recording one organization's adherence to
// one requirement. Status is nil until the node has been evaluated. Non-leaf
// nodes always carry an aggregated status (JustificationAggregate).
type Conformity struct {
	Model
	OrganizationID uuid.UUID    `json:"organizationId" gorm:"uniqueIndex:idx_conformity_org_requirement;type:uuid;not null"`
	Organization   Organization `json:"-" gorm:"foreignKey:OrganizationID;references:ID;constraint:OnDelete:CASCADE;"`
	RequirementID  uuid.UUID    `json:"requirementId" gorm:"uniqueIndex:idx_conformity_org_requirement;type:uuid;not null"`
	Requirement    Requirement  `json:"requirement" gorm:"foreignKey:RequirementID;references:ID;constraint:OnDelete:CASCADE;"`

	Applicable    bool       `json:"applicable" gorm:"default:true;not null"`
	ResponsibleID *uuid.UUID `json:"responsibleId" gorm:"type:uuid"`
	Responsible   *User      `json:"responsible" gorm:"foreignKey:ResponsibleID;references:ID;constraint:OnDelete:SET NULL;"`
	Comment       string     `json:"comment" gorm:"type:text"`

	Status              *int                `json:"status" gorm:"type:integer"`
	StatusJustification StatusJustification `json:"statusJustification" gorm:"type:text;default:'EXPT'"`
	StatusLastUpdate    *time.Time          `json:"statusLastUpdate"`
}

func (m Conformity) TableName() string {
	return "conformities"
}

// HasStatus reports whether the node carries a valid score.
func (m Conformity) HasStatus() bool {
	return m.Status != nil && *m.Status >= 0 && *m.Status <= 100
}

// StatusEquals reports whether the (status, justification) pair already has
// the given value. Used for the idempotence guard.
func (m Conformity) StatusEquals(value int, justification StatusJustification) bool {
	return m.Status != nil && *m.Status == value && m.StatusJustification == justification
}
