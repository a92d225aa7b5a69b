package models

import (
	"time"

	"github.com/google/uuid"
)

type AuditType string

const (
	AuditTypeInternal  AuditType = "INT"
	AuditTypeCustomer  AuditType = "CUS"
	AuditTypeAuthority AuditType = "NAT"
	AuditTypeAuditor   AuditType = "AUD"
	AuditTypeOther     AuditType = "OTHER"
)

// Audit represents one auditing event on an organization. An audit is a
// collection of findings.
type Audit struct {
	Model
	Name           string       `json:"name" gorm:"type:text"`
	OrganizationID uuid.UUID    `json:"organizationId" gorm:"type:uuid;not null"`
	Organization   Organization `json:"-" gorm:"foreignKey:OrganizationID;references:ID;constraint:OnDelete:CASCADE;"`
	Description    string       `json:"description" gorm:"type:text"`
	Conclusion     string       `json:"conclusion" gorm:"type:text"`
	Auditor        string       `json:"auditor" gorm:"type:text;not null"`
	Frameworks     []Framework  `json:"frameworks" gorm:"many2many:audit_frameworks;"`
	StartDate      *time.Time   `json:"startDate" gorm:"type:date"`
	EndDate        *time.Time   `json:"endDate" gorm:"type:date"`
	ReportDate     *time.Time   `json:"reportDate" gorm:"type:date"`
	Type           AuditType    `json:"type" gorm:"type:text;default:'OTHER';not null"`
}

func (m Audit) TableName() string {
	return "audits"
}

type FindingSeverity string

const (
	SeverityCritical    FindingSeverity = "CRT"
	SeverityMajor       FindingSeverity = "MAJ"
	SeverityMinor       FindingSeverity = "MIN"
	SeverityObservation FindingSeverity = "OBS"
	SeverityPositive    FindingSeverity = "POS"
	SeverityOther       FindingSeverity = "OTHER"
)

// Finding is one element discovered during an audit.
type Finding struct {
	Model
	Name             string          `json:"name" gorm:"type:text"`
	ShortDescription string          `json:"shortDescription" gorm:"type:text;not null"`
	Description      string          `json:"description" gorm:"type:text"`
	Observation      string          `json:"observation" gorm:"type:text"`
	Recommendation   string          `json:"recommendation" gorm:"type:text"`
	Reference        string          `json:"reference" gorm:"type:text"`
	AuditID          uuid.UUID       `json:"auditId" gorm:"type:uuid;not null"`
	Audit            Audit           `json:"-" gorm:"foreignKey:AuditID;references:ID;constraint:OnDelete:CASCADE;"`
	Severity         FindingSeverity `json:"severity" gorm:"type:text;default:'OBS';not null"`
	Archived         bool            `json:"archived" gorm:"default:false;not null"`
	CVSS             *float64        `json:"cvss" gorm:"type:decimal(4,1)"`
	CVSSDescriptor   string          `json:"cvssDescriptor" gorm:"type:text"`
}

func (m Finding) TableName() string {
	return "findings"
}

// IsActive reports whether the finding still demands attention. Positive
// findings never do.
func (m Finding) IsActive() bool {
	return !m.Archived && m.Severity != SeverityPositive
}
