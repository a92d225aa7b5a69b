// Copyright (C) 2025 pep-un
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package dtos

import (
	"time"

	"github.com/google/uuid"
	"github.com/pep-un/Oxomium/database/models"
)

type AuditCreateRequest struct {
	Name        string     `json:"name"`
	Auditor     string     `json:"auditor" validate:"required"`
	Description string     `json:"description"`
	Type        string     `json:"type" validate:"omitempty,oneof=INT CUS NAT AUD OTHER"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	ReportDate  *time.Time `json:"reportDate"`
}

type AuditPatchRequest struct {
	Name        *string    `json:"name"`
	Auditor     *string    `json:"auditor"`
	Description *string    `json:"description"`
	Conclusion  *string    `json:"conclusion"`
	Type        *string    `json:"type" validate:"omitempty,oneof=INT CUS NAT AUD OTHER"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	ReportDate  *time.Time `json:"reportDate"`
}

type AuditDTO struct {
	models.Model
	Name           string           `json:"name"`
	OrganizationID uuid.UUID        `json:"organizationId"`
	Description    string           `json:"description"`
	Conclusion     string           `json:"conclusion"`
	Auditor        string           `json:"auditor"`
	Type           models.AuditType `json:"type"`
	StartDate      *time.Time       `json:"startDate"`
	EndDate        *time.Time       `json:"endDate"`
	ReportDate     *time.Time       `json:"reportDate"`
}

type FindingCreateRequest struct {
	Name             string   `json:"name"`
	ShortDescription string   `json:"shortDescription" validate:"required"`
	Description      string   `json:"description"`
	Observation      string   `json:"observation"`
	Recommendation   string   `json:"recommendation"`
	Reference        string   `json:"reference"`
	Severity         string   `json:"severity" validate:"omitempty,oneof=CRT MAJ MIN OBS POS OTHER"`
	CVSS             *float64 `json:"cvss" validate:"omitempty,gte=0,lte=10"`
	CVSSDescriptor   string   `json:"cvssDescriptor"`
}

type FindingPatchRequest struct {
	Name             *string  `json:"name"`
	ShortDescription *string  `json:"shortDescription"`
	Description      *string  `json:"description"`
	Observation      *string  `json:"observation"`
	Recommendation   *string  `json:"recommendation"`
	Reference        *string  `json:"reference"`
	Severity         *string  `json:"severity" validate:"omitempty,oneof=CRT MAJ MIN OBS POS OTHER"`
	Archived         *bool    `json:"archived"`
	CVSS             *float64 `json:"cvss" validate:"omitempty,gte=0,lte=10"`
	CVSSDescriptor   *string  `json:"cvssDescriptor"`
}

type FindingDTO struct {
	models.Model
	Name             string                 `json:"name"`
	ShortDescription string                 `json:"shortDescription"`
	Description      string                 `json:"description"`
	Observation      string                 `json:"observation"`
	Recommendation   string                 `json:"recommendation"`
	Reference        string                 `json:"reference"`
	AuditID          uuid.UUID              `json:"auditId"`
	Severity         models.FindingSeverity `json:"severity"`
	Archived         bool                   `json:"archived"`
	CVSS             *float64               `json:"cvss"`
	CVSSDescriptor   string                 `json:"cvssDescriptor"`
}
