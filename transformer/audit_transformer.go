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

package transformer

import (
	"github.com/google/uuid"
	"github.com/pep-un/Oxomium/database/models"
	"github.com/pep-un/Oxomium/dtos"
)

func AuditCreateRequestToModel(c dtos.AuditCreateRequest, organizationID uuid.UUID) models.Audit {
	audit := models.Audit{
		Name:           c.Name,
		OrganizationID: organizationID,
		Description:    c.Description,
		Auditor:        c.Auditor,
		Type:           models.AuditTypeOther,
		StartDate:      c.StartDate,
		EndDate:        c.EndDate,
		ReportDate:     c.ReportDate,
	}
	if c.Type != "" {
		audit.Type = models.AuditType(c.Type)
	}
	return audit
}

func ApplyAuditPatchRequestToModel(p dtos.AuditPatchRequest, audit *models.Audit) bool {
	updated := false

	if p.Name != nil {
		updated = true
		audit.Name = *p.Name
	}

	if p.Auditor != nil {
		updated = true
		audit.Auditor = *p.Auditor
	}

	if p.Description != nil {
		updated = true
		audit.Description = *p.Description
	}

	if p.Conclusion != nil {
		updated = true
		audit.Conclusion = *p.Conclusion
	}

	if p.Type != nil {
		updated = true
		audit.Type = models.AuditType(*p.Type)
	}

	if p.StartDate != nil {
		updated = true
		audit.StartDate = p.StartDate
	}

	if p.EndDate != nil {
		updated = true
		audit.EndDate = p.EndDate
	}

	if p.ReportDate != nil {
		updated = true
		audit.ReportDate = p.ReportDate
	}

	return updated
}

func AuditDTOFromModel(audit models.Audit) dtos.AuditDTO {
	return dtos.AuditDTO{
		Model:          audit.Model,
		Name:           audit.Name,
		OrganizationID: audit.OrganizationID,
		Description:    audit.Description,
		Conclusion:     audit.Conclusion,
		Auditor:        audit.Auditor,
		Type:           audit.Type,
		StartDate:      audit.StartDate,
		EndDate:        audit.EndDate,
		ReportDate:     audit.ReportDate,
	}
}

func FindingCreateRequestToModel(c dtos.FindingCreateRequest, auditID uuid.UUID) models.Finding {
	finding := models.Finding{
		Name:             c.Name,
		ShortDescription: c.ShortDescription,
		Description:      c.Description,
		Observation:      c.Observation,
		Recommendation:   c.Recommendation,
		Reference:        c.Reference,
		AuditID:          auditID,
		Severity:         models.SeverityObservation,
		CVSS:             c.CVSS,
		CVSSDescriptor:   c.CVSSDescriptor,
	}
	if c.Severity != "" {
		finding.Severity = models.FindingSeverity(c.Severity)
	}
	return finding
}

func ApplyFindingPatchRequestToModel(p dtos.FindingPatchRequest, finding *models.Finding) bool {
	updated := false

	if p.Name != nil {
		updated = true
		finding.Name = *p.Name
	}

	if p.ShortDescription != nil {
		updated = true
		finding.ShortDescription = *p.ShortDescription
	}

	if p.Description != nil {
		updated = true
		finding.Description = *p.Description
	}

	if p.Observation != nil {
		updated = true
		finding.Observation = *p.Observation
	}

	if p.Recommendation != nil {
		updated = true
		finding.Recommendation = *p.Recommendation
	}

	if p.Reference != nil {
		updated = true
		finding.Reference = *p.Reference
	}

	if p.Severity != nil {
		updated = true
		finding.Severity = models.FindingSeverity(*p.Severity)
	}

	if p.Archived != nil {
		updated = true
		finding.Archived = *p.Archived
	}

	if p.CVSS != nil {
		updated = true
		finding.CVSS = p.CVSS
	}

	if p.CVSSDescriptor != nil {
		updated = true
		finding.CVSSDescriptor = *p.CVSSDescriptor
	}

	return updated
}

func FindingDTOFromModel(finding models.Finding) dtos.FindingDTO {
	return dtos.FindingDTO{
		Model:            finding.Model,
		Name:             finding.Name,
		ShortDescription: finding.ShortDescription,
		Description:      finding.Description,
		Observation:      finding.Observation,
		Recommendation:   finding.Recommendation,
		Reference:        finding.Reference,
		AuditID:          finding.AuditID,
		Severity:         finding.Severity,
		Archived:         finding.Archived,
		CVSS:             finding.CVSS,
		CVSSDescriptor:   finding.CVSSDescriptor,
	}
}
