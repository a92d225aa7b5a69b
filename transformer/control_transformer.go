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
	"github.com/pep-un/Oxomium/utils"
)

func ControlCreateRequestToModel(c dtos.ControlCreateRequest, organizationID uuid.UUID) models.Control {
	control := models.Control{
		Title:          c.Title,
		Description:    c.Description,
		OrganizationID: organizationID,
		Frequency:      models.FrequencyYearly,
		Level:          models.ControlLevelFirst,
	}
	if c.Frequency != 0 {
		control.Frequency = models.ControlFrequency(c.Frequency)
	}
	if c.Level != 0 {
		control.Level = models.ControlLevel(c.Level)
	}
	return control
}

func ApplyControlPatchRequestToModel(p dtos.ControlPatchRequest, control *models.Control) bool {
	updated := false

	if p.Title != nil {
		updated = true
		control.Title = *p.Title
	}

	if p.Description != nil {
		updated = true
		control.Description = *p.Description
	}

	if p.Frequency != nil {
		updated = true
		control.Frequency = models.ControlFrequency(*p.Frequency)
	}

	if p.Level != nil {
		updated = true
		control.Level = models.ControlLevel(*p.Level)
	}

	return updated
}

func ControlDTOFromModel(control models.Control) dtos.ControlDTO {
	return dtos.ControlDTO{
		Model:          control.Model,
		Title:          control.Title,
		Description:    control.Description,
		OrganizationID: control.OrganizationID,
		Frequency:      control.Frequency,
		Level:          control.Level,
		Conformities:   utils.Map(control.Conformities, ConformityDTOFromModel),
	}
}

func ControlPointDTOFromModel(point models.ControlPoint) dtos.ControlPointDTO {
	return dtos.ControlPointDTO{
		Model:           point.Model,
		ControlID:       point.ControlID,
		PeriodStartDate: point.PeriodStartDate,
		PeriodEndDate:   point.PeriodEndDate,
		Status:          point.Status,
		ControlDate:     point.ControlDate,
		ControlUserID:   point.ControlUserID,
		Comment:         point.Comment,
	}
}
