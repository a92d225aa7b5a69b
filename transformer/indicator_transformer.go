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

func IndicatorCreateRequestToModel(c dtos.IndicatorCreateRequest, organizationID uuid.UUID) models.Indicator {
	indicator := models.Indicator{
		Name:           c.Name,
		Goal:           c.Goal,
		Source:         c.Source,
		Formula:        c.Formula,
		Worst:          c.Worst,
		Best:           c.Best,
		Warning:        c.Warning,
		Critical:       c.Critical,
		ResponsibleID:  c.ResponsibleID,
		OrganizationID: organizationID,
		Frequency:      models.FrequencyQuarterly,
	}
	if c.Frequency != 0 {
		indicator.Frequency = models.ControlFrequency(c.Frequency)
	}
	return indicator
}

func ApplyIndicatorPatchRequestToModel(p dtos.IndicatorPatchRequest, indicator *models.Indicator) bool {
	updated := false

	if p.Name != nil {
		updated = true
		indicator.Name = *p.Name
	}

	if p.Goal != nil {
		updated = true
		indicator.Goal = *p.Goal
	}

	if p.Source != nil {
		updated = true
		indicator.Source = *p.Source
	}

	if p.Formula != nil {
		updated = true
		indicator.Formula = *p.Formula
	}

	if p.Worst != nil {
		updated = true
		indicator.Worst = *p.Worst
	}

	if p.Best != nil {
		updated = true
		indicator.Best = *p.Best
	}

	if p.Warning != nil {
		updated = true
		indicator.Warning = *p.Warning
	}

	if p.Critical != nil {
		updated = true
		indicator.Critical = *p.Critical
	}

	if p.ResponsibleID != nil {
		updated = true
		indicator.ResponsibleID = p.ResponsibleID
	}

	if p.Frequency != nil {
		updated = true
		indicator.Frequency = models.ControlFrequency(*p.Frequency)
	}

	return updated
}

func IndicatorDTOFromModel(indicator models.Indicator) dtos.IndicatorDTO {
	return dtos.IndicatorDTO{
		Model:          indicator.Model,
		Name:           indicator.Name,
		Goal:           indicator.Goal,
		Source:         indicator.Source,
		Formula:        indicator.Formula,
		Worst:          indicator.Worst,
		Best:           indicator.Best,
		Warning:        indicator.Warning,
		Critical:       indicator.Critical,
		ResponsibleID:  indicator.ResponsibleID,
		OrganizationID: indicator.OrganizationID,
		Frequency:      indicator.Frequency,
	}
}

func IndicatorPointDTOFromModel(point models.IndicatorPoint) dtos.IndicatorPointDTO {
	return dtos.IndicatorPointDTO{
		Model:           point.Model,
		IndicatorID:     point.IndicatorID,
		PeriodStartDate: point.PeriodStartDate,
		PeriodEndDate:   point.PeriodEndDate,
		Status:          point.Status,
		ControlDate:     point.ControlDate,
		ControlUserID:   point.ControlUserID,
		Value:           point.Value,
		Comment:         point.Comment,
	}
}
