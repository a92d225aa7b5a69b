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
	"github.com/pep-un/Oxomium/database/models"
	"github.com/pep-un/Oxomium/dtos"
	"github.com/pep-un/Oxomium/shared"
)

func ConformityDTOFromModel(conformity models.Conformity) dtos.ConformityDTO {
	return dtos.ConformityDTO{
		Model:               conformity.Model,
		OrganizationID:      conformity.OrganizationID,
		RequirementID:       conformity.RequirementID,
		Requirement:         RequirementDTOFromModel(conformity.Requirement),
		Applicable:          conformity.Applicable,
		ResponsibleID:       conformity.ResponsibleID,
		Comment:             conformity.Comment,
		Status:              conformity.Status,
		StatusJustification: conformity.StatusJustification,
		StatusLastUpdate:    conformity.StatusLastUpdate,
	}
}

func RelatedItemDTOFromItem(item shared.RelatedItem) dtos.RelatedItemDTO {
	dto := dtos.RelatedItemDTO{
		Kind:  string(item.Kind),
		Label: item.Label(),
	}
	switch item.Kind {
	case shared.RelatedKindAction:
		dto.ID = item.Action.ID
	case shared.RelatedKindControl:
		dto.ID = item.Control.ID
	case shared.RelatedKindControlPoint:
		dto.ID = item.ControlPoint.ID
	}
	if updatedAt := item.UpdatedAt(); !updatedAt.IsZero() {
		dto.UpdatedAt = &updatedAt
	}
	return dto
}

// RelatedSortFromQuery maps the sort query parameter onto one of the three
// supported orders, defaulting to grouping by kind.
func RelatedSortFromQuery(value string) shared.RelatedSort {
	switch shared.RelatedSort(value) {
	case shared.RelatedSortRecentFirst:
		return shared.RelatedSortRecentFirst
	case shared.RelatedSortAlpha:
		return shared.RelatedSortAlpha
	}
	return shared.RelatedSortTypeThenTitle
}
