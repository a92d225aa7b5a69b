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

func ActionCreateRequestToModel(c dtos.ActionCreateRequest, organizationID uuid.UUID) models.Action {
	return models.Action{
		Title:          c.Title,
		Description:    c.Description,
		Reference:      c.Reference,
		OrganizationID: organizationID,
		OwnerID:        c.OwnerID,
		Status:         models.ActionAnalysing,
		Active:         true,
	}
}

func ApplyActionPatchRequestToModel(p dtos.ActionPatchRequest, action *models.Action) bool {
	updated := false

	if p.Title != nil {
		updated = true
		action.Title = *p.Title
	}

	if p.Status != nil {
		updated = true
		action.Status = models.ActionStatus(*p.Status)
	}

	if p.StatusComment != nil {
		updated = true
		action.StatusComment = *p.StatusComment
	}

	if p.Reference != nil {
		updated = true
		action.Reference = *p.Reference
	}

	if p.Description != nil {
		updated = true
		action.Description = *p.Description
	}

	if p.OwnerID != nil {
		updated = true
		action.OwnerID = p.OwnerID
	}

	if p.PlanStartDate != nil {
		updated = true
		action.PlanStartDate = p.PlanStartDate
	}

	if p.PlanEndDate != nil {
		updated = true
		action.PlanEndDate = p.PlanEndDate
	}

	if p.PlanComment != nil {
		updated = true
		action.PlanComment = *p.PlanComment
	}

	if p.ImplementStartDate != nil {
		updated = true
		action.ImplementStartDate = p.ImplementStartDate
	}

	if p.ImplementEndDate != nil {
		updated = true
		action.ImplementEndDate = p.ImplementEndDate
	}

	if p.ImplementStatus != nil {
		updated = true
		action.ImplementStatus = *p.ImplementStatus
	}

	if p.ImplementComment != nil {
		updated = true
		action.ImplementComment = *p.ImplementComment
	}

	if p.ControlDate != nil {
		updated = true
		action.ControlDate = p.ControlDate
	}

	if p.ControlComment != nil {
		updated = true
		action.ControlComment = *p.ControlComment
	}

	if p.ControlUserID != nil {
		updated = true
		action.ControlUserID = p.ControlUserID
	}

	return updated
}

func ActionDTOFromModel(action models.Action) dtos.ActionDTO {
	return dtos.ActionDTO{
		Model:          action.Model,
		Title:          action.Title,
		Status:         action.Status,
		StatusComment:  action.StatusComment,
		Reference:      action.Reference,
		Active:         action.Active,
		OrganizationID: action.OrganizationID,
		OwnerID:        action.OwnerID,
		Description:    action.Description,

		PlanStartDate: action.PlanStartDate,
		PlanEndDate:   action.PlanEndDate,
		PlanComment:   action.PlanComment,

		ImplementStartDate: action.ImplementStartDate,
		ImplementEndDate:   action.ImplementEndDate,
		ImplementStatus:    action.ImplementStatus,
		ImplementComment:   action.ImplementComment,

		ControlDate:    action.ControlDate,
		ControlComment: action.ControlComment,
		ControlUserID:  action.ControlUserID,
	}
}
