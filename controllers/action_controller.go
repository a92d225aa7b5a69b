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

package controllers

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pep-un/Oxomium/database/models"
	"github.com/pep-un/Oxomium/dtos"
	"github.com/pep-un/Oxomium/shared"
	"github.com/pep-un/Oxomium/transformer"
	"github.com/pep-un/Oxomium/utils"
)

type ActionController struct {
	actionRepository     shared.ActionRepository
	conformityRepository shared.ConformityRepository
	findingRepository    shared.FindingRepository
	actionService        shared.ActionService
}

func NewActionController(actionRepository shared.ActionRepository, conformityRepository shared.ConformityRepository, findingRepository shared.FindingRepository, actionService shared.ActionService) *ActionController {
	return &ActionController{
		actionRepository:     actionRepository,
		conformityRepository: conformityRepository,
		findingRepository:    findingRepository,
		actionService:        actionService,
	}
}

func (controller *ActionController) List(ctx shared.Context) error {
	organization := shared.GetOrganization(ctx)

	actions, err := controller.actionRepository.ListByOrganization(organization.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list actions").WithInternal(err)
	}
	return ctx.JSON(200, utils.Map(actions, transformer.ActionDTOFromModel))
}

func (controller *ActionController) Create(ctx shared.Context) error {
	organization := shared.GetOrganization(ctx)

	var req dtos.ActionCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	action := transformer.ActionCreateRequestToModel(req, organization.ID)
	if err := controller.actionService.Save(&action); err != nil {
		return echo.NewHTTPError(500, "could not create action").WithInternal(err)
	}

	if err := controller.linkAssociations(&action, req.ConformityIDs, req.FindingIDs); err != nil {
		return err
	}

	return ctx.JSON(200, transformer.ActionDTOFromModel(action))
}

func (controller *ActionController) Read(ctx shared.Context) error {
	action, err := controller.readAction(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(200, transformer.ActionDTOFromModel(action))
}

// Update patches the action and re-runs the phase-driven side effects:
// active flag derivation, the evidence push on terminal phases and the
// finding archival sync.
func (controller *ActionController) Update(ctx shared.Context) error {
	action, err := controller.readAction(ctx)
	if err != nil {
		return err
	}

	var patchRequest dtos.ActionPatchRequest
	if err := ctx.Bind(&patchRequest); err != nil {
		return echo.NewHTTPError(400, "could not decode request").WithInternal(err)
	}

	if err := shared.V.Struct(patchRequest); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	updated := transformer.ApplyActionPatchRequestToModel(patchRequest, &action)

	var conformityIDs, findingIDs []uuid.UUID
	if patchRequest.ConformityIDs != nil {
		conformityIDs = *patchRequest.ConformityIDs
	}
	if patchRequest.FindingIDs != nil {
		findingIDs = *patchRequest.FindingIDs
	}
	if patchRequest.ConformityIDs != nil || patchRequest.FindingIDs != nil {
		if err := controller.linkAssociations(&action, conformityIDs, findingIDs); err != nil {
			return err
		}
	}

	if updated {
		if err := controller.actionService.Save(&action); err != nil {
			return echo.NewHTTPError(500, "could not update action").WithInternal(err)
		}
	}

	return ctx.JSON(200, transformer.ActionDTOFromModel(action))
}

func (controller *ActionController) Delete(ctx shared.Context) error {
	action, err := controller.readAction(ctx)
	if err != nil {
		return err
	}

	if err := controller.actionRepository.Delete(nil, action.ID); err != nil {
		return echo.NewHTTPError(500, "could not delete action").WithInternal(err)
	}

	return ctx.NoContent(200)
}

func (controller *ActionController) readAction(ctx shared.Context) (models.Action, error) {
	actionID, err := uuid.Parse(shared.SanitizeParam(ctx.Param("actionID")))
	if err != nil {
		return models.Action{}, echo.NewHTTPError(400, "invalid action id").WithInternal(err)
	}

	action, err := controller.actionRepository.Read(actionID)
	if err != nil {
		return models.Action{}, echo.NewHTTPError(404, "could not find action").WithInternal(err)
	}

	organization := shared.GetOrganization(ctx)
	if action.OrganizationID != organization.ID {
		return models.Action{}, echo.NewHTTPError(404, "could not find action")
	}
	return action, nil
}

func (controller *ActionController) linkAssociations(action *models.Action, conformityIDs, findingIDs []uuid.UUID) error {
	if conformityIDs != nil {
		conformities := make([]models.Conformity, 0, len(conformityIDs))
		for _, id := range conformityIDs {
			conformity, err := controller.conformityRepository.Read(id)
			if err != nil {
				return echo.NewHTTPError(400, "could not resolve conformities").WithInternal(err)
			}
			conformities = append(conformities, conformity)
		}
		if err := controller.actionRepository.ReplaceConformities(nil, action, conformities); err != nil {
			return echo.NewHTTPError(500, "could not link conformities").WithInternal(err)
		}
	}

	if findingIDs != nil {
		findings := make([]models.Finding, 0, len(findingIDs))
		for _, id := range findingIDs {
			finding, err := controller.findingRepository.Read(id)
			if err != nil {
				return echo.NewHTTPError(400, "could not resolve findings").WithInternal(err)
			}
			findings = append(findings, finding)
		}
		if err := controller.actionRepository.ReplaceFindings(nil, action, findings); err != nil {
			return echo.NewHTTPError(500, "could not link findings").WithInternal(err)
		}
	}

	return nil
}
