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

type ControlController struct {
	controlRepository      shared.ControlRepository
	controlPointRepository shared.ControlPointRepository
	conformityRepository   shared.ConformityRepository
	controlService         shared.ControlService
}

func NewControlController(controlRepository shared.ControlRepository, controlPointRepository shared.ControlPointRepository, conformityRepository shared.ConformityRepository, controlService shared.ControlService) *ControlController {
	return &ControlController{
		controlRepository:      controlRepository,
		controlPointRepository: controlPointRepository,
		conformityRepository:   conformityRepository,
		controlService:         controlService,
	}
}

func (controller *ControlController) List(ctx shared.Context) error {
	organization := shared.GetOrganization(ctx)

	controls, err := controller.controlRepository.ListByOrganization(organization.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list controls").WithInternal(err)
	}
	return ctx.JSON(200, utils.Map(controls, transformer.ControlDTOFromModel))
}

func (controller *ControlController) Create(ctx shared.Context) error {
	organization := shared.GetOrganization(ctx)

	var req dtos.ControlCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	control := transformer.ControlCreateRequestToModel(req, organization.ID)
	if err := controller.controlService.CreateControl(&control); err != nil {
		return echo.NewHTTPError(500, "could not create control").WithInternal(err)
	}

	if len(req.ConformityIDs) > 0 {
		conformities, err := controller.readConformities(req.ConformityIDs)
		if err != nil {
			return echo.NewHTTPError(400, "could not resolve conformities").WithInternal(err)
		}
		if err := controller.controlRepository.ReplaceConformities(nil, &control, conformities); err != nil {
			return echo.NewHTTPError(500, "could not link conformities").WithInternal(err)
		}
	}

	return ctx.JSON(200, transformer.ControlDTOFromModel(control))
}

func (controller *ControlController) Read(ctx shared.Context) error {
	control, err := controller.readControl(ctx)
	if err != nil {
		return err
	}

	conformities, err := controller.controlRepository.GetConformities(control.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not read linked conformities").WithInternal(err)
	}
	control.Conformities = conformities

	return ctx.JSON(200, transformer.ControlDTOFromModel(control))
}

func (controller *ControlController) Update(ctx shared.Context) error {
	control, err := controller.readControl(ctx)
	if err != nil {
		return err
	}

	var patchRequest dtos.ControlPatchRequest
	if err := ctx.Bind(&patchRequest); err != nil {
		return echo.NewHTTPError(400, "could not decode request").WithInternal(err)
	}

	if err := shared.V.Struct(patchRequest); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	updated := transformer.ApplyControlPatchRequestToModel(patchRequest, &control)

	if updated {
		if err := controller.controlService.UpdateControl(&control); err != nil {
			return echo.NewHTTPError(500, "could not update control").WithInternal(err)
		}
	}

	if patchRequest.ConformityIDs != nil {
		conformities, err := controller.readConformities(*patchRequest.ConformityIDs)
		if err != nil {
			return echo.NewHTTPError(400, "could not resolve conformities").WithInternal(err)
		}
		if err := controller.controlRepository.ReplaceConformities(nil, &control, conformities); err != nil {
			return echo.NewHTTPError(500, "could not link conformities").WithInternal(err)
		}
	}

	return ctx.JSON(200, transformer.ControlDTOFromModel(control))
}

func (controller *ControlController) Delete(ctx shared.Context) error {
	control, err := controller.readControl(ctx)
	if err != nil {
		return err
	}

	if err := controller.controlRepository.Delete(nil, control.ID); err != nil {
		return echo.NewHTTPError(500, "could not delete control").WithInternal(err)
	}

	return ctx.NoContent(200)
}

func (controller *ControlController) ListPoints(ctx shared.Context) error {
	control, err := controller.readControl(ctx)
	if err != nil {
		return err
	}

	points, err := controller.controlPointRepository.ListByControl(control.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list control points").WithInternal(err)
	}
	return ctx.JSON(200, utils.Map(points, transformer.ControlPointDTOFromModel))
}

// EvaluatePoint records the outcome of one control window and, when the
// window is current, pushes it onto the verified conformities.
func (controller *ControlController) EvaluatePoint(ctx shared.Context) error {
	pointID, err := uuid.Parse(shared.SanitizeParam(ctx.Param("controlPointID")))
	if err != nil {
		return echo.NewHTTPError(400, "invalid control point id").WithInternal(err)
	}

	point, err := controller.controlPointRepository.Read(pointID)
	if err != nil {
		return echo.NewHTTPError(404, "could not find control point").WithInternal(err)
	}

	var req dtos.ControlPointEvaluateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	if err := controller.controlService.EvaluateControlPoint(&point, models.ControlPointStatus(req.Result), nil, req.Comment); err != nil {
		return echo.NewHTTPError(400, "could not evaluate control point").WithInternal(err)
	}

	return ctx.JSON(200, transformer.ControlPointDTOFromModel(point))
}

func (controller *ControlController) readControl(ctx shared.Context) (models.Control, error) {
	controlID, err := uuid.Parse(shared.SanitizeParam(ctx.Param("controlID")))
	if err != nil {
		return models.Control{}, echo.NewHTTPError(400, "invalid control id").WithInternal(err)
	}

	control, err := controller.controlRepository.Read(controlID)
	if err != nil {
		return models.Control{}, echo.NewHTTPError(404, "could not find control").WithInternal(err)
	}

	organization := shared.GetOrganization(ctx)
	if control.OrganizationID != organization.ID {
		return models.Control{}, echo.NewHTTPError(404, "could not find control")
	}
	return control, nil
}

func (controller *ControlController) readConformities(ids []uuid.UUID) ([]models.Conformity, error) {
	conformities := make([]models.Conformity, 0, len(ids))
	for _, id := range ids {
		conformity, err := controller.conformityRepository.Read(id)
		if err != nil {
			return nil, err
		}
		conformities = append(conformities, conformity)
	}
	return conformities, nil
}
