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

type IndicatorController struct {
	indicatorRepository      shared.IndicatorRepository
	indicatorPointRepository shared.IndicatorPointRepository
	indicatorService         shared.IndicatorService
}

func NewIndicatorController(indicatorRepository shared.IndicatorRepository, indicatorPointRepository shared.IndicatorPointRepository, indicatorService shared.IndicatorService) *IndicatorController {
	return &IndicatorController{
		indicatorRepository:      indicatorRepository,
		indicatorPointRepository: indicatorPointRepository,
		indicatorService:         indicatorService,
	}
}

func (controller *IndicatorController) List(ctx shared.Context) error {
	organization := shared.GetOrganization(ctx)

	indicators, err := controller.indicatorRepository.ListByOrganization(organization.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list indicators").WithInternal(err)
	}
	return ctx.JSON(200, utils.Map(indicators, transformer.IndicatorDTOFromModel))
}

func (controller *IndicatorController) Create(ctx shared.Context) error {
	organization := shared.GetOrganization(ctx)

	var req dtos.IndicatorCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	indicator := transformer.IndicatorCreateRequestToModel(req, organization.ID)
	if err := controller.indicatorService.CreateIndicator(&indicator); err != nil {
		return echo.NewHTTPError(500, "could not create indicator").WithInternal(err)
	}

	return ctx.JSON(200, transformer.IndicatorDTOFromModel(indicator))
}

func (controller *IndicatorController) Read(ctx shared.Context) error {
	indicator, err := controller.readIndicator(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(200, transformer.IndicatorDTOFromModel(indicator))
}

func (controller *IndicatorController) Update(ctx shared.Context) error {
	indicator, err := controller.readIndicator(ctx)
	if err != nil {
		return err
	}

	var patchRequest dtos.IndicatorPatchRequest
	if err := ctx.Bind(&patchRequest); err != nil {
		return echo.NewHTTPError(400, "could not decode request").WithInternal(err)
	}

	if err := shared.V.Struct(patchRequest); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	if transformer.ApplyIndicatorPatchRequestToModel(patchRequest, &indicator) {
		if err := controller.indicatorService.UpdateIndicator(&indicator); err != nil {
			return echo.NewHTTPError(500, "could not update indicator").WithInternal(err)
		}
	}

	return ctx.JSON(200, transformer.IndicatorDTOFromModel(indicator))
}

func (controller *IndicatorController) Delete(ctx shared.Context) error {
	indicator, err := controller.readIndicator(ctx)
	if err != nil {
		return err
	}

	if err := controller.indicatorRepository.Delete(nil, indicator.ID); err != nil {
		return echo.NewHTTPError(500, "could not delete indicator").WithInternal(err)
	}

	return ctx.NoContent(200)
}

func (controller *IndicatorController) ListPoints(ctx shared.Context) error {
	indicator, err := controller.readIndicator(ctx)
	if err != nil {
		return err
	}

	points, err := controller.indicatorPointRepository.ListByIndicator(indicator.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list indicator points").WithInternal(err)
	}
	return ctx.JSON(200, utils.Map(points, transformer.IndicatorPointDTOFromModel))
}

// RecordValue stores a measurement on one point and buckets it against the
// indicator's thresholds.
func (controller *IndicatorController) RecordValue(ctx shared.Context) error {
	indicator, err := controller.readIndicator(ctx)
	if err != nil {
		return err
	}

	pointID, err := uuid.Parse(shared.SanitizeParam(ctx.Param("indicatorPointID")))
	if err != nil {
		return echo.NewHTTPError(400, "invalid indicator point id").WithInternal(err)
	}

	point, err := controller.indicatorPointRepository.Read(pointID)
	if err != nil {
		return echo.NewHTTPError(404, "could not find indicator point").WithInternal(err)
	}
	if point.IndicatorID != indicator.ID {
		return echo.NewHTTPError(404, "could not find indicator point")
	}

	var req dtos.IndicatorValueRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	if err := controller.indicatorService.RecordValue(&point, req.Value, nil, req.Comment); err != nil {
		return echo.NewHTTPError(500, "could not record value").WithInternal(err)
	}

	return ctx.JSON(200, transformer.IndicatorPointDTOFromModel(point))
}

func (controller *IndicatorController) readIndicator(ctx shared.Context) (models.Indicator, error) {
	indicatorID, err := uuid.Parse(shared.SanitizeParam(ctx.Param("indicatorID")))
	if err != nil {
		return models.Indicator{}, echo.NewHTTPError(400, "invalid indicator id").WithInternal(err)
	}

	indicator, err := controller.indicatorRepository.Read(indicatorID)
	if err != nil {
		return models.Indicator{}, echo.NewHTTPError(404, "could not find indicator").WithInternal(err)
	}

	organization := shared.GetOrganization(ctx)
	if indicator.OrganizationID != organization.ID {
		return models.Indicator{}, echo.NewHTTPError(404, "could not find indicator")
	}
	return indicator, nil
}
