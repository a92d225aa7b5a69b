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

	"github.com/labstack/echo/v4"
	"github.com/pep-un/Oxomium/database/models"
	"github.com/pep-un/Oxomium/dtos"
	"github.com/pep-un/Oxomium/shared"
	"github.com/pep-un/Oxomium/transformer"
	"github.com/pep-un/Oxomium/utils"
)

type ConformityController struct {
	conformityRepository shared.ConformityRepository
	conformityService    shared.ConformityService
}

func NewConformityController(conformityRepository shared.ConformityRepository, conformityService shared.ConformityService) *ConformityController {
	return &ConformityController{
		conformityRepository: conformityRepository,
		conformityService:    conformityService,
	}
}

// ListByFramework returns the organization's ledger slice for one adopted
// framework, in requirement tree order.
func (controller *ConformityController) ListByFramework(ctx shared.Context) error {
	organization := shared.GetOrganization(ctx)
	framework := shared.GetFramework(ctx)

	conformities, err := controller.conformityRepository.ListByOrganizationAndFramework(organization.ID, framework.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list conformities").WithInternal(err)
	}

	return ctx.JSON(200, utils.Map(conformities, transformer.ConformityDTOFromModel))
}

func (controller *ConformityController) Read(ctx shared.Context) error {
	conformity := shared.GetConformity(ctx)
	return ctx.JSON(200, transformer.ConformityDTOFromModel(conformity))
}

// Update patches the mutable fields of a conformity. Applicability and
// responsible changes trigger their tree propagation, an applicability flip
// additionally recomputes the ancestor aggregates.
func (controller *ConformityController) Update(ctx shared.Context) error {
	conformity := shared.GetConformity(ctx)

	var patchRequest dtos.ConformityPatchRequest
	if err := ctx.Bind(&patchRequest); err != nil {
		return echo.NewHTTPError(400, "could not decode request").WithInternal(err)
	}

	updated := false
	applicableChanged := false
	responsibleChanged := false

	if patchRequest.Applicable != nil && *patchRequest.Applicable != conformity.Applicable {
		updated = true
		applicableChanged = true
		conformity.Applicable = *patchRequest.Applicable
	}

	if patchRequest.ResponsibleID != nil {
		updated = true
		responsibleChanged = true
		conformity.ResponsibleID = patchRequest.ResponsibleID
	}

	if patchRequest.Comment != nil {
		updated = true
		conformity.Comment = *patchRequest.Comment
	}

	if !updated {
		return ctx.JSON(200, transformer.ConformityDTOFromModel(conformity))
	}

	if err := controller.conformityRepository.Save(nil, &conformity); err != nil {
		return echo.NewHTTPError(500, "could not update conformity").WithInternal(err)
	}

	if applicableChanged {
		if err := controller.conformityService.UpdateApplicable(conformity); err != nil {
			return echo.NewHTTPError(500, "could not propagate applicability").WithInternal(err)
		}
		if err := controller.conformityService.UpdateStatus(conformity); err != nil {
			return echo.NewHTTPError(500, "could not recompute ancestor statuses").WithInternal(err)
		}
	}

	if responsibleChanged {
		if err := controller.conformityService.UpdateResponsible(conformity); err != nil {
			return echo.NewHTTPError(500, "could not propagate responsible").WithInternal(err)
		}
	}

	return ctx.JSON(200, transformer.ConformityDTOFromModel(conformity))
}

// SetStatus records an expert statement on a leaf conformity. Evidence
// producers never go through this endpoint, their writes carry their own
// provenance tag.
func (controller *ConformityController) SetStatus(ctx shared.Context) error {
	conformity := shared.GetConformity(ctx)

	var req dtos.ConformityStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	changed, err := controller.conformityService.SetStatus(&conformity, req.Status, models.JustificationExpert)
	if err != nil {
		return echo.NewHTTPError(400, "could not set status").WithInternal(err)
	}
	if !changed {
		return echo.NewHTTPError(409, "status was not applied, the node is aggregated or already holds that value")
	}

	return ctx.JSON(200, transformer.ConformityDTOFromModel(conformity))
}

// Related lists the evidence linked to a conformity. The negative query
// parameter restricts it to unresolved evidence, sort selects one of the
// three supported orders.
func (controller *ConformityController) Related(ctx shared.Context) error {
	conformity := shared.GetConformity(ctx)

	opts := shared.DefaultRelatedOptions()
	if ctx.QueryParam("negative") == "true" {
		opts = shared.NegativeEvidenceOptions()
	}
	if ctx.QueryParam("active") == "true" {
		opts.OnlyActive = true
	}
	opts.Sort = transformer.RelatedSortFromQuery(ctx.QueryParam("sort"))

	items, err := controller.conformityService.GetRelated(conformity, opts)
	if err != nil {
		return echo.NewHTTPError(500, "could not list related evidence").WithInternal(err)
	}

	return ctx.JSON(200, utils.Map(items, transformer.RelatedItemDTOFromItem))
}
