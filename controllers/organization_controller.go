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
	"github.com/pep-un/Oxomium/database"
	"github.com/pep-un/Oxomium/database/models"
	"github.com/pep-un/Oxomium/dtos"
	"github.com/pep-un/Oxomium/shared"
	"github.com/pep-un/Oxomium/transformer"
	"github.com/pep-un/Oxomium/utils"
)

type OrganizationController struct {
	organizationRepository shared.OrganizationRepository
	frameworkService       shared.FrameworkService
}

func NewOrganizationController(organizationRepository shared.OrganizationRepository, frameworkService shared.FrameworkService) *OrganizationController {
	return &OrganizationController{
		organizationRepository: organizationRepository,
		frameworkService:       frameworkService,
	}
}

func (controller *OrganizationController) List(ctx shared.Context) error {
	organizations, err := controller.organizationRepository.All()
	if err != nil {
		return echo.NewHTTPError(500, "could not list organizations").WithInternal(err)
	}
	return ctx.JSON(200, utils.Map(organizations, transformer.OrganizationDTOFromModel))
}

func (controller *OrganizationController) Create(ctx shared.Context) error {
	var req dtos.OrganizationCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	organization := transformer.OrganizationCreateRequestToModel(req)
	if organization.Slug == "" {
		return echo.NewHTTPError(400, "organization name must produce a non-empty slug")
	}

	if err := controller.organizationRepository.Create(nil, &organization); err != nil {
		if database.IsDuplicateKeyError(err) {
			return echo.NewHTTPError(409, "an organization with that name already exists").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not create organization").WithInternal(err)
	}

	return ctx.JSON(200, transformer.OrganizationDTOFromModel(organization))
}

func (controller *OrganizationController) Read(ctx shared.Context) error {
	organization := shared.GetOrganization(ctx)

	frameworks, err := controller.organizationRepository.GetFrameworks(organization.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not read adopted frameworks").WithInternal(err)
	}
	organization.Frameworks = frameworks

	return ctx.JSON(200, transformer.OrganizationDTOFromModel(organization))
}

func (controller *OrganizationController) Update(ctx shared.Context) error {
	organization := shared.GetOrganization(ctx)

	var patchRequest dtos.OrganizationPatchRequest
	if err := ctx.Bind(&patchRequest); err != nil {
		return echo.NewHTTPError(400, "could not decode request").WithInternal(err)
	}

	updated := transformer.ApplyOrganizationPatchRequestToModel(patchRequest, &organization)

	if organization.Name == "" || organization.Slug == "" {
		return echo.NewHTTPError(409, "organizations with an empty name or an empty slug are not allowed")
	}

	if updated {
		if err := controller.organizationRepository.Save(nil, &organization); err != nil {
			return echo.NewHTTPError(500, "could not update organization").WithInternal(err)
		}
	}

	return ctx.JSON(200, transformer.OrganizationDTOFromModel(organization))
}

func (controller *OrganizationController) Delete(ctx shared.Context) error {
	organizationID := shared.GetOrganization(ctx).GetID()

	if err := controller.organizationRepository.Delete(nil, organizationID); err != nil {
		return echo.NewHTTPError(500, "could not delete organization").WithInternal(err)
	}

	return ctx.NoContent(200)
}

func (controller *OrganizationController) ListFrameworks(ctx shared.Context) error {
	organization := shared.GetOrganization(ctx)

	frameworks, err := controller.organizationRepository.GetFrameworks(organization.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list adopted frameworks").WithInternal(err)
	}

	return ctx.JSON(200, utils.Map(frameworks, transformer.FrameworkDTOFromModel))
}

// AdoptFramework links the framework to the organization and creates its
// conformity ledger in one transaction.
func (controller *OrganizationController) AdoptFramework(ctx shared.Context) error {
	organization := shared.GetOrganization(ctx)
	framework := shared.GetFramework(ctx)

	adopted, err := controller.organizationRepository.GetFrameworks(organization.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not read adopted frameworks").WithInternal(err)
	}
	if utils.Any(adopted, func(f models.Framework) bool { return f.ID == framework.ID }) {
		return echo.NewHTTPError(409, "framework is already adopted")
	}

	if err := controller.frameworkService.AdoptFramework(organization, framework); err != nil {
		return echo.NewHTTPError(500, "could not adopt framework").WithInternal(err)
	}

	return ctx.NoContent(200)
}

func (controller *OrganizationController) AbandonFramework(ctx shared.Context) error {
	organization := shared.GetOrganization(ctx)
	framework := shared.GetFramework(ctx)

	if err := controller.frameworkService.AbandonFramework(organization, framework); err != nil {
		return echo.NewHTTPError(500, "could not abandon framework").WithInternal(err)
	}

	return ctx.NoContent(200)
}
