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
	"github.com/pep-un/Oxomium/database"
	"github.com/pep-un/Oxomium/dtos"
	"github.com/pep-un/Oxomium/shared"
	"github.com/pep-un/Oxomium/transformer"
	"github.com/pep-un/Oxomium/utils"
)

type FrameworkController struct {
	frameworkRepository   shared.FrameworkRepository
	requirementRepository shared.RequirementRepository
	frameworkService      shared.FrameworkService
}

func NewFrameworkController(frameworkRepository shared.FrameworkRepository, requirementRepository shared.RequirementRepository, frameworkService shared.FrameworkService) *FrameworkController {
	return &FrameworkController{
		frameworkRepository:   frameworkRepository,
		requirementRepository: requirementRepository,
		frameworkService:      frameworkService,
	}
}

func (controller *FrameworkController) List(ctx shared.Context) error {
	frameworks, err := controller.frameworkRepository.All()
	if err != nil {
		return echo.NewHTTPError(500, "could not list frameworks").WithInternal(err)
	}
	return ctx.JSON(200, utils.Map(frameworks, transformer.FrameworkDTOFromModel))
}

func (controller *FrameworkController) Create(ctx shared.Context) error {
	var req dtos.FrameworkCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	framework := transformer.FrameworkCreateRequestToModel(req)
	if framework.Slug == "" {
		return echo.NewHTTPError(400, "framework name must produce a non-empty slug")
	}

	if err := controller.frameworkRepository.Create(nil, &framework); err != nil {
		if database.IsDuplicateKeyError(err) {
			return echo.NewHTTPError(409, "a framework with that name already exists").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not create framework").WithInternal(err)
	}

	return ctx.JSON(200, transformer.FrameworkDTOFromModel(framework))
}

func (controller *FrameworkController) Read(ctx shared.Context) error {
	framework := shared.GetFramework(ctx)
	return ctx.JSON(200, transformer.FrameworkDTOFromModel(framework))
}

func (controller *FrameworkController) Update(ctx shared.Context) error {
	framework := shared.GetFramework(ctx)

	var patchRequest dtos.FrameworkPatchRequest
	if err := ctx.Bind(&patchRequest); err != nil {
		return echo.NewHTTPError(400, "could not decode request").WithInternal(err)
	}

	if err := shared.V.Struct(patchRequest); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	updated := transformer.ApplyFrameworkPatchRequestToModel(patchRequest, &framework)

	if framework.Name == "" || framework.Slug == "" {
		return echo.NewHTTPError(409, "frameworks with an empty name or an empty slug are not allowed")
	}

	if updated {
		if err := controller.frameworkRepository.Save(nil, &framework); err != nil {
			return echo.NewHTTPError(500, "could not update framework").WithInternal(err)
		}
	}

	return ctx.JSON(200, transformer.FrameworkDTOFromModel(framework))
}

func (controller *FrameworkController) Delete(ctx shared.Context) error {
	frameworkID := shared.GetFramework(ctx).GetID()

	if err := controller.frameworkRepository.Delete(nil, frameworkID); err != nil {
		return echo.NewHTTPError(500, "could not delete framework").WithInternal(err)
	}

	return ctx.NoContent(200)
}

// ListRequirements returns the whole requirement tree in path order, which
// is depth-first document order.
func (controller *FrameworkController) ListRequirements(ctx shared.Context) error {
	framework := shared.GetFramework(ctx)

	requirements, err := controller.requirementRepository.ListByFramework(framework.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list requirements").WithInternal(err)
	}

	return ctx.JSON(200, utils.Map(requirements, transformer.RequirementDTOFromModel))
}

// ListRequirementChildren returns the direct children of one requirement,
// or the root level when no parent is given.
func (controller *FrameworkController) ListRequirementChildren(ctx shared.Context) error {
	framework := shared.GetFramework(ctx)

	parentParam := ctx.QueryParam("parent")
	if parentParam == "" {
		roots, err := controller.requirementRepository.ListRoots(framework.ID)
		if err != nil {
			return echo.NewHTTPError(500, "could not list root requirements").WithInternal(err)
		}
		return ctx.JSON(200, utils.Map(roots, transformer.RequirementDTOFromModel))
	}

	parentID, err := uuid.Parse(parentParam)
	if err != nil {
		return echo.NewHTTPError(400, "invalid parent id").WithInternal(err)
	}

	children, err := controller.requirementRepository.ListChildren(parentID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list requirement children").WithInternal(err)
	}
	return ctx.JSON(200, utils.Map(children, transformer.RequirementDTOFromModel))
}

func (controller *FrameworkController) CreateRequirement(ctx shared.Context) error {
	framework := shared.GetFramework(ctx)

	var req dtos.RequirementCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	requirement := transformer.RequirementCreateRequestToModel(req, framework.ID)
	if err := controller.frameworkService.CreateRequirement(&requirement); err != nil {
		if database.IsDuplicateKeyError(err) {
			return echo.NewHTTPError(409, "a requirement with that name already exists in this framework").WithInternal(err)
		}
		return echo.NewHTTPError(400, "could not create requirement").WithInternal(err)
	}

	return ctx.JSON(200, transformer.RequirementDTOFromModel(requirement))
}
