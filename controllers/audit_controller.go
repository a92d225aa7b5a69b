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

type AuditController struct {
	auditRepository   shared.AuditRepository
	findingRepository shared.FindingRepository
}

func NewAuditController(auditRepository shared.AuditRepository, findingRepository shared.FindingRepository) *AuditController {
	return &AuditController{
		auditRepository:   auditRepository,
		findingRepository: findingRepository,
	}
}

func (controller *AuditController) List(ctx shared.Context) error {
	organization := shared.GetOrganization(ctx)

	audits, err := controller.auditRepository.ListByOrganization(organization.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list audits").WithInternal(err)
	}
	return ctx.JSON(200, utils.Map(audits, transformer.AuditDTOFromModel))
}

func (controller *AuditController) Create(ctx shared.Context) error {
	organization := shared.GetOrganization(ctx)

	var req dtos.AuditCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	audit := transformer.AuditCreateRequestToModel(req, organization.ID)
	if err := controller.auditRepository.Create(nil, &audit); err != nil {
		return echo.NewHTTPError(500, "could not create audit").WithInternal(err)
	}

	return ctx.JSON(200, transformer.AuditDTOFromModel(audit))
}

func (controller *AuditController) Read(ctx shared.Context) error {
	audit, err := controller.readAudit(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(200, transformer.AuditDTOFromModel(audit))
}

func (controller *AuditController) Update(ctx shared.Context) error {
	audit, err := controller.readAudit(ctx)
	if err != nil {
		return err
	}

	var patchRequest dtos.AuditPatchRequest
	if err := ctx.Bind(&patchRequest); err != nil {
		return echo.NewHTTPError(400, "could not decode request").WithInternal(err)
	}

	if err := shared.V.Struct(patchRequest); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	if transformer.ApplyAuditPatchRequestToModel(patchRequest, &audit) {
		if err := controller.auditRepository.Save(nil, &audit); err != nil {
			return echo.NewHTTPError(500, "could not update audit").WithInternal(err)
		}
	}

	return ctx.JSON(200, transformer.AuditDTOFromModel(audit))
}

func (controller *AuditController) Delete(ctx shared.Context) error {
	audit, err := controller.readAudit(ctx)
	if err != nil {
		return err
	}

	if err := controller.auditRepository.Delete(nil, audit.ID); err != nil {
		return echo.NewHTTPError(500, "could not delete audit").WithInternal(err)
	}

	return ctx.NoContent(200)
}

func (controller *AuditController) ListFindings(ctx shared.Context) error {
	audit, err := controller.readAudit(ctx)
	if err != nil {
		return err
	}

	findings, err := controller.findingRepository.ListByAudit(audit.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list findings").WithInternal(err)
	}
	return ctx.JSON(200, utils.Map(findings, transformer.FindingDTOFromModel))
}

func (controller *AuditController) CreateFinding(ctx shared.Context) error {
	audit, err := controller.readAudit(ctx)
	if err != nil {
		return err
	}

	var req dtos.FindingCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	finding := transformer.FindingCreateRequestToModel(req, audit.ID)
	if err := controller.findingRepository.Create(nil, &finding); err != nil {
		return echo.NewHTTPError(500, "could not create finding").WithInternal(err)
	}

	return ctx.JSON(200, transformer.FindingDTOFromModel(finding))
}

func (controller *AuditController) UpdateFinding(ctx shared.Context) error {
	finding, err := controller.readFinding(ctx)
	if err != nil {
		return err
	}

	var patchRequest dtos.FindingPatchRequest
	if err := ctx.Bind(&patchRequest); err != nil {
		return echo.NewHTTPError(400, "could not decode request").WithInternal(err)
	}

	if err := shared.V.Struct(patchRequest); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	if transformer.ApplyFindingPatchRequestToModel(patchRequest, &finding) {
		if err := controller.findingRepository.Save(nil, &finding); err != nil {
			return echo.NewHTTPError(500, "could not update finding").WithInternal(err)
		}
	}

	return ctx.JSON(200, transformer.FindingDTOFromModel(finding))
}

func (controller *AuditController) DeleteFinding(ctx shared.Context) error {
	finding, err := controller.readFinding(ctx)
	if err != nil {
		return err
	}

	if err := controller.findingRepository.Delete(nil, finding.ID); err != nil {
		return echo.NewHTTPError(500, "could not delete finding").WithInternal(err)
	}

	return ctx.NoContent(200)
}

func (controller *AuditController) readAudit(ctx shared.Context) (models.Audit, error) {
	auditID, err := uuid.Parse(shared.SanitizeParam(ctx.Param("auditID")))
	if err != nil {
		return models.Audit{}, echo.NewHTTPError(400, "invalid audit id").WithInternal(err)
	}

	audit, err := controller.auditRepository.Read(auditID)
	if err != nil {
		return models.Audit{}, echo.NewHTTPError(404, "could not find audit").WithInternal(err)
	}

	organization := shared.GetOrganization(ctx)
	if audit.OrganizationID != organization.ID {
		return models.Audit{}, echo.NewHTTPError(404, "could not find audit")
	}
	return audit, nil
}

func (controller *AuditController) readFinding(ctx shared.Context) (models.Finding, error) {
	audit, err := controller.readAudit(ctx)
	if err != nil {
		return models.Finding{}, err
	}

	findingID, err := uuid.Parse(shared.SanitizeParam(ctx.Param("findingID")))
	if err != nil {
		return models.Finding{}, echo.NewHTTPError(400, "invalid finding id").WithInternal(err)
	}

	finding, err := controller.findingRepository.Read(findingID)
	if err != nil {
		return models.Finding{}, echo.NewHTTPError(404, "could not find finding").WithInternal(err)
	}
	if finding.AuditID != audit.ID {
		return models.Finding{}, echo.NewHTTPError(404, "could not find finding")
	}
	return finding, nil
}
