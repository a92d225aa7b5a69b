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

package router

import (
	"github.com/labstack/echo/v4"
	"github.com/pep-un/Oxomium/controllers"
)

type AuditRouter struct {
	*echo.Group
}

func NewAuditRouter(
	organizationRouter OrganizationRouter,
	auditController *controllers.AuditController,
) AuditRouter {
	auditsRouter := organizationRouter.Group.Group("/audits")
	auditsRouter.GET("/", auditController.List)
	auditsRouter.POST("/", auditController.Create)

	auditRouter := auditsRouter.Group("/:auditID")
	auditRouter.GET("/", auditController.Read)
	auditRouter.PATCH("/", auditController.Update)
	auditRouter.DELETE("/", auditController.Delete)

	auditRouter.GET("/findings/", auditController.ListFindings)
	auditRouter.POST("/findings/", auditController.CreateFinding)
	auditRouter.PATCH("/findings/:findingID/", auditController.UpdateFinding)
	auditRouter.DELETE("/findings/:findingID/", auditController.DeleteFinding)

	return AuditRouter{Group: auditRouter}
}
