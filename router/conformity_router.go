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
	"github.com/pep-un/Oxomium/shared"
)

type ConformityRouter struct {
	*echo.Group
}

func NewConformityRouter(
	organizationRouter OrganizationRouter,
	conformityController *controllers.ConformityController,
	conformityRepository shared.ConformityRepository,
	frameworkRepository shared.FrameworkRepository,
) ConformityRouter {
	// the ledger slice of one adopted framework
	ledgerRouter := organizationRouter.Group.Group("/frameworks/:frameworkSlug/conformities",
		frameworkMiddleware(frameworkRepository))
	ledgerRouter.GET("/", conformityController.ListByFramework)

	conformityRouter := organizationRouter.Group.Group("/conformities/:conformityID",
		conformityMiddleware(conformityRepository))

	conformityRouter.GET("/", conformityController.Read)
	conformityRouter.PATCH("/", conformityController.Update)
	conformityRouter.POST("/status/", conformityController.SetStatus)
	conformityRouter.GET("/related/", conformityController.Related)

	return ConformityRouter{Group: conformityRouter}
}
