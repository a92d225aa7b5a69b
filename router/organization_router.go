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

// OrganizationRouter is the organization-scoped group every tenant router
// builds on. Its middleware resolves the :organizationSlug parameter.
type OrganizationRouter struct {
	*echo.Group
}

func NewOrganizationRouter(
	apiV1Router APIV1Router,
	organizationController *controllers.OrganizationController,
	organizationRepository shared.OrganizationRepository,
	frameworkRepository shared.FrameworkRepository,
) OrganizationRouter {
	organizationsRouter := apiV1Router.Group.Group("/organizations")
	organizationsRouter.GET("/", organizationController.List)
	organizationsRouter.POST("/", organizationController.Create)

	organizationRouter := organizationsRouter.Group("/:organizationSlug",
		organizationMiddleware(organizationRepository))

	organizationRouter.GET("/", organizationController.Read)
	organizationRouter.PATCH("/", organizationController.Update)
	organizationRouter.DELETE("/", organizationController.Delete)
	organizationRouter.GET("/frameworks/", organizationController.ListFrameworks)

	adoptionRouter := organizationRouter.Group("/frameworks/:frameworkSlug",
		frameworkMiddleware(frameworkRepository))
	adoptionRouter.POST("/", organizationController.AdoptFramework)
	adoptionRouter.DELETE("/", organizationController.AbandonFramework)

	return OrganizationRouter{Group: organizationRouter}
}
