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

type FrameworkRouter struct {
	*echo.Group
}

func NewFrameworkRouter(
	apiV1Router APIV1Router,
	frameworkController *controllers.FrameworkController,
	frameworkRepository shared.FrameworkRepository,
) FrameworkRouter {
	frameworksRouter := apiV1Router.Group.Group("/frameworks")
	frameworksRouter.GET("/", frameworkController.List)
	frameworksRouter.POST("/", frameworkController.Create)

	frameworkRouter := frameworksRouter.Group("/:frameworkSlug",
		frameworkMiddleware(frameworkRepository))

	frameworkRouter.GET("/", frameworkController.Read)
	frameworkRouter.PATCH("/", frameworkController.Update)
	frameworkRouter.DELETE("/", frameworkController.Delete)

	frameworkRouter.GET("/requirements/", frameworkController.ListRequirements)
	frameworkRouter.GET("/requirements/children/", frameworkController.ListRequirementChildren)
	frameworkRouter.POST("/requirements/", frameworkController.CreateRequirement)

	return FrameworkRouter{Group: frameworkRouter}
}
