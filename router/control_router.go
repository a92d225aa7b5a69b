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

type ControlRouter struct {
	*echo.Group
}

func NewControlRouter(
	organizationRouter OrganizationRouter,
	controlController *controllers.ControlController,
) ControlRouter {
	controlsRouter := organizationRouter.Group.Group("/controls")
	controlsRouter.GET("/", controlController.List)
	controlsRouter.POST("/", controlController.Create)

	controlRouter := controlsRouter.Group("/:controlID")
	controlRouter.GET("/", controlController.Read)
	controlRouter.PATCH("/", controlController.Update)
	controlRouter.DELETE("/", controlController.Delete)
	controlRouter.GET("/points/", controlController.ListPoints)
	controlRouter.POST("/points/:controlPointID/evaluate/", controlController.EvaluatePoint)

	return ControlRouter{Group: controlRouter}
}
