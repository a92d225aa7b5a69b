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

type ActionRouter struct {
	*echo.Group
}

func NewActionRouter(
	organizationRouter OrganizationRouter,
	actionController *controllers.ActionController,
) ActionRouter {
	actionsRouter := organizationRouter.Group.Group("/actions")
	actionsRouter.GET("/", actionController.List)
	actionsRouter.POST("/", actionController.Create)

	actionRouter := actionsRouter.Group("/:actionID")
	actionRouter.GET("/", actionController.Read)
	actionRouter.PATCH("/", actionController.Update)
	actionRouter.DELETE("/", actionController.Delete)

	return ActionRouter{Group: actionRouter}
}
