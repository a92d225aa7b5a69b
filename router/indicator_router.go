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

type IndicatorRouter struct {
	*echo.Group
}

func NewIndicatorRouter(
	organizationRouter OrganizationRouter,
	indicatorController *controllers.IndicatorController,
) IndicatorRouter {
	indicatorsRouter := organizationRouter.Group.Group("/indicators")
	indicatorsRouter.GET("/", indicatorController.List)
	indicatorsRouter.POST("/", indicatorController.Create)

	indicatorRouter := indicatorsRouter.Group("/:indicatorID")
	indicatorRouter.GET("/", indicatorController.Read)
	indicatorRouter.PATCH("/", indicatorController.Update)
	indicatorRouter.DELETE("/", indicatorController.Delete)
	indicatorRouter.GET("/points/", indicatorController.ListPoints)
	indicatorRouter.POST("/points/:indicatorPointID/value/", indicatorController.RecordValue)

	return IndicatorRouter{Group: indicatorRouter}
}
