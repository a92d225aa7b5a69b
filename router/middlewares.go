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
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pep-un/Oxomium/shared"
)

// organizationMiddleware resolves the :organizationSlug path parameter and
// stores the organization on the request context.
func organizationMiddleware(repository shared.OrganizationRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			organizationSlug := shared.SanitizeParam(ctx.Param("organizationSlug"))
			if organizationSlug == "" {
				return echo.NewHTTPError(400, "missing organization slug")
			}

			organization, err := repository.ReadBySlug(organizationSlug)
			if err != nil {
				return echo.NewHTTPError(404, "could not find organization").WithInternal(err)
			}

			shared.SetOrganization(ctx, organization)
			return next(ctx)
		}
	}
}

func frameworkMiddleware(repository shared.FrameworkRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			frameworkSlug := shared.SanitizeParam(ctx.Param("frameworkSlug"))
			if frameworkSlug == "" {
				return echo.NewHTTPError(400, "missing framework slug")
			}

			framework, err := repository.ReadBySlug(frameworkSlug)
			if err != nil {
				return echo.NewHTTPError(404, "could not find framework").WithInternal(err)
			}

			shared.SetFramework(ctx, framework)
			return next(ctx)
		}
	}
}

// conformityMiddleware resolves the :conformityID path parameter, scoped to
// the organization already on the context.
func conformityMiddleware(repository shared.ConformityRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			conformityID, err := uuid.Parse(shared.SanitizeParam(ctx.Param("conformityID")))
			if err != nil {
				return echo.NewHTTPError(400, "invalid conformity id").WithInternal(err)
			}

			conformity, err := repository.Read(conformityID)
			if err != nil {
				return echo.NewHTTPError(404, "could not find conformity").WithInternal(err)
			}

			organization := shared.GetOrganization(ctx)
			if conformity.OrganizationID != organization.ID {
				return echo.NewHTTPError(404, "could not find conformity")
			}

			shared.SetConformity(ctx, conformity)
			return next(ctx)
		}
	}
}
