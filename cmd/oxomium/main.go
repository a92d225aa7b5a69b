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

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/pep-un/Oxomium/controllers"
	"github.com/pep-un/Oxomium/daemons"
	"github.com/pep-un/Oxomium/database"
	"github.com/pep-un/Oxomium/database/repositories"
	"github.com/pep-un/Oxomium/router"
	"github.com/pep-un/Oxomium/services"
	"github.com/pep-un/Oxomium/shared"
	"go.uber.org/fx"
)

func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	db, err := shared.DatabaseFactory()
	if err != nil {
		slog.Error(err.Error())
		panic(errors.New("failed to setup database connection"))
	}

	if os.Getenv("DISABLE_AUTOMIGRATE") != "true" {
		slog.Info("running database migrations...")
		if err := database.RunMigrations(db); err != nil {
			slog.Error("failed to run database migrations", "err", err)
			panic(errors.New("failed to run database migrations"))
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	fx.New(
		fx.Supply(db),
		repositories.Module,
		services.Module,
		controllers.ControllerModule,
		router.RouterModule,
		daemons.Module,

		// routers register their routes on construction
		fx.Invoke(func(organizationRouter router.OrganizationRouter) {}),
		fx.Invoke(func(frameworkRouter router.FrameworkRouter) {}),
		fx.Invoke(func(conformityRouter router.ConformityRouter) {}),
		fx.Invoke(func(controlRouter router.ControlRouter) {}),
		fx.Invoke(func(actionRouter router.ActionRouter) {}),
		fx.Invoke(func(auditRouter router.AuditRouter) {}),
		fx.Invoke(func(indicatorRouter router.IndicatorRouter) {}),

		fx.Invoke(run),
	).Run()
}

func run(lc fx.Lifecycle, srv router.Server, runner shared.DaemonRunner) {
	address := os.Getenv("HTTP_LISTEN_ADDRESS")
	if address == "" {
		address = ":8080"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			runner.Start()
			go func() {
				if err := srv.Echo.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
					slog.Error("http server stopped", "err", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Echo.Shutdown(ctx)
		},
	})
}
