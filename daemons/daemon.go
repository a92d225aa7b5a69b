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

package daemons

import (
	"log/slog"
	"time"

	"github.com/pep-un/Oxomium/shared"
)

// DaemonRunner drives the daily lifecycle rules: control point and
// indicator point statuses follow their evaluation windows as time passes.
// Every rule is idempotent, a missed or doubled tick cannot corrupt state.
type DaemonRunner struct {
	controlService   shared.ControlService
	indicatorService shared.IndicatorService
}

func NewDaemonRunner(controlService shared.ControlService, indicatorService shared.IndicatorService) *DaemonRunner {
	return &DaemonRunner{
		controlService:   controlService,
		indicatorService: indicatorService,
	}
}

// RunOnce applies the date rules once for the given day.
func (runner *DaemonRunner) RunOnce(today time.Time) error {
	daemonStart := time.Now()
	slog.Info("starting daily status refresh", "day", today.Format(time.DateOnly))

	if err := runner.controlService.RefreshStatuses(today); err != nil {
		slog.Error("could not refresh control point statuses", "err", err)
		return err
	}

	if err := runner.indicatorService.RefreshStatuses(today); err != nil {
		slog.Error("could not refresh indicator point statuses", "err", err)
		return err
	}

	slog.Info("daily status refresh finished", "duration", time.Since(daemonStart))
	return nil
}

// Start runs the rules immediately and then once every 24 hours.
func (runner *DaemonRunner) Start() {
	go func() {
		runner.tick()
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			runner.tick()
		}
	}()
}

func (runner *DaemonRunner) tick() {
	if err := runner.RunOnce(time.Now()); err != nil {
		slog.Error("daily status refresh failed", "err", err)
	}
}

var _ shared.DaemonRunner = (*DaemonRunner)(nil)
