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

package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func NewControlPointsCommand() *cobra.Command {
	controlPoints := cobra.Command{
		Use:   "controlpoints",
		Short: "Manage control point windows",
	}

	controlPoints.AddCommand(newBootstrapCommand())
	return &controlPoints
}

// newBootstrapCommand regenerates the current-year windows of every control
// and every indicator, preserving evaluated ones.
func newBootstrapCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bootstrap",
		Short: "Regenerate the current-year windows for all controls and indicators",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := newServiceSet()
			if err != nil {
				return err
			}

			controls, err := set.controlRepo.All()
			if err != nil {
				return err
			}
			for _, control := range controls {
				if err := set.controlService.BootstrapControlPoints(control); err != nil {
					slog.Error("could not bootstrap control points", "control", control.ID, "err", err)
					return err
				}
			}
			slog.Info("control point windows regenerated", "controls", len(controls))

			indicators, err := set.indicatorRepo.All()
			if err != nil {
				return err
			}
			for _, indicator := range indicators {
				if err := set.indicatorService.BootstrapIndicatorPoints(indicator); err != nil {
					slog.Error("could not bootstrap indicator points", "indicator", indicator.ID, "err", err)
					return err
				}
			}
			slog.Info("indicator point windows regenerated", "indicators", len(indicators))

			return nil
		},
	}
}
