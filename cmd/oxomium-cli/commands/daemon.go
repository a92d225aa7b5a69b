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
	"time"

	"github.com/pep-un/Oxomium/daemons"
	"github.com/spf13/cobra"
)

func NewDaemonCommand() *cobra.Command {
	daemon := cobra.Command{
		Use:   "daemon",
		Short: "Run the daily status rules",
	}

	daemon.AddCommand(newTriggerCommand())
	daemon.AddCommand(newLoopCommand())
	return &daemon
}

func newTriggerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "trigger",
		Short: "Apply the date-based status rules once and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := newServiceSet()
			if err != nil {
				return err
			}

			runner := daemons.NewDaemonRunner(set.controlService, set.indicatorService)
			return runner.RunOnce(time.Now())
		},
	}
}

func newLoopCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "loop",
		Short: "Run the date-based status rules once a day, forever",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := newServiceSet()
			if err != nil {
				return err
			}

			runner := daemons.NewDaemonRunner(set.controlService, set.indicatorService)
			runner.Start()
			select {}
		},
	}
}
