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

	"github.com/pep-un/Oxomium/database"
	"github.com/pep-un/Oxomium/shared"
	"github.com/spf13/cobra"
)

func NewMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run the database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			shared.LoadConfig() // nolint: errcheck
			db, err := shared.DatabaseFactory()
			if err != nil {
				return err
			}

			if err := database.RunMigrations(db); err != nil {
				return err
			}
			slog.Info("database migrations finished")
			return nil
		},
	}
}
