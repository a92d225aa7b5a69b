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
	"github.com/pep-un/Oxomium/services"
	"github.com/pep-un/Oxomium/shared"

	"github.com/pep-un/Oxomium/database/repositories"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "oxomium-cli",
	Short: "Management cli",
	Long:  `The oxomium cli runs maintenance tasks against an oxomium database.`,
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}

// serviceSet wires the services the maintenance commands need, without the
// fx container the API server uses.
type serviceSet struct {
	db               shared.DB
	controlService   shared.ControlService
	indicatorService shared.IndicatorService
	controlRepo      shared.ControlRepository
	indicatorRepo    shared.IndicatorRepository
}

func newServiceSet() (serviceSet, error) {
	shared.LoadConfig() // nolint: errcheck
	db, err := shared.DatabaseFactory()
	if err != nil {
		return serviceSet{}, err
	}

	conformityRepository := repositories.NewConformityRepository(db)
	actionRepository := repositories.NewActionRepository(db)
	controlRepository := repositories.NewControlRepository(db)
	controlPointRepository := repositories.NewControlPointRepository(db)
	indicatorRepository := repositories.NewIndicatorRepository(db)
	indicatorPointRepository := repositories.NewIndicatorPointRepository(db)

	conformityService := services.NewConformityService(conformityRepository, actionRepository, controlRepository, controlPointRepository)
	controlService := services.NewControlService(controlRepository, controlPointRepository, conformityService)
	indicatorService := services.NewIndicatorService(indicatorRepository, indicatorPointRepository)

	return serviceSet{
		db:               db,
		controlService:   controlService,
		indicatorService: indicatorService,
		controlRepo:      controlRepository,
		indicatorRepo:    indicatorRepository,
	}, nil
}
