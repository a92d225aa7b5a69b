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

package repositories

import (
	"github.com/pep-un/Oxomium/shared"
	"go.uber.org/fx"
)

// Module provides all repository constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewOrganizationRepository, fx.As(new(shared.OrganizationRepository)))),
	fx.Provide(fx.Annotate(NewUserRepository, fx.As(new(shared.UserRepository)))),
	fx.Provide(fx.Annotate(NewFrameworkRepository, fx.As(new(shared.FrameworkRepository)))),
	fx.Provide(fx.Annotate(NewRequirementRepository, fx.As(new(shared.RequirementRepository)))),
	fx.Provide(fx.Annotate(NewConformityRepository, fx.As(new(shared.ConformityRepository)))),
	fx.Provide(fx.Annotate(NewControlRepository, fx.As(new(shared.ControlRepository)))),
	fx.Provide(fx.Annotate(NewControlPointRepository, fx.As(new(shared.ControlPointRepository)))),
	fx.Provide(fx.Annotate(NewActionRepository, fx.As(new(shared.ActionRepository)))),
	fx.Provide(fx.Annotate(NewAuditRepository, fx.As(new(shared.AuditRepository)))),
	fx.Provide(fx.Annotate(NewFindingRepository, fx.As(new(shared.FindingRepository)))),
	fx.Provide(fx.Annotate(NewIndicatorRepository, fx.As(new(shared.IndicatorRepository)))),
	fx.Provide(fx.Annotate(NewIndicatorPointRepository, fx.As(new(shared.IndicatorPointRepository)))),
)
