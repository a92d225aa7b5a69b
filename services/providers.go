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

package services

import (
	"github.com/pep-un/Oxomium/shared"
	"go.uber.org/fx"
)

// Module provides all service constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewConformityService, fx.As(new(shared.ConformityService)))),
	fx.Provide(fx.Annotate(NewControlService, fx.As(new(shared.ControlService)))),
	fx.Provide(fx.Annotate(NewActionService, fx.As(new(shared.ActionService)))),
	fx.Provide(fx.Annotate(NewFrameworkService, fx.As(new(shared.FrameworkService)))),
	fx.Provide(fx.Annotate(NewIndicatorService, fx.As(new(shared.IndicatorService)))),
)
