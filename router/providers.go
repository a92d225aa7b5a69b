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

import "go.uber.org/fx"

var RouterModule = fx.Options(
	fx.Provide(NewServer),
	fx.Provide(NewAPIV1Router),
	fx.Provide(NewOrganizationRouter),
	fx.Provide(NewFrameworkRouter),
	fx.Provide(NewConformityRouter),
	fx.Provide(NewControlRouter),
	fx.Provide(NewActionRouter),
	fx.Provide(NewAuditRouter),
	fx.Provide(NewIndicatorRouter),
)
