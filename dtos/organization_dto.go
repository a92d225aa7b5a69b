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

package dtos

import (
	"github.com/pep-un/Oxomium/database/models"
)

type OrganizationCreateRequest struct {
	Name             string `json:"name" validate:"required"`
	AdministrativeID string `json:"administrativeId"`
	Description      string `json:"description"`
}

type OrganizationPatchRequest struct {
	Name             *string `json:"name"`
	AdministrativeID *string `json:"administrativeId"`
	Description      *string `json:"description"`
}

type OrganizationDTO struct {
	models.Model
	Name             string         `json:"name"`
	Slug             string         `json:"slug"`
	AdministrativeID string         `json:"administrativeId"`
	Description      string         `json:"description"`
	Frameworks       []FrameworkDTO `json:"frameworks"`
}

type UserDTO struct {
	models.Model
	Name  string `json:"name"`
	Email string `json:"email"`
}
