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

package transformer

import (
	"github.com/gosimple/slug"
	"github.com/pep-un/Oxomium/database/models"
	"github.com/pep-un/Oxomium/dtos"
	"github.com/pep-un/Oxomium/utils"
)

func OrganizationCreateRequestToModel(c dtos.OrganizationCreateRequest) models.Organization {
	return models.Organization{
		Name:             c.Name,
		Slug:             slug.Make(c.Name),
		AdministrativeID: c.AdministrativeID,
		Description:      c.Description,
	}
}

func ApplyOrganizationPatchRequestToModel(p dtos.OrganizationPatchRequest, organization *models.Organization) bool {
	updated := false

	if p.Name != nil {
		updated = true
		organization.Name = *p.Name
		organization.Slug = slug.Make(*p.Name)
	}

	if p.AdministrativeID != nil {
		updated = true
		organization.AdministrativeID = *p.AdministrativeID
	}

	if p.Description != nil {
		updated = true
		organization.Description = *p.Description
	}

	return updated
}

func OrganizationDTOFromModel(organization models.Organization) dtos.OrganizationDTO {
	return dtos.OrganizationDTO{
		Model:            organization.Model,
		Name:             organization.Name,
		Slug:             organization.Slug,
		AdministrativeID: organization.AdministrativeID,
		Description:      organization.Description,
		Frameworks:       utils.Map(organization.Frameworks, FrameworkDTOFromModel),
	}
}

func UserDTOFromModel(user models.User) dtos.UserDTO {
	return dtos.UserDTO{
		Model: user.Model,
		Name:  user.Name,
		Email: user.Email,
	}
}
