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
	"testing"

	"github.com/pep-un/Oxomium/dtos"
	"github.com/pep-un/Oxomium/utils"
	"github.com/stretchr/testify/assert"
)

func TestOrganizationCreateRequestDerivesSlug(t *testing.T) {
	organization := OrganizationCreateRequestToModel(dtos.OrganizationCreateRequest{
		Name: "ACME Défense & Espace",
	})

	assert.Equal(t, "ACME Défense & Espace", organization.Name)
	assert.Equal(t, "acme-defense-and-espace", organization.Slug)
}

func TestApplyOrganizationPatchRequest(t *testing.T) {
	organization := OrganizationCreateRequestToModel(dtos.OrganizationCreateRequest{Name: "ACME"})

	updated := ApplyOrganizationPatchRequestToModel(dtos.OrganizationPatchRequest{}, &organization)
	assert.False(t, updated)

	updated = ApplyOrganizationPatchRequestToModel(dtos.OrganizationPatchRequest{
		Name:        utils.Ptr("ACME Group"),
		Description: utils.Ptr("holding"),
	}, &organization)
	assert.True(t, updated)
	assert.Equal(t, "ACME Group", organization.Name)
	// the slug follows the name
	assert.Equal(t, "acme-group", organization.Slug)
	assert.Equal(t, "holding", organization.Description)
}
