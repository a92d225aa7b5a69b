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
	"time"

	"github.com/google/uuid"
	"github.com/pep-un/Oxomium/database/models"
)

// ConformityStatusRequest carries an expert statement. Scores set through
// the API always get the expert provenance tag, evidence-driven scores only
// ever come from the services.
type ConformityStatusRequest struct {
	Status int `json:"status" validate:"gte=0,lte=100"`
}

type ConformityPatchRequest struct {
	Applicable    *bool      `json:"applicable"`
	ResponsibleID *uuid.UUID `json:"responsibleId"`
	Comment       *string    `json:"comment"`
}

type ConformityDTO struct {
	models.Model
	OrganizationID      uuid.UUID                  `json:"organizationId"`
	RequirementID       uuid.UUID                  `json:"requirementId"`
	Requirement         RequirementDTO             `json:"requirement"`
	Applicable          bool                       `json:"applicable"`
	ResponsibleID       *uuid.UUID                 `json:"responsibleId"`
	Comment             string                     `json:"comment"`
	Status              *int                       `json:"status"`
	StatusJustification models.StatusJustification `json:"statusJustification"`
	StatusLastUpdate    *time.Time                 `json:"statusLastUpdate"`
}

type RelatedItemDTO struct {
	Kind      string     `json:"kind"`
	ID        uuid.UUID  `json:"id"`
	Label     string     `json:"label"`
	UpdatedAt *time.Time `json:"updatedAt"`
}
