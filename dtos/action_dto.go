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

type ActionCreateRequest struct {
	Title         string      `json:"title" validate:"required"`
	Description   string      `json:"description"`
	Reference     string      `json:"reference"`
	OwnerID       *uuid.UUID  `json:"ownerId"`
	ConformityIDs []uuid.UUID `json:"conformityIds"`
	FindingIDs    []uuid.UUID `json:"findingIds"`
}

type ActionPatchRequest struct {
	Title         *string      `json:"title"`
	Status        *string      `json:"status" validate:"omitempty,oneof=1 2 3 4 5 7 9"`
	StatusComment *string      `json:"statusComment"`
	Reference     *string      `json:"reference"`
	Description   *string      `json:"description"`
	OwnerID       *uuid.UUID   `json:"ownerId"`
	ConformityIDs *[]uuid.UUID `json:"conformityIds"`
	FindingIDs    *[]uuid.UUID `json:"findingIds"`

	PlanStartDate *time.Time `json:"planStartDate"`
	PlanEndDate   *time.Time `json:"planEndDate"`
	PlanComment   *string    `json:"planComment"`

	ImplementStartDate *time.Time `json:"implementStartDate"`
	ImplementEndDate   *time.Time `json:"implementEndDate"`
	ImplementStatus    *int       `json:"implementStatus" validate:"omitempty,gte=0,lte=100"`
	ImplementComment   *string    `json:"implementComment"`

	ControlDate    *time.Time `json:"controlDate"`
	ControlComment *string    `json:"controlComment"`
	ControlUserID  *uuid.UUID `json:"controlUserId"`
}

type ActionDTO struct {
	models.Model
	Title          string              `json:"title"`
	Status         models.ActionStatus `json:"status"`
	StatusComment  string              `json:"statusComment"`
	Reference      string              `json:"reference"`
	Active         bool                `json:"active"`
	OrganizationID uuid.UUID           `json:"organizationId"`
	OwnerID        *uuid.UUID          `json:"ownerId"`
	Description    string              `json:"description"`

	PlanStartDate *time.Time `json:"planStartDate"`
	PlanEndDate   *time.Time `json:"planEndDate"`
	PlanComment   string     `json:"planComment"`

	ImplementStartDate *time.Time `json:"implementStartDate"`
	ImplementEndDate   *time.Time `json:"implementEndDate"`
	ImplementStatus    int        `json:"implementStatus"`
	ImplementComment   string     `json:"implementComment"`

	ControlDate    *time.Time `json:"controlDate"`
	ControlComment string     `json:"controlComment"`
	ControlUserID  *uuid.UUID `json:"controlUserId"`
}
