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

type ControlCreateRequest struct {
	Title         string      `json:"title" validate:"required"`
	Description   string      `json:"description"`
	Frequency     int         `json:"frequency" validate:"omitempty,oneof=1 2 4 6 12"`
	Level         int         `json:"level" validate:"omitempty,oneof=1 2"`
	ConformityIDs []uuid.UUID `json:"conformityIds"`
}

type ControlPatchRequest struct {
	Title         *string      `json:"title"`
	Description   *string      `json:"description"`
	Frequency     *int         `json:"frequency" validate:"omitempty,oneof=1 2 4 6 12"`
	Level         *int         `json:"level" validate:"omitempty,oneof=1 2"`
	ConformityIDs *[]uuid.UUID `json:"conformityIds"`
}

type ControlDTO struct {
	models.Model
	Title          string                  `json:"title"`
	Description    string                  `json:"description"`
	OrganizationID uuid.UUID               `json:"organizationId"`
	Frequency      models.ControlFrequency `json:"frequency"`
	Level          models.ControlLevel     `json:"level"`
	Conformities   []ConformityDTO         `json:"conformities"`
}

// ControlPointEvaluateRequest records the outcome of one control window.
// Only the two final results are accepted, the date-based statuses are
// managed by the daily rule.
type ControlPointEvaluateRequest struct {
	Result  string `json:"result" validate:"required,oneof=OK NOK"`
	Comment string `json:"comment"`
}

type ControlPointDTO struct {
	models.Model
	ControlID       uuid.UUID                 `json:"controlId"`
	PeriodStartDate time.Time                 `json:"periodStartDate"`
	PeriodEndDate   time.Time                 `json:"periodEndDate"`
	Status          models.ControlPointStatus `json:"status"`
	ControlDate     *time.Time                `json:"controlDate"`
	ControlUserID   *uuid.UUID                `json:"controlUserId"`
	Comment         string                    `json:"comment"`
}
