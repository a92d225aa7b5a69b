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

type IndicatorCreateRequest struct {
	Name          string      `json:"name" validate:"required"`
	Goal          string      `json:"goal"`
	Source        string      `json:"source"`
	Formula       string      `json:"formula"`
	Worst         int         `json:"worst"`
	Best          int         `json:"best"`
	Warning       int         `json:"warning"`
	Critical      int         `json:"critical"`
	ResponsibleID *uuid.UUID  `json:"responsibleId"`
	Frequency     int         `json:"frequency" validate:"omitempty,oneof=1 2 4 6 12"`
	ConformityIDs []uuid.UUID `json:"conformityIds"`
}

type IndicatorPatchRequest struct {
	Name          *string    `json:"name"`
	Goal          *string    `json:"goal"`
	Source        *string    `json:"source"`
	Formula       *string    `json:"formula"`
	Worst         *int       `json:"worst"`
	Best          *int       `json:"best"`
	Warning       *int       `json:"warning"`
	Critical      *int       `json:"critical"`
	ResponsibleID *uuid.UUID `json:"responsibleId"`
	Frequency     *int       `json:"frequency" validate:"omitempty,oneof=1 2 4 6 12"`
}

type IndicatorDTO struct {
	models.Model
	Name           string                  `json:"name"`
	Goal           string                  `json:"goal"`
	Source         string                  `json:"source"`
	Formula        string                  `json:"formula"`
	Worst          int                     `json:"worst"`
	Best           int                     `json:"best"`
	Warning        int                     `json:"warning"`
	Critical       int                     `json:"critical"`
	ResponsibleID  *uuid.UUID              `json:"responsibleId"`
	OrganizationID uuid.UUID               `json:"organizationId"`
	Frequency      models.ControlFrequency `json:"frequency"`
}

type IndicatorValueRequest struct {
	Value   int    `json:"value"`
	Comment string `json:"comment"`
}

type IndicatorPointDTO struct {
	models.Model
	IndicatorID     uuid.UUID                   `json:"indicatorId"`
	PeriodStartDate time.Time                   `json:"periodStartDate"`
	PeriodEndDate   time.Time                   `json:"periodEndDate"`
	Status          models.IndicatorPointStatus `json:"status"`
	ControlDate     *time.Time                  `json:"controlDate"`
	ControlUserID   *uuid.UUID                  `json:"controlUserId"`
	Value           *int                        `json:"value"`
	Comment         string                      `json:"comment"`
}
