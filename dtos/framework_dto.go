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
	"github.com/google/uuid"
	"github.com/pep-un/Oxomium/database/models"
)

type FrameworkCreateRequest struct {
	Name      string `json:"name" validate:"required"`
	Version   int    `json:"version"`
	PublishBy string `json:"publishBy"`
	Type      string `json:"type" validate:"omitempty,oneof=INT NAT TECH RECO POL OTHER"`
	Language  string `json:"language"`
}

type FrameworkPatchRequest struct {
	Name      *string `json:"name"`
	Version   *int    `json:"version"`
	PublishBy *string `json:"publishBy"`
	Type      *string `json:"type" validate:"omitempty,oneof=INT NAT TECH RECO POL OTHER"`
	Language  *string `json:"language"`
}

type FrameworkDTO struct {
	models.Model
	Name      string               `json:"name"`
	Slug      string               `json:"slug"`
	Version   int                  `json:"version"`
	PublishBy string               `json:"publishBy"`
	Type      models.FrameworkType `json:"type"`
	Language  string               `json:"language"`
}

type RequirementCreateRequest struct {
	Code        string     `json:"code" validate:"required"`
	ParentID    *uuid.UUID `json:"parentId"`
	Order       int        `json:"order" validate:"omitempty,gte=1,lte=9999"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
}

type RequirementDTO struct {
	models.Model
	Code        string     `json:"code"`
	Name        string     `json:"name"`
	FrameworkID uuid.UUID  `json:"frameworkId"`
	ParentID    *uuid.UUID `json:"parentId"`
	Order       int        `json:"order"`
	Path        string     `json:"path"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
}
