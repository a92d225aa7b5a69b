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
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/pep-un/Oxomium/database/models"
	"github.com/pep-un/Oxomium/dtos"
)

func FrameworkCreateRequestToModel(c dtos.FrameworkCreateRequest) models.Framework {
	framework := models.Framework{
		Name:      c.Name,
		Slug:      slug.Make(c.Name),
		Version:   c.Version,
		PublishBy: c.PublishBy,
		Type:      models.FrameworkTypeOther,
		Language:  c.Language,
	}
	if c.Type != "" {
		framework.Type = models.FrameworkType(c.Type)
	}
	if framework.Language == "" {
		framework.Language = "en"
	}
	return framework
}

func ApplyFrameworkPatchRequestToModel(p dtos.FrameworkPatchRequest, framework *models.Framework) bool {
	updated := false

	if p.Name != nil {
		updated = true
		framework.Name = *p.Name
		framework.Slug = slug.Make(*p.Name)
	}

	if p.Version != nil {
		updated = true
		framework.Version = *p.Version
	}

	if p.PublishBy != nil {
		updated = true
		framework.PublishBy = *p.PublishBy
	}

	if p.Type != nil {
		updated = true
		framework.Type = models.FrameworkType(*p.Type)
	}

	if p.Language != nil {
		updated = true
		framework.Language = *p.Language
	}

	return updated
}

func FrameworkDTOFromModel(framework models.Framework) dtos.FrameworkDTO {
	return dtos.FrameworkDTO{
		Model:     framework.Model,
		Name:      framework.Name,
		Slug:      framework.Slug,
		Version:   framework.Version,
		PublishBy: framework.PublishBy,
		Type:      framework.Type,
		Language:  framework.Language,
	}
}

func RequirementCreateRequestToModel(c dtos.RequirementCreateRequest, frameworkID uuid.UUID) models.Requirement {
	return models.Requirement{
		Code:        c.Code,
		FrameworkID: frameworkID,
		ParentID:    c.ParentID,
		Order:       c.Order,
		Title:       c.Title,
		Description: c.Description,
	}
}

func RequirementDTOFromModel(requirement models.Requirement) dtos.RequirementDTO {
	return dtos.RequirementDTO{
		Model:       requirement.Model,
		Code:        requirement.Code,
		Name:        requirement.Name,
		FrameworkID: requirement.FrameworkID,
		ParentID:    requirement.ParentID,
		Order:       requirement.Order,
		Path:        requirement.Path,
		Title:       requirement.Title,
		Description: requirement.Description,
	}
}
