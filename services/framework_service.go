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

package services

import (
	"fmt"

	"github.com/pep-un/Oxomium/database/models"
	"github.com/pep-un/Oxomium/shared"
)

type frameworkService struct {
	frameworkRepository    shared.FrameworkRepository
	requirementRepository  shared.RequirementRepository
	conformityRepository   shared.ConformityRepository
	organizationRepository shared.OrganizationRepository
}

func NewFrameworkService(frameworkRepository shared.FrameworkRepository, requirementRepository shared.RequirementRepository, conformityRepository shared.ConformityRepository, organizationRepository shared.OrganizationRepository) *frameworkService {
	return &frameworkService{
		frameworkRepository:    frameworkRepository,
		requirementRepository:  requirementRepository,
		conformityRepository:   conformityRepository,
		organizationRepository: organizationRepository,
	}
}

// CreateRequirement attaches a node to the framework tree. The name is
// derived from the parent chain (parent name, dash, own code) and the
// materialized path from the parent path plus the sibling order. Parent
// assignment happens here, once, and the node is never reparented.
func (s *frameworkService) CreateRequirement(requirement *models.Requirement) error {
	var parent *models.Requirement
	if requirement.ParentID != nil {
		p, err := s.requirementRepository.Read(*requirement.ParentID)
		if err != nil {
			return fmt.Errorf("could not read parent requirement: %w", err)
		}
		if p.FrameworkID != requirement.FrameworkID {
			return fmt.Errorf("parent requirement belongs to a different framework")
		}
		parent = &p
	}

	if requirement.Order == 0 {
		order, err := s.requirementRepository.NextOrder(requirement.FrameworkID, requirement.ParentID)
		if err != nil {
			return err
		}
		requirement.Order = order
	}

	if parent != nil {
		requirement.Name = parent.Name + "-" + requirement.Code
		requirement.Path = parent.Path + "." + requirement.PathSegment()
	} else {
		requirement.Name = requirement.Code
		requirement.Path = requirement.PathSegment()
	}

	return s.requirementRepository.Create(nil, requirement)
}

// AdoptFramework links the framework to the organization and bulk-creates
// the ledger: one unset conformity per requirement, in a single batch.
func (s *frameworkService) AdoptFramework(organization models.Organization, framework models.Framework) error {
	requirements, err := s.requirementRepository.ListByFramework(framework.ID)
	if err != nil {
		return err
	}

	conformities := make([]models.Conformity, 0, len(requirements))
	for _, requirement := range requirements {
		conformities = append(conformities, models.Conformity{
			OrganizationID: organization.ID,
			RequirementID:  requirement.ID,
			Applicable:     true,
		})
	}

	return s.conformityRepository.Transaction(func(tx shared.DB) error {
		if err := s.organizationRepository.AddFramework(tx, &organization, framework); err != nil {
			return err
		}
		return s.conformityRepository.CreateBatch(tx, conformities)
	})
}

// AbandonFramework removes the framework from the organization and deletes
// its slice of the ledger.
func (s *frameworkService) AbandonFramework(organization models.Organization, framework models.Framework) error {
	return s.conformityRepository.Transaction(func(tx shared.DB) error {
		if err := s.organizationRepository.RemoveFramework(tx, &organization, framework); err != nil {
			return err
		}
		return s.conformityRepository.DeleteByOrganizationAndFramework(tx, organization.ID, framework.ID)
	})
}
