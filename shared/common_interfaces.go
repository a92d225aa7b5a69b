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

package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/pep-un/Oxomium/common"
	"github.com/pep-un/Oxomium/database/models"
)

type OrganizationRepository interface {
	common.Repository[uuid.UUID, models.Organization, DB]
	ReadBySlug(slug string) (models.Organization, error)
	GetFrameworks(organizationID uuid.UUID) ([]models.Framework, error)
	AddFramework(tx DB, organization *models.Organization, framework models.Framework) error
	RemoveFramework(tx DB, organization *models.Organization, framework models.Framework) error
}

type UserRepository interface {
	common.Repository[uuid.UUID, models.User, DB]
	ReadByEmail(email string) (models.User, error)
}

type FrameworkRepository interface {
	common.Repository[uuid.UUID, models.Framework, DB]
	ReadBySlug(slug string) (models.Framework, error)
}

type RequirementRepository interface {
	common.Repository[uuid.UUID, models.Requirement, DB]
	ListByFramework(frameworkID uuid.UUID) ([]models.Requirement, error)
	ListRoots(frameworkID uuid.UUID) ([]models.Requirement, error)
	ListChildren(parentID uuid.UUID) ([]models.Requirement, error)
	// NextOrder returns the next free sibling order below the given parent
	// (nil parent means the root level).
	NextOrder(frameworkID uuid.UUID, parentID *uuid.UUID) (int, error)
	CountLeaves(frameworkID uuid.UUID) (int64, error)
}

type ConformityRepository interface {
	common.Repository[uuid.UUID, models.Conformity, DB]
	ReadByOrganizationAndRequirement(organizationID, requirementID uuid.UUID) (models.Conformity, error)
	ListByOrganizationAndFramework(organizationID, frameworkID uuid.UUID) ([]models.Conformity, error)
	DeleteByOrganizationAndFramework(tx DB, organizationID, frameworkID uuid.UUID) error

	// Ledger tree navigation. All of these resolve the requirement hierarchy
	// with a single query against the materialized paths, the conformity
	// argument must carry its preloaded Requirement.
	GetChildren(tx DB, conformity models.Conformity) ([]models.Conformity, error)
	CountChildren(tx DB, conformity models.Conformity) (int64, error)
	GetParent(tx DB, conformity models.Conformity) (*models.Conformity, error)
	// AverageChildStatus aggregates the statuses of the direct children that
	// are applicable and scored within [0,100]. nil means no such child.
	AverageChildStatus(tx DB, conformity models.Conformity) (*float64, error)
	SetApplicableForDescendants(tx DB, conformity models.Conformity, applicable bool) error
	SetApplicableForAncestors(tx DB, conformity models.Conformity, applicable bool) error
	SetResponsibleForDescendants(tx DB, conformity models.Conformity, responsibleID *uuid.UUID) error
}

type ControlRepository interface {
	common.Repository[uuid.UUID, models.Control, DB]
	ListByOrganization(organizationID uuid.UUID) ([]models.Control, error)
	GetConformities(controlID uuid.UUID) ([]models.Conformity, error)
	ReplaceConformities(tx DB, control *models.Control, conformities []models.Conformity) error
	ListByConformity(conformityID uuid.UUID) ([]models.Control, error)
}

type ControlPointRepository interface {
	common.Repository[uuid.UUID, models.ControlPoint, DB]
	ListByControl(controlID uuid.UUID) ([]models.ControlPoint, error)
	// ListPending returns every point not carrying a final evaluation result.
	ListPending() ([]models.ControlPoint, error)
	// DeletePending removes the scheduled and to-be-evaluated points of a
	// control, keeping past and evaluated windows untouched.
	DeletePending(tx DB, controlID uuid.UUID) error
	ExistsWindow(controlID uuid.UUID, start, end time.Time) (bool, error)
	// ListNegativeByConformity returns the current-period points linked to a
	// conformity through its controls whose status is anything but a
	// confirmed compliant result.
	ListNegativeByConformity(conformityID uuid.UUID, today time.Time) ([]models.ControlPoint, error)
}

type ActionRepository interface {
	common.Repository[uuid.UUID, models.Action, DB]
	ListByOrganization(organizationID uuid.UUID) ([]models.Action, error)
	ListByConformity(conformityID uuid.UUID) ([]models.Action, error)
	ListActiveByConformity(conformityID uuid.UUID) ([]models.Action, error)
	ListInProgressByConformity(conformityID uuid.UUID) ([]models.Action, error)
	GetConformities(actionID uuid.UUID) ([]models.Conformity, error)
	GetFindings(actionID uuid.UUID) ([]models.Finding, error)
	ReplaceConformities(tx DB, action *models.Action, conformities []models.Conformity) error
	ReplaceFindings(tx DB, action *models.Action, findings []models.Finding) error
}

type AuditRepository interface {
	common.Repository[uuid.UUID, models.Audit, DB]
	ListByOrganization(organizationID uuid.UUID) ([]models.Audit, error)
}

type FindingRepository interface {
	common.Repository[uuid.UUID, models.Finding, DB]
	ListByAudit(auditID uuid.UUID) ([]models.Finding, error)
	// ActionStats counts the actions linked to a finding, total and active,
	// with a single query.
	ActionStats(findingID uuid.UUID) (total int64, active int64, err error)
}

type IndicatorRepository interface {
	common.Repository[uuid.UUID, models.Indicator, DB]
	ListByOrganization(organizationID uuid.UUID) ([]models.Indicator, error)
}

type IndicatorPointRepository interface {
	common.Repository[uuid.UUID, models.IndicatorPoint, DB]
	ListByIndicator(indicatorID uuid.UUID) ([]models.IndicatorPoint, error)
	ListPending() ([]models.IndicatorPoint, error)
	DeletePending(tx DB, indicatorID uuid.UUID) error
	ExistsWindow(indicatorID uuid.UUID, start, end time.Time) (bool, error)
}

// ConformityService is the status aggregation engine.
type ConformityService interface {
	// SetStatus writes a provenance-tagged status to a conformity and
	// propagates the change to its ancestors. It returns false when a guard
	// rule rejected the write as a no-op.
	SetStatus(conformity *models.Conformity, value int, justification models.StatusJustification) (bool, error)
	// UpdateStatus recomputes the node's status from its direct children and
	// walks up to the root.
	UpdateStatus(conformity models.Conformity) error
	UpdateApplicable(conformity models.Conformity) error
	UpdateResponsible(conformity models.Conformity) error
	GetRelated(conformity models.Conformity, opts RelatedOptions) ([]RelatedItem, error)
}

type ControlService interface {
	CreateControl(control *models.Control) error
	UpdateControl(control *models.Control) error
	BootstrapControlPoints(control models.Control) error
	EvaluateControlPoint(controlPoint *models.ControlPoint, result models.ControlPointStatus, userID *uuid.UUID, comment string) error
	RefreshStatuses(today time.Time) error
}

type ActionService interface {
	Save(action *models.Action) error
	SyncFindings(action models.Action) error
}

type FrameworkService interface {
	CreateRequirement(requirement *models.Requirement) error
	AdoptFramework(organization models.Organization, framework models.Framework) error
	AbandonFramework(organization models.Organization, framework models.Framework) error
}

// DaemonRunner drives the periodic background rules.
type DaemonRunner interface {
	Start()
	RunOnce(today time.Time) error
}

type IndicatorService interface {
	CreateIndicator(indicator *models.Indicator) error
	UpdateIndicator(indicator *models.Indicator) error
	BootstrapIndicatorPoints(indicator models.Indicator) error
	RecordValue(point *models.IndicatorPoint, value int, userID *uuid.UUID, comment string) error
	RefreshStatuses(today time.Time) error
}
