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
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pep-un/Oxomium/database/models"
	"github.com/pep-un/Oxomium/shared"
	"gorm.io/gorm"
)

// memoryStore is an in-memory stand-in for the gorm-backed repositories. It
// keeps copies, so mutating an entity after Save does not leak into the
// store, and Transaction simply runs the callback against a nil handle.
type memoryStore[T any] struct {
	items []*T
	model func(*T) *models.Model
}

func newMemoryStore[T any](model func(*T) *models.Model) *memoryStore[T] {
	return &memoryStore[T]{model: model}
}

func (s *memoryStore[T]) All() ([]T, error) {
	out := make([]T, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, *item)
	}
	return out, nil
}

func (s *memoryStore[T]) Read(id uuid.UUID) (T, error) {
	for _, item := range s.items {
		if s.model(item).ID == id {
			return *item, nil
		}
	}
	var zero T
	return zero, gorm.ErrRecordNotFound
}

func (s *memoryStore[T]) List(ids []uuid.UUID) ([]T, error) {
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		item, err := s.Read(id)
		if err != nil {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *memoryStore[T]) Create(_ shared.DB, t *T) error {
	m := s.model(t)
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	now := time.Now()
	m.CreatedAt = now
	m.UpdatedAt = now
	stored := *t
	s.items = append(s.items, &stored)
	return nil
}

func (s *memoryStore[T]) CreateBatch(tx shared.DB, ts []T) error {
	for i := range ts {
		if err := s.Create(tx, &ts[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *memoryStore[T]) Save(_ shared.DB, t *T) error {
	m := s.model(t)
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.UpdatedAt = time.Now()
	stored := *t
	for i, item := range s.items {
		if s.model(item).ID == m.ID {
			s.items[i] = &stored
			return nil
		}
	}
	s.items = append(s.items, &stored)
	return nil
}

func (s *memoryStore[T]) SaveBatch(tx shared.DB, ts []T) error {
	for i := range ts {
		if err := s.Save(tx, &ts[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *memoryStore[T]) Delete(_ shared.DB, id uuid.UUID) error {
	for i, item := range s.items {
		if s.model(item).ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *memoryStore[T]) Transaction(fn func(tx shared.DB) error) error {
	return fn(nil)
}

func (s *memoryStore[T]) GetDB(tx shared.DB) shared.DB {
	return tx
}

type fakeOrganizationRepository struct {
	*memoryStore[models.Organization]
	frameworks map[uuid.UUID][]models.Framework
}

func newFakeOrganizationRepository() *fakeOrganizationRepository {
	return &fakeOrganizationRepository{
		memoryStore: newMemoryStore(func(o *models.Organization) *models.Model { return &o.Model }),
		frameworks:  map[uuid.UUID][]models.Framework{},
	}
}

func (r *fakeOrganizationRepository) ReadBySlug(slug string) (models.Organization, error) {
	for _, item := range r.items {
		if item.Slug == slug {
			return *item, nil
		}
	}
	return models.Organization{}, gorm.ErrRecordNotFound
}

func (r *fakeOrganizationRepository) GetFrameworks(organizationID uuid.UUID) ([]models.Framework, error) {
	return r.frameworks[organizationID], nil
}

func (r *fakeOrganizationRepository) AddFramework(_ shared.DB, organization *models.Organization, framework models.Framework) error {
	r.frameworks[organization.ID] = append(r.frameworks[organization.ID], framework)
	return nil
}

func (r *fakeOrganizationRepository) RemoveFramework(_ shared.DB, organization *models.Organization, framework models.Framework) error {
	kept := make([]models.Framework, 0)
	for _, f := range r.frameworks[organization.ID] {
		if f.ID != framework.ID {
			kept = append(kept, f)
		}
	}
	r.frameworks[organization.ID] = kept
	return nil
}

type fakeFrameworkRepository struct {
	*memoryStore[models.Framework]
}

func newFakeFrameworkRepository() *fakeFrameworkRepository {
	return &fakeFrameworkRepository{
		memoryStore: newMemoryStore(func(f *models.Framework) *models.Model { return &f.Model }),
	}
}

func (r *fakeFrameworkRepository) ReadBySlug(slug string) (models.Framework, error) {
	for _, item := range r.items {
		if item.Slug == slug {
			return *item, nil
		}
	}
	return models.Framework{}, gorm.ErrRecordNotFound
}

type fakeRequirementRepository struct {
	*memoryStore[models.Requirement]
}

func newFakeRequirementRepository() *fakeRequirementRepository {
	return &fakeRequirementRepository{
		memoryStore: newMemoryStore(func(r *models.Requirement) *models.Model { return &r.Model }),
	}
}

func (r *fakeRequirementRepository) ListByFramework(frameworkID uuid.UUID) ([]models.Requirement, error) {
	out := make([]models.Requirement, 0)
	for _, item := range r.items {
		if item.FrameworkID == frameworkID {
			out = append(out, *item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

func (r *fakeRequirementRepository) ListRoots(frameworkID uuid.UUID) ([]models.Requirement, error) {
	out := make([]models.Requirement, 0)
	for _, item := range r.items {
		if item.FrameworkID == frameworkID && item.ParentID == nil {
			out = append(out, *item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

func (r *fakeRequirementRepository) ListChildren(parentID uuid.UUID) ([]models.Requirement, error) {
	out := make([]models.Requirement, 0)
	for _, item := range r.items {
		if item.ParentID != nil && *item.ParentID == parentID {
			out = append(out, *item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

func (r *fakeRequirementRepository) NextOrder(frameworkID uuid.UUID, parentID *uuid.UUID) (int, error) {
	max := 0
	for _, item := range r.items {
		if item.FrameworkID != frameworkID {
			continue
		}
		sameParent := (item.ParentID == nil && parentID == nil) ||
			(item.ParentID != nil && parentID != nil && *item.ParentID == *parentID)
		if sameParent && item.Order > max {
			max = item.Order
		}
	}
	return max + 1, nil
}

func (r *fakeRequirementRepository) CountLeaves(frameworkID uuid.UUID) (int64, error) {
	var count int64
	for _, item := range r.items {
		if item.FrameworkID != frameworkID {
			continue
		}
		isParent := false
		for _, other := range r.items {
			if other.ParentID != nil && *other.ParentID == item.ID {
				isParent = true
				break
			}
		}
		if !isParent {
			count++
		}
	}
	return count, nil
}

// fakeConformityRepository answers the tree navigation queries over the
// materialized paths carried by the preloaded Requirement of each stored
// conformity, mirroring the SQL of the gorm repository.
type fakeConformityRepository struct {
	*memoryStore[models.Conformity]
}

func newFakeConformityRepository() *fakeConformityRepository {
	return &fakeConformityRepository{
		memoryStore: newMemoryStore(func(c *models.Conformity) *models.Model { return &c.Model }),
	}
}

func (r *fakeConformityRepository) ReadByOrganizationAndRequirement(organizationID, requirementID uuid.UUID) (models.Conformity, error) {
	for _, item := range r.items {
		if item.OrganizationID == organizationID && item.RequirementID == requirementID {
			return *item, nil
		}
	}
	return models.Conformity{}, gorm.ErrRecordNotFound
}

func (r *fakeConformityRepository) ListByOrganizationAndFramework(organizationID, frameworkID uuid.UUID) ([]models.Conformity, error) {
	out := make([]models.Conformity, 0)
	for _, item := range r.items {
		if item.OrganizationID == organizationID && item.Requirement.FrameworkID == frameworkID {
			out = append(out, *item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Requirement.Path < out[j].Requirement.Path })
	return out, nil
}

func (r *fakeConformityRepository) DeleteByOrganizationAndFramework(_ shared.DB, organizationID, frameworkID uuid.UUID) error {
	kept := make([]*models.Conformity, 0, len(r.items))
	for _, item := range r.items {
		if item.OrganizationID == organizationID && item.Requirement.FrameworkID == frameworkID {
			continue
		}
		kept = append(kept, item)
	}
	r.items = kept
	return nil
}

func (r *fakeConformityRepository) GetChildren(_ shared.DB, conformity models.Conformity) ([]models.Conformity, error) {
	out := make([]models.Conformity, 0)
	for _, item := range r.items {
		if item.OrganizationID != conformity.OrganizationID {
			continue
		}
		if item.Requirement.ParentID != nil && *item.Requirement.ParentID == conformity.RequirementID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *fakeConformityRepository) CountChildren(tx shared.DB, conformity models.Conformity) (int64, error) {
	children, err := r.GetChildren(tx, conformity)
	if err != nil {
		return 0, err
	}
	return int64(len(children)), nil
}

func (r *fakeConformityRepository) GetParent(_ shared.DB, conformity models.Conformity) (*models.Conformity, error) {
	if conformity.Requirement.ParentID == nil {
		return nil, nil
	}
	for _, item := range r.items {
		if item.OrganizationID == conformity.OrganizationID && item.RequirementID == *conformity.Requirement.ParentID {
			parent := *item
			return &parent, nil
		}
	}
	return nil, nil
}

func (r *fakeConformityRepository) AverageChildStatus(tx shared.DB, conformity models.Conformity) (*float64, error) {
	children, err := r.GetChildren(tx, conformity)
	if err != nil {
		return nil, err
	}
	sum, count := 0, 0
	for _, child := range children {
		if child.Applicable && child.HasStatus() {
			sum += *child.Status
			count++
		}
	}
	if count == 0 {
		return nil, nil
	}
	mean := float64(sum) / float64(count)
	return &mean, nil
}

func (r *fakeConformityRepository) descendants(conformity models.Conformity) []*models.Conformity {
	prefix := conformity.Requirement.Path + "."
	out := make([]*models.Conformity, 0)
	for _, item := range r.items {
		if item.OrganizationID != conformity.OrganizationID {
			continue
		}
		if item.Requirement.FrameworkID != conformity.Requirement.FrameworkID {
			continue
		}
		if strings.HasPrefix(item.Requirement.Path, prefix) {
			out = append(out, item)
		}
	}
	return out
}

func (r *fakeConformityRepository) SetApplicableForDescendants(_ shared.DB, conformity models.Conformity, applicable bool) error {
	for _, item := range r.descendants(conformity) {
		item.Applicable = applicable
	}
	return nil
}

func (r *fakeConformityRepository) SetApplicableForAncestors(_ shared.DB, conformity models.Conformity, applicable bool) error {
	for _, path := range conformity.Requirement.AncestorPaths() {
		for _, item := range r.items {
			if item.OrganizationID != conformity.OrganizationID {
				continue
			}
			if item.Requirement.FrameworkID != conformity.Requirement.FrameworkID {
				continue
			}
			if item.Requirement.Path == path {
				item.Applicable = applicable
			}
		}
	}
	return nil
}

func (r *fakeConformityRepository) SetResponsibleForDescendants(_ shared.DB, conformity models.Conformity, responsibleID *uuid.UUID) error {
	for _, item := range r.descendants(conformity) {
		item.ResponsibleID = responsibleID
	}
	return nil
}

type fakeControlRepository struct {
	*memoryStore[models.Control]
	links        map[uuid.UUID][]uuid.UUID // control -> conformities
	conformities *fakeConformityRepository
}

func newFakeControlRepository(conformities *fakeConformityRepository) *fakeControlRepository {
	return &fakeControlRepository{
		memoryStore:  newMemoryStore(func(c *models.Control) *models.Model { return &c.Model }),
		links:        map[uuid.UUID][]uuid.UUID{},
		conformities: conformities,
	}
}

func (r *fakeControlRepository) ListByOrganization(organizationID uuid.UUID) ([]models.Control, error) {
	out := make([]models.Control, 0)
	for _, item := range r.items {
		if item.OrganizationID == organizationID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *fakeControlRepository) GetConformities(controlID uuid.UUID) ([]models.Conformity, error) {
	return r.conformities.List(r.links[controlID])
}

func (r *fakeControlRepository) ReplaceConformities(_ shared.DB, control *models.Control, conformities []models.Conformity) error {
	ids := make([]uuid.UUID, 0, len(conformities))
	for _, c := range conformities {
		ids = append(ids, c.ID)
	}
	r.links[control.ID] = ids
	return nil
}

func (r *fakeControlRepository) ListByConformity(conformityID uuid.UUID) ([]models.Control, error) {
	out := make([]models.Control, 0)
	for _, item := range r.items {
		for _, id := range r.links[item.ID] {
			if id == conformityID {
				out = append(out, *item)
				break
			}
		}
	}
	return out, nil
}

type fakeControlPointRepository struct {
	*memoryStore[models.ControlPoint]
	controls *fakeControlRepository
}

func newFakeControlPointRepository(controls *fakeControlRepository) *fakeControlPointRepository {
	return &fakeControlPointRepository{
		memoryStore: newMemoryStore(func(cp *models.ControlPoint) *models.Model { return &cp.Model }),
		controls:    controls,
	}
}

func (r *fakeControlPointRepository) ListByControl(controlID uuid.UUID) ([]models.ControlPoint, error) {
	out := make([]models.ControlPoint, 0)
	for _, item := range r.items {
		if item.ControlID == controlID {
			out = append(out, *item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PeriodStartDate.Before(out[j].PeriodStartDate) })
	return out, nil
}

func (r *fakeControlPointRepository) ListPending() ([]models.ControlPoint, error) {
	out := make([]models.ControlPoint, 0)
	for _, item := range r.items {
		if !item.IsFinal() {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *fakeControlPointRepository) DeletePending(_ shared.DB, controlID uuid.UUID) error {
	kept := make([]*models.ControlPoint, 0, len(r.items))
	for _, item := range r.items {
		pending := item.Status == models.ControlPointScheduled || item.Status == models.ControlPointToBeEvaluated
		if item.ControlID == controlID && pending {
			continue
		}
		kept = append(kept, item)
	}
	r.items = kept
	return nil
}

func (r *fakeControlPointRepository) ExistsWindow(controlID uuid.UUID, start, end time.Time) (bool, error) {
	for _, item := range r.items {
		if item.ControlID == controlID && item.PeriodStartDate.Equal(start) && item.PeriodEndDate.Equal(end) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeControlPointRepository) ListNegativeByConformity(conformityID uuid.UUID, today time.Time) ([]models.ControlPoint, error) {
	out := make([]models.ControlPoint, 0)
	controls, err := r.controls.ListByConformity(conformityID)
	if err != nil {
		return nil, err
	}
	for _, control := range controls {
		for _, item := range r.items {
			if item.ControlID != control.ID {
				continue
			}
			if item.IsCurrentPeriod(today) && item.Status != models.ControlPointCompliant {
				out = append(out, *item)
			}
		}
	}
	return out, nil
}

type fakeActionRepository struct {
	*memoryStore[models.Action]
	conformityLinks map[uuid.UUID][]uuid.UUID // action -> conformities
	findingLinks    map[uuid.UUID][]uuid.UUID // action -> findings
	conformities    *fakeConformityRepository
	findings        *fakeFindingRepository
}

func newFakeActionRepository(conformities *fakeConformityRepository, findings *fakeFindingRepository) *fakeActionRepository {
	r := &fakeActionRepository{
		memoryStore:     newMemoryStore(func(a *models.Action) *models.Model { return &a.Model }),
		conformityLinks: map[uuid.UUID][]uuid.UUID{},
		findingLinks:    map[uuid.UUID][]uuid.UUID{},
		conformities:    conformities,
		findings:        findings,
	}
	findings.actions = r
	return r
}

func (r *fakeActionRepository) ListByOrganization(organizationID uuid.UUID) ([]models.Action, error) {
	out := make([]models.Action, 0)
	for _, item := range r.items {
		if item.OrganizationID == organizationID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *fakeActionRepository) listByConformity(conformityID uuid.UUID, keep func(models.Action) bool) []models.Action {
	out := make([]models.Action, 0)
	for _, item := range r.items {
		linked := false
		for _, id := range r.conformityLinks[item.ID] {
			if id == conformityID {
				linked = true
				break
			}
		}
		if linked && keep(*item) {
			out = append(out, *item)
		}
	}
	return out
}

func (r *fakeActionRepository) ListByConformity(conformityID uuid.UUID) ([]models.Action, error) {
	return r.listByConformity(conformityID, func(models.Action) bool { return true }), nil
}

func (r *fakeActionRepository) ListActiveByConformity(conformityID uuid.UUID) ([]models.Action, error) {
	return r.listByConformity(conformityID, func(a models.Action) bool { return a.Active }), nil
}

func (r *fakeActionRepository) ListInProgressByConformity(conformityID uuid.UUID) ([]models.Action, error) {
	return r.listByConformity(conformityID, func(a models.Action) bool { return a.IsInProgress() }), nil
}

func (r *fakeActionRepository) GetConformities(actionID uuid.UUID) ([]models.Conformity, error) {
	return r.conformities.List(r.conformityLinks[actionID])
}

func (r *fakeActionRepository) GetFindings(actionID uuid.UUID) ([]models.Finding, error) {
	return r.findings.List(r.findingLinks[actionID])
}

func (r *fakeActionRepository) ReplaceConformities(_ shared.DB, action *models.Action, conformities []models.Conformity) error {
	ids := make([]uuid.UUID, 0, len(conformities))
	for _, c := range conformities {
		ids = append(ids, c.ID)
	}
	r.conformityLinks[action.ID] = ids
	return nil
}

func (r *fakeActionRepository) ReplaceFindings(_ shared.DB, action *models.Action, findings []models.Finding) error {
	ids := make([]uuid.UUID, 0, len(findings))
	for _, f := range findings {
		ids = append(ids, f.ID)
	}
	r.findingLinks[action.ID] = ids
	return nil
}

type fakeFindingRepository struct {
	*memoryStore[models.Finding]
	actions *fakeActionRepository
}

func newFakeFindingRepository() *fakeFindingRepository {
	return &fakeFindingRepository{
		memoryStore: newMemoryStore(func(f *models.Finding) *models.Model { return &f.Model }),
	}
}

func (r *fakeFindingRepository) ListByAudit(auditID uuid.UUID) ([]models.Finding, error) {
	out := make([]models.Finding, 0)
	for _, item := range r.items {
		if item.AuditID == auditID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *fakeFindingRepository) ActionStats(findingID uuid.UUID) (int64, int64, error) {
	var total, active int64
	for _, action := range r.actions.items {
		linked := false
		for _, id := range r.actions.findingLinks[action.ID] {
			if id == findingID {
				linked = true
				break
			}
		}
		if !linked {
			continue
		}
		total++
		if action.Active {
			active++
		}
	}
	return total, active, nil
}

type fakeIndicatorRepository struct {
	*memoryStore[models.Indicator]
}

func newFakeIndicatorRepository() *fakeIndicatorRepository {
	return &fakeIndicatorRepository{
		memoryStore: newMemoryStore(func(i *models.Indicator) *models.Model { return &i.Model }),
	}
}

func (r *fakeIndicatorRepository) ListByOrganization(organizationID uuid.UUID) ([]models.Indicator, error) {
	out := make([]models.Indicator, 0)
	for _, item := range r.items {
		if item.OrganizationID == organizationID {
			out = append(out, *item)
		}
	}
	return out, nil
}

type fakeIndicatorPointRepository struct {
	*memoryStore[models.IndicatorPoint]
}

func newFakeIndicatorPointRepository() *fakeIndicatorPointRepository {
	return &fakeIndicatorPointRepository{
		memoryStore: newMemoryStore(func(ip *models.IndicatorPoint) *models.Model { return &ip.Model }),
	}
}

func (r *fakeIndicatorPointRepository) ListByIndicator(indicatorID uuid.UUID) ([]models.IndicatorPoint, error) {
	out := make([]models.IndicatorPoint, 0)
	for _, item := range r.items {
		if item.IndicatorID == indicatorID {
			out = append(out, *item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PeriodStartDate.Before(out[j].PeriodStartDate) })
	return out, nil
}

func (r *fakeIndicatorPointRepository) ListPending() ([]models.IndicatorPoint, error) {
	out := make([]models.IndicatorPoint, 0)
	for _, item := range r.items {
		if !item.IsFinal() {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *fakeIndicatorPointRepository) DeletePending(_ shared.DB, indicatorID uuid.UUID) error {
	kept := make([]*models.IndicatorPoint, 0, len(r.items))
	for _, item := range r.items {
		pending := item.Status == models.IndicatorPointScheduled || item.Status == models.IndicatorPointToBeEvaluated
		if item.IndicatorID == indicatorID && pending {
			continue
		}
		kept = append(kept, item)
	}
	r.items = kept
	return nil
}

func (r *fakeIndicatorPointRepository) ExistsWindow(indicatorID uuid.UUID, start, end time.Time) (bool, error) {
	for _, item := range r.items {
		if item.IndicatorID == indicatorID && item.PeriodStartDate.Equal(start) && item.PeriodEndDate.Equal(end) {
			return true, nil
		}
	}
	return false, nil
}

var (
	_ shared.OrganizationRepository   = (*fakeOrganizationRepository)(nil)
	_ shared.FrameworkRepository      = (*fakeFrameworkRepository)(nil)
	_ shared.RequirementRepository    = (*fakeRequirementRepository)(nil)
	_ shared.ConformityRepository     = (*fakeConformityRepository)(nil)
	_ shared.ControlRepository        = (*fakeControlRepository)(nil)
	_ shared.ControlPointRepository   = (*fakeControlPointRepository)(nil)
	_ shared.ActionRepository         = (*fakeActionRepository)(nil)
	_ shared.FindingRepository        = (*fakeFindingRepository)(nil)
	_ shared.IndicatorRepository      = (*fakeIndicatorRepository)(nil)
	_ shared.IndicatorPointRepository = (*fakeIndicatorPointRepository)(nil)
)

// ledgerFixture wires a full organization ledger against the in-memory
// repositories, one framework, one tree, real service instances.
type ledgerFixture struct {
	organization models.Organization
	framework    models.Framework

	conformities *fakeConformityRepository
	actions      *fakeActionRepository
	findings     *fakeFindingRepository
	controls     *fakeControlRepository
	points       *fakeControlPointRepository

	conformityService shared.ConformityService

	requirements map[string]models.Requirement
	ids          map[string]uuid.UUID
	childCount   map[string]int
}

func newLedgerFixture() *ledgerFixture {
	conformities := newFakeConformityRepository()
	findings := newFakeFindingRepository()
	actions := newFakeActionRepository(conformities, findings)
	controls := newFakeControlRepository(conformities)
	points := newFakeControlPointRepository(controls)

	f := &ledgerFixture{
		organization: models.Organization{Model: models.Model{ID: uuid.New()}, Name: "ACME", Slug: "acme"},
		framework:    models.Framework{Model: models.Model{ID: uuid.New()}, Name: "ISO 27001", Slug: "iso-27001"},
		conformities: conformities,
		actions:      actions,
		findings:     findings,
		controls:     controls,
		points:       points,
		requirements: map[string]models.Requirement{},
		ids:          map[string]uuid.UUID{},
		childCount:   map[string]int{},
	}
	f.conformityService = NewConformityService(conformities, actions, controls, points)
	return f
}

// addNode creates a requirement under parentCode ("" for a root) together
// with its ledger entry and returns the stored conformity.
func (f *ledgerFixture) addNode(code, parentCode string) models.Conformity {
	f.childCount[parentCode]++
	requirement := models.Requirement{
		Model:       models.Model{ID: uuid.New()},
		Code:        code,
		FrameworkID: f.framework.ID,
		Order:       f.childCount[parentCode],
	}
	if parentCode != "" {
		parent := f.requirements[parentCode]
		parentID := parent.ID
		requirement.ParentID = &parentID
		requirement.Name = parent.Name + "-" + code
		requirement.Path = parent.Path + "." + requirement.PathSegment()
	} else {
		requirement.Name = code
		requirement.Path = requirement.PathSegment()
	}
	f.requirements[code] = requirement

	conformity := models.Conformity{
		OrganizationID: f.organization.ID,
		RequirementID:  requirement.ID,
		Requirement:    requirement,
		Applicable:     true,
	}
	if err := f.conformities.Create(nil, &conformity); err != nil {
		panic(err)
	}
	f.ids[code] = conformity.ID
	return conformity
}

// node re-reads the current stored state of a ledger entry.
func (f *ledgerFixture) node(code string) models.Conformity {
	conformity, err := f.conformities.Read(f.ids[code])
	if err != nil {
		panic(err)
	}
	return conformity
}

// linkAction creates an action linked to the given ledger entries.
func (f *ledgerFixture) linkAction(title string, status models.ActionStatus, codes ...string) models.Action {
	action := models.Action{
		Title:          title,
		Status:         status,
		OrganizationID: f.organization.ID,
	}
	action.Active = action.DeriveActive()
	if err := f.actions.Create(nil, &action); err != nil {
		panic(err)
	}
	ids := make([]uuid.UUID, 0, len(codes))
	for _, code := range codes {
		ids = append(ids, f.ids[code])
	}
	f.actions.conformityLinks[action.ID] = ids
	return action
}

// linkControl creates a control linked to the given ledger entries, without
// bootstrapping its points.
func (f *ledgerFixture) linkControl(title string, frequency models.ControlFrequency, codes ...string) models.Control {
	control := models.Control{
		Title:          title,
		OrganizationID: f.organization.ID,
		Frequency:      frequency,
		Level:          models.ControlLevelFirst,
	}
	if err := f.controls.Create(nil, &control); err != nil {
		panic(err)
	}
	ids := make([]uuid.UUID, 0, len(codes))
	for _, code := range codes {
		ids = append(ids, f.ids[code])
	}
	f.controls.links[control.ID] = ids
	return control
}
