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
	"math"
	"sort"
	"time"

	"github.com/pep-un/Oxomium/database/models"
	"github.com/pep-un/Oxomium/shared"
)

// conformityService is the status aggregation engine. A leaf write enters
// through SetStatus, passes the guard rules and then walks the requirement
// tree upward, recomputing every ancestor as the mean of its direct
// children. The walk is O(depth), each recomputation a single aggregate
// query over the direct children.
type conformityService struct {
	conformityRepository   shared.ConformityRepository
	actionRepository       shared.ActionRepository
	controlRepository      shared.ControlRepository
	controlPointRepository shared.ControlPointRepository
}

func NewConformityService(conformityRepository shared.ConformityRepository, actionRepository shared.ActionRepository, controlRepository shared.ControlRepository, controlPointRepository shared.ControlPointRepository) *conformityService {
	return &conformityService{
		conformityRepository:   conformityRepository,
		actionRepository:       actionRepository,
		controlRepository:      controlRepository,
		controlPointRepository: controlPointRepository,
	}
}

// SetStatus is the single entry point updating status, provenance and
// timestamp together. Guard rejections are silent no-ops returning false,
// evidence producers treat them as "nothing to do".
func (s *conformityService) SetStatus(conformity *models.Conformity, value int, justification models.StatusJustification) (bool, error) {
	if value < 0 || value > 100 {
		return false, fmt.Errorf("status %d outside [0,100]", value)
	}

	// idempotence: writing the identical (value, justification) pair again
	// must not refresh the timestamp nor re-trigger propagation
	if conformity.StatusEquals(value, justification) {
		return false, nil
	}

	switch justification {
	case models.JustificationExpert:
		// expert statements only apply to leaves, everything above is
		// owned by the aggregation
		childCount, err := s.conformityRepository.CountChildren(nil, *conformity)
		if err != nil {
			return false, err
		}
		if childCount > 0 {
			return false, nil
		}
	case models.JustificationControl, models.JustificationAction:
		negatives, err := s.GetRelated(*conformity, shared.NegativeEvidenceOptions())
		if err != nil {
			return false, err
		}
		// a zero without any unresolved evidence is a stale duplicate, a
		// hundred while an issue remains open would lie
		if value == 0 && len(negatives) == 0 {
			return false, nil
		}
		if value == 100 && len(negatives) > 0 {
			return false, nil
		}
	case models.JustificationFinding, models.JustificationAggregate:
		// no evidence guard, aggregation writes go through updateStatus
	}

	now := time.Now()
	conformity.Applicable = true
	conformity.Status = &value
	conformity.StatusJustification = justification
	conformity.StatusLastUpdate = &now

	err := s.conformityRepository.Transaction(func(tx shared.DB) error {
		if err := s.conformityRepository.Save(tx, conformity); err != nil {
			return err
		}

		parent, err := s.conformityRepository.GetParent(tx, *conformity)
		if err != nil {
			return err
		}
		if parent == nil {
			return nil
		}
		return s.updateStatus(tx, *parent)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// UpdateStatus recomputes the node from its direct children and propagates
// to the root.
func (s *conformityService) UpdateStatus(conformity models.Conformity) error {
	return s.conformityRepository.Transaction(func(tx shared.DB) error {
		return s.updateStatus(tx, conformity)
	})
}

func (s *conformityService) updateStatus(tx shared.DB, conformity models.Conformity) error {
	mean, err := s.conformityRepository.AverageChildStatus(tx, conformity)
	if err != nil {
		return err
	}

	// a node without scored applicable children keeps its previous value,
	// it is not reset to a sentinel
	if mean != nil {
		now := time.Now()
		status := int(math.Round(*mean))
		conformity.Status = &status
		conformity.StatusJustification = models.JustificationAggregate
		conformity.StatusLastUpdate = &now
		if err := s.conformityRepository.Save(tx, &conformity); err != nil {
			return err
		}
	}

	parent, err := s.conformityRepository.GetParent(tx, conformity)
	if err != nil {
		return err
	}
	if parent == nil {
		return nil
	}
	return s.updateStatus(tx, *parent)
}

// UpdateApplicable propagates the applicability flag after it changed on
// the node: not-applicable flows down onto the whole subtree, applicable
// flows up onto the ancestor chain. Both are single bulk updates over the
// materialized paths.
func (s *conformityService) UpdateApplicable(conformity models.Conformity) error {
	childCount, err := s.conformityRepository.CountChildren(nil, conformity)
	if err != nil {
		return err
	}

	if !conformity.Applicable && childCount > 0 {
		return s.conformityRepository.SetApplicableForDescendants(nil, conformity, false)
	}
	if conformity.Applicable && !conformity.Requirement.IsRoot() {
		return s.conformityRepository.SetApplicableForAncestors(nil, conformity, true)
	}
	return nil
}

// UpdateResponsible pushes the node's responsible onto every descendant.
// Downward only.
func (s *conformityService) UpdateResponsible(conformity models.Conformity) error {
	return s.conformityRepository.SetResponsibleForDescendants(nil, conformity, conformity.ResponsibleID)
}

// GetRelated collects the evidence linked to a conformity. In negative-only
// mode it answers "does this node have any unresolved issue": in-progress
// actions plus current-period control points without a compliant result.
// Read-only, no side effects.
func (s *conformityService) GetRelated(conformity models.Conformity, opts shared.RelatedOptions) ([]shared.RelatedItem, error) {
	items := make([]shared.RelatedItem, 0)

	if opts.NegativeOnly {
		if opts.IncludeActions {
			actions, err := s.actionRepository.ListInProgressByConformity(conformity.ID)
			if err != nil {
				return nil, err
			}
			for i := range actions {
				items = append(items, shared.RelatedItem{Kind: shared.RelatedKindAction, Action: &actions[i]})
			}
		}

		if opts.IncludeControls {
			points, err := s.controlPointRepository.ListNegativeByConformity(conformity.ID, time.Now())
			if err != nil {
				return nil, err
			}
			for i := range points {
				items = append(items, shared.RelatedItem{Kind: shared.RelatedKindControlPoint, ControlPoint: &points[i]})
			}
		}

		return sortRelated(items, opts.Sort), nil
	}

	if opts.IncludeActions {
		var actions []models.Action
		var err error
		if opts.OnlyActive {
			actions, err = s.actionRepository.ListActiveByConformity(conformity.ID)
		} else {
			actions, err = s.actionRepository.ListByConformity(conformity.ID)
		}
		if err != nil {
			return nil, err
		}
		for i := range actions {
			items = append(items, shared.RelatedItem{Kind: shared.RelatedKindAction, Action: &actions[i]})
		}
	}

	if opts.IncludeControls {
		controls, err := s.controlRepository.ListByConformity(conformity.ID)
		if err != nil {
			return nil, err
		}
		for i := range controls {
			items = append(items, shared.RelatedItem{Kind: shared.RelatedKindControl, Control: &controls[i]})
		}
	}

	return sortRelated(items, opts.Sort), nil
}

var relatedKindOrder = map[shared.RelatedKind]int{
	shared.RelatedKindAction:       0,
	shared.RelatedKindControl:      1,
	shared.RelatedKindControlPoint: 2,
}

func sortRelated(items []shared.RelatedItem, order shared.RelatedSort) []shared.RelatedItem {
	switch order {
	case shared.RelatedSortRecentFirst:
		sort.SliceStable(items, func(i, j int) bool {
			a, b := items[i].UpdatedAt(), items[j].UpdatedAt()
			if !a.Equal(b) {
				return a.After(b)
			}
			return items[i].Label() < items[j].Label()
		})
	case shared.RelatedSortAlpha:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Label() < items[j].Label()
		})
	default: // type_then_title
		sort.SliceStable(items, func(i, j int) bool {
			if relatedKindOrder[items[i].Kind] != relatedKindOrder[items[j].Kind] {
				return relatedKindOrder[items[i].Kind] < relatedKindOrder[items[j].Kind]
			}
			return items[i].Label() < items[j].Label()
		})
	}
	return items
}
