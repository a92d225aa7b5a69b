package shared

import (
	"time"

	"github.com/pep-un/Oxomium/database/models"
)

type RelatedKind string

const (
	RelatedKindAction       RelatedKind = "action"
	RelatedKindControl      RelatedKind = "control"
	RelatedKindControlPoint RelatedKind = "controlpoint"
)

type RelatedSort string

const (
	RelatedSortTypeThenTitle RelatedSort = "type_then_title"
	RelatedSortRecentFirst   RelatedSort = "recent_first"
	RelatedSortAlpha         RelatedSort = "alpha"
)

// RelatedOptions selects which evidence linked to a conformity is returned.
// NegativeOnly restricts the result to unresolved evidence: in-progress
// actions and current-period control points without a compliant result.
type RelatedOptions struct {
	IncludeActions  bool
	IncludeControls bool
	OnlyActive      bool
	NegativeOnly    bool
	Sort            RelatedSort
}

// DefaultRelatedOptions returns everything linked to a conformity, grouped
// by kind.
func DefaultRelatedOptions() RelatedOptions {
	return RelatedOptions{
		IncludeActions:  true,
		IncludeControls: true,
		Sort:            RelatedSortTypeThenTitle,
	}
}

// NegativeEvidenceOptions is the query the status guards run.
func NegativeEvidenceOptions() RelatedOptions {
	opts := DefaultRelatedOptions()
	opts.NegativeOnly = true
	return opts
}

// RelatedItem is one piece of evidence linked to a conformity. Exactly one
// of the entity pointers is set, matching Kind.
type RelatedItem struct {
	Kind         RelatedKind          `json:"kind"`
	Action       *models.Action       `json:"action,omitempty"`
	Control      *models.Control      `json:"control,omitempty"`
	ControlPoint *models.ControlPoint `json:"controlPoint,omitempty"`
}

// Label resolves a human readable name for sorting, trying title-like
// fields before falling back to the entity id.
func (item RelatedItem) Label() string {
	switch item.Kind {
	case RelatedKindAction:
		if item.Action.Title != "" {
			return item.Action.Title
		}
		return item.Action.ID.String()
	case RelatedKindControl:
		if item.Control.Title != "" {
			return item.Control.Title
		}
		return item.Control.ID.String()
	case RelatedKindControlPoint:
		if item.ControlPoint.Control.Title != "" {
			return item.ControlPoint.Control.Title
		}
		return item.ControlPoint.ID.String()
	}
	return ""
}

// UpdatedAt resolves a date-ish field for the recent-first sort order.
func (item RelatedItem) UpdatedAt() time.Time {
	switch item.Kind {
	case RelatedKindAction:
		return item.Action.UpdatedAt
	case RelatedKindControl:
		return item.Control.UpdatedAt
	case RelatedKindControlPoint:
		return item.ControlPoint.PeriodEndDate
	}
	return time.Time{}
}
