package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type FrameworkType string

const (
	FrameworkTypeInternational  FrameworkType = "INT"
	FrameworkTypeNational       FrameworkType = "NAT"
	FrameworkTypeTechnical      FrameworkType = "TECH"
	FrameworkTypeRecommendation FrameworkType = "RECO"
	FrameworkTypePolicy         FrameworkType = "POL"
	FrameworkTypeOther          FrameworkType = "OTHER"
)

// Framework is a named collection of hierarchical requirements an
// organization can adopt, e.g. an international standard or an internal
// policy.
type Framework struct {
	Model
	Name      string        `json:"name" gorm:"type:text;uniqueIndex;not null"`
	Slug      string        `json:"slug" gorm:"type:text;uniqueIndex;not null"`
	Version   int           `json:"version" gorm:"default:0"`
	PublishBy string        `json:"publishBy" gorm:"type:text"`
	Type      FrameworkType `json:"type" gorm:"type:text;default:'OTHER';not null"`
	Language  string        `json:"language" gorm:"type:text;default:'en';not null"`
}

func (m Framework) TableName() string {
	return "frameworks"
}

// pathSegmentWidth is the zero-padding width of one materialized path
// segment. Sibling order values above 9999 are not supported.
const pathSegmentWidth = 4

// Requirement is one node of a framework's requirement tree. The parent
// reference is assigned once at creation and never reparented, which keeps
// the tree acyclic by construction. Path is the materialized path of the
// node (dot-joined, zero-padded order segments) and allows descendant and
// ancestor lookups with a single query.
type Requirement struct {
	Model
	Code        string     `json:"code" gorm:"type:text"`
	Name        string     `json:"name" gorm:"type:text;uniqueIndex:idx_requirement_framework_name;not null"`
	FrameworkID uuid.UUID  `json:"frameworkId" gorm:"uniqueIndex:idx_requirement_framework_name;uniqueIndex:idx_requirement_framework_path;type:uuid;not null"`
	Framework   Framework  `json:"-" gorm:"foreignKey:FrameworkID;references:ID;constraint:OnDelete:CASCADE;"`
	ParentID    *uuid.UUID `json:"parentId" gorm:"type:uuid"`
	Order       int        `json:"order" gorm:"column:order_index;default:1"`
	Path        string     `json:"path" gorm:"uniqueIndex:idx_requirement_framework_path;type:text;not null"`
	Title       string     `json:"title" gorm:"type:text"`
	Description string     `json:"description" gorm:"type:text"`
}

func (m Requirement) TableName() string {
	return "requirements"
}

func (m Requirement) IsRoot() bool {
	return m.ParentID == nil
}

// PathSegment returns the materialized path segment of this node alone.
func (m Requirement) PathSegment() string {
	return fmt.Sprintf("%0*d", pathSegmentWidth, m.Order)
}

// AncestorPaths returns the materialized paths of every strict ancestor,
// nearest root first. An empty slice means the node is a root.
func (m Requirement) AncestorPaths() []string {
	segments := strings.Split(m.Path, ".")
	paths := make([]string, 0, len(segments)-1)
	for i := 1; i < len(segments); i++ {
		paths = append(paths, strings.Join(segments[:i], "."))
	}
	return paths
}
