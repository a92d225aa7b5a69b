package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequirementPathSegment(t *testing.T) {
	assert.Equal(t, "0001", Requirement{Order: 1}.PathSegment())
	assert.Equal(t, "0042", Requirement{Order: 42}.PathSegment())
	assert.Equal(t, "9999", Requirement{Order: 9999}.PathSegment())
}

func TestRequirementAncestorPaths(t *testing.T) {
	assert.Empty(t, Requirement{Path: "0001"}.AncestorPaths())
	assert.Equal(t, []string{"0001"}, Requirement{Path: "0001.0002"}.AncestorPaths())
	assert.Equal(t,
		[]string{"0001", "0001.0002"},
		Requirement{Path: "0001.0002.0003"}.AncestorPaths())
}

func TestRequirementIsRoot(t *testing.T) {
	assert.True(t, Requirement{}.IsRoot())

	parentID := uuid.New()
	assert.False(t, Requirement{ParentID: &parentID}.IsRoot())
}
