package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestConformityHasStatus(t *testing.T) {
	assert.False(t, Conformity{}.HasStatus())
	assert.True(t, Conformity{Status: intPtr(0)}.HasStatus())
	assert.True(t, Conformity{Status: intPtr(100)}.HasStatus())
	assert.False(t, Conformity{Status: intPtr(-1)}.HasStatus())
	assert.False(t, Conformity{Status: intPtr(101)}.HasStatus())
}

func TestConformityStatusEquals(t *testing.T) {
	conformity := Conformity{Status: intPtr(40), StatusJustification: JustificationExpert}

	assert.True(t, conformity.StatusEquals(40, JustificationExpert))
	assert.False(t, conformity.StatusEquals(41, JustificationExpert))
	assert.False(t, conformity.StatusEquals(40, JustificationControl))
	assert.False(t, Conformity{}.StatusEquals(40, JustificationExpert))
}
