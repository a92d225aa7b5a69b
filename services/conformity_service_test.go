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
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pep-un/Oxomium/database/models"
	"github.com/pep-un/Oxomium/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetStatusRejectsValuesOutsideRange(t *testing.T) {
	f := newLedgerFixture()
	leaf := f.addNode("A.1", "")

	_, err := f.conformityService.SetStatus(&leaf, -1, models.JustificationExpert)
	require.Error(t, err)

	_, err = f.conformityService.SetStatus(&leaf, 101, models.JustificationExpert)
	require.Error(t, err)

	assert.Nil(t, f.node("A.1").Status)
}

func TestSetStatusIsIdempotent(t *testing.T) {
	f := newLedgerFixture()
	leaf := f.addNode("A.1", "")

	changed, err := f.conformityService.SetStatus(&leaf, 40, models.JustificationExpert)
	require.NoError(t, err)
	require.True(t, changed)

	first := f.node("A.1")
	require.NotNil(t, first.StatusLastUpdate)

	time.Sleep(5 * time.Millisecond)

	again := f.node("A.1")
	changed, err = f.conformityService.SetStatus(&again, 40, models.JustificationExpert)
	require.NoError(t, err)
	assert.False(t, changed)

	// the rejected write must not have refreshed the timestamp
	assert.True(t, f.node("A.1").StatusLastUpdate.Equal(*first.StatusLastUpdate))
}

func TestSetStatusExpertOnlyAppliesToLeaves(t *testing.T) {
	f := newLedgerFixture()
	parent := f.addNode("A", "")
	f.addNode("A.1", "A")

	changed, err := f.conformityService.SetStatus(&parent, 50, models.JustificationExpert)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Nil(t, f.node("A").Status)
}

func TestSetStatusAggregatesParentAsMeanOfChildren(t *testing.T) {
	f := newLedgerFixture()
	f.addNode("A", "")
	leaf1 := f.addNode("A.1", "A")
	leaf2 := f.addNode("A.2", "A")

	_, err := f.conformityService.SetStatus(&leaf1, 20, models.JustificationExpert)
	require.NoError(t, err)
	_, err = f.conformityService.SetStatus(&leaf2, 80, models.JustificationExpert)
	require.NoError(t, err)

	parent := f.node("A")
	require.NotNil(t, parent.Status)
	assert.Equal(t, 50, *parent.Status)
	assert.Equal(t, models.JustificationAggregate, parent.StatusJustification)
	assert.NotNil(t, parent.StatusLastUpdate)
}

func TestSetStatusPropagatesToTheRoot(t *testing.T) {
	f := newLedgerFixture()
	f.addNode("A", "")
	f.addNode("A.1", "A")
	leaf := f.addNode("A.1.1", "A.1")

	changed, err := f.conformityService.SetStatus(&leaf, 60, models.JustificationExpert)
	require.NoError(t, err)
	require.True(t, changed)

	mid := f.node("A.1")
	require.NotNil(t, mid.Status)
	assert.Equal(t, 60, *mid.Status)
	assert.Equal(t, models.JustificationAggregate, mid.StatusJustification)

	root := f.node("A")
	require.NotNil(t, root.Status)
	assert.Equal(t, 60, *root.Status)
	assert.Equal(t, models.JustificationAggregate, root.StatusJustification)
}

func TestAggregationRoundsHalfAwayFromZero(t *testing.T) {
	f := newLedgerFixture()
	f.addNode("A", "")
	leaf1 := f.addNode("A.1", "A")
	leaf2 := f.addNode("A.2", "A")

	// mean of 20 and 75 is 47.5, rounded to 48
	_, err := f.conformityService.SetStatus(&leaf1, 20, models.JustificationExpert)
	require.NoError(t, err)
	_, err = f.conformityService.SetStatus(&leaf2, 75, models.JustificationExpert)
	require.NoError(t, err)

	parent := f.node("A")
	require.NotNil(t, parent.Status)
	assert.Equal(t, 48, *parent.Status)
}

func TestAggregationIgnoresNotApplicableChildren(t *testing.T) {
	f := newLedgerFixture()
	f.addNode("A", "")
	leaf1 := f.addNode("A.1", "A")
	leaf2 := f.addNode("A.2", "A")

	_, err := f.conformityService.SetStatus(&leaf1, 80, models.JustificationExpert)
	require.NoError(t, err)
	_, err = f.conformityService.SetStatus(&leaf2, 20, models.JustificationExpert)
	require.NoError(t, err)
	require.Equal(t, 50, *f.node("A").Status)

	// dropping leaf2 out of scope must pull it out of the mean
	excluded := f.node("A.2")
	excluded.Applicable = false
	require.NoError(t, f.conformities.Save(nil, &excluded))
	require.NoError(t, f.conformityService.UpdateStatus(excluded))

	parent := f.node("A")
	require.NotNil(t, parent.Status)
	assert.Equal(t, 80, *parent.Status)
}

func TestAggregationKeepsValueWithoutScoredChildren(t *testing.T) {
	f := newLedgerFixture()
	f.addNode("A", "")
	f.addNode("A.1", "A")

	parent := f.node("A")
	previous := 33
	parent.Status = &previous
	parent.StatusJustification = models.JustificationAggregate
	require.NoError(t, f.conformities.Save(nil, &parent))

	require.NoError(t, f.conformityService.UpdateStatus(f.node("A")))

	after := f.node("A")
	require.NotNil(t, after.Status)
	assert.Equal(t, 33, *after.Status)
}

func TestSetStatusZeroRequiresNegativeEvidence(t *testing.T) {
	f := newLedgerFixture()
	leaf := f.addNode("A.1", "")

	// no unresolved evidence, the zero is a stale duplicate
	changed, err := f.conformityService.SetStatus(&leaf, 0, models.JustificationControl)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Nil(t, f.node("A.1").Status)

	f.linkAction("patch the firewall", models.ActionAnalysing, "A.1")

	leaf = f.node("A.1")
	changed, err = f.conformityService.SetStatus(&leaf, 0, models.JustificationAction)
	require.NoError(t, err)
	require.True(t, changed)
	assert.Equal(t, 0, *f.node("A.1").Status)
	assert.Equal(t, models.JustificationAction, f.node("A.1").StatusJustification)
}

func TestSetStatusHundredRejectedWhileEvidenceOpen(t *testing.T) {
	f := newLedgerFixture()
	leaf := f.addNode("A.1", "")
	action := f.linkAction("rotate the keys", models.ActionImplementing, "A.1")

	changed, err := f.conformityService.SetStatus(&leaf, 100, models.JustificationAction)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Nil(t, f.node("A.1").Status)

	action.Status = models.ActionEnded
	action.Active = action.DeriveActive()
	require.NoError(t, f.actions.Save(nil, &action))

	leaf = f.node("A.1")
	changed, err = f.conformityService.SetStatus(&leaf, 100, models.JustificationAction)
	require.NoError(t, err)
	require.True(t, changed)
	assert.Equal(t, 100, *f.node("A.1").Status)
}

func TestSetStatusMarksNodeApplicable(t *testing.T) {
	f := newLedgerFixture()
	f.addNode("A.1", "")
	leaf := f.node("A.1")
	leaf.Applicable = false
	require.NoError(t, f.conformities.Save(nil, &leaf))

	leaf = f.node("A.1")
	changed, err := f.conformityService.SetStatus(&leaf, 70, models.JustificationExpert)
	require.NoError(t, err)
	require.True(t, changed)
	assert.True(t, f.node("A.1").Applicable)
}

func TestUpdateApplicableFlowsDownOntoSubtree(t *testing.T) {
	f := newLedgerFixture()
	f.addNode("A", "")
	f.addNode("A.1", "A")
	f.addNode("A.1.1", "A.1")
	f.addNode("A.2", "A")
	f.addNode("B", "")

	root := f.node("A")
	root.Applicable = false
	require.NoError(t, f.conformities.Save(nil, &root))
	require.NoError(t, f.conformityService.UpdateApplicable(f.node("A")))

	assert.False(t, f.node("A.1").Applicable)
	assert.False(t, f.node("A.1.1").Applicable)
	assert.False(t, f.node("A.2").Applicable)
	// the sibling root is untouched
	assert.True(t, f.node("B").Applicable)
}

func TestUpdateApplicableFlowsUpOntoAncestors(t *testing.T) {
	f := newLedgerFixture()
	f.addNode("A", "")
	f.addNode("A.1", "A")
	f.addNode("A.1.1", "A.1")
	f.addNode("A.2", "A")

	for _, code := range []string{"A", "A.1", "A.1.1", "A.2"} {
		c := f.node(code)
		c.Applicable = false
		require.NoError(t, f.conformities.Save(nil, &c))
	}

	leaf := f.node("A.1.1")
	leaf.Applicable = true
	require.NoError(t, f.conformities.Save(nil, &leaf))
	require.NoError(t, f.conformityService.UpdateApplicable(f.node("A.1.1")))

	assert.True(t, f.node("A.1").Applicable)
	assert.True(t, f.node("A").Applicable)
	// the sibling stays out of scope
	assert.False(t, f.node("A.2").Applicable)
}

func TestUpdateResponsibleFlowsDownOnly(t *testing.T) {
	f := newLedgerFixture()
	f.addNode("A", "")
	f.addNode("A.1", "A")
	f.addNode("A.1.1", "A.1")
	f.addNode("B", "")

	user := models.User{Model: models.Model{ID: uuid.New()}, Name: "alex", Email: "alex@example.com"}

	mid := f.node("A.1")
	mid.ResponsibleID = &user.ID
	require.NoError(t, f.conformities.Save(nil, &mid))
	require.NoError(t, f.conformityService.UpdateResponsible(f.node("A.1")))

	require.NotNil(t, f.node("A.1.1").ResponsibleID)
	assert.Equal(t, user.ID, *f.node("A.1.1").ResponsibleID)
	// upward and sideways stay untouched
	assert.Nil(t, f.node("A").ResponsibleID)
	assert.Nil(t, f.node("B").ResponsibleID)
}

func TestGetRelatedNegativeOnlyReturnsUnresolvedEvidence(t *testing.T) {
	f := newLedgerFixture()
	f.addNode("A.1", "")

	f.linkAction("open remediation", models.ActionPlanning, "A.1")
	f.linkAction("finished remediation", models.ActionEnded, "A.1")

	control := f.linkControl("quarterly review", models.FrequencyQuarterly, "A.1")
	today := time.Now()
	currentMiss := models.ControlPoint{
		ControlID:       control.ID,
		PeriodStartDate: today.AddDate(0, 0, -10),
		PeriodEndDate:   today.AddDate(0, 0, 10),
		Status:          models.ControlPointToBeEvaluated,
	}
	require.NoError(t, f.points.Create(nil, &currentMiss))
	pastPoint := models.ControlPoint{
		ControlID:       control.ID,
		PeriodStartDate: today.AddDate(0, 0, -50),
		PeriodEndDate:   today.AddDate(0, 0, -20),
		Status:          models.ControlPointMissed,
	}
	require.NoError(t, f.points.Create(nil, &pastPoint))

	items, err := f.conformityService.GetRelated(f.node("A.1"), shared.NegativeEvidenceOptions())
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, shared.RelatedKindAction, items[0].Kind)
	assert.Equal(t, "open remediation", items[0].Action.Title)
	assert.Equal(t, shared.RelatedKindControlPoint, items[1].Kind)
	assert.Equal(t, currentMiss.ID, items[1].ControlPoint.ID)
}

func TestGetRelatedSortsByKindThenLabel(t *testing.T) {
	f := newLedgerFixture()
	f.addNode("A.1", "")

	f.linkAction("zebra task", models.ActionPlanning, "A.1")
	f.linkAction("alpha task", models.ActionPlanning, "A.1")
	f.linkControl("midway control", models.FrequencyYearly, "A.1")

	items, err := f.conformityService.GetRelated(f.node("A.1"), shared.DefaultRelatedOptions())
	require.NoError(t, err)

	require.Len(t, items, 3)
	assert.Equal(t, "alpha task", items[0].Label())
	assert.Equal(t, "zebra task", items[1].Label())
	assert.Equal(t, shared.RelatedKindControl, items[2].Kind)
	assert.Equal(t, "midway control", items[2].Label())
}

func TestGetRelatedOnlyActiveFiltersActions(t *testing.T) {
	f := newLedgerFixture()
	f.addNode("A.1", "")

	f.linkAction("running", models.ActionImplementing, "A.1")
	f.linkAction("canceled", models.ActionCanceled, "A.1")

	opts := shared.DefaultRelatedOptions()
	opts.OnlyActive = true
	opts.IncludeControls = false

	items, err := f.conformityService.GetRelated(f.node("A.1"), opts)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "running", items[0].Action.Title)
}
