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

package statemachine

import (
	"testing"
	"time"

	"github.com/pep-un/Oxomium/database/models"
	"github.com/stretchr/testify/assert"
)

func TestNextControlPointStatus(t *testing.T) {
	today := day(2025, time.May, 15)
	window := func(start, end time.Time, status models.ControlPointStatus) models.ControlPoint {
		return models.ControlPoint{PeriodStartDate: start, PeriodEndDate: end, Status: status}
	}

	t.Run("closed window is missed", func(t *testing.T) {
		cp := window(day(2025, time.January, 1), day(2025, time.March, 31), models.ControlPointToBeEvaluated)
		assert.Equal(t, models.ControlPointMissed, NextControlPointStatus(cp, today))
	})

	t.Run("open window is to be evaluated", func(t *testing.T) {
		cp := window(day(2025, time.April, 1), day(2025, time.June, 30), models.ControlPointScheduled)
		assert.Equal(t, models.ControlPointToBeEvaluated, NextControlPointStatus(cp, today))
	})

	t.Run("future window stays scheduled", func(t *testing.T) {
		cp := window(day(2025, time.July, 1), day(2025, time.September, 30), models.ControlPointScheduled)
		assert.Equal(t, models.ControlPointScheduled, NextControlPointStatus(cp, today))
	})

	t.Run("window boundaries are inclusive", func(t *testing.T) {
		cp := window(today, day(2025, time.June, 30), models.ControlPointScheduled)
		assert.Equal(t, models.ControlPointToBeEvaluated, NextControlPointStatus(cp, today))

		cp = window(day(2025, time.April, 1), today, models.ControlPointScheduled)
		assert.Equal(t, models.ControlPointToBeEvaluated, NextControlPointStatus(cp, today))
	})

	t.Run("evaluated results are never overwritten", func(t *testing.T) {
		cp := window(day(2025, time.January, 1), day(2025, time.March, 31), models.ControlPointCompliant)
		assert.Equal(t, models.ControlPointCompliant, NextControlPointStatus(cp, today))

		cp.Status = models.ControlPointNonCompliant
		assert.Equal(t, models.ControlPointNonCompliant, NextControlPointStatus(cp, today))
	})

	t.Run("rule is idempotent", func(t *testing.T) {
		cp := window(day(2025, time.January, 1), day(2025, time.March, 31), models.ControlPointToBeEvaluated)
		cp.Status = NextControlPointStatus(cp, today)
		assert.Equal(t, cp.Status, NextControlPointStatus(cp, today))
	})
}

func TestNextIndicatorPointStatus(t *testing.T) {
	today := day(2025, time.May, 15)

	closed := models.IndicatorPoint{
		PeriodStartDate: day(2025, time.January, 1),
		PeriodEndDate:   day(2025, time.March, 31),
		Status:          models.IndicatorPointScheduled,
	}
	assert.Equal(t, models.IndicatorPointMissed, NextIndicatorPointStatus(closed, today))

	open := models.IndicatorPoint{
		PeriodStartDate: day(2025, time.April, 1),
		PeriodEndDate:   day(2025, time.June, 30),
		Status:          models.IndicatorPointScheduled,
	}
	assert.Equal(t, models.IndicatorPointToBeEvaluated, NextIndicatorPointStatus(open, today))

	measured := models.IndicatorPoint{
		PeriodStartDate: day(2025, time.January, 1),
		PeriodEndDate:   day(2025, time.March, 31),
		Status:          models.IndicatorPointWarning,
	}
	assert.Equal(t, models.IndicatorPointWarning, NextIndicatorPointStatus(measured, today))
}

func TestIndicatorValueStatusBothScaleDirections(t *testing.T) {
	ascending := models.Indicator{Worst: 0, Critical: 40, Warning: 70, Best: 100}
	assert.Equal(t, models.IndicatorPointCompliant, IndicatorValueStatus(ascending, 100))
	assert.Equal(t, models.IndicatorPointCompliant, IndicatorValueStatus(ascending, 71))
	assert.Equal(t, models.IndicatorPointWarning, IndicatorValueStatus(ascending, 70))
	assert.Equal(t, models.IndicatorPointWarning, IndicatorValueStatus(ascending, 41))
	assert.Equal(t, models.IndicatorPointCritical, IndicatorValueStatus(ascending, 40))
	assert.Equal(t, models.IndicatorPointCritical, IndicatorValueStatus(ascending, 0))
	assert.Equal(t, models.IndicatorPointMissed, IndicatorValueStatus(ascending, -1))
	assert.Equal(t, models.IndicatorPointMissed, IndicatorValueStatus(ascending, 101))

	descending := models.Indicator{Best: 0, Warning: 30, Critical: 60, Worst: 100}
	assert.Equal(t, models.IndicatorPointCompliant, IndicatorValueStatus(descending, 0))
	assert.Equal(t, models.IndicatorPointCompliant, IndicatorValueStatus(descending, 29))
	assert.Equal(t, models.IndicatorPointWarning, IndicatorValueStatus(descending, 30))
	assert.Equal(t, models.IndicatorPointWarning, IndicatorValueStatus(descending, 59))
	assert.Equal(t, models.IndicatorPointCritical, IndicatorValueStatus(descending, 60))
	assert.Equal(t, models.IndicatorPointCritical, IndicatorValueStatus(descending, 100))
	assert.Equal(t, models.IndicatorPointMissed, IndicatorValueStatus(descending, 101))
}
