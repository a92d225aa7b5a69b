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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIndicatorServiceFixture() (*fakeIndicatorRepository, *fakeIndicatorPointRepository, *indicatorService) {
	indicators := newFakeIndicatorRepository()
	points := newFakeIndicatorPointRepository()
	return indicators, points, NewIndicatorService(indicators, points)
}

func TestCreateIndicatorBootstrapsMeasurementPoints(t *testing.T) {
	_, points, service := newIndicatorServiceFixture()

	indicator := models.Indicator{
		Name:           "patching delay",
		OrganizationID: uuid.New(),
		Frequency:      models.FrequencyQuarterly,
		Worst:          100,
		Best:           0,
		Warning:        30,
		Critical:       60,
	}
	require.NoError(t, service.CreateIndicator(&indicator))

	created, err := points.ListByIndicator(indicator.ID)
	require.NoError(t, err)
	assert.Len(t, created, 4)
}

func TestBootstrapIndicatorPointsPreservesMeasuredWindows(t *testing.T) {
	indicators, points, service := newIndicatorServiceFixture()

	indicator := models.Indicator{
		Name:           "phishing rate",
		OrganizationID: uuid.New(),
		Frequency:      models.FrequencyHalfYearly,
	}
	require.NoError(t, indicators.Create(nil, &indicator))
	require.NoError(t, service.BootstrapIndicatorPoints(indicator))

	created, err := points.ListByIndicator(indicator.ID)
	require.NoError(t, err)
	require.Len(t, created, 2)

	value := 12
	created[0].Value = &value
	created[0].Status = models.IndicatorPointCompliant
	require.NoError(t, points.Save(nil, &created[0]))

	require.NoError(t, service.BootstrapIndicatorPoints(indicator))

	after, err := points.ListByIndicator(indicator.ID)
	require.NoError(t, err)
	require.Len(t, after, 2)
	assert.Equal(t, created[0].ID, after[0].ID)
	assert.Equal(t, models.IndicatorPointCompliant, after[0].Status)
}

func TestRecordValueBucketsAscendingScale(t *testing.T) {
	indicators, points, service := newIndicatorServiceFixture()

	// higher is better: coverage style indicator
	indicator := models.Indicator{
		Name:           "backup coverage",
		OrganizationID: uuid.New(),
		Frequency:      models.FrequencyYearly,
		Worst:          0,
		Critical:       40,
		Warning:        70,
		Best:           100,
	}
	require.NoError(t, indicators.Create(nil, &indicator))

	cases := []struct {
		value    int
		expected models.IndicatorPointStatus
	}{
		{value: 90, expected: models.IndicatorPointCompliant},
		{value: 60, expected: models.IndicatorPointWarning},
		{value: 20, expected: models.IndicatorPointCritical},
		{value: -5, expected: models.IndicatorPointMissed},
	}
	for _, tc := range cases {
		point := models.IndicatorPoint{IndicatorID: indicator.ID, Status: models.IndicatorPointToBeEvaluated}
		require.NoError(t, points.Create(nil, &point))

		require.NoError(t, service.RecordValue(&point, tc.value, nil, ""))
		assert.Equal(t, tc.expected, point.Status, "value %d", tc.value)
		require.NotNil(t, point.Value)
		assert.Equal(t, tc.value, *point.Value)
		assert.NotNil(t, point.ControlDate)
	}
}

func TestRecordValueBucketsDescendingScale(t *testing.T) {
	indicators, points, service := newIndicatorServiceFixture()

	// lower is better: incident count style indicator
	indicator := models.Indicator{
		Name:           "open incidents",
		OrganizationID: uuid.New(),
		Frequency:      models.FrequencyYearly,
		Best:           0,
		Warning:        30,
		Critical:       60,
		Worst:          100,
	}
	require.NoError(t, indicators.Create(nil, &indicator))

	cases := []struct {
		value    int
		expected models.IndicatorPointStatus
	}{
		{value: 10, expected: models.IndicatorPointCompliant},
		{value: 45, expected: models.IndicatorPointWarning},
		{value: 80, expected: models.IndicatorPointCritical},
		{value: 120, expected: models.IndicatorPointMissed},
	}
	for _, tc := range cases {
		point := models.IndicatorPoint{IndicatorID: indicator.ID, Status: models.IndicatorPointToBeEvaluated}
		require.NoError(t, points.Create(nil, &point))

		require.NoError(t, service.RecordValue(&point, tc.value, nil, ""))
		assert.Equal(t, tc.expected, point.Status, "value %d", tc.value)
	}
}

func TestIndicatorRefreshStatusesAppliesTheDateRule(t *testing.T) {
	indicators, points, service := newIndicatorServiceFixture()

	indicator := models.Indicator{
		Name:           "audit backlog",
		OrganizationID: uuid.New(),
		Frequency:      models.FrequencyQuarterly,
	}
	require.NoError(t, indicators.Create(nil, &indicator))

	today := time.Date(2025, time.May, 15, 0, 0, 0, 0, time.UTC)
	closed := models.IndicatorPoint{
		IndicatorID:     indicator.ID,
		PeriodStartDate: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		PeriodEndDate:   time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC),
		Status:          models.IndicatorPointToBeEvaluated,
	}
	require.NoError(t, points.Create(nil, &closed))
	open := models.IndicatorPoint{
		IndicatorID:     indicator.ID,
		PeriodStartDate: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		PeriodEndDate:   time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC),
		Status:          models.IndicatorPointScheduled,
	}
	require.NoError(t, points.Create(nil, &open))

	require.NoError(t, service.RefreshStatuses(today))

	stored, err := points.Read(closed.ID)
	require.NoError(t, err)
	assert.Equal(t, models.IndicatorPointMissed, stored.Status)

	stored, err = points.Read(open.ID)
	require.NoError(t, err)
	assert.Equal(t, models.IndicatorPointToBeEvaluated, stored.Status)
}
