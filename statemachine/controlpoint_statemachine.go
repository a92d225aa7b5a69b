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
	"time"

	"github.com/pep-un/Oxomium/database/models"
)

// NextControlPointStatus applies the date-based lifecycle rule of a control
// point evaluated against "today". A point holding a final evaluation result
// keeps it; otherwise a closed window was missed, an open window is to be
// evaluated and a future window stays scheduled. The rule is idempotent, the
// daily daemon may apply it any number of times.
func NextControlPointStatus(cp models.ControlPoint, today time.Time) models.ControlPointStatus {
	if cp.IsFinal() {
		return cp.Status
	}

	day := dateOnly(today)
	switch {
	case dateOnly(cp.PeriodEndDate).Before(day):
		return models.ControlPointMissed
	case !dateOnly(cp.PeriodStartDate).After(day):
		return models.ControlPointToBeEvaluated
	default:
		return models.ControlPointScheduled
	}
}

// NextIndicatorPointStatus is the same date rule for indicator measurement
// points.
func NextIndicatorPointStatus(ip models.IndicatorPoint, today time.Time) models.IndicatorPointStatus {
	if ip.IsFinal() {
		return ip.Status
	}

	day := dateOnly(today)
	switch {
	case dateOnly(ip.PeriodEndDate).Before(day):
		return models.IndicatorPointMissed
	case !dateOnly(ip.PeriodStartDate).After(day):
		return models.IndicatorPointToBeEvaluated
	default:
		return models.IndicatorPointScheduled
	}
}

// IndicatorValueStatus buckets a measured value against the indicator's
// thresholds. The scale may run in either direction (best above worst or
// below it).
func IndicatorValueStatus(indicator models.Indicator, value int) models.IndicatorPointStatus {
	if indicator.Best > indicator.Worst {
		switch {
		case value > indicator.Warning && value <= indicator.Best:
			return models.IndicatorPointCompliant
		case value > indicator.Critical && value <= indicator.Warning:
			return models.IndicatorPointWarning
		case value >= indicator.Worst && value <= indicator.Critical:
			return models.IndicatorPointCritical
		default:
			return models.IndicatorPointMissed
		}
	}

	switch {
	case value < indicator.Warning && value >= indicator.Best:
		return models.IndicatorPointCompliant
	case value < indicator.Critical && value >= indicator.Warning:
		return models.IndicatorPointWarning
	case value <= indicator.Worst && value >= indicator.Critical:
		return models.IndicatorPointCritical
	default:
		return models.IndicatorPointMissed
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
