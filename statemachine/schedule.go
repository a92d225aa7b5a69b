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

// Window is one evaluation period of a periodic control or indicator.
// Both bounds are inclusive, date-only, month-aligned.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Equal(other Window) bool {
	return w.Start.Equal(other.Start) && w.End.Equal(other.End)
}

// YearWindows partitions a calendar year into n contiguous month-aligned
// windows. The raw window length is 365/n days minus a two-day margin; the
// end of each window is then pushed to the end of its month, so the
// remainder days of the year are absorbed at month boundaries and the n
// windows tile the full year. n is a models.ControlFrequency value
// (1, 2, 4, 6 or 12).
func YearWindows(year int, n models.ControlFrequency) []Window {
	if n <= 0 {
		return nil
	}

	delta := 365/int(n) - 2

	windows := make([]Window, 0, int(n))
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	for range int(n) {
		end := start.AddDate(0, 0, delta-1)
		window := Window{
			Start: firstOfMonth(start),
			End:   lastOfMonth(end),
		}
		windows = append(windows, window)
		start = window.End.AddDate(0, 0, 1)
	}
	return windows
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func lastOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
}
