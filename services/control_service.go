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
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pep-un/Oxomium/database/models"
	"github.com/pep-un/Oxomium/shared"
	"github.com/pep-un/Oxomium/statemachine"
)

type controlService struct {
	controlRepository      shared.ControlRepository
	controlPointRepository shared.ControlPointRepository
	conformityService      shared.ConformityService
}

func NewControlService(controlRepository shared.ControlRepository, controlPointRepository shared.ControlPointRepository, conformityService shared.ConformityService) *controlService {
	return &controlService{
		controlRepository:      controlRepository,
		controlPointRepository: controlPointRepository,
		conformityService:      conformityService,
	}
}

func (s *controlService) CreateControl(control *models.Control) error {
	if err := s.controlRepository.Create(nil, control); err != nil {
		return err
	}
	return s.BootstrapControlPoints(*control)
}

// UpdateControl saves the control and regenerates its pending windows, so a
// frequency change takes effect for the remainder of the year.
func (s *controlService) UpdateControl(control *models.Control) error {
	if err := s.controlRepository.Save(nil, control); err != nil {
		return err
	}
	return s.BootstrapControlPoints(*control)
}

// BootstrapControlPoints (re)generates the control points of the current
// year. Windows already evaluated or already closed are preserved, only
// scheduled and to-be-evaluated points are dropped and recreated, and an
// existing (start, end) pair is never duplicated.
func (s *controlService) BootstrapControlPoints(control models.Control) error {
	today := time.Now()
	windows := statemachine.YearWindows(today.Year(), control.Frequency)

	return s.controlPointRepository.Transaction(func(tx shared.DB) error {
		if err := s.controlPointRepository.DeletePending(tx, control.ID); err != nil {
			return err
		}

		for _, window := range windows {
			exists, err := s.controlPointRepository.ExistsWindow(control.ID, window.Start, window.End)
			if err != nil {
				return err
			}
			if exists {
				continue
			}

			point := models.ControlPoint{
				ControlID:       control.ID,
				PeriodStartDate: window.Start,
				PeriodEndDate:   window.End,
				Status:          models.ControlPointScheduled,
			}
			point.Status = statemachine.NextControlPointStatus(point, today)

			if err := s.controlPointRepository.Create(tx, &point); err != nil {
				return err
			}
		}
		return nil
	})
}

// EvaluateControlPoint records a compliant or non-compliant result and, when
// the evaluation happens inside the point's window, pushes the outcome as a
// CONTROL-tagged status onto every conformity verified by the control.
func (s *controlService) EvaluateControlPoint(controlPoint *models.ControlPoint, result models.ControlPointStatus, userID *uuid.UUID, comment string) error {
	if result != models.ControlPointCompliant && result != models.ControlPointNonCompliant {
		return fmt.Errorf("control point result must be compliant or non-compliant, got %q", result)
	}

	now := time.Now()
	controlPoint.Status = result
	controlPoint.ControlDate = &now
	controlPoint.ControlUserID = userID
	if comment != "" {
		controlPoint.Comment = comment
	}

	if err := s.controlPointRepository.Save(nil, controlPoint); err != nil {
		return err
	}

	if !controlPoint.IsCurrentPeriod(now) {
		return nil
	}

	value := 100
	if result == models.ControlPointNonCompliant {
		value = 0
	}

	conformities, err := s.controlRepository.GetConformities(controlPoint.ControlID)
	if err != nil {
		return err
	}
	for i := range conformities {
		changed, err := s.conformityService.SetStatus(&conformities[i], value, models.JustificationControl)
		if err != nil {
			return err
		}
		if !changed {
			slog.Debug("control result did not change conformity status", "conformity", conformities[i].ID, "value", value)
		}
	}
	return nil
}

// RefreshStatuses applies the date-based rule to every non-final control
// point. Meant to run once a day, running it more often is harmless.
func (s *controlService) RefreshStatuses(today time.Time) error {
	points, err := s.controlPointRepository.ListPending()
	if err != nil {
		return err
	}

	for i := range points {
		next := statemachine.NextControlPointStatus(points[i], today)
		if next == points[i].Status {
			continue
		}
		points[i].Status = next
		if err := s.controlPointRepository.Save(nil, &points[i]); err != nil {
			return err
		}
		if next == models.ControlPointMissed {
			slog.Info("control point window closed unevaluated", "controlPoint", points[i].ID, "control", points[i].ControlID)
		}
	}
	return nil
}
