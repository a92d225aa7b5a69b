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
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pep-un/Oxomium/database/models"
	"github.com/pep-un/Oxomium/shared"
	"github.com/pep-un/Oxomium/statemachine"
)

type indicatorService struct {
	indicatorRepository      shared.IndicatorRepository
	indicatorPointRepository shared.IndicatorPointRepository
}

func NewIndicatorService(indicatorRepository shared.IndicatorRepository, indicatorPointRepository shared.IndicatorPointRepository) *indicatorService {
	return &indicatorService{
		indicatorRepository:      indicatorRepository,
		indicatorPointRepository: indicatorPointRepository,
	}
}

func (s *indicatorService) CreateIndicator(indicator *models.Indicator) error {
	if err := s.indicatorRepository.Create(nil, indicator); err != nil {
		return err
	}
	return s.BootstrapIndicatorPoints(*indicator)
}

func (s *indicatorService) UpdateIndicator(indicator *models.Indicator) error {
	if err := s.indicatorRepository.Save(nil, indicator); err != nil {
		return err
	}
	return s.BootstrapIndicatorPoints(*indicator)
}

// BootstrapIndicatorPoints (re)generates the measurement points of the
// current year, preserving points that already hold a value and never
// duplicating an existing window.
func (s *indicatorService) BootstrapIndicatorPoints(indicator models.Indicator) error {
	today := time.Now()
	windows := statemachine.YearWindows(today.Year(), indicator.Frequency)

	return s.indicatorPointRepository.Transaction(func(tx shared.DB) error {
		if err := s.indicatorPointRepository.DeletePending(tx, indicator.ID); err != nil {
			return err
		}

		for _, window := range windows {
			exists, err := s.indicatorPointRepository.ExistsWindow(indicator.ID, window.Start, window.End)
			if err != nil {
				return err
			}
			if exists {
				continue
			}

			point := models.IndicatorPoint{
				IndicatorID:     indicator.ID,
				PeriodStartDate: window.Start,
				PeriodEndDate:   window.End,
				Status:          models.IndicatorPointScheduled,
			}
			point.Status = statemachine.NextIndicatorPointStatus(point, today)

			if err := s.indicatorPointRepository.Create(tx, &point); err != nil {
				return err
			}
		}
		return nil
	})
}

// RecordValue stores a measured value on the point and buckets it against
// the indicator's thresholds.
func (s *indicatorService) RecordValue(point *models.IndicatorPoint, value int, userID *uuid.UUID, comment string) error {
	indicator, err := s.indicatorRepository.Read(point.IndicatorID)
	if err != nil {
		return err
	}

	now := time.Now()
	point.Value = &value
	point.Status = statemachine.IndicatorValueStatus(indicator, value)
	point.ControlDate = &now
	point.ControlUserID = userID
	if comment != "" {
		point.Comment = comment
	}

	return s.indicatorPointRepository.Save(nil, point)
}

// RefreshStatuses applies the date-based rule to every non-final
// measurement point, once a day.
func (s *indicatorService) RefreshStatuses(today time.Time) error {
	points, err := s.indicatorPointRepository.ListPending()
	if err != nil {
		return err
	}

	for i := range points {
		next := statemachine.NextIndicatorPointStatus(points[i], today)
		if next == points[i].Status {
			continue
		}
		points[i].Status = next
		if err := s.indicatorPointRepository.Save(nil, &points[i]); err != nil {
			return err
		}
		if next == models.IndicatorPointMissed {
			slog.Info("indicator point window closed without a value", "indicatorPoint", points[i].ID, "indicator", points[i].IndicatorID)
		}
	}
	return nil
}
