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

	"github.com/pep-un/Oxomium/database/models"
	"github.com/pep-un/Oxomium/shared"
)

type actionService struct {
	actionRepository  shared.ActionRepository
	findingRepository shared.FindingRepository
	conformityService shared.ConformityService
}

func NewActionService(actionRepository shared.ActionRepository, findingRepository shared.FindingRepository, conformityService shared.ConformityService) *actionService {
	return &actionService{
		actionRepository:  actionRepository,
		findingRepository: findingRepository,
		conformityService: conformityService,
	}
}

// Save persists the action and runs the side effects its phase implies:
// the Active flag is rederived, an in-progress action pushes 0 and a
// completed one pushes 100 (ACTION-tagged) onto every linked conformity,
// and the archive state of linked findings is re-evaluated.
func (s *actionService) Save(action *models.Action) error {
	action.Active = action.DeriveActive()

	if err := s.actionRepository.Save(nil, action); err != nil {
		return err
	}

	if action.IsInProgress() || action.IsCompleted() {
		value := 100
		if action.IsInProgress() {
			value = 0
		}

		conformities, err := s.actionRepository.GetConformities(action.ID)
		if err != nil {
			return err
		}
		for i := range conformities {
			changed, err := s.conformityService.SetStatus(&conformities[i], value, models.JustificationAction)
			if err != nil {
				return err
			}
			if !changed {
				slog.Debug("action phase did not change conformity status", "action", action.ID, "conformity", conformities[i].ID)
			}
		}
	}

	return s.SyncFindings(*action)
}

// SyncFindings keeps Finding.Archived consistent with the linked actions:
// archived exactly when the finding has actions and none is active.
// Idempotent, only writes on an actual flip.
func (s *actionService) SyncFindings(action models.Action) error {
	findings, err := s.actionRepository.GetFindings(action.ID)
	if err != nil {
		return err
	}

	for i := range findings {
		total, active, err := s.findingRepository.ActionStats(findings[i].ID)
		if err != nil {
			return err
		}

		archived := total > 0 && active == 0
		if findings[i].Archived == archived {
			continue
		}
		findings[i].Archived = archived
		if err := s.findingRepository.Save(nil, &findings[i]); err != nil {
			return err
		}
	}
	return nil
}
