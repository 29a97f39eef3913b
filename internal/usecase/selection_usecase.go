package usecase

import (
	"context"
	"time"

	"cv-intake-backend/internal/domain"
	"cv-intake-backend/pkg/apperror"
)

type selectionUsecase struct {
	cvRepo domain.CVRepository
}

func NewSelectionUsecase(cvRepo domain.CVRepository) domain.SelectionUsecase {
	return &selectionUsecase{cvRepo: cvRepo}
}

// UpdateSelection sets or clears a candidate's selection state. Submitting
// both position and status empty returns the candidate to the unassigned
// pool; otherwise both are required. Existence is checked before field
// validation so an unknown record reports 404 regardless of payload.
func (uc *selectionUsecase) UpdateSelection(ctx context.Context, recordID, position, status, notes, discardReason string) error {
	cv, err := uc.cvRepo.GetByID(ctx, recordID)
	if err != nil {
		return apperror.Internal(err)
	}
	if cv == nil {
		return apperror.NotFound("CV not found")
	}

	clearing := position == "" && status == ""
	if clearing {
		cv.Selection = nil
	} else {
		if position == "" {
			return apperror.BadRequest("invalid or missing field: position")
		}
		if status == "" {
			return apperror.BadRequest("invalid or missing field: status")
		}
		if !domain.ValidStatuses[status] {
			return apperror.BadRequest("unknown selection status: " + status)
		}
		// NewSelection forces the discard reason empty for every status
		// except discarded.
		cv.Selection = domain.NewSelection(position, status, notes, discardReason, time.Now().UTC())
	}

	if err := uc.cvRepo.Update(ctx, cv); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
