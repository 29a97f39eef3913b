package usecase_test

import (
	"context"
	"testing"
	"time"

	"cv-intake-backend/internal/domain"
	"cv-intake-backend/internal/usecase"
	"cv-intake-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUpdateSelectionNotFound(t *testing.T) {
	repo := new(MockCVRepo)
	uc := usecase.NewSelectionUsecase(repo)

	repo.On("GetByID", mock.Anything, "missing").Return(nil, nil)

	err := uc.UpdateSelection(context.Background(), "missing", "TESORERO", domain.StatusInProgress, "", "")

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)

	t.Run("existence is checked before field validation", func(t *testing.T) {
		err := uc.UpdateSelection(context.Background(), "missing", "", domain.StatusInProgress, "", "")
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})
}

func TestUpdateSelectionFieldValidation(t *testing.T) {
	repo := new(MockCVRepo)
	uc := usecase.NewSelectionUsecase(repo)

	repo.On("GetByID", mock.Anything, "cv1").Return(&domain.CV{ID: "cv1"}, nil)

	t.Run("position without status", func(t *testing.T) {
		err := uc.UpdateSelection(context.Background(), "cv1", "TESORERO", "", "", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "status")
	})

	t.Run("status without position", func(t *testing.T) {
		err := uc.UpdateSelection(context.Background(), "cv1", "", domain.StatusInProgress, "", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "position")
	})

	t.Run("unknown status", func(t *testing.T) {
		err := uc.UpdateSelection(context.Background(), "cv1", "TESORERO", "shortlisted", "", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown selection status")
	})

	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateSelectionDiscardReasonInvariant(t *testing.T) {
	repo := new(MockCVRepo)
	uc := usecase.NewSelectionUsecase(repo)

	cv := &domain.CV{ID: "cv1"}
	repo.On("GetByID", mock.Anything, "cv1").Return(cv, nil)

	var updated *domain.CV
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.CV")).Return(nil).Run(func(args mock.Arguments) {
		updated = args.Get(1).(*domain.CV)
	})

	// Discarding stores the reason.
	err := uc.UpdateSelection(context.Background(), "cv1", "TESORERO", domain.StatusDiscarded, "notes", "no fit")
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusDiscarded, updated.Selection.Status)
	assert.Equal(t, "no fit", updated.Selection.DiscardReason)

	// Moving to any other status clears a stale reason.
	cv.Selection = updated.Selection
	err = uc.UpdateSelection(context.Background(), "cv1", "TESORERO", domain.StatusApproved, "notes", "no fit")
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, updated.Selection.Status)
	assert.Empty(t, updated.Selection.DiscardReason)
}

func TestClearSelectionReturnsToUnassigned(t *testing.T) {
	repo := new(MockCVRepo)
	uc := usecase.NewSelectionUsecase(repo)

	cv := &domain.CV{
		ID: "cv1",
		Selection: domain.NewSelection("TESORERO", domain.StatusDiscarded,
			"notes", "no fit", time.Now()),
	}
	repo.On("GetByID", mock.Anything, "cv1").Return(cv, nil)

	var updated *domain.CV
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.CV")).Return(nil).Run(func(args mock.Arguments) {
		updated = args.Get(1).(*domain.CV)
	})

	err := uc.UpdateSelection(context.Background(), "cv1", "", "", "", "")
	assert.NoError(t, err)
	assert.True(t, updated.Unassigned())

	// Idempotent: clearing an already-unassigned record succeeds.
	cv.Selection = nil
	err = uc.UpdateSelection(context.Background(), "cv1", "", "", "", "")
	assert.NoError(t, err)
	assert.True(t, updated.Unassigned())
}

func TestNewSelectionForcesReasonEmptyOutsideDiscard(t *testing.T) {
	s := domain.NewSelection("TESORERO", domain.StatusHired, "n", "leftover reason", time.Now())
	assert.Empty(t, s.DiscardReason)

	s = domain.NewSelection("TESORERO", domain.StatusDiscarded, "n", "real reason", time.Now())
	assert.Equal(t, "real reason", s.DiscardReason)
}
