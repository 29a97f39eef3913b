package usecase

import (
	"context"

	"cv-intake-backend/internal/domain"
	"cv-intake-backend/pkg/apperror"
	"cv-intake-backend/pkg/logger"
)

type deletionUsecase struct {
	cvRepo domain.CVRepository
	blobs  domain.BlobStorage
}

func NewDeletionUsecase(cvRepo domain.CVRepository, blobs domain.BlobStorage) domain.DeletionUsecase {
	return &deletionUsecase{cvRepo: cvRepo, blobs: blobs}
}

// Delete removes the record and, best-effort, its stored file. A missing
// blob never blocks removing the bookkeeping record; success means the
// document is gone.
func (uc *deletionUsecase) Delete(ctx context.Context, id string) (*domain.DeleteResult, error) {
	cv, err := uc.cvRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if cv == nil {
		return nil, apperror.NotFound("CV not found")
	}

	result := &domain.DeleteResult{}
	if cv.StoragePath != "" {
		if err := uc.blobs.Delete(ctx, cv.StoragePath); err != nil {
			logger.Log.Warn("could not remove cv file, deleting record anyway",
				"path", cv.StoragePath, "error", err)
			result.BlobErr = err
		}
	}

	if err := uc.cvRepo.Delete(ctx, id); err != nil {
		return nil, apperror.Internal(err)
	}
	return result, nil
}
