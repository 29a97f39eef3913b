package usecase

import (
	"context"
	"time"

	"cv-intake-backend/internal/domain"
	"cv-intake-backend/pkg/apperror"
)

type rosterUsecase struct {
	cvRepo      domain.CVRepository
	blobs       domain.BlobStorage
	downloadTTL time.Duration
}

// NewRosterUsecase creates the read-only roster projection. downloadTTL is
// the lifetime of the short-lived URL the download endpoint hands out.
func NewRosterUsecase(cvRepo domain.CVRepository, blobs domain.BlobStorage, downloadTTL time.Duration) domain.RosterUsecase {
	return &rosterUsecase{
		cvRepo:      cvRepo,
		blobs:       blobs,
		downloadTTL: downloadTTL,
	}
}

// List returns all records newest-first with equality filters applied.
// Unknown filter values simply match nothing.
func (uc *rosterUsecase) List(ctx context.Context, filters domain.ListFilters) ([]domain.CV, error) {
	all, err := uc.cvRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	cvs := make([]domain.CV, 0, len(all))
	for _, cv := range all {
		if filters.Area != "" && cv.Area != filters.Area {
			continue
		}
		if filters.EducationLevel != "" && cv.EducationLevel != filters.EducationLevel {
			continue
		}
		cvs = append(cvs, cv)
	}
	return cvs, nil
}

// Roster partitions the filtered records into the three disjoint views,
// grouped by area: unassigned (no selection), in process (selection present,
// not at interview), and to-interview (status = interview).
func (uc *rosterUsecase) Roster(ctx context.Context, filters domain.ListFilters) (*domain.RosterView, error) {
	cvs, err := uc.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	view := &domain.RosterView{
		Unassigned:  map[string][]domain.CV{},
		InProcess:   map[string][]domain.CV{},
		ToInterview: map[string][]domain.CV{},
	}
	for _, cv := range cvs {
		switch {
		case cv.Unassigned():
			view.Unassigned[cv.Area] = append(view.Unassigned[cv.Area], cv)
		case cv.Selection.Status == domain.StatusInterview:
			view.ToInterview[cv.Area] = append(view.ToInterview[cv.Area], cv)
		default:
			view.InProcess[cv.Area] = append(view.InProcess[cv.Area], cv)
		}
	}
	return view, nil
}

// Download issues a short-lived signed read URL for the stored file.
func (uc *rosterUsecase) Download(ctx context.Context, id string) (*domain.DownloadInfo, error) {
	cv, err := uc.cvRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if cv == nil {
		return nil, apperror.NotFound("CV not found")
	}
	if cv.StoragePath == "" {
		return nil, apperror.NotFound("CV file not found")
	}

	url, err := uc.blobs.SignedURL(ctx, cv.StoragePath, uc.downloadTTL)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.DownloadInfo{
		DownloadURL: url,
		FileName:    cv.FileName,
	}, nil
}
