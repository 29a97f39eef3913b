package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cv-intake-backend/internal/domain"
	"cv-intake-backend/pkg/apperror"
	"cv-intake-backend/pkg/filecheck"
	"cv-intake-backend/pkg/keylock"
	"cv-intake-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
)

type intakeUsecase struct {
	cvRepo     domain.CVRepository
	blobs      domain.BlobStorage
	locks      *keylock.KeyLock
	validate   *validator.Validate
	fileURLTTL time.Duration
}

// NewIntakeUsecase creates the intake coordinator. fileURLTTL is the lifetime
// of the long-lived read URL stored on the record.
func NewIntakeUsecase(
	cvRepo domain.CVRepository,
	blobs domain.BlobStorage,
	locks *keylock.KeyLock,
	validate *validator.Validate,
	fileURLTTL time.Duration,
) domain.IntakeUsecase {
	return &intakeUsecase{
		cvRepo:     cvRepo,
		blobs:      blobs,
		locks:      locks,
		validate:   validate,
		fileURLTTL: fileURLTTL,
	}
}

// Friendly labels for validation error reporting
var fieldLabels = map[string]string{
	"FirstName":      "firstName",
	"LastName":       "lastName",
	"DNI":            "dni",
	"PhoneArea":      "phoneArea",
	"PhoneNumber":    "phoneNumber",
	"BirthDate":      "birthDate",
	"EducationLevel": "educationLevel",
	"FileBytes":      "cv file",
}

// Submit runs the full intake protocol for one CV submission:
//
//  1. Validate fields (no side effects on failure).
//  2. Resolve the existing record for the DNI, holding the per-DNI lock for
//     the rest of the sequence.
//  3. Merge: a discarded predecessor makes this a repostulation (selection
//     cleared, repostulation flagged with the prior discard reason); any
//     other predecessor keeps its selection state untouched.
//  4. Write the new file at a fresh path, never over the old one.
//  5. Best-effort delete of the superseded file.
//  6. Update in place when replacing, insert otherwise.
func (uc *intakeUsecase) Submit(ctx context.Context, in domain.SubmitInput) (*domain.SubmitResult, error) {
	if in.Area == "" {
		in.Area = domain.DefaultArea
	}

	if err := uc.validate.Struct(in); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) && len(vErrs) > 0 {
			label := fieldLabels[vErrs[0].Field()]
			if label == "" {
				label = vErrs[0].Field()
			}
			return nil, apperror.BadRequest("invalid or missing field: " + label)
		}
		return nil, apperror.BadRequest(err.Error())
	}

	// Serialize the resolve -> write sequence per DNI so two concurrent
	// submissions for the same candidate cannot both insert.
	uc.locks.Lock(in.DNI)
	defer uc.locks.Unlock(in.DNI)

	existing, err := uc.cvRepo.FindByDNI(ctx, in.DNI)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now().UTC()
	fileName := in.FileName
	if fileName == "" {
		fileName = "cv.pdf"
	}

	cv := &domain.CV{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		DNI:            in.DNI,
		PhoneArea:      in.PhoneArea,
		PhoneNumber:    in.PhoneNumber,
		BirthDate:      in.BirthDate,
		EducationLevel: in.EducationLevel,
		Area:           in.Area,
		FileName:       fileName,
		UploadedBy:     in.UploadedBy,
		UploadedAt:     now,
	}

	result := &domain.SubmitResult{}

	if existing != nil {
		result.Replaced = true
		cv.ID = existing.ID

		if existing.Selection.Discarded() {
			// Repostulation: the candidate re-enters the unassigned pool,
			// flagged so operators see the earlier discard.
			cv.Repostulation = &domain.Repostulation{
				PriorDiscardReason: existing.Selection.DiscardReason,
			}
			result.Repostulation = cv.Repostulation
		} else {
			// An in-progress candidacy must survive the re-submission.
			cv.Selection = existing.Selection
		}
	}

	path := fmt.Sprintf("cvs/%d_%s_%s", now.UnixMilli(), in.DNI, filecheck.SanitizeFileName(fileName))
	metadata := map[string]string{
		"uploadedBy": in.UploadedBy,
		"firstName":  in.FirstName,
		"lastName":   in.LastName,
		"dni":        in.DNI,
	}

	if err := uc.blobs.Upload(ctx, path, in.FileBytes, "application/pdf", metadata); err != nil {
		return nil, apperror.Internal(err)
	}

	url, err := uc.blobs.SignedURL(ctx, path, uc.fileURLTTL)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	cv.StoragePath = path
	cv.FileURL = url

	// The old file is removed only after its replacement exists. Failure here
	// must not fail the intake.
	if existing != nil && existing.StoragePath != "" {
		if err := uc.blobs.Delete(ctx, existing.StoragePath); err != nil {
			logger.Log.Warn("could not remove superseded cv file",
				"path", existing.StoragePath, "error", err)
			result.CleanupFailure = &domain.CleanupFailure{
				Path: existing.StoragePath,
				Err:  err,
			}
		}
	}

	if existing != nil {
		if err := uc.cvRepo.Update(ctx, cv); err != nil {
			return nil, apperror.Internal(err)
		}
		result.ID = existing.ID
	} else {
		id, err := uc.cvRepo.Create(ctx, cv)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		result.ID = id
	}

	return result, nil
}
