package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"cv-intake-backend/internal/domain"
	"cv-intake-backend/internal/usecase"
	"cv-intake-backend/pkg/apperror"
	"cv-intake-backend/pkg/keylock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func validSubmitInput() domain.SubmitInput {
	return domain.SubmitInput{
		FirstName:      "Ana",
		LastName:       "Perez",
		DNI:            "12345678",
		PhoneArea:      "11",
		PhoneNumber:    "5551234",
		BirthDate:      "15/06/1990",
		EducationLevel: domain.EducationUniversity,
		Area:           "Sistemas",
		FileName:       "ana cv.pdf",
		FileBytes:      []byte("%PDF-1.4 fake"),
		UploadedBy:     "ana@example.com",
	}
}

func newIntake(repo *MockCVRepo, blobs *MockBlobStorage) domain.IntakeUsecase {
	return usecase.NewIntakeUsecase(repo, blobs, keylock.New(), newValidator(), 10*365*24*time.Hour)
}

func TestSubmitFreshDNI(t *testing.T) {
	repo := new(MockCVRepo)
	blobs := new(MockBlobStorage)
	uc := newIntake(repo, blobs)

	repo.On("FindByDNI", mock.Anything, "12345678").Return(nil, nil)
	blobs.On("Upload", mock.Anything, mock.AnythingOfType("string"), mock.Anything, "application/pdf", mock.Anything).Return(nil)
	blobs.On("SignedURL", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return("https://signed.example/cv", nil)

	var created *domain.CV
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.CV")).Return("new-id", nil).Run(func(args mock.Arguments) {
		created = args.Get(1).(*domain.CV)
	})

	result, err := uc.Submit(context.Background(), validSubmitInput())

	assert.NoError(t, err)
	assert.Equal(t, "new-id", result.ID)
	assert.False(t, result.Replaced)
	assert.Nil(t, result.Repostulation)
	assert.Nil(t, result.CleanupFailure)

	assert.NotNil(t, created)
	assert.Nil(t, created.Selection)
	assert.Nil(t, created.Repostulation)
	assert.True(t, strings.HasPrefix(created.StoragePath, "cvs/"))
	assert.Contains(t, created.StoragePath, "_12345678_ana_cv.pdf")
	assert.Equal(t, "ana cv.pdf", created.FileName)
	assert.Equal(t, "https://signed.example/cv", created.FileURL)

	blobs.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestSubmitReplacesActiveProcess(t *testing.T) {
	repo := new(MockCVRepo)
	blobs := new(MockBlobStorage)
	uc := newIntake(repo, blobs)

	existing := &domain.CV{
		ID:          "old-id",
		DNI:         "12345678",
		StoragePath: "cvs/100_12345678_old.pdf",
		Selection: domain.NewSelection("ANALISTA DE DATOS", domain.StatusInterview,
			"strong profile", "", time.Now()),
	}

	repo.On("FindByDNI", mock.Anything, "12345678").Return(existing, nil)
	blobs.On("Upload", mock.Anything, mock.AnythingOfType("string"), mock.Anything, "application/pdf", mock.Anything).Return(nil)
	blobs.On("SignedURL", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return("https://signed.example/cv2", nil)
	blobs.On("Delete", mock.Anything, "cvs/100_12345678_old.pdf").Return(nil)

	var updated *domain.CV
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.CV")).Return(nil).Run(func(args mock.Arguments) {
		updated = args.Get(1).(*domain.CV)
	})

	result, err := uc.Submit(context.Background(), validSubmitInput())

	assert.NoError(t, err)
	assert.True(t, result.Replaced)
	assert.Equal(t, "old-id", result.ID)
	assert.Nil(t, result.Repostulation)

	// An in-progress candidacy survives the re-submission untouched.
	assert.NotNil(t, updated.Selection)
	assert.Equal(t, "ANALISTA DE DATOS", updated.Selection.Position)
	assert.Equal(t, domain.StatusInterview, updated.Selection.Status)
	assert.Equal(t, "strong profile", updated.Selection.Notes)
	assert.Nil(t, updated.Repostulation)
	assert.Equal(t, "old-id", updated.ID)
	assert.NotEqual(t, "cvs/100_12345678_old.pdf", updated.StoragePath)

	blobs.AssertCalled(t, "Delete", mock.Anything, "cvs/100_12345678_old.pdf")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmitRepostulationAfterDiscard(t *testing.T) {
	repo := new(MockCVRepo)
	blobs := new(MockBlobStorage)
	uc := newIntake(repo, blobs)

	existing := &domain.CV{
		ID:          "old-id",
		DNI:         "12345678",
		StoragePath: "cvs/100_12345678_old.pdf",
		Selection: domain.NewSelection("TESORERO", domain.StatusDiscarded,
			"", "insufficient experience", time.Now()),
	}

	repo.On("FindByDNI", mock.Anything, "12345678").Return(existing, nil)
	blobs.On("Upload", mock.Anything, mock.AnythingOfType("string"), mock.Anything, "application/pdf", mock.Anything).Return(nil)
	blobs.On("SignedURL", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return("https://signed.example/cv3", nil)
	blobs.On("Delete", mock.Anything, mock.Anything).Return(nil)

	var updated *domain.CV
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.CV")).Return(nil).Run(func(args mock.Arguments) {
		updated = args.Get(1).(*domain.CV)
	})

	result, err := uc.Submit(context.Background(), validSubmitInput())

	assert.NoError(t, err)
	assert.True(t, result.Replaced)
	assert.NotNil(t, result.Repostulation)
	assert.Equal(t, "insufficient experience", result.Repostulation.PriorDiscardReason)

	// Back in the unassigned pool, flagged for operators.
	assert.Nil(t, updated.Selection)
	assert.NotNil(t, updated.Repostulation)
	assert.Equal(t, "insufficient experience", updated.Repostulation.PriorDiscardReason)
}

func TestSubmitOldBlobDeleteFailureIsNonFatal(t *testing.T) {
	repo := new(MockCVRepo)
	blobs := new(MockBlobStorage)
	uc := newIntake(repo, blobs)

	existing := &domain.CV{ID: "old-id", DNI: "12345678", StoragePath: "cvs/100_12345678_old.pdf"}

	repo.On("FindByDNI", mock.Anything, "12345678").Return(existing, nil)
	blobs.On("Upload", mock.Anything, mock.AnythingOfType("string"), mock.Anything, "application/pdf", mock.Anything).Return(nil)
	blobs.On("SignedURL", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return("https://signed.example/cv4", nil)
	blobs.On("Delete", mock.Anything, "cvs/100_12345678_old.pdf").Return(errors.New("object gone"))
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.CV")).Return(nil)

	result, err := uc.Submit(context.Background(), validSubmitInput())

	assert.NoError(t, err)
	assert.True(t, result.Replaced)
	assert.NotNil(t, result.CleanupFailure)
	assert.Equal(t, "cvs/100_12345678_old.pdf", result.CleanupFailure.Path)
}

func TestSubmitBlobUploadFailureAbortsBeforeDocumentWrite(t *testing.T) {
	repo := new(MockCVRepo)
	blobs := new(MockBlobStorage)
	uc := newIntake(repo, blobs)

	repo.On("FindByDNI", mock.Anything, "12345678").Return(nil, nil)
	blobs.On("Upload", mock.Anything, mock.AnythingOfType("string"), mock.Anything, "application/pdf", mock.Anything).
		Return(errors.New("bucket unavailable"))

	_, err := uc.Submit(context.Background(), validSubmitInput())

	assert.Error(t, err)
	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.Code)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSubmitValidationFailsFast(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.SubmitInput)
		field  string
	}{
		{"missing first name", func(in *domain.SubmitInput) { in.FirstName = "" }, "firstName"},
		{"six digit dni", func(in *domain.SubmitInput) { in.DNI = "123456" }, "dni"},
		{"nine digit dni", func(in *domain.SubmitInput) { in.DNI = "123456789" }, "dni"},
		{"impossible date", func(in *domain.SubmitInput) { in.BirthDate = "31/02/2000" }, "birthDate"},
		{"non leap year feb 29", func(in *domain.SubmitInput) { in.BirthDate = "29/02/2021" }, "birthDate"},
		{"unknown education level", func(in *domain.SubmitInput) { in.EducationLevel = "phd" }, "educationLevel"},
		{"letters in phone", func(in *domain.SubmitInput) { in.PhoneNumber = "55x1234" }, "phoneNumber"},
		{"missing file", func(in *domain.SubmitInput) { in.FileBytes = nil }, "cv file"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(MockCVRepo)
			blobs := new(MockBlobStorage)
			uc := newIntake(repo, blobs)

			in := validSubmitInput()
			tc.mutate(&in)

			_, err := uc.Submit(context.Background(), in)

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tc.field)
			// No side effects on validation failure.
			repo.AssertNotCalled(t, "FindByDNI", mock.Anything, mock.Anything)
			blobs.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestSubmitAcceptsLeapDayAndDefaultsArea(t *testing.T) {
	repo := new(MockCVRepo)
	blobs := new(MockBlobStorage)
	uc := newIntake(repo, blobs)

	repo.On("FindByDNI", mock.Anything, "1234567").Return(nil, nil)
	blobs.On("Upload", mock.Anything, mock.AnythingOfType("string"), mock.Anything, "application/pdf", mock.Anything).Return(nil)
	blobs.On("SignedURL", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return("https://signed.example/cv5", nil)

	var created *domain.CV
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.CV")).Return("id", nil).Run(func(args mock.Arguments) {
		created = args.Get(1).(*domain.CV)
	})

	in := validSubmitInput()
	in.DNI = "1234567" // 7 digits is valid too
	in.BirthDate = "29/02/2020"
	in.Area = ""

	_, err := uc.Submit(context.Background(), in)

	assert.NoError(t, err)
	assert.Equal(t, domain.DefaultArea, created.Area)
}
