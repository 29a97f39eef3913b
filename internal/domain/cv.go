package domain

import (
	"context"
	"time"
)

// Selection status constants. Any status may be set from any other; the
// hiring flow is operator-driven, not a strict pipeline.
const (
	StatusInProgress = "in_progress"
	StatusInterview  = "interview"
	StatusApproved   = "approved"
	StatusRejected   = "rejected"
	StatusHired      = "hired"
	StatusDiscarded  = "discarded"
)

// Education level constants
const (
	EducationSecondary  = "secondary"
	EducationTertiary   = "tertiary"
	EducationUniversity = "university"
	EducationAdvanced   = "advanced"
)

// DefaultArea is assigned when the applicant does not pick a department.
const DefaultArea = "Generic"

// ValidStatuses is the closed set of selection statuses.
var ValidStatuses = map[string]bool{
	StatusInProgress: true,
	StatusInterview:  true,
	StatusApproved:   true,
	StatusRejected:   true,
	StatusHired:      true,
	StatusDiscarded:  true,
}

// ValidEducationLevels is the closed set of education levels.
var ValidEducationLevels = map[string]bool{
	EducationSecondary:  true,
	EducationTertiary:   true,
	EducationUniversity: true,
	EducationAdvanced:   true,
}

// Selection holds the hiring-process state of a candidate. A nil *Selection
// on a CV means the candidate sits in the unassigned pool. DiscardReason is
// only ever non-empty while Status is discarded; use NewSelection to keep
// that invariant.
type Selection struct {
	Position      string    `json:"position"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes,omitempty"`
	ChangedAt     time.Time `json:"changedAt"`
	DiscardReason string    `json:"discardReason,omitempty"`
}

// NewSelection builds a selection state, forcing the discard reason empty for
// every status except discarded so a stale reason from a prior discard cycle
// cannot survive a status change.
func NewSelection(position, status, notes, discardReason string, at time.Time) *Selection {
	if status != StatusDiscarded {
		discardReason = ""
	}
	return &Selection{
		Position:      position,
		Status:        status,
		Notes:         notes,
		ChangedAt:     at,
		DiscardReason: discardReason,
	}
}

// Discarded reports whether the candidate was dropped from the process.
func (s *Selection) Discarded() bool {
	return s != nil && s.Status == StatusDiscarded
}

// Repostulation marks a candidate who re-submitted a CV after having been
// discarded. Its presence on a CV is the flag itself, so the flag and the
// prior reason cannot disagree.
type Repostulation struct {
	PriorDiscardReason string `json:"priorDiscardReason"`
}

// CV is the single persisted entity: one candidate record, uniquely keyed by
// DNI. Identity and file fields are overwritten wholesale on re-submission;
// Selection and Repostulation follow the intake merge rules.
type CV struct {
	ID string `json:"id"`

	// Identity fields
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	DNI            string `json:"dni"`
	PhoneArea      string `json:"phoneArea"`
	PhoneNumber    string `json:"phoneNumber"`
	BirthDate      string `json:"birthDate"` // dd/mm/yyyy
	EducationLevel string `json:"educationLevel"`
	Area           string `json:"area"`

	// File reference fields
	FileName    string    `json:"fileName"`
	StoragePath string    `json:"storagePath"`
	FileURL     string    `json:"fileUrl"`
	UploadedBy  string    `json:"uploadedBy"`
	UploadedAt  time.Time `json:"uploadedAt"`

	Selection     *Selection     `json:"selection,omitempty"`
	Repostulation *Repostulation `json:"repostulation,omitempty"`
}

// Unassigned reports whether the candidate is outside any selection process.
func (c *CV) Unassigned() bool {
	return c.Selection == nil
}

// SubmitInput carries a validated upload request into the intake usecase.
type SubmitInput struct {
	FirstName      string `validate:"required"`
	LastName       string `validate:"required"`
	DNI            string `validate:"required,dni"`
	PhoneArea      string `validate:"required,phone_area"`
	PhoneNumber    string `validate:"required,phone_number"`
	BirthDate      string `validate:"required,birth_date"`
	EducationLevel string `validate:"required,education_level"`
	Area           string
	FileName       string
	FileBytes      []byte `validate:"required"`
	UploadedBy     string
}

// CleanupFailure reports a non-fatal failure while removing a superseded
// blob. It never fails the submission that produced it.
type CleanupFailure struct {
	Path string
	Err  error
}

// SubmitResult is the outcome of a CV submission.
type SubmitResult struct {
	ID            string
	Replaced      bool
	Repostulation *Repostulation
	// CleanupFailure is set when the superseded blob could not be removed.
	CleanupFailure *CleanupFailure
}

// DeleteResult reports the outcome of a record deletion. BlobErr is the
// tolerated blob-removal failure, if any; the document is always gone when a
// DeleteResult is returned without error.
type DeleteResult struct {
	BlobErr error
}

// ListFilters are the equality filters the roster supports.
type ListFilters struct {
	Area           string
	EducationLevel string
}

// RosterView partitions the roster into the three disjoint presentation
// views, each grouped by area tag.
type RosterView struct {
	Unassigned  map[string][]CV `json:"unassigned"`
	InProcess   map[string][]CV `json:"inProcess"`
	ToInterview map[string][]CV `json:"toInterview"`
}

// DownloadInfo is a short-lived read grant for a stored CV file.
type DownloadInfo struct {
	DownloadURL string `json:"downloadUrl"`
	FileName    string `json:"fileName"`
}

// CVRepository is the thin contract over the document store. At most one
// record exists per DNI; the store itself does not enforce this, the intake
// usecase serializes on the DNI key.
type CVRepository interface {
	GetByID(ctx context.Context, id string) (*CV, error)
	FindByDNI(ctx context.Context, dni string) (*CV, error)
	Create(ctx context.Context, cv *CV) (string, error)
	Update(ctx context.Context, cv *CV) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]CV, error)
}

// BlobStorage is the thin contract over the object store.
type BlobStorage interface {
	Upload(ctx context.Context, path string, data []byte, contentType string, metadata map[string]string) error
	Delete(ctx context.Context, path string) error
	SignedURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

// IntakeUsecase orchestrates CV submissions.
type IntakeUsecase interface {
	Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error)
}

// SelectionUsecase moves candidates through the selection lifecycle.
type SelectionUsecase interface {
	UpdateSelection(ctx context.Context, recordID, position, status, notes, discardReason string) error
}

// RosterUsecase is the read-only projection of the record store.
type RosterUsecase interface {
	List(ctx context.Context, filters ListFilters) ([]CV, error)
	Roster(ctx context.Context, filters ListFilters) (*RosterView, error)
	Download(ctx context.Context, id string) (*DownloadInfo, error)
}

// DeletionUsecase removes a record together with its blob.
type DeletionUsecase interface {
	Delete(ctx context.Context, id string) (*DeleteResult, error)
}
