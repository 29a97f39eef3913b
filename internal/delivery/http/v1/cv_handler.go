package v1

import (
	"fmt"
	"io"
	"net/http"

	"cv-intake-backend/internal/delivery/http/response"
	"cv-intake-backend/internal/domain"
	"cv-intake-backend/pkg/apperror"
	"cv-intake-backend/pkg/filecheck"

	"github.com/gin-gonic/gin"
)

type CVHandler struct {
	intakeUC       domain.IntakeUsecase
	selectionUC    domain.SelectionUsecase
	rosterUC       domain.RosterUsecase
	deletionUC     domain.DeletionUsecase
	maxUploadBytes int64
}

// NewCVHandler registers CV routes. Upload only requires authentication;
// everything else is admin-only.
func NewCVHandler(
	authed *gin.RouterGroup,
	admin *gin.RouterGroup,
	intakeUC domain.IntakeUsecase,
	selectionUC domain.SelectionUsecase,
	rosterUC domain.RosterUsecase,
	deletionUC domain.DeletionUsecase,
	maxUploadBytes int64,
	uploadLimiter gin.HandlerFunc,
) {
	handler := &CVHandler{
		intakeUC:       intakeUC,
		selectionUC:    selectionUC,
		rosterUC:       rosterUC,
		deletionUC:     deletionUC,
		maxUploadBytes: maxUploadBytes,
	}

	authed.POST("/cvs", uploadLimiter, handler.Upload)

	admin.GET("/cvs", handler.List)
	admin.GET("/cvs/roster", handler.Roster)
	admin.GET("/cvs/download", handler.Download)
	admin.POST("/cvs/selection", handler.UpdateSelection)
	admin.DELETE("/cvs", handler.Delete)
}

// UploadCVResponse is the upload outcome returned to the submitter
type UploadCVResponse struct {
	ID                 string `json:"id"`
	Replaced           bool   `json:"replaced"`
	RepostulationFlag  bool   `json:"repostulationFlag,omitempty"`
	PriorDiscardReason string `json:"priorDiscardReason,omitempty"`
}

// Upload godoc
// @Summary      Submit a CV
// @Description  Upload a PDF CV with candidate identity fields. Re-submitting under the same DNI replaces the stored file and merges selection state.
// @Tags         cvs
// @Accept       multipart/form-data
// @Produce      json
// @Param        firstName      formData  string  true   "First name"
// @Param        lastName       formData  string  true   "Last name"
// @Param        dni            formData  string  true   "National identity number (7-8 digits)"
// @Param        phoneArea      formData  string  true   "Phone area code"
// @Param        phoneNumber    formData  string  true   "Phone number"
// @Param        birthDate      formData  string  true   "Birth date (dd/mm/yyyy)"
// @Param        educationLevel formData  string  true   "Education level"
// @Param        area           formData  string  false  "Department tag"
// @Param        cv             formData  file    true   "CV file (PDF)"
// @Success      200  {object}  response.Response{data=UploadCVResponse}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /cvs [post]
// @Security     BearerAuth
func (h *CVHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("cv")
	if err != nil {
		c.Error(apperror.BadRequest("invalid or missing field: cv file"))
		return
	}

	if file.Size > h.maxUploadBytes {
		c.Error(apperror.BadRequest(fmt.Sprintf("file exceeds the maximum size of %dMB", h.maxUploadBytes/(1024*1024))))
		return
	}

	src, err := file.Open()
	if err != nil {
		c.Error(apperror.BadRequest("could not read uploaded file"))
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	if res := filecheck.ValidatePDF(file.Filename, file.Header.Get("Content-Type"), data); !res.Valid {
		c.Error(apperror.BadRequest(res.Error))
		return
	}

	in := domain.SubmitInput{
		FirstName:      c.PostForm("firstName"),
		LastName:       c.PostForm("lastName"),
		DNI:            c.PostForm("dni"),
		PhoneArea:      c.PostForm("phoneArea"),
		PhoneNumber:    c.PostForm("phoneNumber"),
		BirthDate:      c.PostForm("birthDate"),
		EducationLevel: c.PostForm("educationLevel"),
		Area:           c.PostForm("area"),
		FileName:       file.Filename,
		FileBytes:      data,
		UploadedBy:     c.GetString(string(domain.KeyUserEmail)),
	}

	result, err := h.intakeUC.Submit(c, in)
	if err != nil {
		c.Error(err)
		return
	}

	resp := UploadCVResponse{
		ID:       result.ID,
		Replaced: result.Replaced,
	}
	message := "CV uploaded successfully"
	if result.Replaced {
		message = "CV updated successfully. The previous CV was replaced."
	}
	if result.Repostulation != nil {
		resp.RepostulationFlag = true
		resp.PriorDiscardReason = result.Repostulation.PriorDiscardReason
		message = "CV uploaded. Note: this candidate was previously discarded."
	}

	response.Success(c, http.StatusOK, message, resp)
}

// List godoc
// @Summary      List CVs
// @Description  All candidate records newest-first, optionally filtered by area and education level (Admin only)
// @Tags         cvs
// @Produce      json
// @Param        area            query  string  false  "Area filter"
// @Param        educationLevel  query  string  false  "Education level filter"
// @Success      200  {object}  response.Response{data=[]domain.CV}
// @Failure      403  {object}  response.Response
// @Router       /cvs [get]
// @Security     BearerAuth
func (h *CVHandler) List(c *gin.Context) {
	filters := domain.ListFilters{
		Area:           c.Query("area"),
		EducationLevel: c.Query("educationLevel"),
	}

	cvs, err := h.rosterUC.List(c, filters)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "CVs retrieved", gin.H{"cvs": cvs})
}

// Roster godoc
// @Summary      Partitioned roster
// @Description  The roster split into unassigned, in-process and to-interview views, grouped by area (Admin only)
// @Tags         cvs
// @Produce      json
// @Param        area            query  string  false  "Area filter"
// @Param        educationLevel  query  string  false  "Education level filter"
// @Success      200  {object}  response.Response{data=domain.RosterView}
// @Failure      403  {object}  response.Response
// @Router       /cvs/roster [get]
// @Security     BearerAuth
func (h *CVHandler) Roster(c *gin.Context) {
	filters := domain.ListFilters{
		Area:           c.Query("area"),
		EducationLevel: c.Query("educationLevel"),
	}

	view, err := h.rosterUC.Roster(c, filters)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Roster retrieved", view)
}

// Download godoc
// @Summary      Download a CV
// @Description  Issues a short-lived signed read URL for the stored file (Admin only)
// @Tags         cvs
// @Produce      json
// @Param        id  query  string  true  "Record ID"
// @Success      200  {object}  response.Response{data=domain.DownloadInfo}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /cvs/download [get]
// @Security     BearerAuth
func (h *CVHandler) Download(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.Error(apperror.BadRequest("invalid or missing field: id"))
		return
	}

	info, err := h.rosterUC.Download(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Download URL generated", info)
}

// UpdateSelectionRequest is the payload for selection-state changes.
// Submitting position and status both empty returns the candidate to the
// unassigned pool.
type UpdateSelectionRequest struct {
	RecordID      string `json:"recordId"`
	Position      string `json:"position"`
	Status        string `json:"status"`
	Notes         string `json:"notes"`
	DiscardReason string `json:"discardReason"`
}

// UpdateSelection godoc
// @Summary      Update selection state
// @Description  Set or clear a candidate's position in the hiring process (Admin only)
// @Tags         cvs
// @Accept       json
// @Produce      json
// @Param        body  body  UpdateSelectionRequest  true  "Selection update"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /cvs/selection [post]
// @Security     BearerAuth
func (h *CVHandler) UpdateSelection(c *gin.Context) {
	var req UpdateSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	if req.RecordID == "" {
		c.Error(apperror.BadRequest("invalid or missing field: recordId"))
		return
	}

	if err := h.selectionUC.UpdateSelection(c, req.RecordID, req.Position, req.Status, req.Notes, req.DiscardReason); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Selection updated", nil)
}

// Delete godoc
// @Summary      Delete a CV
// @Description  Removes the record and, best-effort, its stored file (Admin only)
// @Tags         cvs
// @Produce      json
// @Param        id  query  string  true  "Record ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /cvs [delete]
// @Security     BearerAuth
func (h *CVHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.Error(apperror.BadRequest("invalid or missing field: id"))
		return
	}

	if _, err := h.deletionUC.Delete(c, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "CV deleted", nil)
}
