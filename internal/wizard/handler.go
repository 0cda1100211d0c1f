package wizard

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"careers-portal/internal/hrapi"
	"careers-portal/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the wizard service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches wizard routes to the router group. Guards, if
// any, run before the submit handler only.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, submitGuards ...gin.HandlerFunc) {
	rg.POST("/applications/wizard", h.startSession)
	rg.GET("/applications/wizard/:id", h.getSession)
	rg.POST("/applications/wizard/:id/advance", h.advance)
	rg.POST("/applications/wizard/:id/retreat", h.retreat)
	rg.POST("/applications/wizard/:id/resume", h.uploadResume)
	rg.DELETE("/applications/wizard/:id/resume", h.removeResume)
	rg.POST("/applications/wizard/:id/submit", append(submitGuards, h.submit)...)
}

type startSessionRequest struct {
	JobPostingID string `json:"jobPostingId"`
}

func (h *Handler) startSession(c *gin.Context) {
	var req startSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.JobPostingID) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "jobPostingId is required", nil)
		return
	}

	view, err := h.Svc.Start(c.Request.Context(), strings.TrimSpace(req.JobPostingID))
	if err != nil {
		switch {
		case errors.Is(err, ErrJobNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Job not found", nil)
		default:
			h.respondUpstream(c, "Unable to load job information", err)
		}
		return
	}
	respond.JSON(c, http.StatusCreated, view)
}

func (h *Handler) getSession(c *gin.Context) {
	view, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond.OK(c, view)
}

func (h *Handler) advance(c *gin.Context) {
	var fields Draft
	if err := c.ShouldBindJSON(&fields); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	view, err := h.Svc.Advance(c.Param("id"), fields)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond.OK(c, view)
}

func (h *Handler) retreat(c *gin.Context) {
	view, cancelled, err := h.Svc.Retreat(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if cancelled {
		respond.OK(c, gin.H{"cancelled": true})
		return
	}
	respond.OK(c, view)
}

func (h *Handler) uploadResume(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read uploaded file", nil)
		return
	}
	defer file.Close()

	// Reading stops at the size limit; the service rejects anything that
	// fills it, so oversized uploads are never held in full.
	data, err := io.ReadAll(io.LimitReader(file, maxResumeSize))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read uploaded file", nil)
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	view, err := h.Svc.UploadResume(c.Param("id"), fileHeader.Filename, mimeType, data)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond.JSON(c, http.StatusAccepted, view)
}

func (h *Handler) removeResume(c *gin.Context) {
	view, err := h.Svc.RemoveResume(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond.OK(c, view)
}

func (h *Handler) submit(c *gin.Context) {
	outcome, err := h.Svc.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrResumeRequired) {
			respond.Error(c, http.StatusUnprocessableEntity, "resume_required",
				"Please upload your resume/CV before submitting.", nil)
			return
		}
		h.respondError(c, err)
		return
	}
	respond.OK(c, outcome)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	var validationErr *ValidationError
	var submissionErr *SubmissionError
	switch {
	case errors.As(err, &validationErr):
		details := make([]map[string]string, 0, len(validationErr.Fields))
		for _, f := range validationErr.Fields {
			details = append(details, map[string]string{"field": f.Field, "message": f.Message})
		}
		message := "validation failed"
		if len(validationErr.Fields) > 0 {
			message = validationErr.Fields[0].Message
		}
		respond.Error(c, http.StatusUnprocessableEntity, "validation_error", message, details)
	case errors.Is(err, ErrSessionNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "wizard session not found", nil)
	case errors.Is(err, ErrEncodingInProgress):
		respond.Error(c, http.StatusConflict, "resume_processing",
			"Please wait until your resume finishes processing.", nil)
	case errors.Is(err, ErrResumeRequired):
		respond.Error(c, http.StatusUnprocessableEntity, "resume_required",
			"Please upload your resume/CV", nil)
	case errors.Is(err, ErrSubmitInFlight):
		respond.Error(c, http.StatusConflict, "submission_in_flight",
			"Your application is already being submitted.", nil)
	case errors.Is(err, ErrNotAtReview):
		respond.Error(c, http.StatusConflict, "wrong_step",
			"Please complete all steps before submitting.", nil)
	case errors.Is(err, ErrAlreadyAtReview):
		respond.Error(c, http.StatusConflict, "wrong_step",
			"You're already at the final step.", nil)
	case errors.As(err, &submissionErr):
		respond.Error(c, http.StatusBadGateway, "submission_failed", submissionErr.Message, nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "something went wrong", nil)
	}
}

func (h *Handler) respondUpstream(c *gin.Context, message string, err error) {
	if msg, ok := hrapi.FirstGraphQLMessage(err); ok {
		respond.Error(c, http.StatusBadGateway, "upstream_error", msg, nil)
		return
	}
	respond.Error(c, http.StatusBadGateway, "upstream_error", message, nil)
}
