package jobs

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"careers-portal/internal/hrapi"
	"careers-portal/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the jobs service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches job browsing routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs", h.listJobs)
	rg.GET("/jobs/:id", h.getJob)
}

func (h *Handler) listJobs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	filter := Filter{
		Search:         c.Query("search"),
		Department:     c.Query("department"),
		WorkLocation:   c.Query("workLocation"),
		EmploymentType: c.Query("employmentType"),
		Status:         c.Query("status"),
	}

	page, err := h.Svc.List(c.Request.Context(), limit, offset, filter)
	if err != nil {
		h.respondUpstream(c, "Unable to load job listings", err)
		return
	}
	if page.Data == nil {
		page.Data = []hrapi.JobPosting{}
	}
	respond.OK(c, page)
}

func (h *Handler) getJob(c *gin.Context) {
	posting, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Job not found", nil)
		default:
			h.respondUpstream(c, "Unable to load job information", err)
		}
		return
	}
	respond.OK(c, posting)
}

func (h *Handler) respondUpstream(c *gin.Context, fallback string, err error) {
	if msg, ok := hrapi.FirstGraphQLMessage(err); ok {
		respond.Error(c, http.StatusBadGateway, "upstream_error", msg, nil)
		return
	}
	respond.Error(c, http.StatusBadGateway, "upstream_error", fallback, nil)
}
