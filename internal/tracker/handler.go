package tracker

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"careers-portal/internal/hrapi"
	"careers-portal/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the tracker service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches tracker routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/applications/status", h.lookup)
}

func (h *Handler) lookup(c *gin.Context) {
	reference := c.Query("reference")

	result, err := h.Svc.Lookup(c.Request.Context(), reference)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyReference):
			respond.Error(c, http.StatusBadRequest, "validation_error",
				"Please enter your application reference", nil)
		case errors.Is(err, ErrNotFound):
			// Not-found is informational, distinct from upstream failures.
			respond.Error(c, http.StatusNotFound, "not_found",
				fmt.Sprintf("No application was found for reference %s. Please check the code and try again.", normalizeForMessage(reference)), nil)
		default:
			if msg, ok := hrapi.FirstGraphQLMessage(err); ok {
				respond.Error(c, http.StatusBadGateway, "upstream_error", msg, nil)
				return
			}
			respond.Error(c, http.StatusBadGateway, "upstream_error",
				"We couldn't check your application status because of a network issue. Please try again in a moment.", nil)
		}
		return
	}
	respond.OK(c, result)
}

func normalizeForMessage(reference string) string {
	return strings.ToUpper(strings.TrimSpace(reference))
}
