package payments

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"careers-portal/internal/hrapi"
	"careers-portal/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the payments service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches payment routes to the router group. Guards,
// if any, run before the reference lookup handler only.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, lookupGuards ...gin.HandlerFunc) {
	rg.GET("/payments/fees", h.listFees)
	rg.POST("/payments/prt", h.generate)
	rg.GET("/payments/prt/:reference", append(lookupGuards, h.lookup)...)
}

func (h *Handler) listFees(c *gin.Context) {
	fees, err := h.Svc.ListFees(c.Request.Context())
	if err != nil {
		h.respondUpstream(c, "Unable to load fees", err)
		return
	}
	respond.OK(c, gin.H{"fees": fees})
}

func (h *Handler) generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	slip, err := h.Svc.Generate(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidPayer):
			respond.Error(c, http.StatusUnprocessableEntity, "validation_error",
				"Full name and phone number are required.", nil)
		case errors.Is(err, ErrNoItemsSelected):
			respond.Error(c, http.StatusUnprocessableEntity, "validation_error",
				"Please select at least one item to generate a payment token.", nil)
		case errors.Is(err, ErrUnknownFeeItem):
			respond.Error(c, http.StatusUnprocessableEntity, "validation_error",
				"One of the selected fee items no longer exists. Please reload the fee list.", nil)
		default:
			h.respondUpstream(c, "Failed to generate payment token", err)
		}
		return
	}
	respond.JSON(c, http.StatusCreated, slip)
}

func (h *Handler) lookup(c *gin.Context) {
	details, err := h.Svc.Lookup(c.Request.Context(), c.Param("reference"))
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyReference):
			respond.Error(c, http.StatusBadRequest, "validation_error",
				"Please enter a payment reference", nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found",
				"No payment was found for that reference. Please check the code and try again.", nil)
		default:
			h.respondUpstream(c, "Failed to fetch payment details", err)
		}
		return
	}
	respond.OK(c, details)
}

func (h *Handler) respondUpstream(c *gin.Context, fallback string, err error) {
	if msg, ok := hrapi.FirstGraphQLMessage(err); ok {
		respond.Error(c, http.StatusBadGateway, "upstream_error", msg, nil)
		return
	}
	respond.Error(c, http.StatusBadGateway, "upstream_error", fallback, nil)
}
