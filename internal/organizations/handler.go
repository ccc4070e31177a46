package organizations

import (
	"context"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/helping-hands/discovery/internal/models"
	"github.com/helping-hands/discovery/pkg/response"
)

// Store is what the handler needs from the repository.
type Store interface {
	List(ctx context.Context) ([]models.Organization, error)
	ListForUser(ctx context.Context, userID int64) ([]models.Organization, error)
	GetByID(ctx context.Context, id int64) (*models.Organization, error)
}

// Handler handles organization HTTP endpoints.
type Handler struct {
	store  Store
	logger *zap.Logger
}

// NewHandler creates an organizations handler.
func NewHandler(store Store, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: store, logger: logger}
}

// List handles GET /api/organizations. With ?user_id= only that user's
// organizations are returned.
func (h *Handler) List(c *gin.Context) {
	var (
		orgs []models.Organization
		err  error
	)
	if raw := c.Query("user_id"); raw != "" {
		userID, perr := strconv.ParseInt(raw, 10, 64)
		if perr != nil || userID <= 0 {
			response.BadRequest(c, "invalid user_id")
			return
		}
		orgs, err = h.store.ListForUser(c.Request.Context(), userID)
	} else {
		orgs, err = h.store.List(c.Request.Context())
	}
	if err != nil {
		h.logger.Error("list organizations", zap.Error(err))
		response.Internal(c, "failed to load organizations")
		return
	}
	response.List(c, orgs)
}

// GetByID handles GET /api/organizations/:id.
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid organization id")
		return
	}
	org, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c, "organization not found")
			return
		}
		h.logger.Error("get organization", zap.Error(err), zap.Int64("organization_id", id))
		response.Internal(c, "failed to load organization")
		return
	}
	response.OK(c, org)
}

// Register mounts the organization routes on g.
func (h *Handler) Register(g gin.IRoutes) {
	g.GET("/organizations", h.List)
	g.GET("/organizations/:id", h.GetByID)
}
