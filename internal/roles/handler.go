package roles

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/helping-hands/discovery/pkg/response"
)

// Handler serves role lookups.
type Handler struct {
	roles  Lister
	logger *zap.Logger
}

// NewHandler creates a role handler.
func NewHandler(roles Lister, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{roles: roles, logger: logger}
}

// List handles GET /api/roles?user_id=.
func (h *Handler) List(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		response.BadRequest(c, "user_id is required")
		return
	}
	list, err := h.roles.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("list roles", zap.Error(err), zap.Int64("user_id", userID))
		response.Internal(c, "failed to load roles")
		return
	}
	response.List(c, list)
}

// Register mounts the role routes on g.
func (h *Handler) Register(g gin.IRoutes) {
	g.GET("/roles", h.List)
}
