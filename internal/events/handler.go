package events

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
	List(ctx context.Context, q ListQuery) ([]models.Event, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	Create(ctx context.Context, ev NewEvent) (*models.Event, error)
	Update(ctx context.Context, id int64, ev NewEvent) (*models.Event, error)
	Delete(ctx context.Context, id int64) error
}

// Handler handles event HTTP endpoints.
type Handler struct {
	store  Store
	logger *zap.Logger
}

// NewHandler creates an event handler.
func NewHandler(store Store, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: store, logger: logger}
}

// List handles GET /api/events.
func (h *Handler) List(c *gin.Context) {
	q, err := DecodeListQuery(c.Request.URL.Query())
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	list, err := h.store.List(c.Request.Context(), q)
	if err != nil {
		h.logger.Error("list events", zap.Error(err), zap.String("query", c.Request.URL.RawQuery))
		response.Internal(c, "failed to list events")
		return
	}
	response.List(c, list)
}

// GetByID handles GET /api/events/:id.
func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	e, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c, "event not found")
			return
		}
		h.logger.Error("get event", zap.Error(err), zap.Int64("event_id", id))
		response.Internal(c, "failed to load event")
		return
	}
	response.OK(c, e)
}

// Create handles POST /api/events.
func (h *Handler) Create(c *gin.Context) {
	ev, ok := bindEvent(c)
	if !ok {
		return
	}
	e, err := h.store.Create(c.Request.Context(), ev)
	if err != nil {
		if errors.Is(err, ErrUnknownOrganization) {
			response.BadRequest(c, err.Error())
			return
		}
		h.logger.Error("create event", zap.Error(err), zap.Int64("organization_id", ev.OrganizationID))
		response.Internal(c, "failed to create event")
		return
	}
	response.Created(c, e)
}

// Update handles PUT /api/events/:id.
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ev, ok := bindEvent(c)
	if !ok {
		return
	}
	e, err := h.store.Update(c.Request.Context(), id, ev)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.NotFound(c, "event not found")
		case errors.Is(err, ErrUnknownOrganization):
			response.BadRequest(c, err.Error())
		default:
			h.logger.Error("update event", zap.Error(err), zap.Int64("event_id", id))
			response.Internal(c, "failed to update event")
		}
		return
	}
	response.OK(c, e)
}

// Delete handles DELETE /api/events/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c, "event not found")
			return
		}
		h.logger.Error("delete event", zap.Error(err), zap.Int64("event_id", id))
		response.Internal(c, "failed to delete event")
		return
	}
	response.NoContent(c)
}

// Register mounts the event routes on g.
func (h *Handler) Register(g gin.IRoutes) {
	g.GET("/events", h.List)
	g.POST("/events", h.Create)
	g.GET("/events/:id", h.GetByID)
	g.PUT("/events/:id", h.Update)
	g.DELETE("/events/:id", h.Delete)
}

func bindEvent(c *gin.Context) (NewEvent, bool) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return NewEvent{}, false
	}
	ev, err := ValidateCreate(req)
	if err != nil {
		response.BadRequest(c, err.Error())
		return NewEvent{}, false
	}
	return ev, true
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid event id")
		return 0, false
	}
	return id, true
}
