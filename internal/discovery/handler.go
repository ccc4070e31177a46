package discovery

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/schema"
	"go.uber.org/zap"

	"github.com/helping-hands/discovery/internal/filters"
	"github.com/helping-hands/discovery/internal/models"
	"github.com/helping-hands/discovery/pkg/response"
)

// Discoverer runs a filter selection for a user.
type Discoverer interface {
	Discover(ctx context.Context, userID int64, f filters.Filters) ([]models.Event, error)
}

// Query is the query string of GET /api/discover.
type Query struct {
	UserID       int64    `schema:"user_id"`
	Scope        string   `schema:"scope"`
	Availability []string `schema:"availability"`
	Categories   []string `schema:"category"`
}

var decoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

// ParseQuery decodes values into a user id and a filter selection.
// Unrecognized availability tags are ignored; an unknown scope or category
// is an error.
func ParseQuery(values url.Values) (int64, filters.Filters, error) {
	var q Query
	if err := decoder.Decode(&q, values); err != nil {
		return 0, filters.Filters{}, fmt.Errorf("decode query: %w", err)
	}
	if q.UserID < 0 {
		return 0, filters.Filters{}, errors.New("user_id must be positive")
	}

	scope, ok := filters.ParseScope(q.Scope)
	if !ok {
		return 0, filters.Filters{}, fmt.Errorf("unknown scope %q", q.Scope)
	}
	if scope.NeedsRoles() && q.UserID == 0 {
		return 0, filters.Filters{}, fmt.Errorf("user_id is required for scope %s", scope)
	}

	f := filters.Filters{Scope: scope}
	for _, a := range q.Availability {
		f.Availability = append(f.Availability, filters.Availability(a))
	}
	for _, raw := range q.Categories {
		c, ok := models.ParseCategory(raw)
		if !ok {
			return 0, filters.Filters{}, fmt.Errorf("unknown category %q", raw)
		}
		f.Categories = append(f.Categories, c)
	}
	return q.UserID, f.Normalize(), nil
}

// Handler serves discovery requests.
type Handler struct {
	svc    Discoverer
	logger *zap.Logger
}

// NewHandler creates a discovery handler.
func NewHandler(svc Discoverer, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{svc: svc, logger: logger}
}

// Discover handles GET /api/discover.
func (h *Handler) Discover(c *gin.Context) {
	userID, f, err := ParseQuery(c.Request.URL.Query())
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	list, err := h.svc.Discover(c.Request.Context(), userID, f)
	if err != nil {
		h.logger.Error("discover events", zap.Error(err), zap.Int64("user_id", userID), zap.String("scope", string(f.Scope)))
		response.Internal(c, "failed to discover events")
		return
	}
	response.List(c, list)
}

// Register mounts the discovery route on g.
func (h *Handler) Register(g gin.IRoutes) {
	g.GET("/discover", h.Discover)
}
