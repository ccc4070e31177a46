// Package discovery answers "which events match this selection for this
// user" by combining the events store, the user's roles and the filter
// engine.
package discovery

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/helping-hands/discovery/internal/events"
	"github.com/helping-hands/discovery/internal/filters"
	"github.com/helping-hands/discovery/internal/models"
)

// EventLister lists events matching a parsed query.
type EventLister interface {
	List(ctx context.Context, q events.ListQuery) ([]models.Event, error)
}

// RoleLister returns the roles a user holds.
type RoleLister interface {
	ListByUser(ctx context.Context, userID int64) ([]models.Role, error)
}

// Service runs filter selections.
type Service struct {
	events   EventLister
	roles    RoleLister
	pushdown bool
	logger   *zap.Logger
}

// NewService creates a discovery service. With pushdown the expressible part
// of a selection is sent to the events store; otherwise every event is
// loaded and filtered in memory.
func NewService(ev EventLister, roles RoleLister, pushdown bool, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{events: ev, roles: roles, pushdown: pushdown, logger: logger}
}

// Discover returns the events f selects for userID, in store order.
func (s *Service) Discover(ctx context.Context, userID int64, f filters.Filters) ([]models.Event, error) {
	f = f.Normalize()
	if s.pushdown {
		return s.discoverPushdown(ctx, userID, f)
	}
	return s.discoverLocal(ctx, userID, f)
}

func (s *Service) discoverPushdown(ctx context.Context, userID int64, f filters.Filters) ([]models.Event, error) {
	var roles []models.Role
	if f.Scope.NeedsRoles() {
		var err error
		if roles, err = s.roles.ListByUser(ctx, userID); err != nil {
			return nil, fmt.Errorf("load roles: %w", err)
		}
	}

	matcher := filters.NewMatcher(f, roles)
	if matcher.MatchesNothing() {
		s.logger.Debug("discover", zap.String("mode", "pushdown"), zap.Bool("skipped", true))
		return []models.Event{}, nil
	}

	plan := filters.PlanQuery(f, roles)
	q, err := events.DecodeListQuery(plan.Params.Values())
	if err != nil {
		return nil, fmt.Errorf("build events query: %w", err)
	}

	list, err := s.events.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	s.logger.Debug("discover",
		zap.String("mode", "pushdown"),
		zap.String("query", plan.Params.Encode()),
		zap.Bool("exact", plan.Exact),
		zap.Int("fetched", len(list)),
	)
	if plan.Exact {
		return list, nil
	}
	return matcher.Filter(list), nil
}

func (s *Service) discoverLocal(ctx context.Context, userID int64, f filters.Filters) ([]models.Event, error) {
	var (
		all   []models.Event
		roles []models.Role
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if all, err = s.events.List(gctx, events.ListQuery{}); err != nil {
			return fmt.Errorf("list events: %w", err)
		}
		return nil
	})
	if f.Scope.NeedsRoles() {
		g.Go(func() error {
			var err error
			if roles, err = s.roles.ListByUser(gctx, userID); err != nil {
				return fmt.Errorf("load roles: %w", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Debug("discover", zap.String("mode", "local"), zap.Int("fetched", len(all)))
	return filters.Apply(all, f, roles), nil
}
