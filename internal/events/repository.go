package events

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/helping-hands/discovery/internal/filters"
	"github.com/helping-hands/discovery/internal/models"
	"github.com/helping-hands/discovery/internal/timeofday"
	"github.com/helping-hands/discovery/pkg/database"
)

const selectEvents = `SELECT id, name, description, location, date_time, organization_id, COALESCE(category, '') FROM events`

// Times compare at minute precision so end_time=21:59 admits 21:59:30.
const (
	minuteOfDay = `date_trunc('minute', date_time)::time`
	isoWeekday  = `EXTRACT(ISODOW FROM date_time)`
	weekendCond = isoWeekday + ` IN (6, 7)`
)

// Repository handles event persistence.
type Repository struct {
	pool database.Pool
}

// NewRepository creates an event repository.
func NewRepository(pool database.Pool) *Repository {
	return &Repository{pool: pool}
}

// List returns the events matching q ordered by id.
func (r *Repository) List(ctx context.Context, q ListQuery) ([]models.Event, error) {
	sql, args := buildList(q)
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var list []models.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// GetByID returns one event or ErrNotFound.
func (r *Repository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	e, err := scanEvent(r.pool.QueryRow(ctx, selectEvents+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get event %d: %w", id, err)
	}
	return &e, nil
}

// Create inserts ev and returns the stored event.
func (r *Repository) Create(ctx context.Context, ev NewEvent) (*models.Event, error) {
	const q = `INSERT INTO events (name, description, location, date_time, organization_id, category)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
		RETURNING id`
	var id int64
	err := r.pool.QueryRow(ctx, q, ev.Name, ev.Description, ev.Location, ev.DateTime, ev.OrganizationID, string(ev.Category)).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrUnknownOrganization
		}
		return nil, fmt.Errorf("insert event: %w", err)
	}
	return ev.stored(id), nil
}

// Update replaces every field of event id with ev. It returns ErrNotFound
// for a missing event and ErrUnknownOrganization for a missing organization.
func (r *Repository) Update(ctx context.Context, id int64, ev NewEvent) (*models.Event, error) {
	const q = `UPDATE events
		SET name = $2, description = $3, location = $4, date_time = $5, organization_id = $6, category = NULLIF($7, '')
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, q, id, ev.Name, ev.Description, ev.Location, ev.DateTime, ev.OrganizationID, string(ev.Category))
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrUnknownOrganization
		}
		return nil, fmt.Errorf("update event %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return ev.stored(id), nil
}

// Delete removes an event by id, or returns ErrNotFound.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanEvent(row pgx.Row) (models.Event, error) {
	var (
		e        models.Event
		at       time.Time
		category string
	)
	if err := row.Scan(&e.ID, &e.Name, &e.Description, &e.Location, &at, &e.OrganizationID, &category); err != nil {
		return models.Event{}, err
	}
	e.DateTime = models.FormatDateTime(at)
	e.Category = models.Category(category)
	return e, nil
}

// buildList renders q as SQL. Conditions are ANDed in a fixed order so the
// statement is stable for a given query.
func buildList(q ListQuery) (string, []any) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if q.BeginTime != "" {
		conds = append(conds, minuteOfDay+" >= "+arg(q.BeginTime)+"::time")
	}
	if q.EndTime != "" {
		conds = append(conds, minuteOfDay+" <= "+arg(q.EndTime)+"::time")
	}
	if q.BeginDate != "" {
		conds = append(conds, "date_time::date >= "+arg(q.BeginDate)+"::date")
	}
	if q.EndDate != "" {
		conds = append(conds, "date_time::date <= "+arg(q.EndDate)+"::date")
	}
	if q.IsWeekday != nil {
		if *q.IsWeekday {
			conds = append(conds, isoWeekday+" BETWEEN 1 AND 5")
		} else {
			conds = append(conds, weekendCond)
		}
	}
	if len(q.OrganizationIDs) > 0 {
		conds = append(conds, "organization_id = ANY("+arg(q.OrganizationIDs)+")")
	}
	if len(q.Categories) > 0 {
		conds = append(conds, "category = ANY("+arg(q.Categories)+")")
	}
	if c := availabilityCond(q.Availability); c != "" {
		conds = append(conds, c)
	}

	sql := selectEvents
	if len(conds) > 0 {
		sql += " WHERE " + strings.Join(conds, " AND ")
	}
	return sql + " ORDER BY id", args
}

// availabilityCond ORs the selected tags. Flexible, or no tags, is no condition.
func availabilityCond(tags []string) string {
	if len(tags) == 0 || slices.Contains(tags, string(filters.Flexible)) {
		return ""
	}
	var ors []string
	for _, raw := range tags {
		a := filters.Availability(raw)
		if a == filters.Weekends {
			ors = append(ors, "("+weekendCond+")")
			continue
		}
		if b, ok := a.Bucket(); ok {
			rng := timeofday.Ranges[b]
			ors = append(ors, fmt.Sprintf("(EXTRACT(HOUR FROM date_time) BETWEEN %d AND %d)", rng.Start, rng.End))
		}
	}
	if len(ors) == 0 {
		return ""
	}
	return "(" + strings.Join(ors, " OR ") + ")"
}
