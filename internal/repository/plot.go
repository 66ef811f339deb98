// Package repository provides persistence implementations for garden plots
// using a PostgreSQL database.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atinyakov/PlotKeeper/internal/db"
	"github.com/atinyakov/PlotKeeper/internal/models"
	"github.com/lib/pq"
)

const plotColumns = `id, COALESCE(name, ''), COALESCE(status, ''), COALESCE(size, ''), COALESCE(location, '')`

// PostgresPlotRepository implements plot persistence against a PostgreSQL database.
type PostgresPlotRepository struct {
	// DB is the database handle for executing queries.
	DB db.DBTX
}

// NewPostgresPlotRepository creates a new PostgresPlotRepository using the provided handle.
// conn must be a valid connection to a PostgreSQL instance.
func NewPostgresPlotRepository(conn db.DBTX) *PostgresPlotRepository {
	return &PostgresPlotRepository{DB: conn}
}

// FindAll returns every plot ordered by id. It returns an empty slice when
// the table is empty.
func (r *PostgresPlotRepository) FindAll(ctx context.Context) ([]models.Plot, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+plotColumns+` FROM plots ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("FindAll: %w", err)
	}
	return scanPlots(rows)
}

// FindByStatus returns the plots whose status equals status exactly.
func (r *PostgresPlotRepository) FindByStatus(ctx context.Context, status string) ([]models.Plot, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+plotColumns+` FROM plots WHERE status = $1 ORDER BY id`, status)
	if err != nil {
		return nil, fmt.Errorf("FindByStatus: %w", err)
	}
	return scanPlots(rows)
}

// FindByStatuses returns the plots whose status equals any of statuses.
func (r *PostgresPlotRepository) FindByStatuses(ctx context.Context, statuses ...string) ([]models.Plot, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+plotColumns+` FROM plots WHERE status = ANY($1) ORDER BY id`, pq.Array(statuses))
	if err != nil {
		return nil, fmt.Errorf("FindByStatuses: %w", err)
	}
	return scanPlots(rows)
}

// FindByID returns a single plot, or models.ErrPlotNotFound.
func (r *PostgresPlotRepository) FindByID(ctx context.Context, id int64) (models.Plot, error) {
	var p models.Plot
	err := r.DB.QueryRowContext(ctx, `SELECT `+plotColumns+` FROM plots WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Status, &p.Size, &p.Location)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Plot{}, models.ErrPlotNotFound
	}
	if err != nil {
		return models.Plot{}, fmt.Errorf("FindByID: %w", err)
	}
	return p, nil
}

// Save inserts the plot when it has no id and overwrites the stored row otherwise.
// It returns the plot as stored.
func (r *PostgresPlotRepository) Save(ctx context.Context, plot models.Plot) (models.Plot, error) {
	switch cmd := models.NewSaveCommand(plot).(type) {
	case models.CreatePlot:
		return r.Insert(ctx, cmd.Fields)
	case models.UpdatePlot:
		return r.Update(ctx, cmd.ID, cmd.Fields)
	default:
		return models.Plot{}, fmt.Errorf("unsupported save command %T", cmd)
	}
}

// Insert stores a new plot and returns it with the id assigned by the database.
func (r *PostgresPlotRepository) Insert(ctx context.Context, f models.PlotFields) (models.Plot, error) {
	var id int64
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO plots (name, status, size, location)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, f.Name, f.Status, f.Size, f.Location).Scan(&id)
	if err != nil {
		return models.Plot{}, fmt.Errorf("insert plot: %w", err)
	}
	return f.WithID(id), nil
}

// Update overwrites every field of the plot with the given id.
// When no row carries that id the fields are inserted as a new plot and
// the returned plot has the id assigned by the database.
func (r *PostgresPlotRepository) Update(ctx context.Context, id int64, f models.PlotFields) (models.Plot, error) {
	var got int64
	err := r.DB.QueryRowContext(ctx, `
		UPDATE plots
		   SET name = $1, status = $2, size = $3, location = $4
		 WHERE id = $5
		RETURNING id
	`, f.Name, f.Status, f.Size, f.Location, id).Scan(&got)
	if errors.Is(err, sql.ErrNoRows) {
		return r.Insert(ctx, f)
	}
	if err != nil {
		return models.Plot{}, fmt.Errorf("update plot %d: %w", id, err)
	}
	return f.WithID(got), nil
}

func scanPlots(rows *sql.Rows) ([]models.Plot, error) {
	defer rows.Close()

	plots := make([]models.Plot, 0)
	for rows.Next() {
		var p models.Plot
		if err := rows.Scan(&p.ID, &p.Name, &p.Status, &p.Size, &p.Location); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		plots = append(plots, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return plots, nil
}
