// Package service provides the plot business-logic layer,
// delegating persistence to a repository interface.
package service

import (
	"context"

	"github.com/atinyakov/PlotKeeper/internal/models"
)

// PlotRepository defines the persistence operations needed by the PlotService.
type PlotRepository interface {
	// FindAll returns every stored plot.
	FindAll(ctx context.Context) ([]models.Plot, error)
	// FindByID returns the plot with the given id or models.ErrPlotNotFound.
	FindByID(ctx context.Context, id int64) (models.Plot, error)
	// Save inserts the plot when it has no id, otherwise overwrites the stored row.
	Save(ctx context.Context, plot models.Plot) (models.Plot, error)
}

// PlotService implements plot listing and saving.
type PlotService struct {
	// repo is the underlying persistence repository.
	repo PlotRepository
}

// NewPlotService constructs a PlotService with the provided PlotRepository.
func NewPlotService(repo PlotRepository) *PlotService {
	return &PlotService{repo: repo}
}

// GetAllPlots returns every plot. Repository errors are returned unchanged.
func (s *PlotService) GetAllPlots(ctx context.Context) ([]models.Plot, error) {
	return s.repo.FindAll(ctx)
}

// GetPlot returns a single plot by id.
func (s *PlotService) GetPlot(ctx context.Context, id int64) (models.Plot, error) {
	return s.repo.FindByID(ctx, id)
}

// SavePlot creates or updates the plot and returns it as stored.
func (s *PlotService) SavePlot(ctx context.Context, plot models.Plot) (models.Plot, error) {
	return s.repo.Save(ctx, plot)
}
