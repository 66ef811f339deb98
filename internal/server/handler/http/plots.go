// Package http provides HTTP handlers for listing, creating and editing plots.
package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/atinyakov/PlotKeeper/internal/models"
	"github.com/atinyakov/PlotKeeper/internal/server/views"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PlotService defines the plot operations required by the PlotHandler.
type PlotService interface {
	// GetAllPlots returns every stored plot.
	GetAllPlots(ctx context.Context) ([]models.Plot, error)
	// GetPlot returns one plot or models.ErrPlotNotFound.
	GetPlot(ctx context.Context, id int64) (models.Plot, error)
	// SavePlot creates or updates a plot.
	SavePlot(ctx context.Context, plot models.Plot) (models.Plot, error)
}

// Renderer renders a named page.
type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, data any) error
}

// PlotHandler handles the server-rendered plot pages.
type PlotHandler struct {
	PlotService PlotService
	Views       Renderer
	Log         *zap.Logger
}

// List handles GET /plots and renders every plot.
func (h *PlotHandler) List(w http.ResponseWriter, r *http.Request) {
	plots, err := h.PlotService.GetAllPlots(r.Context())
	if err != nil {
		h.fail(w, "list plots", err)
		return
	}
	h.render(w, views.PlotList, map[string]any{"Plots": plots})
}

// New handles GET /plots/new and renders an empty form.
func (h *PlotHandler) New(w http.ResponseWriter, r *http.Request) {
	h.render(w, views.PlotCreate, map[string]any{"Plot": models.Plot{}})
}

// Edit handles GET /plots/{id}/edit and renders the form filled with a stored plot.
func (h *PlotHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParsePlotID(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	plot, err := h.PlotService.GetPlot(r.Context(), id)
	if errors.Is(err, models.ErrPlotNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		h.fail(w, "get plot", err)
		return
	}
	h.render(w, views.PlotCreate, map[string]any{"Plot": plot})
}

// Save handles POST /plots/save. Form fields are copied into a plot as-is;
// a blank id creates a new plot and a numeric id updates that plot, or
// creates a new one when nothing is stored under it.
// On success the client is redirected to the list.
func (h *PlotHandler) Save(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := models.PlotForm{
		ID:       r.PostForm.Get("id"),
		Name:     r.PostForm.Get("name"),
		Status:   r.PostForm.Get("status"),
		Size:     r.PostForm.Get("size"),
		Location: r.PostForm.Get("location"),
	}
	plot, err := form.Plot()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := h.PlotService.SavePlot(r.Context(), plot); err != nil {
		h.fail(w, "save plot", err)
		return
	}

	http.Redirect(w, r, "/plots", http.StatusSeeOther)
}

func (h *PlotHandler) render(w http.ResponseWriter, name string, data any) {
	if err := h.Views.Render(w, http.StatusOK, name, data); err != nil {
		h.fail(w, "render", err)
	}
}

func (h *PlotHandler) fail(w http.ResponseWriter, op string, err error) {
	h.Log.Error(op+" failed", zap.Error(err))
	http.Error(w, "internal error", http.StatusInternalServerError)
}
