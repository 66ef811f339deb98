// Package models defines the core data structures for garden plots and users.
package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrPlotNotFound is returned when no plot row carries the requested identifier.
var ErrPlotNotFound = errors.New("plot not found")

// Plot represents one garden bed.
type Plot struct {
	// ID is assigned by the store on insert. Zero means the plot has not been stored yet.
	ID int64
	// Name is a human label for the bed.
	Name string
	// Status is a free-form lifecycle label such as "active" or "fallow".
	Status string
	// Size is the bed size as entered, e.g. "4x8".
	Size string
	// Location describes where the bed is, e.g. "Row 1".
	Location string
}

// Fields returns the mutable part of the plot.
func (p Plot) Fields() PlotFields {
	return PlotFields{Name: p.Name, Status: p.Status, Size: p.Size, Location: p.Location}
}

// PlotFields holds every plot column except the identifier.
type PlotFields struct {
	Name     string
	Status   string
	Size     string
	Location string
}

// WithID builds a stored Plot out of the fields and an identifier.
func (f PlotFields) WithID(id int64) Plot {
	return Plot{ID: id, Name: f.Name, Status: f.Status, Size: f.Size, Location: f.Location}
}

// SaveCommand is either CreatePlot or UpdatePlot.
type SaveCommand interface {
	saveCommand()
}

// CreatePlot asks the store to insert a new row and assign an identifier.
type CreatePlot struct {
	Fields PlotFields
}

// UpdatePlot asks the store to overwrite the row with the given identifier.
type UpdatePlot struct {
	ID     int64
	Fields PlotFields
}

func (CreatePlot) saveCommand() {}
func (UpdatePlot) saveCommand() {}

// NewSaveCommand picks Create or Update by whether the plot already has an identifier.
func NewSaveCommand(p Plot) SaveCommand {
	if p.ID == 0 {
		return CreatePlot{Fields: p.Fields()}
	}
	return UpdatePlot{ID: p.ID, Fields: p.Fields()}
}

// PlotForm is the raw HTML form submitted to the save endpoint.
// Field contents are not validated.
type PlotForm struct {
	ID       string
	Name     string
	Status   string
	Size     string
	Location string
}

// Plot converts the form into a Plot. A blank ID yields an unsaved plot;
// an ID that is not a positive integer is an error.
func (f PlotForm) Plot() (Plot, error) {
	p := Plot{Name: f.Name, Status: f.Status, Size: f.Size, Location: f.Location}

	id := strings.TrimSpace(f.ID)
	if id == "" {
		return p, nil
	}
	n, err := ParsePlotID(id)
	if err != nil {
		return Plot{}, err
	}
	p.ID = n
	return p, nil
}

// ParsePlotID parses a plot identifier as it appears in URLs and forms.
func ParsePlotID(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid plot id %q", s)
	}
	return n, nil
}

// User represents an application account. Nothing reads or writes users yet;
// the type mirrors the users table.
type User struct {
	// ID is the unique identifier assigned by the store.
	ID int64
	// Username is unique and required.
	Username string
	// Password is stored as given, without hashing.
	Password string
	// Email is unique and required.
	Email string
	// Role is optional.
	Role string
}
