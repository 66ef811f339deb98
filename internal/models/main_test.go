package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSaveCommand(t *testing.T) {
	fresh := Plot{Name: "North Bed", Status: "active", Size: "4x8", Location: "Row 1"}
	cmd := NewSaveCommand(fresh)
	create, ok := cmd.(CreatePlot)
	require.True(t, ok, "expected CreatePlot, got %T", cmd)
	assert.Equal(t, fresh.Fields(), create.Fields)

	stored := fresh
	stored.ID = 7
	cmd = NewSaveCommand(stored)
	update, ok := cmd.(UpdatePlot)
	require.True(t, ok, "expected UpdatePlot, got %T", cmd)
	assert.Equal(t, int64(7), update.ID)
	assert.Equal(t, stored, update.Fields.WithID(update.ID))
}

func TestPlotForm_Plot(t *testing.T) {
	tests := []struct {
		name    string
		form    PlotForm
		want    Plot
		wantErr bool
	}{
		{
			name: "blank id creates",
			form: PlotForm{Name: "North Bed", Status: "active", Size: "4x8", Location: "Row 1"},
			want: Plot{Name: "North Bed", Status: "active", Size: "4x8", Location: "Row 1"},
		},
		{
			name: "numeric id updates",
			form: PlotForm{ID: " 12 ", Name: "South Bed"},
			want: Plot{ID: 12, Name: "South Bed"},
		},
		{
			name: "empty fields pass through",
			form: PlotForm{},
			want: Plot{},
		},
		{name: "garbage id", form: PlotForm{ID: "abc"}, wantErr: true},
		{name: "negative id", form: PlotForm{ID: "-3"}, wantErr: true},
		{name: "zero id", form: PlotForm{ID: "0"}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.form.Plot()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
