package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cellgrid/tsheet/internal/cellstore"
)

func TestDialogSelectGeneralCompletesImmediately(t *testing.T) {
	d := NewDialog()
	d.Open()
	require.Equal(t, DialogStepFormat, d.Step)

	done := d.Select()
	assert.True(t, done)
	assert.Equal(t, cellstore.FormatGeneral, d.Choice.Format)
	assert.False(t, d.Visible)
}

func TestDialogSelectDateAdvancesToStyleStep(t *testing.T) {
	d := NewDialog()
	d.Open()
	d.Cursor = 4 // "Date" in formatFamilies

	done := d.Select()
	assert.False(t, done)
	assert.Equal(t, DialogStepStyle, d.Step)
	assert.Equal(t, dateStyleLabels, d.Options)

	d.MoveDown()
	done = d.Select()
	assert.True(t, done)
	assert.Equal(t, cellstore.FormatDate, d.Choice.Format)
	assert.Equal(t, 1, d.Choice.Style)
}

func TestDialogMoveUpDownClampAtBounds(t *testing.T) {
	d := NewDialog()
	d.Open()
	d.MoveUp()
	assert.Equal(t, 0, d.Cursor)

	for i := 0; i < len(d.Options)+2; i++ {
		d.MoveDown()
	}
	assert.Equal(t, len(d.Options)-1, d.Cursor)
}
