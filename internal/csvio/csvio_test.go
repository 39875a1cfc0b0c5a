package csvio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cellgrid/tsheet/internal/engine"
)

func newSheet() *engine.Sheet {
	return engine.New(10, 5, 10, nil)
}

func TestSaveFlattenMode(t *testing.T) {
	s := newSheet()
	s.SetNumber(0, 0, 1)
	s.SetText(0, 1, "hello, world")
	s.SetFormula(1, 0, "A1+1")

	var buf strings.Builder
	require.NoError(t, Save(s, &buf, ModeFlatten))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `1,"hello, world"`, lines[0])
	assert.Equal(t, "2,", lines[1])
}

func TestSavePreserveModeEmitsFormulaSource(t *testing.T) {
	s := newSheet()
	s.SetNumber(0, 0, 1)
	s.SetFormula(0, 1, "A1+1")

	var buf strings.Builder
	require.NoError(t, Save(s, &buf, ModePreserve))
	assert.Equal(t, "1,=A1+1\n", buf.String())
}

func TestQuoteFieldEscapesInternalQuotes(t *testing.T) {
	assert.Equal(t, `"say ""hi"""`, quoteField(`say "hi"`))
}

func TestLoadFlattenTypesFields(t *testing.T) {
	s := newSheet()
	input := "1,text,=A1+1\n"
	result, err := Load(s, strings.NewReader(input), ModeFlatten)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Rows)

	a, _ := s.Grid.Get(0, 0)
	b, _ := s.Grid.Get(0, 1)
	c, _ := s.Grid.Get(0, 2)
	assert.Equal(t, 1.0, a.Number)
	assert.Equal(t, "text", b.Text)
	assert.Equal(t, "=A1+1", c.Text) // flatten mode: no formula interpretation
}

func TestLoadPreserveModeParsesFormula(t *testing.T) {
	s := newSheet()
	input := "2,=A1*2\n"
	_, err := Load(s, strings.NewReader(input), ModePreserve)
	require.NoError(t, err)

	b, _ := s.Grid.Get(0, 1)
	require.NotNil(t, b)
	assert.Equal(t, "A1*2", b.FormulaSrc)
	assert.Equal(t, "4", s.DisplayValue(0, 1))
}

func TestLoadQuotedFieldWithComma(t *testing.T) {
	s := newSheet()
	input := `"a, b",2` + "\n"
	_, err := Load(s, strings.NewReader(input), ModeFlatten)
	require.NoError(t, err)
	a, _ := s.Grid.Get(0, 0)
	assert.Equal(t, "a, b", a.Text)
}

func TestLoadTruncatesOverlongLine(t *testing.T) {
	s := newSheet()
	long := strings.Repeat("x", MaxLineBytes+100)
	result, err := Load(s, strings.NewReader(long+"\n"), ModeFlatten)
	require.NoError(t, err)
	assert.Equal(t, 1, result.TruncatedLines)
}

func TestLoadClearsPreviousContent(t *testing.T) {
	s := newSheet()
	s.SetNumber(3, 3, 99)
	_, err := Load(s, strings.NewReader("1\n"), ModeFlatten)
	require.NoError(t, err)
	c, ok := s.Grid.Get(3, 3)
	require.True(t, ok)
	assert.Equal(t, 0.0, c.Number)
}
