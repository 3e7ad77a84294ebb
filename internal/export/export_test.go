package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/faraday/internal/analysis"
	"github.com/san-kum/faraday/internal/control"
	"github.com/san-kum/faraday/internal/induction"
	"github.com/san-kum/faraday/internal/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sweepTrace(t *testing.T) *sim.Trace {
	t.Helper()
	r := sim.NewRunner(induction.DefaultParams(), control.DefaultTravel(), control.DefaultAmplitude)
	tr, err := r.Run(context.Background(), sim.SweepScenario())
	require.NoError(t, err)
	return tr
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(".PNG")
	require.NoError(t, err)
	assert.Equal(t, FormatPNG, f)

	f, err = FormatFromPath("out/run.csv")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	_, err = ParseFormat("gif")
	assert.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	tr := sweepTrace(t)
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, tr))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, len(tr.Frames)+1)
	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, "0.000000", rows[len(rows)-1][1])
}

func TestWriteJSON(t *testing.T) {
	tr := sweepTrace(t)
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, tr))

	var data ExportData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
	assert.Equal(t, len(tr.Frames), data.Steps)
	assert.Equal(t, sim.ModeSweep, data.Scenario.Mode)
	assert.Len(t, data.History, len(tr.History))
	assert.InDelta(t, -induction.FluxWidth/1.41421356, data.Metrics["peak_position"], 4)
	assert.Less(t, data.Metrics["peak_emf"], 0.0)
}

func TestWriteChart(t *testing.T) {
	tr := sweepTrace(t)

	var png bytes.Buffer
	require.NoError(t, WriteChart(&png, tr, FormatPNG))
	assert.True(t, bytes.HasPrefix(png.Bytes(), []byte("\x89PNG")))

	var svg bytes.Buffer
	require.NoError(t, WriteChart(&svg, tr, FormatSVG))
	assert.Contains(t, svg.String(), "<svg")

	assert.Error(t, WriteChart(&svg, tr, FormatCSV))
	assert.ErrorIs(t, WriteChart(&svg, &sim.Trace{}, FormatPNG), ErrEmptyTrace)
}

func TestWritePortrait(t *testing.T) {
	tr := sweepTrace(t)
	var buf bytes.Buffer
	require.NoError(t, WritePortrait(&buf, analysis.EMFPortrait(tr), FormatSVG))
	assert.Contains(t, buf.String(), "<svg")
}

func TestToFile(t *testing.T) {
	tr := sweepTrace(t)
	dir := t.TempDir()

	for _, name := range []string{"run.csv", "run.json", "charts/run.png"} {
		path := filepath.Join(dir, name)
		require.NoError(t, ToFile(path, tr), name)
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size(), name)
	}

	assert.Error(t, ToFile(filepath.Join(dir, "run.txt"), tr))
}
