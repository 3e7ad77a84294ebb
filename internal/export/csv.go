package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/faraday/internal/sim"
)

var csvHeader = []string{"time", "position", "velocity", "flux", "emf", "emf_display"}

// WriteCSV writes one row per accepted tick.
func WriteCSV(w io.Writer, tr *sim.Trace) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, f := range tr.Frames {
		row := []string{
			strconv.FormatFloat(f.Time, 'f', 6, 64),
			strconv.FormatFloat(f.Position, 'f', 6, 64),
			strconv.FormatFloat(f.Velocity, 'f', 6, 64),
			strconv.FormatFloat(f.Flux, 'f', 6, 64),
			strconv.FormatFloat(f.EMF, 'f', 6, 64),
			strconv.FormatFloat(f.EMFDisplay, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
