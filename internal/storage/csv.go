package storage

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/wavesim/internal/wave"
)

// WriteFramesCSV writes one row per frame: the time followed by η at each
// position. The header row is "time" followed by the positions. Values use
// the shortest exact representation, so a reloaded run is bit-identical.
func WriteFramesCSV(w io.Writer, frames []wave.Sample) error {
	cw := csv.NewWriter(w)

	if len(frames) == 0 {
		cw.Flush()
		return cw.Error()
	}

	header := make([]string, 0, frames[0].Len()+1)
	header = append(header, "time")
	for _, p := range frames[0].Points {
		header = append(header, strconv.FormatFloat(p.X, 'g', -1, 64))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for _, s := range frames {
		row = row[:1]
		row[0] = strconv.FormatFloat(s.Time, 'g', -1, 64)
		for _, p := range s.Points {
			row = append(row, strconv.FormatFloat(p.Eta, 'g', -1, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
