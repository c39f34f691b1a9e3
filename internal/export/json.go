package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/wavesim/internal/storage"
	"github.com/san-kum/wavesim/internal/wave"
)

type Frame struct {
	Time float64   `json:"time"`
	Eta  []float64 `json:"eta"`
}

type Data struct {
	Run       storage.RunMetadata `json:"run"`
	Positions []float64           `json:"positions"`
	Frames    []Frame             `json:"frames"`
}

// JSON writes a stored run with its frames as one indented document.
func JSON(w io.Writer, meta storage.RunMetadata, frames []wave.Sample) error {
	data := Data{
		Run:    meta,
		Frames: make([]Frame, len(frames)),
	}
	if len(frames) > 0 {
		data.Positions = frames[0].Positions()
	}
	for i, s := range frames {
		data.Frames[i] = Frame{Time: s.Time, Eta: s.Elevations()}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// CSV writes frames in the same layout as a stored frames.csv.
func CSV(w io.Writer, frames []wave.Sample) error {
	return storage.WriteFramesCSV(w, frames)
}
