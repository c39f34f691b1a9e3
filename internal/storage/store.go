package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/wavesim/internal/wave"
)

const (
	metadataFile = "metadata.json"
	framesFile   = "frames.csv"
)

var ErrRunNotFound = errors.New("storage: run not found")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Timestamp     time.Time          `json:"timestamp"`
	Amplitude     float64            `json:"amplitude"`
	Wavelength    float64            `json:"wavelength"`
	Depth         float64            `json:"depth"`
	Effects       wave.Effects       `json:"effects"`
	Regime        string             `json:"regime"`
	Wavenumber    float64            `json:"wavenumber"`
	Omega         float64            `json:"angular_frequency"`
	PhaseVelocity float64            `json:"phase_velocity"`
	Period        float64            `json:"period"`
	Dt            float64            `json:"dt"`
	Duration      float64            `json:"duration"`
	Points        int                `json:"points"`
	Frames        int                `json:"frames"`
	Warnings      []string           `json:"warnings,omitempty"`
	Metrics       map[string]float64 `json:"metrics"`
}

// Run is what a finished simulation hands to Save.
type Run struct {
	Name       string
	Parameters wave.Parameters
	Dt         float64
	Duration   float64
	Warnings   []wave.Warning
	Metrics    map[string]float64
	Frames     []wave.Sample
}

// Save writes metadata.json and frames.csv under a fresh run directory.
// Every frame must share the positions of the first.
func (s *Store) Save(run Run) (string, error) {
	d, err := wave.Diagnose(run.Parameters)
	if err != nil {
		return "", err
	}

	name := run.Name
	if name == "" {
		name = "wave"
	}
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", name, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:            runID,
		Name:          name,
		Timestamp:     now,
		Amplitude:     run.Parameters.Amplitude,
		Wavelength:    run.Parameters.Wavelength,
		Depth:         run.Parameters.Depth,
		Effects:       run.Parameters.Effects,
		Regime:        d.Regime.String(),
		Wavenumber:    d.Wavenumber,
		Omega:         d.AngularFrequency,
		PhaseVelocity: d.PhaseVelocity,
		Period:        d.Period,
		Dt:            run.Dt,
		Duration:      run.Duration,
		Frames:        len(run.Frames),
		Metrics:       run.Metrics,
	}
	if len(run.Frames) > 0 {
		meta.Points = run.Frames[0].Len()
	}
	for _, w := range run.Warnings {
		meta.Warnings = append(meta.Warnings, w.Message)
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writeFrames(filepath.Join(runDir, framesFile), run.Frames); err != nil {
		return "", err
	}
	return runID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeFrames(path string, frames []wave.Sample) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := WriteFramesCSV(f, frames); err != nil {
		return err
	}
	return f.Sync()
}

// List returns stored runs, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadFrames reads frames.csv back into samples. Positions come from the
// header, which names each column by its x coordinate.
func (s *Store) LoadFrames(runID string) ([]wave.Sample, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, framesFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []wave.Sample{}, nil
	}

	header := records[0]
	xs := make([]float64, len(header)-1)
	for j := 1; j < len(header); j++ {
		x, err := strconv.ParseFloat(header[j], 64)
		if err != nil {
			return nil, fmt.Errorf("storage: bad header column %q: %w", header[j], err)
		}
		xs[j-1] = x
	}

	frames := make([]wave.Sample, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) == 0 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}

		s := wave.Sample{Time: t, Points: make([]wave.Point, 0, len(xs))}
		for j := 1; j < len(record) && j-1 < len(xs); j++ {
			eta, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				continue
			}
			s.Points = append(s.Points, wave.Point{X: xs[j-1], Eta: eta})
		}
		frames = append(frames, s)
	}
	return frames, nil
}
