// Package storage persists finished observation runs: one directory per
// run with JSON metadata and one CSV file per output map.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/synchro/internal/field"
	"github.com/san-kum/synchro/internal/units"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata records the parameters a run was produced with and the unit
// of every stored map.
type RunMetadata struct {
	ID         string            `json:"id"`
	Field      string            `json:"field"`
	Electrons  string            `json:"electrons"`
	Timestamp  time.Time         `json:"timestamp"`
	Wavelength float64           `json:"wavelength_m"`
	Gamma      float64           `json:"gamma"`
	BeamSD     float64           `json:"beam_sd"`
	Resolution int               `json:"resolution"`
	HalfSize   float64           `json:"half_size_pc"`
	MapUnits   map[string]string `json:"map_units"`
}

// Save writes a run directory named <field>_<unix time> containing
// metadata.json and one CSV per map, and returns the run ID.
func (s *Store) Save(meta RunMetadata, maps map[string]*field.Map) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.Field, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()
	meta.MapUnits = make(map[string]string, len(maps))
	for name, m := range maps {
		meta.MapUnits[name] = m.Unit().Symbol()
		if err := writeMapCSV(filepath.Join(runDir, name+".csv"), m); err != nil {
			return "", err
		}
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}
	return runID, nil
}

// Load reads a run's metadata and all of its maps.
func (s *Store) Load(runID string) (RunMetadata, map[string]*field.Map, error) {
	runDir := filepath.Join(s.baseDir, runID)

	meta, err := s.Meta(runID)
	if err != nil {
		return RunMetadata{}, nil, err
	}

	maps := make(map[string]*field.Map, len(meta.MapUnits))
	for name, symbol := range meta.MapUnits {
		unit, ok := units.Lookup(symbol)
		if !ok {
			return RunMetadata{}, nil, fmt.Errorf("run %s: map %s has unknown unit %q", runID, name, symbol)
		}
		m, err := readMapCSV(filepath.Join(runDir, name+".csv"), unit)
		if err != nil {
			return RunMetadata{}, nil, fmt.Errorf("run %s: %w", runID, err)
		}
		maps[name] = m
	}
	return meta, maps, nil
}

// Meta reads only a run's metadata.
func (s *Store) Meta(runID string) (RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return RunMetadata{}, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return RunMetadata{}, err
	}
	return meta, nil
}

// List returns the metadata of all stored runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Meta(e.Name())
		if err != nil {
			continue // unreadable entry, not a run
		}
		runs = append(runs, meta)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.After(runs[j].Timestamp) })
	return runs, nil
}

func writeMapCSV(path string, m *field.Map) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	nx, ny := m.Shape()
	record := make([]string, ny)
	for i := 0; i < nx; i++ {
		row := m.Row(i)
		for j := 0; j < ny; j++ {
			record[j] = strconv.FormatFloat(row[j], 'g', -1, 64)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func readMapCSV(path string, unit units.Unit) (*field.Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: empty map file", path)
	}

	nx, ny := len(records), len(records[0])
	data := make([]float64, 0, nx*ny)
	for _, rec := range records {
		for _, cell := range rec {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			data = append(data, v)
		}
	}
	return field.NewMapFrom(data, nx, ny, unit)
}
