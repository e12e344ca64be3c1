package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/equipot/internal/field"
	"github.com/san-kum/equipot/internal/potential"
)

var (
	ErrRunNotFound = errors.New("storage: run not found")
	ErrCorruptRun  = errors.New("storage: malformed field data")
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

type RunMetadata struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	M1           float64   `json:"m1"`
	M2           float64   `json:"m2"`
	Distance     float64   `json:"d"`
	G            float64   `json:"g"`
	MassFraction float64   `json:"q"`
	X1           float64   `json:"x1"`
	X2           float64   `json:"x2"`
	Resolution   int       `json:"resolution"`
	Negated      bool      `json:"negated"`
	Strategy     string    `json:"strategy"`
	Levels       []float64 `json:"levels"`
	Min          Value     `json:"min"`
	Max          Value     `json:"max"`
}

// Run is a stored field together with its metadata.
type Run struct {
	Meta  *RunMetadata
	Field *field.Field
}

// Save writes metadata.json and field.csv under a new run directory.
func (s *Store) Save(sys potential.System, f *field.Field, negated bool, strategy string, levels []float64) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("m%g_%g_d%g_%d", sys.M1, sys.M2, sys.D, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	x1, x2 := sys.Positions()
	lo, hi := f.Extrema()
	meta := RunMetadata{
		ID:           runID,
		Timestamp:    now,
		M1:           sys.M1,
		M2:           sys.M2,
		Distance:     sys.D,
		G:            sys.G,
		MassFraction: sys.MassFraction(),
		X1:           x1,
		X2:           x2,
		Resolution:   len(f.Xs),
		Negated:      negated,
		Strategy:     strategy,
		Levels:       levels,
		Min:          Value(lo),
		Max:          Value(hi),
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

	csvFile, err := os.Create(filepath.Join(runDir, "field.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteFieldCSV(csvFile, f); err != nil {
		return "", err
	}

	return runID, nil
}

// WriteFieldCSV writes one x,y,phi row per grid point, x varying fastest.
func WriteFieldCSV(w io.Writer, f *field.Field) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"x", "y", "phi"}); err != nil {
		return err
	}

	for j, y := range f.Ys {
		for i, x := range f.Xs {
			row := []string{
				strconv.FormatFloat(x, 'g', -1, 64),
				strconv.FormatFloat(y, 'g', -1, 64),
				strconv.FormatFloat(f.Z(i, j), 'g', -1, 64),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

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
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
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

// LoadField reads field.csv back into a Field.
func (s *Store) LoadField(runID string) (*field.Field, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "field.csv"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	return ReadFieldCSV(file)
}

// ReadFieldCSV parses the output of WriteFieldCSV.
func ReadFieldCSV(r io.Reader) (*field.Field, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptRun, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%w: no samples", ErrCorruptRun)
	}
	records = records[1:]

	vals := make([][3]float64, len(records))
	for i, rec := range records {
		for k := 0; k < 3; k++ {
			v, err := strconv.ParseFloat(rec[k], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: %v", ErrCorruptRun, i+2, err)
			}
			vals[i][k] = v
		}
	}

	// x varies fastest, so the row length is the count before y first changes
	nx := 1
	for nx < len(vals) && vals[nx][1] == vals[0][1] {
		nx++
	}
	if len(vals)%nx != 0 {
		return nil, fmt.Errorf("%w: %d samples do not fill rows of %d", ErrCorruptRun, len(vals), nx)
	}
	ny := len(vals) / nx

	xs := make([]float64, nx)
	ys := make([]float64, ny)
	data := make([]float64, len(vals))
	for i, v := range vals {
		data[i] = v[2]
		if i < nx {
			xs[i] = v[0]
		}
		if i%nx == 0 {
			ys[i/nx] = v[1]
		}
	}

	return &field.Field{Xs: xs, Ys: ys, Values: mat.NewDense(ny, nx, data)}, nil
}

// ExportJSON writes the run metadata and its samples as one JSON document.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	f, err := s.LoadField(runID)
	if err != nil {
		return err
	}

	rows, _ := f.Values.Dims()
	values := make([][]Value, rows)
	for j := range values {
		row := f.Row(j)
		values[j] = make([]Value, len(row))
		for i, v := range row {
			values[j][i] = Value(v)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		*RunMetadata
		Xs     []float64 `json:"xs"`
		Ys     []float64 `json:"ys"`
		Values [][]Value `json:"values"`
	}{meta, f.Xs, f.Ys, values})
}

// Value is a float64 whose non-finite values travel through JSON as the
// strings "NaN", "+Inf" and "-Inf".
type Value float64

func (v Value) MarshalJSON() ([]byte, error) {
	f := float64(v)
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte(strconv.Quote(s)), nil
	}
	return []byte(s), nil
}

func (v *Value) UnmarshalJSON(data []byte) error {
	s := string(data)
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*v = Value(f)
	return nil
}
