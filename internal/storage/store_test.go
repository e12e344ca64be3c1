package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/equipot/internal/field"
	"github.com/san-kum/equipot/internal/potential"
)

func sampleRun(t *testing.T) (potential.System, *field.Field) {
	t.Helper()
	sys, err := potential.New(1, 40, 1, 1)
	if err != nil {
		t.Fatalf("system: %v", err)
	}
	f, err := field.Sample(sys, 6, 1.3)
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	return sys, f
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	sys, f := sampleRun(t)
	runID, err := st.Save(sys, f, false, "linear", []float64{-3, -2, -1})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.M2 != 40 {
		t.Errorf("expected m2 40, got %f", meta.M2)
	}
	if meta.Resolution != 6 {
		t.Errorf("expected resolution 6, got %d", meta.Resolution)
	}
	if len(meta.Levels) != 3 {
		t.Errorf("expected 3 levels, got %d", len(meta.Levels))
	}
	lo, _ := f.Extrema()
	if float64(meta.Min) != lo {
		t.Errorf("expected min %f, got %f", lo, float64(meta.Min))
	}

	loaded, err := st.LoadField(runID)
	if err != nil {
		t.Fatalf("load field failed: %v", err)
	}
	c, r := loaded.Dims()
	if c != 6 || r != 6 {
		t.Fatalf("expected 6x6 field, got %dx%d", c, r)
	}
	for j := 0; j < r; j++ {
		for i := 0; i < c; i++ {
			if loaded.Z(i, j) != f.Z(i, j) {
				t.Errorf("value (%d,%d): expected %v, got %v", i, j, f.Z(i, j), loaded.Z(i, j))
			}
		}
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != runID {
		t.Errorf("expected one run %s, got %v", runID, runs)
	}
}

func TestStoreMissingRun(t *testing.T) {
	st := New(t.TempDir())

	if _, err := st.Load("nope"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}
	if _, err := st.LoadField("nope"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}

	runs, err := New(t.TempDir() + "/absent").List()
	if err != nil || len(runs) != 0 {
		t.Errorf("expected empty list, got %v, %v", runs, err)
	}
}

func TestFieldCSVKeepsInfinities(t *testing.T) {
	f := field.Evaluate(singular{}, []float64{0, 1}, []float64{0})

	var buf bytes.Buffer
	if err := WriteFieldCSV(&buf, f); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	back, err := ReadFieldCSV(&buf)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !math.IsInf(back.Z(0, 0), -1) {
		t.Errorf("expected -Inf, got %v", back.Z(0, 0))
	}
	if back.Z(1, 0) != -1 {
		t.Errorf("expected -1, got %v", back.Z(1, 0))
	}
}

func TestReadFieldCSVRejectsGarbage(t *testing.T) {
	inputs := []string{
		"x,y,phi\n",
		"x,y,phi\n0,0,abc\n",
		"x,y,phi\n0,0,1\n1,0,2\n0,1,3\n",
	}
	for _, in := range inputs {
		if _, err := ReadFieldCSV(strings.NewReader(in)); !errors.Is(err, ErrCorruptRun) {
			t.Errorf("input %q: expected ErrCorruptRun, got %v", in, err)
		}
	}
}

func TestExportJSON(t *testing.T) {
	st := New(t.TempDir())
	sys, f := sampleRun(t)
	f.Values.Set(0, 0, math.Inf(1))

	runID, err := st.Save(sys, f, true, "hybrid", nil)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	var buf bytes.Buffer
	if err := st.ExportJSON(&buf, runID); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var doc struct {
		ID     string    `json:"id"`
		Xs     []float64 `json:"xs"`
		Values [][]Value `json:"values"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if doc.ID != runID {
		t.Errorf("expected id %s, got %s", runID, doc.ID)
	}
	if len(doc.Xs) != 6 || len(doc.Values) != 6 {
		t.Errorf("expected 6 columns and rows, got %d and %d", len(doc.Xs), len(doc.Values))
	}
	if !math.IsInf(float64(doc.Values[0][0]), 1) {
		t.Errorf("expected +Inf, got %v", doc.Values[0][0])
	}
}

type singular struct{}

func (singular) Effective(x, y float64) float64 {
	if x == 0 {
		return math.Inf(-1)
	}
	return -1 / x
}
