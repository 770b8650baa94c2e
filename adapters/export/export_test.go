package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"bayesgrid/domain/posterior"
)

func sampleSeries() []posterior.Series {
	table := posterior.NewTable(
		[]float64{0, 0.5, 1},
		[]float64{0.25, 0.5, 0.25},
	)
	return []posterior.Series{
		posterior.NewSeries("uniform", table),
		posterior.NewSeries("step(0.5)", table),
	}
}

func TestCSVWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewCSVWriter().WriteSeries(&buf, sampleSeries()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 7 { // header + 2 series x 3 points
		t.Fatalf("expected 7 lines, got %d", len(lines))
	}
	if lines[0] != "series,p,density" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "uniform,0,") {
		t.Errorf("unexpected first row: %q", lines[1])
	}
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONWriter().WriteSeries(&buf, sampleSeries()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded []posterior.Series
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 || decoded[0].Label != "uniform" {
		t.Errorf("round trip lost series structure: %+v", decoded)
	}
}

func TestExcelWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewExcelWriter().WriteSeries(&buf, sampleSeries()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected non-empty workbook")
	}
	// XLSX files are zip archives.
	if !bytes.HasPrefix(buf.Bytes(), []byte("PK")) {
		t.Error("output does not look like an xlsx (zip) file")
	}
}

func TestForFormat(t *testing.T) {
	for _, format := range []string{"csv", "json", "xlsx"} {
		if _, err := ForFormat(format); err != nil {
			t.Errorf("format %q should be supported: %v", format, err)
		}
	}
	if _, err := ForFormat("yaml"); err == nil {
		t.Error("expected error for unsupported format")
	}
}
