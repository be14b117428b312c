package glyph

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// PointRecord is one sampled point as a CSV row.
type PointRecord struct {
	Index int     `csv:"index"`
	X     float64 `csv:"x"`
	Y     float64 `csv:"y"`
}

// Records converts the sample points to CSV rows.
func (s Sample) Records() []PointRecord {
	records := make([]PointRecord, len(s.Points))
	for i, p := range s.Points {
		records[i] = PointRecord{Index: i, X: p.X, Y: p.Y}
	}
	return records
}

// WriteCSV writes the sample points as CSV with a header row.
func (s Sample) WriteCSV(w io.Writer) error {
	if err := gocsv.Marshal(s.Records(), w); err != nil {
		return fmt.Errorf("writing points: %w", err)
	}
	return nil
}
