package csvimport

import (
	"fmt"
	"io"
)

// SampleSet is the bounded view of an uploaded file handed to the matching
// engine: headers plus a row-major sample matrix aligned to them, and a small
// preview for display.
type SampleSet struct {
	Headers     []string   `json:"headers"`
	Rows        [][]string `json:"rows"`
	Preview     [][]string `json:"preview"`
	SampledRows int        `json:"sampled_rows"`
}

// Sampler extracts a bounded sample from CSV content
type Sampler struct {
	maxRows     int
	previewRows int
	maxColumns  int
}

// SamplerOption is a functional option for Sampler configuration
type SamplerOption func(*Sampler)

// WithMaxRows sets how many data rows are sampled (default 100)
func WithMaxRows(n int) SamplerOption {
	return func(s *Sampler) {
		s.maxRows = n
	}
}

// WithPreviewRows sets how many rows are retained for display (default 5)
func WithPreviewRows(n int) SamplerOption {
	return func(s *Sampler) {
		s.previewRows = n
	}
}

// WithMaxColumns sets the column limit (default 256)
func WithMaxColumns(n int) SamplerOption {
	return func(s *Sampler) {
		s.maxColumns = n
	}
}

// NewSampler creates a sampler with the given options
func NewSampler(opts ...SamplerOption) *Sampler {
	s := &Sampler{
		maxRows:     100,
		previewRows: 5,
		maxColumns:  256,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sample parses the header row and up to maxRows data rows from CSV content.
// Completely empty rows are skipped; short rows are padded to the header
// width so every sampled row aligns with the headers.
func (s *Sampler) Sample(r io.Reader) (*SampleSet, error) {
	parser, err := NewParser(r)
	if err != nil {
		return nil, err
	}

	headers, err := parser.ReadHeader()
	if err != nil {
		return nil, err
	}
	if len(headers) > s.maxColumns {
		return nil, fmt.Errorf("%w: %d columns, limit %d", ErrTooManyColumns, len(headers), s.maxColumns)
	}

	set := &SampleSet{Headers: headers}
	for len(set.Rows) < s.maxRows {
		record, err := parser.ReadRow()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading row %d: %w", len(set.Rows)+2, err)
		}
		if rowIsEmpty(record) {
			continue
		}
		set.Rows = append(set.Rows, padRow(record, len(headers)))
	}

	set.SampledRows = len(set.Rows)
	if n := s.previewRows; n > 0 && len(set.Rows) > 0 {
		if n > len(set.Rows) {
			n = len(set.Rows)
		}
		set.Preview = set.Rows[:n]
	}

	return set, nil
}

// rowIsEmpty returns true if the row has no non-empty values
func rowIsEmpty(record []string) bool {
	for _, v := range record {
		if v != "" {
			return false
		}
	}
	return true
}

// padRow extends or truncates a record to exactly width fields
func padRow(record []string, width int) []string {
	if len(record) == width {
		return record
	}
	row := make([]string, width)
	copy(row, record)
	return row
}
