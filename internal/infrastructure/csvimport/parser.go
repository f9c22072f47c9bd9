package csvimport

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Parser reads CSV content with BOM stripping and encoding detection.
// Files that are not valid UTF-8 are decoded as Windows-1252, the most
// common legacy encoding for spreadsheet exports.
type Parser struct {
	reader *csv.Reader
}

// NewParser creates a parser from a reader
func NewParser(r io.Reader) (*Parser, error) {
	buf := bufio.NewReader(r)

	// Detect and strip UTF-8 BOM
	head, err := buf.Peek(3)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(head) == 0 {
		return nil, ErrEmptyFile
	}
	if len(head) >= 3 && head[0] == 0xEF && head[1] == 0xBB && head[2] == 0xBF {
		_, _ = buf.Discard(3)
	}

	var source io.Reader = buf
	if !looksLikeUTF8(buf) {
		source = transform.NewReader(buf, charmap.Windows1252.NewDecoder())
	}

	reader := csv.NewReader(source)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	return &Parser{reader: reader}, nil
}

// looksLikeUTF8 peeks at the start of the stream and checks for valid UTF-8.
// A multi-byte rune cut off at the peek boundary must not fail the check.
func looksLikeUTF8(buf *bufio.Reader) bool {
	const checkSize = 4096
	content, err := buf.Peek(checkSize)
	if err != nil && err != io.EOF {
		return true
	}
	// Ignore up to 3 trailing bytes that may be a truncated rune.
	for trim := 0; trim < 4 && trim < len(content); trim++ {
		if utf8.Valid(content[:len(content)-trim]) {
			return true
		}
	}
	return false
}

// ReadHeader reads and trims the header row
func (p *Parser) ReadHeader() ([]string, error) {
	record, err := p.reader.Read()
	if err == io.EOF {
		return nil, ErrMissingHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	headers := make([]string, len(record))
	for i, h := range record {
		headers[i] = strings.TrimSpace(h)
	}
	if len(headers) == 0 {
		return nil, ErrNoColumns
	}
	return headers, nil
}

// ReadRow reads the next data row, trimming each field. Returns io.EOF when
// the file is exhausted.
func (p *Parser) ReadRow() ([]string, error) {
	record, err := p.reader.Read()
	if err != nil {
		return nil, err
	}
	for i, v := range record {
		record[i] = strings.TrimSpace(v)
	}
	return record, nil
}
