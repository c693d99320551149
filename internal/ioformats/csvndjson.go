
package ioformats

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"brightedge-url-classifier/internal/models"
)

type Format string

const (
	TSV    Format = "tsv"
	CSV    Format = "csv"
	NDJSON Format = "ndjson"
)

// FormatFor picks a format from a file extension; anything unknown is TSV.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return CSV
	case ".ndjson", ".jsonl":
		return NDJSON
	default:
		return TSV
	}
}

// ReadURLs reads URLs from a headerless TSV (first column), a CSV with a
// "url" header column, or NDJSON, chosen by extension. A TSV or CSV row whose
// URL field is blank yields "", keeping one entry per row; blank lines are
// not rows.
func ReadURLs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadURLsFrom(f, FormatFor(path))
}

func ReadURLsFrom(r io.Reader, format Format) ([]string, error) {
	switch format {
	case CSV:
		return readCSV(r)
	case NDJSON:
		return readNDJSON(r)
	default:
		return firstColumn(r, true)
	}
}

// ReadRetailers loads the retailer domain list: first TSV column, lowercased.
func ReadRetailers(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	domains, err := firstColumn(f, false)
	if err != nil {
		return nil, fmt.Errorf("retailer list %s: %w", path, err)
	}
	for i, d := range domains {
		domains[i] = strings.ToLower(d)
	}
	return domains, nil
}

func newTSVReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr
}

// firstColumn returns the first field of every row. Blank fields are kept
// when keepBlank is set so row positions survive.
func firstColumn(r io.Reader, keepBlank bool) ([]string, error) {
	cr := newTSVReader(r)
	var out []string
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) == 0 {
			continue
		}
		if v := strings.TrimSpace(row[0]); v != "" || keepBlank {
			out = append(out, v)
		}
	}
	return out, nil
}

func readCSV(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("empty csv")
	}
	// find "url" column
	col := -1
	for i, h := range rows[0] {
		if strings.EqualFold(strings.TrimSpace(h), "url") {
			col = i
			break
		}
	}
	if col == -1 {
		return nil, errors.New("csv must contain a 'url' header column")
	}
	var out []string
	for _, row := range rows[1:] {
		if col < len(row) {
			out = append(out, strings.TrimSpace(row[col]))
		} else {
			out = append(out, "")
		}
	}
	return out, nil
}

func readNDJSON(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		// allow raw string or {"url": "..."}
		if strings.HasPrefix(line, "{") {
			var obj map[string]any
			if err := json.Unmarshal([]byte(line), &obj); err == nil {
				if v, ok := obj["url"]; ok {
					if s, ok := v.(string); ok && s != "" {
						out = append(out, s)
						continue
					}
				}
			}
		}
		// fallback: treat whole line as url
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

var resultHeader = []string{"Number", "Classification", "URL"}

// ResultWriter writes classification results as TSV, header first.
type ResultWriter struct {
	w           *csv.Writer
	wroteHeader bool
}

func NewResultWriter(w io.Writer) *ResultWriter {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	return &ResultWriter{w: cw}
}

// Write appends one row and flushes, so a crash mid-batch keeps earlier rows.
func (rw *ResultWriter) Write(r models.Result) error {
	if !rw.wroteHeader {
		if err := rw.w.Write(resultHeader); err != nil {
			return err
		}
		rw.wroteHeader = true
	}
	if err := rw.w.Write([]string{strconv.Itoa(r.Number), string(r.Classification), r.URL}); err != nil {
		return err
	}
	rw.w.Flush()
	return rw.w.Error()
}

// Close writes the header if no row was written and flushes.
func (rw *ResultWriter) Close() error {
	if !rw.wroteHeader {
		if err := rw.w.Write(resultHeader); err != nil {
			return err
		}
		rw.wroteHeader = true
	}
	rw.w.Flush()
	return rw.w.Error()
}

// WriteNDJSON writes any JSON-marshalable items as NDJSON to w.
func WriteNDJSON[T any](w io.Writer, items []T) error {
	enc := json.NewEncoder(w)
	for _, it := range items {
		if err := enc.Encode(it); err != nil {
			return err
		}
	}
	return nil
}
