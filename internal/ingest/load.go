package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"shootings/internal/frame"
)

// Anomaly records one row-level parse issue. Anomalies are collected and
// reported, never fatal: the offending cell is coerced to its zero value and
// marked missing so the row survives.
type Anomaly struct {
	Row    int // 1-based data row, header excluded
	Column string
	Value  string
	Reason string
}

func (a Anomaly) String() string {
	return fmt.Sprintf("row %d, column %s: %s (value %q)", a.Row, a.Column, a.Reason, a.Value)
}

// Result is the loaded table plus its diagnostics.
type Result struct {
	DF        *frame.DF
	Anomalies []Anomaly
	// Missing holds per-column missing-cell counts before any cleaning.
	Missing map[string]int
}

// Load reads the CSV at path against the schema.
func Load(path string, schema Schema) (*Result, error) {
	f, e := os.Open(path)
	if e != nil {
		return nil, e
	}
	defer func() { _ = f.Close() }()

	return Read(f, schema)
}

// Read ingests CSV data from r. The header row must match the schema
// exactly; after that, rows are coerced rather than rejected.
func Read(r io.Reader, schema Schema) (*Result, error) {
	rdr := csv.NewReader(r)
	rdr.FieldsPerRecord = -1 // field-count issues handled per row

	header, e := rdr.Read()
	if e != nil {
		return nil, fmt.Errorf("cannot read header: %w", e)
	}

	if e := checkHeader(header, schema); e != nil {
		return nil, e
	}

	vecs := make([]*frame.Vector, len(schema))
	for ind := 0; ind < len(schema); ind++ {
		vecs[ind] = frame.MakeVector(schema[ind].Type, 0)
	}

	var (
		anomalies []Anomaly
		missed    [][]int // per column, rows to mark missing
	)
	missed = make([][]int, len(schema))

	row := 0
	for {
		rec, e := rdr.Read()
		if e == io.EOF {
			break
		}

		row++
		if e != nil {
			if rec == nil {
				// Unrecoverable record (e.g. bare quote): report it and emit
				// an all-missing row so the row count stays honest.
				anomalies = append(anomalies, Anomaly{Row: row, Reason: e.Error()})
				rec = []string{}
			}
		}

		if len(rec) != len(schema) {
			anomalies = append(anomalies, Anomaly{Row: row,
				Reason: fmt.Sprintf("expected %d fields, got %d", len(schema), len(rec))})
		}

		for ind := 0; ind < len(schema); ind++ {
			raw := ""
			if ind < len(rec) {
				raw = strings.TrimSpace(rec[ind])
			}

			val, ok, bad := parseCell(raw, schema[ind].Type)
			if bad != "" {
				anomalies = append(anomalies, Anomaly{Row: row, Column: schema[ind].Name,
					Value: raw, Reason: bad})
			}

			vecs[ind].Append(val)
			if !ok {
				missed[ind] = append(missed[ind], row-1)
			}
		}
	}

	cols := make([]*frame.Col, len(schema))
	missing := make(map[string]int, len(schema))
	for ind := 0; ind < len(schema); ind++ {
		c, e := frame.NewCol(schema[ind].Name, vecs[ind].AsAny())
		if e != nil {
			return nil, e
		}

		for _, rw := range missed[ind] {
			c.SetMissing(rw)
		}

		cols[ind] = c
		missing[schema[ind].Name] = c.MissingCount()
	}

	df, e := frame.NewDF(cols...)
	if e != nil {
		return nil, e
	}

	return &Result{DF: df, Anomalies: anomalies, Missing: missing}, nil
}

func checkHeader(header []string, schema Schema) error {
	if len(header) != len(schema) {
		return fmt.Errorf("header has %d columns, schema wants %d", len(header), len(schema))
	}

	for ind := 0; ind < len(schema); ind++ {
		if strings.TrimSpace(header[ind]) != schema[ind].Name {
			return fmt.Errorf("header column %d is %q, want %q", ind, header[ind], schema[ind].Name)
		}
	}

	return nil
}

// parseCell coerces one raw cell. ok is false when the cell is blank or
// unparseable; bad is a non-empty reason only for unparseable cells.
func parseCell(raw string, dt frame.DataTypes) (val any, ok bool, bad string) {
	if raw == "" {
		switch dt {
		case frame.DTfloat:
			return 0.0, false, ""
		case frame.DTint:
			return 0, false, ""
		case frame.DTbool:
			return false, false, ""
		case frame.DTdate:
			return time.Time{}, false, ""
		default:
			return "", false, ""
		}
	}

	switch dt {
	case frame.DTstring:
		return raw, true, ""
	case frame.DTint:
		// some extracts render integer codes as "25.0"
		if x, e := strconv.Atoi(raw); e == nil {
			return x, true, ""
		}

		if x, e := strconv.ParseFloat(raw, 64); e == nil && x == float64(int(x)) {
			return int(x), true, ""
		}

		return 0, false, "not an integer"
	case frame.DTfloat:
		if x, e := strconv.ParseFloat(raw, 64); e == nil {
			return x, true, ""
		}

		return 0.0, false, "not a number"
	case frame.DTbool:
		if b, e := strconv.ParseBool(strings.ToLower(raw)); e == nil {
			return b, true, ""
		}

		return false, false, "not a boolean"
	default:
		return nil, false, fmt.Sprintf("unsupported type %s", dt)
	}
}
