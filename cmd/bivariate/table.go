package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// readColumns parses the named numeric columns from CSV with a header row.
// Every row must hold a number in every requested column.
func readColumns(r io.Reader, names ...string) ([][]float64, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty input: missing header row")
	}
	if err != nil {
		return nil, err
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}

	cols := make([]int, len(names))
	for i, name := range names {
		c, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("column %q not found in header", name)
		}
		cols[i] = c
	}

	out := make([][]float64, len(names))
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		for i, c := range cols {
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[c]), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %q: %w", line, names[i], err)
			}
			out[i] = append(out[i], v)
		}
	}
	if len(out[0]) == 0 {
		return nil, errors.New("no data rows")
	}
	return out, nil
}
