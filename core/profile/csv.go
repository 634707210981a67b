package profile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/kilianp07/chargeplan/core/model"
)

// csvColumns is the expected header of an externally supplied profile file.
var csvColumns = []string{"hour", "load_kw", "pv_kw", "price_buy", "price_sell"}

// ReadCSV parses a profile table with columns hour, load_kw, pv_kw,
// price_buy, price_sell. Rows must be ordered by step; the hour column is
// informational and not re-validated against the step index.
func ReadCSV(r io.Reader) (model.TimeSeries, error) {
	var ts model.TimeSeries
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return ts, fmt.Errorf("read header: %w", err)
	}
	if len(header) != len(csvColumns) {
		return ts, fmt.Errorf("expected %d columns, got %d", len(csvColumns), len(header))
	}
	for i, want := range csvColumns {
		if header[i] != want {
			return ts, fmt.Errorf("column %d: expected %q, got %q", i, want, header[i])
		}
	}

	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ts, fmt.Errorf("line %d: %w", line, err)
		}
		vals := make([]float64, len(rec))
		for i, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return ts, fmt.Errorf("line %d, column %s: %w", line, csvColumns[i], err)
			}
			vals[i] = v
		}
		ts.LoadKW = append(ts.LoadKW, vals[1])
		ts.PVKW = append(ts.PVKW, vals[2])
		ts.BuyPrice = append(ts.BuyPrice, vals[3])
		ts.SellPrice = append(ts.SellPrice, vals[4])
	}
	if ts.Steps() == 0 {
		return ts, fmt.Errorf("no data rows")
	}
	return ts, nil
}

// ReadCSVFile loads profiles from the given path.
func ReadCSVFile(path string) (model.TimeSeries, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.TimeSeries{}, err
	}
	defer f.Close()
	return ReadCSV(f)
}

// WriteCSV writes the series in the same tabular layout ReadCSV accepts.
func WriteCSV(w io.Writer, ts model.TimeSeries) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvColumns); err != nil {
		return err
	}
	for t := 0; t < ts.Steps(); t++ {
		rec := []string{
			strconv.Itoa(t),
			strconv.FormatFloat(ts.LoadKW[t], 'f', -1, 64),
			strconv.FormatFloat(ts.PVKW[t], 'f', -1, 64),
			strconv.FormatFloat(ts.BuyPrice[t], 'f', -1, 64),
			strconv.FormatFloat(ts.SellPrice[t], 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
