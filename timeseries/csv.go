package timeseries

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrNoData is returned when a CSV source yields no parsable values.
var ErrNoData = errors.New("no valid data found in CSV")

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	DateColumn  string // Column name for dates (optional, detected from common names)
	ValueColumn string // Column name for values (default: "close")
	DateFormat  string // Preferred date layout (default: "2006-01-02")
	HasHeader   bool   // Whether CSV has header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	Descending  bool   // Rows are ordered newest first
}

// DefaultCSVOptions returns default options for loading a price column.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "close",
		DateFormat:  "2006-01-02",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

var (
	valueAliases = []string{"close", "Close", "price", "y", "value"}
	dateAliases  = []string{"date", "Date", "time", "timestamp", "ds"}
	dateLayouts  = []string{
		time.RFC3339,
		"2006-01-02",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006/01/02",
		"01/02/2006",
	}
)

// LoadCSV loads a price series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a price series from an io.Reader. Rows with an
// empty or unparsable value are skipped. The returned series is always
// chronological; set Descending for files written newest first.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	valueIdx, dateIdx := 1, 0
	name := opts.ValueColumn
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
		valueIdx, dateIdx, err = resolveColumns(header, opts)
		if err != nil {
			return nil, err
		}
		name = cleanField(header[valueIdx])
	}

	var values []float64
	var timestamps []time.Time
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if valueIdx >= len(record) {
			continue
		}

		val, ok := parseValue(record[valueIdx])
		if !ok {
			continue
		}
		values = append(values, val)

		if dateIdx >= 0 && dateIdx < len(record) {
			if ts, ok := parseDate(record[dateIdx], opts.DateFormat); ok {
				timestamps = append(timestamps, ts)
			}
		}
	}

	if len(values) == 0 {
		return nil, ErrNoData
	}

	if opts.Descending {
		reverse(values)
		reverse(timestamps)
	}

	series := New(values)
	if len(timestamps) == len(values) {
		series.Timestamps = timestamps
	}
	series.Name = name
	return series, nil
}

// LoadCSVColumn loads a specific column from a CSV file as a series.
func LoadCSVColumn(filename string, column string) (*Series, error) {
	opts := DefaultCSVOptions()
	opts.ValueColumn = column
	return LoadCSV(filename, opts)
}

// WriteCSV writes the series as date,value rows. Without timestamps the
// first column is the 1-based observation index.
func WriteCSV(w io.Writer, series *Series) error {
	cw := csv.NewWriter(w)

	name := series.Name
	if name == "" {
		name = "value"
	}
	withDates := len(series.Timestamps) == len(series.Values)
	first := "index"
	if withDates {
		first = "date"
	}
	if err := cw.Write([]string{first, name}); err != nil {
		return err
	}

	for i, v := range series.Values {
		key := strconv.Itoa(i + 1)
		if withDates {
			key = series.Timestamps[i].Format(time.RFC3339)
		}
		if err := cw.Write([]string{key, strconv.FormatFloat(v, 'f', -1, 64)}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// resolveColumns finds the value and date columns. The value aliases are
// only tried when no column or the default column was requested; an
// explicitly named column must exist.
func resolveColumns(header []string, opts *CSVOptions) (valueIdx, dateIdx int, err error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[cleanField(h)] = i
	}

	valueIdx, dateIdx = -1, -1
	if opts.ValueColumn != "" {
		if i, ok := index[opts.ValueColumn]; ok {
			valueIdx = i
		}
	}
	useAliases := opts.ValueColumn == "" || opts.ValueColumn == DefaultCSVOptions().ValueColumn
	for _, alias := range valueAliases {
		if valueIdx != -1 || !useAliases {
			break
		}
		if i, ok := index[alias]; ok {
			valueIdx = i
		}
	}
	if valueIdx == -1 {
		return 0, 0, fmt.Errorf("value column %q not found in header %v", opts.ValueColumn, header)
	}

	if opts.DateColumn != "" {
		if i, ok := index[opts.DateColumn]; ok {
			dateIdx = i
		}
	}
	for _, alias := range dateAliases {
		if dateIdx != -1 {
			break
		}
		if i, ok := index[alias]; ok {
			dateIdx = i
		}
	}
	return valueIdx, dateIdx, nil
}

func cleanField(field string) string {
	return strings.TrimSpace(strings.Trim(field, "\""))
}

func parseValue(field string) (float64, bool) {
	s := cleanField(field)
	switch s {
	case "", "NA", "NaN", "null":
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseDate(field, preferred string) (time.Time, bool) {
	s := cleanField(field)
	if preferred != "" {
		if ts, err := time.Parse(preferred, s); err == nil {
			return ts, true
		}
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func reverse[T any](xs []T) {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
}
