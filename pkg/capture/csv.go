package capture

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/robotalks/xy2.go/pkg/xy2"
)

// CSVSource reads a "Simple Parallel" analyzer export:
//
//	name,type,start_time,duration,data
//	"Simple Parallel","data",0.0000005,5e-07,0x08
//
// Rows with a type other than "data" are skipped. Legacy exports with
// "Time [s]" and "Value" columns are accepted too.
type CSVSource struct {
	r       *csv.Reader
	timeCol int
	dataCol int
	typeCol int
	line    int
}

// NewCSVSource reads the header and creates a CSVSource.
func NewCSVSource(r io.Reader) (*CSVSource, error) {
	s := &CSVSource{r: csv.NewReader(r), timeCol: -1, dataCol: -1, typeCol: -1}
	s.r.FieldsPerRecord = -1
	s.r.TrimLeadingSpace = true
	header, err := s.r.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	s.line = 1
	for n, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "start_time", "time [s]", "time":
			s.timeCol = n
		case "data", "value":
			s.dataCol = n
		case "type":
			s.typeCol = n
		}
	}
	if s.timeCol < 0 || s.dataCol < 0 {
		return nil, fmt.Errorf("csv header %v: time or data column missing", header)
	}
	return s, nil
}

// NextParallel implements xy2.ParallelSource.
func (s *CSVSource) NextParallel() (xy2.ParallelSample, error) {
	for {
		rec, err := s.r.Read()
		if err != nil {
			return xy2.ParallelSample{}, err
		}
		s.line++
		if s.typeCol >= 0 && s.typeCol < len(rec) && rec[s.typeCol] != "data" {
			continue
		}
		if s.timeCol >= len(rec) || s.dataCol >= len(rec) {
			return xy2.ParallelSample{}, fmt.Errorf("line %d: too few columns", s.line)
		}
		sec, err := strconv.ParseFloat(strings.TrimSpace(rec[s.timeCol]), 64)
		if err != nil {
			return xy2.ParallelSample{}, fmt.Errorf("line %d: invalid time: %w", s.line, err)
		}
		word, err := strconv.ParseUint(strings.TrimSpace(rec[s.dataCol]), 0, 32)
		if err != nil {
			return xy2.ParallelSample{}, fmt.Errorf("line %d: invalid data: %w", s.line, err)
		}
		return xy2.ParallelSample{
			Timestamp: time.Duration(math.Round(sec * float64(time.Second))),
			Word:      uint32(word),
		}, nil
	}
}

// CSVWriter writes parallel samples in the format read by CSVSource.
type CSVWriter struct {
	w      *csv.Writer
	header bool
}

// NewCSVWriter creates a CSVWriter.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w)}
}

// Write writes samples.
func (w *CSVWriter) Write(samples ...xy2.ParallelSample) error {
	if !w.header {
		if err := w.w.Write([]string{"name", "type", "start_time", "duration", "data"}); err != nil {
			return err
		}
		w.header = true
	}
	for n, s := range samples {
		var dur time.Duration
		if n+1 < len(samples) {
			dur = samples[n+1].Timestamp - s.Timestamp
		}
		rec := []string{
			"Simple Parallel",
			"data",
			strconv.FormatFloat(s.Timestamp.Seconds(), 'g', -1, 64),
			strconv.FormatFloat(dur.Seconds(), 'g', -1, 64),
			fmt.Sprintf("0x%02X", s.Word),
		}
		if err := w.w.Write(rec); err != nil {
			return err
		}
	}
	w.w.Flush()
	return w.w.Error()
}
