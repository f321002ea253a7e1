package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/golang/glog"

	"github.com/robotalks/xy2.go/pkg/comm"
	"github.com/robotalks/xy2.go/pkg/msgs"
	"github.com/robotalks/xy2.go/pkg/xy2"
)

// LogSink logs events with glog.
type LogSink struct{}

// HandleEvent implements Sink.
func (LogSink) HandleEvent(ev Event) error {
	switch {
	case ev.Frame != nil && !ev.Frame.ParityOK:
		glog.Warningf("parity error: %s", ev.Labeled())
	case ev.Frame != nil:
		glog.V(1).Info(ev.Labeled())
	case xy2.IsIdle(ev.Err):
		glog.V(2).Infof("%s: %v", ev.Axis, ev.Err)
	default:
		glog.Warningf("%s: %v", ev.Axis, ev.Err)
	}
	return nil
}

// Formats of PrintSink.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCBOR = "cbor"
)

// Record is the serialized form of an event.
type Record struct {
	Axis     string `json:"axis" cbor:"axis"`
	Mode     string `json:"mode,omitempty" cbor:"mode,omitempty"`
	Header   uint8  `json:"header" cbor:"header"`
	Position uint32 `json:"position" cbor:"position"`
	ParityOK bool   `json:"parity_ok" cbor:"parity_ok"`
	StartNs  int64  `json:"start_ns" cbor:"start_ns"`
	EndNs    int64  `json:"end_ns,omitempty" cbor:"end_ns,omitempty"`
	Error    string `json:"error,omitempty" cbor:"error,omitempty"`
}

// RecordOf converts an event.
func RecordOf(ev Event) Record {
	rec := Record{Axis: ev.Axis.String()}
	if ev.Frame != nil {
		rec.Mode = ev.Frame.Mode.String()
		rec.Header = ev.Frame.Header
		rec.Position = ev.Frame.Position
		rec.ParityOK = ev.Frame.ParityOK
		rec.StartNs, rec.EndNs = int64(ev.Frame.Start), int64(ev.Frame.End)
		return rec
	}
	rec.Error = ev.Err.Error()
	var (
		he *xy2.UnknownHeaderError
		re *xy2.ResyncError
		te *xy2.TruncatedError
	)
	switch {
	case errors.As(ev.Err, &he):
		rec.Header = he.Header
		rec.StartNs, rec.EndNs = int64(he.Start), int64(he.End)
	case errors.As(ev.Err, &re):
		rec.StartNs, rec.EndNs = int64(re.Start), int64(re.At)
	case errors.As(ev.Err, &te):
		rec.StartNs = int64(te.Start)
	}
	return rec
}

// PrintSink writes events to W.
type PrintSink struct {
	W      io.Writer
	Format string
	// Idle prints idle lanes which are skipped by default.
	Idle bool

	enc interface{ Encode(interface{}) error }
}

// NewPrintSink creates a PrintSink.
func NewPrintSink(w io.Writer, format string) (*PrintSink, error) {
	s := &PrintSink{W: w, Format: format}
	switch format {
	case FormatText, "":
	case FormatJSON:
		s.enc = json.NewEncoder(w)
	case FormatCBOR:
		s.enc = cbor.NewEncoder(w)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
	return s, nil
}

// HandleEvent implements Sink.
func (s *PrintSink) HandleEvent(ev Event) error {
	if !s.Idle && xy2.IsIdle(ev.Err) {
		return nil
	}
	if s.enc != nil {
		return s.enc.Encode(RecordOf(ev))
	}
	var err error
	if ev.Frame != nil {
		_, err = fmt.Fprintln(s.W, ev.Labeled())
	} else {
		_, err = fmt.Fprintf(s.W, "%s | Error: %v\n", ev.Axis, ev.Err)
	}
	return err
}

// PublishSink writes events as messages.
type PublishSink struct {
	Writer comm.PacketWriter
	// Idle publishes idle lanes which are skipped by default.
	Idle bool
}

// HandleEvent implements Sink.
func (s *PublishSink) HandleEvent(ev Event) error {
	if ev.Frame != nil {
		return comm.WriteMsg(s.Writer, msgs.NewFrame(ev.Labeled()))
	}
	if !s.Idle && xy2.IsIdle(ev.Err) {
		return nil
	}
	if msg := msgs.NewFrameError(ev.Axis, ev.Err); msg != nil {
		return comm.WriteMsg(s.Writer, msg)
	}
	return nil
}
