package capture

import (
	"fmt"
	"io"
	"net"
	"net/url"
	"os"
	"strconv"

	"github.com/tarm/serial"

	"github.com/robotalks/xy2.go/pkg/comm/mqtt"
	"github.com/robotalks/xy2.go/pkg/comm/stream"
	"github.com/robotalks/xy2.go/pkg/comm/websocket"
	"github.com/robotalks/xy2.go/pkg/framework"
	"github.com/robotalks/xy2.go/pkg/xy2"
)

// DefaultBaud is the serial baud rate when not specified in the URL.
const DefaultBaud = 115200

// Capture is an opened source.
type Capture struct {
	xy2.ParallelSource

	// Runner must run while the source is read, nil if not needed.
	Runner framework.Runnable

	closers []io.Closer
}

// Close implements io.Closer.
func (c *Capture) Close() error {
	var errs framework.AggregatedError
	for n := len(c.closers) - 1; n >= 0; n-- {
		errs.Add(c.closers[n].Close())
	}
	return errs.Aggregate()
}

// Open opens a source by URL:
//
//	path, file://path     CSV export, "-" for stdin
//	tcp://host:port       length-prefixed sample packets
//	ws://host/path        websocket sample packets
//	mqtt://host:port/pfx  samples published to pfx/ID/samples
//	serial:///dev/tty?baud=N  length-prefixed sample packets
func Open(source, id string) (*Capture, error) {
	if source == "-" {
		csvSrc, err := NewCSVSource(os.Stdin)
		if err != nil {
			return nil, err
		}
		return &Capture{ParallelSource: csvSrc}, nil
	}
	u, err := url.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("invalid source URL: %w", err)
	}
	switch u.Scheme {
	case "", "file":
		path := u.Path
		if u.Scheme == "" {
			path = source
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		csvSrc, err := NewCSVSource(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &Capture{ParallelSource: csvSrc, closers: []io.Closer{f}}, nil
	case "tcp":
		conn, err := net.Dial("tcp", u.Host)
		if err != nil {
			return nil, err
		}
		return &Capture{ParallelSource: NewPacketSource(stream.New(conn)), closers: []io.Closer{conn}}, nil
	case "ws", "wss":
		rw, err := websocket.Dial(source)
		if err != nil {
			return nil, err
		}
		return &Capture{ParallelSource: NewPacketSource(rw), closers: []io.Closer{rw}}, nil
	case "mqtt", "mqtts":
		q, err := mqtt.NewQueueFromURL(source)
		if err != nil {
			return nil, err
		}
		if err = q.ConnectAndWait(); err != nil {
			q.Close()
			return nil, err
		}
		rw := mqtt.NewPacketReadWriter(q).ForDecoder(id)
		return &Capture{
			ParallelSource: NewPacketSource(rw),
			Runner:         framework.NamedRun("mqtt-samples", rw),
			closers:        []io.Closer{q, rw},
		}, nil
	case "serial":
		baud := DefaultBaud
		if val := u.Query().Get("baud"); val != "" {
			if baud, err = strconv.Atoi(val); err != nil {
				return nil, fmt.Errorf("invalid baud %q: %w", val, err)
			}
		}
		port, err := serial.OpenPort(&serial.Config{Name: u.Path, Baud: baud})
		if err != nil {
			return nil, err
		}
		return &Capture{ParallelSource: NewPacketSource(stream.New(port)), closers: []io.Closer{port}}, nil
	default:
		return nil, fmt.Errorf("unknown source URL scheme: %q", u.Scheme)
	}
}
