package main

//go-build: CGO_ENABLED=0

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/xy2.go/pkg/capture"
	"github.com/robotalks/xy2.go/pkg/comm/mqtt"
	"github.com/robotalks/xy2.go/pkg/comm/stream"
	"github.com/robotalks/xy2.go/pkg/env"
	"github.com/robotalks/xy2.go/pkg/framework"
	"github.com/robotalks/xy2.go/pkg/xy2"
)

var (
	target   string
	modeName = "16"
	count    int
	step     uint
	batch    = 50
	interval = 10 * time.Millisecond
)

func init() {
	env.SetupFlags()
	flag.StringVar(&target, "to", target, "Target: tcp://:PORT (listen), file path or - (CSV), MQTT broker by default")
	flag.StringVar(&modeName, "mode", modeName, "Frame mode: 16, 18")
	flag.IntVar(&count, "count", count, "Number of frame periods, 0 for endless")
	flag.UintVar(&step, "step", 0x100, "Position increment per frame period")
	flag.IntVar(&batch, "batch", batch, "Frame periods per sample batch")
	flag.DurationVar(&interval, "interval", interval, "Interval between batches")
}

type sampleWriter interface {
	WriteSamples([]xy2.ParallelSample) error
}

type csvWriter struct {
	*capture.CSVWriter
}

func (w csvWriter) WriteSamples(samples []xy2.ParallelSample) error {
	return w.Write(samples...)
}

func openTarget(conf *env.Config) (sampleWriter, func(), error) {
	switch {
	case target == "":
		q, err := mqtt.NewQueueFromURL(conf.MQTTBrokerURL)
		if err != nil {
			return nil, nil, err
		}
		if err := q.ConnectAndWait(); err != nil {
			return nil, nil, err
		}
		rw := mqtt.NewPacketReadWriter(q).ForSampler(conf.ID)
		glog.Infof("publishing to %s", rw.PubTopic)
		return &capture.PacketSink{Writer: rw}, func() { q.Close() }, nil
	case target == "-":
		return csvWriter{capture.NewCSVWriter(os.Stdout)}, func() {}, nil
	case strings.HasPrefix(target, "tcp://"):
		u, err := url.Parse(target)
		if err != nil {
			return nil, nil, err
		}
		ln, err := net.Listen("tcp", u.Host)
		if err != nil {
			return nil, nil, err
		}
		glog.Infof("waiting for decoder on %s", ln.Addr())
		conn, err := ln.Accept()
		ln.Close()
		if err != nil {
			return nil, nil, err
		}
		glog.Infof("decoder connected from %s", conn.RemoteAddr())
		return &capture.PacketSink{Writer: stream.New(conn)}, func() { conn.Close() }, nil
	default:
		f, err := os.Create(target)
		if err != nil {
			return nil, nil, err
		}
		return csvWriter{capture.NewCSVWriter(f)}, func() { f.Close() }, nil
	}
}

func main() {
	flag.Parse()
	defer glog.Flush()

	conf, err := env.NewConfig()
	if err != nil {
		glog.Exit(err)
	}
	mode, err := xy2.ParseFrameMode(modeName)
	if err != nil {
		glog.Exit(err)
	}
	if batch <= 0 {
		glog.Exit(fmt.Errorf("invalid batch %d", batch))
	}
	w, closeFn, err := openTarget(conf)
	if err != nil {
		glog.Exitf("open target: %v", err)
	}
	defer closeFn()

	sync, _ := conf.SyncConvention()
	lanes := conf.LaneMap()
	synth := capture.NewSynthesizer(lanes, sync)

	runner := framework.NewRunner().HandleSignals()
	runner.Go(framework.NamedRun("sim", framework.RunFunc(func(ctx context.Context) error {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for i := 0; count <= 0 || i < count; {
			var samples []xy2.ParallelSample
			for n := 0; n < batch && (count <= 0 || i < count); n++ {
				samples = append(samples, synth.Frames(capture.Ramp(mode, lanes.Axes(), i, uint32(step)))...)
				i++
			}
			if err := w.WriteSamples(samples); err != nil {
				return err
			}
			glog.V(1).Infof("sent %d frame periods", i)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		}
		return nil
	})))
	if err := runner.Wait(); err != nil {
		glog.Exit(err)
	}
}
