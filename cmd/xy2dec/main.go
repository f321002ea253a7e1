package main

//go-build: CGO_ENABLED=0

import (
	"context"
	"flag"
	"os"

	"github.com/golang/glog"

	"github.com/robotalks/xy2.go/pkg/capture"
	"github.com/robotalks/xy2.go/pkg/comm/mqtt"
	"github.com/robotalks/xy2.go/pkg/env"
	"github.com/robotalks/xy2.go/pkg/framework"
	"github.com/robotalks/xy2.go/pkg/pipeline"
)

var (
	publish    bool
	printStats = true
	printIdle  bool
)

func init() {
	env.SetupFlags()
	flag.BoolVar(&publish, "publish", publish, "Publish frames to MQTT")
	flag.BoolVar(&printStats, "stats", printStats, "Print statistics to stderr at exit")
	flag.BoolVar(&printIdle, "idle", printIdle, "Print idle lanes")
}

func main() {
	flag.Parse()
	defer glog.Flush()

	conf, err := env.NewConfig()
	if err != nil {
		glog.Exit(err)
	}
	sync, _ := conf.SyncConvention()
	parity, _ := conf.ParityScope()

	out, err := pipeline.NewPrintSink(os.Stdout, conf.Format)
	if err != nil {
		glog.Exit(err)
	}
	out.Idle = printIdle
	stats := &pipeline.Stats{}
	p := &pipeline.Pipeline{
		Lanes:  conf.LaneMap(),
		Sync:   sync,
		Parity: parity,
		Buffer: conf.Buffer,
		Sinks:  []pipeline.Sink{pipeline.LogSink{}, stats, out},
	}

	if publish {
		q, err := mqtt.NewQueueFromURL(conf.MQTTBrokerURL)
		if err != nil {
			glog.Exitf("MQTT broker %q: %v", conf.MQTTBrokerURL, err)
		}
		if err := q.ConnectAndWait(); err != nil {
			glog.Exitf("connect MQTT broker %q: %v", conf.MQTTBrokerURL, err)
		}
		defer q.Close()
		p.Sinks = append(p.Sinks, &pipeline.PublishSink{
			Writer: mqtt.NewPacketReadWriter(q).ForDecoder(conf.ID),
		})
	}

	src, err := capture.Open(conf.Source, conf.ID)
	if err != nil {
		glog.Exitf("open %q: %v", conf.Source, err)
	}
	p.Source = src

	runner := framework.NewRunner().HandleSignals()
	if src.Runner != nil {
		runner.Go(src.Runner)
	}
	runner.Go(framework.NamedRun("pipeline", framework.RunFunc(func(ctx context.Context) error {
		return framework.RunWithContextCloser(ctx, src, func() error {
			return p.Run(ctx)
		})
	})))
	err = runner.Wait()
	if printStats {
		stats.Print(os.Stderr)
	}
	if err != nil {
		glog.Exit(err)
	}
}
