package main

//go-build: CGO_ENABLED=0

import (
	"context"
	"flag"
	"reflect"

	"github.com/golang/glog"

	"github.com/robotalks/xy2.go/pkg/comm/mqtt"
	"github.com/robotalks/xy2.go/pkg/env"
	"github.com/robotalks/xy2.go/pkg/framework"
	"github.com/robotalks/xy2.go/pkg/msgs"
)

var (
	allAnalyzers = true
)

func init() {
	env.SetupFlags()
	flag.BoolVar(&allAnalyzers, "all", allAnalyzers, "Monitor all analyzers, not only -id")
}

func main() {
	flag.Parse()
	defer glog.Flush()

	conf, err := env.NewConfig()
	if err != nil {
		glog.Exit(err)
	}
	q, err := mqtt.NewQueueFromURL(conf.MQTTBrokerURL)
	if err != nil {
		glog.Exit(err)
	}
	if err := q.ConnectAndWait(); err != nil {
		glog.Exit(err)
	}
	defer q.Close()

	topic := conf.ID + "/" + mqtt.FramesTopic
	if allAnalyzers {
		topic = "+/" + mqtt.FramesTopic
	}
	sub := q.Sub(topic, mqtt.Handler(func(topic string, payload []byte) {
		msg, err := msgs.Decode(payload)
		if err != nil {
			glog.Warningf("%s: bad message: %v", topic, err)
			return
		}
		switch m := msg.(type) {
		case *msgs.Frame:
			f, err := m.LabeledFrame()
			if err != nil {
				glog.Warningf("%s: %v", topic, err)
				return
			}
			glog.Infof("%s: %s", topic, f)
		case *msgs.FrameError:
			glog.Warningf("%s: %s", topic, m.Error())
		default:
			glog.Infof("%s: [%s] %s", topic,
				reflect.Indirect(reflect.ValueOf(msg)).Type().Name(),
				msg.(msgs.SerializableMessage).Serializable().String())
		}
	}))
	defer sub.Close()

	runner := framework.NewRunner().HandleSignals()
	runner.Go(framework.RunFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}))
	if err := runner.Wait(); err != nil {
		glog.Exit(err)
	}
}
