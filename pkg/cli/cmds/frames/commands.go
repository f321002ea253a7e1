package frames

import (
	"fmt"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/xy2.go/pkg/cli/sh"
	"github.com/robotalks/xy2.go/pkg/pipeline"
)

var (
	// FramesCmd lists decoded frames.
	FramesCmd = ishell.Cmd{
		Name:    "frames",
		Aliases: []string{"f"},
		Help:    "[N] [AXIS...]",
		Func: sh.MustBeLoaded(func(c *ishell.Context) {
			args, n := c.Args, 0
			if len(args) > 0 {
				if val, err := strconv.Atoi(args[0]); err == nil {
					n, args = val, args[1:]
				}
			}
			axes, err := sh.ParseAxes(args)
			if err != nil {
				c.Err(err)
				return
			}
			frames := sh.ShellFrom(c).Session.Frames(n, axes...)
			if sh.ShellFrom(c).OutputJSON {
				records := make([]pipeline.Record, len(frames))
				for i, f := range frames {
					records[i] = pipeline.RecordOf(pipeline.Event{Axis: f.Axis, Frame: &frames[i].DecodedFrame})
				}
				sh.Output(c, records)
				return
			}
			for _, f := range frames {
				c.Printf("%12v %s\n", f.Start, f)
			}
		}),
	}

	// ErrorsCmd lists assembly and decode errors.
	ErrorsCmd = ishell.Cmd{
		Name:    "errors",
		Aliases: []string{"e"},
		Help:    "[AXIS...]",
		Func: sh.MustBeLoaded(func(c *ishell.Context) {
			axes, err := sh.ParseAxes(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			events := sh.ShellFrom(c).Session.Errors(axes...)
			if sh.ShellFrom(c).OutputJSON {
				records := make([]pipeline.Record, len(events))
				for i, ev := range events {
					records[i] = pipeline.RecordOf(ev)
				}
				sh.Output(c, records)
				return
			}
			if len(events) == 0 {
				c.Println("No errors")
				return
			}
			for _, ev := range events {
				c.Println(fmt.Sprintf("%s | %v", ev.Axis, ev.Err))
			}
		}),
	}
)

func init() {
	sh.AddCmds(
		&FramesCmd,
		&ErrorsCmd,
	)
}
