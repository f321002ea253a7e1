package codec

import (
	"fmt"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/xy2.go/pkg/capture"
	"github.com/robotalks/xy2.go/pkg/cli/sh"
	"github.com/robotalks/xy2.go/pkg/env"
	"github.com/robotalks/xy2.go/pkg/pipeline"
	"github.com/robotalks/xy2.go/pkg/xy2"
)

var (
	// DecodeCmd decodes a frame given as bits.
	DecodeCmd = ishell.Cmd{
		Name:    "decode",
		Aliases: []string{"dec"},
		Help:    "BITS [AXIS]",
		Func: func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("BITS required"))
				return
			}
			raw, err := xy2.ParseBits(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			var axis xy2.Axis
			if len(c.Args) > 1 {
				if axis, err = xy2.ParseAxis(c.Args[1]); err != nil {
					c.Err(err)
					return
				}
			}
			parity, err := sh.ShellFrom(c).Config.ParityScope()
			if err != nil {
				c.Err(err)
				return
			}
			frame, err := xy2.Decoder{Parity: parity}.Decode(raw)
			if err != nil {
				c.Err(err)
				return
			}
			if sh.ShellFrom(c).OutputJSON {
				sh.Output(c, pipeline.RecordOf(pipeline.Event{Axis: axis, Frame: &frame}))
				return
			}
			c.Println(xy2.Labeler{Axis: axis}.Label(frame))
		},
	}

	// EncodeCmd builds a frame with valid parity.
	EncodeCmd = ishell.Cmd{
		Name:    "encode",
		Aliases: []string{"enc"},
		Help:    "MODE(16|18) POS",
		Func: func(c *ishell.Context) {
			if len(c.Args) < 2 {
				c.Err(fmt.Errorf("MODE and POS required"))
				return
			}
			mode, err := xy2.ParseFrameMode(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			pos, err := strconv.ParseUint(c.Args[1], 0, 32)
			if err != nil {
				c.Err(fmt.Errorf("Invalid POS: %v", err))
				return
			}
			if pos >= 1<<uint(mode.Width()) {
				c.Err(fmt.Errorf("POS 0x%x exceeds %d bits", pos, mode.Width()))
				return
			}
			parity, err := sh.ShellFrom(c).Config.ParityScope()
			if err != nil {
				c.Err(err)
				return
			}
			raw := xy2.Decoder{Parity: parity}.Encode(mode, uint32(pos))
			c.Println(raw.String())
		},
	}

	// GenCmd loads a synthesized ramp.
	GenCmd = ishell.Cmd{
		Name:    "gen",
		Aliases: []string{"g"},
		Help:    "[MODE(16|18)] [COUNT] [STEP]",
		Func: func(c *ishell.Context) {
			mode, count, step := xy2.ModeStandard16, 16, uint64(0x100)
			var err error
			if len(c.Args) > 0 {
				if mode, err = xy2.ParseFrameMode(c.Args[0]); err != nil {
					c.Err(err)
					return
				}
			}
			if len(c.Args) > 1 {
				if count, err = strconv.Atoi(c.Args[1]); err != nil || count <= 0 {
					c.Err(fmt.Errorf("Invalid COUNT: %s", c.Args[1]))
					return
				}
			}
			if len(c.Args) > 2 {
				if step, err = strconv.ParseUint(c.Args[2], 0, 32); err != nil {
					c.Err(fmt.Errorf("Invalid STEP: %v", err))
					return
				}
			}
			s := sh.ShellFrom(c)
			session, err := sh.SessionFromSamples(s.Config, "gen", Generate(s.Config, mode, count, uint32(step)))
			if err != nil {
				c.Err(err)
				return
			}
			s.SetSession(session)
			c.Printf("%d events generated\n", len(session.Events))
		},
	}
)

// Generate synthesizes count frame periods of a ramp on all configured lanes.
func Generate(conf *env.Config, mode xy2.FrameMode, count int, step uint32) []xy2.ParallelSample {
	lanes := conf.LaneMap()
	sync, _ := conf.SyncConvention()
	synth := capture.NewSynthesizer(lanes, sync)
	var samples []xy2.ParallelSample
	for i := 0; i < count; i++ {
		samples = append(samples, synth.Frames(capture.Ramp(mode, lanes.Axes(), i, step))...)
	}
	return samples
}

func init() {
	sh.AddCmds(
		&DecodeCmd,
		&EncodeCmd,
		&GenCmd,
	)
}
