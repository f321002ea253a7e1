package sh

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"path"
	"time"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/xy2.go/pkg/env"
	"github.com/robotalks/xy2.go/pkg/xy2"
)

// Shell provides ishell backed interactive shell.
type Shell struct {
	Interactive bool
	OutputJSON  bool

	Shell   *ishell.Shell
	Config  *env.Config
	Session *Session
}

const (
	shellKey       = "$shell"
	unloadedPrompt = "[none] > "
)

var (
	// flags

	evalOnly   bool
	outputJSON bool
	autoLoad   bool

	// commands
	commands = []*ishell.Cmd{
		&LoadCmd,
		&UnloadCmd,
		&StatsCmd,
	}
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print output in JSON.")
	flag.BoolVar(&autoLoad, "load", autoLoad, "Load the configured source on start.")
}

// AddCmds is used by other commands providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell.
func New(conf *env.Config) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		OutputJSON:  outputJSON,

		Shell:  ishell.New(),
		Config: conf,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(unloadedPrompt)
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// MustBeLoaded wraps command func requires a loaded session.
func MustBeLoaded(fn func(c *ishell.Context)) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		if ShellFrom(c).Session == nil {
			c.Err(fmt.Errorf("nothing loaded"))
			return
		}
		fn(c)
	}
}

// ParseAxes parses axis arguments.
func ParseAxes(args []string) ([]xy2.Axis, error) {
	axes := make([]xy2.Axis, 0, len(args))
	for _, arg := range args {
		axis, err := xy2.ParseAxis(arg)
		if err != nil {
			return nil, err
		}
		axes = append(axes, axis)
	}
	return axes, nil
}

// Output prints v as JSON when OutputJSON is set, or its text form.
func Output(c *ishell.Context, v interface{}) {
	if ShellFrom(c).OutputJSON {
		out, err := json.Marshal(v)
		if err != nil {
			c.Err(err)
			return
		}
		c.Println(string(out))
		return
	}
	c.Println(v)
}

// SetSession replaces the current session.
func (s *Shell) SetSession(session *Session) {
	s.Session = session
	if session == nil {
		s.Shell.SetPrompt(unloadedPrompt)
		return
	}
	s.Shell.SetPrompt(fmt.Sprintf("[%s] > ", path.Base(session.Source)))
}

// Load loads a capture source.
func (s *Shell) Load(source string, timeout time.Duration) error {
	session, err := LoadSession(s.Config, source, timeout)
	if err != nil {
		return err
	}
	s.SetSession(session)
	return nil
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	if autoLoad {
		if s.Interactive {
			s.Shell.Printf("Loading %s ...\n", s.Config.Source)
		}
		if err := s.Load(s.Config.Source, 0); err != nil {
			log.Fatalf("load %q failed: %v", s.Config.Source, err)
		}
	}

	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	log.Fatalln("command expected")
}

var (
	// LoadCmd loads a capture.
	LoadCmd = ishell.Cmd{
		Name:    "load",
		Aliases: []string{"l"},
		Help:    "SOURCE [DURATION]",
		Func: func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("SOURCE required"))
				return
			}
			var timeout time.Duration
			if len(c.Args) > 1 {
				val, err := time.ParseDuration(c.Args[1])
				if err != nil {
					c.Err(fmt.Errorf("Invalid DURATION: %v", err))
					return
				}
				timeout = val
			}
			s := ShellFrom(c)
			if err := s.Load(c.Args[0], timeout); err != nil {
				c.Err(err)
				return
			}
			c.Printf("%d events loaded\n", len(s.Session.Events))
		},
	}

	// UnloadCmd drops the current session.
	UnloadCmd = ishell.Cmd{
		Name: "unload",
		Help: "",
		Func: func(c *ishell.Context) {
			ShellFrom(c).SetSession(nil)
		},
	}

	// StatsCmd prints counters of the session.
	StatsCmd = ishell.Cmd{
		Name:    "stats",
		Aliases: []string{"st"},
		Help:    "",
		Func: MustBeLoaded(func(c *ishell.Context) {
			stats := &ShellFrom(c).Session.Stats
			if ShellFrom(c).OutputJSON {
				counters := make(map[string]interface{})
				for _, axis := range xy2.Axes {
					counters[axis.String()] = stats.Axis(axis)
				}
				Output(c, counters)
				return
			}
			var buf bytes.Buffer
			stats.Print(&buf)
			c.Print(buf.String())
		}),
	}
)

// Main is a helper to provide a single call in main.
func Main() {
	flag.Parse()
	conf, err := env.NewConfig()
	if err != nil {
		log.Fatalln(err)
	}
	New(conf).Run(flag.Args()...)
}
