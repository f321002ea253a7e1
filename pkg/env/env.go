// Package env provides the common configuration of analyzer commands.
package env

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/robotalks/xy2.go/pkg/xy2"
)

// Lanes maps axis names to data lanes of the parallel word.
type Lanes struct {
	X    *uint `yaml:"x,omitempty"`
	Y    *uint `yaml:"y,omitempty"`
	Z    *uint `yaml:"z,omitempty"`
	Sync uint  `yaml:"sync"`
}

// Config provides common options of analyzer commands.
type Config struct {
	// Source is the capture URL, see capture.Open.
	Source string `yaml:"source"`

	// MQTTBrokerURL specifies the MQTT broker to use.
	// e.g. mqtt://host:port/topic-prefix
	MQTTBrokerURL string `yaml:"mqtt"`

	// ID identifies the analyzer in MQTT topics.
	ID string `yaml:"id"`

	// Sync is the SYNC edge starting a frame: rising or falling.
	Sync string `yaml:"sync"`

	// Parity is the parity coverage: position or frame.
	Parity string `yaml:"parity"`

	// Buffer is the number of assembled frames queued ahead of decoding.
	Buffer int `yaml:"buffer"`

	// Format is the output format: text, json or cbor.
	Format string `yaml:"format"`

	Lanes Lanes `yaml:"lanes"`
}

var (
	laneX, laneY, laneZ uint = 0, 1, 2

	defaultConfig = Config{
		Source:        "-",
		MQTTBrokerURL: "mqtt://localhost:1883/xy2/",
		Sync:          "rising",
		Parity:        "position",
		Format:        "text",
		Lanes:         Lanes{X: &laneX, Y: &laneY, Z: &laneZ, Sync: 3},
	}

	configFile string
)

func init() {
	if val := os.Getenv("XY2_SOURCE"); val != "" {
		defaultConfig.Source = val
	}
	if val := os.Getenv("XY2_MQTT_URL"); val != "" {
		defaultConfig.MQTTBrokerURL = val
	}
	if val := os.Getenv("XY2_ID"); val != "" {
		defaultConfig.ID = val
	} else {
		defaultConfig.ID = MachineID()
	}
	if val := os.Getenv("XY2_SYNC"); val != "" {
		defaultConfig.Sync = val
	}
	if val := os.Getenv("XY2_BUFFER"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			defaultConfig.Buffer = n
		}
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&configFile, "config", configFile, "YAML config file")
	flag.StringVar(&defaultConfig.Source, "source", defaultConfig.Source, "Capture source URL")
	flag.StringVar(&defaultConfig.MQTTBrokerURL, "mqtt", defaultConfig.MQTTBrokerURL, "MQTT broker URL")
	flag.StringVar(&defaultConfig.ID, "id", defaultConfig.ID, "Analyzer ID")
	flag.StringVar(&defaultConfig.Sync, "sync", defaultConfig.Sync, "SYNC edge starting a frame: rising, falling")
	flag.StringVar(&defaultConfig.Parity, "parity", defaultConfig.Parity, "Parity coverage: position, frame")
	flag.IntVar(&defaultConfig.Buffer, "buffer", defaultConfig.Buffer, "Frames queued ahead of decoding")
	flag.StringVar(&defaultConfig.Format, "format", defaultConfig.Format, "Output format: text, json, cbor")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
// When -config is specified, the file is loaded on top of the defaults.
func NewConfig() (*Config, error) {
	conf := defaultConfig
	if configFile != "" {
		if err := conf.LoadFile(configFile); err != nil {
			return nil, err
		}
	}
	return &conf, conf.Validate()
}

// LoadFile loads YAML from a file.
func (c *Config) LoadFile(fn string) error {
	data, err := os.ReadFile(fn)
	if err != nil {
		return err
	}
	if err := c.Load(data); err != nil {
		return fmt.Errorf("%s: %w", fn, err)
	}
	return nil
}

// Load overrides fields present in YAML data.
func (c *Config) Load(data []byte) error {
	c.Lanes = c.Lanes.clone()
	return yaml.Unmarshal(data, c)
}

func (l Lanes) clone() Lanes {
	for _, lane := range []**uint{&l.X, &l.Y, &l.Z} {
		if *lane != nil {
			val := **lane
			*lane = &val
		}
	}
	return l
}

// Validate checks the config.
func (c *Config) Validate() error {
	if c.Source == "" {
		return fmt.Errorf("source must be specified")
	}
	if _, err := c.SyncConvention(); err != nil {
		return err
	}
	if _, err := c.ParityScope(); err != nil {
		return err
	}
	if c.Buffer < 0 {
		return fmt.Errorf("invalid buffer %d", c.Buffer)
	}
	switch c.Format {
	case "text", "json", "cbor":
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	return c.LaneMap().Validate()
}

// SyncConvention parses Sync.
func (c *Config) SyncConvention() (xy2.SyncConvention, error) {
	p, err := xy2.ParseSyncPolarity(c.Sync)
	return xy2.SyncConvention{Polarity: p}, err
}

// ParityScope parses Parity.
func (c *Config) ParityScope() (xy2.ParityScope, error) {
	switch c.Parity {
	case "", "position":
		return xy2.ParityPosition, nil
	case "frame":
		return xy2.ParityFrame, nil
	}
	return xy2.ParityPosition, fmt.Errorf("unknown parity %q", c.Parity)
}

// LaneMap builds the lane assignment.
func (c *Config) LaneMap() xy2.LaneMap {
	m := xy2.LaneMap{Data: make(map[xy2.Axis]uint), Sync: c.Lanes.Sync}
	for axis, lane := range map[xy2.Axis]*uint{
		xy2.AxisX: c.Lanes.X,
		xy2.AxisY: c.Lanes.Y,
		xy2.AxisZ: c.Lanes.Z,
	} {
		if lane != nil {
			m.Data[axis] = *lane
		}
	}
	return m
}
