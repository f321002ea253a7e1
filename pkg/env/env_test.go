package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/xy2.go/pkg/xy2"
)

func TestDefaultConfig(t *testing.T) {
	conf := *Default()
	conf.Lanes = conf.Lanes.clone()
	require.NoError(t, conf.Validate())
	require.NotEmpty(t, conf.ID)
	require.Equal(t, xy2.DefaultLaneMap(), conf.LaneMap())
	sync, err := conf.SyncConvention()
	require.NoError(t, err)
	require.Equal(t, xy2.SyncRising, sync.Polarity)
	parity, err := conf.ParityScope()
	require.NoError(t, err)
	require.Equal(t, xy2.ParityPosition, parity)
}

func TestLoad(t *testing.T) {
	conf := *Default()
	require.NoError(t, conf.Load([]byte(`
source: tcp://localhost:9000
sync: falling
parity: frame
buffer: 16
format: cbor
lanes:
  x: 4
  z: null
  sync: 7
`)))
	require.NoError(t, conf.Validate())
	require.Equal(t, "tcp://localhost:9000", conf.Source)
	require.Equal(t, 16, conf.Buffer)
	require.Equal(t, xy2.LaneMap{
		Data: map[xy2.Axis]uint{xy2.AxisX: 4, xy2.AxisY: 1},
		Sync: 7,
	}, conf.LaneMap())
	sync, err := conf.SyncConvention()
	require.NoError(t, err)
	require.Equal(t, xy2.SyncFalling, sync.Polarity)
	parity, err := conf.ParityScope()
	require.NoError(t, err)
	require.Equal(t, xy2.ParityFrame, parity)

	// defaults are untouched
	require.Equal(t, xy2.DefaultLaneMap(), Default().LaneMap())
}

func TestLoadFile(t *testing.T) {
	dir, err := os.MkdirTemp("", "xy2-env")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	fn := filepath.Join(dir, "xy2.yaml")
	require.NoError(t, os.WriteFile(fn, []byte("id: scanner-1\n"), 0644))
	conf := *Default()
	require.NoError(t, conf.LoadFile(fn))
	require.Equal(t, "scanner-1", conf.ID)

	require.Error(t, conf.LoadFile(filepath.Join(dir, "missing.yaml")))
	require.NoError(t, os.WriteFile(fn, []byte("buffer: [\n"), 0644))
	require.Error(t, conf.LoadFile(fn))
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"source": func(c *Config) { c.Source = "" },
		"sync":   func(c *Config) { c.Sync = "both" },
		"parity": func(c *Config) { c.Parity = "odd" },
		"buffer": func(c *Config) { c.Buffer = -1 },
		"format": func(c *Config) { c.Format = "xml" },
		"lanes":  func(c *Config) { c.Lanes.Sync = 0 },
	}
	for name, modify := range cases {
		t.Run(name, func(t *testing.T) {
			conf := *Default()
			conf.Lanes = conf.Lanes.clone()
			modify(&conf)
			require.Error(t, conf.Validate())
		})
	}
}
