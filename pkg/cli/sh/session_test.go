package sh

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/xy2.go/pkg/capture"
	"github.com/robotalks/xy2.go/pkg/env"
	"github.com/robotalks/xy2.go/pkg/xy2"
)

func testCapture(t *testing.T, dir string) string {
	s := capture.NewSynthesizer(xy2.DefaultLaneMap(), xy2.SyncConvention{})
	var samples []xy2.ParallelSample
	for i := 0; i < 3; i++ {
		samples = append(samples, s.Frames(map[xy2.Axis]xy2.RawFrame{
			xy2.AxisX: xy2.EncodeStandard16(uint16(i)),
			xy2.AxisY: xy2.EncodeEnhanced18(uint32(i) << 16),
		})...)
	}
	samples = append(samples, s.Frames(nil)[:7]...)
	fn := filepath.Join(dir, "capture.csv")
	f, err := os.Create(fn)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, capture.NewCSVWriter(f).Write(samples...))
	return fn
}

func TestLoadSession(t *testing.T) {
	dir, err := os.MkdirTemp("", "xy2-sh")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	conf := *env.Default()
	session, err := LoadSession(&conf, testCapture(t, dir), time.Minute)
	require.NoError(t, err)

	require.Len(t, session.Frames(0), 6)
	require.Len(t, session.Frames(2), 2)
	x := session.Frames(0, xy2.AxisX)
	require.Len(t, x, 3)
	require.Equal(t, uint32(2), x[2].Position)
	y := session.Frames(1, xy2.AxisY)
	require.Len(t, y, 1)
	require.Equal(t, xy2.ModeEnhanced18, y[0].Mode)

	// idle Z frames are not errors
	require.Len(t, session.Errors(), 3)
	require.Len(t, session.Errors(xy2.AxisZ), 1)
	require.Equal(t, 3, session.Stats.Axis(xy2.AxisZ).Idle)

	_, err = LoadSession(&conf, filepath.Join(dir, "missing.csv"), 0)
	require.Error(t, err)
}

func TestParseAxes(t *testing.T) {
	axes, err := ParseAxes([]string{"x", "Z"})
	require.NoError(t, err)
	require.Equal(t, []xy2.Axis{xy2.AxisX, xy2.AxisZ}, axes)
	_, err = ParseAxes([]string{"w"})
	require.Error(t, err)
}
