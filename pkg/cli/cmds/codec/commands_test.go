package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/xy2.go/pkg/cli/sh"
	"github.com/robotalks/xy2.go/pkg/env"
	"github.com/robotalks/xy2.go/pkg/xy2"
)

func TestGenerate(t *testing.T) {
	conf := *env.Default()
	samples := Generate(&conf, xy2.ModeStandard16, 8, 0x1000)
	require.Len(t, samples, 8*xy2.FrameBits+1)

	session, err := sh.SessionFromSamples(&conf, "gen", samples)
	require.NoError(t, err)
	require.Empty(t, session.Errors())
	frames := session.Frames(0, xy2.AxisY)
	require.Len(t, frames, 8)
	for i, f := range frames {
		require.Equal(t, uint32(i*0x1000+0x4000), f.Position)
		require.True(t, f.ParityOK)
	}
	require.Equal(t, 8, session.Stats.Axis(xy2.AxisZ).Standard16)
}
