package xy2

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testClock = 500 * time.Nanosecond

type sampleBuilder struct {
	samples []BitSample
	invert  bool
}

func samples() *sampleBuilder {
	return &sampleBuilder{}
}

func (b *sampleBuilder) falling() *sampleBuilder {
	b.invert = true
	return b
}

func (b *sampleBuilder) add(data, sync bool) *sampleBuilder {
	b.samples = append(b.samples, BitSample{
		Timestamp: time.Duration(len(b.samples)) * testClock,
		Data:      data,
		Sync:      sync != b.invert,
	})
	return b
}

func (b *sampleBuilder) idle(n int) *sampleBuilder {
	for i := 0; i < n; i++ {
		b.add(false, false)
	}
	return b
}

// frame appends bits [0, n) of f with SYNC active on bits 0..18.
func (b *sampleBuilder) partial(f RawFrame, n int) *sampleBuilder {
	for i := 0; i < n; i++ {
		b.add(f.Bits[i], i < FrameBits-1)
	}
	return b
}

func (b *sampleBuilder) frame(frames ...RawFrame) *sampleBuilder {
	for _, f := range frames {
		b.partial(f, FrameBits)
	}
	return b
}

func (b *sampleBuilder) build() []BitSample {
	return b.samples
}

func readAll(t *testing.T, r *FrameReader) (frames []RawFrame, errs []error) {
	for {
		f, err := r.ReadFrame()
		if err == io.EOF {
			return
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		require.Len(t, f.Bits, FrameBits)
		frames = append(frames, f)
	}
}

func testFrames() []RawFrame {
	return []RawFrame{
		EncodeStandard16(0x0001),
		EncodeEnhanced18(0x3ffff),
		EncodeStandard16(0xa5a5),
		EncodeEnhanced18(0),
		EncodeStandard16(0x8000),
	}
}

func TestFrameReaderRoundTrip(t *testing.T) {
	in := testFrames()
	r := NewFrameReader(SliceSource(samples().idle(1).frame(in...).build()), SyncConvention{})
	frames, errs := readAll(t, r)
	require.Empty(t, errs)
	require.Len(t, frames, len(in))
	for n, f := range frames {
		require.Equal(t, in[n].Bits, f.Bits)
		require.Equal(t, time.Duration(1+n*FrameBits)*testClock, f.Start)
		require.Equal(t, time.Duration(n*FrameBits+FrameBits)*testClock, f.End)
		require.True(t, f.Sync[0])
		require.False(t, f.Sync[FrameBits-1])
	}
}

func TestFrameReaderFallingSync(t *testing.T) {
	in := testFrames()
	r := NewFrameReader(SliceSource(samples().falling().idle(1).frame(in...).build()),
		SyncConvention{Polarity: SyncFalling})
	frames, errs := readAll(t, r)
	require.Empty(t, errs)
	require.Len(t, frames, len(in))
	for n, f := range frames {
		require.Equal(t, in[n].Bits, f.Bits)
	}
}

func TestFrameReaderWrongPolarity(t *testing.T) {
	in := testFrames()
	r := NewFrameReader(SliceSource(samples().idle(1).frame(in...).build()),
		SyncConvention{Polarity: SyncFalling})
	frames, _ := readAll(t, r)
	for _, f := range frames {
		// frames start on bit 19 of the real frames
		require.False(t, f.Sync[0])
	}
}

func TestFrameReaderFirstSampleOnlyPrimes(t *testing.T) {
	in := testFrames()
	r := NewFrameReader(SliceSource(samples().frame(in...).build()), SyncConvention{})
	frames, errs := readAll(t, r)
	require.Empty(t, errs)
	require.Len(t, frames, len(in)-1)
	require.Equal(t, in[1].Bits, frames[0].Bits)
}

func TestFrameReaderTruncated(t *testing.T) {
	f := EncodeStandard16(0x1234)
	r := NewFrameReader(SliceSource(samples().idle(3).partial(f, 5).build()), SyncConvention{})
	_, err := r.ReadFrame()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrTruncatedFrame))
	var te *TruncatedError
	require.True(t, errors.As(err, &te))
	require.Equal(t, 5, te.Bits)
	require.Equal(t, 3*testClock, te.Start)
	_, err = r.ReadFrame()
	require.Equal(t, io.EOF, err)
	_, err = r.ReadFrame()
	require.Equal(t, io.EOF, err)
}

func TestFrameReaderCleanEnd(t *testing.T) {
	r := NewFrameReader(SliceSource(samples().idle(1).frame(EncodeStandard16(7)).idle(4).build()), SyncConvention{})
	frames, errs := readAll(t, r)
	require.Empty(t, errs)
	require.Len(t, frames, 1)
}

func TestFrameReaderResync(t *testing.T) {
	first, second := EncodeEnhanced18(0x2aaaa), EncodeStandard16(0x00ff)
	b := samples().idle(1).partial(first, 9)
	b.add(first.Bits[9], false) // SYNC drops early
	b.frame(second)
	r := NewFrameReader(SliceSource(b.build()), SyncConvention{})

	_, err := r.ReadFrame()
	require.True(t, errors.Is(err, ErrResyncDetected))
	var re *ResyncError
	require.True(t, errors.As(err, &re))
	require.Equal(t, 10, re.Bits)
	require.Equal(t, testClock, re.Start)
	require.Equal(t, 11*testClock, re.At)

	f, err := r.ReadFrame()
	require.NoError(t, err)
	require.Equal(t, second.Bits, f.Bits)
	require.Equal(t, 11*testClock, f.Start)

	_, err = r.ReadFrame()
	require.Equal(t, io.EOF, err)
}

func TestFrameReaderSourceError(t *testing.T) {
	failure := errors.New("sampler gone")
	var n int
	src := SourceFunc(func() (BitSample, error) {
		if n > 3 {
			return BitSample{}, failure
		}
		n++
		return BitSample{}, nil
	})
	_, err := NewFrameReader(src, SyncConvention{}).ReadFrame()
	require.Equal(t, failure, err)
}

func TestAssembler(t *testing.T) {
	a := NewAssembler(SyncConvention{})
	f := EncodeStandard16(0x4321)
	in := samples().idle(1).partial(f, FrameBits-1).build()
	for _, s := range in {
		frame, err := a.Push(s)
		require.NoError(t, err)
		require.Nil(t, frame)
	}
	require.Equal(t, FrameBits-1, a.Pending())
	frame, err := a.Push(BitSample{Data: f.Bits[FrameBits-1]})
	require.NoError(t, err)
	require.NotNil(t, frame)
	require.Equal(t, f.Bits, frame.Bits)
	require.Equal(t, 0, a.Pending())
	require.NoError(t, a.End())

	a.Reset()
	_, err = a.Push(BitSample{Sync: true})
	require.NoError(t, err)
	require.Equal(t, 0, a.Pending())
}

func TestParseSyncPolarity(t *testing.T) {
	p, err := ParseSyncPolarity("Falling")
	require.NoError(t, err)
	require.Equal(t, SyncFalling, p)
	p, err = ParseSyncPolarity("")
	require.NoError(t, err)
	require.Equal(t, SyncRising, p)
	_, err = ParseSyncPolarity("both")
	require.Error(t, err)
}
