package frame

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/avframe/avbuf"
	"github.com/xaionaro-go/typing"
)

func TestPTSRoundTrip(t *testing.T) {
	ctx := context.Background()

	f := Empty(ctx)
	defer f.Close(ctx)

	for _, value := range []typing.Optional[int64]{
		{},
		typing.Opt(int64(0)),
		typing.Opt(int64(1)),
		typing.Opt(int64(-1)),
		typing.Opt(int64(90000)),
		typing.Opt(int64(math.MaxInt64)),
		typing.Opt(int64(math.MinInt64 + 1)),
	} {
		f.SetPTS(value)
		require.Equal(t, value, f.PTS())
	}
}

func TestPTSSentinelExclusion(t *testing.T) {
	ctx := context.Background()

	f := Empty(ctx)
	defer f.Close(ctx)

	require.False(t, f.PTS().IsSet())
	require.False(t, f.Timestamp().IsSet())

	// even when the sentinel gets written as if it was a concrete value,
	// it must surface as absence, never as a number:
	f.SetPTS(typing.Opt(avbuf.NoPTSValue))
	require.False(t, f.PTS().IsSet())
}

func TestTimestampRawCodec(t *testing.T) {
	require.Equal(t, avbuf.NoPTSValue, TimestampToRaw(typing.Optional[int64]{}))
	require.Equal(t, int64(42), TimestampToRaw(typing.Opt(int64(42))))
	require.False(t, TimestampFromRaw(avbuf.NoPTSValue).IsSet())
	require.Equal(t, typing.Opt(int64(42)), TimestampFromRaw(42))
}

func TestBestEffortTimestamp(t *testing.T) {
	buf := &avbuf.Buffer{
		PTS:                 avbuf.NoPTSValue,
		BestEffortTimestamp: 1234,
	}
	f := Wrap(buf)
	defer f.Close(context.Background())

	require.False(t, f.PTS().IsSet())
	require.Equal(t, typing.Opt(int64(1234)), f.Timestamp())
}
