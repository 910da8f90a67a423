package frame

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/avframe/avbuf"
	"github.com/xaionaro-go/avframe/dictionary"
)

func TestOwnedFrameReleasesExactlyOnce(t *testing.T) {
	ctx := context.Background()

	f, err := TryEmpty(ctx)
	require.NoError(t, err)
	buf := f.buf
	require.EqualValues(t, 0, buf.FreeCount())

	require.NoError(t, f.Close(ctx))
	require.EqualValues(t, 1, buf.FreeCount())

	// idempotent:
	require.NoError(t, f.Close(ctx))
	require.EqualValues(t, 1, buf.FreeCount())
}

func TestBorrowedFrameNeverReleases(t *testing.T) {
	ctx := context.Background()

	buf := &avbuf.Buffer{}
	f := Wrap(buf)
	require.NoError(t, f.Close(ctx))
	require.NoError(t, f.Close(ctx))
	require.EqualValues(t, 0, buf.FreeCount())
}

func TestEmptyFrameDefaults(t *testing.T) {
	ctx := context.Background()

	f := Empty(ctx)
	defer f.Close(ctx)

	require.True(t, f.IsEmpty())
	require.False(t, f.IsKey())
	require.False(t, f.IsCorrupt())
	require.False(t, f.PTS().IsSet())
	require.False(t, f.Timestamp().IsSet())
	require.EqualValues(t, 0, f.Quality())
	require.Equal(t, Flags(0), f.Flags())
	require.Equal(t, 0, f.Metadata().Len())
}

func TestAllocatorExhaustion(t *testing.T) {
	ctx := context.Background()

	avbuf.AllocHook = func(context.Context) error {
		return errors.New("the allocator is exhausted")
	}
	defer func() { avbuf.AllocHook = nil }()

	_, err := TryEmpty(ctx)
	require.Error(t, err)
	require.Panics(t, func() { Empty(ctx) })
}

func TestSideDataLifecycle(t *testing.T) {
	ctx := context.Background()

	f := Empty(ctx)
	defer f.Close(ctx)
	require.True(t, f.IsEmpty())

	sd, err := f.NewSideData(ctx, avbuf.SideDataTypeMotionVectors, 64)
	require.NoError(t, err)
	require.Equal(t, avbuf.SideDataTypeMotionVectors, sd.Kind())
	require.Equal(t, 64, sd.Size())

	// side-data presence is independent of data-plane population:
	require.True(t, f.IsEmpty())

	got := f.SideData(avbuf.SideDataTypeMotionVectors)
	require.NotNil(t, got)
	require.Equal(t, 64, got.Size())
	require.Nil(t, f.SideData(avbuf.SideDataTypeStereo3D))

	n := got.SetData([]byte{1, 2, 3})
	require.Equal(t, 3, n)
	require.Equal(t, []byte{1, 2, 3}, got.Data()[:3])

	f.RemoveSideData(ctx, avbuf.SideDataTypeMotionVectors)
	require.Nil(t, f.SideData(avbuf.SideDataTypeMotionVectors))

	// removing an absent kind is a no-op:
	f.RemoveSideData(ctx, avbuf.SideDataTypeMotionVectors)
}

func TestSideDataEntryLimit(t *testing.T) {
	ctx := context.Background()

	f := Empty(ctx)
	defer f.Close(ctx)

	for i := 0; i < avbuf.MaxSideDataEntries; i++ {
		_, err := f.NewSideData(ctx, avbuf.SideDataTypeA53CC, 1)
		require.NoError(t, err)
	}
	_, err := f.NewSideData(ctx, avbuf.SideDataTypeA53CC, 1)
	require.Error(t, err)
}

func TestWrappedKeyCorruptFrame(t *testing.T) {
	ctx := context.Background()

	buf := &avbuf.Buffer{
		KeyFrame: 1,
		Flags:    FlagCorrupt.Raw() | 1<<9, // an unrecognized bit set upstream
	}
	f := Wrap(buf)
	defer f.Close(ctx)

	require.True(t, f.IsKey())
	require.True(t, f.IsCorrupt())
	require.Equal(t, FlagCorrupt, f.Flags())
}

func TestMetadataOwnershipTransfer(t *testing.T) {
	ctx := context.Background()

	f := Empty(ctx)
	defer f.Close(ctx)

	d := dictionary.FromMap(map[string]string{
		"title":    "test",
		"language": "eng",
	})
	f.SetMetadata(ctx, d)

	v, ok := f.Metadata().Get("title")
	require.True(t, ok)
	require.Equal(t, "test", v)
	require.Equal(t, []string{"language", "title"}, f.Metadata().Keys())

	// the dictionary was moved into the frame; using it is a bug:
	require.Panics(t, func() { d.Set(ctx, "k", "v") })

	// replacing the metadata releases the prior one:
	f.SetMetadata(ctx, dictionary.FromMap(map[string]string{"title": "other"}))
	v, ok = f.Metadata().Get("title")
	require.True(t, ok)
	require.Equal(t, "other", v)
	_, ok = f.Metadata().Get("language")
	require.False(t, ok)
}

func TestPacketSnapshot(t *testing.T) {
	ctx := context.Background()

	buf := &avbuf.Buffer{
		PTS:         90000,
		PktDTS:      89000,
		PktDuration: 3000,
		PktPos:      4096,
		PktSize:     1500,
	}
	f := Wrap(buf)
	defer f.Close(ctx)

	require.Equal(t, Packet{
		Duration: 3000,
		Position: 4096,
		Size:     1500,
		PTS:      90000,
		DTS:      89000,
	}, f.Packet())
}

func TestQualityIsNonNegative(t *testing.T) {
	ctx := context.Background()

	buf := &avbuf.Buffer{Quality: -5}
	f := Wrap(buf)
	defer f.Close(ctx)
	require.EqualValues(t, 0, f.Quality())

	buf.Quality = 7
	require.EqualValues(t, 7, f.Quality())
}
