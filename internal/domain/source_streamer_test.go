package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"strata.dev/pkg/strata/internal/adapter"
	adaptermocks "strata.dev/pkg/strata/internal/adapter/mocks"
	"strata.dev/pkg/strata/internal/domain"
	m "strata.dev/pkg/strata/internal/model"
)

func sourcesOf(paths ...string) []m.Source {
	sources := make([]m.Source, 0, len(paths))
	for _, p := range paths {
		sources = append(sources, m.Source{Origin: &m.File{FullPath: m.Path("/repo/" + p), ShortPath: m.Path(p)}})
	}

	return sources
}

func shortPaths(ch <-chan m.Source) []string {
	var paths []string
	for source := range ch {
		paths = append(paths, string(source.Origin.ShortPath))
	}

	return paths
}

func TestSourceStreamer_Get_SortsByPath(t *testing.T) {
	ctx := context.Background()
	mockFSAdapter := adaptermocks.NewMockSourceFSAdapter(t)

	filter := adapter.SourceFilter{Include: []string{"**/*.java"}}
	mockFSAdapter.EXPECT().Get(ctx, []m.Path{"./..."}, filter).Return(sourcesOf("b/B.java", "a/A.java", "a/C.java"), nil)

	streamer := domain.NewSourceStreamer(mockFSAdapter)

	ch, errCh := streamer.Get(ctx, []m.Path{"./..."}, filter, 2)

	assert.Equal(t, []string{"a/A.java", "a/C.java", "b/B.java"}, shortPaths(ch))
	require.NoError(t, <-errCh)
}

func TestSourceStreamer_Get_DiscoveryError(t *testing.T) {
	ctx := context.Background()
	mockFSAdapter := adaptermocks.NewMockSourceFSAdapter(t)

	testErr := errors.New("root path error")
	mockFSAdapter.EXPECT().Get(ctx, mock.Anything, mock.Anything).Return(nil, testErr)

	streamer := domain.NewSourceStreamer(mockFSAdapter)

	ch, errCh := streamer.Get(ctx, []m.Path{"missing"}, adapter.SourceFilter{}, 4)

	assert.Empty(t, shortPaths(ch))
	require.ErrorIs(t, <-errCh, testErr)
}

func TestSourceStreamer_Get_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mockFSAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	mockFSAdapter.EXPECT().Get(ctx, mock.Anything, mock.Anything).Return(sourcesOf("A.java", "B.java", "C.java"), nil)

	streamer := domain.NewSourceStreamer(mockFSAdapter)

	// Nothing reads ch, so the producer blocks on the full buffer and sees ctx.
	ch, errCh := streamer.Get(ctx, nil, adapter.SourceFilter{}, 1)

	err := <-errCh
	for range ch {
	}

	require.ErrorIs(t, err, context.Canceled)
}

func TestSourceStreamer_ShardSources(t *testing.T) {
	paths := []string{"0.java", "1.java", "2.java", "3.java", "4.java", "5.java", "6.java"}

	tests := []struct {
		name       string
		shardIndex int
		shardCount int
		want       []string
	}{
		{"single shard passes through", 0, 1, paths},
		{"zero count passes through", 0, 0, paths},
		{"first of three", 0, 3, []string{"0.java", "3.java", "6.java"}},
		{"second of three", 1, 3, []string{"1.java", "4.java"}},
		{"third of three", 2, 3, []string{"2.java", "5.java"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			streamer := domain.NewSourceStreamer(adaptermocks.NewMockSourceFSAdapter(t))

			in := make(chan m.Source, len(paths))
			for _, source := range sourcesOf(paths...) {
				in <- source
			}
			close(in)

			got := shortPaths(streamer.ShardSources(ctx, in, 2, tt.shardIndex, tt.shardCount))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSourceStreamer_ShardsCoverEverySourceOnce(t *testing.T) {
	ctx := context.Background()
	paths := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	streamer := domain.NewSourceStreamer(adaptermocks.NewMockSourceFSAdapter(t))

	seen := make(map[string]int)

	for shard := range 4 {
		in := make(chan m.Source, len(paths))
		for _, source := range sourcesOf(paths...) {
			in <- source
		}
		close(in)

		for _, p := range shortPaths(streamer.ShardSources(ctx, in, 1, shard, 4)) {
			seen[p]++
		}
	}

	require.Len(t, seen, len(paths))

	for p, count := range seen {
		assert.Equal(t, 1, count, p)
	}
}
