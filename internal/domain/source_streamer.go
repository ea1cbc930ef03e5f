package domain

import (
	"context"
	"log/slog"
	"sort"

	"strata.dev/pkg/strata/internal/adapter"
	m "strata.dev/pkg/strata/internal/model"
)

// SourceStreamer discovers sources and streams them in a deterministic order.
type SourceStreamer interface {
	// Get streams the discovered sources sorted by path. Both channels close
	// when discovery finishes or ctx is cancelled; at most one error is sent.
	Get(ctx context.Context, paths []m.Path, filter adapter.SourceFilter, threads int) (<-chan m.Source, <-chan error)
	// ShardSources keeps every totalShardCount-th source starting at shardIndex.
	ShardSources(ctx context.Context, all <-chan m.Source, threads int, shardIndex, totalShardCount int) <-chan m.Source
}

type sourceStreamer struct {
	adapter.SourceFSAdapter
}

// NewSourceStreamer creates a SourceStreamer discovering through fsAdapter.
func NewSourceStreamer(fsAdapter adapter.SourceFSAdapter) SourceStreamer {
	return &sourceStreamer{SourceFSAdapter: fsAdapter}
}

func (s *sourceStreamer) Get(ctx context.Context, paths []m.Path, filter adapter.SourceFilter, threads int) (<-chan m.Source, <-chan error) {
	slog.Debug("Starting source streaming", "paths", len(paths), "threads", threads)

	ch := make(chan m.Source, bufferSize(threads))
	errCh := make(chan error, 1)

	go func() {
		defer close(ch)
		defer close(errCh)

		sources, err := s.SourceFSAdapter.Get(ctx, paths, filter)
		if err != nil {
			slog.Error("Failed to discover sources", "error", err)
			errCh <- err

			return
		}

		// Shards of separate processes must agree on the order.
		sort.SliceStable(sources, func(i, j int) bool {
			return sources[i].Origin.ShortPath < sources[j].Origin.ShortPath
		})

		slog.Debug("Discovered sources", "count", len(sources))

		for _, source := range sources {
			select {
			case <-ctx.Done():
				slog.Debug("Source streaming cancelled")
				errCh <- ctx.Err()

				return
			case ch <- source:
			}
		}
	}()

	return ch, errCh
}

func bufferSize(threads int) int {
	if threads <= 0 {
		return 1
	}

	return threads
}

func (s *sourceStreamer) ShardSources(ctx context.Context, all <-chan m.Source, threads int, shardIndex, totalShardCount int) <-chan m.Source {
	ch := make(chan m.Source, bufferSize(threads))

	go func() {
		defer close(ch)

		if totalShardCount <= 1 {
			passThrough(ctx, all, ch)
			return
		}

		slog.Debug("Starting source sharding", "shardIndex", shardIndex, "totalShardCount", totalShardCount)

		index := 0

		for source := range all {
			if index%totalShardCount == shardIndex {
				select {
				case <-ctx.Done():
					drain(all)
					return
				case ch <- source:
				}
			}

			index++
		}
	}()

	return ch
}

func passThrough(ctx context.Context, in <-chan m.Source, out chan<- m.Source) {
	for source := range in {
		select {
		case <-ctx.Done():
			drain(in)
			return
		case out <- source:
		}
	}
}

// drain consumes in until its producer closes it.
func drain(in <-chan m.Source) {
	for range in {
	}
}
