package batch

import (
	"context"
	"fmt"

	"github.com/rxtech-lab/argo-market-strategy/pkg/errors"
)

// DefaultMaxChunk is the provider's symbol limit per market-data request.
const DefaultMaxChunk = 200

// Chunk splits symbols into consecutive groups of at most size, preserving order.
// It yields ceil(len(symbols)/size) groups and none for empty input.
func Chunk(symbols []string, size int) [][]string {
	if size <= 0 {
		size = DefaultMaxChunk
	}

	chunks := make([][]string, 0, (len(symbols)+size-1)/size)
	for start := 0; start < len(symbols); start += size {
		end := min(start+size, len(symbols))
		chunks = append(chunks, symbols[start:end])
	}

	return chunks
}

// ChunkFailure records a chunk whose request failed. Its symbols are absent from the result.
type ChunkFailure struct {
	Symbols []string
	Error   *errors.ErrorInfo
}

// ChunkedResult is the merged outcome of a chunked request.
type ChunkedResult[T any] struct {
	// Values holds the merged per-symbol results of every successful chunk.
	Values map[string]T
	// Failures lists the chunks that failed.
	Failures []ChunkFailure
	// Collisions lists keys returned by more than one chunk. The later chunk wins.
	Collisions []string
}

// Complete is true when no chunk failed.
func (r ChunkedResult[T]) Complete() bool {
	return len(r.Failures) == 0
}

// FailedSymbols flattens the symbols of every failed chunk.
func (r ChunkedResult[T]) FailedSymbols() []string {
	symbols := []string{}
	for _, failure := range r.Failures {
		symbols = append(symbols, failure.Symbols...)
	}

	return symbols
}

type chunkJob struct {
	index   int
	symbols []string
}

// FetchChunked splits symbols into chunks of at most maxChunk, fetches the
// chunks concurrently and merges their keyed results. A failed chunk is
// recorded and excluded; it never fails the whole call.
func FetchChunked[T any](
	ctx context.Context,
	symbols []string,
	maxChunk int,
	fetch func(ctx context.Context, symbols []string) (map[string]T, error),
	opts ...Option,
) ChunkedResult[T] {
	chunks := Chunk(symbols, maxChunk)

	jobs := make([]chunkJob, len(chunks))
	for i, chunk := range chunks {
		jobs[i] = chunkJob{index: i, symbols: chunk}
	}

	outcomes := FanOut(ctx, jobs,
		func(job chunkJob) string { return fmt.Sprintf("chunk %d", job.index) },
		func(ctx context.Context, job chunkJob) (map[string]T, error) { return fetch(ctx, job.symbols) },
		opts...,
	)

	result := ChunkedResult[T]{
		Values:     make(map[string]T),
		Failures:   []ChunkFailure{},
		Collisions: []string{},
	}

	collided := make(map[string]bool)

	// merge in chunk order so collisions resolve deterministically
	for i, outcome := range outcomes {
		if !outcome.Success {
			result.Failures = append(result.Failures, ChunkFailure{
				Symbols: jobs[i].symbols,
				Error:   outcome.Error,
			})

			continue
		}

		for key, value := range outcome.Value.Unwrap() {
			if _, exists := result.Values[key]; exists && !collided[key] {
				collided[key] = true
				result.Collisions = append(result.Collisions, key)
			}

			result.Values[key] = value
		}
	}

	return result
}
