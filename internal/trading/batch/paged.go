package batch

import (
	"context"
	"strings"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-market-strategy/pkg/errors"
)

// DefaultMaxPages guards against providers that never stop returning cursors.
const DefaultMaxPages = 1000

// Mode selects how much of a paged result is retrieved.
type Mode string

const (
	// ModeFirst issues a single request and keeps only the first item.
	ModeFirst Mode = "first"
	// ModeAll follows cursors to the end and keeps every item in page order.
	ModeAll Mode = "all"
	// ModeLast follows cursors to the end and keeps only the final item.
	ModeLast Mode = "last"
)

// ParseMode parses first, all or last.
func ParseMode(s string) (Mode, error) {
	switch mode := Mode(strings.ToLower(strings.TrimSpace(s))); mode {
	case ModeFirst, ModeAll, ModeLast:
		return mode, nil
	default:
		return "", errors.Newf(errors.ErrCodeInvalidParameter, "unknown page mode %q, expected first, all or last", s)
	}
}

// Page is one page of a cursor-paginated response. An absent or empty Next ends the sequence.
type Page[T any] struct {
	Items []T
	Next  optional.Option[string]
}

// PageFetcher fetches the page at cursor. An absent cursor requests the first page.
type PageFetcher[T any] func(ctx context.Context, cursor optional.Option[string]) (Page[T], error)

// FetchPaged walks a cursor-paginated sequence according to mode.
//
// Pages are requested sequentially because each cursor comes from the previous
// response. When a page request fails, the items accumulated so far are
// returned together with the error. More than maxPages pages, or a cursor the
// provider already returned, yields a protocol error.
func FetchPaged[T any](ctx context.Context, mode Mode, fetch PageFetcher[T], maxPages int) ([]T, error) {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	var (
		items  []T
		cursor = optional.None[string]()
		seen   = make(map[string]struct{})
	)

	for pages := 0; ; pages++ {
		if pages >= maxPages {
			return selectItems(mode, items), errors.Newf(errors.ErrCodePaginationExhausted, "pagination did not finish within %d pages", maxPages)
		}

		page, err := fetch(ctx, cursor)
		if err != nil {
			return selectItems(mode, items), err
		}

		if mode == ModeFirst {
			return selectItems(mode, page.Items), nil
		}

		items = append(items, page.Items...)

		next, ok := nextCursor(page.Next)
		if !ok {
			return selectItems(mode, items), nil
		}

		if _, repeated := seen[next]; repeated {
			return selectItems(mode, items), errors.Newf(errors.ErrCodeCursorRepeated, "provider repeated page cursor %q", next)
		}

		seen[next] = struct{}{}
		cursor = optional.Some(next)
	}
}

func nextCursor(next optional.Option[string]) (string, bool) {
	if next.IsNone() {
		return "", false
	}

	token := next.Unwrap()

	return token, token != ""
}

func selectItems[T any](mode Mode, items []T) []T {
	switch mode {
	case ModeFirst:
		if len(items) == 0 {
			return []T{}
		}

		return items[:1]
	case ModeLast:
		if len(items) == 0 {
			return []T{}
		}

		return items[len(items)-1:]
	default:
		if items == nil {
			return []T{}
		}

		return items
	}
}
