// Package reload re-runs indexing when content changes on disk or on a timer.
package reload

import "context"

// ReindexFunc rebuilds the page index.
type ReindexFunc func(ctx context.Context) error
