// Package events publishes index-change notifications.
package events

import (
	"context"
	"time"
)

// IndexUpdated is emitted after the page index changed.
type IndexUpdated struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Pages     int       `json:"pages"`
	Added     int       `json:"added"`
	Updated   int       `json:"updated"`
	Removed   int       `json:"removed"`
	Languages []string  `json:"languages,omitempty"`
}

// Publisher sends index notifications.
type Publisher interface {
	PublishIndexUpdated(ctx context.Context, event IndexUpdated) error
	Close() error
}

// NoopPublisher drops every event.
type NoopPublisher struct{}

func (NoopPublisher) PublishIndexUpdated(context.Context, IndexUpdated) error { return nil }
func (NoopPublisher) Close() error                                           { return nil }
