package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	derrors "git.home.luguber.info/inful/docnav/internal/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
)

// conn is the subset of *nats.Conn the publisher uses.
type conn interface {
	Publish(subject string, data []byte) error
	FlushWithContext(ctx context.Context) error
	Close()
}

// NATSPublisher publishes IndexUpdated events as JSON on a NATS subject.
type NATSPublisher struct {
	conn    conn
	subject string
	now     func() time.Time
}

// NewNATSPublisher connects to url and publishes on subject.
func NewNATSPublisher(url, subject string) (*NATSPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("docnav"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, derrors.Wrap(err, derrors.CategoryNetwork, derrors.SeverityError, "failed to connect to NATS").
			WithContext("url", url)
	}
	slog.Info("NATS publisher connected", logfields.URL(url), logfields.Subject(subject))
	return newNATSPublisher(nc, subject), nil
}

func newNATSPublisher(c conn, subject string) *NATSPublisher {
	return &NATSPublisher{conn: c, subject: subject, now: time.Now}
}

// PublishIndexUpdated fills in ID and Timestamp when unset, publishes, and
// flushes so delivery errors surface here.
func (p *NATSPublisher) PublishIndexUpdated(ctx context.Context, event IndexUpdated) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = p.now().UTC()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if err := p.conn.Publish(p.subject, data); err != nil {
		return derrors.PublishFailed(p.subject, err)
	}
	if err := p.conn.FlushWithContext(ctx); err != nil {
		return derrors.PublishFailed(p.subject, err)
	}

	slog.Debug("Published index update", logfields.Subject(p.subject), logfields.Pages(event.Pages))
	return nil
}

// Close drains nothing; pending messages were flushed on publish.
func (p *NATSPublisher) Close() error {
	p.conn.Close()
	return nil
}

// New returns a NATSPublisher when url is set, otherwise a NoopPublisher.
func New(url, subject string) (Publisher, error) {
	if url == "" {
		return NoopPublisher{}, nil
	}
	return NewNATSPublisher(url, subject)
}
