package notify

import (
	"context"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/nats-io/nats.go"

	"github.com/riskibarqy/liga-amateur/internal/platform/logging"
	"github.com/riskibarqy/liga-amateur/internal/usecase"
)

type natsConn interface {
	PublishMsg(msg *nats.Msg) error
	FlushWithContext(ctx context.Context) error
	Drain() error
}

// NATSPublisher publishes one message per event. The event id travels as
// Nats-Msg-Id so JetStream streams can deduplicate redelivered sweeps.
type NATSPublisher struct {
	conn    natsConn
	subject string
	logger  *logging.Logger
}

func NewNATSPublisher(serverURL, subject, clientName string, logger *logging.Logger) (*NATSPublisher, error) {
	if logger == nil {
		logger = logging.Default()
	}
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, crerr.New("nats subject is required")
	}

	logger = logger.Named("notify.nats")
	conn, err := nats.Connect(serverURL,
		nats.Name(clientName),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("nats reconnected", "url", c.ConnectedUrlRedacted())
		}),
	)
	if err != nil {
		return nil, markTransient(crerr.Wrapf(err, "connect nats url=%s", serverURL))
	}

	return newNATSPublisher(conn, subject, logger), nil
}

func newNATSPublisher(conn natsConn, subject string, logger *logging.Logger) *NATSPublisher {
	if logger == nil {
		logger = logging.Default()
	}
	return &NATSPublisher{conn: conn, subject: subject, logger: logger}
}

func (p *NATSPublisher) Publish(ctx context.Context, events []usecase.MatchEvent) error {
	if len(events) == 0 {
		return nil
	}

	for _, event := range events {
		data, err := sonic.Marshal(event)
		if err != nil {
			return crerr.Wrapf(err, "marshal event %s", event.ID)
		}
		msg := &nats.Msg{
			Subject: p.subject,
			Data:    data,
			Header:  nats.Header{},
		}
		msg.Header.Set(nats.MsgIdHdr, event.ID)
		msg.Header.Set("Event-Type", event.Type)
		if err := p.conn.PublishMsg(msg); err != nil {
			return markTransient(crerr.Wrapf(err, "publish event %s subject=%s", event.ID, p.subject))
		}
	}

	if err := p.conn.FlushWithContext(ctx); err != nil {
		return markTransient(crerr.Wrapf(err, "flush nats subject=%s", p.subject))
	}

	p.logger.InfoContext(ctx, "nats events published", "subject", p.subject, "events", len(events))
	return nil
}

func (p *NATSPublisher) Close() error {
	return p.conn.Drain()
}
