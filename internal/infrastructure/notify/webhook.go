package notify

import (
	"context"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/jonboulle/clockwork"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/riskibarqy/liga-amateur/internal/platform/logging"
	"github.com/riskibarqy/liga-amateur/internal/platform/resilience"
	"github.com/riskibarqy/liga-amateur/internal/usecase"
)

const maxLoggedBody = 512

var tracer = otel.Tracer("liga-amateur/internal/infrastructure/notify")

type WebhookConfig struct {
	URL            string
	Token          string
	Timeout        time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
	Clock          clockwork.Clock
	// Dial overrides the TCP dialer; tests use an in-memory listener.
	Dial fasthttp.DialFunc
}

// WebhookPublisher POSTs event batches as JSON to a single endpoint.
type WebhookPublisher struct {
	client         *fasthttp.Client
	url            string
	token          string
	timeout        time.Duration
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	logger         *logging.Logger
}

type webhookPayload struct {
	Events []usecase.MatchEvent `json:"events"`
}

func NewWebhookPublisher(cfg WebhookConfig, logger *logging.Logger) (*WebhookPublisher, error) {
	if logger == nil {
		logger = logging.Default()
	}
	endpoint, err := validateWebhookURL(cfg.URL)
	if err != nil {
		return nil, crerr.Wrap(err, "invalid NOTIFY_WEBHOOK_URL")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	breakerCfg := cfg.CircuitBreaker.Normalize()
	logger.Debug("webhook publisher configured", breakerCfg.LogFields()...)
	breaker := resilience.NewCircuitBreaker(breakerCfg, cfg.Clock)
	breaker.OnStateChange(func(from, to resilience.CircuitState) {
		logger.Warn("webhook circuit breaker state changed", "from", from, "to", to)
	})

	return &WebhookPublisher{
		client: &fasthttp.Client{
			Name:                "liga-amateur-notifier",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxIdleConnDuration: time.Minute,
			Dial:                cfg.Dial,
		},
		url:            endpoint,
		token:          strings.TrimSpace(cfg.Token),
		timeout:        timeout,
		breaker:        breaker,
		circuitEnabled: breakerCfg.Enabled,
		logger:         logger.Named("notify.webhook"),
	}, nil
}

func (p *WebhookPublisher) Publish(ctx context.Context, events []usecase.MatchEvent) error {
	if len(events) == 0 {
		return nil
	}

	ctx, span := tracer.Start(ctx, "notify.webhook.Publish")
	defer span.End()
	span.SetAttributes(attribute.Int("notify.events", len(events)))

	if p.circuitEnabled {
		if err := p.breaker.Allow(); err != nil {
			p.logger.WarnContext(ctx, "webhook circuit breaker rejected request", "state", p.breaker.State())
			return crerr.Wrap(err, "webhook is temporarily unavailable")
		}
	}

	err := p.send(ctx, events)
	p.recordCircuitResult(err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	p.logger.InfoContext(ctx, "webhook events delivered", "events", len(events))
	return nil
}

func (p *WebhookPublisher) send(ctx context.Context, events []usecase.MatchEvent) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := encodePayload(buf, events); err != nil {
		return err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(p.url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("X-Event-Type", events[0].Type)
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}
	// buf outlives req: it is returned to the pool after ReleaseRequest.
	req.SetBodyRaw(buf.B)

	deadline := time.Now().Add(p.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := p.client.DoDeadline(req, resp, deadline); err != nil {
		return markTransient(crerr.Wrapf(err, "post webhook url=%s", p.url))
	}

	status := resp.StatusCode()
	if status/100 == 2 {
		return nil
	}

	raw := string(resp.Body())
	if len(raw) > maxLoggedBody {
		raw = raw[:maxLoggedBody] + "...(truncated)"
	}
	callErr := crerr.Newf("post webhook status=%d url=%s body=%s", status, p.url, strings.TrimSpace(raw))
	if isRetryableStatus(status) {
		return markTransient(callErr)
	}
	return callErr
}

// encodePayload writes the JSON batch straight into the pooled buffer.
func encodePayload(buf *bytebufferpool.ByteBuffer, events []usecase.MatchEvent) error {
	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(webhookPayload{Events: events}); err != nil {
		return crerr.Wrap(err, "encode webhook payload")
	}
	return nil
}

// recordCircuitResult counts only transient failures; a 4xx means the
// endpoint is up and rejecting the payload.
func (p *WebhookPublisher) recordCircuitResult(err error) {
	if !p.circuitEnabled {
		return
	}
	if err == nil || !IsTransient(err) {
		p.breaker.RecordSuccess()
		return
	}
	p.breaker.RecordFailure()
}

func (p *WebhookPublisher) Close() error {
	p.client.CloseIdleConnections()
	return nil
}

func validateWebhookURL(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", crerr.New("value is empty")
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", crerr.Wrapf(err, "parse %q", candidate)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", crerr.Newf("%q uses unsupported scheme=%q; expected http or https", candidate, parsed.Scheme)
	}
	if strings.TrimSpace(parsed.Hostname()) == "" {
		return "", crerr.Newf("%q has empty host", candidate)
	}

	return candidate, nil
}
