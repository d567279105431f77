package article

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// DefaultEndpoint is where articles are served when nothing else is configured.
const DefaultEndpoint = "http://localhost:4000"

// TracerName identifies spans emitted by this package.
const TracerName = "myarticles/article"

// Source loads the full article collection.
type Source interface {
	Fetch(ctx context.Context) ([]Article, error)
}

// HTTPSource fetches articles with a single GET to a fixed endpoint.
type HTTPSource struct {
	endpoint string
	client   *http.Client
	timeout  time.Duration
	logger   *zap.Logger
	tracer   oteltrace.Tracer
}

var _ Source = (*HTTPSource)(nil)

// Option configures an HTTPSource.
type Option func(*HTTPSource)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *HTTPSource) { s.client = c }
}

// WithTimeout bounds each Fetch. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *HTTPSource) { s.timeout = d }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *HTTPSource) { s.logger = l }
}

// WithTracer sets the tracer. Defaults to the global provider's tracer.
func WithTracer(t oteltrace.Tracer) Option {
	return func(s *HTTPSource) { s.tracer = t }
}

// NewHTTPSource creates a source for endpoint.
func NewHTTPSource(endpoint string, opts ...Option) *HTTPSource {
	s := &HTTPSource{
		endpoint: endpoint,
		client:   http.DefaultClient,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(TracerName)
	}
	return s
}

// Endpoint returns the URL this source fetches.
func (s *HTTPSource) Endpoint() string {
	return s.endpoint
}

// Fetch performs the GET and decodes the response. Errors match one of
// ErrNetwork, ErrStatus, ErrMalformed or ErrSchema.
func (s *HTTPSource) Fetch(ctx context.Context) ([]Article, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	ctx, span := s.tracer.Start(ctx, "articles.fetch",
		oteltrace.WithSpanKind(oteltrace.SpanKindClient),
		oteltrace.WithAttributes(attribute.String("http.url", s.endpoint)),
	)
	defer span.End()

	articles, err := s.fetch(ctx, span)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Warn("fetch articles failed", zap.String("endpoint", s.endpoint), zap.Error(err))
		return nil, err
	}

	span.SetAttributes(attribute.Int("articles.count", len(articles)))
	s.logger.Debug("fetched articles", zap.String("endpoint", s.endpoint), zap.Int("count", len(articles)))
	return articles, nil
}

func (s *HTTPSource) fetch(ctx context.Context, span oteltrace.Span) ([]Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: perform request: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrNetwork, err)
	}

	return Decode(body)
}
