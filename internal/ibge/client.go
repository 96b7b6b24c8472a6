package ibge

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"ecoleta/internal/jsonutil"
	"ecoleta/internal/trace"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Region is a state as returned by /localidades/estados.
type Region struct {
	ID    int    `json:"id"`
	Sigla string `json:"sigla"`
	Nome  string `json:"nome"`
}

// Locality is a municipality as returned by /localidades/estados/{uf}/municipios.
type Locality struct {
	ID   int    `json:"id"`
	Nome string `json:"nome"`
}

// StatusError reports a non-2xx response.
type StatusError struct {
	Method string
	URL    string
	Status string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Method, e.URL, e.Status)
}

// Client talks to the localidades API rooted at Base.
type Client struct {
	Base   string
	HTTP   *http.Client
	tracer oteltrace.Tracer
	logger *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds every request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.HTTP = &http.Client{Timeout: d} }
}

// WithTracer sets the tracer used for per-request spans.
func WithTracer(t oteltrace.Tracer) Option {
	return func(c *Client) { c.tracer = t }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New returns a client for base, e.g. https://servicodados.ibge.gov.br/api/v1.
func New(base string, opts ...Option) *Client {
	c := &Client{
		Base:   base,
		HTTP:   http.DefaultClient,
		tracer: trace.NoopTracer(),
		logger: zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// ListRegions returns every state ordered by name.
func (c *Client) ListRegions(ctx context.Context) ([]Region, error) {
	u := c.Base + "/localidades/estados?orderBy=nome"
	var out []Region
	err := c.getArray(ctx, "ibge.list_states", u, nil, func(resp *http.Response) error {
		var err error
		out, err = jsonutil.DecodeArray[Region](resp.Body, "decode states")
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list states: %w", err)
	}
	return out, nil
}

// ListLocalities returns the municipalities of the state identified by uf.
func (c *Client) ListLocalities(ctx context.Context, uf string) ([]Locality, error) {
	u := c.Base + "/localidades/estados/" + url.PathEscape(uf) + "/municipios"
	var out []Locality
	err := c.getArray(ctx, "ibge.list_municipalities", u, map[string]string{"uf": uf}, func(resp *http.Response) error {
		var err error
		out, err = jsonutil.DecodeArray[Locality](resp.Body, "decode municipalities")
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list municipalities of %s: %w", uf, err)
	}
	return out, nil
}

// RegionCodes returns the state codes (siglas) in service order.
func (c *Client) RegionCodes(ctx context.Context) ([]string, error) {
	regions, err := c.ListRegions(ctx)
	if err != nil {
		return nil, err
	}
	return jsonutil.Pluck(regions, func(r Region) string { return r.Sigla }), nil
}

// LocalityNames returns the municipality names of uf in service order.
func (c *Client) LocalityNames(ctx context.Context, uf string) ([]string, error) {
	localities, err := c.ListLocalities(ctx, uf)
	if err != nil {
		return nil, err
	}
	return jsonutil.Pluck(localities, func(l Locality) string { return l.Nome }), nil
}

func (c *Client) getArray(ctx context.Context, spanName, u string, attrs map[string]string, decode func(*http.Response) error) error {
	reqID := uuid.NewString()
	ctx, span := c.tracer.Start(ctx, spanName, oteltrace.WithSpanKind(oteltrace.SpanKindClient))
	defer span.End()

	kv := map[string]string{"request_id": reqID, "url": u}
	for k, v := range attrs {
		kv[k] = v
	}
	span.SetAttributes(trace.Attrs(kv)...)

	log := c.logger.With(zap.String("request_id", reqID), zap.String("url", u))
	start := time.Now()

	err := c.do(ctx, u, reqID, decode)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Warn("ibge request failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return err
	}
	log.Debug("ibge request done", zap.Duration("elapsed", time.Since(start)))
	return nil
}

func (c *Client) do(ctx context.Context, u, reqID string, decode func(*http.Response) error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", reqID)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return &StatusError{Method: req.Method, URL: u, Status: resp.Status, Code: resp.StatusCode}
	}
	return decode(resp)
}
