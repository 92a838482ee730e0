// Package telemetry builds the program's structured logger and, when an OTLP
// endpoint is configured, the OpenTelemetry tracer provider.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

// DefaultServiceName is reported when Options.ServiceName is empty.
const DefaultServiceName = "couchpotato"

// EndpointEnv enables trace export when set.
const EndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"

const tracesPath = "/v1/traces"

var version = "dev"

// SetVersion sets the service version attached to exported spans.
func SetVersion(v string) {
	version = v
}

// Options configures Setup.
type Options struct {
	// Debug lowers the log level to debug.
	Debug bool
	// LogFile receives log output. The terminal belongs to the UI, so with
	// no file logs are discarded.
	LogFile string
	// ServiceName defaults to DefaultServiceName.
	ServiceName string
	// Endpoint overrides OTEL_EXPORTER_OTLP_ENDPOINT. Either host:port
	// (plain HTTP) or a base URL such as http://collector:4318.
	Endpoint string
}

// Telemetry owns the logger and the tracer provider.
type Telemetry struct {
	Logger *slog.Logger
	// SessionID tags every log line and the trace resource of one run.
	SessionID string

	tracerProvider *sdktrace.TracerProvider
	logFile        *os.File
}

// Setup builds the logger and, if an endpoint is configured, installs an
// OTLP/HTTP tracer provider as the global provider.
func Setup(ctx context.Context, opts Options) (*Telemetry, error) {
	t := &Telemetry{SessionID: uuid.NewString()}

	var w io.Writer = io.Discard
	if opts.LogFile != "" {
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		t.logFile = f
		w = f
	}
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}
	t.Logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})).
		With("session", t.SessionID)

	endpoint := opts.Endpoint
	if endpoint == "" && os.Getenv(EndpointEnv) == "" {
		return t, nil
	}

	name := opts.ServiceName
	if name == "" {
		name = DefaultServiceName
	}
	tp, err := newTracerProvider(ctx, endpoint, name, t.SessionID)
	if err != nil {
		_ = t.closeLog()
		return nil, err
	}
	t.tracerProvider = tp
	otel.SetTracerProvider(tp)
	// Export failures would otherwise go to stderr, under the UI.
	logger := t.Logger
	otel.SetErrorHandler(otel.ErrorHandlerFunc(func(err error) {
		logger.Error("otel", "error", err)
	}))
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	if endpoint == "" {
		endpoint = os.Getenv(EndpointEnv)
	}
	t.Logger.Debug("trace export enabled", "endpoint", endpoint, "service", name)
	return t, nil
}

// NewNoop returns telemetry that discards everything.
func NewNoop() *Telemetry {
	return &Telemetry{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// Tracing reports whether spans are exported.
func (t *Telemetry) Tracing() bool {
	return t.tracerProvider != nil
}

// Shutdown flushes pending spans and closes the log file.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error
	if t.tracerProvider != nil {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := t.tracerProvider.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
		t.tracerProvider = nil
	}
	if err := t.closeLog(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (t *Telemetry) closeLog() error {
	if t.logFile == nil {
		return nil
	}
	err := t.logFile.Close()
	t.logFile = nil
	return err
}

// exporterOptions maps an explicit endpoint to exporter options. With no
// explicit endpoint the exporter reads the OTEL_EXPORTER_OTLP_* variables
// itself, which also covers the URL form of EndpointEnv.
func exporterOptions(endpoint string) ([]otlptracehttp.Option, error) {
	switch {
	case endpoint == "":
		return nil, nil
	case strings.Contains(endpoint, "://"):
		// Same meaning as the base env var: the signal path is appended and
		// the scheme decides TLS.
		u, err := url.Parse(endpoint)
		if err != nil {
			return nil, fmt.Errorf("otlp endpoint %q: %w", endpoint, err)
		}
		u.Path = strings.TrimSuffix(u.Path, "/") + tracesPath
		return []otlptracehttp.Option{otlptracehttp.WithEndpointURL(u.String())}, nil
	default:
		return []otlptracehttp.Option{
			otlptracehttp.WithEndpoint(endpoint),
			otlptracehttp.WithInsecure(),
		}, nil
	}
}

func newTracerProvider(ctx context.Context, endpoint, name, instance string) (*sdktrace.TracerProvider, error) {
	opts, err := exporterOptions(endpoint)
	if err != nil {
		return nil, err
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("otlp exporter: %w", err)
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(name),
		semconv.ServiceVersionKey.String(version),
		semconv.ServiceInstanceIDKey.String(instance),
	)

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter,
			sdktrace.WithBatchTimeout(5*time.Second),
		),
		sdktrace.WithResource(res),
	), nil
}
