package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestSetup_NoEndpointNoFile(t *testing.T) {
	t.Setenv(EndpointEnv, "")

	tel, err := Setup(context.Background(), Options{})
	require.NoError(t, err)
	assert.False(t, tel.Tracing())
	require.NotNil(t, tel.Logger)
	tel.Logger.Info("dropped")
	assert.NoError(t, tel.Shutdown(context.Background()))
}

func TestSetup_LogFile(t *testing.T) {
	t.Setenv(EndpointEnv, "")
	path := filepath.Join(t.TempDir(), "couchpotato.log")

	tel, err := Setup(context.Background(), Options{LogFile: path})
	require.NoError(t, err)
	tel.Logger.Info("section selected", "section", "Shows")
	tel.Logger.Debug("hidden at info level")
	require.NoError(t, tel.Shutdown(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "section selected")
	assert.Contains(t, string(data), "section=Shows")
	assert.Contains(t, string(data), "session="+tel.SessionID)
	assert.NotContains(t, string(data), "hidden at info level")
}

func TestSetup_DebugLevel(t *testing.T) {
	t.Setenv(EndpointEnv, "")
	path := filepath.Join(t.TempDir(), "debug.log")

	tel, err := Setup(context.Background(), Options{LogFile: path, Debug: true})
	require.NoError(t, err)
	tel.Logger.Debug("poster placeholder", "url", "tipa bolvanka")
	require.NoError(t, tel.Shutdown(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "level=DEBUG")
}

func TestSetup_BadLogFile(t *testing.T) {
	_, err := Setup(context.Background(), Options{LogFile: filepath.Join(t.TempDir(), "missing", "x.log")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open log file")
}

func TestSetup_EndpointInstallsProvider(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	tel, err := Setup(context.Background(), Options{Endpoint: "localhost:4318", ServiceName: "couchpotato-test"})
	require.NoError(t, err)
	assert.True(t, tel.Tracing())
	assert.Same(t, tel.tracerProvider, otel.GetTracerProvider())

	require.NoError(t, tel.Shutdown(context.Background()))
	assert.False(t, tel.Tracing())
}

// collector counts OTLP/HTTP trace posts.
func collector(t *testing.T) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/v1/traces" {
			hits.Add(1)
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func exportOneSpan(t *testing.T, opts Options) string {
	t.Helper()
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
	opts.LogFile = filepath.Join(t.TempDir(), "export.log")

	tel, err := Setup(context.Background(), opts)
	require.NoError(t, err)
	require.True(t, tel.Tracing())

	_, span := otel.Tracer("couchpotato/test").Start(context.Background(), "nav.SelectTab")
	span.End()
	require.NoError(t, tel.Shutdown(context.Background()))

	data, err := os.ReadFile(opts.LogFile)
	require.NoError(t, err)
	return string(data)
}

func TestSetup_ExportsToEndpointURL(t *testing.T) {
	t.Setenv(EndpointEnv, "")
	srv, hits := collector(t)

	logs := exportOneSpan(t, Options{Endpoint: srv.URL})
	assert.EqualValues(t, 1, hits.Load())
	assert.NotContains(t, logs, "level=ERROR")
}

func TestSetup_ExportsToEndpointFromEnv(t *testing.T) {
	srv, hits := collector(t)
	t.Setenv(EndpointEnv, srv.URL)
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "")

	logs := exportOneSpan(t, Options{})
	assert.EqualValues(t, 1, hits.Load())
	assert.NotContains(t, logs, "level=ERROR")
}

func TestExporterOptions(t *testing.T) {
	opts, err := exporterOptions("")
	require.NoError(t, err)
	assert.Empty(t, opts)

	opts, err = exporterOptions("localhost:4318")
	require.NoError(t, err)
	assert.Len(t, opts, 2)

	opts, err = exporterOptions("https://collector.example:4318/otlp/")
	require.NoError(t, err)
	assert.Len(t, opts, 1)

	_, err = exporterOptions("http://bad host:4318")
	assert.ErrorContains(t, err, "otlp endpoint")
}

func TestSetup_SessionIDPerRun(t *testing.T) {
	t.Setenv(EndpointEnv, "")
	a, err := Setup(context.Background(), Options{})
	require.NoError(t, err)
	b, err := Setup(context.Background(), Options{})
	require.NoError(t, err)

	_, err = uuid.Parse(a.SessionID)
	assert.NoError(t, err)
	assert.NotEqual(t, a.SessionID, b.SessionID)
}

func TestNewNoop(t *testing.T) {
	tel := NewNoop()
	assert.False(t, tel.Tracing())
	assert.NoError(t, tel.Shutdown(context.Background()))
}
