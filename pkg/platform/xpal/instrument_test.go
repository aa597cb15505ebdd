package xpal_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"

	"github.com/omeyang/xpal/pkg/observability/xlog"
	"github.com/omeyang/xpal/pkg/observability/xmetrics"
	"github.com/omeyang/xpal/pkg/platform/xpal"
	"github.com/omeyang/xpal/pkg/platform/xpal/xpalmock"
	"github.com/omeyang/xpal/pkg/util/xdylib"
	"github.com/omeyang/xpal/pkg/util/xfile"
)

type harness struct {
	mock  *xpalmock.MockPlatform
	p     xpal.Platform
	logs  *bytes.Buffer
	spans *tracetest.InMemoryExporter
}

func newHarness(t *testing.T) harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	mock := xpalmock.NewMockPlatform(ctrl)

	var logs bytes.Buffer
	logger, cleanup, err := xlog.New().SetOutput(&logs).SetLevel(xlog.LevelDebug).Build()
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewManualReader()))
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		_ = mp.Shutdown(context.Background())
	})
	obs, err := xmetrics.NewOTelObserver(xmetrics.WithTracerProvider(tp), xmetrics.WithMeterProvider(mp))
	require.NoError(t, err)

	return harness{
		mock:  mock,
		p:     xpal.Instrument(mock, xpal.WithLogger(logger), xpal.WithObserver(obs)),
		logs:  &logs,
		spans: exporter,
	}
}

func TestInstrumentForwardsQueries(t *testing.T) {
	h := newHarness(t)
	m := h.mock.EXPECT()

	m.Clocktime().Return(int64(100))
	m.ClockFrequency().Return(int64(1000))
	m.Sleep(uint32(5))
	m.Log("hello")
	m.Exists("/a").Return(true)
	m.IsDir("/a").Return(true)
	m.IsFile("/a").Return(false)
	m.ModTime("/a").Return(int64(42), nil)
	m.ListFiles("/a").Return([]string{"x"})
	m.ReadDirNames("/a").Return([]string{"x"}, nil)
	m.WorkingDirectory().Return("/wd", nil)
	m.Getenv("HOME").Return("/home/u")
	m.LookupEnv("HOME").Return("/home/u", true)

	p := h.p
	assert.Equal(t, int64(100), p.Clocktime())
	assert.Equal(t, int64(1000), p.ClockFrequency())
	p.Sleep(5)
	p.Log("hello")
	assert.True(t, p.Exists("/a"))
	assert.True(t, p.IsDir("/a"))
	assert.False(t, p.IsFile("/a"))
	mt, err := p.ModTime("/a")
	require.NoError(t, err)
	assert.Equal(t, int64(42), mt)
	assert.Equal(t, []string{"x"}, p.ListFiles("/a"))
	names, err := p.ReadDirNames("/a")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, names)
	wd, err := p.WorkingDirectory()
	require.NoError(t, err)
	assert.Equal(t, "/wd", wd)
	assert.Equal(t, "/home/u", p.Getenv("HOME"))
	v, ok := p.LookupEnv("HOME")
	assert.True(t, ok)
	assert.Equal(t, "/home/u", v)

	assert.Empty(t, h.logs.String(), "查询不应记录日志")
	assert.Empty(t, h.spans.GetSpans(), "查询不应产生 Span")
}

func TestInstrumentMutations(t *testing.T) {
	h := newHarness(t)
	m := h.mock.EXPECT()
	notEmpty := xfile.ErrNotEmpty

	m.CreateFile("/f").Return(nil)
	m.DeleteFile("/f").Return(nil)
	m.CreateDir("/d").Return(nil)
	m.DeleteDir("/d").Return(notEmpty)

	require.NoError(t, h.p.CreateFile("/f"))
	require.NoError(t, h.p.DeleteFile("/f"))
	require.NoError(t, h.p.CreateDir("/d"))
	assert.ErrorIs(t, h.p.DeleteDir("/d"), xfile.ErrNotEmpty)

	logs := h.logs.String()
	for _, op := range []string{xpal.OpCreateFile, xpal.OpDeleteFile, xpal.OpCreateDir, xpal.OpDeleteDir} {
		assert.Contains(t, logs, "operation="+op)
	}
	assert.Contains(t, logs, "level=WARN")
	assert.Contains(t, logs, "component=xpal")

	spans := h.spans.GetSpans()
	require.Len(t, spans, 4)
	assert.Equal(t, "xpal."+xpal.OpDeleteDir, spans[3].Name)
	assert.Equal(t, codes.Error, spans[3].Status.Code)
	assert.Equal(t, codes.Ok, spans[0].Status.Code)
}

func TestInstrumentLibraries(t *testing.T) {
	h := newHarness(t)
	m := h.mock.EXPECT()
	handle := xdylib.Handle(0x1234)

	m.OpenLibrary("libfoo.so").Return(handle, nil)
	m.LookupSymbol(handle, "foo_init").Return(uintptr(0xbeef), nil)
	m.LookupSymbol(handle, "missing").Return(uintptr(0), xdylib.ErrSymbolNotFound)
	m.CloseLibrary(handle).Return(nil)

	got, err := h.p.OpenLibrary("libfoo.so")
	require.NoError(t, err)
	assert.Equal(t, handle, got)

	addr, err := h.p.LookupSymbol(handle, "foo_init")
	require.NoError(t, err)
	assert.Equal(t, uintptr(0xbeef), addr)

	_, err = h.p.LookupSymbol(handle, "missing")
	assert.ErrorIs(t, err, xdylib.ErrSymbolNotFound)
	require.NoError(t, h.p.CloseLibrary(handle))

	assert.Contains(t, h.logs.String(), "symbol=missing")
	assert.Len(t, h.spans.GetSpans(), 4)
}

func TestInstrumentExecute(t *testing.T) {
	h := newHarness(t)
	var out bytes.Buffer

	h.mock.EXPECT().Execute("/bin/tool", "-v", &out).
		DoAndReturn(func(_, _ string, w io.Writer) (int, error) {
			_, _ = io.WriteString(w, "tool output\n")
			return 3, nil
		})

	code, err := h.p.Execute("/bin/tool", "-v", &out)
	require.NoError(t, err)
	assert.Equal(t, 3, code)
	assert.Equal(t, "tool output\n", out.String(), "输出目标应原样传给内层实现")
	assert.Contains(t, h.logs.String(), "exit_code=3")

	spans := h.spans.GetSpans()
	require.Len(t, spans, 1)
	found := false
	for _, kv := range spans[0].Attributes {
		if string(kv.Key) == "exit_code" {
			found = true
			assert.Equal(t, int64(3), kv.Value.AsInt64())
		}
	}
	assert.True(t, found, "Span 应包含退出码")
}

func TestInstrumentExecuteSpawnFailure(t *testing.T) {
	h := newHarness(t)
	spawnErr := errors.New("spawn failed")
	h.mock.EXPECT().Execute("/missing", "", nil).Return(-1, spawnErr)

	code, err := h.p.Execute("/missing", "", nil)
	assert.Equal(t, -1, code)
	assert.ErrorIs(t, err, spawnErr)
	assert.Contains(t, h.logs.String(), "level=WARN")
}

func TestInstrumentDefaults(t *testing.T) {
	xlog.ResetDefault()
	t.Cleanup(xlog.ResetDefault)

	var buf bytes.Buffer
	logger, _, err := xlog.New().SetOutput(&buf).SetLevel(xlog.LevelDebug).Build()
	require.NoError(t, err)
	xlog.SetDefault(logger)

	p := xpal.Instrument(nil)
	dir := t.TempDir()
	require.NoError(t, p.CreateFile(dir+"/x"))
	assert.True(t, p.IsFile(dir+"/x"))
	assert.Contains(t, buf.String(), "operation="+xpal.OpCreateFile, "默认使用全局 Logger")
}
