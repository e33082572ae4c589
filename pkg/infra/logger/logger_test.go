package logger

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bufferCloser struct {
	mu     sync.Mutex
	buf    bytes.Buffer
	closed bool
}

func (b *bufferCloser) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *bufferCloser) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	return nil
}

func (b *bufferCloser) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestAsyncWriter_FlushesOnClose(t *testing.T) {
	out := &bufferCloser{}
	w := NewAsyncWriter(out, 1024)

	n, err := w.Write([]byte("first\n"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	_, _ = w.Write([]byte("second\n"))

	require.NoError(t, w.Close())
	assert.Equal(t, "first\nsecond\n", out.String())
	assert.True(t, out.closed)
	assert.NoError(t, w.Close())
}

func TestConsoleHook_WritesFormattedEntry(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetOutput(&bytes.Buffer{})
	l.AddHook(NewConsoleHook(&buf))

	l.WithField("ip", "10.0.0.1").Warn("advisory")

	assert.True(t, strings.Contains(buf.String(), `"ip":"10.0.0.1"`))
	assert.True(t, strings.Contains(buf.String(), `"msg":"advisory"`))
}

func TestLevelFromEnv(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, levelFromEnv("debug"))
	assert.Equal(t, logrus.WarnLevel, levelFromEnv("WARN"))
	assert.Equal(t, logrus.InfoLevel, levelFromEnv(""))
	assert.Equal(t, "worker.log", fileNameFor("worker"))
	assert.Equal(t, "proxy.log", fileNameFor("anything"))
}
