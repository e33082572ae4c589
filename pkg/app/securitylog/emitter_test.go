package securitylog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/NeuralTrust/RiskGate/pkg/domain/securityevent"
	"github.com/NeuralTrust/RiskGate/pkg/domain/securityevent/mocks"
	"github.com/NeuralTrust/RiskGate/pkg/infra/worker"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordingExporter struct {
	mu     sync.Mutex
	events []*securityevent.SecurityEvent
	err    error
}

func (r *recordingExporter) Name() string { return "recording" }
func (r *recordingExporter) Close()       {}

func (r *recordingExporter) Export(_ context.Context, event *securityevent.SecurityEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return r.err
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)
	return l
}

func newEvent() *securityevent.SecurityEvent {
	return securityevent.New(
		securityevent.TypeSuspiciousRequest,
		securityevent.SeverityMedium,
		"198.51.100.7", nil, "Suspicious request", nil, time.Now(),
	)
}

func TestEmitter_PersistsAndExports(t *testing.T) {
	repo := mocks.NewRepository(t)
	event := newEvent()
	repo.EXPECT().Create(mock.Anything, event).Return(nil)

	exp := &recordingExporter{}
	w := worker.NewWorker(testLogger(), 10)
	w.StartWorkers(1)

	e := NewEmitter(testLogger(), repo, w, exp)
	require.NoError(t, e.Emit(context.Background(), event))
	w.Shutdown()

	require.Len(t, exp.events, 1)
	assert.Equal(t, event.ID, exp.events[0].ID)
}

func TestEmitter_PersistFailureSkipsExport(t *testing.T) {
	repo := mocks.NewRepository(t)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db down"))

	exp := &recordingExporter{}
	w := worker.NewWorker(testLogger(), 10)
	w.StartWorkers(1)

	e := NewEmitter(testLogger(), repo, w, exp)
	err := e.Emit(context.Background(), newEvent())
	w.Shutdown()

	assert.ErrorContains(t, err, "db down")
	assert.Empty(t, exp.events)
}

func TestEmitter_ExportErrorIsNotReturned(t *testing.T) {
	repo := mocks.NewRepository(t)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	exp := &recordingExporter{err: errors.New("broker unavailable")}
	w := worker.NewWorker(testLogger(), 10)
	w.StartWorkers(1)

	e := NewEmitter(testLogger(), repo, w, exp)
	assert.NoError(t, e.Emit(context.Background(), newEvent()))
	w.Shutdown()
	assert.Len(t, exp.events, 1)
}
