package logger

import (
	"bufio"
	"fmt"
	"io"
	"sync"
	"time"
)

// AsyncWriter buffers log lines in memory and flushes them to the underlying
// writer from a single goroutine. Lines are dropped when the queue is full.
type AsyncWriter struct {
	out     io.WriteCloser
	writer  *bufio.Writer
	mu      sync.Mutex
	logChan chan []byte
	done    chan struct{}
	stopped chan struct{}
	once    sync.Once
}

func NewAsyncWriter(out io.WriteCloser, bufferSize int) *AsyncWriter {
	aw := &AsyncWriter{
		out:     out,
		writer:  bufio.NewWriterSize(out, bufferSize),
		logChan: make(chan []byte, 1000),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go aw.processLogs()
	return aw
}

func (aw *AsyncWriter) Write(p []byte) (int, error) {
	select {
	case aw.logChan <- append([]byte{}, p...):
	default:
	}
	return len(p), nil
}

func (aw *AsyncWriter) processLogs() {
	defer close(aw.stopped)
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case line := <-aw.logChan:
			aw.write(line)
		case <-ticker.C:
			aw.flush()
		case <-aw.done:
			for {
				select {
				case line := <-aw.logChan:
					aw.write(line)
				default:
					aw.flush()
					return
				}
			}
		}
	}
}

func (aw *AsyncWriter) write(line []byte) {
	aw.mu.Lock()
	defer aw.mu.Unlock()
	if _, err := aw.writer.Write(line); err != nil {
		fmt.Println("error writing log data", err)
	}
}

func (aw *AsyncWriter) flush() {
	aw.mu.Lock()
	defer aw.mu.Unlock()
	_ = aw.writer.Flush()
}

// Close drains pending lines and closes the underlying writer.
func (aw *AsyncWriter) Close() error {
	var err error
	aw.once.Do(func() {
		close(aw.done)
		<-aw.stopped
		err = aw.out.Close()
	})
	return err
}
