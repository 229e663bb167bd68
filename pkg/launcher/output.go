package launcher

import (
	"errors"
	"io"
	"sync"
)

var (
	// ErrOutputClosed is returned when writing to a closed OutputBuffer.
	ErrOutputClosed = errors.New("cannot write to closed output")
	// ErrOffsetOutOfRange is returned when reading past the end of the
	// buffered content.
	ErrOffsetOutOfRange = errors.New("offset is greater than the length of the content")
)

// OutputBuffer collects the combined stdout and stderr of a running job. It
// may be written from the job's process and read from any number of
// streaming readers concurrently; readers can block until more content
// arrives or the buffer is closed.
type OutputBuffer struct {
	content  []byte
	isClosed bool
	mutex    sync.RWMutex
	// cond lets readers wait for new content or for Close
	cond *sync.Cond
}

func NewOutputBuffer() *OutputBuffer {
	buffer := &OutputBuffer{}
	buffer.cond = sync.NewCond(&buffer.mutex)
	return buffer
}

// Write appends p to the buffered content and wakes any waiting readers.
func (buffer *OutputBuffer) Write(p []byte) (int, error) {
	buffer.mutex.Lock()
	defer buffer.mutex.Unlock()

	if buffer.isClosed {
		return 0, ErrOutputClosed
	}

	buffer.content = append(buffer.content, p...)
	buffer.cond.Broadcast()

	return len(p), nil
}

// ReadAt copies buffered content starting at off into p without blocking.
// io.EOF is returned once the buffer is closed and fully consumed.
func (buffer *OutputBuffer) ReadAt(p []byte, off int64) (int, error) {
	buffer.mutex.RLock()
	defer buffer.mutex.RUnlock()

	if off > int64(len(buffer.content)) {
		return 0, ErrOffsetOutOfRange
	}

	copied := copy(p, buffer.content[off:])

	if buffer.isClosed && int64(copied)+off == int64(len(buffer.content)) {
		return copied, io.EOF
	}

	return copied, nil
}

// Wait blocks until content beyond off is available or the buffer is closed.
func (buffer *OutputBuffer) Wait(off int64) {
	buffer.mutex.Lock()
	defer buffer.mutex.Unlock()

	for !buffer.isClosed && off >= int64(len(buffer.content)) {
		buffer.cond.Wait()
	}
}

// Bytes returns a copy of everything buffered so far.
func (buffer *OutputBuffer) Bytes() []byte {
	buffer.mutex.RLock()
	defer buffer.mutex.RUnlock()

	snapshot := make([]byte, len(buffer.content))
	copy(snapshot, buffer.content)
	return snapshot
}

// Close marks the buffer complete, unblocking all readers. Further writes
// fail with ErrOutputClosed.
func (buffer *OutputBuffer) Close() error {
	buffer.mutex.Lock()
	defer buffer.mutex.Unlock()

	buffer.isClosed = true
	buffer.cond.Broadcast()

	return nil
}
