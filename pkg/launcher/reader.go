package launcher

import (
	"errors"
	"sync"
)

var (
	ErrReaderClosed  = errors.New("output reader is closed")
	ErrOutputMissing = errors.New("output reader has no buffer")
)

// OutputReader is an io.ReadCloser over an OutputBuffer. Each reader keeps
// its own position, so multiple readers can stream the same job
// independently. Read blocks until content is available or the job's output
// is closed, at which point it drains and returns io.EOF.
type OutputReader struct {
	output    *OutputBuffer
	mutex     sync.Mutex
	readIndex int64
	isClosed  bool
}

func NewOutputReader(output *OutputBuffer) *OutputReader {
	return &OutputReader{output: output}
}

func (reader *OutputReader) Read(p []byte) (int, error) {
	reader.mutex.Lock()
	defer reader.mutex.Unlock()

	if reader.isClosed {
		return 0, ErrReaderClosed
	}

	if reader.output == nil {
		return 0, ErrOutputMissing
	}

	if len(p) == 0 {
		return 0, nil
	}

	bytesRead, err := reader.output.ReadAt(p, reader.readIndex)
	if err != nil {
		reader.readIndex += int64(bytesRead)
		return bytesRead, err
	}

	// nothing available yet: wait for new content or close, then retry once
	if bytesRead == 0 {
		reader.output.Wait(reader.readIndex)

		bytesRead, err = reader.output.ReadAt(p, reader.readIndex)
		if err != nil {
			reader.readIndex += int64(bytesRead)
			return bytesRead, err
		}
	}

	reader.readIndex += int64(bytesRead)

	return bytesRead, nil
}

func (reader *OutputReader) Close() error {
	reader.mutex.Lock()
	defer reader.mutex.Unlock()

	if reader.isClosed {
		return ErrReaderClosed
	}

	reader.isClosed = true
	reader.output = nil

	return nil
}
