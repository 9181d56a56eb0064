package tokenizer

import "sync"

// bufferPool holds scratch []byte buffers used to accumulate a value
// once an escape forces it out of zero-copy mode. Modeled on
// internal/fastparser/pool.go's bufferPool.
var bufferPool = sync.Pool{
	New: func() any {
		return make([]byte, 0, 64)
	},
}

func getBuffer() []byte {
	return bufferPool.Get().([]byte)[:0]
}

func putBuffer(b []byte) {
	const maxRetained = 4096
	if cap(b) > maxRetained {
		return
	}
	bufferPool.Put(b)
}
