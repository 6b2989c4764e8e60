package handler

import (
	"bytes"
	"sync"
)

// initialBufferSize fits a search page of a few dozen items
const initialBufferSize = 2048

// bufferPool reuses encode buffers across responses
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer drops oversized buffers so one large response does not pin memory
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*initialBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
