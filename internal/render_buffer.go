package internal

import (
	"bytes"
	"io"
)

const initialRenderBufferCapacity = 512

// RenderBuffer accumulates one frame before a single write to the terminal. The allocation
// is reused across frames, and a zero byte always follows the last written byte.
type RenderBuffer struct {
	data  []byte // len(data) is the capacity.
	index int
}

func NewRenderBuffer(capacity int) *RenderBuffer {
	if capacity < 1 {
		capacity = initialRenderBufferCapacity
	}
	return &RenderBuffer{data: make([]byte, capacity)}
}

func (rb *RenderBuffer) Append(p []byte) {
	rb.grow(len(p))
	copy(rb.data[rb.index:], p)
	rb.index += len(p)
	rb.data[rb.index] = 0
}

func (rb *RenderBuffer) AppendString(s string) {
	rb.grow(len(s))
	copy(rb.data[rb.index:], s)
	rb.index += len(s)
	rb.data[rb.index] = 0
}

// grow doubles the capacity until n more bytes plus the sentinel fit.
func (rb *RenderBuffer) grow(n int) {
	for rb.index+n >= len(rb.data) {
		grown := make([]byte, len(rb.data)*2)
		copy(grown, rb.data[:rb.index])
		rb.data = grown
	}
}

func (rb *RenderBuffer) Write(p []byte) (int, error) {
	rb.Append(p)
	return len(p), nil
}

// Reset starts a new frame. The underlying allocation is kept.
func (rb *RenderBuffer) Reset() {
	rb.index = 0
	rb.data[0] = 0
}

// Flush writes the used portion of the buffer in a single call.
func (rb *RenderBuffer) Flush(w io.Writer) error {
	_, err := w.Write(rb.data[:rb.index])
	return err
}

// TrimSuffix drops suffix from the end of the buffer if it is there. Reports whether it was.
func (rb *RenderBuffer) TrimSuffix(suffix string) bool {
	if !bytes.HasSuffix(rb.data[:rb.index], []byte(suffix)) {
		return false
	}
	rb.index -= len(suffix)
	rb.data[rb.index] = 0
	return true
}

func (rb *RenderBuffer) Bytes() []byte {
	return rb.data[:rb.index]
}

func (rb *RenderBuffer) Len() int {
	return rb.index
}

func (rb *RenderBuffer) Cap() int {
	return len(rb.data)
}
