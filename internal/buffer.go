package internal

import "sync"

// Pool bounds for byte slices; larger buffers are left to the GC
const (
	minPooledCap = 256
	maxPooledCap = 32 * 1024
)

var byteSlicePool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 1024)
		return &b
	},
}

// GetByteSlice gets an empty byte slice from the pool
func GetByteSlice() *[]byte {
	b := byteSlicePool.Get().(*[]byte)
	*b = (*b)[:0]
	return b
}

// PutByteSlice returns a byte slice to the pool
func PutByteSlice(b *[]byte) {
	if b == nil {
		return
	}
	c := cap(*b)
	if c >= minPooledCap && c <= maxPooledCap {
		*b = (*b)[:0]
		byteSlicePool.Put(b)
	}
}
