package bufferutil

import (
	"bytes"
	"encoding/binary"
)

// Serializer accumulates the little-endian wire encoding of a transaction
// payload.
type Serializer struct {
	buffer *bytes.Buffer
}

func NewSerializer() *Serializer {
	return &Serializer{buffer: new(bytes.Buffer)}
}

func (s *Serializer) Bytes() []byte {
	return s.buffer.Bytes()
}

func (s *Serializer) WriteUint8(val uint8) {
	s.buffer.WriteByte(val)
}

func (s *Serializer) WriteUint32(val uint32) {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, val)
	s.buffer.Write(b)
}

func (s *Serializer) WriteUint64(val uint64) {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, val)
	s.buffer.Write(b)
}

func (s *Serializer) WriteSlice(val []byte) {
	s.buffer.Write(val)
}

// WritePaddedSlice writes val truncated or zero-padded to size bytes.
func (s *Serializer) WritePaddedSlice(val []byte, size int) {
	padded := make([]byte, size)
	copy(padded, val)
	s.buffer.Write(padded)
}
