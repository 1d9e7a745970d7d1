package argon2

import "encoding/binary"

// Argon2 operates over a matrix of fixed-size blocks. blockSize is the
// block size in bytes; qwordsInBlock is the same size expressed as the
// number of little-endian 64-bit words a block is interpreted as.
const (
	blockSize     = 1024
	qwordsInBlock = blockSize / 8 // 128
)

// block is a 1024-byte working-memory unit, semantically 128 unsigned
// 64-bit words in little-endian interpretation. Blocks are plain data:
// they never own external resources, and none of their operations do
// bounds checking beyond what indexing into a fixed-size array gives for
// free. Callers are expected to compute indices from known-safe
// arithmetic, per the original C reference's "no bounds checking by
// contract".
type block [qwordsInBlock]uint64

// fill sets every word of b to a value built from repeating byte v eight
// times, matching the C reference's InitBlockValue(b, in).
func (b *block) fill(v uint8) {
	word := uint64(v) * 0x0101010101010101
	for i := range b {
		b[i] = word
	}
}

// copyFrom overwrites b with src's contents (CopyBlock in the C reference).
func (b *block) copyFrom(src *block) {
	*b = *src
}

// xorWith XORs src into b in place (XORBlock in the C reference).
func (b *block) xorWith(src *block) {
	for i := range b {
		b[i] ^= src[i]
	}
}

// xorBlocks returns a new block holding x XOR y, leaving both operands
// untouched. This is the free function the C++ header exposes as
// `block operator^(const block&, const block&)`.
func xorBlocks(x, y *block) block {
	var z block
	for i := range z {
		z[i] = x[i] ^ y[i]
	}
	return z
}

// fromBytes decodes exactly blockSize bytes into b as little-endian
// 64-bit words.
func (b *block) fromBytes(data []byte) {
	for i := range b {
		b[i] = binary.LittleEndian.Uint64(data[i*8:])
	}
}

// toBytes encodes b into exactly blockSize bytes of little-endian
// 64-bit words, writing into dst (which must be at least blockSize long).
func (b *block) toBytes(dst []byte) {
	for i, v := range b {
		binary.LittleEndian.PutUint64(dst[i*8:], v)
	}
}

// zero clears every word of b. Used to wipe sensitive working memory when
// Context.ClearMemory is set.
func (b *block) zero() {
	for i := range b {
		b[i] = 0
	}
}
