package argon2

import (
	"hash"

	"github.com/dchest/blake2b"
)

// write32 writes v as a little-endian 32-bit unsigned integer to h.
func write32(h hash.Hash, v uint32) {
	var b [4]byte
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	h.Write(b[:])
}

func writeLengthPrefixed(h hash.Hash, b []byte) {
	write32(h, uint32(len(b)))
	h.Write(b)
}

// initialHash computes H0, the 64-byte BLAKE2b-512 pre-hash of every
// input:
//
//	H0 = Blake2b(lanes, outlen, m, t, version, type,
//	             len(P),P, len(S),S, len(K),K, len(X),X)
//
// with every length and fixed field little-endian 32-bit, except when
// inst.version == VersionLegacy, in which case the version field is
// omitted entirely, reproducing a pre-RFC-9106 pre-hash encoding.
func initialHash(ctx *Context, inst *instance) [prehashDigestLength]byte {
	h := blake2b.New512()

	write32(h, inst.lanes)
	write32(h, ctx.OutLen)
	write32(h, ctx.MemoryCost)
	write32(h, ctx.TimeCost)
	if inst.version != VersionLegacy {
		write32(h, uint32(inst.version))
	}
	write32(h, uint32(inst.typ))

	writeLengthPrefixed(h, ctx.Password)
	writeLengthPrefixed(h, ctx.Salt)
	writeLengthPrefixed(h, ctx.Secret)
	writeLengthPrefixed(h, ctx.AssociatedData)

	var h0 [prehashDigestLength]byte
	h.Sum(h0[:0])

	ctx.clearSensitive()
	return h0
}

// fillFirstBlocks seeds B[l][0] and B[l][1] for every lane from H0:
//
//	B[l][0] = H'(1024, H0 || LE32(0) || LE32(l))
//	B[l][1] = H'(1024, H0 || LE32(1) || LE32(l))
func fillFirstBlocks(inst *instance, h0 [prehashDigestLength]byte) {
	var seed [prehashDigestLength + 8]byte
	copy(seed[:], h0[:])

	for lane := uint32(0); lane < inst.lanes; lane++ {
		var buf [blockSize]byte

		seed[prehashDigestLength+4] = byte(lane)
		seed[prehashDigestLength+5] = byte(lane >> 8)
		seed[prehashDigestLength+6] = byte(lane >> 16)
		seed[prehashDigestLength+7] = byte(lane >> 24)

		seed[prehashDigestLength] = 0
		blake2bLong(buf[:], seed[:])
		inst.block(lane, 0).fromBytes(buf[:])

		seed[prehashDigestLength] = 1
		blake2bLong(buf[:], seed[:])
		inst.block(lane, 1).fromBytes(buf[:])
	}
}

// blake2bLong is H', BLAKE2b output-stretched to arbitrary length: a
// chain of BLAKE2b-512 outputs, each previous output feeding the next
// input, taking the first 32 bytes of each intermediate result and the
// full final output, prefixed throughout by the little-endian output
// length.
func blake2bLong(out, in []byte) {
	if len(out) <= blake2b.Size {
		h, err := blake2b.New(&blake2b.Config{Size: uint8(len(out))})
		if err != nil {
			panic("argon2: blake2b.New: " + err.Error())
		}
		write32(h, uint32(len(out)))
		h.Write(in)
		h.Sum(out[:0])
		return
	}

	var buf [blake2b.Size]byte
	h := blake2b.New512()
	write32(h, uint32(len(out)))
	h.Write(in)
	h.Sum(buf[:0])
	copy(out, buf[:32])

	n := 32
	for ; n < len(out)-blake2b.Size; n += 32 {
		h.Reset()
		h.Write(buf[:])
		h.Sum(buf[:0])
		copy(out[n:], buf[:32])
	}
	h.Reset()
	h.Write(buf[:])
	h.Sum(buf[:0])
	copy(out[n:], buf[:])
}

// finalize XOR-folds the last column of blocks across all lanes and
// long-hashes the result into the output tag. It then zeroizes the
// working memory if Context.ClearMemory is set and invokes the host
// free callback, if one was supplied.
func finalize(ctx *Context, inst *instance) {
	c := *inst.block(0, inst.laneLength-1)
	for lane := uint32(1); lane < inst.lanes; lane++ {
		c.xorWith(inst.block(lane, inst.laneLength-1))
	}

	var cBytes [blockSize]byte
	c.toBytes(cBytes[:])
	blake2bLong(ctx.Out[:ctx.OutLen], cBytes[:])

	if ctx.ClearMemory {
		for i := range inst.memory {
			inst.memory[i].zero()
		}
	}
	inst.memory = nil
	if ctx.FreeCbk != nil {
		ctx.FreeCbk(inst.rawAlloc)
	}
}
