package argon2

// generateAddresses materializes the data-independent address stream for
// one segment: segmentLength 64-bit pseudo-random values, produced by
// repeatedly compressing an all-zero block against a counter block
// Z = [pass, lane, slice, memoryBlocks, passes, type, counter, 0, ...],
// then compressing that result against the all-zero block again. The
// counter increments once every addressesInBlock (128) values consumed.
// The two-step G(G(Z, 0), 0) shape is ported from golang.org/x/crypto/argon2's
// processSegment address generation, which implements the same stream
// the "i"/"id" variants require.
func generateAddresses(inst *instance, pos position) []uint64 {
	addresses := make([]uint64, inst.segmentLength)

	var counterBlock, zero, cur block
	counterBlock[0] = uint64(pos.pass)
	counterBlock[1] = uint64(pos.lane)
	counterBlock[2] = uint64(pos.slice)
	counterBlock[3] = uint64(inst.memoryBlocks)
	counterBlock[4] = uint64(inst.passes)
	counterBlock[5] = uint64(inst.typ)

	for i := uint32(0); i < inst.segmentLength; i++ {
		if i%addressesInBlock == 0 {
			counterBlock[6]++
			cur = g(&counterBlock, &zero, nil)
			cur = g(&cur, &zero, nil)
		}
		addresses[i] = cur[i%addressesInBlock]
	}
	return addresses
}

// usesDataIndependentAddressing reports whether position pos, within an
// instance of the given type, draws its pseudo-random value from the
// address stream (true) or from the previous block's first word (false):
// always for TypeI, never for TypeD/TypeDS, and for TypeID only during
// the first two slices of pass 0.
func usesDataIndependentAddressing(typ Type, pos position) bool {
	switch typ {
	case TypeI:
		return true
	case TypeID:
		return pos.pass == 0 && pos.slice < syncPoints/2
	default:
		return false
	}
}
