package argon2

import "log/slog"

// Type selects the reference-block addressing policy and, for TypeDS,
// whether the compression function mixes in an S-box.
//
// The numeric values follow RFC 9106 (d=0, i=1, id=2); ds=4 is
// non-standard, kept for compatibility with a pre-RFC codebase. Argon2_di
// from an older reference header is a synonym of TypeID and is not given
// its own constant.
type Type uint32

const (
	TypeD  Type = 0
	TypeI  Type = 1
	TypeID Type = 2
	TypeDS Type = 4
)

func (t Type) String() string {
	switch t {
	case TypeD:
		return "Argon2d"
	case TypeI:
		return "Argon2i"
	case TypeID:
		return "Argon2id"
	case TypeDS:
		return "Argon2ds"
	default:
		return "Argon2<unknown>"
	}
}

const (
	// syncPoints is the number of slices each lane is split into per pass.
	syncPoints = 4

	// addressesInBlock is the number of (J1, J2) address pairs produced by
	// one refill of the data-independent address stream (two applications
	// of G per counter value).
	addressesInBlock = qwordsInBlock

	// prehashDigestLength is the size in bytes of H0, the BLAKE2b-512
	// pre-hash of all inputs.
	prehashDigestLength = 64

	// VersionRFC9106 is the version byte this package targets by default.
	VersionRFC9106 uint8 = 0x13

	// VersionLegacy is the version byte a pre-RFC-9106 pre-hash used,
	// predating RFC 9106. Context.LegacyVersion selects it.
	VersionLegacy uint8 = 0x10
)

// instance is the invariant tuple for one hash computation: the working
// memory, the derived sizing, and the type/debug configuration. All
// fields except sb and the contents of memory are immutable once
// newInstance returns.
type instance struct {
	memory   []block
	rawAlloc []byte // non-nil iff Context.AllocateCbk was set

	passes        uint32
	memoryBlocks  uint32
	segmentLength uint32
	laneLength    uint32
	lanes         uint32
	threads       uint32
	typ           Type
	version       uint8

	sb *sbox // non-nil iff typ == TypeDS

	debug bool
	log   *slog.Logger
}

// position is a cursor (pass, lane, slice, index) identifying the next
// block fillSegment is to write.
type position struct {
	pass  uint32
	lane  uint32
	slice uint32
	index uint32
}

// newInstance derives the working-memory sizing from the validated
// context and allocates the memory array. ctx must already have passed
// ValidateInputs. If ctx.AllocateCbk is set, it is consulted (and paired
// with ctx.FreeCbk in finalize) so that host allocators are always called
// symmetrically; this package still backs the block array itself with
// make, since reinterpreting host-supplied bytes as []block safely would
// require unsafe code the rest of this module has no other use for.
func newInstance(ctx *Context) (inst *instance, err error) {
	defer func() {
		if r := recover(); r != nil {
			inst, err = nil, newError(ErrCodeMemoryAllocation)
		}
	}()

	lanes := ctx.Lanes
	threads := ctx.Threads
	if threads > lanes {
		threads = lanes
	}

	// m' = 4*lanes*floor(m / (4*lanes))
	segmentLength := ctx.MemoryCost / (syncPoints * lanes)
	laneLength := segmentLength * syncPoints
	memoryBlocks := laneLength * lanes

	version := VersionRFC9106
	if ctx.LegacyVersion {
		version = VersionLegacy
	}

	var rawAlloc []byte
	if ctx.AllocateCbk != nil {
		rawAlloc, err = ctx.AllocateCbk(memoryBlocks)
		if err != nil {
			return nil, newError(ErrCodeMemoryAllocation)
		}
	}

	inst = &instance{
		memory:        make([]block, memoryBlocks),
		rawAlloc:      rawAlloc,
		passes:        ctx.TimeCost,
		memoryBlocks:  memoryBlocks,
		segmentLength: segmentLength,
		laneLength:    laneLength,
		lanes:         lanes,
		threads:       threads,
		typ:           ctx.Type,
		version:       version,
		debug:         ctx.Print,
		log:           ctx.logger(),
	}
	if ctx.Type == TypeDS {
		inst.sb = new(sbox)
	}
	return inst, nil
}

// block returns a pointer to the block at absolute lane/column position.
func (inst *instance) block(lane, col uint32) *block {
	return &inst.memory[lane*inst.laneLength+col]
}
