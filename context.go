package argon2

import "log/slog"

// AllocateFunc and FreeFunc let a host supply its own memory for the
// working-memory array. They are specified only at this interface; this
// package never implements a concrete allocator beyond Go's own make/GC
// — allocation wrappers are not security-relevant and out of scope here.
// AllocateFunc must return a slice of exactly n blocks' worth of bytes
// (n*1024); FreeFunc releases what the matching AllocateFunc returned.
// Every AllocateFunc call this package makes is paired with exactly one
// FreeFunc call.
type AllocateFunc func(n uint32) ([]byte, error)
type FreeFunc func([]byte)

// Context carries the externally supplied inputs to Argon2Core, matching
// the original C reference's Argon2_Context. Password, salt, and the
// optional secret/associated-data fields may each be up to 2^32-1 bytes.
// Neither Context nor the convenience wrappers in api.go apply defaults:
// the wrappers copy their arguments into a Context as given.
type Context struct {
	Out    []byte // destination for the output tag; must be at least OutLen bytes long
	OutLen uint32

	Password       []byte
	Salt           []byte
	Secret         []byte // optional "pepper"
	AssociatedData []byte // optional

	TimeCost   uint32 // t: number of passes, >= 1
	MemoryCost uint32 // m: memory size in KiB blocks, >= 8*Lanes
	Lanes      uint32 // parallelism degree, in [1, 2^24)
	Threads    uint32 // worker count, clamped to Lanes
	Type       Type

	// ClearPassword and ClearSecret zero Password/Secret after the
	// pre-hash has consumed them.
	ClearPassword bool
	ClearSecret   bool
	// ClearMemory zeroizes the working memory before Finalize frees it.
	ClearMemory bool
	// Print enables structured debug logging of the fill schedule via
	// Logger (or slog.Default() if Logger is nil).
	Print  bool
	Logger *slog.Logger

	// LegacyVersion selects a pre-RFC-9106 pre-hash encoding (version
	// byte 0x10, omitted from the hash rather than included in it).
	// Leave false to get RFC 9106 (0x13) hashes.
	LegacyVersion bool

	AllocateCbk AllocateFunc
	FreeCbk     FreeFunc
}

func (ctx *Context) logger() *slog.Logger {
	if ctx.Logger != nil {
		return ctx.Logger
	}
	return slog.Default()
}

// clearSensitive zeroes Password and/or Secret in place according to the
// ClearPassword/ClearSecret flags. Called once the pre-hash has consumed
// them, and again on any validation-error return path.
func (ctx *Context) clearSensitive() {
	if ctx.ClearPassword {
		zeroBytes(ctx.Password)
	}
	if ctx.ClearSecret {
		zeroBytes(ctx.Secret)
	}
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
