package argon2

import "fmt"

// ErrCode enumerates the distinct validation and runtime failure
// conditions, mirroring the Argon2_ErrorCodes taxonomy the original C
// headers return as plain ints. Go callers should
// prefer errors.As against *Argon2Error and switch on Code, in the idiom
// golang.org/x/crypto/argon2 uses for its own typed errors
// (ErrPasswordTooLong, ErrSecretTooLong).
type ErrCode int

const (
	ErrCodeOutputNull ErrCode = iota + 1
	ErrCodeOutputTooShort
	ErrCodeOutputTooLong
	ErrCodePasswordTooLong
	ErrCodeSaltTooShort
	ErrCodeSaltTooLong
	ErrCodeSecretTooLong
	ErrCodeAssociatedDataTooLong
	ErrCodeTimeTooSmall
	ErrCodeMemoryTooLittle
	ErrCodeLanesTooFew
	ErrCodeLanesTooMany
	ErrCodeThreadsTooFew
	ErrCodeUnknownType
	ErrCodeMemoryAllocation
	ErrCodeThreadFail
)

var errCodeText = map[ErrCode]string{
	ErrCodeOutputNull:            "output pointer is nil",
	ErrCodeOutputTooShort:        "output length is below the 4-byte minimum",
	ErrCodeOutputTooLong:         "output length exceeds 2^32-1 bytes",
	ErrCodePasswordTooLong:       "password exceeds 2^32-1 bytes",
	ErrCodeSaltTooShort:          "salt is below the 8-byte minimum",
	ErrCodeSaltTooLong:           "salt exceeds 2^32-1 bytes",
	ErrCodeSecretTooLong:         "secret exceeds 2^32-1 bytes",
	ErrCodeAssociatedDataTooLong: "associated data exceeds 2^32-1 bytes",
	ErrCodeTimeTooSmall:          "time cost must be at least 1",
	ErrCodeMemoryTooLittle:       "memory cost must be at least 8 * lanes",
	ErrCodeLanesTooFew:           "lanes must be at least 1",
	ErrCodeLanesTooMany:          "lanes must be below 2^24",
	ErrCodeThreadsTooFew:         "threads must be at least 1",
	ErrCodeUnknownType:           "unknown Argon2 type",
	ErrCodeMemoryAllocation:      "failed to allocate working memory",
	ErrCodeThreadFail:            "failed to start a fill worker",
}

// Argon2Error is the error type every failure path out of this package
// returns. On any error path, Argon2Core writes nothing to the caller's
// output buffer.
type Argon2Error struct {
	Code ErrCode
}

func (e *Argon2Error) Error() string {
	msg, ok := errCodeText[e.Code]
	if !ok {
		return fmt.Sprintf("argon2: unknown error code %d", int(e.Code))
	}
	return "argon2: " + msg
}

func newError(code ErrCode) error {
	return &Argon2Error{Code: code}
}

const (
	maxLength   = (1 << 32) - 1
	minOutLen   = 4
	minSaltLen  = 8
	minTimeCost = 1
	maxLanes    = 1 << 24
)

// ValidateInputs rejects any Context whose parameters fall outside the
// allowed ranges: a nil-equivalent required slice, an output length,
// salt length, or cost parameter outside the allowed range, m_cost < 8 *
// lanes, zero lanes, an unknown type, or an input length exceeding
// 2^32-1. It returns a distinct *Argon2Error per condition and is called
// first, before any allocation, by Argon2Core.
func ValidateInputs(ctx *Context) error {
	if ctx.OutLen < minOutLen {
		return newError(ErrCodeOutputTooShort)
	}
	if uint64(ctx.OutLen) > maxLength {
		return newError(ErrCodeOutputTooLong)
	}
	if uint32(len(ctx.Out)) < ctx.OutLen {
		return newError(ErrCodeOutputNull)
	}
	if len(ctx.Password) > maxLength {
		return newError(ErrCodePasswordTooLong)
	}
	if len(ctx.Salt) < minSaltLen {
		return newError(ErrCodeSaltTooShort)
	}
	if len(ctx.Salt) > maxLength {
		return newError(ErrCodeSaltTooLong)
	}
	if len(ctx.Secret) > maxLength {
		return newError(ErrCodeSecretTooLong)
	}
	if len(ctx.AssociatedData) > maxLength {
		return newError(ErrCodeAssociatedDataTooLong)
	}
	if ctx.TimeCost < minTimeCost {
		return newError(ErrCodeTimeTooSmall)
	}
	if ctx.Lanes < 1 {
		return newError(ErrCodeLanesTooFew)
	}
	if ctx.Lanes >= maxLanes {
		return newError(ErrCodeLanesTooMany)
	}
	if ctx.Threads < 1 {
		return newError(ErrCodeThreadsTooFew)
	}
	if ctx.MemoryCost < 8*ctx.Lanes {
		return newError(ErrCodeMemoryTooLittle)
	}
	switch ctx.Type {
	case TypeD, TypeI, TypeID, TypeDS:
	default:
		return newError(ErrCodeUnknownType)
	}
	return nil
}
