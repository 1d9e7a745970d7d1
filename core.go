package argon2

// Argon2Core runs the full algorithm: validate ctx, derive an instance,
// compute H0 and the first two blocks of every lane, fill the remaining
// working memory pass by pass, and fold the result into ctx.Out. It is
// the single entry point every convenience wrapper in api.go calls.
//
// Argon2Core writes nothing to ctx.Out on any error return, and zeroizes
// ctx.Password/ctx.Secret on every path (success or failure) for which
// the caller set the corresponding Clear flag.
func Argon2Core(ctx *Context) error {
	if err := ValidateInputs(ctx); err != nil {
		ctx.clearSensitive()
		return err
	}
	if uint32(len(ctx.Out)) < ctx.OutLen {
		ctx.clearSensitive()
		return newError(ErrCodeOutputNull)
	}

	inst, err := newInstance(ctx)
	if err != nil {
		ctx.clearSensitive()
		return err
	}

	h0 := initialHash(ctx, inst) // also clears sensitive inputs
	fillFirstBlocks(inst, h0)
	fillMemory(inst)
	finalize(ctx, inst)
	return nil
}
