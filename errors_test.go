package argon2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validContext() *Context {
	return &Context{
		Out:        make([]byte, 32),
		OutLen:     32,
		Password:   []byte("password"),
		Salt:       []byte("saltsaltsalt"),
		TimeCost:   2,
		MemoryCost: 8 * 4,
		Lanes:      4,
		Threads:    4,
		Type:       TypeID,
	}
}

func TestValidateInputsAcceptsAValidContext(t *testing.T) {
	t.Parallel()
	require.NoError(t, ValidateInputs(validContext()))
}

func TestValidateInputsRejections(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		mutate  func(*Context)
		wantErr ErrCode
	}{
		{"output too short", func(c *Context) { c.OutLen = 1 }, ErrCodeOutputTooShort},
		{"salt too short", func(c *Context) { c.Salt = []byte("short") }, ErrCodeSaltTooShort},
		{"time cost zero", func(c *Context) { c.TimeCost = 0 }, ErrCodeTimeTooSmall},
		{"lanes zero", func(c *Context) { c.Lanes = 0 }, ErrCodeLanesTooFew},
		{"lanes too many", func(c *Context) { c.Lanes = maxLanes }, ErrCodeLanesTooMany},
		{"threads zero", func(c *Context) { c.Threads = 0 }, ErrCodeThreadsTooFew},
		{"memory too little", func(c *Context) { c.MemoryCost = 1; c.Lanes = 4 }, ErrCodeMemoryTooLittle},
		{"unknown type", func(c *Context) { c.Type = Type(99) }, ErrCodeUnknownType},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctx := validContext()
			tc.mutate(ctx)
			err := ValidateInputs(ctx)
			require.Error(t, err)
			var argErr *Argon2Error
			require.ErrorAs(t, err, &argErr)
			require.Equal(t, tc.wantErr, argErr.Code)
		})
	}
}

func TestArgon2ErrorMessageIsStable(t *testing.T) {
	t.Parallel()
	err := newError(ErrCodeSaltTooShort)
	require.Equal(t, "argon2: salt is below the 8-byte minimum", err.Error())
}
