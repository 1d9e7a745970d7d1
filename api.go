package argon2

// Key, IDKey, DKey and DSKey are thin convenience wrappers around
// Argon2Core, one per Type, in the naming golang.org/x/crypto/argon2
// uses (Key/IDKey) extended to the other two variants this package
// supports. Each allocates the output buffer, builds a Context with the
// given cost parameters and no optional secret/associated data, and
// runs Argon2Core against it — the same shape as dark-bio/crypto-go's
// one-line Key wrapper around x/crypto's IDKey.
//
// time is the number of passes, memory the working-memory size in KiB,
// threads the parallelism degree, and keyLen the desired output length
// in bytes. Lanes and Threads are both set to threads; callers who need
// them to differ should build a Context directly and call Argon2Core.
func Key(password, salt []byte, time, memory uint32, threads uint8, keyLen uint32) ([]byte, error) {
	return deriveKey(TypeI, password, salt, time, memory, threads, keyLen)
}

func IDKey(password, salt []byte, time, memory uint32, threads uint8, keyLen uint32) ([]byte, error) {
	return deriveKey(TypeID, password, salt, time, memory, threads, keyLen)
}

func DKey(password, salt []byte, time, memory uint32, threads uint8, keyLen uint32) ([]byte, error) {
	return deriveKey(TypeD, password, salt, time, memory, threads, keyLen)
}

func DSKey(password, salt []byte, time, memory uint32, threads uint8, keyLen uint32) ([]byte, error) {
	return deriveKey(TypeDS, password, salt, time, memory, threads, keyLen)
}

func deriveKey(typ Type, password, salt []byte, time, memory uint32, threads uint8, keyLen uint32) ([]byte, error) {
	out := make([]byte, keyLen)
	ctx := &Context{
		Out:        out,
		OutLen:     keyLen,
		Password:   password,
		Salt:       salt,
		TimeCost:   time,
		MemoryCost: memory,
		Lanes:      uint32(threads),
		Threads:    uint32(threads),
		Type:       typ,
	}
	if err := Argon2Core(ctx); err != nil {
		return nil, err
	}
	return out, nil
}
