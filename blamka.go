package argon2

// blamka is the BLAKE2b quarter-round GB, modified per the Argon2 design by
// doubling the low-32-bit product term before each addition. It mutates
// its four word arguments in place.
//
//	a = a + b + 2*lo32(a)*lo32(b)
//	d = rotr64(d ^ a, 32)
//	c = c + d + 2*lo32(c)*lo32(d)
//	b = rotr64(b ^ c, 24)
//	a = a + b + 2*lo32(a)*lo32(b)
//	d = rotr64(d ^ a, 16)
//	c = c + d + 2*lo32(c)*lo32(d)
//	b = rotr64(b ^ c, 63)
func blamka(a, b, c, d *uint64) {
	*a += *b + 2*uint64(uint32(*a))*uint64(uint32(*b))
	*d ^= *a
	*d = *d>>32 | *d<<32
	*c += *d + 2*uint64(uint32(*c))*uint64(uint32(*d))
	*b ^= *c
	*b = *b>>24 | *b<<40

	*a += *b + 2*uint64(uint32(*a))*uint64(uint32(*b))
	*d ^= *a
	*d = *d>>16 | *d<<48
	*c += *d + 2*uint64(uint32(*c))*uint64(uint32(*d))
	*b ^= *c
	*b = *b>>63 | *b<<1
}

// round applies blamka to the four columns, then the four diagonals, of
// the 4x4 arrangement of the 16 words in v. This is the round function P,
// invoked once per row and once per column of G's 8x8 cell matrix.
func round(v *[16]uint64) {
	blamka(&v[0], &v[4], &v[8], &v[12])
	blamka(&v[1], &v[5], &v[9], &v[13])
	blamka(&v[2], &v[6], &v[10], &v[14])
	blamka(&v[3], &v[7], &v[11], &v[15])

	blamka(&v[0], &v[5], &v[10], &v[15])
	blamka(&v[1], &v[6], &v[11], &v[12])
	blamka(&v[2], &v[7], &v[8], &v[13])
	blamka(&v[3], &v[4], &v[9], &v[14])
}
