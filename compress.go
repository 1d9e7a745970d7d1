package argon2

// g is the compression function G(X, Y) -> Z: a keyless permutation on
// the XOR of two blocks, built from two passes of the blamka round. Row
// and column traversal order follows golang.org/x/crypto/argon2's
// processBlockGeneric; the round itself is kubernetes/kubernetes's
// vendored blamkaGeneric, reorganized here around the 16-word round type
// shared with blamka.go.
//
// If sb is non-nil (the "ds" variant), the Transform pass (transformDS) is
// applied after the column pass and before the final XOR.
func g(x, y *block, sb *sbox) block {
	var r block
	for i := range r {
		r[i] = x[i] ^ y[i]
	}
	orig := r

	// Step 2: apply round P to each of the 8 rows (16 consecutive words).
	for i := 0; i < qwordsInBlock; i += 16 {
		var v [16]uint64
		copy(v[:], r[i:i+16])
		round(&v)
		copy(r[i:i+16], v[:])
	}

	// Step 3: apply round P to each of the 8 columns. Column c gathers
	// word pair (c, c+1) from each of the 8 rows.
	for c := 0; c < 16; c += 2 {
		v := [16]uint64{
			r[c], r[c+1],
			r[16+c], r[16+c+1],
			r[32+c], r[32+c+1],
			r[48+c], r[48+c+1],
			r[64+c], r[64+c+1],
			r[80+c], r[80+c+1],
			r[96+c], r[96+c+1],
			r[112+c], r[112+c+1],
		}
		round(&v)
		r[c], r[c+1] = v[0], v[1]
		r[16+c], r[16+c+1] = v[2], v[3]
		r[32+c], r[32+c+1] = v[4], v[5]
		r[48+c], r[48+c+1] = v[6], v[7]
		r[64+c], r[64+c+1] = v[8], v[9]
		r[80+c], r[80+c+1] = v[10], v[11]
		r[96+c], r[96+c+1] = v[12], v[13]
		r[112+c], r[112+c+1] = v[14], v[15]
	}

	if sb != nil {
		transformDS(&r, sb)
	}

	// Step 4: Z = R' XOR (X XOR Y).
	for i := range r {
		r[i] ^= orig[i]
	}
	return r
}

// transformSteps is the number of sequential S-box lookups the "ds"
// Transform performs.
const transformSteps = 96

// transformOrder is the fixed word traversal the Transform mixes into.
// The Argon2-DS paper's precise traversal isn't in the retrieval pack, so
// this package uses a stride-37 permutation of the 128 word indices
// (37 is coprime with 128, so successive steps never repeat a word within
// one Transform call); the first transformSteps entries are used here.
// The order is fixed, so every call mixes into the same 96 words; the
// other 32 words of the block are not touched by the Transform.
var transformOrder = func() [transformSteps]int {
	var order [transformSteps]int
	idx := 0
	for i := range order {
		order[i] = idx
		idx = (idx + 37) % qwordsInBlock
	}
	return order
}()

// transformDS mixes the ds variant's S-box into r, seeded from r[0] (R'[0]
// in spec notation). Each step folds the running word x into one entry of
// r chosen by transformOrder.
func transformDS(r *block, sb *sbox) {
	x := r[0]
	for _, idx := range transformOrder {
		x = uint64(uint32(x))*uint64(uint32(x>>32)) + sb[x&sboxMask]
		r[idx] ^= x
	}
}
