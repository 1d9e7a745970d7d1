/*

Package argon2 implements the Argon2 memory-hard password hashing and key
derivation family, as specified in

	https://password-hashing.net/submissions/specs/Argon-v3.pdf

and refined by RFC 9106.

Argon2 comes in four flavors, selected by a Type passed to Argon2Core or one
of the convenience wrappers in api.go:

Argon2d uses data-dependent memory access. It is the fastest and most
resistant to GPU time-memory tradeoff attacks, but the data-dependent access
pattern makes it unsuitable for hashing secrets an attacker can observe the
timing of, due to potential side-channel leakage.

Argon2i uses data-independent memory access, making it suitable for hashing
passwords and password-based key derivation where side-channel resistance
matters more than tradeoff resistance.

Argon2id is a hybrid: data-independent access for the first half of the
first pass, data-dependent for the rest. It is the variant RFC 9106
recommends for most password-hashing uses.

Argon2ds is a non-standard variant. It behaves like Argon2d but adds a
per-call lookup table (an "S-box") derived from the working memory itself,
mixed into the compression function to add data-dependent latency and
multiplication chains.

This package implements only the core memory-hard function: it allocates a
working memory, fills it under a parallel schedule of passes, slices, and
lanes, and folds the result into an output tag. It does not provide a PHC
string encoder, a command-line tool, or a benchmark harness; those are out
of scope by design.

*/
package argon2
