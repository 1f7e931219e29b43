package mrform

import "blainsmith.com/go/seahash"

// seahashSum64 hashes buf with SeaHash, the same fast non-cryptographic
// hash bio-pamtool uses for BAM content checksums. Used here for the
// dictionary table's startup content fingerprint (SPEC_FULL.md §C.1).
func seahashSum64(buf []byte) uint64 {
	h := seahash.New()
	h.Write(buf)
	return h.Sum64()
}
