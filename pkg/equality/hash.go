package equality

import "github.com/vic/eacore/pkg/term"

// hashTerm derives the hash used as a cache key from a term's
// canonical textual form. pkg/term's String() methods already produce
// a faithful, shape-and-index-sensitive rendering of every
// constructor, so hashing that string gives equal hashes for
// annotation-free terms that term.Equals considers equal. String()
// renders Annotation wrappers, which term.Equals ignores, so an
// annotated term and its bare expression hash differently.
func hashTerm(t term.Term) uint64 {
	return fnv1a(t.String())
}

// fnv1a is the 64-bit FNV-1a hash. No library in the example corpus
// supplies one; this is plumbing internal to the cache key, not an
// ambient concern, so the standard algorithm hand-rolled here (rather
// than importing hash/fnv just to wrap a single Write+Sum64 call) is
// the simpler choice.
func fnv1a(s string) uint64 {
	const (
		offset = 14695981039346656037
		prime  = 1099511628211
	)
	h := uint64(offset)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime
	}
	return h
}
