// Package pathutil provides path building utilities for tree traversal.
//
// The primary type is [PathBuilder], which uses push/pop semantics to track
// the current location while recursing through nested mappings and
// sequences. Segments are mapping keys (usually strings) or sequence indices
// (ints). Nothing is rendered until a path is actually needed, which during
// matching only happens when a break is recorded.
//
// # PathBuilder Usage
//
// Use [Get] to obtain a pooled PathBuilder, and [Put] to return it:
//
//	path := pathutil.Get()
//	defer pathutil.Put(path)
//
//	path.Push("c")
//	path.Push(0)
//	// ... recurse ...
//	path.Pop()
//	path.Pop()
//
//	if mismatch {
//	    report(path.Segments(), path.String()) // "c[0]"
//	}
//
// # Keys
//
// [Key] encodes a segment list into a string that is unique per path, so
// that int index 0 and string key "0" never collide. It is used to index
// recorded breaks.
package pathutil
