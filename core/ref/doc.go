// Package ref provides Bible reference value types: books, single verses,
// and contiguous passages.
//
// # Core Types
//
//   - Book: a book of the Bible with its canonical position, name,
//     abbreviations, and per-chapter verse counts
//   - Verse: a single reference (book, chapter, verse number)
//   - Passage: a contiguous range of verses between two endpoints
//
// All three are immutable values. Verses order by (book, chapter, verse)
// under canonical book order; passages order by (start, end). Because
// nothing is mutated after construction, every operation is safe for
// concurrent use.
//
// # Reference Strings
//
// The human-readable string form is the package's wire format:
//
//	James 2:10              single verse
//	Jn 3:16                 abbreviations accepted on input
//	John 4:3-10             range within one chapter
//	James 2:10-3:4          range across chapters
//	1 John 3:10-2 John 1:7  range across books
//
// Output always uses the canonical book name, so parse and format
// round-trip: ParseVerse(v.Format()) == v.
//
// # Errors
//
// Parsing and construction fail with the typed errors in core/errors:
// UnknownBookError for unresolvable book tokens, MalformedReferenceError
// for bad syntax, and InvalidRangeError when a passage end precedes its
// start. Endpoints are never swapped silently.
//
// # Example
//
//	p, err := ref.ParsePassage("John 4:3-10")
//	if err != nil {
//	    return err
//	}
//	v, _ := ref.ParseVerse("John 4:7")
//	fmt.Println(p.Includes(v)) // true
//	fmt.Println(p.Length())    // 8
package ref
