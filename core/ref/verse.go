package ref

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/bibleref/core/errors"
)

// Verse is a single scripture reference: book, chapter, and verse number.
// It is a plain value with no internal pointers, so == compares
// structurally and Verse works as a map key.
type Verse struct {
	Book    Book
	Chapter int
	Verse   int
}

// verseGrammar is the participle grammar for human-readable references.
// Examples: "Gen 1:1", "1 Cor 12:1", "Song of Solomon 2:1", "1cor12:1"
//
type verseGrammar struct {
	BookPrefix string   `parser:"@Int?"`
	BookWords  []string `parser:"@Ident+"`
	Chapter    int      `parser:"@Int"`
	Colon      string   `parser:"':'"`
	Verse      int      `parser:"@Int"`
}

// verseLexer defines the lexer for human-readable references.
var verseLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[A-Za-z]+`},
	{Name: "Punct", Pattern: `[:]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// verseParser is the participle parser for human-readable references.
var verseParser = participle.MustBuild[verseGrammar](
	participle.Lexer(verseLexer),
	participle.Elide("Whitespace"),
)

// NewVerse constructs a Verse from explicit values. The book must be a
// catalog entry; chapter and verse must both be positive. Per-book
// chapter and verse maxima are not enforced.
func NewVerse(book Book, chapter, verse int) (Verse, error) {
	if !book.IsValid() {
		return Verse{}, errors.NewUnknownBook(fmt.Sprintf("Book(%d)", int(book)))
	}
	if chapter < 1 {
		return Verse{}, errors.NewMalformed(
			fmt.Sprintf("%s %d:%d", book.Name(), chapter, verse),
			"chapter must be a positive number")
	}
	if verse < 1 {
		return Verse{}, errors.NewMalformed(
			fmt.Sprintf("%s %d:%d", book.Name(), chapter, verse),
			"verse must be a positive number")
	}
	return Verse{Book: book, Chapter: chapter, Verse: verse}, nil
}

// ParseVerse parses a human-readable reference of the form
// "<book> <chapter>:<verse>". The book token may be any registered name or
// abbreviation ("John", "Jn", "1 Cor", "Rom."); matching is
// case-insensitive. It fails with a MalformedReferenceError when the
// chapter:verse syntax is invalid and an UnknownBookError when the book
// token does not resolve.
func ParseVerse(s string) (Verse, error) {
	raw := s
	// abbreviation periods ("Rom. 1:1") are insignificant
	s = strings.TrimSpace(strings.ReplaceAll(s, ".", " "))
	if s == "" {
		return Verse{}, errors.NewMalformed(raw, "empty reference string")
	}

	parsed, err := verseParser.ParseString("", s)
	if err != nil {
		return Verse{}, errors.NewMalformedWrap(raw,
			`expected "<book> <chapter>:<verse>"`, err)
	}

	token := strings.TrimSpace(parsed.BookPrefix + " " + strings.Join(parsed.BookWords, " "))
	book, err := ParseBook(token)
	if err != nil {
		return Verse{}, err
	}

	return NewVerse(book, parsed.Chapter, parsed.Verse)
}

// Format returns the canonical string form, "<Book> <chapter>:<verse>",
// always using the canonical book name regardless of the abbreviation the
// verse was parsed from.
func (v Verse) Format() string {
	return fmt.Sprintf("%s %d:%d", v.Book.Name(), v.Chapter, v.Verse)
}

// String returns the canonical string form.
func (v Verse) String() string {
	return v.Format()
}

// Describe returns a debug representation exposing the raw field values.
func (v Verse) Describe() string {
	return fmt.Sprintf("ref.Verse{Book: %s(%d), Chapter: %d, Verse: %d}",
		v.Book.Name(), int(v.Book), v.Chapter, v.Verse)
}

// Compare returns -1, 0, or 1 as v orders before, equal to, or after
// other. The order is (book, chapter, verse) under canonical book order.
func (v Verse) Compare(other Verse) int {
	if v.Book != other.Book {
		if v.Book < other.Book {
			return -1
		}
		return 1
	}
	if v.Chapter != other.Chapter {
		if v.Chapter < other.Chapter {
			return -1
		}
		return 1
	}
	if v.Verse != other.Verse {
		if v.Verse < other.Verse {
			return -1
		}
		return 1
	}
	return 0
}

// Less returns true if v orders strictly before other.
func (v Verse) Less(other Verse) bool {
	return v.Compare(other) < 0
}

// Equal returns true if both references name the same verse.
func (v Verse) Equal(other Verse) bool {
	return v == other
}

// MarshalText encodes the verse as its canonical string, so JSON and
// other text encoders carry the same form the package parses.
func (v Verse) MarshalText() ([]byte, error) {
	return []byte(v.Format()), nil
}

// UnmarshalText parses the canonical string form in place.
func (v *Verse) UnmarshalText(text []byte) error {
	parsed, err := ParseVerse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
