package ref

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/FocuswithJustin/bibleref/core/errors"
)

// Passage is a contiguous range of verses, inclusive at both ends.
// Start never orders after End; construction fails with an
// InvalidRangeError instead of swapping endpoints.
type Passage struct {
	Start Verse
	End   Verse
}

// NewPassage constructs a Passage from two endpoint verses.
func NewPassage(start, end Verse) (Passage, error) {
	if end.Less(start) {
		return Passage{}, errors.NewInvalidRange(start.Format(), end.Format())
	}
	return Passage{Start: start, End: end}, nil
}

// ParsePassageStrings constructs a Passage by parsing each endpoint with
// ParseVerse. Verse parsing errors propagate unchanged.
func ParsePassageStrings(startText, endText string) (Passage, error) {
	start, err := ParseVerse(startText)
	if err != nil {
		return Passage{}, err
	}
	end, err := ParseVerse(endText)
	if err != nil {
		return Passage{}, err
	}
	return NewPassage(start, end)
}

// ParsePassage parses a passage string. Accepted forms:
//
//	"James 2:10"             single verse (start == end)
//	"James 2:10-12"          range within one chapter
//	"James 2:10-3:4"         range across chapters
//	"1 John 3:10-2 John 1:7" range across books
//
// A book or chapter omitted on the right side of the hyphen is inherited
// from the start endpoint. Exactly one hyphen is permitted in range form.
func ParsePassage(s string) (Passage, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Passage{}, errors.NewMalformed(s, "empty passage string")
	}

	switch strings.Count(trimmed, "-") {
	case 0:
		v, err := ParseVerse(trimmed)
		if err != nil {
			return Passage{}, err
		}
		return Passage{Start: v, End: v}, nil
	case 1:
		left, right, _ := strings.Cut(trimmed, "-")
		start, err := ParseVerse(left)
		if err != nil {
			return Passage{}, err
		}
		end, err := parseRangeEnd(start, strings.TrimSpace(right))
		if err != nil {
			return Passage{}, err
		}
		return NewPassage(start, end)
	default:
		return Passage{}, errors.NewMalformed(s,
			"expected exactly one hyphen in a verse range")
	}
}

// parseRangeEnd resolves the right side of a range expression against the
// already-parsed start endpoint. Tried in order: bare verse number,
// chapter:verse, then a fully qualified verse reference.
func parseRangeEnd(start Verse, right string) (Verse, error) {
	if right == "" {
		return Verse{}, errors.NewMalformed(right, "missing end of verse range")
	}

	if n, err := strconv.Atoi(right); err == nil {
		return NewVerse(start.Book, start.Chapter, n)
	}

	if c, v, ok := splitChapterVerse(right); ok {
		return NewVerse(start.Book, c, v)
	}

	return ParseVerse(right)
}

// splitChapterVerse matches a bare "<chapter>:<verse>" pair.
func splitChapterVerse(s string) (chapter, verse int, ok bool) {
	left, right, found := strings.Cut(s, ":")
	if !found {
		return 0, 0, false
	}
	chapter, err := strconv.Atoi(strings.TrimSpace(left))
	if err != nil {
		return 0, 0, false
	}
	verse, err = strconv.Atoi(strings.TrimSpace(right))
	if err != nil {
		return 0, 0, false
	}
	return chapter, verse, true
}

// Format returns the canonical string form: the single-verse form when
// start and end coincide, "<Book> C:V1-V2" within one chapter, and the
// fully qualified two-endpoint form otherwise.
func (p Passage) Format() string {
	switch {
	case p.Start == p.End:
		return p.Start.Format()
	case p.Start.Book == p.End.Book && p.Start.Chapter == p.End.Chapter:
		return fmt.Sprintf("%s %d:%d-%d",
			p.Start.Book.Name(), p.Start.Chapter, p.Start.Verse, p.End.Verse)
	default:
		return p.Start.Format() + "-" + p.End.Format()
	}
}

// String returns the canonical string form.
func (p Passage) String() string {
	return p.Format()
}

// Describe returns a debug representation exposing both endpoints.
func (p Passage) Describe() string {
	return fmt.Sprintf("ref.Passage{Start: %s, End: %s}",
		p.Start.Describe(), p.End.Describe())
}

// Length returns the number of verses in the passage, inclusive of both
// endpoints. Within a single chapter this is End.Verse - Start.Verse + 1.
// Across chapters or books the count is summed from the catalog's KJV
// verse counts, with out-of-catalog chapter and verse numbers clamped to
// the catalog maxima.
func (p Passage) Length() int {
	if p.Start.Book == p.End.Book && p.Start.Chapter == p.End.Chapter {
		return p.End.Verse - p.Start.Verse + 1
	}

	total := 0
	for b := p.Start.Book; b <= p.End.Book; b++ {
		firstChapter := 1
		lastChapter := b.Chapters()
		if b == p.Start.Book && p.Start.Chapter > firstChapter {
			firstChapter = p.Start.Chapter
		}
		if b == p.End.Book && p.End.Chapter < lastChapter {
			lastChapter = p.End.Chapter
		}
		for ch := firstChapter; ch <= lastChapter; ch++ {
			n, err := b.Verses(ch)
			if err != nil {
				continue
			}
			from, to := 1, n
			if b == p.Start.Book && ch == p.Start.Chapter {
				from = p.Start.Verse
			}
			if b == p.End.Book && ch == p.End.Chapter && p.End.Verse < n {
				to = p.End.Verse
			}
			if from > to {
				continue
			}
			total += to - from + 1
		}
	}
	return total
}

// Includes returns true if the verse falls within the passage bounds,
// inclusive at both ends.
func (p Passage) Includes(v Verse) bool {
	return !v.Less(p.Start) && !p.End.Less(v)
}

// Overlap returns true if the two passages share at least one verse.
// Symmetric: a.Overlap(b) == b.Overlap(a).
func (p Passage) Overlap(other Passage) bool {
	return !other.End.Less(p.Start) && !p.End.Less(other.Start)
}

// Compare returns -1, 0, or 1 as p orders before, equal to, or after
// other. Passages order by (start, end), so slices of passages sort with
// sort.Slice or slices.SortFunc.
func (p Passage) Compare(other Passage) int {
	if c := p.Start.Compare(other.Start); c != 0 {
		return c
	}
	return p.End.Compare(other.End)
}

// Less returns true if p orders strictly before other.
func (p Passage) Less(other Passage) bool {
	return p.Compare(other) < 0
}

// Equal returns true if both passages have the same endpoints.
func (p Passage) Equal(other Passage) bool {
	return p == other
}

// MarshalText encodes the passage as its canonical string.
func (p Passage) MarshalText() ([]byte, error) {
	return []byte(p.Format()), nil
}

// UnmarshalText parses the canonical string form in place.
func (p *Passage) UnmarshalText(text []byte) error {
	parsed, err := ParsePassage(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
