package ref

import (
	"encoding/json"
	"testing"

	"github.com/FocuswithJustin/bibleref/core/errors"
)

func TestParseVerse(t *testing.T) {
	tests := []struct {
		input    string
		expected Verse
		wantErr  error
	}{
		{
			input:    "James 2:10",
			expected: Verse{Book: James, Chapter: 2, Verse: 10},
		},
		{
			input:    "John 3:16",
			expected: Verse{Book: John, Chapter: 3, Verse: 16},
		},
		// Abbreviations resolve to the same book
		{
			input:    "Jn 3:16",
			expected: Verse{Book: John, Chapter: 3, Verse: 16},
		},
		{
			input:    "Rom. 1:1",
			expected: Verse{Book: Romans, Chapter: 1, Verse: 1},
		},
		// Numbered books, spaced and packed
		{
			input:    "1 Cor 12:1",
			expected: Verse{Book: Corinthians1, Chapter: 12, Verse: 1},
		},
		{
			input:    "1cor12:1",
			expected: Verse{Book: Corinthians1, Chapter: 12, Verse: 1},
		},
		// Multi-word book names
		{
			input:    "Song of Solomon 2:1",
			expected: Verse{Book: SongOfSolomon, Chapter: 2, Verse: 1},
		},
		// Surrounding whitespace
		{
			input:    "  Eph 2:10  ",
			expected: Verse{Book: Ephesians, Chapter: 2, Verse: 10},
		},
		// Failures
		{input: "", wantErr: errors.ErrMalformedReference},
		{input: "John", wantErr: errors.ErrMalformedReference},
		{input: "John 3", wantErr: errors.ErrMalformedReference},
		{input: "John four:one", wantErr: errors.ErrMalformedReference},
		{input: "John 3:16:1", wantErr: errors.ErrMalformedReference},
		{input: "John 0:1", wantErr: errors.ErrMalformedReference},
		{input: "John 3:0", wantErr: errors.ErrMalformedReference},
		{input: "NotABook 1:1", wantErr: errors.ErrUnknownBook},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := ParseVerse(tt.input)

			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("ParseVerse(%q) succeeded, want error", tt.input)
				}
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseVerse(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseVerse(%q) failed: %v", tt.input, err)
			}
			if v != tt.expected {
				t.Errorf("ParseVerse(%q) = %+v, want %+v", tt.input, v, tt.expected)
			}
		})
	}
}

func TestNewVerse(t *testing.T) {
	v, err := NewVerse(John, 3, 16)
	if err != nil {
		t.Fatalf("NewVerse failed: %v", err)
	}
	if v != (Verse{Book: John, Chapter: 3, Verse: 16}) {
		t.Errorf("NewVerse = %+v", v)
	}

	if _, err := NewVerse(Book(99), 1, 1); !errors.Is(err, errors.ErrUnknownBook) {
		t.Errorf("invalid book error = %v, want ErrUnknownBook", err)
	}
	if _, err := NewVerse(John, 0, 1); !errors.Is(err, errors.ErrMalformedReference) {
		t.Errorf("zero chapter error = %v, want ErrMalformedReference", err)
	}
	if _, err := NewVerse(John, 1, -3); !errors.Is(err, errors.ErrMalformedReference) {
		t.Errorf("negative verse error = %v, want ErrMalformedReference", err)
	}
}

func TestVerseFormat(t *testing.T) {
	v := Verse{Book: James, Chapter: 2, Verse: 10}
	if got := v.Format(); got != "James 2:10" {
		t.Errorf("Format() = %q, want %q", got, "James 2:10")
	}
	if v.String() != v.Format() {
		t.Error("String() should equal Format()")
	}

	// canonical name regardless of alias used at parse time
	parsed, err := ParseVerse("Jas 2:10")
	if err != nil {
		t.Fatalf("ParseVerse failed: %v", err)
	}
	if got := parsed.Format(); got != "James 2:10" {
		t.Errorf("Format() after alias parse = %q, want %q", got, "James 2:10")
	}
}

func TestVerseDescribe(t *testing.T) {
	v := Verse{Book: John, Chapter: 3, Verse: 16}
	got := v.Describe()
	want := "ref.Verse{Book: John(42), Chapter: 3, Verse: 16}"
	if got != want {
		t.Errorf("Describe() = %q, want %q", got, want)
	}
	if got == v.Format() {
		t.Error("Describe() should differ from Format()")
	}
}

func TestVerseRoundTrip(t *testing.T) {
	// parse(format(v)) == v across every book in the catalog
	for _, b := range Books() {
		v := Verse{Book: b, Chapter: 1, Verse: 1}
		parsed, err := ParseVerse(v.Format())
		if err != nil {
			t.Errorf("ParseVerse(%q) failed: %v", v.Format(), err)
			continue
		}
		if parsed != v {
			t.Errorf("round trip of %q = %+v, want %+v", v.Format(), parsed, v)
		}
	}
}

func TestVerseAliasEquivalence(t *testing.T) {
	a, err := ParseVerse("Jn 3:16")
	if err != nil {
		t.Fatalf("ParseVerse failed: %v", err)
	}
	b, err := ParseVerse("John 3:16")
	if err != nil {
		t.Fatalf("ParseVerse failed: %v", err)
	}
	if a != b {
		t.Errorf("alias parse mismatch: %+v != %+v", a, b)
	}
}

func TestVerseOrdering(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"Matthew 1:1", "John 1:1", -1}, // Matthew precedes John canonically
		{"John 1:1", "Matthew 1:1", 1},
		{"John 3:16", "John 3:16", 0},
		{"John 3:16", "John 4:1", -1},
		{"John 4:3", "John 4:10", -1},
		{"Genesis 50:26", "Exodus 1:1", -1},
		{"Revelation 22:21", "Genesis 1:1", 1},
	}

	for _, tt := range tests {
		a, err := ParseVerse(tt.a)
		if err != nil {
			t.Fatalf("ParseVerse(%q) failed: %v", tt.a, err)
		}
		b, err := ParseVerse(tt.b)
		if err != nil {
			t.Fatalf("ParseVerse(%q) failed: %v", tt.b, err)
		}

		if got := a.Compare(b); got != tt.expected {
			t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.expected)
		}
		if got := a.Less(b); got != (tt.expected < 0) {
			t.Errorf("Less(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.expected < 0)
		}
		if got := a.Equal(b); got != (tt.expected == 0) {
			t.Errorf("Equal(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.expected == 0)
		}

		// exactly one of <, ==, > holds
		lt, eq, gt := a.Less(b), a.Equal(b), b.Less(a)
		trues := 0
		for _, v := range []bool{lt, eq, gt} {
			if v {
				trues++
			}
		}
		if trues != 1 {
			t.Errorf("ordering of %q vs %q not total: < %v == %v > %v", tt.a, tt.b, lt, eq, gt)
		}
	}
}

func TestVerseOrderingTransitive(t *testing.T) {
	a := Verse{Book: Genesis, Chapter: 1, Verse: 1}
	b := Verse{Book: Matthew, Chapter: 5, Verse: 3}
	c := Verse{Book: Revelation, Chapter: 22, Verse: 21}

	if !a.Less(b) || !b.Less(c) {
		t.Fatal("fixture verses not in expected order")
	}
	if !a.Less(c) {
		t.Error("ordering not transitive: a < b < c but !(a < c)")
	}
}

func TestVerseJSON(t *testing.T) {
	v := Verse{Book: John, Chapter: 3, Verse: 16}

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}
	if string(data) != `"John 3:16"` {
		t.Errorf("json.Marshal = %s, want %q", data, `"John 3:16"`)
	}

	var decoded Verse
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}
	if decoded != v {
		t.Errorf("decoded = %+v, want %+v", decoded, v)
	}

	var bad Verse
	if err := json.Unmarshal([]byte(`"NotABook 1:1"`), &bad); err == nil {
		t.Error("json.Unmarshal of unknown book succeeded, want error")
	}
}
