package ref

import (
	"strings"
	"testing"

	"github.com/FocuswithJustin/bibleref/core/errors"
)

func TestParseBook(t *testing.T) {
	tests := []struct {
		input    string
		expected Book
		wantErr  bool
	}{
		// Canonical names
		{input: "Genesis", expected: Genesis},
		{input: "John", expected: John},
		{input: "Revelation", expected: Revelation},
		{input: "Song of Solomon", expected: SongOfSolomon},
		{input: "1 Corinthians", expected: Corinthians1},
		// Case-insensitive
		{input: "JOHN", expected: John},
		{input: "genesis", expected: Genesis},
		// Abbreviations
		{input: "Jn", expected: John},
		{input: "Gen", expected: Genesis},
		{input: "1 Cor", expected: Corinthians1},
		{input: "1cor", expected: Corinthians1},
		{input: "Jas", expected: James},
		{input: "Rom", expected: Romans},
		{input: "2 Jn", expected: John2},
		// Trailing period and surrounding whitespace
		{input: "Rom.", expected: Romans},
		{input: "  Matt  ", expected: Matthew},
		// Spaces removed
		{input: "songofsolomon", expected: SongOfSolomon},
		// Failures
		{input: "NotABook", wantErr: true},
		{input: "", wantErr: true},
		{input: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			book, err := ParseBook(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseBook(%q) succeeded, want error", tt.input)
				}
				if !errors.Is(err, errors.ErrUnknownBook) {
					t.Errorf("ParseBook(%q) error = %v, want ErrUnknownBook", tt.input, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseBook(%q) failed: %v", tt.input, err)
			}
			if book != tt.expected {
				t.Errorf("ParseBook(%q) = %v, want %v", tt.input, book, tt.expected)
			}
		})
	}
}

func TestParseBookErrorToken(t *testing.T) {
	_, err := ParseBook("NotABook")
	if err == nil {
		t.Fatal("ParseBook succeeded, want error")
	}

	var unknownErr *errors.UnknownBookError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("error type = %T, want *UnknownBookError", err)
	}
	if unknownErr.Token != "NotABook" {
		t.Errorf("Token = %q, want %q", unknownErr.Token, "NotABook")
	}
}

func TestBookProperties(t *testing.T) {
	if got := Genesis.Name(); got != "Genesis" {
		t.Errorf("Genesis.Name() = %q, want %q", got, "Genesis")
	}
	if got := Samuel1.Name(); got != "1 Samuel" {
		t.Errorf("Samuel1.Name() = %q, want %q", got, "1 Samuel")
	}
	if got := Genesis.Testament(); got != OldTestament {
		t.Errorf("Genesis.Testament() = %q, want %q", got, OldTestament)
	}
	if got := John.Testament(); got != NewTestament {
		t.Errorf("John.Testament() = %q, want %q", got, NewTestament)
	}
	if got := Psalms.Chapters(); got != 150 {
		t.Errorf("Psalms.Chapters() = %d, want 150", got)
	}
	if got := John.Chapters(); got != 21 {
		t.Errorf("John.Chapters() = %d, want 21", got)
	}
	if got := Book(-1).Name(); got != "Book(-1)" {
		t.Errorf("Book(-1).Name() = %q, want %q", got, "Book(-1)")
	}
}

func TestBookVerses(t *testing.T) {
	n, err := Genesis.Verses(1)
	if err != nil {
		t.Fatalf("Genesis.Verses(1) failed: %v", err)
	}
	if n != 31 {
		t.Errorf("Genesis.Verses(1) = %d, want 31", n)
	}

	n, err = John.Verses(4)
	if err != nil {
		t.Fatalf("John.Verses(4) failed: %v", err)
	}
	if n != 54 {
		t.Errorf("John.Verses(4) = %d, want 54", n)
	}

	if _, err := John.Verses(0); err == nil {
		t.Error("John.Verses(0) succeeded, want error")
	}
	if _, err := John.Verses(22); err == nil {
		t.Error("John.Verses(22) succeeded, want error")
	}
	if _, err := Book(99).Verses(1); err == nil {
		t.Error("Book(99).Verses(1) succeeded, want error")
	}
}

func TestBooksCanonicalOrder(t *testing.T) {
	books := Books()
	if len(books) != 66 {
		t.Fatalf("len(Books()) = %d, want 66", len(books))
	}
	if books[0] != Genesis {
		t.Errorf("first book = %v, want Genesis", books[0])
	}
	if books[len(books)-1] != Revelation {
		t.Errorf("last book = %v, want Revelation", books[len(books)-1])
	}
	for i := 1; i < len(books); i++ {
		if books[i-1] >= books[i] {
			t.Fatalf("books out of order at %d: %v >= %v", i, books[i-1], books[i])
		}
	}
	// Canonical order places Matthew before John
	if !(Matthew < John) {
		t.Error("Matthew should order before John")
	}
}

func TestCanonicalNamesResolve(t *testing.T) {
	// every canonical name must resolve back to its own book
	for _, b := range Books() {
		got, err := ParseBook(b.Name())
		if err != nil {
			t.Errorf("ParseBook(%q) failed: %v", b.Name(), err)
			continue
		}
		if got != b {
			t.Errorf("ParseBook(%q) = %v, want %v", b.Name(), got, b)
		}
	}
}

func TestBookAbbreviations(t *testing.T) {
	listing := BookAbbreviations()

	want := "Genesis:gen,ge,gn\nExodus:exod,ex,exo"
	if !strings.HasPrefix(listing, want) {
		t.Errorf("BookAbbreviations() prefix = %q, want %q", listing[:len(want)], want)
	}
	if got := strings.Count(listing, "\n"); got != 65 {
		t.Errorf("BookAbbreviations() line separators = %d, want 65", got)
	}
}
