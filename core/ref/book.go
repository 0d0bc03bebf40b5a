package ref

import (
	"fmt"
	"strings"

	"github.com/FocuswithJustin/bibleref/core/errors"
)

// Testament identifies the testament a book belongs to.
type Testament string

// Testament constants.
const (
	OldTestament Testament = "OT"
	NewTestament Testament = "NT"
)

// Book identifies a book of the Bible. The zero value is Genesis, and the
// constant order is canonical order, so books compare directly with < and >.
type Book int

// Books of the Bible in canonical order.
const (
	Genesis Book = iota
	Exodus
	Leviticus
	Numbers
	Deuteronomy
	Joshua
	Judges
	Ruth
	Samuel1
	Samuel2
	Kings1
	Kings2
	Chronicles1
	Chronicles2
	Ezra
	Nehemiah
	Esther
	Job
	Psalms
	Proverbs
	Ecclesiastes
	SongOfSolomon
	Isaiah
	Jeremiah
	Lamentations
	Ezekiel
	Daniel
	Hosea
	Joel
	Amos
	Obadiah
	Jonah
	Micah
	Nahum
	Habakkuk
	Zephaniah
	Haggai
	Zechariah
	Malachi
	Matthew
	Mark
	Luke
	John
	Acts
	Romans
	Corinthians1
	Corinthians2
	Galatians
	Ephesians
	Philippians
	Colossians
	Thessalonians1
	Thessalonians2
	Timothy1
	Timothy2
	Titus
	Philemon
	Hebrews
	James
	Peter1
	Peter2
	John1
	John2
	John3
	Jude
	Revelation
)

// bookCount is the number of books in the catalog.
const bookCount = int(Revelation) + 1

// bookInfo holds the static catalog entry for one book: canonical name,
// testament, accepted abbreviations, and KJV verse counts per chapter.
type bookInfo struct {
	name      string
	testament Testament
	aliases   []string
	verses    []int
}

// bookTable is the static book catalog. Verse counts follow the KJV
// versification; abbreviations are matched case-insensitively.
var bookTable = [bookCount]bookInfo{
	Genesis: {name: "Genesis", testament: OldTestament,
		aliases: []string{"gen", "ge", "gn"},
		verses: []int{31, 25, 24, 26, 32, 22, 24, 22, 29, 32, 32, 20, 18, 24, 21, 16,
			27, 33, 38, 18, 34, 24, 20, 67, 34, 35, 46, 22, 35, 43, 55, 32,
			20, 31, 29, 43, 36, 30, 23, 23, 57, 38, 34, 34, 28, 34, 31, 22,
			33, 26}},
	Exodus: {name: "Exodus", testament: OldTestament,
		aliases: []string{"exod", "ex", "exo"},
		verses: []int{22, 25, 22, 31, 23, 30, 25, 32, 35, 29, 10, 51, 22, 31, 27, 36,
			16, 27, 25, 26, 36, 31, 33, 18, 40, 37, 21, 43, 46, 38, 18, 35,
			23, 35, 35, 38, 29, 31, 43, 38}},
	Leviticus: {name: "Leviticus", testament: OldTestament,
		aliases: []string{"lev", "lv", "le"},
		verses: []int{17, 16, 17, 35, 19, 30, 38, 36, 24, 20, 47, 8, 59, 57, 33, 34,
			16, 30, 37, 27, 24, 33, 44, 23, 55, 46, 34}},
	Numbers: {name: "Numbers", testament: OldTestament,
		aliases: []string{"num", "nm", "nu"},
		verses: []int{54, 34, 51, 49, 31, 27, 89, 26, 23, 36, 35, 16, 33, 45, 41, 50,
			13, 32, 22, 29, 35, 41, 30, 25, 18, 65, 23, 31, 40, 16, 54, 42,
			56, 29, 34, 13}},
	Deuteronomy: {name: "Deuteronomy", testament: OldTestament,
		aliases: []string{"deut", "deu", "de", "du", "dt"},
		verses: []int{46, 37, 29, 49, 33, 25, 26, 20, 29, 22, 32, 32, 18, 29, 23, 22,
			20, 22, 21, 20, 23, 30, 25, 22, 19, 19, 26, 68, 29, 20, 30, 52,
			29, 12}},
	Joshua: {name: "Joshua", testament: OldTestament,
		aliases: []string{"josh", "jos"},
		verses: []int{18, 24, 17, 24, 15, 27, 26, 35, 27, 43, 23, 24, 33, 15, 63, 10,
			18, 28, 51, 9, 45, 34, 16, 33}},
	Judges: {name: "Judges", testament: OldTestament,
		aliases: []string{"judg", "jgs", "jdg"},
		verses: []int{36, 23, 31, 24, 31, 40, 25, 35, 57, 18, 40, 15, 25, 20, 20, 31,
			13, 31, 30, 48, 25}},
	Ruth: {name: "Ruth", testament: OldTestament,
		aliases: []string{"rut", "ru"},
		verses: []int{22, 23, 18, 22}},
	Samuel1: {name: "1 Samuel", testament: OldTestament,
		aliases: []string{"1sam", "1 sam", "1sm", "1 sm", "1samuel", "1sa", "1 sa"},
		verses: []int{28, 36, 21, 22, 12, 21, 17, 22, 27, 27, 15, 25, 23, 52, 35, 23,
			58, 30, 24, 42, 15, 23, 29, 22, 44, 25, 12, 25, 11, 31, 13}},
	Samuel2: {name: "2 Samuel", testament: OldTestament,
		aliases: []string{"2sam", "2 sam", "2sm", "2 sm", "2samuel", "2sa", "2 sa"},
		verses: []int{27, 32, 39, 12, 25, 23, 29, 18, 13, 19, 27, 31, 39, 33, 37, 23,
			29, 33, 43, 26, 22, 51, 39, 25}},
	Kings1: {name: "1 Kings", testament: OldTestament,
		aliases: []string{"1king", "1kg", "1 kg", "1kings", "1ki", "1 ki"},
		verses: []int{53, 46, 28, 34, 18, 38, 51, 66, 28, 29, 43, 33, 34, 31, 34, 34,
			24, 46, 21, 43, 29, 53}},
	Kings2: {name: "2 Kings", testament: OldTestament,
		aliases: []string{"2king", "2kg", "2 kg", "2kings", "2ki", "2 ki"},
		verses: []int{18, 25, 27, 44, 27, 33, 20, 29, 37, 36, 21, 21, 25, 29, 38, 20,
			41, 37, 37, 21, 26, 20, 37, 20, 30}},
	Chronicles1: {name: "1 Chronicles", testament: OldTestament,
		aliases: []string{"1chron", "1chronicles", "1ch", "1 chron", "1 ch"},
		verses: []int{54, 55, 24, 43, 26, 81, 40, 40, 44, 14, 47, 40, 14, 17, 29, 43,
			27, 17, 19, 8, 30, 19, 32, 31, 31, 32, 34, 21, 30}},
	Chronicles2: {name: "2 Chronicles", testament: OldTestament,
		aliases: []string{"2chron", "2chronicles", "2ch", "2 chron", "2 ch"},
		verses: []int{17, 18, 17, 22, 14, 42, 22, 18, 31, 19, 23, 16, 22, 15, 19, 14,
			19, 34, 11, 37, 20, 12, 21, 27, 28, 23, 9, 27, 36, 27, 21, 33,
			25, 33, 27, 23}},
	Ezra: {name: "Ezra", testament: OldTestament,
		aliases: []string{"ez", "ezr"},
		verses: []int{11, 70, 13, 24, 17, 22, 28, 36, 15, 44}},
	Nehemiah: {name: "Nehemiah", testament: OldTestament,
		aliases: []string{"neh", "ne", "nehem"},
		verses: []int{11, 20, 32, 23, 19, 19, 73, 18, 38, 39, 36, 47, 31}},
	Esther: {name: "Esther", testament: OldTestament,
		aliases: []string{"esth", "es", "est"},
		verses: []int{22, 23, 15, 17, 14, 14, 10, 17, 32, 3}},
	Job: {name: "Job", testament: OldTestament,
		aliases: []string{"jb"},
		verses: []int{22, 13, 26, 21, 27, 30, 21, 22, 35, 22, 20, 25, 28, 22, 35, 22,
			16, 21, 29, 29, 34, 30, 17, 25, 6, 14, 23, 28, 25, 31, 40, 22,
			33, 37, 16, 33, 24, 41, 30, 24, 34, 17}},
	Psalms: {name: "Psalms", testament: OldTestament,
		aliases: []string{"psa", "pss", "psalm", "ps"},
		verses: []int{6, 12, 8, 8, 12, 10, 17, 9, 20, 18, 7, 8, 6, 7, 5, 11, 15, 50,
			14, 9, 13, 31, 6, 10, 22, 12, 14, 9, 11, 12, 24, 11, 22, 22, 28,
			12, 40, 22, 13, 17, 13, 11, 5, 26, 17, 11, 9, 14, 20, 23, 19, 9,
			6, 7, 23, 13, 11, 11, 17, 12, 8, 12, 11, 10, 13, 20, 7, 35, 36,
			5, 24, 20, 28, 23, 10, 12, 20, 72, 13, 19, 16, 8, 18, 12, 13, 17,
			7, 18, 52, 17, 16, 15, 5, 23, 11, 13, 12, 9, 9, 5, 8, 28, 22, 35,
			45, 48, 43, 13, 31, 7, 10, 10, 9, 8, 18, 19, 2, 29, 176, 7, 8,
			9, 4, 8, 5, 6, 5, 6, 8, 8, 3, 18, 3, 3, 21, 26, 9, 8, 24, 13, 10,
			7, 12, 15, 21, 10, 20, 14, 9, 6}},
	Proverbs: {name: "Proverbs", testament: OldTestament,
		aliases: []string{"prov", "prv", "pv", "pro"},
		verses: []int{33, 22, 35, 27, 23, 35, 27, 36, 18, 32, 31, 28, 25, 35, 33, 33,
			28, 24, 29, 30, 31, 29, 35, 34, 28, 28, 27, 28, 27, 33, 31}},
	Ecclesiastes: {name: "Ecclesiastes", testament: OldTestament,
		aliases: []string{"ecc", "ec", "eccles"},
		verses: []int{18, 26, 22, 16, 20, 12, 29, 17, 18, 20, 10, 14}},
	SongOfSolomon: {name: "Song of Solomon", testament: OldTestament,
		aliases: []string{"song", "ss", "so", "sg", "son", "song of sol", "sos"},
		verses: []int{17, 17, 11, 16, 16, 13, 13, 14}},
	Isaiah: {name: "Isaiah", testament: OldTestament,
		aliases: []string{"isa", "is"},
		verses: []int{31, 22, 26, 6, 30, 13, 25, 22, 21, 34, 16, 6, 22, 32, 9, 14, 14,
			7, 25, 6, 17, 25, 18, 23, 12, 21, 13, 29, 24, 33, 9, 20, 24, 17,
			10, 22, 38, 22, 8, 31, 29, 25, 28, 28, 25, 13, 15, 22, 26, 11,
			23, 15, 12, 17, 13, 12, 21, 14, 21, 22, 11, 12, 19, 12, 25, 24,}},
	Jeremiah: {name: "Jeremiah", testament: OldTestament,
		aliases: []string{"jer", "je", "jerem"},
		verses: []int{19, 37, 25, 31, 31, 30, 34, 22, 26, 25, 23, 17, 27, 22, 21, 21,
			27, 23, 15, 18, 14, 30, 40, 10, 38, 24, 22, 17, 32, 24, 40, 44,
			26, 22, 19, 32, 21, 28, 18, 16, 18, 22, 13, 30, 5, 28, 7, 47, 39,
			46, 64, 34}},
	Lamentations: {name: "Lamentations", testament: OldTestament,
		aliases: []string{"lam", "la", "lamen"},
		verses: []int{22, 22, 66, 22, 22}},
	Ezekiel: {name: "Ezekiel", testament: OldTestament,
		aliases: []string{"ezek", "eze", "ezk"},
		verses: []int{28, 10, 27, 17, 17, 14, 27, 18, 11, 22, 25, 28, 23, 23, 8, 63,
			24, 32, 14, 49, 32, 31, 49, 27, 17, 21, 36, 26, 21, 26, 18, 32,
			33, 31, 15, 38, 28, 23, 29, 49, 26, 20, 27, 31, 25, 24, 23, 35,}},
	Daniel: {name: "Daniel", testament: OldTestament,
		aliases: []string{"dan", "da", "dn"},
		verses: []int{21, 49, 30, 37, 31, 28, 28, 27, 27, 21, 45, 13}},
	Hosea: {name: "Hosea", testament: OldTestament,
		aliases: []string{"hos", "ho"},
		verses: []int{11, 23, 5, 19, 15, 11, 16, 14, 17, 15, 12, 14, 16, 9}},
	Joel: {name: "Joel", testament: OldTestament,
		aliases: []string{"jl", "joe"},
		verses: []int{20, 32, 21}},
	Amos: {name: "Amos", testament: OldTestament,
		aliases: []string{"am", "amo"},
		verses: []int{15, 16, 15, 13, 27, 14, 17, 14, 15}},
	Obadiah: {name: "Obadiah", testament: OldTestament,
		aliases: []string{"obad", "ob", "oba"},
		verses: []int{21}},
	Jonah: {name: "Jonah", testament: OldTestament,
		aliases: []string{"jon", "jnh"},
		verses: []int{17, 10, 10, 11}},
	Micah: {name: "Micah", testament: OldTestament,
		aliases: []string{"mi", "mic"},
		verses: []int{16, 13, 12, 13, 15, 16, 20}},
	Nahum: {name: "Nahum", testament: OldTestament,
		aliases: []string{"nah", "na"},
		verses: []int{15, 13, 19}},
	Habakkuk: {name: "Habakkuk", testament: OldTestament,
		aliases: []string{"hab", "hb"},
		verses: []int{17, 20, 19}},
	Zephaniah: {name: "Zephaniah", testament: OldTestament,
		aliases: []string{"zeph", "zep"},
		verses: []int{18, 15, 20}},
	Haggai: {name: "Haggai", testament: OldTestament,
		aliases: []string{"hag", "hg"},
		verses: []int{15, 23}},
	Zechariah: {name: "Zechariah", testament: OldTestament,
		aliases: []string{"zech", "zec"},
		verses: []int{21, 13, 10, 14, 11, 15, 14, 23, 17, 12, 17, 14, 9, 21}},
	Malachi: {name: "Malachi", testament: OldTestament,
		aliases: []string{"mal", "ml"},
		verses: []int{14, 17, 18, 6}},
	Matthew: {name: "Matthew", testament: NewTestament,
		aliases: []string{"mat", "matt", "mt"},
		verses: []int{25, 23, 17, 25, 48, 34, 29, 34, 38, 42, 30, 50, 58, 36, 39, 28,
			27, 35, 30, 34, 46, 46, 39, 51, 46, 75, 66, 20}},
	Mark: {name: "Mark", testament: NewTestament,
		aliases: []string{"mar", "mk"},
		verses: []int{45, 28, 35, 41, 43, 56, 37, 38, 50, 52, 33, 44, 37, 72, 47, 20}},
	Luke: {name: "Luke", testament: NewTestament,
		aliases: []string{"lu", "luk", "lk"},
		verses: []int{80, 52, 38, 44, 39, 49, 50, 56, 62, 42, 54, 59, 35, 35, 32, 31,
			37, 43, 48, 47, 38, 71, 56, 53}},
	John: {name: "John", testament: NewTestament,
		aliases: []string{"jo", "joh", "jn"},
		verses: []int{51, 25, 36, 54, 47, 71, 53, 59, 41, 42, 57, 50, 38, 31, 27, 33,
			26, 40, 42, 31, 25}},
	Acts: {name: "Acts", testament: NewTestament,
		aliases: []string{"ac", "act"},
		verses: []int{26, 47, 26, 37, 42, 15, 60, 40, 43, 48, 30, 25, 52, 28, 41, 40,
			34, 28, 41, 38, 40, 30, 35, 27, 27, 32, 44, 31}},
	Romans: {name: "Romans", testament: NewTestament,
		aliases: []string{"rom", "ro", "rm"},
		verses: []int{32, 29, 31, 25, 21, 23, 25, 39, 33, 21, 36, 21, 14, 23, 33, 27}},
	Corinthians1: {name: "1 Corinthians", testament: NewTestament,
		aliases: []string{"1cor", "1c", "1corinthians", "1 co", "1co", "1 cor"},
		verses: []int{31, 16, 23, 21, 13, 20, 40, 13, 27, 33, 34, 31, 13, 40, 58, 24}},
	Corinthians2: {name: "2 Corinthians", testament: NewTestament,
		aliases: []string{"2cor", "2c", "2corinthians", "2 co", "2co", "2 cor"},
		verses: []int{24, 17, 18, 18, 21, 18, 16, 24, 15, 18, 33, 21, 14}},
	Galatians: {name: "Galatians", testament: NewTestament,
		aliases: []string{"gal", "ga"},
		verses: []int{24, 21, 29, 31, 26, 18}},
	Ephesians: {name: "Ephesians", testament: NewTestament,
		aliases: []string{"eph", "ep"},
		verses: []int{23, 22, 21, 32, 33, 24}},
	Philippians: {name: "Philippians", testament: NewTestament,
		aliases: []string{"phil", "php", "phi"},
		verses: []int{30, 30, 21, 23}},
	Colossians: {name: "Colossians", testament: NewTestament,
		aliases: []string{"col", "co"},
		verses: []int{29, 23, 25, 18}},
	Thessalonians1: {name: "1 Thessalonians", testament: NewTestament,
		aliases: []string{"1thes", "1thessalonians", "1thess", "1th", "1 thess", "1 thes", "1 th"},
		verses: []int{10, 20, 13, 18, 28}},
	Thessalonians2: {name: "2 Thessalonians", testament: NewTestament,
		aliases: []string{"2thes", "2thessalonians", "2thess", "2th", "2 thess", "2 thes", "2 th"},
		verses: []int{12, 17, 18}},
	Timothy1: {name: "1 Timothy", testament: NewTestament,
		aliases: []string{"1tim", "1tm", "1 tm", "1timothy", "1ti", "1 tim", "1 ti"},
		verses: []int{20, 15, 16, 16, 25, 21}},
	Timothy2: {name: "2 Timothy", testament: NewTestament,
		aliases: []string{"2tim", "2tm", "2 tm", "2timothy", "2ti", "2 tim", "2 ti"},
		verses: []int{18, 26, 17, 22}},
	Titus: {name: "Titus", testament: NewTestament,
		aliases: []string{"ti", "tit"},
		verses: []int{16, 15, 15}},
	Philemon: {name: "Philemon", testament: NewTestament,
		aliases: []string{"philem", "phm"},
		verses: []int{25}},
	Hebrews: {name: "Hebrews", testament: NewTestament,
		aliases: []string{"heb", "he"},
		verses: []int{14, 18, 19, 16, 14, 20, 28, 13, 28, 39, 40, 29, 25}},
	James: {name: "James", testament: NewTestament,
		aliases: []string{"jam", "ja", "jas"},
		verses: []int{27, 26, 18, 17, 20}},
	Peter1: {name: "1 Peter", testament: NewTestament,
		aliases: []string{"1pet", "1p", "1pe", "1 pe", "1pt", "1 pet", "1 pt"},
		verses: []int{25, 25, 22, 19, 14}},
	Peter2: {name: "2 Peter", testament: NewTestament,
		aliases: []string{"2pet", "2p", "2pe", "2 pe", "2pt", "2 pet", "2 pt"},
		verses: []int{21, 22, 18}},
	John1: {name: "1 John", testament: NewTestament,
		aliases: []string{"1john", "1j", "1jo", "1 jo", "1jn", "1 jn"},
		verses: []int{10, 29, 24, 21, 21}},
	John2: {name: "2 John", testament: NewTestament,
		aliases: []string{"2john", "2j", "2jo", "2 jo", "2jn", "2 jn"},
		verses: []int{13}},
	John3: {name: "3 John", testament: NewTestament,
		aliases: []string{"3john", "3j", "3jo", "3 jo", "3jn", "3 jn"},
		verses: []int{15}},
	Jude: {name: "Jude", testament: NewTestament,
		aliases: []string{"ju", "jud"},
		verses: []int{25}},
	Revelation: {name: "Revelation", testament: NewTestament,
		aliases: []string{"rev", "re", "rv", "revel"},
		verses: []int{20, 29, 22, 11, 14, 17, 17, 13, 21, 11, 19, 17, 18, 20, 8, 21,
			18, 24, 21, 15, 27, 21}},
}

// aliasIndex maps lowercase canonical names and abbreviations to books.
// Built once at load time; construction panics if two books ever claim the
// same alias.
var aliasIndex = buildAliasIndex()

func buildAliasIndex() map[string]Book {
	idx := make(map[string]Book, bookCount*8)
	register := func(key string, book Book) {
		if prev, ok := idx[key]; ok && prev != book {
			panic(fmt.Sprintf("ref: alias %q claimed by both %s and %s",
				key, bookTable[prev].name, bookTable[book].name))
		}
		idx[key] = book
	}
	for i := range bookTable {
		book := Book(i)
		keys := append([]string{strings.ToLower(bookTable[i].name)}, bookTable[i].aliases...)
		for _, key := range keys {
			register(key, book)
			// also accept the form with internal spaces removed,
			// e.g. "1 cor" -> "1cor", "song of solomon" -> "songofsolomon"
			if packed := strings.ReplaceAll(key, " ", ""); packed != key {
				register(packed, book)
			}
		}
	}
	return idx
}

// IsValid returns true if the book is a known catalog entry.
func (b Book) IsValid() bool {
	return b >= 0 && int(b) < bookCount
}

// Name returns the canonical display name of the book.
func (b Book) Name() string {
	if !b.IsValid() {
		return fmt.Sprintf("Book(%d)", int(b))
	}
	return bookTable[b].name
}

// String returns the canonical display name.
func (b Book) String() string {
	return b.Name()
}

// Testament returns the testament the book belongs to.
func (b Book) Testament() Testament {
	if !b.IsValid() {
		return ""
	}
	return bookTable[b].testament
}

// Chapters returns the number of chapters in the book.
func (b Book) Chapters() int {
	if !b.IsValid() {
		return 0
	}
	return len(bookTable[b].verses)
}

// Verses returns the number of verses in the given 1-indexed chapter,
// following the KJV versification carried by the catalog.
func (b Book) Verses(chapter int) (int, error) {
	if !b.IsValid() {
		return 0, errors.NewUnknownBook(fmt.Sprintf("Book(%d)", int(b)))
	}
	if chapter < 1 || chapter > len(bookTable[b].verses) {
		return 0, fmt.Errorf("ref: %s has %d chapters, no chapter %d",
			bookTable[b].name, len(bookTable[b].verses), chapter)
	}
	return bookTable[b].verses[chapter-1], nil
}

// Aliases returns the registered abbreviations for the book.
func (b Book) Aliases() []string {
	if !b.IsValid() {
		return nil
	}
	out := make([]string, len(bookTable[b].aliases))
	copy(out, bookTable[b].aliases)
	return out
}

// ParseBook resolves a book token against canonical names and registered
// abbreviations. Matching is case-insensitive, ignores surrounding
// whitespace and a trailing period, and tolerates both "1 Cor" and "1Cor"
// spellings. It fails with an UnknownBookError when the token does not
// resolve.
func ParseBook(token string) (Book, error) {
	key := normalizeBookToken(token)
	if key == "" {
		return 0, errors.NewUnknownBook(strings.TrimSpace(token))
	}
	if book, ok := aliasIndex[key]; ok {
		return book, nil
	}
	if book, ok := aliasIndex[strings.ReplaceAll(key, " ", "")]; ok {
		return book, nil
	}
	return 0, errors.NewUnknownBook(strings.TrimSpace(token))
}

// normalizeBookToken lowercases a token, strips a trailing period
// ("Rom." -> "rom") and collapses internal whitespace.
func normalizeBookToken(token string) string {
	token = strings.TrimSuffix(strings.TrimSpace(token), ".")
	return strings.ToLower(strings.Join(strings.Fields(token), " "))
}

// Books returns all books in canonical order.
func Books() []Book {
	out := make([]Book, bookCount)
	for i := range out {
		out[i] = Book(i)
	}
	return out
}

// BookAbbreviations returns a listing of every book with its registered
// abbreviations, one "Name:abbr,abbr" line per book.
func BookAbbreviations() string {
	var sb strings.Builder
	for i := range bookTable {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(bookTable[i].name)
		sb.WriteByte(':')
		sb.WriteString(strings.Join(bookTable[i].aliases, ","))
	}
	return sb.String()
}
