package domain

import (
	"strings"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Poem is one record of the collection. Values are never mutated after load.
type Poem struct {
	ID      int      `toml:"id" yaml:"id"`
	Title   string   `toml:"title" yaml:"title"`
	Author  string   `toml:"author" yaml:"author"`
	Dynasty string   `toml:"dynasty" yaml:"dynasty"`
	Lines   []string `toml:"lines" yaml:"lines"`
	Image   string   `toml:"image" yaml:"image"`
	Seal    string   `toml:"seal,omitempty" yaml:"seal,omitempty"`
}

// SealGlyph returns the seal character, falling back to the first rune of the author
func (p Poem) SealGlyph() string {
	if p.Seal != "" {
		return p.Seal
	}
	r, size := utf8.DecodeRuneInString(p.Author)
	if size == 0 || r == utf8.RuneError {
		return ""
	}
	return string(r)
}

// Byline returns "dynasty · author", or just the author when the dynasty is unknown
func (p Poem) Byline() string {
	if p.Dynasty == "" {
		return p.Author
	}
	return p.Dynasty + " · " + p.Author
}

// Validate checks the record-level invariants
func (p Poem) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required, validation.Min(1)),
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Author, validation.Required),
		validation.Field(&p.Lines, validation.Required, validation.Each(validation.By(notBlank))),
		validation.Field(&p.Seal, validation.RuneLength(0, 1)),
	)
}

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return validation.NewError("validation_blank_line", "must not be blank")
	}
	return nil
}

// MatchKind tells which field of a poem satisfied a search query
type MatchKind int

const (
	MatchTitle MatchKind = iota
	MatchAuthor
	MatchContent
)

func (k MatchKind) String() string {
	switch k {
	case MatchTitle:
		return "title"
	case MatchAuthor:
		return "author"
	case MatchContent:
		return "content"
	default:
		return "unknown"
	}
}

// SearchResult is a poem annotated with its position in the collection
type SearchResult struct {
	Poem        Poem
	SourceIndex int
	MatchKind   MatchKind
}
