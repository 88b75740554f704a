// Package media models published items (books, magazines, newspapers) and
// a library that holds them.
package media

import (
	"fmt"
	"strings"

	"github.com/alem-hub/gradebook/internal/domain/shared"
)

// Kind tells the variants apart.
type Kind string

const (
	KindBook      Kind = "Book"
	KindMagazine  Kind = "Magazine"
	KindNewspaper Kind = "Newspaper"
)

// Item is one published work. Only this package implements it.
type Item interface {
	Kind() Kind
	Info() Info
	// Describe returns the heading line followed by the variant details.
	Describe() []string

	sealed()
}

// Info is what every item carries.
type Info struct {
	title  string
	author string
	year   int
}

// NewInfo validates the common fields.
func NewInfo(title, author string, year int) (Info, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Info{}, shared.ErrEmptyTitle
	}
	author = strings.TrimSpace(author)
	if author == "" {
		return Info{}, shared.ErrEmptyAuthor
	}
	if year <= 0 {
		return Info{}, shared.ErrInvalidYear
	}
	return Info{title: title, author: author, year: year}, nil
}

func (i Info) Title() string  { return i.title }
func (i Info) Author() string { return i.author }
func (i Info) Year() int      { return i.year }

// heading returns "Book: The Great Gatsby by F. Scott Fitzgerald (1925)".
func (i Info) heading(k Kind) string {
	return fmt.Sprintf("%s: %s by %s (%d)", k, i.title, i.author, i.year)
}

func required(op, field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", shared.NewDomainError("media", op, shared.ErrEmptyValue, field+" cannot be empty")
	}
	return value, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// VARIANTS
// ══════════════════════════════════════════════════════════════════════════════

// Book has a page count and a genre.
type Book struct {
	info  Info
	pages int
	genre string
}

// NewBook creates a book.
func NewBook(info Info, pages int, genre string) (*Book, error) {
	if pages <= 0 {
		return nil, shared.ErrInvalidPages
	}
	genre, err := required("NewBook", "genre", genre)
	if err != nil {
		return nil, err
	}
	return &Book{info: info, pages: pages, genre: genre}, nil
}

func (b *Book) Kind() Kind    { return KindBook }
func (b *Book) Info() Info    { return b.info }
func (b *Book) Pages() int    { return b.pages }
func (b *Book) Genre() string { return b.genre }
func (b *Book) sealed()       {}

func (b *Book) Describe() []string {
	return []string{
		b.info.heading(KindBook),
		fmt.Sprintf("This book has %d pages and is a %s book.", b.pages, b.genre),
	}
}

// Magazine is a periodical about one topic.
type Magazine struct {
	info        Info
	topic       string
	periodicity string
}

// NewMagazine creates a magazine.
func NewMagazine(info Info, topic, periodicity string) (*Magazine, error) {
	topic, err := required("NewMagazine", "topic", topic)
	if err != nil {
		return nil, err
	}
	periodicity, err = required("NewMagazine", "periodicity", periodicity)
	if err != nil {
		return nil, err
	}
	return &Magazine{info: info, topic: topic, periodicity: periodicity}, nil
}

func (m *Magazine) Kind() Kind          { return KindMagazine }
func (m *Magazine) Info() Info          { return m.info }
func (m *Magazine) Topic() string       { return m.topic }
func (m *Magazine) Periodicity() string { return m.periodicity }
func (m *Magazine) sealed()             {}

func (m *Magazine) Describe() []string {
	return []string{
		m.info.heading(KindMagazine),
		fmt.Sprintf("This magazine is about %s and is published %s.", m.topic, m.periodicity),
	}
}

// Newspaper carries the topic of the day.
type Newspaper struct {
	info        Info
	topic       string
	periodicity string
}

// NewNewspaper creates a newspaper.
func NewNewspaper(info Info, topic, periodicity string) (*Newspaper, error) {
	topic, err := required("NewNewspaper", "topic", topic)
	if err != nil {
		return nil, err
	}
	periodicity, err = required("NewNewspaper", "periodicity", periodicity)
	if err != nil {
		return nil, err
	}
	return &Newspaper{info: info, topic: topic, periodicity: periodicity}, nil
}

func (n *Newspaper) Kind() Kind          { return KindNewspaper }
func (n *Newspaper) Info() Info          { return n.info }
func (n *Newspaper) Topic() string       { return n.topic }
func (n *Newspaper) Periodicity() string { return n.periodicity }
func (n *Newspaper) sealed()             {}

func (n *Newspaper) Describe() []string {
	return []string{
		n.info.heading(KindNewspaper),
		fmt.Sprintf("Today's topic is %s.", n.topic),
		fmt.Sprintf("Remember that this newspaper is published %s.", n.periodicity),
	}
}

var (
	_ Item = (*Book)(nil)
	_ Item = (*Magazine)(nil)
	_ Item = (*Newspaper)(nil)
)
