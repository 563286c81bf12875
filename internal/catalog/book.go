package catalog

import (
	"errors"
	"strings"

	"bookshelf/internal/textutil"
)

var (
	// ErrNotFound is returned when no book matches a removal request.
	ErrNotFound = errors.New("book not found")
	// ErrInvalidSearchMode is returned for a search mode other than title or author.
	ErrInvalidSearchMode = errors.New("invalid search mode")
)

// Book is one record in the collection.
type Book struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   string `json:"year"`
	Genre  string `json:"genre"`
	Read   bool   `json:"read"`
}

// Status returns "Read" or "Unread".
func (b Book) Status() string {
	if b.Read {
		return "Read"
	}
	return "Unread"
}

// AddRequest carries the fields for a new record.
type AddRequest struct {
	Title  string
	Author string
	Year   string
	Genre  string
	Read   bool
}

// NewAddRequest builds an AddRequest from raw answers, interpreting
// readAnswer with ParseReadAnswer.
func NewAddRequest(title, author, year, genre, readAnswer string) AddRequest {
	return AddRequest{
		Title:  title,
		Author: author,
		Year:   year,
		Genre:  genre,
		Read:   ParseReadAnswer(readAnswer),
	}
}

func (r AddRequest) book() Book {
	return Book(r)
}

// RemoveRequest names the title to delete.
type RemoveRequest struct {
	Title string
}

// SearchMode selects the field a search matches against.
type SearchMode string

const (
	SearchByTitle  SearchMode = "title"
	SearchByAuthor SearchMode = "author"
)

// ParseSearchMode accepts the menu digits ("1", "2") or the field names.
func ParseSearchMode(value string) (SearchMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", string(SearchByTitle):
		return SearchByTitle, nil
	case "2", string(SearchByAuthor):
		return SearchByAuthor, nil
	default:
		return "", ErrInvalidSearchMode
	}
}

func (m SearchMode) field(b Book) (string, bool) {
	switch m {
	case SearchByTitle:
		return b.Title, true
	case SearchByAuthor:
		return b.Author, true
	default:
		return "", false
	}
}

// SearchRequest selects the field and the substring to look for.
type SearchRequest struct {
	Mode SearchMode
	Term string
}

// ParseReadAnswer reports whether answer is "yes", ignoring case and
// surrounding whitespace. Any other answer means unread.
func ParseReadAnswer(answer string) bool {
	return textutil.EqualFold(strings.TrimSpace(answer), "yes")
}
