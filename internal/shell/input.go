package shell

import (
	"errors"
	"io"
	"strings"

	"bookshelf/internal/catalog"
)

var searchModes = map[string]catalog.SearchMode{
	"1": catalog.SearchByTitle,
	"2": catalog.SearchByAuthor,
}

func (s *Shell) readAddRequest() (catalog.AddRequest, error) {
	answers, err := s.promptAll(
		"Enter book title: ",
		"Enter author: ",
		"Enter publication year: ",
		"Enter genre: ",
		"Have you read this book? (yes/no): ",
	)
	if err != nil {
		return catalog.AddRequest{}, err
	}
	return catalog.NewAddRequest(answers[0], answers[1], answers[2], answers[3], answers[4]), nil
}

func (s *Shell) readRemoveRequest() (catalog.RemoveRequest, error) {
	title, err := s.prompt("Enter the title of the book to remove: ")
	if err != nil {
		return catalog.RemoveRequest{}, err
	}
	return catalog.RemoveRequest{Title: title}, nil
}

// readSearchRequest asks for the mode and then the term. Anything other than
// exactly "1" or "2" leaves Mode empty so the Library rejects the search.
func (s *Shell) readSearchRequest() (catalog.SearchRequest, error) {
	s.println("Search by:")
	s.println("1. Title")
	s.println("2. Author")
	answers, err := s.promptAll("Enter your choice (1 or 2): ", "Enter search term: ")
	if err != nil {
		return catalog.SearchRequest{}, err
	}
	return catalog.SearchRequest{
		Mode: searchModes[answers[0]],
		Term: answers[1],
	}, nil
}

func (s *Shell) promptAll(labels ...string) ([]string, error) {
	answers := make([]string, 0, len(labels))
	for _, label := range labels {
		answer, err := s.prompt(label)
		if err != nil {
			return nil, err
		}
		answers = append(answers, answer)
	}
	return answers, nil
}

// prompt writes label and blocks for one line. A final line without a
// newline is returned before io.EOF is reported.
func (s *Shell) prompt(label string) (string, error) {
	s.print(label)
	if s.writeErr != nil {
		return "", s.writeErr
	}
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimNewline(line), nil
		}
		return "", err
	}
	return trimNewline(line), nil
}

func trimNewline(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
