package main

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"bookshelf/internal/catalog"
)

type bookOutput struct {
	json  bool
	color bool
	empty string
}

func printBooks(cmd *cobra.Command, books []catalog.Book, opts bookOutput) error {
	if opts.json {
		if books == nil {
			books = []catalog.Book{}
		}
		return writeJSON(cmd, books)
	}

	out := cmd.OutOrStdout()
	if len(books) == 0 {
		_, err := fmt.Fprintln(out, opts.empty)
		return err
	}
	_, err := fmt.Fprintln(out, renderBookTable(books, opts.color))
	return err
}

func renderBookTable(books []catalog.Book, color bool) string {
	headers := []string{"#", "Title", "Author", "Year", "Genre", "Status"}
	aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft, alignLeft}

	rows := make([][]string, 0, len(books))
	for i, book := range books {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			book.Title,
			book.Author,
			book.Year,
			book.Genre,
			statusCell(book, color),
		})
	}
	return renderTable(headers, rows, aligns)
}

func statusCell(book catalog.Book, color bool) string {
	status := book.Status()
	if !color {
		return status
	}
	if book.Read {
		return text.FgGreen.Sprint(status)
	}
	return text.FgYellow.Sprint(status)
}
