package shell

import "io"

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
)

func (s *Shell) print(text string) {
	if s.writeErr != nil {
		return
	}
	if _, err := io.WriteString(s.out, text); err != nil {
		s.writeErr = err
	}
}

func (s *Shell) println(text string) {
	s.print(text + "\n")
}

func (s *Shell) success(text string) {
	s.println(s.colorize(ansiGreen, text))
}

func (s *Shell) failure(text string) {
	s.println(s.colorize(ansiRed, text))
}

func (s *Shell) colorize(color, text string) string {
	if !s.color {
		return text
	}
	return color + text + ansiReset
}
