// Package prompt asks for the project name and archetype on a line-based
// terminal.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Diomede5/init-web-app/internal/archetype"
	oerrors "github.com/Diomede5/init-web-app/internal/errors"
)

// Prompter reads answers line by line from r and writes prompts to w.
type Prompter struct {
	reader *bufio.Reader
	w      io.Writer
	ctx    context.Context
}

// New creates a Prompter.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(r),
		w:      w,
	}
}

// WithContext makes reads return ErrCancelled once ctx is done, even while
// blocked on a terminal that never answers.
func (p *Prompter) WithContext(ctx context.Context) *Prompter {
	p.ctx = ctx
	return p
}

// ProjectName asks until a non-empty name is entered.
func (p *Prompter) ProjectName() (string, error) {
	for {
		fmt.Fprintf(p.w, "\nProject Name\n\n")

		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
	}
}

// Archetype shows the menu until a valid choice is entered. There is no
// retry bound; end of input ends the loop.
func (p *Prompter) Archetype() (archetype.Archetype, error) {
	for {
		fmt.Fprintf(p.w, "\n%s\n\n", Menu())

		line, err := p.readLine()
		if err != nil {
			return 0, err
		}

		a, err := archetype.Parse(line)
		if err == nil {
			return a, nil
		}
	}
}

// Menu renders the numbered archetype menu.
func Menu() string {
	var sb strings.Builder
	sb.WriteString("Select Project Type:")
	for _, a := range archetype.All() {
		fmt.Fprintf(&sb, "\n\t%d) %s", a.Number(), a.Description())
	}
	return sb.String()
}

// readLine returns the next trimmed line. A final line without a newline
// still counts; end of input with nothing left is ErrCancelled.
func (p *Prompter) readLine() (string, error) {
	if p.ctx == nil {
		return parseLine(p.reader.ReadString('\n'))
	}

	type answer struct {
		line string
		err  error
	}
	ch := make(chan answer, 1)
	go func() {
		line, err := p.reader.ReadString('\n')
		ch <- answer{line, err}
	}()

	select {
	case <-p.ctx.Done():
		return "", fmt.Errorf("prompt interrupted: %w", oerrors.ErrCancelled)
	case a := <-ch:
		return parseLine(a.line, a.err)
	}
}

func parseLine(line string, err error) (string, error) {
	if err != nil {
		if errors.Is(err, io.EOF) {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				return trimmed, nil
			}
			return "", fmt.Errorf("end of input: %w", oerrors.ErrCancelled)
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
