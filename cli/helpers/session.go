package helpers

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/spf13/afero"

	"github.com/agentdesk/agentdesk/engine/category"
	"github.com/agentdesk/agentdesk/engine/template"
)

// Handler serves one request at a time.
type Handler interface {
	Handle(ctx context.Context, query string) (*template.Result, error)
	Classify(ctx context.Context, query string) (category.Category, error)
}

var quitWords = map[string]struct{}{"quit": {}, "exit": {}, "q": {}}

// Session prints requests and their results for the run command.
type Session struct {
	handler      Handler
	out          io.Writer
	style        Styler
	classifyOnly bool
}

func NewSession(handler Handler, out io.Writer, classifyOnly bool) *Session {
	return &Session{handler: handler, out: out, style: NewStyler(out), classifyOnly: classifyOnly}
}

// Process handles a single query.
func (s *Session) Process(ctx context.Context, query string) error {
	fmt.Fprintf(s.out, "\nProcessing: %s\n", query)
	fmt.Fprintln(s.out, Rule("-", sectionWidth))
	if s.classifyOnly {
		c, err := s.handler.Classify(ctx, query)
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "%s %s\n", s.style.Label("Category:"), c)
		return nil
	}
	res, err := s.handler.Handle(ctx, query)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s %s\n", s.style.Label("Category:"), res.Category())
	fmt.Fprintf(s.out, "\n%s\n%s\n", s.style.Label("Response:"), res.Response())
	return nil
}

// Batch processes one request per line of a file. Blank lines and lines
// starting with "#" are skipped but still count toward the request numbering.
func (s *Session) Batch(ctx context.Context, fsys afero.Fs, path string) error {
	data, err := afero.ReadFile(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewCliError(CodeFileNotFound, "File not found: "+path)
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	lines := splitLines(strings.TrimSpace(string(data)))
	for i, line := range lines {
		query := strings.TrimSpace(line)
		if query == "" || strings.HasPrefix(query, "#") {
			continue
		}
		fmt.Fprintf(s.out, "\n%s\n", Rule("=", bannerWidth))
		fmt.Fprintf(s.out, "Request %d/%d\n", i+1, len(lines))
		fmt.Fprintln(s.out, Rule("=", bannerWidth))
		if err := s.Process(ctx, query); err != nil {
			return err
		}
	}
	return nil
}

// REPL reads queries until a quit word or end of input.
func (s *Session) REPL(ctx context.Context, in io.Reader, title, prompt string) error {
	fmt.Fprintln(s.out, Rule("=", bannerWidth))
	fmt.Fprintf(s.out, "  %s\n", s.style.Title(title))
	fmt.Fprintln(s.out, "  Type 'quit' or 'exit' to stop")
	fmt.Fprintln(s.out, Rule("=", bannerWidth))
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintln(s.out)
		fmt.Fprint(s.out, s.style.Prompt(prompt+" > "))
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			fmt.Fprintln(s.out)
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		}
		query := strings.TrimSpace(scanner.Text())
		if _, quit := quitWords[strings.ToLower(query)]; quit {
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		}
		if query == "" {
			continue
		}
		if err := s.Process(ctx, query); err != nil {
			return err
		}
	}
}

// splitLines splits on \n, \r\n, and \r.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
