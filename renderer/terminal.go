package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
)

// escape protects table cells from user input containing pipes or newlines.
func escape(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}

// Print writes the markdown document to w, styled for a terminal.
// The raw markdown is written when plain is true.
func Print(w io.Writer, markdown string, plain bool) error {
	if plain {
		_, err := fmt.Fprintln(w, markdown)
		return err
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("cannot create markdown renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return fmt.Errorf("cannot render markdown: %w", err)
	}
	_, err = fmt.Fprint(w, out)
	return err
}
