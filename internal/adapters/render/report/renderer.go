package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

const wordWrap = 80

// Markdown renders an agent report as styled terminal markdown. If the
// renderer cannot be built the raw markdown is written instead, so --render
// never loses output.
func Markdown(w io.Writer, markdown string) error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		_, writeErr := fmt.Fprintln(w, markdown)
		return writeErr
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		_, writeErr := fmt.Fprintln(w, markdown)
		return writeErr
	}

	_, err = fmt.Fprint(w, rendered)
	return err
}
