package publish

import (
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/termapps/publisher/internal/messages"
)

// DefaultDiffMaxLines is the default maximum number of diff lines shown per file.
const DefaultDiffMaxLines = 40

func (p *Pipeline) previewDiff(name string, from string, to string) {
	if p.Out == nil || from == to {
		return
	}
	limit := p.DiffMaxLines
	if limit <= 0 {
		limit = DefaultDiffMaxLines
	}
	preview, hidden := renderTruncatedDiff(name, from, to, limit)
	_, _ = fmt.Fprintf(p.Out, messages.PublishDiffHeaderFmt, name)
	_, _ = fmt.Fprint(p.Out, preview)
	if hidden > 0 {
		_, _ = fmt.Fprintf(p.Out, messages.PublishDiffTruncatedFmt, hidden)
	}
}

// renderTruncatedDiff returns the unified diff capped at limit lines and the
// number of lines left out.
func renderTruncatedDiff(name string, from string, to string, limit int) (string, int) {
	diff := udiff.Unified("a/"+name, "b/"+name, from, to)
	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")
	if len(lines) <= limit {
		return strings.Join(lines, "\n") + "\n", 0
	}
	return strings.Join(lines[:limit], "\n") + "\n", len(lines) - limit
}
