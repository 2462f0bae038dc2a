package app

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/amenflux/gitopsview/internal/domain/content"
)

// PrintDocuments writes summaries as an aligned table.
func (v *Viewer) PrintDocuments(docs []DocumentSummary) error {
	if len(docs) == 0 {
		_, err := fmt.Fprintln(v.out, "No documents found.")
		return err
	}

	w := tabwriter.NewWriter(v.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "OWNER\tID\tTAB\tTYPE\tLINES\tTITLE")
	for _, d := range docs {
		id := d.ID
		if d.Default {
			id += "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n", d.Owner, id, d.Tab, d.Type, d.Lines, d.Title)
	}
	return w.Flush()
}

// PrintDocument writes a document's content, optionally with a line gutter.
// Without the gutter the output is the exact copy payload.
func (v *Viewer) PrintDocument(doc content.Document, lineNumbers bool) error {
	if !lineNumbers {
		_, err := fmt.Fprint(v.out, doc.Content())
		return err
	}

	lines := doc.Lines()
	gutter := len(fmt.Sprint(len(lines)))
	var b strings.Builder
	for i, line := range lines {
		fmt.Fprintf(&b, "%*d │ %s\n", gutter, i+1, line)
	}
	_, err := fmt.Fprint(v.out, b.String())
	return err
}

// PrintFlow writes the stages top to bottom joined by arrows.
func (v *Viewer) PrintFlow(stages []FlowStage) error {
	var b strings.Builder
	for i, s := range stages {
		if i > 0 {
			b.WriteString("   ↓\n")
		}
		fmt.Fprintf(&b, "[%s] %s\n", s.Key, s.Label)
		if s.Summary != "" {
			fmt.Fprintf(&b, "    %s\n", s.Summary)
		}
		for _, bullet := range s.Bullets {
			fmt.Fprintf(&b, "    • %s\n", bullet)
		}
		if s.Footer != "" {
			fmt.Fprintf(&b, "    %s\n", s.Footer)
		}
	}
	_, err := fmt.Fprint(v.out, b.String())
	return err
}
