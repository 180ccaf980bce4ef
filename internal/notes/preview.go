package notes

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Preview flattens note content into a single plain-text line for list
// rows: markdown structure is stripped via the goldmark AST, whitespace
// collapsed, and the result truncated to max characters with an ellipsis.
func Preview(content string, max int) string {
	src := []byte(content)
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	var b strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			b.WriteByte(' ')
		case *ast.CodeBlock, *ast.FencedCodeBlock:
			// One marker instead of dumping code into the row
			b.WriteString("[code] ")
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	line := strings.Join(strings.Fields(b.String()), " ")

	runes := []rune(line)
	if max > 0 && len(runes) > max {
		if max > 1 {
			return string(runes[:max-1]) + "…"
		}
		return string(runes[:max])
	}
	return line
}
