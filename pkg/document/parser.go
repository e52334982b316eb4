package document

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

var yamlLineRe = regexp.MustCompile(`line (\d+)`)

// Parse builds a CommandDocument from raw file content. It never fails
// outright: a malformed frontmatter block is recorded in ParseErr and the
// body is still extracted so downstream checks can run. Reading the file is
// the caller's responsibility.
func Parse(path string, source []byte) *CommandDocument {
	doc := &CommandDocument{Path: path}

	md := goldmark.New(
		goldmark.WithExtensions(meta.Meta),
	)

	pctx := parser.NewContext()
	root := md.Parser().Parse(text.NewReader(source), parser.WithContext(pctx))

	metaData, err := meta.TryGet(pctx)
	if err != nil {
		doc.ParseErr = &ParseError{
			Path: path,
			Line: yamlErrorLine(err),
			Err:  err,
		}
	} else if metaData != nil {
		doc.Frontmatter = metaData
	}

	doc.Meta, doc.MetaErr = decodeMetadata(doc.Frontmatter)
	doc.Body = extractBody(string(source))
	doc.Headings = collectHeadings(root, source)

	return doc
}

// yamlErrorLine pulls the line number out of a yaml parse error message.
// Returns 0 when the error carries no position.
func yamlErrorLine(err error) int {
	m := yamlLineRe.FindStringSubmatch(err.Error())
	if m == nil {
		return 0
	}
	n, convErr := strconv.Atoi(m[1])
	if convErr != nil {
		return 0
	}
	return n
}

// extractBody returns the text strictly after the closing frontmatter
// delimiter, with leading blank lines stripped. Without a leading `---`
// the whole content is the body.
func extractBody(content string) string {
	if !strings.HasPrefix(content, "---") {
		return content
	}

	lines := strings.Split(content, "\n")
	frontmatterEnd := -1

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			frontmatterEnd = i
			break
		}
	}

	if frontmatterEnd == -1 {
		return content
	}

	return strings.TrimLeft(strings.Join(lines[frontmatterEnd+1:], "\n"), "\n")
}

// collectHeadings walks the markdown AST and returns every heading in
// document order with its level and source line.
func collectHeadings(root ast.Node, source []byte) []Heading {
	var headings []Heading

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		headings = append(headings, Heading{
			Level: h.Level,
			Text:  nodeText(h, source),
			Line:  headingLine(h, source),
		})
		return ast.WalkSkipChildren, nil
	})

	return headings
}

// nodeText concatenates the raw text segments beneath a node.
func nodeText(n ast.Node, source []byte) string {
	var sb strings.Builder

	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := c.(*ast.Text); ok {
			sb.Write(t.Segment.Value(source))
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(sb.String())
}

// headingLine converts a heading's first text segment offset into a 1-based
// line number within the original source (frontmatter included).
func headingLine(h *ast.Heading, source []byte) int {
	if h.Lines().Len() == 0 {
		return 0
	}
	start := h.Lines().At(0).Start
	if start > len(source) {
		return 0
	}
	return 1 + bytes.Count(source[:start], []byte("\n"))
}
