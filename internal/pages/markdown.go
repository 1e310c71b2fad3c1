package pages

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// Link is a link destination found in a page body.
type Link struct {
	Destination string
	// Line is 1-based within the whole file, frontmatter included.
	Line int
}

// parsePage extracts the title and links of a Markdown document. The title
// is taken from frontmatter, falling back to the first level-one heading.
func parsePage(content []byte) (title string, links []Link) {
	front, body, offset := splitFrontmatter(content)
	if len(front) > 0 {
		var meta struct {
			Title string `yaml:"title"`
		}
		if err := yaml.Unmarshal(front, &meta); err == nil {
			title = meta.Title
		}
	}

	md := goldmark.New()
	ctx := parser.NewContext()
	root := md.Parser().Parse(text.NewReader(body), parser.WithContext(ctx))

	lineOf := func(n gmast.Node) int {
		start := firstSegment(n)
		if start < 0 {
			return 0
		}
		return offset + bytes.Count(body[:start], []byte("\n")) + 1
	}

	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.Heading:
			if title == "" && node.Level == 1 {
				title = strings.TrimSpace(string(headingText(node, body)))
			}
		case *gmast.Link:
			links = append(links, Link{Destination: string(node.Destination), Line: lineOf(node)})
		case *gmast.AutoLink:
			links = append(links, Link{Destination: string(node.URL(body)), Line: lineOf(node)})
		}
		return gmast.WalkContinue, nil
	})
	return title, links
}

// firstSegment returns the start offset of the first text below n, or -1.
func firstSegment(n gmast.Node) int {
	if t, ok := n.(*gmast.Text); ok {
		return t.Segment.Start
	}
	if n.Type() == gmast.TypeBlock && n.Lines().Len() > 0 {
		return n.Lines().At(0).Start
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if start := firstSegment(c); start >= 0 {
			return start
		}
	}
	return -1
}

func headingText(n gmast.Node, source []byte) []byte {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*gmast.Text); ok {
			buf.Write(t.Segment.Value(source))
			continue
		}
		buf.Write(headingText(c, source))
	}
	return buf.Bytes()
}

// splitFrontmatter separates a leading `---` block from the body and returns
// the number of lines that precede the body.
func splitFrontmatter(content []byte) (front, body []byte, lines int) {
	normalized := bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(normalized, []byte("---\n")) {
		return nil, normalized, 0
	}
	rest := normalized[len("---\n"):]
	if bytes.HasPrefix(rest, []byte("---\n")) {
		return nil, rest[len("---\n"):], 2
	}
	idx := bytes.Index(rest, []byte("\n---\n"))
	if idx < 0 {
		return nil, normalized, 0
	}
	front = rest[:idx+1]
	body = rest[idx+len("\n---\n"):]
	return front, body, bytes.Count(normalized[:len(normalized)-len(body)], []byte("\n"))
}
