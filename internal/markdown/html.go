package markdown

import (
	"bytes"

	gmast "github.com/yuin/goldmark/ast"
	"golang.org/x/net/html"
)

// htmlLinkAttrs maps elements that reference other files to the attribute
// holding the reference.
var htmlLinkAttrs = map[string]string{
	"a":      "href",
	"img":    "src",
	"video":  "src",
	"audio":  "src",
	"source": "src",
}

// rawHTML returns the source text of an HTML block or inline raw HTML node.
func rawHTML(n gmast.Node, source []byte) []byte {
	var buf bytes.Buffer
	switch node := n.(type) {
	case *gmast.HTMLBlock:
		lines := node.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(source))
		}
		if node.HasClosure() {
			buf.Write(node.ClosureLine.Value(source))
		}
	case *gmast.RawHTML:
		for i := 0; i < node.Segments.Len(); i++ {
			seg := node.Segments.At(i)
			buf.Write(seg.Value(source))
		}
	}
	return buf.Bytes()
}

// htmlLinks extracts references from an HTML fragment embedded in Markdown.
func htmlLinks(fragment []byte) []Link {
	if len(bytes.TrimSpace(fragment)) == 0 {
		return nil
	}
	doc, err := html.Parse(bytes.NewReader(fragment))
	if err != nil {
		return nil
	}

	var links []Link
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if attr, ok := htmlLinkAttrs[n.Data]; ok {
				if v := getAttr(n, attr); v != "" {
					links = append(links, Link{Kind: LinkKindHTML, Destination: v})
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(doc)
	return links
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
