package puzzle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrUnsupportedElement is returned for a tag the converter has no rendering for.
var ErrUnsupportedElement = errors.New("unsupported element")

// state tracks whether we are inside a <pre> block or an inline <code>.
type state struct {
	code      bool
	smallCode bool
}

// ToMarkdown reads an HTML page or fragment from r and writes the Markdown
// rendering of every <article> in document order to w.
func ToMarkdown(r io.Reader, w io.Writer) error {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(r, body)
	if err != nil {
		return fmt.Errorf("parsing HTML: %w", err)
	}

	bw := bufio.NewWriter(w)
	for _, n := range nodes {
		for _, article := range findArticles(n) {
			st := &state{}
			if err := walk(bw, st, article); err != nil {
				return err
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing markdown: %w", err)
	}
	return nil
}

// findArticles returns every <article> at or below n, in document order.
func findArticles(n *html.Node) []*html.Node {
	var out []*html.Node
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Article {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return out
}

func walk(w *bufio.Writer, st *state, n *html.Node) error {
	if err := open(w, st, n); err != nil {
		return err
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := walk(w, st, c); err != nil {
			return err
		}
	}
	return closeNode(w, st, n)
}

func open(w *bufio.Writer, st *state, n *html.Node) error {
	switch n.Type {
	case html.TextNode:
		switch {
		case st.code:
			w.WriteString(strings.TrimSpace(n.Data))
		case st.smallCode:
			w.WriteString(strings.TrimRightFunc(n.Data, unicode.IsSpace))
		case strings.TrimSpace(n.Data) != "":
			w.WriteString(n.Data)
		}
		return nil
	case html.CommentNode:
		return nil
	case html.ElementNode:
	default:
		return fmt.Errorf("%w: node type %d", ErrUnsupportedElement, n.Type)
	}

	if st.code || st.smallCode {
		return nil
	}
	switch n.Data {
	case "article", "p":
	case "h2":
		w.WriteString("## ")
	case "a":
		w.WriteString(" [")
	case "span":
		w.WriteString(" *")
	case "em":
		w.WriteString(" **")
	case "code":
		w.WriteString("`")
		st.smallCode = true
	case "pre":
		w.WriteString("```\n")
		st.code = true
	case "ul":
		w.WriteString("\n")
	case "li":
		w.WriteString("- ")
	default:
		return fmt.Errorf("%w: <%s>", ErrUnsupportedElement, n.Data)
	}
	return nil
}

func closeNode(w *bufio.Writer, st *state, n *html.Node) error {
	if n.Type != html.ElementNode {
		return nil
	}

	// Inside code only the element that opened the mode can end it.
	if st.code || st.smallCode {
		switch {
		case n.Data == "pre":
			w.WriteString("\n```\n")
			st.code = false
		case n.Data == "code" && !st.code:
			w.WriteString("`")
			st.smallCode = false
		}
		return nil
	}

	switch n.Data {
	case "article":
	case "h2", "ul", "li":
		w.WriteString("\n")
	case "p":
		w.WriteString("\n\n")
	case "a":
		href := "invalid link"
		for _, attr := range n.Attr {
			if attr.Key == "href" {
				href = attr.Val
				break
			}
		}
		fmt.Fprintf(w, "](%s) ", href)
	case "span":
		w.WriteString("* ")
	case "em":
		w.WriteString("** ")
	case "code":
		w.WriteString("`")
	default:
		return fmt.Errorf("%w: </%s>", ErrUnsupportedElement, n.Data)
	}
	return nil
}
