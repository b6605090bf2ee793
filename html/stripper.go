// Package html strips nav elements from site headers using the
// golang.org/x/net/html tokenizer.
//
// Unlike the pattern-based stripper it tracks nesting: a site header ends at
// its matching </header> and a nav at its matching </nav>. Class attributes
// are read as the tokenizer sees them, so unquoted values also qualify.
// Every byte outside a removed nav is copied from the tokenizer's raw input.
package html

import (
	"io"
	"strings"

	"github.com/fwojciec/navstrip"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Stripper implements navstrip.Stripper at compile time.
var _ navstrip.Stripper = (*Stripper)(nil)

// Stripper implements navstrip.Stripper with a streaming HTML tokenizer.
type Stripper struct{}

// NewStripper creates a new Stripper.
func NewStripper() *Stripper {
	return &Stripper{}
}

// Strip removes nav elements nested anywhere inside a site header.
// Unclosed site headers and unclosed navs are left as they are.
func (s *Stripper) Strip(src string) (string, int, bool) {
	z := html.NewTokenizer(strings.NewReader(src))

	var out strings.Builder
	out.Grow(len(src))

	var (
		h       *headerState
		removed int
	)
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if z.Err() != io.EOF {
				return src, 0, false
			}
			break
		}

		// Raw must be copied before Token, which lowercases names in place.
		raw := string(z.Raw())
		tok := z.Token()

		if h == nil {
			if tt == html.StartTagToken && tok.DataAtom == atom.Header && isSiteHeader(tok) {
				h = &headerState{open: raw}
				continue
			}
			out.WriteString(raw)
			continue
		}

		if h.closes(tt, tok) {
			h.finish(&out, raw)
			removed += h.removed
			h = nil
			continue
		}
		h.consume(tt, tok, raw)
	}

	if h != nil {
		out.WriteString(h.open)
		out.WriteString(h.raw.String())
	}

	if removed == 0 {
		return src, 0, false
	}
	return out.String(), removed, true
}

// headerState accumulates the inner content of an open site header.
type headerState struct {
	open string

	// raw holds the inner content as read; kept drops completed navs.
	raw  strings.Builder
	kept strings.Builder
	nav  strings.Builder

	depth    int
	navDepth int
	removed  int
}

// closes reports whether the token is the header's matching end tag,
// updating the nested header depth otherwise.
func (h *headerState) closes(tt html.TokenType, tok html.Token) bool {
	if tok.DataAtom != atom.Header {
		return false
	}
	switch tt {
	case html.StartTagToken:
		h.depth++
	case html.EndTagToken:
		if h.depth == 0 {
			return true
		}
		h.depth--
	}
	return false
}

func (h *headerState) consume(tt html.TokenType, tok html.Token, raw string) {
	h.raw.WriteString(raw)

	isNav := tok.DataAtom == atom.Nav
	switch {
	case h.navDepth > 0:
		h.nav.WriteString(raw)
		if !isNav {
			return
		}
		switch tt {
		case html.StartTagToken:
			h.navDepth++
		case html.EndTagToken:
			h.navDepth--
			if h.navDepth == 0 {
				h.nav.Reset()
				h.removed++
			}
		}
	case isNav && tt == html.StartTagToken:
		h.navDepth = 1
		h.nav.WriteString(raw)
	case isNav && tt == html.SelfClosingTagToken:
		h.removed++
	default:
		h.kept.WriteString(raw)
	}
}

// finish writes the header block to out, closed by the raw end tag.
func (h *headerState) finish(out *strings.Builder, closing string) {
	out.WriteString(h.open)
	if h.removed == 0 {
		out.WriteString(h.raw.String())
	} else {
		// An unterminated nav is kept.
		h.kept.WriteString(h.nav.String())
		out.WriteString(navstrip.CleanBlankLines(h.kept.String()))
	}
	out.WriteString(closing)
}

func isSiteHeader(tok html.Token) bool {
	for _, attr := range tok.Attr {
		if attr.Key == "class" && navstrip.HasClass(attr.Val, navstrip.SiteHeaderClass) {
			return true
		}
	}
	return false
}
