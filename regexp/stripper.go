// Package regexp strips nav elements from site headers by pattern matching
// over raw text. Matching is non-greedy and does not track nesting: a header
// ends at the first following </header> and a nav at the first following
// </nav>.
package regexp

import (
	"regexp"
	"strings"

	"github.com/fwojciec/navstrip"
)

var (
	headerPattern = regexp.MustCompile(`(?is)(<header\b[^>]*>)(.*?)(</header>)`)
	navPattern    = regexp.MustCompile(`(?is)<nav\b[^>]*>.*?</nav>`)
)

// Header is a header block located in a document.
type Header struct {
	// Start and End are byte offsets of the whole block.
	Start int
	End   int

	Open  string
	Inner string
	Close string
}

// FindHeaders returns every header block in html, in document order.
func FindHeaders(html string) []Header {
	var headers []Header
	for _, loc := range headerPattern.FindAllStringSubmatchIndex(html, -1) {
		headers = append(headers, Header{
			Start: loc[0],
			End:   loc[1],
			Open:  html[loc[2]:loc[3]],
			Inner: html[loc[4]:loc[5]],
			Close: html[loc[6]:loc[7]],
		})
	}
	return headers
}

// Ensure Stripper implements navstrip.Stripper at compile time.
var _ navstrip.Stripper = (*Stripper)(nil)

// Stripper implements navstrip.Stripper with regular expressions.
type Stripper struct{}

// NewStripper creates a new Stripper.
func NewStripper() *Stripper {
	return &Stripper{}
}

// Strip removes nav elements from every site header in html. Text outside
// header blocks is never touched.
func (s *Stripper) Strip(html string) (string, int, bool) {
	headers := FindHeaders(html)
	if len(headers) == 0 {
		return html, 0, false
	}

	var b strings.Builder
	b.Grow(len(html))

	removed := 0
	last := 0
	for _, h := range headers {
		b.WriteString(html[last:h.Start])
		last = h.End

		inner, n := StripHeader(h)
		if n == 0 {
			b.WriteString(html[h.Start:h.End])
			continue
		}
		removed += n
		b.WriteString(h.Open)
		b.WriteString(inner)
		b.WriteString(h.Close)
	}
	b.WriteString(html[last:])

	if removed == 0 {
		return html, 0, false
	}
	return b.String(), removed, true
}

// StripHeader returns the header's inner content with nav elements removed
// and blank lines cleaned, and the number of navs removed. Headers without
// the site-header class, or without navs, yield their inner content as is
// and zero.
func StripHeader(h Header) (string, int) {
	if !navstrip.HasSiteHeaderClass(h.Open) {
		return h.Inner, 0
	}

	n := len(navPattern.FindAllStringIndex(h.Inner, -1))
	if n == 0 {
		return h.Inner, 0
	}

	inner := navPattern.ReplaceAllLiteralString(h.Inner, "")
	return navstrip.CleanBlankLines(inner), n
}
