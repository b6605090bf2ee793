package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/navstrip"
)

// residueSelector matches navs nested at any depth in a site header.
const residueSelector = "header." + navstrip.SiteHeaderClass + " nav"

// Ensure Auditor implements navstrip.Auditor at compile time.
var _ navstrip.Auditor = (*Auditor)(nil)

// Auditor parses a document into a DOM and reports nav elements that are
// still inside a site header. It catches what pattern-based stripping misses
// on nested markup.
type Auditor struct{}

// NewAuditor creates a new Auditor.
func NewAuditor() *Auditor {
	return &Auditor{}
}

// Audit returns the number of nav elements nested in site headers.
func (a *Auditor) Audit(html string) (int, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return 0, navstrip.Errorf(navstrip.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc.Find(residueSelector).Length(), nil
}
