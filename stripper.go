package navstrip

import (
	"regexp"
	"strings"
)

// SiteHeaderClass is the class token that marks a header for nav removal.
const SiteHeaderClass = "site-header"

// Stripper removes nav elements nested in site headers from an HTML document.
type Stripper interface {
	// Strip returns the rewritten document, the number of nav elements
	// removed and whether the document changed.
	Strip(html string) (string, int, bool)
}

// Auditor inspects a document for nav elements left inside site headers.
type Auditor interface {
	Audit(html string) (int, error)
}

var (
	classAttrPattern  = regexp.MustCompile(`(?is)class\s*=\s*(".*?"|'.*?')`)
	blankLinePattern  = regexp.MustCompile(`(\r?\n)[ \t]+\r?\n`)
	multiBlankPattern = regexp.MustCompile(`(\r?\n)(?:\r?\n){2,}`)
)

// HasSiteHeaderClass reports whether the opening tag text declares a class
// attribute containing the site-header token. Every class attribute in the
// tag is checked, so duplicated attributes are tolerated.
func HasSiteHeaderClass(tag string) bool {
	for _, m := range classAttrPattern.FindAllStringSubmatch(tag, -1) {
		value := m[1][1 : len(m[1])-1]
		if HasClass(value, SiteHeaderClass) {
			return true
		}
	}
	return false
}

// HasClass reports whether the whitespace-separated class list contains class.
func HasClass(value, class string) bool {
	for _, token := range strings.Fields(value) {
		if token == class {
			return true
		}
	}
	return false
}

// CleanBlankLines drops lines holding only spaces or tabs and collapses
// runs of three or more line breaks to a single blank line. LF and CRLF
// line breaks are both recognised and the first break of each run is kept.
func CleanBlankLines(s string) string {
	s = blankLinePattern.ReplaceAllString(s, "$1")
	return multiBlankPattern.ReplaceAllString(s, "$1$1")
}
