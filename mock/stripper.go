package mock

import "github.com/fwojciec/navstrip"

var _ navstrip.Stripper = (*Stripper)(nil)

// Stripper is a mock implementation of navstrip.Stripper.
type Stripper struct {
	StripFn func(html string) (string, int, bool)
}

func (s *Stripper) Strip(html string) (string, int, bool) {
	return s.StripFn(html)
}

var _ navstrip.Auditor = (*Auditor)(nil)

// Auditor is a mock implementation of navstrip.Auditor.
type Auditor struct {
	AuditFn func(html string) (int, error)
}

func (a *Auditor) Audit(html string) (int, error) {
	return a.AuditFn(html)
}
