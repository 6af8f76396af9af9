package sgd

import "strings"

// GOTerm wraps the SGD gene ontology resource. Identifiers are
// upper-cased, and bare numeric identifiers are zero-padded to seven
// digits and given the canonical "GO:" prefix, so NewGOTerm("1") and
// NewGOTerm("GO:0000001") address the same term.
type GOTerm struct {
	GOID string

	client *client
}

// NewGOTerm creates a GO term wrapper for an identifier such as
// "GO:0000001".
func NewGOTerm(goID string, opts *Options) *GOTerm {
	return &GOTerm{
		GOID:   normalizeGOID(goID),
		client: newClient(opts),
	}
}

func normalizeGOID(goID string) string {
	id := strings.ToUpper(goID)
	if id != "" && isDigits(id) {
		if len(id) < 7 {
			id = strings.Repeat("0", 7-len(id)) + id
		}
		id = "GO:" + id
	}
	return id
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Endpoints maps each accessor name to a human-readable description.
func (g *GOTerm) Endpoints() map[string]string {
	return GOEndpoints
}

// URL returns the base resource URL for the GO term.
func (g *GOTerm) URL() string {
	return g.url(subDetails)
}

func (g *GOTerm) url(sub string) string {
	return buildURL(g.client.baseURL, categoryGO, g.GOID, sub)
}

// Details gets basic information about a GO term.
func (g *GOTerm) Details() (*Response, error) {
	return g.client.fetch(g.url(subDetails))
}

// LocusDetails gets a list of genes annotated to a GO term.
func (g *GOTerm) LocusDetails() (*Response, error) {
	return g.client.fetch(g.url(subLocusDetails))
}
