package sgd

import "strings"

// Gene is a locus reached by gene name: the name is resolved to a locus
// identifier through the bundled mapping at construction, and the
// wrapper then behaves exactly as that locus.
type Gene struct {
	Locus

	GeneName string
}

// NewGene creates a wrapper for a standard gene name such as "ARO1".
// Unknown names yield an *InvalidGeneError.
func NewGene(geneName string, opts *Options) (*Gene, error) {
	locusID, err := ResolveLocus(geneName)
	if err != nil {
		return nil, err
	}
	return &Gene{
		Locus:    *NewLocus(locusID, opts),
		GeneName: strings.ToUpper(geneName),
	}, nil
}
