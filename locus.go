package sgd

import "strings"

// Locus wraps the SGD locus resource. The identifier is upper-cased at
// construction and immutable afterwards. Each instance owns its own
// response memo; build a fresh instance to see fresh remote state.
type Locus struct {
	LocusID string

	client *client
}

// NewLocus creates a locus wrapper for an SGD locus identifier such as
// "S000002534".
func NewLocus(locusID string, opts *Options) *Locus {
	return &Locus{
		LocusID: strings.ToUpper(locusID),
		client:  newClient(opts),
	}
}

// Endpoints maps each accessor name to a human-readable description.
func (l *Locus) Endpoints() map[string]string {
	return LocusEndpoints
}

// URL returns the base resource URL for the locus.
func (l *Locus) URL() string {
	return l.url(subDetails)
}

func (l *Locus) url(sub string) string {
	return buildURL(l.client.baseURL, categoryLocus, l.LocusID, sub)
}

// Details gets basic information about a locus.
func (l *Locus) Details() (*Response, error) {
	return l.client.fetch(l.url(subDetails))
}

// GODetails gets GO (gene ontology) annotations and the references used
// to make them.
func (l *Locus) GODetails() (*Response, error) {
	return l.client.fetch(l.url(subGODetails))
}

// InteractionDetails gets interaction annotations and the references
// used to make them.
func (l *Locus) InteractionDetails() (*Response, error) {
	return l.client.fetch(l.url(subInteractionDetails))
}

// LiteratureDetails gets references which refer to a gene, organized by
// subject of relevance.
func (l *Locus) LiteratureDetails() (*Response, error) {
	return l.client.fetch(l.url(subLiteratureDetails))
}

// NeighborSequenceDetails gets sequences for neighboring loci in the
// strains for which they are available.
func (l *Locus) NeighborSequenceDetails() (*Response, error) {
	return l.client.fetch(l.url(subNeighborSequenceDetails))
}

// PhenotypeDetails gets phenotype annotations and the references used
// to make them.
func (l *Locus) PhenotypeDetails() (*Response, error) {
	return l.client.fetch(l.url(subPhenotypeDetails))
}

// PosttranslationalDetails gets posttranslational protein data.
func (l *Locus) PosttranslationalDetails() (*Response, error) {
	return l.client.fetch(l.url(subPosttranslationalDetails))
}

// ProteinDomainDetails gets protein domains, their sources, and their
// positions relative to protein sequence.
func (l *Locus) ProteinDomainDetails() (*Response, error) {
	return l.client.fetch(l.url(subProteinDomainDetails))
}

// ProteinExperimentDetails gets metadata and data values for protein
// experiments.
func (l *Locus) ProteinExperimentDetails() (*Response, error) {
	return l.client.fetch(l.url(subProteinExperimentDetails))
}

// RegulationDetails gets regulation annotations and the references used
// to make them.
func (l *Locus) RegulationDetails() (*Response, error) {
	return l.client.fetch(l.url(subRegulationDetails))
}

// SequenceDetails gets sequence for genomic, coding, protein, and
// +/- 1KB sequence.
func (l *Locus) SequenceDetails() (*Response, error) {
	return l.client.fetch(l.url(subSequenceDetails))
}
