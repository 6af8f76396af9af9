package sgd

// Phenotype wraps the SGD phenotype resource. Phenotype names are used
// verbatim, e.g. "increased_chemical_compound_accumulation".
type Phenotype struct {
	PhenotypeName string

	client *client
}

// NewPhenotype creates a phenotype wrapper for a phenotype name.
func NewPhenotype(phenotypeName string, opts *Options) *Phenotype {
	return &Phenotype{
		PhenotypeName: phenotypeName,
		client:        newClient(opts),
	}
}

// Endpoints maps each accessor name to a human-readable description.
func (p *Phenotype) Endpoints() map[string]string {
	return PhenotypeEndpoints
}

// URL returns the base resource URL for the phenotype.
func (p *Phenotype) URL() string {
	return p.url(subDetails)
}

func (p *Phenotype) url(sub string) string {
	return buildURL(p.client.baseURL, categoryPhenotype, p.PhenotypeName, sub)
}

// Details gets basic information about a phenotype.
func (p *Phenotype) Details() (*Response, error) {
	return p.client.fetch(p.url(subDetails))
}

// LocusDetails gets a list of genes annotated to a phenotype with some
// information about the experiment and strain background.
func (p *Phenotype) LocusDetails() (*Response, error) {
	return p.client.fetch(p.url(subLocusDetails))
}
