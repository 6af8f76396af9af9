package sgd

import "strings"

// DefaultBaseURL is the origin all requests are issued against unless
// overridden through Options.BaseURL.
const DefaultBaseURL = "https://www.yeastgenome.org/backend"

// Resource categories. These are fixed per wrapper type and never
// user-supplied.
const (
	categoryLocus     = "locus"
	categoryPhenotype = "phenotype"
	categoryGO        = "go"
)

// Sub-resource path segments. The "details" view has no segment of its
// own: it is served at the bare resource URL.
const (
	subDetails                  = ""
	subGODetails                = "go_details"
	subInteractionDetails       = "interaction_details"
	subLiteratureDetails        = "literature_details"
	subLocusDetails             = "locus_details"
	subNeighborSequenceDetails  = "neighbor_sequence_details"
	subPhenotypeDetails         = "phenotype_details"
	subPosttranslationalDetails = "posttranslational_details"
	subProteinDomainDetails     = "protein_domain_details"
	subProteinExperimentDetails = "protein_experiment_details"
	subRegulationDetails        = "regulation_details"
	subSequenceDetails          = "sequence_details"
)

// buildURL composes the absolute URL for a resource view by joining the
// non-empty path segments under the base URL. It is a pure function of
// its inputs: the same (category, id, sub) triple always yields the same
// URL, and distinct triples never collide.
func buildURL(base, category, id, sub string) string {
	segments := make([]string, 0, 3)
	for _, s := range []string{category, id, sub} {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.Join(segments, "/")
}

// LocusEndpoints describes the detail views available for a locus (and
// therefore for a gene, which is a locus after name resolution), keyed
// by accessor name.
var LocusEndpoints = map[string]string{
	"details":                    "Gets basic information about a locus.",
	"go_details":                 "Gets GO (gene ontology) annotations and the references used to make them.",
	"interaction_details":        "Gets interaction annotations and the references used to make them.",
	"literature_details":         "Gets references which refer to a gene, organized by subject of relevance.",
	"neighbor_sequence_details":  "Gets get sequences for neighboring loci in the strains for which they are available.",
	"phenotype_details":          "Gets phenotype annotations and the references used to make them.",
	"posttranslational_details":  "Gets posttranslational protein data.",
	"protein_domain_details":     "Gets protein domains, their sources, and their positions relative to protein sequence.",
	"protein_experiment_details": "Gets metadata and data values for protein experiments.",
	"regulation_details":         "Gets regulation annotations and the references used to make them.",
	"sequence_details":           "Gets sequence for genomic, coding, protein, and +/- 1KB sequence.",
}

// PhenotypeEndpoints describes the detail views available for a
// phenotype, keyed by accessor name.
var PhenotypeEndpoints = map[string]string{
	"details":       "Gets basic information about a phenotype.",
	"locus_details": "Gets a list of genes annotated to a phenotype with some information about the experiment and strain background.",
}

// GOEndpoints describes the detail views available for a GO term, keyed
// by accessor name.
var GOEndpoints = map[string]string{
	"details":       "Gets basic information about a GO term.",
	"locus_details": "Gets a list of genes annotated to a GO term.",
}
