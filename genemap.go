package sgd

import (
	_ "embed"
	"encoding/json"
	"strings"
)

//go:embed data/genes_to_loci.json
var genesToLociJSON []byte

// GenesToLoci maps uppercase standard gene names to SGD locus
// identifiers. It is loaded once at package init from the bundled data
// asset and must be treated as read-only.
var GenesToLoci map[string]string

func init() {
	if err := json.Unmarshal(genesToLociJSON, &GenesToLoci); err != nil {
		panic("sgd: corrupt bundled genes_to_loci.json: " + err.Error())
	}
}

// ResolveLocus maps a gene name to its SGD locus identifier. The lookup
// is case-insensitive. Unknown names yield an *InvalidGeneError carrying
// the name exactly as supplied.
func ResolveLocus(geneName string) (string, error) {
	locusID, ok := GenesToLoci[strings.ToUpper(geneName)]
	if !ok {
		return "", &InvalidGeneError{GeneName: geneName}
	}
	return locusID, nil
}
