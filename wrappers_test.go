package sgd

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocusAndGeneAttributes(t *testing.T) {
	tests := []struct {
		name    string
		locusID string
		url     string
		build   func() (*Locus, error)
	}{
		{
			name:    "locus by identifier",
			locusID: "S000002534",
			url:     "https://www.yeastgenome.org/backend/locus/S000002534",
			build: func() (*Locus, error) {
				return NewLocus("S000002534", nil), nil
			},
		},
		{
			name:    "locus identifier is upper-cased",
			locusID: "S000002534",
			url:     "https://www.yeastgenome.org/backend/locus/S000002534",
			build: func() (*Locus, error) {
				return NewLocus("s000002534", nil), nil
			},
		},
		{
			name:    "gene resolves to locus",
			locusID: "S000002534",
			url:     "https://www.yeastgenome.org/backend/locus/S000002534",
			build: func() (*Locus, error) {
				g, err := NewGene("ARO1", nil)
				if err != nil {
					return nil, err
				}
				return &g.Locus, nil
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := tt.build()
			require.NoError(t, err)
			assert.Equal(t, tt.locusID, l.LocusID)
			assert.Equal(t, tt.url, l.URL())
		})
	}
}

func TestNewGene(t *testing.T) {
	g, err := NewGene("aro1", nil)
	require.NoError(t, err)
	assert.Equal(t, "ARO1", g.GeneName)
	assert.Equal(t, GenesToLoci["ARO1"], g.LocusID)
	assert.Equal(t, LocusEndpoints, g.Endpoints())
}

func TestNewGene_UnknownName(t *testing.T) {
	g, err := NewGene("not_a_gene", nil)
	assert.Nil(t, g)

	var invalidGene *InvalidGeneError
	require.ErrorAs(t, err, &invalidGene)
	assert.Equal(t, "not_a_gene", invalidGene.GeneName)
}

func TestPhenotypeAttributes(t *testing.T) {
	p := NewPhenotype("increased_chemical_compound_accumulation", nil)
	// Phenotype names are used verbatim, no normalization.
	assert.Equal(t, "increased_chemical_compound_accumulation", p.PhenotypeName)
	assert.Equal(t,
		"https://www.yeastgenome.org/backend/phenotype/increased_chemical_compound_accumulation",
		p.URL())
	assert.Equal(t,
		"https://www.yeastgenome.org/backend/phenotype/increased_chemical_compound_accumulation/locus_details",
		p.url(subLocusDetails))
}

func TestGOTermNormalization(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"GO:0000001", "GO:0000001"},
		{"go:0000001", "GO:0000001"},
		{"1", "GO:0000001"},
		{"0000001", "GO:0000001"},
		{"1234567", "GO:1234567"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			g := NewGOTerm(tt.in, nil)
			assert.Equal(t, tt.want, g.GOID)
			assert.Equal(t, "https://www.yeastgenome.org/backend/go/"+tt.want, g.URL())
		})
	}
}

func TestGOTermEquivalentIdentifiers(t *testing.T) {
	short := NewGOTerm("1", nil)
	canonical := NewGOTerm("GO:0000001", nil)
	assert.Equal(t, canonical.GOID, short.GOID)
	assert.Equal(t, canonical.URL(), short.URL())
}

func TestPhenotypeFetch(t *testing.T) {
	srv := newSpyServer(t, http.StatusOK, "{}")

	p := NewPhenotype("increased_chemical_compound_accumulation", &Options{BaseURL: srv.URL})
	resp, err := p.LocusDetails()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, srv.count("/phenotype/increased_chemical_compound_accumulation/locus_details"))

	_, err = p.LocusDetails()
	require.NoError(t, err)
	assert.Equal(t, 1, srv.count("/phenotype/increased_chemical_compound_accumulation/locus_details"))
}

func TestGOTermFetch(t *testing.T) {
	srv := newSpyServer(t, http.StatusOK, "{}")

	g := NewGOTerm("1", &Options{BaseURL: srv.URL})
	resp, err := g.Details()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, srv.count("/go/GO:0000001"))
}

func TestGeneFetchSharesLocusBehavior(t *testing.T) {
	srv := newSpyServer(t, http.StatusOK, "{}")

	g, err := NewGene("ARO1", &Options{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = g.PhenotypeDetails()
	require.NoError(t, err)
	_, err = g.PhenotypeDetails()
	require.NoError(t, err)
	assert.Equal(t, 1, srv.count("/locus/S000002534/phenotype_details"))
}
