package sgd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenesToLoci_Loaded(t *testing.T) {
	require.NotEmpty(t, GenesToLoci)

	// Every key is its own uppercase form; every value is an SGD ID.
	for gene, locusID := range GenesToLoci {
		assert.Regexp(t, `^S\d{9}$`, locusID, "locus ID for %s", gene)
	}
	assert.Equal(t, "S000002534", GenesToLoci["ARO1"])
}

func TestResolveLocus(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"ARO1", "S000002534"},
		{"aro1", "S000002534"},
		{"Act1", "S000001855"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveLocus(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveLocus_UnknownGene(t *testing.T) {
	_, err := ResolveLocus("no_such_gene")
	require.Error(t, err)

	var invalidGene *InvalidGeneError
	require.ErrorAs(t, err, &invalidGene)
	// The error carries the name exactly as supplied, not normalized.
	assert.Equal(t, "no_such_gene", invalidGene.GeneName)
	assert.Contains(t, err.Error(), "no_such_gene")
}

func TestResolveLocus_IsNotHTTPError(t *testing.T) {
	_, err := ResolveLocus("no_such_gene")
	var httpErr *HTTPError
	assert.False(t, errors.As(err, &httpErr))
}
