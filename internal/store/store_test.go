package store

import (
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sgd "github.com/yeastlab/go-sgd"
)

func openInMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open("")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openInMemory(t)
	assert.NotNil(t, s.DB())
}

func TestOpenCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cache.db")
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	assert.NotNil(t, s.DB())
}

func TestPutGetRoundTrip(t *testing.T) {
	s := openInMemory(t)

	url := "https://www.yeastgenome.org/backend/locus/S000002534"
	resp := &sgd.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       []byte(`{"display_name":"ARO1"}`),
		URL:        url,
	}
	require.NoError(t, s.Put(url, resp))

	got, ok, err := s.Get(url)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, got.StatusCode)
	assert.Equal(t, resp.Body, got.Body)
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Equal(t, url, got.URL)
}

func TestGetMiss(t *testing.T) {
	s := openInMemory(t)

	got, ok, err := s.Get("https://www.yeastgenome.org/backend/locus/S000000001")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestPutReplacesExistingEntry(t *testing.T) {
	s := openInMemory(t)

	url := "https://www.yeastgenome.org/backend/go/GO:0000001"
	require.NoError(t, s.Put(url, &sgd.Response{StatusCode: http.StatusOK, Body: []byte("old"), URL: url}))
	require.NoError(t, s.Put(url, &sgd.Response{StatusCode: http.StatusOK, Body: []byte("new"), URL: url}))

	got, ok, err := s.Get(url)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("new"), got.Body)
}

func TestStoreServesClientWithoutNetwork(t *testing.T) {
	s := openInMemory(t)

	url := "https://sgd.invalid/locus/S000002534"
	require.NoError(t, s.Put(url, &sgd.Response{
		StatusCode: http.StatusOK,
		Body:       []byte("{}"),
		URL:        url,
	}))

	// The base URL resolves nowhere; only the store can answer.
	l := sgd.NewLocus("S000002534", &sgd.Options{BaseURL: "https://sgd.invalid", Store: s})
	resp, err := l.Details()
	require.NoError(t, err)
	assert.Equal(t, []byte("{}"), resp.Body)
}
