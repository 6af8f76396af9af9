// Package sgd is a client for the Saccharomyces Genome Database REST
// backend at https://www.yeastgenome.org/backend. It exposes the locus,
// gene, phenotype, and GO term resources as thin wrappers that compose a
// URL, issue a GET, and hand the raw response back to the caller.
// Response bodies are opaque bytes; the client does not model the JSON
// payloads, retry, or authenticate.
package sgd

import (
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"go.uber.org/zap"
)

// defaultTimeout bounds every request unless Options supplies a timeout
// or a custom HTTP client.
const defaultTimeout = 60 * time.Second

// Response is the raw outcome of a backend GET. The body is read in
// full before the Response is returned, so it remains usable after the
// underlying connection is gone.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	URL        string
}

// Store is an optional write-through persistent cache consulted before
// the network and populated with successful responses. See
// internal/store for a DuckDB-backed implementation.
type Store interface {
	Get(url string) (*Response, bool, error)
	Put(url string, resp *Response) error
}

// Options configures the transport for a wrapper instance. All fields
// are fixed at construction; the zero value gives the default base URL,
// a 60-second timeout, and verified TLS.
type Options struct {
	// Timeout for each request. Ignored when HTTPClient is set.
	Timeout time.Duration

	// Insecure disables TLS certificate verification. Ignored when
	// HTTPClient is set.
	Insecure bool

	// Proxy is a proxy URL for outbound requests. Ignored when
	// HTTPClient is set.
	Proxy string

	// Header holds extra headers added to every request.
	Header http.Header

	// BaseURL overrides DefaultBaseURL, mainly for tests.
	BaseURL string

	// HTTPClient, when set, is used verbatim and Timeout, Insecure,
	// and Proxy are ignored.
	HTTPClient *http.Client

	// NoCache disables the per-instance response memo: every access
	// performs a fresh request.
	NoCache bool

	// Store is an optional persistent response cache.
	Store Store

	// Logger receives debug lines for outbound requests and cache
	// hits. Defaults to a no-op logger.
	Logger *zap.Logger
}

// client is the fetch core shared by all resource wrappers. Each wrapper
// instance owns its own client, so the memo map is never shared across
// instances. The mutex makes a single instance safe for concurrent use.
type client struct {
	baseURL    string
	httpClient *http.Client
	header     http.Header
	noCache    bool
	store      Store
	logger     *zap.Logger
	proxyErr   error

	mu   sync.Mutex
	memo map[string]*Response
}

func newClient(opts *Options) *client {
	if opts == nil {
		opts = &Options{}
	}

	c := &client{
		baseURL: DefaultBaseURL,
		header:  opts.Header,
		noCache: opts.NoCache,
		store:   opts.Store,
		logger:  zap.NewNop(),
		memo:    make(map[string]*Response),
	}
	if opts.BaseURL != "" {
		c.baseURL = opts.BaseURL
	}
	if opts.Logger != nil {
		c.logger = opts.Logger
	}

	if opts.HTTPClient != nil {
		c.httpClient = opts.HTTPClient
		return c
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if opts.Insecure {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	if opts.Proxy != "" {
		proxyURL, err := url.Parse(opts.Proxy)
		if err != nil {
			// Surfaced as a TransportError on first fetch.
			c.proxyErr = fmt.Errorf("invalid proxy URL %q: %w", opts.Proxy, err)
		} else {
			transport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	c.httpClient = &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
	return c
}

// fetch returns the response for url, memoized per instance. Transport
// options are immutable after construction, so the URL alone is a
// complete cache key for one instance. Only successful responses are
// memoized: a failed access is re-attempted on the next call.
func (c *client) fetch(url string) (*Response, error) {
	if c.proxyErr != nil {
		return nil, &TransportError{URL: url, Err: c.proxyErr}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.noCache {
		if resp, ok := c.memo[url]; ok {
			c.logger.Debug("memo hit", zap.String("url", url))
			return resp, nil
		}
	}

	if c.store != nil {
		resp, ok, err := c.store.Get(url)
		if err != nil {
			c.logger.Warn("store lookup failed", zap.String("url", url), zap.Error(err))
		} else if ok {
			c.logger.Debug("store hit", zap.String("url", url))
			if !c.noCache {
				c.memo[url] = resp
			}
			return resp, nil
		}
	}

	resp, err := c.get(url)
	if err != nil {
		return nil, err
	}

	if !c.noCache {
		c.memo[url] = resp
	}
	if c.store != nil {
		if err := c.store.Put(url, resp); err != nil {
			c.logger.Warn("store write failed", zap.String("url", url), zap.Error(err))
		}
	}
	return resp, nil
}

// get performs a single GET with no caching involved.
func (c *client) get(url string) (*Response, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	for k, vs := range c.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	c.logger.Debug("GET", zap.String("url", url))
	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, &HTTPError{
			StatusCode: httpResp.StatusCode,
			URL:        url,
			Body:       body,
		}
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       body,
		URL:        url,
	}, nil
}
