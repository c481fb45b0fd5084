package couch

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"os"
	"strings"

	"github.com/sofadb/sofa-cli/internal/flags"
)

// Client talks to a single CouchDB server. It holds the connection
// parameters and produces Database handles; it keeps no state besides the
// injected database-names cache.
type Client struct {
	baseURL  string
	username string
	password string
	http     *http.Client

	names NamesCache
}

// New builds a client for the server at rawURL. Trailing slashes are
// stripped; the URL shape is not validated and no network call is made.
// Credentials are attached to requests only when both username and password
// are non-empty. When caCertPath is given, the file is loaded as the trust
// anchor for server certificate verification.
func New(rawURL, username, password, caCertPath string) (*Client, error) {
	httpClient, err := newHTTPClient(caCertPath)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL:  strings.TrimRight(rawURL, "/"),
		username: username,
		password: password,
		http:     httpClient,
		names:    NewMemoryNamesCache(),
	}, nil
}

func newHTTPClient(caCertPath string) (*http.Client, error) {
	if caCertPath == "" {
		return http.DefaultClient, nil
	}
	pem, err := os.ReadFile(caCertPath)
	if err != nil {
		return nil, fmt.Errorf("could not read CA certificate: %w", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("no certificates found in %s", caCertPath)
	}
	return &http.Client{
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{RootCAs: pool},
		},
	}, nil
}

// SetNamesCache replaces the database-names cache. The default is an
// in-process cache with no expiry; callers wanting persistence or
// deterministic staleness inject their own implementation.
func (c *Client) SetNamesCache(cache NamesCache) {
	c.names = cache
}

// URL returns the normalized server endpoint.
func (c *Client) URL() string {
	return c.baseURL
}

func (c *Client) newRequest(method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.username != "" && c.password != "" {
		req.SetBasicAuth(c.username, c.password)
	}
	return req, nil
}

func (c *Client) do(method, path string, body io.Reader) (*http.Response, error) {
	req, err := c.newRequest(method, path, body)
	if err != nil {
		return nil, err
	}
	var reqDump string
	if flags.Debug() {
		reqDump = dumpRequest(req)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if flags.Debug() {
		printDumps(reqDump, dumpResponse(resp))
	}
	return resp, nil
}

func printDumps(req, resp string) {
	if req != "" {
		fmt.Println(req)
	}
	if resp != "" {
		fmt.Println(resp)
	}
}

func dumpRequest(req *http.Request) string {
	dump, err := httputil.DumpRequestOut(req, true)
	if err != nil {
		return ""
	}
	return string(dump)
}

func dumpResponse(resp *http.Response) string {
	dump, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return ""
	}
	return string(dump)
}

func (c *Client) Get(path string) (*http.Response, error) {
	return c.do("GET", path, nil)
}

func (c *Client) Head(path string) (*http.Response, error) {
	return c.do("HEAD", path, nil)
}

func (c *Client) Post(path string, body io.Reader) (*http.Response, error) {
	return c.do("POST", path, body)
}

func (c *Client) Put(path string, body io.Reader) (*http.Response, error) {
	return c.do("PUT", path, body)
}

func (c *Client) Delete(path string) (*http.Response, error) {
	return c.do("DELETE", path, nil)
}
