// Package fetch downloads ae7q.com query pages.
//
//	client := fetch.New(cfg)
//	doc, err := client.Fetch(ctx, ae7q.CallQuery, "kn8u")
//	if err != nil {
//	    return err
//	}
//	data, warnings, err := ae7q.FromDocument(doc).Query("kn8u").Data()
//
// There is no caching or retrying; every call is one GET request.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/tsawler/ae7q"
	"github.com/tsawler/ae7q/htmldoc"
	"github.com/tsawler/ae7q/internal/config"
)

// ErrUnknownKind is returned for a query kind with no page on the site.
var ErrUnknownKind = errors.New("unknown query kind")

// StatusError is returned when the site answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: %s", e.URL, e.Status)
}

// paths maps each query kind to its page, relative to the base URL. The
// query is appended escaped.
var paths = map[ae7q.Kind]string{
	ae7q.CallQuery:        "data/CallHistory.php?CALL=",
	ae7q.FrnQuery:         "data/FrnHistory.php?FRN=",
	ae7q.LicenseeQuery:    "data/LicenseeIdHistory.php?ID=",
	ae7q.ApplicationQuery: "data/AppDetail.php?UFN=",
}

// Client fetches query pages. The zero Client uses the site's public
// address and http.DefaultClient.
type Client struct {
	BaseURL    string
	UserAgent  string
	TableClass string
	HTTP       *http.Client
}

// New returns a client configured from cfg.
func New(cfg *config.Config) *Client {
	return &Client{
		BaseURL:    cfg.BaseURL,
		UserAgent:  cfg.UserAgent,
		TableClass: cfg.TableClass,
		HTTP:       &http.Client{Timeout: cfg.Timeout},
	}
}

// URL returns the address of the page answering query.
func (c *Client) URL(kind ae7q.Kind, query string) (string, error) {
	path, ok := paths[kind]
	if !ok {
		return "", fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}

	base := c.BaseURL
	if base == "" {
		base = config.DefaultBaseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + path + url.QueryEscape(query), nil
}

// Fetch downloads and parses the page answering query. The response's
// Content-Type is used to decode the page.
func (c *Client) Fetch(ctx context.Context, kind ae7q.Kind, query string) (*htmldoc.Reader, error) {
	u, err := c.URL(kind, query)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: u, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	doc, err := htmldoc.OpenReaderWithOptions(resp.Body, htmldoc.Options{
		TableClass:  c.tableClass(),
		ContentType: resp.Header.Get("Content-Type"),
	})
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", u, err)
	}
	return doc, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

func (c *Client) tableClass() string {
	if c.TableClass != "" {
		return c.TableClass
	}
	return htmldoc.DefaultTableClass
}
