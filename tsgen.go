package tsgen

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

const (
	timeout            = 10 * time.Second
	cdnHostname        = "cdn.contentful.com"
	previewHostname    = "preview.contentful.com"
	defaultEnvironment = "master"

	pathSpace        = "/spaces/%s"
	pathEnvironment  = pathSpace + "/environments/%s"
	pathContentTypes = "/content_types"
)

type Client struct {
	client       *http.Client
	Options      *ClientOptions
	AfterRequest func(c *Client, req *http.Request, elapsed time.Duration)

	common       service
	ContentTypes *ContentTypesService
	Spaces       *SpacesService
}

type ClientOptions struct {
	// CdnURL is a host name, or a full base URL when the scheme matters.
	CdnURL        string
	SpaceID       string
	EnvironmentID string
	CdnToken      string
	Preview       bool
	HTTPClient    *http.Client
}

type service struct {
	client *Client
}

func NewClient(options *ClientOptions) *Client {
	httpClient := options.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: timeout,
		}
	}

	c := &Client{
		Options: options,
		client:  httpClient,
	}
	c.common.client = c
	c.ContentTypes = (*ContentTypesService)(&c.common)
	c.Spaces = (*SpacesService)(&c.common)
	return c
}

// environmentPath is the base path of environment scoped endpoints.
func (c *Client) environmentPath() string {
	env := c.Options.EnvironmentID
	if env == "" || env == defaultEnvironment {
		return fmt.Sprintf(pathSpace, c.Options.SpaceID)
	}
	return fmt.Sprintf(pathEnvironment, c.Options.SpaceID, env)
}

func (c *Client) baseURL() *url.URL {
	host := c.Options.CdnURL
	if host == "" {
		host = cdnHostname
		if c.Options.Preview {
			host = previewHostname
		}
	}

	if strings.Contains(host, "://") {
		u, err := url.Parse(host)
		if err == nil {
			return &url.URL{Scheme: u.Scheme, Host: u.Host}
		}
	}
	return &url.URL{Scheme: "https", Host: host}
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.req(ctx, http.MethodGet, path, query, nil)
}

func (c *Client) req(ctx context.Context, method string, path string, query url.Values, body io.Reader) ([]byte, error) {
	u := c.baseURL()
	u.Path = path
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, wrapKind(ErrFetch, err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.Options.CdnToken))

	start := time.Now()
	res, err := c.client.Do(req)
	if err != nil {
		return nil, wrapKind(ErrFetch, err)
	}
	defer res.Body.Close()
	if c.AfterRequest != nil {
		c.AfterRequest(c, req, time.Since(start))
	}

	if res.StatusCode >= http.StatusOK && res.StatusCode < http.StatusBadRequest {
		data, err := io.ReadAll(res.Body)
		if err != nil {
			return nil, wrapKind(ErrFetch, err)
		}
		return data, nil
	}

	var e errorResponse
	err = json.NewDecoder(res.Body).Decode(&e)
	if err != nil || e.Message == "" {
		return nil, errors.Wrapf(ErrFetch, "%s %s: %s", method, path, res.Status)
	}

	return nil, errors.Wrapf(ErrFetch, "%s %s: %s", method, path, e.Message)
}
