package tsgen

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(&ClientOptions{
		CdnURL:   server.URL,
		SpaceID:  "space1",
		CdnToken: "secret",
	})
}

func TestGetTypesPaginates(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e"}
	skips := make([]int, 0)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/spaces/space1/content_types", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
		skips = append(skips, skip)

		end := skip + 2
		if end > len(ids) {
			end = len(ids)
		}
		items := ""
		for i, id := range ids[skip:end] {
			if i > 0 {
				items += ","
			}
			items += fmt.Sprintf(`{"sys":{"id":%q},"fields":[]}`, id)
		}
		fmt.Fprintf(w, `{"total":%d,"skip":%d,"limit":2,"items":[%s]}`, len(ids), skip, items)
	})

	types, err := client.ContentTypes.GetTypes(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2, 4}, skips)
	assert.Equal(t, 5, types.Total)
	require.Len(t, types.Items, 5)
	for i, id := range ids {
		assert.Equal(t, id, types.Items[i].ID())
	}
}

func TestGetTypesStopsOnEmptyPage(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `{"total":10,"skip":0,"limit":100,"items":[]}`)
	})

	types, err := client.ContentTypes.GetTypes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Empty(t, types.Items)
}

func TestClientErrorMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"sys":{"id":"AccessTokenInvalid","type":"Error"},"message":"The access token you sent could not be found or is invalid."}`)
	})

	_, err := client.ContentTypes.GetTypes(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetch)
	assert.Contains(t, err.Error(), "could not be found or is invalid")
}

func TestClientErrorWithoutBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Spaces.GetSpace(context.Background())
	assert.ErrorIs(t, err, ErrFetch)
	assert.Contains(t, err.Error(), "502")
}

func TestClientEnvironmentPath(t *testing.T) {
	var path string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		fmt.Fprint(w, `{"total":0,"items":[]}`)
	})
	client.Options.EnvironmentID = "staging"

	_, err := client.ContentTypes.GetTypes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/spaces/space1/environments/staging/content_types", path)
}

func TestClientAfterRequest(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"sys":{"id":"space1"},"name":"My Space","locales":[{"code":"en-US","default":true}]}`)
	})

	var seen string
	client.AfterRequest = func(c *Client, req *http.Request, elapsed time.Duration) {
		seen = req.URL.Path
	}

	space, err := client.Spaces.GetSpace(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "My Space", space.Name)
	assert.Equal(t, "/spaces/space1", seen)
}

func TestClientBaseURL(t *testing.T) {
	c := NewClient(&ClientOptions{})
	assert.Equal(t, "https://cdn.contentful.com", c.baseURL().String())

	c = NewClient(&ClientOptions{Preview: true})
	assert.Equal(t, "https://preview.contentful.com", c.baseURL().String())

	c = NewClient(&ClientOptions{CdnURL: "http://localhost:8080"})
	assert.Equal(t, "http://localhost:8080", c.baseURL().String())
}
