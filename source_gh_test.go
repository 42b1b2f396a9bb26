package tsgen

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/go-github/v48/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupGitHub(t *testing.T) (*github.Client, *http.ServeMux) {
	t.Helper()
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := github.NewClient(nil)
	u, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	client.BaseURL = u
	return client, mux
}

func fileContent(path string, content string) string {
	return fmt.Sprintf(`{"type":"file","encoding":"base64","name":%q,"path":%q,"content":%q}`,
		path, path, base64.StdEncoding.EncodeToString([]byte(content)))
}

func TestGitHubSource(t *testing.T) {
	client, mux := setupGitHub(t)
	refs := make([]string, 0)

	mux.HandleFunc("/repos/moonwalker/content/contents/models", func(w http.ResponseWriter, r *http.Request) {
		refs = append(refs, r.URL.Query().Get("ref"))
		fmt.Fprint(w, `[
			{"type":"file","name":"article.json","path":"models/article.json"},
			{"type":"dir","name":"people","path":"models/people"},
			{"type":"file","name":"README.md","path":"models/README.md"}
		]`)
	})
	mux.HandleFunc("/repos/moonwalker/content/contents/models/people", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"type":"file","name":"person.json","path":"models/people/person.json"}]`)
	})
	mux.HandleFunc("/repos/moonwalker/content/contents/models/article.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, fileContent("models/article.json", `{"sys":{"id":"article","type":"ContentType"},"fields":[
			{"id":"title","type":"Symbol","required":true},
			{"id":"author","type":"Link","linkType":"Entry","validations":[{"linkContentType":["person"]}]}
		]}`))
	})
	mux.HandleFunc("/repos/moonwalker/content/contents/models/people/person.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, fileContent("models/people/person.json", `{"sys":{"id":"person","type":"ContentType"},"fields":[
			{"id":"name","type":"Symbol","required":true}
		]}`))
	})

	src := NewGitHubSourceWithClient(client, "moonwalker", "content", "main", "models")
	types, err := src.ContentTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, "article", types[0].ID())
	assert.Equal(t, "person", types[1].ID())
	assert.Equal(t, []string{"main"}, refs)

	out, err := Compile(types, CompileOptions{})
	require.NoError(t, err)
	assert.Contains(t, out, "  author?: Entry<Person>;\n")
}

func TestGitHubSourceNotFound(t *testing.T) {
	client, mux := setupGitHub(t)
	mux.HandleFunc("/repos/moonwalker/content/contents/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message":"Not Found"}`)
	})

	_, err := NewGitHubSourceWithClient(client, "moonwalker", "content", "", "missing").ContentTypes(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetch)
}
