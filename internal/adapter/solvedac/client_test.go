package solvedac

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, showProblemPath, r.URL.Path)
		assert.Equal(t, "1000", r.URL.Query().Get("problemId"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestGetProblem_Success(t *testing.T) {
	ts := newServer(t, http.StatusOK, `{
		"problemId": 1000,
		"titleKo": "A+B",
		"level": 1,
		"tags": [
			{"key": "implementation", "displayNames": [{"language": "ko", "name": "구현"}, {"language": "en", "name": "implementation"}]},
			{"key": "ghost", "displayNames": []},
			{"key": "math", "displayNames": [{"language": "ko", "name": "수학"}]}
		]
	}`)

	meta, err := New(ts.URL, time.Second, nil).GetProblem(context.Background(), 1000)
	require.NoError(t, err)
	assert.Equal(t, "A+B", meta.Title)
	assert.Equal(t, 1, meta.Level)
	assert.Equal(t, []string{"구현", "수학"}, meta.Tags)
}

func TestGetProblem_MissingFields(t *testing.T) {
	ts := newServer(t, http.StatusOK, `{}`)

	meta, err := New(ts.URL+"/", time.Second, nil).GetProblem(context.Background(), 1000)
	require.NoError(t, err)
	assert.Equal(t, UntitledTitle, meta.Title)
	assert.Zero(t, meta.Level)
	assert.Empty(t, meta.Tags)
}

func TestGetProblem_NotFound(t *testing.T) {
	ts := newServer(t, http.StatusNotFound, `Not Found`)

	_, err := New(ts.URL, time.Second, nil).GetProblem(context.Background(), 1000)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 404")
}

func TestGetProblem_Malformed(t *testing.T) {
	ts := newServer(t, http.StatusOK, `{"titleKo": `)

	_, err := New(ts.URL, time.Second, nil).GetProblem(context.Background(), 1000)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestGetProblem_RejectsNonObjectPayloads(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"null body", `null`, "empty payload"},
		{"trailing data", `{"titleKo":"A+B"} trailing`, "decode response"},
		{"second object", `{"titleKo":"A+B"}{"titleKo":"C"}`, "unexpected trailing data"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newServer(t, http.StatusOK, tt.body)

			meta, err := New(ts.URL, time.Second, nil).GetProblem(context.Background(), 1000)
			require.Error(t, err)
			assert.Nil(t, meta)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestGetProblem_TrailingNewlineAccepted(t *testing.T) {
	ts := newServer(t, http.StatusOK, "{\"titleKo\":\"A+B\"}\n")

	meta, err := New(ts.URL, time.Second, nil).GetProblem(context.Background(), 1000)
	require.NoError(t, err)
	assert.Equal(t, "A+B", meta.Title)
}

func TestGetProblem_Unreachable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	_, err := New(url, time.Second, nil).GetProblem(context.Background(), 1000)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "perform request")
}
