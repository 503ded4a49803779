package source_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/ironsmile/musicsearch/src/assert"
	"github.com/ironsmile/musicsearch/src/metrics"
	"github.com/ironsmile/musicsearch/src/source"
)

type testDoc struct {
	Name string `json:"name"`
}

// TestTargetURL makes sure path segments and query values are escaped.
func TestTargetURL(t *testing.T) {
	target := source.Target{
		Source: "wikipedia",
		Base:   "https://en.wikipedia.org/w/api.php",
		Query: url.Values{
			"action": {"query"},
			"titles": {"AC/DC & Friends"},
		},
	}

	u, err := target.URL()
	assert.NilErr(t, err)
	assert.Equal(t,
		"https://en.wikipedia.org/w/api.php?action=query&titles=AC%2FDC+%26+Friends",
		u.String(),
	)

	target = source.Target{
		Source: "musicbrainz",
		Base:   "https://musicbrainz.org/ws/2",
		Path:   []string{"release-group", "a/b?c"},
	}

	u, err = target.URL()
	assert.NilErr(t, err)
	assert.Equal(t, "https://musicbrainz.org/ws/2/release-group/a%2Fb%3Fc", u.String())
}

// TestClientFetch checks the golden path: headers are sent and the JSON response is
// decoded.
func TestClientFetch(t *testing.T) {
	const userAgent = "musicsearch/testing"
	var serverErrors []string

	handler := func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			serverErrors = append(serverErrors, fmt.Sprintf("method %s used", req.Method))
		}
		if req.UserAgent() != userAgent {
			serverErrors = append(
				serverErrors,
				fmt.Sprintf("expected user agent `%s` but got `%s`", userAgent, req.UserAgent()),
			)
		}
		if req.URL.Path != "/artist/some-id" {
			serverErrors = append(serverErrors, fmt.Sprintf("unexpected path %s", req.URL.Path))
		}
		fmt.Fprint(w, `{"name": "Iron Maiden", "ignored": [1, 2, 3]}`)
	}
	srv := httptest.NewServer(http.HandlerFunc(handler))
	defer srv.Close()

	m := metrics.New()
	client := source.NewClient(source.Options{
		UserAgent: userAgent,
		Metrics:   m,
	})

	var doc testDoc
	found, err := client.Fetch(context.Background(), source.Target{
		Source: "musicbrainz",
		Base:   srv.URL,
		Path:   []string{"artist", "some-id"},
	}, source.Required, &doc)

	for _, se := range serverErrors {
		t.Error(se)
	}

	assert.NilErr(t, err)
	assert.Equal(t, true, found)
	assert.Equal(t, "Iron Maiden", doc.Name)
	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.Lookups.WithLabelValues("musicbrainz", metrics.OutcomeOK),
	))
}

// TestClientFetchPolicies checks how not found documents, timeouts and broken
// responses are reported under every policy.
func TestClientFetchPolicies(t *testing.T) {
	tests := []struct {
		desc       string
		handler    http.HandlerFunc
		policy     source.Policy
		expFound   bool
		inspectErr func(*testing.T, error)
	}{
		{
			desc: "not found required",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			policy: source.Required,
			inspectErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, source.ErrNotFound)

				var srcErr *source.Error
				if !errors.As(err, &srcErr) {
					t.Fatalf("expected *source.Error but got %T", err)
				}
				assert.Equal(t, http.StatusNotFound, srcErr.StatusCode)
				if !strings.Contains(err.Error(), "returned HTTP 404") {
					t.Errorf("expected the status code in the error: %s", err)
				}
			},
		},
		{
			desc: "server error is not found too",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			policy: source.Optional,
			inspectErr: func(t *testing.T, err error) {
				assert.NilErr(t, err)
			},
		},
		{
			desc: "not found best effort",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			policy: source.BestEffort,
			inspectErr: func(t *testing.T, err error) {
				assert.NilErr(t, err)
			},
		},
		{
			desc: "malformed JSON",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				fmt.Fprint(w, `definitely not JSON`)
			},
			policy: source.BestEffort,
			inspectErr: func(t *testing.T, err error) {
				assert.NotNilErr(t, err)
				if !strings.Contains(err.Error(), "decoding JSON response") {
					t.Errorf("expected JSON decoding error but got: %s", err)
				}
			},
		},
		{
			desc: "truncated body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Add("content-length", "22")
				_, _ = w.Write([]byte("{}"))
			},
			policy: source.Optional,
			inspectErr: func(t *testing.T, err error) {
				assert.NotNilErr(t, err)
			},
		},
		{
			desc: "too big body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				fmt.Fprintf(w, `{"name": "%s"}`, strings.Repeat("a", 200))
			},
			policy: source.Optional,
			inspectErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, source.ErrResponseTooBig)
			},
		},
		{
			desc: "timeout best effort",
			handler: func(w http.ResponseWriter, req *http.Request) {
				select {
				case <-req.Context().Done():
				case <-time.After(2 * time.Second):
				}
			},
			policy: source.BestEffort,
			inspectErr: func(t *testing.T, err error) {
				assert.NilErr(t, err)
			},
		},
		{
			desc: "timeout required",
			handler: func(w http.ResponseWriter, req *http.Request) {
				select {
				case <-req.Context().Done():
				case <-time.After(2 * time.Second):
				}
			},
			policy: source.Required,
			inspectErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, context.DeadlineExceeded)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			srv := httptest.NewServer(test.handler)
			defer srv.Close()

			client := source.NewClient(source.Options{
				UserAgent:    "musicsearch/testing",
				Timeout:      100 * time.Millisecond,
				MaxBodyBytes: 100,
			})

			var doc testDoc
			found, err := client.Fetch(context.Background(), source.Target{
				Source: "test",
				Base:   srv.URL,
			}, test.policy, &doc)

			assert.Equal(t, test.expFound, found)
			test.inspectErr(t, err)
		})
	}
}

// TestClientFetchParentCancelled makes sure that cancelling the parent context is
// an error even for best effort lookups.
func TestClientFetchParentCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := source.NewClient(source.Options{UserAgent: "musicsearch/testing"})

	var doc testDoc
	found, err := client.Fetch(ctx, source.Target{
		Source: "test",
		Base:   srv.URL,
	}, source.BestEffort, &doc)

	assert.Equal(t, false, found)
	assert.ErrorIs(t, err, context.Canceled)
}
