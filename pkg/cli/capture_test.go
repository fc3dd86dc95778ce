package cli

import (
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rkaminsk/trigger/pkg/dispatch"
)

// captureStderr runs fn while collecting everything written to stderr.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w

	fn()

	require.NoError(t, w.Close())
	os.Stderr = old
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(data)
}

// captureStdout runs fn while collecting everything written to stdout.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	require.NoError(t, w.Close())
	os.Stdout = old
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(data)
}

// stubTransport replays scripted responses and records requests, so command
// behavior can be tested without a network.
type stubTransport struct {
	mu        sync.Mutex
	requests  []*http.Request
	bodies    []string
	responses []stubResponse
}

type stubResponse struct {
	status int
	body   string
}

func (st *stubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	var body string
	if req.Body != nil {
		data, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		body = string(data)
	}
	st.requests = append(st.requests, req)
	st.bodies = append(st.bodies, body)

	next := stubResponse{status: http.StatusNoContent}
	if len(st.responses) > 0 {
		next = st.responses[0]
		st.responses = st.responses[1:]
	}
	return &http.Response{
		StatusCode: next.status,
		Header:     http.Header{"Content-Type": []string{"application/json; charset=utf-8"}},
		Body:       io.NopCloser(strings.NewReader(next.body)),
		Request:    req,
	}, nil
}

// newStubClient builds a dispatch client backed by a stub transport.
func newStubClient(t *testing.T, transport *stubTransport) *dispatch.Client {
	t.Helper()
	client, err := dispatch.NewClient(dispatch.Options{Token: "test-token", Transport: transport})
	require.NoError(t, err)
	return client
}
