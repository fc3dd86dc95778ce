package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const workflowListBody = `{
	"total_count": 3,
	"workflows": [
		{"id": 4455118, "name": "Deploy pip packages", "path": ".github/workflows/pipdeploy.yml", "state": "active"},
		{"id": 4455119, "name": "Deploy conda packages", "path": ".github/workflows/condadeploy.yml", "state": "active"},
		{"id": 99, "name": "CI tests", "path": ".github/workflows/ci.yml", "state": "active"}
	]
}`

func TestRunListJSON(t *testing.T) {
	transport := &stubTransport{
		responses: []stubResponse{{status: http.StatusOK, body: workflowListBody}},
	}
	client := newStubClient(t, transport)

	output := captureStdout(t, func() {
		require.NoError(t, RunList(context.Background(), client, true))
	})

	var items []struct {
		Name     string `json:"name"`
		ID       int64  `json:"id"`
		Pipeline string `json:"pipeline"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &items))
	require.Len(t, items, 3)

	assert.Equal(t, "Deploy pip packages", items[0].Name)
	assert.Equal(t, "pip", items[0].Pipeline)
	assert.Equal(t, "conda", items[1].Pipeline)
	assert.Equal(t, "", items[2].Pipeline)

	require.Len(t, transport.requests, 1)
	assert.Equal(t, "/repos/potassco/python-clingox/actions/workflows", transport.requests[0].URL.Path)
	assert.Equal(t, "100", transport.requests[0].URL.Query().Get("per_page"))
}

func TestRunListTable(t *testing.T) {
	transport := &stubTransport{
		responses: []stubResponse{{status: http.StatusOK, body: workflowListBody}},
	}
	client := newStubClient(t, transport)

	output := captureStderr(t, func() {
		require.NoError(t, RunList(context.Background(), client, false))
	})

	assert.Contains(t, output, "Found 3 workflows")
	assert.Contains(t, output, "Deploy pip packages")
	assert.Contains(t, output, "4455118")
	assert.Contains(t, output, "condadeploy.yml")
	assert.Contains(t, output, "CI tests")
	// Both pinned IDs are present, so no staleness warning appears.
	assert.NotContains(t, output, "not found in repository")
}

func TestRunListWarnsAboutStalePipeline(t *testing.T) {
	transport := &stubTransport{
		responses: []stubResponse{{status: http.StatusOK, body: `{
			"total_count": 1,
			"workflows": [
				{"id": 4455118, "name": "Deploy pip packages", "path": ".github/workflows/pipdeploy.yml", "state": "active"}
			]
		}`}},
	}
	client := newStubClient(t, transport)

	output := captureStderr(t, func() {
		require.NoError(t, RunList(context.Background(), client, false))
	})

	assert.Contains(t, output, "Found 1 workflow")
	assert.Contains(t, output, "pipeline conda")
	assert.Contains(t, output, "4455119")
	assert.Contains(t, output, "not found in repository")
}

func TestRunListEmptyRepository(t *testing.T) {
	transport := &stubTransport{
		responses: []stubResponse{{status: http.StatusOK, body: `{"total_count": 0, "workflows": []}`}},
	}
	client := newStubClient(t, transport)

	output := captureStderr(t, func() {
		require.NoError(t, RunList(context.Background(), client, false))
	})
	assert.Contains(t, output, "No workflows found")
}

func TestRunListAPIError(t *testing.T) {
	transport := &stubTransport{
		responses: []stubResponse{{status: http.StatusUnauthorized, body: `{"message": "Bad credentials"}`}},
	}
	client := newStubClient(t, transport)

	var err error
	captureStderr(t, func() {
		err = RunList(context.Background(), client, false)
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 401")
	assert.Contains(t, err.Error(), "Bad credentials")
}

func TestNewListCommandFlags(t *testing.T) {
	cmd := NewListCommand()
	assert.Equal(t, "list", cmd.Name())
	assert.NotNil(t, cmd.Flags().Lookup("json"))
	assert.NotNil(t, cmd.Flags().Lookup("token-file"))
}
