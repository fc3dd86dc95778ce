package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/cli/go-gh/v2/pkg/api"

	"github.com/rkaminsk/trigger/pkg/constants"
	"github.com/rkaminsk/trigger/pkg/envutil"
	"github.com/rkaminsk/trigger/pkg/logger"
)

var clientLog = logger.New("dispatch:client")

// newRESTClient builds the underlying REST client (for testing: overridden
// to exercise construction failures).
var newRESTClient = api.NewRESTClient

// Options configures the REST client. The zero value of every field except
// Token is usable: Host defaults to github.com, Timeout to the value of the
// TRIGGER_HTTP_TIMEOUT environment variable, and Transport to the default
// HTTP transport. Tests inject a fake Transport to run without a network.
type Options struct {
	// Token is the GitHub token used to authenticate every request.
	Token string
	// Host is the GitHub hostname, without scheme.
	Host string
	// Transport handles the HTTP requests when set.
	Transport http.RoundTripper
	// Timeout bounds each HTTP request.
	Timeout time.Duration
}

// Client issues Actions API calls against the fixed target repository.
type Client struct {
	rest *api.RESTClient
	repo string
}

// NewClient builds a REST client for the target repository.
//
// Usage:
//
//	client, err := dispatch.NewClient(dispatch.Options{Token: token})
//	if err != nil {
//		return err
//	}
//	workflows, err := client.ListWorkflows(ctx)
func NewClient(opts Options) (*Client, error) {
	if opts.Token == "" {
		return nil, fmt.Errorf("cannot create API client without a token")
	}
	host := opts.Host
	if host == "" {
		host = "github.com"
	}
	timeout := opts.Timeout
	if timeout == 0 {
		seconds := envutil.GetIntFromEnv(constants.EnvVarHTTPTimeout, constants.DefaultHTTPTimeoutSeconds,
			constants.MinHTTPTimeoutSeconds, constants.MaxHTTPTimeoutSeconds, clientLog)
		timeout = time.Duration(seconds) * time.Second
	}
	rest, err := newRESTClient(api.ClientOptions{
		Host:      host,
		AuthToken: opts.Token,
		Transport: opts.Transport,
		Timeout:   timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create REST client: %v", err)
	}
	clientLog.Printf("created client for %s on %s with timeout %s", TargetRepo, host, timeout)
	return &Client{rest: rest, repo: TargetRepo}, nil
}

// Workflow is one entry of the Actions workflow list.
type Workflow struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Path    string `json:"path"`
	State   string `json:"state"`
	HTMLURL string `json:"html_url"`
}

// ListWorkflows fetches the workflows of the target repository in a single
// request. The page size covers every workflow the repository realistically
// carries, so no pagination is performed.
func (c *Client) ListWorkflows(ctx context.Context) ([]Workflow, error) {
	path := fmt.Sprintf("repos/%s/actions/workflows?per_page=%d", c.repo, constants.DefaultWorkflowsPerPage)
	var response struct {
		TotalCount int        `json:"total_count"`
		Workflows  []Workflow `json:"workflows"`
	}
	clientLog.Printf("GET %s", path)
	if err := c.rest.DoWithContext(ctx, http.MethodGet, path, nil, &response); err != nil {
		return nil, apiError(http.MethodGet, path, err)
	}
	clientLog.Printf("GET %s returned %d of %d workflows", path, len(response.Workflows), response.TotalCount)
	return response.Workflows, nil
}

// DispatchWorkflow sends one workflow_dispatch event for the pipeline. The
// wip input is transmitted as the string "true" or "false" because Actions
// inputs are strings on the wire. A successful dispatch returns 204 with no
// body.
func (c *Client) DispatchWorkflow(ctx context.Context, pipeline Pipeline, ref string, wip bool) error {
	path := fmt.Sprintf("repos/%s/actions/workflows/%d/dispatches", c.repo, pipeline.WorkflowID)
	body, _ := json.Marshal(struct {
		Ref    string            `json:"ref"`
		Inputs map[string]string `json:"inputs"`
	}{
		Ref:    ref,
		Inputs: map[string]string{"wip": strconv.FormatBool(wip)},
	})
	clientLog.Printf("POST %s ref=%s wip=%t", path, ref, wip)
	if err := c.rest.DoWithContext(ctx, http.MethodPost, path, bytes.NewReader(body), nil); err != nil {
		return apiError(http.MethodPost, path, err)
	}
	return nil
}

// DispatchAll dispatches every pipeline with the given ref and wip flag,
// strictly in table order. Each request completes before the next one
// starts, and the first failure aborts the remaining pipelines. When
// dispatched is non-nil it is called after each successful dispatch.
func (c *Client) DispatchAll(ctx context.Context, ref string, wip bool, dispatched func(Pipeline)) error {
	for _, pipeline := range Pipelines() {
		if err := c.DispatchWorkflow(ctx, pipeline, ref, wip); err != nil {
			return fmt.Errorf("%s pipeline: %v", pipeline.Name, err)
		}
		if dispatched != nil {
			dispatched(pipeline)
		}
	}
	return nil
}

// apiError flattens a go-gh error into a single line naming the request and,
// for HTTP failures, the status code and server message.
func apiError(method, path string, err error) error {
	var httpErr *api.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Message != "" {
			return fmt.Errorf("%s %s failed: HTTP %d: %s", method, path, httpErr.StatusCode, httpErr.Message)
		}
		return fmt.Errorf("%s %s failed: HTTP %d", method, path, httpErr.StatusCode)
	}
	return fmt.Errorf("%s %s failed: %v", method, path, err)
}
