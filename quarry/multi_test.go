package quarry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarrydata/quarry-go/qerr"
	"github.com/quarrydata/quarry-go/query"
)

func TestFetchAllKeepsRequestOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		table := strings.TrimPrefix(r.URL.Path, "/t/")
		body := fmt.Sprintf(`{"version":1,"status":"ok","response":{"data":[{"table":%q}],"included_rows":1}}`, table)
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	requests := []FetchRequest{
		{Table: "places", Query: query.New().Limit(1)},
		{Table: "products", Query: query.New().Search("espresso")},
		{Table: "health-care-providers"},
	}
	responses, err := client.FetchAll(context.Background(), requests)
	require.NoError(t, err)
	require.Len(t, responses, len(requests))
	for i, response := range responses {
		require.Equal(t, 1, response.Count())
		assert.Equal(t, requests[i].Table, response.Rows()[0]["table"])
	}
}

func TestFetchAllPropagatesError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/missing") {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"version":1,"status":"error","error_type":"unknown_table","message":"no such table"}`))
			return
		}
		_, _ = w.Write([]byte(`{"version":1,"status":"ok","response":{"data":[],"included_rows":0}}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	_, err := client.FetchAll(context.Background(), []FetchRequest{
		{Table: "places"},
		{Table: "missing"},
	})
	require.Error(t, err)
	var notFound *qerr.TableNotFoundError
	assert.True(t, errors.As(err, &notFound), "expected *qerr.TableNotFoundError, got %T", err)
}

func TestFetchAllNoRequests(t *testing.T) {
	client := testClient(t, "https://api.quarrydata.dev/v3")
	responses, err := client.FetchAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, responses)
}
