package quarry

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/quarrydata/quarry-go/qerr"
)

const statusOK = "ok"

// Row is one table row as returned by the service.
type Row map[string]interface{}

// ReadResult is the payload portion of a read response.
type ReadResult struct {
	Data          []Row `json:"data"`
	IncludedRows  int   `json:"included_rows"`
	TotalRowCount *int  `json:"total_row_count,omitempty"`
}

// ReadResponse is the envelope the read endpoint wraps every result in.
type ReadResponse struct {
	Version  int        `json:"version"`
	Status   string     `json:"status"`
	Response ReadResult `json:"response"`
}

type errorResponse struct {
	Version   int    `json:"version"`
	Status    string `json:"status"`
	ErrorType string `json:"error_type"`
	Message   string `json:"message"`
}

func parseReadResponse(body []byte) (*ReadResponse, error) {
	var response ReadResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, qerr.NewInternalError(err)
	}
	if response.Status != statusOK {
		return nil, qerr.NewInternalError(fmt.Errorf("got HTTP 200 with response status %q", response.Status))
	}
	return &response, nil
}

// toAPIError folds a non-200 body into a typed error. Bodies that are not
// the error envelope (proxies, load balancers) are passed through as the
// message.
func toAPIError(status int, table string, body []byte) error {
	var envelope errorResponse
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Status == "" {
		return qerr.FromResponse(status, table, "", strings.TrimSpace(string(body)))
	}
	return qerr.FromResponse(status, table, envelope.ErrorType, envelope.Message)
}

// Rows returns the rows of this result page.
func (r *ReadResponse) Rows() []Row {
	return r.Response.Data
}

// Count returns the number of rows in this page.
func (r *ReadResponse) Count() int {
	return len(r.Response.Data)
}

// TotalCount reports the service-computed total row count. The second
// return is false when the query did not ask for the count.
func (r *ReadResponse) TotalCount() (int, bool) {
	if r.Response.TotalRowCount == nil {
		return 0, false
	}
	return *r.Response.TotalRowCount, true
}

// Decode maps the rows onto out, which must be a pointer to a slice of
// structs. Fields match row keys case-insensitively; use mapstructure tags
// for keys that differ from field names.
func (r *ReadResponse) Decode(out interface{}) error {
	if err := mapstructure.Decode(r.Response.Data, out); err != nil {
		return qerr.NewInvalidArgumentError(err)
	}
	return nil
}
