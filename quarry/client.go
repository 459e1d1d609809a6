// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.
//
// Copyright 2025 Quarry Data, Inc.
//

package quarry

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/quarrydata/quarry-go/logging"
	"github.com/quarrydata/quarry-go/qerr"
	"github.com/quarrydata/quarry-go/query"
)

const Version = "0.3.0"

// Client issues read queries against the Quarry tabular search API. A
// Client is safe for concurrent use as long as each in-flight request gets
// its own Query.
type Client struct {
	config Config
	http   *http.Client
	logger logging.Logger
}

// NewClient validates the config and builds a client around a pooled HTTP
// transport. Zero values for BaseURL, Timeout, and UserAgent fall back to
// the hosted endpoint defaults; the API key is required.
func NewClient(config Config) (*Client, error) {
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	if config.Timeout <= 0 {
		config.Timeout = defaultTimeout
	}
	if config.UserAgent == "" {
		config.UserAgent = "quarry-go/" + Version
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &Client{
		config: config,
		http:   &http.Client{Timeout: config.Timeout},
		logger: logging.NewLogger("quarry-client"),
	}, nil
}

// Fetch runs the query against one table and hands back the decoded read
// envelope. A nil query fetches the table's default page.
func (c *Client) Fetch(ctx context.Context, table string, q *query.Query) (*ReadResponse, error) {
	requestURL, err := c.readURL(table, q)
	if err != nil {
		return nil, err
	}
	logger := c.logger.WithRequest(logging.NewRequestID(), table)
	logger.Debugw("fetching rows", "url", requestURL)

	started := time.Now()
	body, status, err := c.request(ctx, requestURL)
	if err != nil {
		logger.Errorw("fetch failed", "error", err)
		return nil, err
	}
	if status != http.StatusOK {
		apiErr := toAPIError(status, table, body)
		logger.Errorw("fetch rejected", "status_code", status, "error", apiErr)
		return nil, apiErr
	}
	response, err := parseReadResponse(body)
	if err != nil {
		logger.Errorw("malformed response body", "error", err)
		return nil, err
	}
	logger.Infow("fetched rows", "returned", response.Count(), "duration", time.Since(started))
	return response, nil
}

// RawQuery renders the full request URL for the query without sending it.
func (c *Client) RawQuery(table string, q *query.Query) (string, error) {
	return c.readURL(table, q)
}

func (c *Client) readURL(table string, q *query.Query) (string, error) {
	if table == "" {
		return "", qerr.NewInvalidArgumentError(fmt.Errorf("table name is empty"))
	}
	if q == nil {
		q = query.New()
	}
	encoded, err := q.Encode()
	if err != nil {
		return "", err
	}
	base := strings.TrimSuffix(c.config.BaseURL, "/")
	requestURL := fmt.Sprintf("%s/t/%s", base, url.PathEscape(table))
	if encoded != "" {
		requestURL += "?" + encoded
	}
	return requestURL, nil
}

func (c *Client) request(ctx context.Context, requestURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, 0, qerr.NewConnectionError(requestURL, err)
	}
	req.Header.Set("Api-Key", c.config.APIKey)
	req.Header.Set("User-Agent", c.config.UserAgent)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, qerr.NewConnectionError(requestURL, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, qerr.NewInternalError(err)
	}
	return body, resp.StatusCode, nil
}
