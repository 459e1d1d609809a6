package quarry

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/quarrydata/quarry-go/query"
)

// FetchRequest names one table query for FetchAll.
type FetchRequest struct {
	Table string
	Query *query.Query
}

// FetchAll runs the requests concurrently and returns the responses in
// request order. The first failure cancels the remaining requests and is
// returned. Queries must not be shared between requests.
func (c *Client) FetchAll(ctx context.Context, requests []FetchRequest) ([]*ReadResponse, error) {
	responses := make([]*ReadResponse, len(requests))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, request := range requests {
		i, request := i, request
		group.Go(func() error {
			response, err := c.Fetch(groupCtx, request.Table, request.Query)
			if err != nil {
				return err
			}
			responses[i] = response
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return responses, nil
}
