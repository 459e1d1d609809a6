// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.
//
// Copyright 2025 Quarry Data, Inc.
//

package query

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/quarrydata/quarry-go/qerr"
)

// Query accumulates row filters, an optional full-text search term, an
// optional geo bound, and paging state, then serializes all of it into the
// URL query string the read endpoint accepts.
//
// A Query is not safe for concurrent use. Build it on one goroutine, then
// hand it to the transport.
type Query struct {
	fullText     string
	hasFullText  bool
	limit        int
	offset       int
	includeCount bool
	geo          *Circle
	rowFilters   []Filter
}

func New() *Query {
	return &Query{}
}

// Search sets the full-text search term. An explicitly empty term is still
// sent, which the service treats as a match-all search.
func (q *Query) Search(term string) *Query {
	q.fullText = term
	q.hasFullText = true
	return q
}

// Limit caps the number of rows returned. Values <= 0 leave the service
// default in place.
func (q *Query) Limit(limit int) *Query {
	q.limit = limit
	return q
}

// Offset skips the first offset rows of the result. Values <= 0 leave the
// service default in place.
func (q *Query) Offset(offset int) *Query {
	q.offset = offset
	return q
}

// IncludeRowCount asks the service to compute the total row count for the
// query. Counting costs extra on large tables, so it defaults to off.
func (q *Query) IncludeRowCount(include bool) *Query {
	q.includeCount = include
	return q
}

// Within bounds the query to a geo circle, replacing any earlier bound.
func (q *Query) Within(c Circle) *Query {
	q.geo = &c
	return q
}

// Add appends a row filter. All top-level filters combine under an
// implicit $and.
func (q *Query) Add(f Filter) *Query {
	q.rowFilters = append(q.rowFilters, f)
	return q
}

// And appends one $and group built from the given filters.
func (q *Query) And(filters ...Filter) *Query {
	return q.Add(NewFilterGroup(filters...))
}

// Or appends one $or group built from the given filters.
func (q *Query) Or(filters ...Filter) *Query {
	return q.Add(NewFilterGroup(filters...).AsOr())
}

// AndQueries merges the given sub-queries into this one: the most recently
// added row filter is popped off each sub-query and the popped filters are
// recombined under a single $and group appended here. Only row filters
// move; paging, search, and geo state stay on the sub-queries.
//
// Every sub-query must hold at least one row filter. Composing an empty
// one is a programming error and panics with a *qerr.InvalidQueryError.
func (q *Query) AndQueries(queries ...*Query) *Query {
	return q.popFilters(groupAnd, queries)
}

// OrQueries is AndQueries with the popped filters recombined under $or.
func (q *Query) OrQueries(queries ...*Query) *Query {
	return q.popFilters(groupOr, queries)
}

func (q *Query) popFilters(op string, queries []*Query) *Query {
	group := &FilterGroup{op: op}
	for i, sub := range queries {
		n := len(sub.rowFilters)
		if n == 0 {
			panic(qerr.NewEmptyQueryPopError(i))
		}
		group.Add(sub.rowFilters[n-1])
		sub.rowFilters = sub.rowFilters[:n-1]
	}
	return q.Add(group)
}

// Criteria starts a filter on the given field. The builder's terminal
// methods hand back the built filter without attaching it, which is the
// form to use when assembling explicit groups.
func (q *Query) Criteria(field string) *FilterBuilder {
	return &FilterBuilder{field: field}
}

// Field starts a filter on the given field. The builder's terminal methods
// attach the built filter to this query and return the query for further
// chaining.
func (q *Query) Field(field string) *QueryBuilder {
	return &QueryBuilder{query: q, builder: FilterBuilder{field: field}}
}

// Encode serializes the query into the URL query string form the read
// endpoint accepts. Parameter order is fixed: q, limit, offset,
// include_count, filters, geo. Absent parts are skipped entirely.
//
// Encode does not consume the query; it can be mutated further and encoded
// again.
func (q *Query) Encode() (string, error) {
	parts := make([]string, 0, 6)
	if q.hasFullText {
		parts = append(parts, "q="+url.QueryEscape(q.fullText))
	}
	if q.limit > 0 {
		parts = append(parts, "limit="+strconv.Itoa(q.limit))
	}
	if q.offset > 0 {
		parts = append(parts, "offset="+strconv.Itoa(q.offset))
	}
	if q.includeCount {
		parts = append(parts, "include_count=true")
	}
	if len(q.rowFilters) > 0 {
		filtersJSON, err := q.filtersJSON()
		if err != nil {
			return "", err
		}
		parts = append(parts, "filters="+url.QueryEscape(string(filtersJSON)))
	}
	if q.geo != nil {
		geoJSON, err := json.Marshal(q.geo)
		if err != nil {
			return "", qerr.NewInternalError(err)
		}
		parts = append(parts, "geo="+url.QueryEscape(string(geoJSON)))
	}
	return strings.Join(parts, "&"), nil
}

// String renders the encoded form, or the failure text if encoding fails.
// It exists for logs and debugging; transports should call Encode.
func (q *Query) String() string {
	encoded, err := q.Encode()
	if err != nil {
		return "<invalid query: " + err.Error() + ">"
	}
	return encoded
}

// filtersJSON renders the row filters: a single filter serializes directly,
// several combine under an implicit $and.
func (q *Query) filtersJSON() ([]byte, error) {
	var node Filter
	if len(q.rowFilters) == 1 {
		node = q.rowFilters[0]
	} else {
		node = NewFilterGroup(q.rowFilters...)
	}
	out, err := json.Marshal(node)
	if err != nil {
		return nil, qerr.NewInternalError(err)
	}
	return out, nil
}
