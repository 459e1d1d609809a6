// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.
//
// Copyright 2025 Quarry Data, Inc.
//

package query

import (
	"encoding/json"
)

// Operator is a row filter comparison operator in the form the service
// accepts. Values are passed through as-is; the service rejects operators
// it does not recognize.
type Operator string

const (
	OpEq            Operator = "$eq"
	OpNeq           Operator = "$neq"
	OpIn            Operator = "$in"
	OpNotIn         Operator = "$nin"
	OpGt            Operator = "$gt"
	OpGte           Operator = "$gte"
	OpLt            Operator = "$lt"
	OpLte           Operator = "$lte"
	OpBeginsWith    Operator = "$bw"
	OpNotBeginsWith Operator = "$nbw"
	OpBlank         Operator = "$blank"
	OpSearch        Operator = "$search"
)

const (
	groupAnd = "$and"
	groupOr  = "$or"
)

// Filter is a row filter predicate. The two implementations are
// SimpleFilter and FilterGroup; both serialize themselves into the JSON
// grammar the service evaluates server-side.
type Filter interface {
	json.Marshaler
	filterNode()
}

// SimpleFilter compares a single field against a value.
type SimpleFilter struct {
	Field string
	Op    Operator
	Value interface{}
}

func (f SimpleFilter) filterNode() {}

// MarshalJSON renders {"<field>":{"<op>":<value>}}. Field names and values
// are not validated client-side.
func (f SimpleFilter) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		f.Field: map[string]interface{}{
			string(f.Op): f.Value,
		},
	})
}

// FilterGroup combines child filters under one logical operator. A group is
// itself a Filter, so groups nest to arbitrary depth.
type FilterGroup struct {
	op      string
	filters []Filter
}

// NewFilterGroup combines the given filters under $and. Child order is kept
// through serialization.
func NewFilterGroup(filters ...Filter) *FilterGroup {
	return &FilterGroup{
		op:      groupAnd,
		filters: filters,
	}
}

// AsOr switches the group's logical operator to $or.
func (g *FilterGroup) AsOr() *FilterGroup {
	g.op = groupOr
	return g
}

// AsAnd switches the group's logical operator back to $and.
func (g *FilterGroup) AsAnd() *FilterGroup {
	g.op = groupAnd
	return g
}

// Op sets the logical operator to a raw wire value, passed through as-is.
// AsOr and AsAnd cover the two operators the service accepts today.
func (g *FilterGroup) Op(op string) *FilterGroup {
	g.op = op
	return g
}

// Add appends child filters, keeping insertion order.
func (g *FilterGroup) Add(filters ...Filter) *FilterGroup {
	g.filters = append(g.filters, filters...)
	return g
}

func (g *FilterGroup) filterNode() {}

// MarshalJSON renders {"<$and|$or>":[<children in insertion order>]}.
func (g *FilterGroup) MarshalJSON() ([]byte, error) {
	filters := g.filters
	if filters == nil {
		filters = []Filter{}
	}
	return json.Marshal(map[string][]Filter{
		g.op: filters,
	})
}
