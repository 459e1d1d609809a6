package query

import (
	"fmt"
	"strings"
)

// FilterBuilder builds a SimpleFilter on one field. Obtain one from
// Query.Criteria; every terminal method hands back the finished filter.
type FilterBuilder struct {
	field string
}

func (b *FilterBuilder) build(op Operator, value interface{}) SimpleFilter {
	return SimpleFilter{Field: b.field, Op: op, Value: value}
}

func (b *FilterBuilder) Eq(value interface{}) SimpleFilter {
	return b.build(OpEq, value)
}

func (b *FilterBuilder) Neq(value interface{}) SimpleFilter {
	return b.build(OpNeq, value)
}

// In matches rows whose field equals any of the given values. The service
// takes the operands as one comma-joined string.
func (b *FilterBuilder) In(values ...interface{}) SimpleFilter {
	return b.build(OpIn, joinOperands(values))
}

func (b *FilterBuilder) NotIn(values ...interface{}) SimpleFilter {
	return b.build(OpNotIn, joinOperands(values))
}

func (b *FilterBuilder) Gt(value interface{}) SimpleFilter {
	return b.build(OpGt, value)
}

func (b *FilterBuilder) Gte(value interface{}) SimpleFilter {
	return b.build(OpGte, value)
}

func (b *FilterBuilder) Lt(value interface{}) SimpleFilter {
	return b.build(OpLt, value)
}

func (b *FilterBuilder) Lte(value interface{}) SimpleFilter {
	return b.build(OpLte, value)
}

// BeginsWith matches rows whose field starts with the given prefix.
func (b *FilterBuilder) BeginsWith(prefix string) SimpleFilter {
	return b.build(OpBeginsWith, prefix)
}

func (b *FilterBuilder) NotBeginsWith(prefix string) SimpleFilter {
	return b.build(OpNotBeginsWith, prefix)
}

// Blank matches rows where the field is missing or empty.
func (b *FilterBuilder) Blank() SimpleFilter {
	return b.build(OpBlank, true)
}

// NotBlank matches rows where the field holds a value.
func (b *FilterBuilder) NotBlank() SimpleFilter {
	return b.build(OpBlank, false)
}

// Search full-text searches within this one field.
func (b *FilterBuilder) Search(term string) SimpleFilter {
	return b.build(OpSearch, term)
}

// joinOperands renders $in/$nin operand lists in the comma-joined string
// form the service expects, e.g. "MA,VT,NH".
func joinOperands(values []interface{}) string {
	rendered := make([]string, len(values))
	for i, v := range values {
		rendered[i] = fmt.Sprint(v)
	}
	return strings.Join(rendered, ",")
}

// QueryBuilder is the attaching variant of FilterBuilder. Obtain one from
// Query.Field; every terminal method adds the built filter to the owning
// query and returns that query for further chaining.
type QueryBuilder struct {
	query   *Query
	builder FilterBuilder
}

func (b *QueryBuilder) Eq(value interface{}) *Query {
	return b.query.Add(b.builder.Eq(value))
}

func (b *QueryBuilder) Neq(value interface{}) *Query {
	return b.query.Add(b.builder.Neq(value))
}

func (b *QueryBuilder) In(values ...interface{}) *Query {
	return b.query.Add(b.builder.In(values...))
}

func (b *QueryBuilder) NotIn(values ...interface{}) *Query {
	return b.query.Add(b.builder.NotIn(values...))
}

func (b *QueryBuilder) Gt(value interface{}) *Query {
	return b.query.Add(b.builder.Gt(value))
}

func (b *QueryBuilder) Gte(value interface{}) *Query {
	return b.query.Add(b.builder.Gte(value))
}

func (b *QueryBuilder) Lt(value interface{}) *Query {
	return b.query.Add(b.builder.Lt(value))
}

func (b *QueryBuilder) Lte(value interface{}) *Query {
	return b.query.Add(b.builder.Lte(value))
}

func (b *QueryBuilder) BeginsWith(prefix string) *Query {
	return b.query.Add(b.builder.BeginsWith(prefix))
}

func (b *QueryBuilder) NotBeginsWith(prefix string) *Query {
	return b.query.Add(b.builder.NotBeginsWith(prefix))
}

func (b *QueryBuilder) Blank() *Query {
	return b.query.Add(b.builder.Blank())
}

func (b *QueryBuilder) NotBlank() *Query {
	return b.query.Add(b.builder.NotBlank())
}

func (b *QueryBuilder) Search(term string) *Query {
	return b.query.Add(b.builder.Search(term))
}
