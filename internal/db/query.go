package db

import (
	"fmt"
	"strings"
)

// QueryBuilder assembles an FT.SEARCH pre-filter query string from exact-match
// tag predicates and numeric ranges. An empty builder renders as "*".
type QueryBuilder struct {
	parts []string
}

// NewQuery starts a structural filter query.
func NewQuery() *QueryBuilder {
	return &QueryBuilder{}
}

// Tag adds an exact tag match predicate. Empty values are skipped.
func (q *QueryBuilder) Tag(field, value string) *QueryBuilder {
	if value == "" {
		return q
	}
	q.parts = append(q.parts, fmt.Sprintf("@%s:{%s}", field, tagEscaper.Replace(value)))
	return q
}

// NumericEq adds an exact numeric predicate.
func (q *QueryBuilder) NumericEq(field string, value int64) *QueryBuilder {
	q.parts = append(q.parts, fmt.Sprintf("@%s:[%d %d]", field, value, value))
	return q
}

// NumericRange adds an inclusive numeric range predicate. A zero bound is
// treated as unbounded on that side; when both bounds are zero nothing is added.
func (q *QueryBuilder) NumericRange(field string, from, to int64) *QueryBuilder {
	if from == 0 && to == 0 {
		return q
	}
	lower := "-inf"
	upper := "+inf"
	if from != 0 {
		lower = fmt.Sprintf("%d", from)
	}
	if to != 0 {
		upper = fmt.Sprintf("%d", to)
	}
	q.parts = append(q.parts, fmt.Sprintf("@%s:[%s %s]", field, lower, upper))
	return q
}

// String renders the query. Predicates are conjunctive.
func (q *QueryBuilder) String() string {
	if len(q.parts) == 0 {
		return "*"
	}
	return strings.Join(q.parts, " ")
}

// tagEscaper escapes RediSearch query syntax inside TAG values.
var tagEscaper = strings.NewReplacer(
	",", "\\,",
	".", "\\.",
	"<", "\\<",
	">", "\\>",
	"{", "\\{",
	"}", "\\}",
	"\"", "\\\"",
	"'", "\\'",
	":", "\\:",
	";", "\\;",
	"!", "\\!",
	"@", "\\@",
	"#", "\\#",
	"$", "\\$",
	"%", "\\%",
	"^", "\\^",
	"&", "\\&",
	"*", "\\*",
	"(", "\\(",
	")", "\\)",
	"-", "\\-",
	"+", "\\+",
	"=", "\\=",
	"~", "\\~",
	" ", "\\ ",
)
