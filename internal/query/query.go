package query

import (
	"strconv"

	sq "github.com/Masterminds/squirrel"
)

// Clause is one constraint of a list query. The set of implementations is
// closed: equality, inclusive range and substring match are the only supported
// predicate shapes.
type Clause interface {
	Predicate() sq.Sqlizer
}

// Equal matches rows whose column equals Value exactly.
type Equal struct {
	Column string
	Value  any
}

func (c Equal) Predicate() sq.Sqlizer {
	return sq.Eq{c.Column: c.Value}
}

// Range bounds a column inclusively. A nil bound leaves that side
// unconstrained; construct it with at least one bound set.
type Range struct {
	Column string
	Min    any
	Max    any
}

func (c Range) Predicate() sq.Sqlizer {
	and := sq.And{}
	if c.Min != nil {
		and = append(and, sq.GtOrEq{c.Column: c.Min})
	}
	if c.Max != nil {
		and = append(and, sq.LtOrEq{c.Column: c.Max})
	}
	return and
}

// Match is a case-insensitive substring search over one or more columns,
// combined with OR semantics.
type Match struct {
	Columns []string
	Term    string
}

func (c Match) Predicate() sq.Sqlizer {
	pattern := "%" + c.Term + "%"
	or := make(sq.Or, 0, len(c.Columns))
	for _, col := range c.Columns {
		or = append(or, sq.ILike{col: pattern})
	}
	return or
}

// Apply adds every clause to the builder's WHERE conjunction.
func Apply(b sq.SelectBuilder, clauses []Clause) sq.SelectBuilder {
	for _, c := range clauses {
		b = b.Where(c.Predicate())
	}
	return b
}

type Sort struct {
	Column string
	Desc   bool
}

func (s Sort) OrderBy() string {
	if s.Desc {
		return s.Column + " DESC"
	}
	return s.Column + " ASC"
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Page is a 1-indexed page request.
type Page struct {
	Number int
	Size   int
}

// ParsePage coerces raw page/limit parameters. Missing, malformed or
// non-positive values fall back to page 1 with a limit of 10.
func ParsePage(page, limit string) Page {
	p := Page{Number: DefaultPage, Size: DefaultLimit}
	if n, err := strconv.Atoi(page); err == nil && n > 0 {
		p.Number = n
	}
	if n, err := strconv.Atoi(limit); err == nil && n > 0 {
		p.Size = n
	}
	return p
}

func (p Page) Offset() uint64 {
	return uint64(p.Number-1) * uint64(p.Size)
}

func (p Page) Limit() uint64 {
	return uint64(p.Size)
}

// TotalPages computes the page count for a total row count under this page size.
func (p Page) TotalPages(total int64) int {
	if total <= 0 {
		return 0
	}
	return int((total + int64(p.Size) - 1) / int64(p.Size))
}
