// Package query builds boolean query expressions for the FAQ index.
//
// Expressions are small immutable trees (MatchAll, ID, Term, Phrase, And, Or)
// that backends compile into their own query objects. String renders the
// Lucene/Solr form, which is also what the audit log records.
package query

import "strings"

// Document field names understood by every backend.
const (
	FieldID       = "id"
	FieldPath     = "path"
	FieldQuestion = "question"
	FieldAnswer   = "answer"
	FieldComment  = "comment"
)

// TextFields are the free-text fields a search runs across, in render order.
var TextFields = []string{FieldQuestion, FieldAnswer, FieldComment}

// Expr is a node in a query expression tree.
type Expr interface {
	expr()
}

// MatchAll matches every document (*:*).
type MatchAll struct{}

// ID matches the document with the given identifier (id:<value>).
type ID struct {
	Value string
}

// Term matches analysed text in a field (field:<value>). Value may hold
// several whitespace-separated tokens.
type Term struct {
	Field string
	Value string
}

// Phrase matches an exact value in a field (field:"<value>").
type Phrase struct {
	Field string
	Value string
}

// And matches documents satisfying every clause. An empty And is vacuous and
// matches everything.
type And struct {
	Clauses []Expr
}

// Or matches documents satisfying at least one clause. An empty Or matches
// nothing.
type Or struct {
	Clauses []Expr
}

func (MatchAll) expr() {}
func (ID) expr()       {}
func (Term) expr()     {}
func (Phrase) expr()   {}
func (And) expr()      {}
func (Or) expr()       {}

// AllOf joins clauses with AND. A single clause is returned as-is, MatchAll
// clauses are dropped when other clauses exist, and empty And groups are
// omitted.
func AllOf(clauses ...Expr) Expr {
	kept := make([]Expr, 0, len(clauses))
	all := false
	for _, c := range clauses {
		switch v := c.(type) {
		case nil:
			continue
		case MatchAll:
			all = true
			continue
		case And:
			if len(v.Clauses) == 0 {
				all = true
				continue
			}
		}
		kept = append(kept, c)
	}
	switch {
	case len(kept) == 1:
		return kept[0]
	case len(kept) == 0 && all:
		return MatchAll{}
	}
	return And{Clauses: kept}
}

// AnyOf joins clauses with OR. A single clause is returned as-is.
func AnyOf(clauses ...Expr) Expr {
	if len(clauses) == 1 {
		return clauses[0]
	}
	return Or{Clauses: clauses}
}

// IsMatchAll reports whether e matches every document, either directly or as
// an empty And.
func IsMatchAll(e Expr) bool {
	switch v := e.(type) {
	case MatchAll:
		return true
	case And:
		return len(v.Clauses) == 0
	}
	return false
}

// String renders e in Lucene/Solr query syntax.
func String(e Expr) string {
	var b strings.Builder
	write(&b, e, false)
	return b.String()
}

func write(b *strings.Builder, e Expr, nested bool) {
	switch v := e.(type) {
	case nil, MatchAll:
		b.WriteString("*:*")
	case ID:
		b.WriteString(FieldID + ":" + v.Value)
	case Term:
		toks := tokens(v.Value)
		b.WriteString(v.Field + ":")
		if len(toks) == 1 {
			b.WriteString(escapeTerm(toks[0]))
			return
		}
		b.WriteByte('(')
		for i, t := range toks {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(escapeTerm(t))
		}
		b.WriteByte(')')
	case Phrase:
		b.WriteString(v.Field + ":" + quote(v.Value))
	case And:
		if len(v.Clauses) == 0 {
			b.WriteString("*:*")
			return
		}
		group(b, v.Clauses, " AND ", nested)
	case Or:
		if len(v.Clauses) == 0 {
			b.WriteString("-*:*")
			return
		}
		group(b, v.Clauses, " OR ", nested)
	}
}

func group(b *strings.Builder, clauses []Expr, op string, nested bool) {
	if len(clauses) == 1 {
		write(b, clauses[0], nested)
		return
	}
	if nested {
		b.WriteByte('(')
	}
	for i, c := range clauses {
		if i > 0 {
			b.WriteString(op)
		}
		write(b, c, true)
	}
	if nested {
		b.WriteByte(')')
	}
}

// tokens splits search text on whitespace.
func tokens(s string) []string {
	return strings.Fields(s)
}
