// compile.go translates query expressions into bleve queries and declares the
// index mapping those queries assume.

package bleveindex

import (
	"fmt"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/mapping"
	bq "github.com/blevesearch/bleve/v2/search/query"

	"github.com/jpl-au/faqd/internal/index"
	"github.com/jpl-au/faqd/internal/query"
)

// Mapping returns the index mapping FAQ documents are expected to be indexed
// with: path segments as stored keywords, free text analysed and stored.
func Mapping() mapping.IndexMapping {
	kw := bleve.NewTextFieldMapping()
	kw.Analyzer = keyword.Name
	kw.Store = true
	kw.IncludeInAll = false

	doc := bleve.NewDocumentStaticMapping()
	doc.AddFieldMappingsAt(query.FieldPath, kw)
	for _, f := range query.TextFields {
		text := bleve.NewTextFieldMapping()
		text.Analyzer = standard.Name
		text.Store = true
		doc.AddFieldMappingsAt(f, text)
	}

	im := bleve.NewIndexMapping()
	im.DefaultMapping = doc
	im.DefaultAnalyzer = standard.Name
	return im
}

// keywordField reports whether field is indexed verbatim.
func keywordField(field string) bool {
	return field == query.FieldPath
}

func compile(e query.Expr) (bq.Query, error) {
	switch v := e.(type) {
	case nil, query.MatchAll:
		return bleve.NewMatchAllQuery(), nil

	case query.ID:
		return bleve.NewDocIDQuery([]string{v.Value}), nil

	case query.Term:
		switch {
		case v.Field == query.FieldID:
			return bleve.NewDocIDQuery([]string{v.Value}), nil
		case keywordField(v.Field):
			q := bleve.NewTermQuery(v.Value)
			q.SetField(v.Field)
			return q, nil
		}
		q := bleve.NewMatchQuery(v.Value)
		q.SetField(v.Field)
		return q, nil

	case query.Phrase:
		switch {
		case v.Field == query.FieldID:
			return bleve.NewDocIDQuery([]string{v.Value}), nil
		case keywordField(v.Field):
			q := bleve.NewTermQuery(v.Value)
			q.SetField(v.Field)
			return q, nil
		}
		q := bleve.NewMatchPhraseQuery(v.Value)
		q.SetField(v.Field)
		return q, nil

	case query.And:
		if len(v.Clauses) == 0 {
			return bleve.NewMatchAllQuery(), nil
		}
		qs, err := compileAll(v.Clauses)
		if err != nil {
			return nil, err
		}
		return bleve.NewConjunctionQuery(qs...), nil

	case query.Or:
		if len(v.Clauses) == 0 {
			return bleve.NewMatchNoneQuery(), nil
		}
		qs, err := compileAll(v.Clauses)
		if err != nil {
			return nil, err
		}
		return bleve.NewDisjunctionQuery(qs...), nil
	}
	return nil, fmt.Errorf("%w: %T", index.ErrUnsupported, e)
}

func compileAll(es []query.Expr) ([]bq.Query, error) {
	qs := make([]bq.Query, len(es))
	for i, e := range es {
		q, err := compile(e)
		if err != nil {
			return nil, err
		}
		qs[i] = q
	}
	return qs, nil
}
