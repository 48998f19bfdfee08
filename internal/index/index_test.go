package index

import (
	"testing"

	"github.com/jpl-au/faqd/internal/query"
	"github.com/jpl-au/faqd/internal/taxonomy"
	"github.com/stretchr/testify/assert"
)

func TestOptions_Wants(t *testing.T) {
	all := Options{}
	assert.True(t, all.Wants(query.FieldAnswer))

	paths := Options{Fields: []string{query.FieldPath}}
	assert.True(t, paths.Wants(query.FieldPath))
	assert.True(t, paths.Wants(query.FieldID), "id is always returned")
	assert.False(t, paths.Wants(query.FieldQuestion))
}

func TestPaths(t *testing.T) {
	docs := []Document{
		{ID: "1", Path: taxonomy.Path{"A", "B"}},
		{ID: "2"},
	}
	assert.Equal(t, []taxonomy.Path{{"A", "B"}, nil}, Paths(docs))
}
