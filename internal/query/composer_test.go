package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposer_ByID(t *testing.T) {
	var c Composer

	t.Run("valid id", func(t *testing.T) {
		e, err := c.ByID("faq-42")
		require.NoError(t, err)
		assert.Equal(t, ID{Value: "faq-42"}, e)
		assert.Equal(t, "id:faq-42", String(e))
	})

	tests := []struct {
		name string
		id   string
	}{
		{"empty", ""},
		{"whitespace", "faq 42"},
		{"colon", "id:x"},
		{"wildcard", "faq*"},
		{"quote", `faq"`},
		{"control", "faq\x00"},
		{"leading minus", "-faq"},
		{"operator word", "OR"},
	}
	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			_, err := c.ByID(tt.id)
			assert.ErrorIs(t, err, ErrMalformedInput)
		})
	}
}

func TestComposer_ByPaths(t *testing.T) {
	var c Composer

	t.Run("single predicate is verbatim", func(t *testing.T) {
		e, err := c.ByPaths([]string{"Hosp"})
		require.NoError(t, err)
		assert.Equal(t, Phrase{Field: FieldPath, Value: "Hosp"}, e)
		assert.Equal(t, `path:"Hosp"`, String(e))
	})

	t.Run("multiple predicates are ANDed", func(t *testing.T) {
		e, err := c.ByPaths([]string{"Hosp", "ER"})
		require.NoError(t, err)
		assert.Equal(t, `path:"Hosp" AND path:"ER"`, String(e))
	})

	t.Run("empty input is a vacuous group", func(t *testing.T) {
		e, err := c.ByPaths(nil)
		require.NoError(t, err)
		assert.Equal(t, And{Clauses: []Expr{}}, e)
		assert.True(t, IsMatchAll(e))
		assert.Equal(t, "*:*", String(e))
	})

	t.Run("escapes quotes and backslashes", func(t *testing.T) {
		e, err := c.ByPaths([]string{`Dr "House"`, `a\b`})
		require.NoError(t, err)
		assert.Equal(t, `path:"Dr \"House\"" AND path:"a\\b"`, String(e))
	})

	t.Run("rejects empty segment", func(t *testing.T) {
		_, err := c.ByPaths([]string{"Hosp", ""})
		assert.ErrorIs(t, err, ErrMalformedInput)
	})

	t.Run("rejects control characters", func(t *testing.T) {
		_, err := c.ByPaths([]string{"Ho\nsp"})
		assert.ErrorIs(t, err, ErrMalformedInput)
	})
}

func TestComposer_BySearch(t *testing.T) {
	var c Composer

	tests := []struct {
		name  string
		text  SearchText
		paths []string
		want  string
	}{
		{
			name: "text only",
			text: Text("visa"),
			want: "question:visa OR answer:visa OR comment:visa",
		},
		{
			name:  "text and one path",
			text:  Text("visa"),
			paths: []string{"Uni"},
			want:  `(question:visa OR answer:visa OR comment:visa) AND path:"Uni"`,
		},
		{
			name:  "text and several paths",
			text:  Text("visa"),
			paths: []string{"Uni", "CS"},
			want:  `(question:visa OR answer:visa OR comment:visa) AND (path:"Uni" AND path:"CS")`,
		},
		{
			name: "absent text and no paths matches all",
			text: NoText(),
			want: "*:*",
		},
		{
			name:  "absent text with paths is the path filter",
			text:  NoText(),
			paths: []string{"Uni", "CS"},
			want:  `path:"Uni" AND path:"CS"`,
		},
		{
			name: "operator word alone is searched as text",
			text: Text("AND"),
			want: `question:"AND" OR answer:"AND" OR comment:"AND"`,
		},
		{
			name: "operator words inside text are quoted",
			text: Text("cats OR dogs"),
			want: `question:(cats "OR" dogs) OR answer:(cats "OR" dogs) OR comment:(cats "OR" dogs)`,
		},
		{
			name: "NOT is not a negation",
			text: Text("visa NOT fees"),
			want: `question:(visa "NOT" fees) OR answer:(visa "NOT" fees) OR comment:(visa "NOT" fees)`,
		},
		{
			name: "lowercase operator words are plain terms",
			text: Text("and"),
			want: "question:and OR answer:and OR comment:and",
		},
		{
			name: "multi token text is grouped",
			text: Text("opening hours"),
			want: "question:(opening hours) OR answer:(opening hours) OR comment:(opening hours)",
		},
		{
			name: "special characters are escaped",
			text: Text("c++ (intro)"),
			want: `question:(c\+\+ \(intro\)) OR answer:(c\+\+ \(intro\)) OR comment:(c\+\+ \(intro\))`,
		},
		{
			name: "literal null is searchable",
			text: Text("null"),
			want: "question:null OR answer:null OR comment:null",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := c.BySearch(tt.text, tt.paths)
			require.NoError(t, err)
			assert.Equal(t, tt.want, String(e))
		})
	}

	t.Run("sentinel with paths equals ByPaths", func(t *testing.T) {
		paths := []string{"Hosp", "ICU"}
		got, err := c.BySearch(ParseSearchText("null"), paths)
		require.NoError(t, err)
		want, err := c.ByPaths(paths)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("empty paths do not alter text result", func(t *testing.T) {
		withNil, err := c.BySearch(Text("fees"), nil)
		require.NoError(t, err)
		withEmpty, err := c.BySearch(Text("fees"), []string{})
		require.NoError(t, err)
		assert.Equal(t, withNil, withEmpty)
	})

	t.Run("blank text is malformed", func(t *testing.T) {
		_, err := c.BySearch(Text("   "), nil)
		assert.ErrorIs(t, err, ErrMalformedInput)
	})

	t.Run("bad path segment is malformed", func(t *testing.T) {
		_, err := c.BySearch(Text("fees"), []string{""})
		assert.ErrorIs(t, err, ErrMalformedInput)
	})
}

func TestParseSearchText(t *testing.T) {
	s, ok := ParseSearchText("null").Get()
	assert.False(t, ok)
	assert.Empty(t, s)

	s, ok = ParseSearchText("nullable").Get()
	assert.True(t, ok)
	assert.Equal(t, "nullable", s)

	s, ok = ParseSearchText("").Get()
	assert.True(t, ok, "empty text is present, not the sentinel")
	assert.Empty(t, s)

	assert.Equal(t, "null", NoText().String())
	assert.Equal(t, "x", Text("x").String())
}

func TestAllOf(t *testing.T) {
	p := Phrase{Field: FieldPath, Value: "A"}

	assert.Equal(t, p, AllOf(p))
	assert.Equal(t, p, AllOf(MatchAll{}, p))
	assert.Equal(t, p, AllOf(And{}, p, nil))
	assert.Equal(t, MatchAll{}, AllOf(MatchAll{}, And{}))
	assert.Equal(t, And{Clauses: []Expr{p, p}}, AllOf(p, p))
}

func TestString_EmptyOr(t *testing.T) {
	assert.Equal(t, "-*:*", String(Or{}))
	assert.Equal(t, "*:*", String(nil))
}
