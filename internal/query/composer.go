package query

// Sentinel is the literal search text that callers send to mean "no text
// filter". Only ParseSearchText interprets it.
const Sentinel = "null"

// SearchText is an optional full-text filter. The zero value is absent.
type SearchText struct {
	value string
	set   bool
}

// Text returns search text that is always searched for, including the word
// "null".
func Text(s string) SearchText {
	return SearchText{value: s, set: true}
}

// NoText returns absent search text.
func NoText() SearchText {
	return SearchText{}
}

// ParseSearchText converts raw caller input into SearchText, mapping the
// Sentinel to absent.
func ParseSearchText(raw string) SearchText {
	if raw == Sentinel {
		return NoText()
	}
	return Text(raw)
}

// Get returns the text and whether it is present.
func (t SearchText) Get() (string, bool) {
	return t.value, t.set
}

// String returns the text, or the Sentinel when absent.
func (t SearchText) String() string {
	if !t.set {
		return Sentinel
	}
	return t.value
}

// Composer builds query expressions for the three request shapes the FAQ
// index supports. It is stateless and safe for concurrent use.
type Composer struct{}

// ByID matches a single document by identifier.
func (Composer) ByID(id string) (Expr, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	return ID{Value: id}, nil
}

// ByPaths ANDs one path:"<segment>" predicate per segment. A single segment
// yields that predicate alone; no segments yield an empty And.
func (Composer) ByPaths(paths []string) (Expr, error) {
	clauses := make([]Expr, 0, len(paths))
	for _, s := range paths {
		if err := validateSegment(s); err != nil {
			return nil, err
		}
		clauses = append(clauses, Phrase{Field: FieldPath, Value: s})
	}
	if len(clauses) == 1 {
		return clauses[0], nil
	}
	return And{Clauses: clauses}, nil
}

// BySearch combines a question/answer/comment text group with the path
// group. Absent text matches everything; the path group is only added when
// paths is non-empty.
func (c Composer) BySearch(text SearchText, paths []string) (Expr, error) {
	var textGroup Expr = MatchAll{}
	if s, ok := text.Get(); ok {
		if err := validateText(s); err != nil {
			return nil, err
		}
		clauses := make([]Expr, len(TextFields))
		for i, f := range TextFields {
			clauses[i] = Term{Field: f, Value: s}
		}
		textGroup = AnyOf(clauses...)
	}

	if len(paths) == 0 {
		return textGroup, nil
	}
	pathGroup, err := c.ByPaths(paths)
	if err != nil {
		return nil, err
	}
	return AllOf(textGroup, pathGroup), nil
}
