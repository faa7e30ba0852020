package completion

// Kind tags a suggestion with its provenance.
type Kind int

const (
	KindKeyword Kind = iota
	KindFunction
	KindTable
	KindColumn
)

func (k Kind) String() string {
	switch k {
	case KindKeyword:
		return "KEYWORD"
	case KindFunction:
		return "FUNCTION"
	case KindTable:
		return "TABLE"
	case KindColumn:
		return "COLUMN"
	default:
		return "UNKNOWN"
	}
}

// Suggestion is an immutable completion source entry. Detail carries, for a
// column, its declared type and owning table.
type Suggestion struct {
	Label  string
	Kind   Kind
	Detail string
}

// Meta is the metadata string displayed beside the label, e.g. "KEYWORD" or
// "COLUMN (int, users)".
func (s Suggestion) Meta() string {
	if s.Detail == "" {
		return s.Kind.String()
	}
	return s.Kind.String() + " (" + s.Detail + ")"
}

// Candidate is a rendered completion, ready for a text-input front end.
type Candidate struct {
	// Label is the full text to insert.
	Label string
	// Offset is negative: the number of characters before the cursor the
	// insertion replaces (the length of the word already typed).
	Offset int
	// Display is the label with the matched prefix emphasised.
	Display string
	// Meta describes the candidate's kind and detail.
	Meta string
}
