package ltlsyntax

// PredicateTable is the append-only ordered mapping from predicate text to
// a dense, stable predicate id, grounded on the reference translator's
// global symbol table (`tl_lookup`, `original_source/lex.c`). IDs are
// assigned in first-sight order and never change within a run — the VWAA
// and TGBA bitset universes are sized against Count() once parsing ends.
type PredicateTable struct {
	names  []string
	isExpr []bool
	index  map[string]int
}

// NewPredicateTable returns an empty table.
func NewPredicateTable() *PredicateTable {
	return &PredicateTable{index: make(map[string]int)}
}

// Intern returns the id for name, assigning a new one on first sight.
// isExpr marks a `{...}` opaque C-expression predicate (spec.md §6 grammar,
// supplemented per SPEC_FULL.md D9): these are interned by their literal
// bracketed text and rendered back verbatim by the output adapters instead
// of being treated as ordinary identifiers.
func (t *PredicateTable) Intern(name string, isExpr bool) int {
	if id, ok := t.index[name]; ok {
		return id
	}
	id := len(t.names)
	t.names = append(t.names, name)
	t.isExpr = append(t.isExpr, isExpr)
	t.index[name] = id
	return id
}

// Name returns the text of predicate id.
func (t *PredicateTable) Name(id int) string {
	return t.names[id]
}

// IsExpr reports whether predicate id was interned as a `{...}` expression.
func (t *PredicateTable) IsExpr(id int) bool {
	return t.isExpr[id]
}

// Count returns the number of distinct predicates interned so far: the
// universe size P used to size every predicate bitset for the run.
func (t *PredicateTable) Count() int {
	return len(t.names)
}
