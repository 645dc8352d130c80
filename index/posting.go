package index

// PostingSet is the set of document ids that produced a term in any indexed
// field. Presence is binary: no per-field, per-position, or frequency
// information is kept.
type PostingSet map[string]struct{}

// Add inserts a document id into the set.
func (p PostingSet) Add(docID string) {
	p[docID] = struct{}{}
}

// Contains reports whether the set holds the given document id.
func (p PostingSet) Contains(docID string) bool {
	_, ok := p[docID]
	return ok
}

// Len returns the number of documents in the set, i.e. the term's document
// frequency.
func (p PostingSet) Len() int {
	return len(p)
}
