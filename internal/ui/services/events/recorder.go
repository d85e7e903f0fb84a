package events

import "poemdeck/internal/domain"

// Recorder is a SelectionListener that keeps every poem it receives
type Recorder struct {
	Poems []domain.Poem
}

func (r *Recorder) OnSelectionChanged(poem domain.Poem) {
	r.Poems = append(r.Poems, poem)
}

// Count returns the number of selection events received
func (r *Recorder) Count() int {
	return len(r.Poems)
}

// Last returns the most recent poem, if any
func (r *Recorder) Last() (domain.Poem, bool) {
	if len(r.Poems) == 0 {
		return domain.Poem{}, false
	}
	return r.Poems[len(r.Poems)-1], true
}
