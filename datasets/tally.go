package datasets

import "sync"

// Tally is used to count votes on dataset features and return the majority votes
type Tally struct {
	// true value is added as positive weight, false value as negative weight
	// if the tally is positive we map the feature to true, false if negative
	votes map[uint32]int64

	mut sync.Mutex
}

// Init initializes the tally dataset structure
func (t *Tally) Init() {
	t.votes = make(map[uint32]int64)
}

// Free frees the memory occupied by tally dataset structure
func (t *Tally) Free() {
	t.mut.Lock()
	t.votes = nil
	t.mut.Unlock()
}

// Len returns the number of features voted on
func (t *Tally) Len() (o int) {
	t.mut.Lock()
	o = len(t.votes)
	t.mut.Unlock()
	return
}

// AddVote votes weight times for the feature answering output
func (t *Tally) AddVote(feature uint32, output bool, weight int64) {
	if weight == 0 {
		return
	}
	if !output {
		weight = -weight
	}
	t.mut.Lock()
	t.votes[feature] += weight
	t.mut.Unlock()
}

// Dataset resolves the votes into a dataset. Features whose votes cancel out are left out.
func (t *Tally) Dataset() (set Dataset) {
	set.Init()
	t.mut.Lock()
	for feature, rating := range t.votes {
		if rating != 0 {
			set[feature] = rating > 0
		}
	}
	t.mut.Unlock()
	return
}
