package scorer

import (
	"math/rand"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/neurlang/relscorer/datasets/relations"
	"github.com/neurlang/relscorer/hash"
	"github.com/neurlang/relscorer/hashtron"
	"github.com/neurlang/relscorer/parallel"
)

// hiddenFanIn is the most filters a hidden node reads
const hiddenFanIn = 8

// RelScorer scores question - relation pairs
type RelScorer struct {
	opts    Options
	id      uuid.UUID
	success int

	filters []hashtron.Hashtron
	hidden  []hashtron.Hashtron
	inputs  [][]int

	rng *rand.Rand
	log *zap.Logger
}

// New creates an untrained scorer
func New(opts Options) (*RelScorer, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if opts.Threads <= 0 {
		opts.Threads = parallel.Threads()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	s := &RelScorer{
		opts: opts,
		id:   uuid.New(),
		rng:  rand.New(rand.NewSource(opts.Seed)),
		log:  opts.Logger,
	}
	s.build()
	return s, nil
}

// build allocates untrained units for the current options
func (s *RelScorer) build() {
	s.filters = make([]hashtron.Hashtron, s.opts.NumFilters)
	s.hidden = make([]hashtron.Hashtron, s.opts.NumHiddenNodes)
	fanIn := hiddenFanIn
	if s.opts.NumFilters < fanIn {
		fanIn = s.opts.NumFilters
	}
	s.inputs = make([][]int, s.opts.NumHiddenNodes)
	for h := range s.inputs {
		s.inputs[h] = make([]int, fanIn)
		for j := range s.inputs[h] {
			s.inputs[h][j] = int(hash.Hash(uint32(j), uint32(h)+1, uint32(s.opts.NumFilters)))
		}
	}
}

// ID identifies the model, it is kept across store and load
func (s *RelScorer) ID() uuid.UUID {
	return s.id
}

// Options returns the options of the model
func (s *RelScorer) Options() Options {
	return s.opts
}

// Success returns the development success percentage reached by the last training
func (s *RelScorer) Success() int {
	return s.success
}

// Len returns the number of hashtrons, filters first and hidden nodes after
func (s *RelScorer) Len() int {
	return len(s.filters) + len(s.hidden)
}

// GetHashtron gets n-th hashtron pointer in the network
func (s *RelScorer) GetHashtron(n int) *hashtron.Hashtron {
	if n < len(s.filters) {
		return &s.filters[n]
	}
	n -= len(s.filters)
	if n < len(s.hidden) {
		return &s.hidden[n]
	}
	return nil
}

// Score scores the example's question against its relation. Higher is better.
func (s *RelScorer) Score(e relations.Example) float64 {
	smp := s.newSample(e)
	row := make([]uint64, words(len(s.filters)))
	for f := range s.filters {
		setBit(row, f, s.fires(f, &smp))
	}
	return s.scoreRow(row)
}

// fires reports whether filter f fires anywhere in the sample
func (s *RelScorer) fires(f int, smp *sample) bool {
	h := &s.filters[f]
	if !h.Trained() {
		return false
	}
	for _, w := range smp.windows[f%len(windowConfigs)] {
		for _, r := range smp.relation {
			if h.Forward(hash.Combine(w, r), false) {
				return true
			}
		}
	}
	return false
}

// hiddenFeature packs the filter bits hidden node h reads
func (s *RelScorer) hiddenFeature(h int, row []uint64) (packed uint32) {
	for j, f := range s.inputs[h] {
		if getBit(row, f) {
			packed |= 1 << j
		}
	}
	return
}

func (s *RelScorer) scoreRow(row []uint64) float64 {
	var on, filtersOn int
	for h := range s.hidden {
		if s.hidden[h].Forward(s.hiddenFeature(h, row), false) {
			on++
		}
	}
	for f := range s.filters {
		if getBit(row, f) {
			filtersOn++
		}
	}
	return (float64(on) + float64(filtersOn)/float64(len(s.filters)+1)) / float64(len(s.hidden))
}
