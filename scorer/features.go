package scorer

import (
	"github.com/neurlang/relscorer/datasets/relations"
	"github.com/neurlang/relscorer/hash"
	"github.com/neurlang/relscorer/parallel"
)

// windowConfigs are the {width, dilation} pairs filters slide over the question with.
// Filter f uses windowConfigs[f % len(windowConfigs)].
var windowConfigs = [...][2]int{
	{1, 1}, {2, 1}, {3, 1},
	{2, 2}, {3, 2}, {2, 3},
	{3, 3}, {4, 1}, {4, 2},
}

const (
	saltPart     = 0x70617274
	saltRelation = 0x72656c00
	saltCategory = 0x63617400
)

// sample is an example with its features precomputed
type sample struct {
	// windows holds the window features of the question per window config
	windows [len(windowConfigs)][]uint32

	// relation holds the features windows are combined with, the parts of the
	// relation with attention and the whole relation without
	relation []uint32
}

func (s *RelScorer) newSample(e relations.Example) (smp sample) {
	for c, cfg := range windowConfigs {
		smp.windows[c] = windows(e.Question, cfg[0], cfg[1], uint32(c))
	}
	if s.opts.UseTypeNames && len(e.Mentions) > 0 {
		category := s.opts.Categories.LookupOr(e.Mentions[0], relations.UnknownCategory)
		smp.windows[0] = append(smp.windows[0], hash.StringHash(saltCategory, category))
	}
	if s.opts.UseAttention {
		smp.relation = make([]uint32, len(e.Relation))
		for i, part := range e.Relation {
			smp.relation[i] = hash.StringHash(saltPart, part)
		}
	} else {
		smp.relation = []uint32{hash.StringHash(saltRelation, e.Relation.Key())}
	}
	return
}

// windows hashes every window of width tokens spaced dilation apart. A question shorter
// than one window gives a single window of all its tokens.
func windows(tokens relations.Tokens, width, dilation int, salt uint32) (out []uint32) {
	span := (width-1)*dilation + 1
	if len(tokens) < span {
		return []uint32{hash.StringsHash(salt, tokens)}
	}
	var gathered = make([]string, width)
	for p := 0; p+span <= len(tokens); p++ {
		for k := range gathered {
			gathered[k] = tokens[p+k*dilation]
		}
		out = append(out, hash.StringsHash(salt, gathered))
	}
	return
}

func words(bits int) int {
	return (bits + 63) / 64
}

func getBit(row []uint64, n int) bool {
	return row[n/64]&(1<<(n%64)) != 0
}

func setBit(row []uint64, n int, v bool) {
	if v {
		row[n/64] |= 1 << (n % 64)
	} else {
		row[n/64] &^= 1 << (n % 64)
	}
}

// batch is a set of samples with their cached filter bits
type batch struct {
	samples []sample
	labels  []float64
	qids    []relations.QID

	stride int
	bits   []uint64
}

func (s *RelScorer) newBatch(examples []relations.Example, labels []float64, qids []relations.QID) *batch {
	b := &batch{
		samples: make([]sample, len(examples)),
		labels:  labels,
		qids:    qids,
		stride:  words(len(s.filters)),
	}
	b.bits = make([]uint64, b.stride*len(examples))
	parallel.ForEachChunk(len(examples), 1024, s.opts.Threads, func(from, to int) {
		for i := from; i < to; i++ {
			b.samples[i] = s.newSample(examples[i])
		}
	})
	return b
}

func (b *batch) row(i int) []uint64 {
	return b.bits[i*b.stride : (i+1)*b.stride]
}
