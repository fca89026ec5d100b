package scorer

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/neurlang/relscorer/datasets"
	"github.com/neurlang/relscorer/datasets/relations"
	"github.com/neurlang/relscorer/hash"
	"github.com/neurlang/relscorer/parallel"
	"github.com/neurlang/relscorer/trainer"
)

var (
	// ErrNoExamples is returned when there is nothing to learn from
	ErrNoExamples = errors.New("no training examples")
	// ErrDevMismatch is returned when dev qids or labels do not run parallel to dev examples
	ErrDevMismatch = errors.New("dev examples, qids and labels differ in length")
)

// chunk is the number of samples one goroutine handles at a time
const chunk = 256

// LearnRelationModel trains the scorer on positive and negative examples, evaluating
// every change on the development batch. With an empty development batch the training
// examples are evaluated instead.
func (s *RelScorer) LearnRelationModel(pos, neg []relations.Example, params trainer.LearnParams) (trainer.Model, error) {
	if err := trainer.Resume(s, params.ExtendModel); err != nil {
		return nil, err
	}
	if len(pos)+len(neg) == 0 {
		return nil, ErrNoExamples
	}
	if len(params.DevQIDs) != len(params.Dev) || len(params.DevLabels) != len(params.Dev) {
		return nil, errors.Wrapf(ErrDevMismatch, "%d examples, %d qids, %d labels",
			len(params.Dev), len(params.DevQIDs), len(params.DevLabels))
	}

	examples := make([]relations.Example, 0, len(pos)+len(neg))
	examples = append(examples, pos...)
	examples = append(examples, neg...)
	labels := make([]float64, len(examples))
	qids := make([]relations.QID, len(examples))
	for i := range examples {
		if i < len(pos) {
			labels[i] = 1.0
		}
		qids[i] = examples[i].Question.QID()
	}

	s.log.Info("learning relation model",
		zap.Int("positive", len(pos)),
		zap.Int("negative", len(neg)),
		zap.Int("dev", len(params.Dev)),
		zap.Int("epochs", params.NumEpochs),
		zap.Int("filters", len(s.filters)),
		zap.Int("hidden", len(s.hidden)),
		zap.Bool("attention", s.opts.UseAttention),
		zap.Int("threads", s.opts.Threads),
	)

	train := s.newBatch(examples, labels, qids)
	eval := train
	if len(params.Dev) > 0 {
		eval = s.newBatch(params.Dev, params.DevLabels, params.DevQIDs)
	} else {
		s.log.Warn("empty dev batch, evaluating on training examples")
	}
	for f := range s.filters {
		s.refresh(f, train, eval)
	}

	posWeight, negWeight := datasets.Balance(len(pos), len(neg))
	tallyFunc := func(unit int, tally *datasets.Tally) {
		bag := s.rng.Uint32()
		parallel.ForEachChunk(len(train.samples), chunk, s.opts.Threads, func(from, to int) {
			for i := from; i < to; i++ {
				// leave about a third of the examples out of every unit
				if hash.Hash(uint32(i), bag, 3) == 0 {
					continue
				}
				label := train.labels[i] > 0
				weight := negWeight
				if label {
					weight = posWeight
				}
				if unit < len(s.filters) {
					smp := &train.samples[i]
					for _, w := range smp.windows[unit%len(windowConfigs)] {
						for _, r := range smp.relation {
							tally.AddVote(hash.Combine(w, r), label, weight)
						}
					}
				} else {
					h := unit - len(s.filters)
					tally.AddVote(s.hiddenFeature(h, train.row(i)), label, weight)
				}
			}
		})
	}

	trainUnit := trainer.NewTrainUnitFunc(s, s.rng, tallyFunc)
	evaluate := trainer.NewEvaluateFunc(eval.qids, eval.labels, s.opts.Threads, func(i int) float64 {
		return s.scoreRow(eval.row(i))
	})
	loop := trainer.NewLoopFunc(s, params.NumEpochs, s.rng, s.log, evaluate, s.refreshing(trainUnit, train, eval))
	s.success = loop()

	s.log.Info("learned relation model", zap.Int("success", s.success))
	return s, nil
}

// refreshing wraps trainUnit so that the cached filter bits of the batches follow
// every change of a unit and every undo of it
func (s *RelScorer) refreshing(trainUnit func(unit int) func(), batches ...*batch) func(unit int) func() {
	return func(unit int) func() {
		undo := trainUnit(unit)
		if undo == nil {
			return nil
		}
		s.refresh(unit, batches...)
		return func() {
			undo()
			s.refresh(unit, batches...)
		}
	}
}

// refresh recomputes the cached bits of a filter unit. Hidden units have no cached bits.
func (s *RelScorer) refresh(unit int, batches ...*batch) {
	if unit >= len(s.filters) {
		return
	}
	for n, b := range batches {
		if n > 0 && b == batches[0] {
			continue
		}
		parallel.ForEachChunk(len(b.samples), chunk, s.opts.Threads, func(from, to int) {
			for i := from; i < to; i++ {
				setBit(b.row(i), unit, s.fires(unit, &b.samples[i]))
			}
		})
	}
}
