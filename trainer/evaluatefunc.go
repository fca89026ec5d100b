package trainer

import "math"

import "github.com/neurlang/relscorer/datasets/relations"
import "github.com/neurlang/relscorer/parallel"

// NewEvaluateFunc returns a function reporting the success percentage on the development
// batch together with a fingerprint of the predictions. Success is the share of questions
// (grouped by qid) whose top scored example has the best label of that question.
func NewEvaluateFunc(qids []relations.QID, labels []float64, threads int,
	score func(i int) float64) func() (int, [32]byte) {

	return func() (int, [32]byte) {
		var n = len(qids)
		var scores = make([]float64, n)
		var fp = parallel.NewFingerprint(n)
		parallel.ForEachChunk(n, 256, threads, func(from, to int) {
			for i := from; i < to; i++ {
				scores[i] = score(i)
				fp.MustPutUint16(i, uint16(math.Round(scores[i]*0xFFFF/(1+scores[i]))))
			}
		})
		return Success(qids, labels, scores), fp.Sum()
	}
}

// Success computes the percentage of qids whose best scored example carries the best label.
// Only qids with a positive label count. The first example wins ties. It is 0 when no qid counts.
func Success(qids []relations.QID, labels, scores []float64) int {
	type question struct {
		top, best float64
		topLabel  float64
	}
	var questions = make(map[relations.QID]*question)
	for i, qid := range qids {
		q, ok := questions[qid]
		if !ok {
			questions[qid] = &question{top: scores[i], best: labels[i], topLabel: labels[i]}
			continue
		}
		if scores[i] > q.top {
			q.top, q.topLabel = scores[i], labels[i]
		}
		if labels[i] > q.best {
			q.best = labels[i]
		}
	}
	var correct, total int
	for _, q := range questions {
		// questions without any positive example cannot be ranked wrong
		if q.best <= 0 {
			continue
		}
		total++
		if q.topLabel >= q.best {
			correct++
		}
	}
	if total == 0 {
		return 0
	}
	return 100 * correct / total
}
