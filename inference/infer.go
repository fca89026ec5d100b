// Package inference ranks the candidate relations of a question with a trained scorer
package inference

import (
	"sort"

	"github.com/neurlang/relscorer/datasets/relations"
	"github.com/neurlang/relscorer/trainer"
)

// Scorer scores one question - relation pair, higher is better
type Scorer interface {
	Score(e relations.Example) float64
}

// Ranked is a candidate relation together with its score
type Ranked struct {
	Relation relations.Relation
	Score    float64
}

// Rank scores every candidate relation of the question, best first.
// Candidates with equal scores keep their order.
func Rank(s Scorer, question relations.Tokens, mentions []string, candidates []relations.Relation) []Ranked {
	out := make([]Ranked, len(candidates))
	for i, rel := range candidates {
		out[i] = Ranked{
			Relation: rel,
			Score:    s.Score(relations.Example{Question: question, Relation: rel, Mentions: mentions}),
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// Evaluate reports the percentage of questions whose top scored relation is a positive one,
// counted the same way training counts its development success.
func Evaluate(s Scorer, pos, neg []relations.Example, threads int) int {
	examples := make([]relations.Example, 0, len(pos)+len(neg))
	examples = append(examples, pos...)
	examples = append(examples, neg...)
	qids := make([]relations.QID, len(examples))
	labels := make([]float64, len(examples))
	for i := range examples {
		qids[i] = examples[i].Question.QID()
		if i < len(pos) {
			labels[i] = 1.0
		}
	}
	success, _ := trainer.NewEvaluateFunc(qids, labels, threads, func(i int) float64 {
		return s.Score(examples[i])
	})()
	return success
}
