package trainer

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/neurlang/relscorer/datasets/relations"
)

// Model is a trained relation model which can be persisted
type Model interface {
	// StoreModel writes the model named name into the directory dir
	StoreModel(dir, name string) error
}

// LearnParams carries everything a Learner gets besides the training examples
type LearnParams struct {
	// ExtendModel is a stored model to continue training from, empty for none
	ExtendModel string

	// Dev is the shuffled development batch, DevQIDs and DevLabels run parallel to it
	Dev       []relations.Example
	DevQIDs   []relations.QID
	DevLabels []float64

	NumEpochs int
}

// Learner learns a relation model from positive and negative examples
type Learner interface {
	LearnRelationModel(pos, neg []relations.Example, params LearnParams) (Model, error)
}

// DispatchParams configures Dispatch
type DispatchParams struct {
	DevRatio    float64
	Seed        int64
	NumEpochs   int
	ExtendModel string
}

// Dispatch splits off the development batch and hands the data to the learner.
// Training examples are passed in file order, the development batch shuffled.
func Dispatch(l Learner, pos, neg []relations.Example, p DispatchParams, log *zap.Logger) (Model, error) {
	if log == nil {
		log = zap.NewNop()
	}
	split, err := relations.Split(pos, neg, p.DevRatio, p.Seed)
	if err != nil {
		return nil, err
	}
	log.Info("dev examples",
		zap.Int("positive", split.NumPositiveDev),
		zap.Int("negative", split.NumNegativeDev),
		zap.Int("train_positive", len(split.Positive)),
		zap.Int("train_negative", len(split.Negative)),
	)
	m, err := l.LearnRelationModel(split.Positive, split.Negative, LearnParams{
		ExtendModel: p.ExtendModel,
		Dev:         split.Dev,
		DevQIDs:     split.DevQIDs,
		DevLabels:   split.DevLabels,
		NumEpochs:   p.NumEpochs,
	})
	if err != nil {
		return nil, errors.Wrap(err, "learn relation model")
	}
	return m, nil
}
