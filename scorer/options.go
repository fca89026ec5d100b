package scorer

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/neurlang/relscorer/datasets/relations"
)

// ErrBadOptions is returned for a scorer without filters or hidden nodes
var ErrBadOptions = errors.New("bad scorer options")

// Options configures a RelScorer
type Options struct {
	UseAttention   bool  `json:"use_attention"`
	UseTypeNames   bool  `json:"use_type_names"`
	NumFilters     int   `json:"num_filters"`
	NumHiddenNodes int   `json:"num_hidden_nodes"`
	Seed           int64 `json:"seed"`

	// Threads bounds the worker goroutines, 0 means parallel.Threads()
	Threads int `json:"-"`

	// Categories maps mention mids to type names, used with UseTypeNames
	Categories relations.CategoryMap `json:"-"`

	Logger *zap.Logger `json:"-"`
}

func (o Options) validate() error {
	if o.NumFilters <= 0 {
		return errors.Wrapf(ErrBadOptions, "num filters %d", o.NumFilters)
	}
	if o.NumHiddenNodes <= 0 {
		return errors.Wrapf(ErrBadOptions, "num hidden nodes %d", o.NumHiddenNodes)
	}
	return nil
}
