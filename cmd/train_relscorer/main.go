package main

import (
	"flag"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/neurlang/relscorer/datasets/relations"
	"github.com/neurlang/relscorer/logger"
	"github.com/neurlang/relscorer/parallel"
	"github.com/neurlang/relscorer/scorer"
	"github.com/neurlang/relscorer/trainer"
)

func main() {
	r, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		println(err.Error())
		os.Exit(2)
	}

	log, err := logger.New(r.cfg.Debug)
	if err != nil {
		println("cannot create logger:", err.Error())
		os.Exit(1)
	}

	log.Info("starting",
		zap.String("cpu", parallel.CPU()),
		zap.Int("logical_cores", parallel.Threads()),
		zap.String("questions", r.questions),
	)

	if err := train(r, log); err != nil {
		log.Error("training failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
	_ = log.Sync()
}

// train reads the examples, learns the model and stores it
func train(r *run, log *zap.Logger) error {
	cfg := r.cfg

	pos, neg, err := relations.ReadExamples(r.questions)
	if err != nil {
		return err
	}
	log.Info("read examples", zap.Int("positive", len(pos)), zap.Int("negative", len(neg)))

	var categories relations.CategoryMap
	if cfg.Data.CategoryMap != "" {
		categories, err = relations.ReadCategoryMap(cfg.Data.CategoryMap)
		if err != nil {
			return err
		}
		log.Info("read category map", zap.Int("mids", len(categories)))
	} else if cfg.Network.UseTypeNames {
		log.Warn("type names enabled without a category map, every mention is " + relations.UnknownCategory)
	}

	s, err := scorer.New(scorer.Options{
		UseAttention:   cfg.Network.UseAttentionOrDefault(),
		UseTypeNames:   cfg.Network.UseTypeNames,
		NumFilters:     cfg.Network.NumFilters,
		NumHiddenNodes: cfg.Network.NumHiddenNodes,
		Seed:           cfg.Training.Seed,
		Threads:        cfg.Training.Threads,
		Categories:     categories,
		Logger:         log,
	})
	if err != nil {
		return err
	}

	m, err := trainer.Dispatch(s, pos, neg, trainer.DispatchParams{
		DevRatio:    cfg.Training.DevRatio,
		Seed:        cfg.Training.Seed,
		NumEpochs:   cfg.Training.NumEpochs,
		ExtendModel: cfg.Model.Extend,
	}, log)
	if err != nil {
		return err
	}

	return errors.Wrap(m.StoreModel(cfg.Model.Path, cfg.Model.Name), "store model")
}
