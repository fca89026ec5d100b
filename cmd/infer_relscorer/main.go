package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/neurlang/relscorer/datasets/relations"
	"github.com/neurlang/relscorer/inference"
	"github.com/neurlang/relscorer/logger"
	"github.com/neurlang/relscorer/scorer"
)

func main() {
	model := flag.String("model", "models/WQSP_ExtDeep_Ranker", "stored model, with or without the .json.lzw extension")
	question := flag.String("question", "", "question to rank candidate relations for")
	candidates := flag.String("candidates", "", "space separated candidate relations, parts separated by commas")
	categoryMap := flag.String("category-map", "", "mid to category tsv file")
	threads := flag.Int("threads", 0, "worker goroutines, 0 for all logical cores")
	debug := flag.Bool("debug", false, "development logging")
	flag.Parse()

	log := logger.Must(*debug)
	defer log.Sync()

	if err := infer(os.Stdout, log, *model, *categoryMap, *threads, *question, *candidates, flag.Args()); err != nil {
		log.Error("inference failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func infer(w io.Writer, log *zap.Logger, model, categoryMap string, threads int,
	question, candidates string, files []string) error {

	var categories relations.CategoryMap
	if categoryMap != "" {
		var err error
		if categories, err = relations.ReadCategoryMap(categoryMap); err != nil {
			return err
		}
	}
	s, err := scorer.Load(model, scorer.Options{Threads: threads, Categories: categories, Logger: log})
	if err != nil {
		return err
	}

	if question != "" {
		tokens, mids, err := relations.TokenizeMentions(question)
		if err != nil {
			return err
		}
		for _, r := range inference.Rank(s, tokens, mids, relations.ParseRelations(candidates)) {
			fmt.Fprintf(w, "%.4f\t%s\n", r.Score, r.Relation.Key())
		}
	}

	for _, file := range files {
		pos, neg, err := relations.ReadExamples(file)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d%%\n", file, inference.Evaluate(s, pos, neg, s.Options().Threads))
	}
	return nil
}
