package main

import (
	"flag"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/neurlang/relscorer/config"
)

var errMissingQuestions = errors.New("exactly one questions file is required")

// run is a parsed command line
type run struct {
	questions string
	cfg       *config.Config
}

// parseArgs parses the command line. Settings come from the config file, and flags given
// explicitly override them. A missing default config file falls back to defaults.
func parseArgs(argv []string, output io.Writer) (*run, error) {
	fs := flag.NewFlagSet("train_relscorer", flag.ContinueOnError)
	fs.SetOutput(output)

	configPath := fs.String("config", "config.yaml", "yaml config file")
	var modelName, modelPath, extend string
	fs.StringVar(&modelName, "m", "", "model name")
	fs.StringVar(&modelName, "model-name", "", "model name")
	fs.StringVar(&modelPath, "p", "", "model directory")
	fs.StringVar(&modelPath, "model-path", "", "model directory")
	fs.StringVar(&extend, "e", "", "stored model to extend")
	fs.StringVar(&extend, "extend-model", "", "stored model to extend")
	devRatio := fs.Float64("dev-ratio", config.DefaultDevRatio, "share of examples held out for development")
	numEpochs := fs.Int("num-epochs", config.DefaultNumEpochs, "training epochs")
	numHidden := fs.Int("num-hidden-nodes", config.DefaultNumHiddenNodes, "hidden nodes")
	numFilters := fs.Int("num-filters", config.DefaultNumFilters, "filters")
	noAttention := fs.Bool("no-attention", false, "score the relation as a whole")
	categoryMap := fs.String("category-map", "", "mid to category tsv file")
	useTypeNames := fs.Bool("use-type-names", false, "add the category of the first mention as a feature")
	threads := fs.Int("threads", 0, "worker goroutines, 0 for all logical cores")
	debug := fs.Bool("debug", false, "development logging")

	if err := fs.Parse(argv); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, errMissingQuestions
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	var cfg *config.Config
	if _, err := os.Stat(*configPath); set["config"] || err == nil {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.Default()
	}

	if set["m"] || set["model-name"] {
		cfg.Model.Name = modelName
	}
	if set["p"] || set["model-path"] {
		cfg.Model.Path = modelPath
	}
	if set["e"] || set["extend-model"] {
		cfg.Model.Extend = extend
	}
	if set["dev-ratio"] {
		cfg.Training.DevRatio = *devRatio
	}
	if set["num-epochs"] {
		cfg.Training.NumEpochs = *numEpochs
	}
	if set["num-hidden-nodes"] {
		cfg.Network.NumHiddenNodes = *numHidden
	}
	if set["num-filters"] {
		cfg.Network.NumFilters = *numFilters
	}
	if set["no-attention"] {
		attention := !*noAttention
		cfg.Network.UseAttention = &attention
	}
	if set["category-map"] {
		cfg.Data.CategoryMap = *categoryMap
	}
	if set["use-type-names"] {
		cfg.Network.UseTypeNames = *useTypeNames
	}
	if set["threads"] {
		cfg.Training.Threads = *threads
	}
	if set["debug"] {
		cfg.Debug = *debug
	}

	return &run{questions: fs.Arg(0), cfg: cfg}, nil
}
