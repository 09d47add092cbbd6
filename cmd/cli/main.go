package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"carbon-credits/internal/config"
	"carbon-credits/internal/data"
	"carbon-credits/internal/dataset"
	"carbon-credits/internal/export"
	"carbon-credits/internal/logger"
	"carbon-credits/internal/model"
	"carbon-credits/internal/report"

	"github.com/rs/zerolog/log"
)

func main() {
	// No subcommand runs generate with defaults.
	if len(os.Args) < 2 {
		cmdGenerate(nil)
		return
	}

	switch os.Args[1] {
	case "generate":
		cmdGenerate(os.Args[2:])
	case "report":
		cmdReport(os.Args[2:])
	case "companies":
		cmdCompanies()
	case "-h", "--help", "help":
		usage()
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli [generate] [--config config.yaml] [--out ai_infrastructure_carbon_credits.csv] [--format csv|xlsx] [--seed 42] [--as-of YYYY-MM-DD]")
	fmt.Println("  cli report --data ai_infrastructure_carbon_credits.csv")
	fmt.Println("  cli companies")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - generate writes 91 days x 10 companies ending at --as-of (default: today)")
	fmt.Println("  - the same seed and as-of day always produce the same file")
	fmt.Println("  - report re-reads a generated CSV and prints the summary and company ranking")
}

func cmdGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Optional path to YAML config")
	outPath := fs.String("out", "", "Output path (overrides output.path)")
	format := fs.String("format", "", "Output format: csv or xlsx (overrides output.format)")
	seed := fs.Uint64("seed", model.DefaultSeed, "Random seed (overrides generator.seed)")
	asOf := fs.String("as-of", "", "Window end date YYYY-MM-DD (overrides generator.as_of)")
	_ = fs.Parse(args)

	cfg := loadConfig(*cfgPath)
	outSet := false
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.Output.Path = *outPath
			outSet = true
		case "format":
			cfg.Output.Format = *format
		case "seed":
			cfg.Generator.Seed = seed
		case "as-of":
			cfg.Generator.AsOf = *asOf
		}
	})
	if !outSet && cfg.Output.Path == config.DefaultOutputPath {
		cfg.Output.Path = config.DefaultPathFor(cfg.Output.Format)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	asOfTime, err := cfg.Generator.AsOfTime(time.Now())
	if err != nil {
		log.Fatal().Err(err).Msg("invalid as-of date")
	}
	outFormat, err := cfg.Output.OutputFormat()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid output format")
	}

	res, err := dataset.Generate(dataset.Params{
		Seed: cfg.Generator.SeedValue(),
		AsOf: asOfTime,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("generation failed")
	}
	log.Info().
		Uint64("seed", res.Seed).
		Str("start", res.Start.Format(model.DateLayout)).
		Str("end", res.End.Format(model.DateLayout)).
		Int("records", len(res.Records)).
		Msg("dataset generated")

	if err := report.WriteSummary(os.Stdout, report.Summarize(res.Records)); err != nil {
		log.Fatal().Err(err).Msg("write summary")
	}

	if err := export.WriteFile(cfg.Output.Path, outFormat, res.Records); err != nil {
		log.Fatal().Err(err).Str("path", cfg.Output.Path).Msg("save dataset")
	}
	fmt.Printf("✅ Dataset saved as '%s'\n", cfg.Output.Path)
	fmt.Println()

	if err := report.WriteSuggestions(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("write suggestions")
	}
}

func cmdReport(args []string) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	dataPath := fs.String("data", config.DefaultOutputPath, "Path to a generated dataset CSV")
	cfgPath := fs.String("config", "", "Optional path to YAML config (logging only)")
	_ = fs.Parse(args)

	loadConfig(*cfgPath)

	records, err := data.LoadRecordsCSV(*dataPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load dataset")
	}
	log.Info().Str("path", *dataPath).Int("records", len(records)).Msg("dataset loaded")

	if err := report.WriteReport(os.Stdout, records); err != nil {
		log.Fatal().Err(err).Msg("write report")
	}
}

func cmdCompanies() {
	for i, name := range model.CompanyCatalog() {
		fmt.Printf("%2d  %s\n", i+1, name)
	}
}

// loadConfig reads path (or defaults when empty) and installs the global logger.
func loadConfig(path string) *config.Config {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			logger.SetGlobalLogger(logger.New(logger.Config{Level: "info", Pretty: true}))
			log.Fatal().Err(err).Str("path", path).Msg("load config")
		}
		cfg = loaded
	}
	logger.SetGlobalLogger(logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Pretty: cfg.Logging.Pretty,
	}))
	return cfg
}
