package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"carbon-credits/internal/dataset"
	"carbon-credits/internal/export"
	"carbon-credits/internal/logger"
	"carbon-credits/internal/model"

	"github.com/rs/zerolog/log"
)

// Demo:
// - Generate a small dataset for one company
// - Print every column of the first few days to show how the formulas fit together
func main() {
	company := flag.String("company", model.Companies[0], "Company to generate for")
	days := flag.Int("n", 3, "Number of days to print (from the start of the window)")
	seed := flag.Uint64("seed", model.DefaultSeed, "Random seed")
	asOf := flag.String("as-of", "", "Window end date YYYY-MM-DD (default: today)")
	outCSV := flag.String("out", "", "Optional path to write the single-company CSV")
	flag.Parse()

	logger.SetGlobalLogger(logger.New(logger.Config{Level: "debug", Pretty: true}))

	end := time.Now()
	if *asOf != "" {
		parsed, err := time.Parse(model.DateLayout, *asOf)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid --as-of")
		}
		end = parsed
	}

	res, err := dataset.Generate(dataset.Params{
		Seed:      *seed,
		AsOf:      end,
		Companies: []string{*company},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("generation failed")
	}

	n := *days
	if n <= 0 || n > len(res.Records) {
		n = len(res.Records)
	}
	for _, r := range res.Records[:n] {
		fmt.Printf("=== %s | %s ===\n", r.Date, r.Company)
		row := export.FormatRow(r)
		for i, col := range model.Columns[2:] {
			fmt.Printf("  %-42s %s\n", col.Name, row[i+2])
		}
		fmt.Printf("  check: traditional %.2f - programmable %.2f = savings %.2f\n",
			r.TotalTraditionalCostUSD, r.TotalProgrammableCostUSD, r.TotalSavingsUSD)
		fmt.Println()
	}

	if *outCSV != "" {
		if err := export.WriteCSVFile(*outCSV, res.Records); err != nil {
			log.Fatal().Err(err).Msg("write csv")
		}
		fmt.Fprintf(os.Stdout, "Wrote %d rows to %s\n", len(res.Records), *outCSV)
	}
}
