// csv-import validates a sales dataset from the command line, prints the
// monthly report, and optionally loads it into the SQLite database.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"salesboard/internal/cli"
	"salesboard/internal/core"
	"salesboard/internal/dataset"
)

func main() {
	dbPath := flag.String("db", "", "import into this SQLite database after validation")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-db path] <dataset.csv>\n", os.Args[0])
		os.Exit(2)
	}
	path := flag.Arg(0)

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open dataset: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	records, err := dataset.Parse(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid dataset %s: %v\n", path, err)
		os.Exit(1)
	}

	printReport(records)

	if *dbPath != "" {
		logger := cli.SetupLogger()
		repo := cli.InitSQLite(logger, *dbPath)
		defer repo.Close()

		ids, err := repo.ImportDataset(context.Background(), records)
		if err != nil {
			fmt.Fprintf(os.Stderr, "import failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nImported %d records into %s\n", len(ids), *dbPath)
	}
}

func printReport(records []core.Record) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MONTH\tSALES\tEXPENSES\tPROFIT")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			r.Month,
			core.FormatAmount(r.Sales),
			core.FormatAmount(r.Expenses),
			core.FormatAmount(r.Profit()))
	}

	totals := core.CalculateTotals(records)
	fmt.Fprintln(w, "\t\t\t")
	fmt.Fprintf(w, "TOTAL\t%s\t%s\t%s\n",
		core.FormatAmount(totals.Sales),
		core.FormatAmount(totals.Expenses),
		core.FormatAmount(totals.Profit))
	w.Flush()
}
