// Command gen-sales generates a synthetic sales CSV and drives a running
// retail insights service through its full load/preprocess/query cycle.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/salesgen"
)

// Default configuration constants.
const (
	defaultNumRows    = 10000
	defaultTopN       = 10
	defaultMonth      = "april"
	defaultTimeout    = 30 * time.Second
	defaultRunTimeout = 10 * time.Minute
)

func main() {
	var (
		baseURL    = flag.String("url", "http://localhost:8000", "Base URL of the service")
		numRows    = flag.Int("rows", defaultNumRows, "Number of sales rows to generate")
		topN       = flag.Int("top", defaultTopN, "top_n for the top-skus query")
		month      = flag.String("month", defaultMonth, "Month for the top-skus query")
		timeout    = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		outputFile = flag.String("output", "", "Destination CSV file (default: generated_sales_TIMESTAMP.csv)")
		logFile    = flag.String("log", "", "Log file for run output (default: gen_sales_TIMESTAMP.log)")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging")
		help       = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		salesgen.ShowHelp()
		return
	}

	if err := salesgen.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	output := *outputFile
	if output == "" {
		output = "generated_sales_" + time.Now().Format("20060102_150405") + ".csv"
	}

	config := &salesgen.Config{
		BaseURL:    *baseURL,
		NumRows:    *numRows,
		TopN:       *topN,
		Month:      *month,
		Timeout:    *timeout,
		OutputFile: output,
		LogFile:    *logFile,
		Verbose:    *verbose,
	}

	if err := salesgen.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Run failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
