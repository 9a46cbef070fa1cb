package salesgen

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/pkg/logger"
)

const logFilePermission = 0600

// SetupLogging configures logging to both console and file. If logFile is
// empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "gen_sales_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the sales generator tool.
func ShowHelp() {
	os.Stdout.WriteString(`Retail Sales Generator
======================

Generates a synthetic sales CSV and drives a running retail insights
service through load, preprocess, and the three insight queries.

Usage:
  go run cmd/gen-sales/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:8000")
  -rows int
        Number of sales rows to generate (default 10000)
  -top int
        top_n for the top-skus query (default 10)
  -month string
        Month for the top-skus query (default "april")
  -timeout duration
        HTTP request timeout (default 30s)
  -output string
        Destination CSV file (default: generated_sales_TIMESTAMP.csv)
  -log string
        Log file for run output (default: gen_sales_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help
`)
}
