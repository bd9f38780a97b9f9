package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joseph-ayodele/loans-extractor/internal/common"
	"github.com/joseph-ayodele/loans-extractor/internal/export"
	"github.com/joseph-ayodele/loans-extractor/internal/extract"
	"github.com/joseph-ayodele/loans-extractor/internal/llm/mistral"
	"github.com/joseph-ayodele/loans-extractor/internal/pipeline"
	repo "github.com/joseph-ayodele/loans-extractor/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		pdfPath  = flag.String("pdf", "", "credit history PDF to process (required unless -reset or -export-only)")
		startPg  = flag.Int("start", 0, "first page to read, 1-based (0 = from the beginning)")
		endPg    = flag.Int("end", 0, "last page to read, 1-based inclusive (0 = to the end)")
		out      = flag.String("out", "", "output CSV file path (defaults to loans_<timestamp>.csv next to the PDF)")
		xlsxOut  = flag.String("xlsx", "", "also write an XLSX workbook to this path (optional)")
		inmem    = flag.Bool("inmem", false, "use in-memory SQLite database")
		resetStr = flag.String("reset", "", "reset rows before running: 'stuck' (PROCESSING only) or 'errors' (PROCESSING and ERROR)")
		resetIDs = flag.String("reset-ids", "", "comma-separated paragraph ids to limit -reset to")
		exports  = flag.Bool("export-only", false, "skip extraction and processing, only export already completed rows")
	)
	flag.Parse()

	if *pdfPath == "" && !*exports && *resetStr == "" {
		printError("Error: -pdf is required (or use -export-only / -reset)\n")
		os.Exit(1)
	}
	if *resetStr != "" && *resetStr != "stuck" && *resetStr != "errors" {
		printError("Error: -reset must be 'stuck' or 'errors'\n")
		os.Exit(1)
	}
	var resetScope []int
	if *resetIDs != "" {
		if *resetStr == "" {
			printError("Error: -reset-ids requires -reset\n")
			os.Exit(1)
		}
		for _, part := range strings.Split(*resetIDs, ",") {
			id, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				printError("Error: invalid -reset-ids entry %q\n", part)
				os.Exit(1)
			}
			resetScope = append(resetScope, id)
		}
	}

	// If output file not specified, use a timestamped default next to the PDF
	if *out == "" {
		dir := "."
		if *pdfPath != "" {
			dir = filepath.Dir(*pdfPath)
		}
		name := fmt.Sprintf("loans_%s.csv", time.Now().Format("20060102_150405"))
		*out = filepath.Join(dir, name)
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if *inmem {
		cfg.Database.DSN = ":memory:"
	}

	db, err := repo.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	paragraphs := repo.NewParagraphRepository(db.Client, logger)
	loans := repo.NewLoanRepository(db.Client, logger)

	pages := repo.PageRange{Start: *startPg, End: *endPg}

	// Optional operator reset before anything else touches the store
	if *resetStr != "" {
		n, err := paragraphs.Reset(ctx, repo.ResetScope{
			IDs:           resetScope,
			Pages:         pages,
			IncludeErrors: *resetStr == "errors",
		})
		if err != nil {
			logger.Error("reset failed", "error", err)
			os.Exit(1)
		}
		logger.Info("reset complete", "mode", *resetStr, "rows", n)
	}

	// Stage 1: extract paragraphs from the PDF
	var extracted extract.Result
	if *pdfPath != "" && !*exports {
		src, err := extract.OpenPDF(*pdfPath, logger)
		if err != nil {
			logger.Error("failed to open PDF", "path", *pdfPath, "error", err)
			os.Exit(1)
		}
		splitter := extract.NewSplitter(extract.SplitterConfig{
			MinLen: cfg.Extract.MinParagraphLen,
		})
		extractor := extract.NewService(splitter, paragraphs, logger)
		extracted, err = extractor.ExtractRange(ctx, src, *startPg, *endPg)
		_ = src.Close()
		if err != nil {
			logger.Error("extraction failed", "error", err)
			os.Exit(1)
		}
	}

	// Stage 2: drain PENDING paragraphs through the model
	var summary pipeline.Summary
	if !*exports {
		client := mistral.NewClient(mistral.Config{
			APIKey:      cfg.LLM.APIKey,
			BaseURL:     cfg.LLM.BaseURL,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, logger)
		logger.Info("Mistral client initialized", "model", cfg.LLM.Model)

		scheduler := pipeline.NewScheduler(cfg.Pipeline, paragraphs, client, logger)
		summary, err = scheduler.Run(ctx, pages)
		if err != nil {
			logger.Error("processing aborted", "error", err)
			os.Exit(1)
		}
	}

	// Stage 3: export completed rows
	exporter := export.NewService(loans, logger)

	f, err := os.Create(*out)
	if err != nil {
		logger.Error("failed to create output file", "path", *out, "error", err)
		os.Exit(1)
	}
	rows, err := exporter.WriteCSV(ctx, f, pages)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		logger.Error("failed to export CSV", "error", err)
		os.Exit(1)
	}

	if *xlsxOut != "" {
		xlsxBytes, err := exporter.WriteXLSX(ctx, pages)
		if err != nil {
			logger.Error("failed to export XLSX", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*xlsxOut, xlsxBytes, 0644); err != nil {
			logger.Error("failed to write XLSX file", "error", err)
			os.Exit(1)
		}
	}

	stats, err := paragraphs.Stats(ctx)
	if err != nil {
		logger.Error("failed to read stats", "error", err)
		os.Exit(1)
	}

	logger.Info("batch run complete",
		"pages_read", extracted.PagesRead,
		"paragraphs_inserted", extracted.Inserted,
		"duplicates_skipped", extracted.Duplicates,
		"processed", summary.Processed,
		"done", summary.Done,
		"errors", summary.Errors,
		"loans", summary.Loans,
		"output_file", *out)

	fmt.Printf("Batch run complete!\n")
	fmt.Printf("- Pages read: %d\n", extracted.PagesRead)
	fmt.Printf("- Paragraphs inserted: %d (duplicates skipped: %d)\n", extracted.Inserted, extracted.Duplicates)
	fmt.Printf("- Processed this run: %d (done: %d, errors: %d, loans: %d)\n", summary.Processed, summary.Done, summary.Errors, summary.Loans)
	if summary.Processed > 0 {
		fmt.Printf("- Success rate: %.1f%%\n", float64(summary.Done)/float64(summary.Processed)*100)
	}
	fmt.Printf("- Store totals: %d paragraphs (pending: %d, processing: %d, done: %d, errors: %d), %d loans\n",
		stats.Total, stats.Pending, stats.Processing, stats.Done, stats.Errors, stats.Loans)
	fmt.Printf("- Rows exported: %d\n", rows)
	fmt.Printf("- Output: %s\n", *out)
}
