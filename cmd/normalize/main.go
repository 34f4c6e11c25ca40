package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Slaymish/HealthDashboard/normalizer"
	"github.com/Slaymish/HealthDashboard/pkg/logger"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	if err := newApp(baseLogger).Run(os.Args); err != nil {
		baseLogger.Error("normalize failed", zap.Error(err))
		os.Exit(1)
	}
}

func newApp(log *zap.Logger) *cli.App {
	return &cli.App{
		Name:      "normalize",
		Usage:     "clean and transform a health tracking CSV export into dated daily records",
		ArgsUsage: "<input.csv> <output.csv>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "epoch",
				Value: normalizer.DefaultEpoch.Format("2006-01-02"),
				Usage: `calendar date of "Day 1"`,
			},
		},
		Action: func(c *cli.Context) error {
			return run(c, log)
		},
	}
}

func run(c *cli.Context, log *zap.Logger) error {
	if c.NArg() != 2 {
		return cli.Exit("usage: normalize [--epoch YYYY-MM-DD] <input.csv> <output.csv>", 2)
	}
	inputPath, outputPath := c.Args().Get(0), c.Args().Get(1)

	epoch, err := time.Parse("2006-01-02", c.String("epoch"))
	if err != nil {
		return fmt.Errorf("invalid epoch: %w", err)
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	table, err := normalizer.ReadTable(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	res, err := normalizer.New(normalizer.WithEpoch(epoch)).Normalize(table)
	if err != nil {
		return fmt.Errorf("normalize %s: %w", inputPath, err)
	}

	for _, d := range res.Diagnostics {
		switch d.Level {
		case normalizer.LevelWarning:
			log.Warn(d.Message)
		default:
			log.Info(d.Message)
		}
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	if err := normalizer.WriteRecords(out, res); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	log.Info("wrote normalized records",
		zap.String("output", outputPath),
		zap.Int("rows", len(res.Records)))
	return nil
}
