// DS3-ModLocalizationExtractor: split and merge tool for FMG text JSON
// Copyright (C) 2026  Null993
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Null993/DS3-ModLocalizationExtractor/internal/config"
	"github.com/Null993/DS3-ModLocalizationExtractor/pkg/fmg"
)

const (
	Version = "0.2.0"
	appName = "fmgsplit"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Split and merge FMG text JSON for translation",
		Long: `fmgsplit splits an unpacked FMG text JSON into a header file and
editable chunk files, and merges an edited directory back into a
document identical to the source except for the translated text.

Entry IDs and all format metadata live only in 0_header.json;
translators edit part_N.json files that contain nothing but text.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(logLevel)
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(extractCmd())
	cmd.AddCommand(mergeCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, Version)
		},
	})

	return cmd
}

func extractCmd() *cobra.Command {
	var (
		outDir string
		split  bool
		max    int
	)

	cmd := &cobra.Command{
		Use:   "extract <source.json>",
		Short: "Split a source document into header and chunk files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(slog.Default())
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("split") {
				split = cfg.Split.Enabled
			}
			if !cmd.Flags().Changed("max-entries") {
				max = cfg.Split.MaxEntries
			}

			res, err := fmg.Extract(args[0], outDir, fmg.Options{
				Split:              split,
				MaxEntriesPerChunk: max,
			})
			if err != nil {
				return err
			}
			slog.Info("extraction complete",
				slog.String("header", res.HeaderPath),
				slog.Int("chunks", len(res.ChunkPaths)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default: <source>_extracted)")
	cmd.Flags().BoolVar(&split, "split", true, "Partition entries into multiple chunk files")
	cmd.Flags().IntVarP(&max, "max-entries", "m", 500, "Maximum entries per chunk file")

	return cmd
}

func mergeCmd() *cobra.Command {
	var (
		outPath  string
		compress bool
	)

	cmd := &cobra.Command{
		Use:   "merge <extracted-dir>",
		Short: "Reassemble a document from an extracted directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(slog.Default())
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("compress") {
				compress = cfg.Output.Compress
			}

			path, err := fmg.Merge(args[0], outPath, fmg.MergeOptions{Compress: compress})
			if err != nil {
				return err
			}
			slog.Info("merge complete", slog.String("output", path))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default: <dir>_merged.json)")
	cmd.Flags().BoolVar(&compress, "compress", false, "Write the merged document as an lz4 container")

	return cmd
}

func configureLogging(logLevel string) {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}
