/*
Copyright © 2026 eslsoft
*/
package cmd

import (
	"compress/gzip"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eslsoft/atelier/internal/infrastructure/config"
	"github.com/eslsoft/atelier/internal/infrastructure/filestore"
	"github.com/eslsoft/atelier/internal/usecase/backup"
)

const (
	importInputKey       = "backup.import.input"
	importGzipKey        = "backup.import.gzip"
	importCollectionsKey = "backup.import.collections"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import user-state collections from a backup file",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		inputPath := viper.GetString(importInputKey)
		gzipEnabled := viper.GetBool(importGzipKey)
		collections := collectionsFromConfig(importCollectionsKey)

		if inputPath == "" {
			return fmt.Errorf("specify a backup file with --input, or - for stdin")
		}
		if !gzipEnabled && inputPath != "-" && strings.HasSuffix(strings.ToLower(inputPath), ".gz") {
			gzipEnabled = true
		}

		store, err := filestore.New(cfg.Storage.Dir)
		if err != nil {
			return fmt.Errorf("open storage dir: %w", err)
		}
		service := backup.NewService(store)

		var (
			reader  = cmd.InOrStdin()
			closers []func() error
		)

		if inputPath != "-" {
			file, openErr := os.Open(filepath.Clean(inputPath))
			if openErr != nil {
				return fmt.Errorf("open backup file: %w", openErr)
			}
			reader = file
			closers = append(closers, file.Close)
		}

		if gzipEnabled {
			gzr, gzErr := gzip.NewReader(reader)
			if gzErr != nil {
				return fmt.Errorf("create gzip reader: %w", gzErr)
			}
			reader = gzr
			closers = append([]func() error{gzr.Close}, closers...)
		}

		defer func() {
			for _, closer := range closers {
				if cerr := closer(); cerr != nil && err == nil {
					err = cerr
				}
			}
		}()

		counts, err := service.Import(reader, collections)
		if err != nil {
			return fmt.Errorf("import backup: %w", err)
		}

		for name, rows := range counts {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %d rows\n", name, rows)
		}
		if inputPath == "-" {
			cmd.PrintErrln("import complete: read from stdin")
		} else {
			cmd.PrintErrf("import complete: %s\n", inputPath)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringP("input", "i", "", "backup file path, use - for stdin")
	importCmd.Flags().Bool("gzip", false, "input is gzip compressed")
	importCmd.Flags().StringSlice("collections", nil, "import only the named collections")

	bindImportConfig()
}

func bindImportConfig() {
	bindFlagToViper(importInputKey, importCmd.Flags().Lookup("input"))
	bindFlagToViper(importGzipKey, importCmd.Flags().Lookup("gzip"))
	bindFlagToViper(importCollectionsKey, importCmd.Flags().Lookup("collections"))
}
