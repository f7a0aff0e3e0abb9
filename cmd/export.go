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
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eslsoft/atelier/internal/infrastructure/config"
	"github.com/eslsoft/atelier/internal/infrastructure/filestore"
	"github.com/eslsoft/atelier/internal/usecase/backup"
)

const (
	exportOutputKey      = "backup.export.output"
	exportGzipKey        = "backup.export.gzip"
	exportCollectionsKey = "backup.export.collections"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export user-state collections to a JSON-lines backup",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		outputPath := viper.GetString(exportOutputKey)
		gzipEnabled := viper.GetBool(exportGzipKey)
		collections := collectionsFromConfig(exportCollectionsKey)

		if outputPath == "" {
			outputPath = defaultExportFilename(gzipEnabled)
		}
		if !gzipEnabled && outputPath != "-" && strings.HasSuffix(strings.ToLower(outputPath), ".gz") {
			gzipEnabled = true
		}

		store, err := filestore.New(cfg.Storage.Dir)
		if err != nil {
			return fmt.Errorf("open storage dir: %w", err)
		}
		service := backup.NewService(store)

		var (
			writer   = cmd.OutOrStdout()
			closeFns []func() error
		)

		if outputPath != "-" {
			if dir := filepath.Dir(outputPath); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create output dir: %w", err)
				}
			}
			file, openErr := os.Create(outputPath)
			if openErr != nil {
				return fmt.Errorf("create backup file: %w", openErr)
			}
			writer = file
			closeFns = append(closeFns, file.Close)
		}

		if gzipEnabled {
			gz := gzip.NewWriter(writer)
			writer = gz
			closeFns = append([]func() error{gz.Close}, closeFns...)
		}

		defer func() {
			for _, closer := range closeFns {
				if cerr := closer(); cerr != nil && err == nil {
					err = cerr
				}
			}
		}()

		counts, err := service.Export(writer, collections)
		if err != nil {
			return fmt.Errorf("export backup: %w", err)
		}

		for name, rows := range counts {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %d rows\n", name, rows)
		}
		if outputPath == "-" {
			cmd.PrintErrln("export complete: wrote to stdout")
		} else {
			cmd.PrintErrf("export complete: %s\n", outputPath)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("output", "o", "", "backup output path, use - for stdout")
	exportCmd.Flags().Bool("gzip", false, "compress the output with gzip")
	exportCmd.Flags().StringSlice("collections", nil, "export only the named collections")

	bindExportConfig()
}

func defaultExportFilename(gzipEnabled bool) string {
	ts := time.Now().UTC().Format("20060102-150405")
	filename := fmt.Sprintf("atelier-backup-%s.jsonl", ts)
	if gzipEnabled {
		filename += ".gz"
	}
	return filename
}

func bindExportConfig() {
	bindFlagToViper(exportOutputKey, exportCmd.Flags().Lookup("output"))
	bindFlagToViper(exportGzipKey, exportCmd.Flags().Lookup("gzip"))
	bindFlagToViper(exportCollectionsKey, exportCmd.Flags().Lookup("collections"))
}
