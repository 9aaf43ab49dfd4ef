package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/dangdinh87/gym-tracker/internal/localstore"
	"github.com/dangdinh87/gym-tracker/internal/portability"
)

var (
	exportFormat string
	exportOut    string
	importIn     string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the workout log (json, csv or xlsx)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(exportOut) == "" {
			return fmt.Errorf("--out is required")
		}
		return withDB(func(db *gorm.DB) error {
			workouts, err := localstore.NewWorkoutsStore(db).GetByUserID(context.Background(), localUser)
			if err != nil {
				return err
			}
			switch strings.ToLower(strings.TrimSpace(exportFormat)) {
			case "json":
				data, err := portability.ExportJSON(workouts, time.Now())
				if err != nil {
					return fmt.Errorf("build export json: %w", err)
				}
				if err := os.WriteFile(exportOut, data, 0o644); err != nil {
					return fmt.Errorf("write export file: %w", err)
				}
			case "csv":
				f, err := os.Create(exportOut)
				if err != nil {
					return fmt.Errorf("create export csv: %w", err)
				}
				defer f.Close()
				if err := portability.ExportCSV(f, workouts); err != nil {
					return fmt.Errorf("write export csv: %w", err)
				}
			case "xlsx":
				file, err := portability.ExportXLSX(workouts)
				if err != nil {
					return fmt.Errorf("build export workbook: %w", err)
				}
				if err := file.SaveAs(exportOut); err != nil {
					return fmt.Errorf("write export workbook: %w", err)
				}
			default:
				return fmt.Errorf("unsupported format %q (expected json, csv or xlsx)", exportFormat)
			}
			fmt.Printf("Exported %d workouts to %s\n", len(workouts), exportOut)
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import workouts from a json archive",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(importIn) == "" {
			return fmt.Errorf("--in is required")
		}
		data, err := os.ReadFile(importIn)
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}
		result, err := portability.ImportJSON(data, localUser)
		if err != nil {
			return err
		}
		return withDB(func(db *gorm.DB) error {
			store := localstore.NewWorkoutsStore(db)
			ctx := context.Background()
			for i := range result.Workouts {
				if _, err := store.Create(ctx, &result.Workouts[i]); err != nil {
					return fmt.Errorf("store imported workout %q: %w", result.Workouts[i].Name, err)
				}
			}
			fmt.Printf("Imported %d workouts, skipped %d invalid\n", len(result.Workouts), result.Skipped)
			return nil
		})
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Export format: json, csv or xlsx")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file path")
	importCmd.Flags().StringVar(&importIn, "in", "", "Input file path")
	rootCmd.AddCommand(exportCmd, importCmd)
}
