package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/dangdinh87/gym-tracker/internal/localstore"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "gymctl",
	Short: "gymctl tracks workouts from your terminal",
	Long:  "gymctl is a local-first workout log with an exercise catalog, templates, progress stats and archive import/export.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "gymtracker.db", "Path to SQLite database")
}

func withDB(run func(db *gorm.DB) error) error {
	db, err := localstore.NewDB(dbPath)
	if err != nil {
		return err
	}
	return run(db)
}
