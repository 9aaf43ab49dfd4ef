package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/dangdinh87/gym-tracker/internal/localstore"
	"github.com/dangdinh87/gym-tracker/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the built-in exercise and food catalogs into the local database",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *gorm.DB) error {
			ctx := context.Background()
			exercises := seed.Exercises()
			if err := localstore.NewExercisesStore(db).Seed(ctx, exercises); err != nil {
				return fmt.Errorf("seed exercises: %w", err)
			}
			foods := seed.Foods()
			if err := localstore.NewFoodsStore(db).Seed(ctx, foods); err != nil {
				return fmt.Errorf("seed foods: %w", err)
			}
			fmt.Printf("Seeded %d exercises and %d foods\n", len(exercises), len(foods))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
