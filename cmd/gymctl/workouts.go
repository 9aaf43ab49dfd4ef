package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/dangdinh87/gym-tracker/internal/localstore"
	"github.com/dangdinh87/gym-tracker/internal/stats"
)

// localUser scopes all CLI records. The local database is single-user.
var localUser = uuid.Nil

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged workouts, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *gorm.DB) error {
			workouts, err := localstore.NewWorkoutsStore(db).GetByUserID(context.Background(), localUser)
			if err != nil {
				return err
			}
			if len(workouts) == 0 {
				fmt.Println("No workouts logged yet")
				return nil
			}
			for i := range workouts {
				summary := stats.SummarizeWorkout(&workouts[i])
				fmt.Printf("%s  %-30s  %d sets  %.1f volume  [%s]\n",
					workouts[i].Date, workouts[i].Name, summary.TotalSets, summary.TotalVolume, workouts[i].ID)
			}
			return nil
		})
	},
}

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show training stats over the whole log",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *gorm.DB) error {
			workouts, err := localstore.NewWorkoutsStore(db).GetByUserID(context.Background(), localUser)
			if err != nil {
				return err
			}
			summary := stats.SummarizeCollection(workouts)
			now := time.Now()
			fmt.Printf("Workouts:        %d (%d completed, %.0f%%)\n",
				summary.TotalWorkouts, summary.CompletedWorkouts, summary.CompletionRate*100)
			fmt.Printf("Total volume:    %.1f\n", summary.TotalVolume)
			fmt.Printf("This week:       %d\n", stats.WindowedCount(workouts, now, 7))
			fmt.Printf("This month:      %d\n", stats.WindowedCount(workouts, now, 30))
			records := stats.PersonalRecords(workouts)
			stats.SortRecordsByDateDesc(records)
			if len(records) > 0 {
				fmt.Println("Personal records:")
				for _, rec := range records {
					fmt.Printf("  %s  %s  %.1f x %d\n", rec.Date, rec.ExerciseName, rec.Weight, rec.Reps)
				}
			}
			return nil
		})
	},
}

var (
	exSearch    string
	exCategory  string
	exLevel     string
	exEquipment string
	exPage      int
	exLimit     int
)

var exercisesCmd = &cobra.Command{
	Use:   "exercises",
	Short: "Browse the exercise catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *gorm.DB) error {
			catalog, err := localstore.NewExercisesStore(db).List(context.Background())
			if err != nil {
				return err
			}
			page := stats.FilterPage(catalog, stats.ExerciseFilter{
				SearchTerm: exSearch,
				Category:   exCategory,
				Level:      exLevel,
				Equipment:  exEquipment,
			}, exPage, exLimit)
			for i := range page.Items {
				ex := &page.Items[i]
				fmt.Printf("%-25s  %-12s  %-12s  %v\n", ex.ID, ex.Category, ex.Level, ex.PrimaryMuscles)
			}
			fmt.Printf("Page %d of %d (%d exercises)\n", page.Page, page.TotalPages, page.TotalCount)
			return nil
		})
	},
}

func init() {
	exercisesCmd.Flags().StringVar(&exSearch, "search", "", "Filter by name or muscle group")
	exercisesCmd.Flags().StringVar(&exCategory, "category", stats.FilterAll, "Filter by category")
	exercisesCmd.Flags().StringVar(&exLevel, "level", stats.FilterAll, "Filter by difficulty level")
	exercisesCmd.Flags().StringVar(&exEquipment, "equipment", stats.FilterAll, "Filter by equipment")
	exercisesCmd.Flags().IntVar(&exPage, "page", 1, "Page number")
	exercisesCmd.Flags().IntVar(&exLimit, "limit", 12, "Page size")
	rootCmd.AddCommand(listCmd, progressCmd, exercisesCmd)
}
