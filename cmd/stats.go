package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/dbquest/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show play history and per-mission accuracy",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()

		plays, err := s.Plays(ctx)
		if err != nil {
			return fmt.Errorf("query plays: %w", err)
		}
		if plays.Runs == 0 && plays.BestScore == 0 {
			fmt.Println("No runs recorded yet. Run `dbquest` to start one.")
			return nil
		}

		fmt.Println("Play Summary")
		fmt.Println(strings.Repeat("─", 48))
		fmt.Printf("Completed runs:  %d\n", plays.Runs)
		fmt.Printf("Best score:      %d XP\n", plays.BestScore)
		if !plays.LastPlayed.IsZero() {
			fmt.Printf("Last played:     %s\n", plays.LastPlayed.Local().Format("2006-01-02 15:04"))
		}

		stages, err := s.Stages(ctx)
		if err != nil {
			return fmt.Errorf("query stages: %w", err)
		}
		if len(stages) > 0 {
			fmt.Println()
			fmt.Println("Mission Accuracy")
			fmt.Println(strings.Repeat("─", 48))
			fmt.Printf("%-14s  %6s  %8s  %8s\n", "Mission", "Plays", "Correct", "Rate")
			fmt.Println(strings.Repeat("─", 48))
			for _, st := range stages {
				rate := "-"
				if st.TotalItems > 0 {
					rate = fmt.Sprintf("%.0f%%", 100*float64(st.CorrectItems)/float64(st.TotalItems))
				}
				fmt.Printf("%-14s  %6d  %3d/%-4d  %8s\n",
					st.Stage, st.Completions, st.CorrectItems, st.TotalItems, rate)
			}
		}

		return nil
	},
}
