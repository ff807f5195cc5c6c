package cmd

import (
	"github.com/spf13/cobra"
)

// playCmd is an explicit alias for the bare root invocation.
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the quest",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}
