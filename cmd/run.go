package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/dbquest/internal/app"
	"github.com/abhisek/dbquest/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the play log and launches the TUI. A broken database is
// not fatal: the quest still runs, it just leaves no history behind.
func runApp(cmd *cobra.Command) error {
	opts := app.Options{}

	dbPath, err := resolveDBPath(cmd)
	if err == nil {
		var st *store.Store
		st, err = store.Open(dbPath)
		if err == nil {
			defer st.Close()
			opts.Events = st.Events()
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Play log unavailable:", err)
		fmt.Fprintln(os.Stderr, "Progress will not be recorded.")
	}

	return app.Run(opts)
}
