package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/dhamidi/sol/workspace"
)

func newLSPCmd() *cobra.Command {
	var poll time.Duration
	var jobs int

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := workspace.NewLSPServer(version, poll, workspace.WithJobs(jobs))
			return server.RunStdio()
		},
	}

	cmd.Flags().DurationVar(&poll, "poll", 0, "also poll the workspace for changes at this interval")
	cmd.Flags().IntVar(&jobs, "jobs", 0, "files to parse in parallel (0 means one per CPU)")

	return cmd
}
