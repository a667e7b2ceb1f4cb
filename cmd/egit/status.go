package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/augustgit/egit/diffmerge"
)

func newStatusCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "show the branch, merge state, and changed files",
		Args:  cobra.NoArgs,
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return statusCmd(cmd.OutOrStdout(), cfg)
	}

	return cmd
}

func statusCmd(out io.Writer, cfg *globalFlags) error {
	repo, err := loadRepository(cfg)
	if err != nil {
		return err
	}
	defer repo.Close() //nolint:errcheck

	s, err := repo.GetStatus()
	if err != nil {
		return err
	}

	if s.OnBranch {
		fmt.Fprintln(out, "On branch", s.Branch)
	} else {
		fmt.Fprintln(out, "HEAD detached at", s.HeadOid.String())
	}
	if s.MergeInProgress {
		fmt.Fprintln(out, "Merging with", s.MergeHeadOid.String())
	}

	for _, c := range s.Changes {
		verb := "modified:"
		switch c.Action {
		case diffmerge.ActionCreated:
			verb = "new file:"
		case diffmerge.ActionDeleted:
			verb = "deleted:"
		}
		fmt.Fprintf(out, "  %-10s %s\n", verb, c.Path)
	}
	return nil
}
