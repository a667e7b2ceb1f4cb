package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/augustgit/egit/backend"
)

func newBranchCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "branch [NAME]",
		Short: "list branches, or create NAME pointing at HEAD",
		Args:  cobra.MaximumNArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return listBranchesCmd(cmd.OutOrStdout(), cfg)
		}
		return createBranchCmd(cmd.OutOrStdout(), cfg, args[0])
	}

	return cmd
}

func listBranchesCmd(out io.Writer, cfg *globalFlags) error {
	repo, err := loadRepository(cfg)
	if err != nil {
		return err
	}
	defer repo.Close() //nolint:errcheck

	names, err := repo.ListBranches()
	if err != nil {
		return err
	}
	current, onBranch, err := repo.CurrentBranch()
	if err != nil {
		return err
	}

	for _, name := range names {
		marker := "  "
		if onBranch && name == current {
			marker = "* "
		}
		fmt.Fprintln(out, marker+name)
	}
	return nil
}

func createBranchCmd(_ io.Writer, cfg *globalFlags, name string) error {
	repo, err := loadRepository(cfg)
	if err != nil {
		return err
	}
	defer repo.Close() //nolint:errcheck

	head, err := repo.GetOid(backend.HeadRef)
	if err != nil {
		return err
	}
	return repo.Branch(name, head)
}
