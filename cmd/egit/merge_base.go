package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/augustgit/egit/historygraph"
)

func newMergeBaseCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge-base OID1 OID2",
		Short: "print the best common ancestor of two commits",
		Args:  cobra.ExactArgs(2),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return mergeBaseCmd(cmd.OutOrStdout(), cfg, args[0], args[1])
	}

	return cmd
}

func mergeBaseCmd(out io.Writer, cfg *globalFlags, nameA, nameB string) error {
	repo, err := loadRepository(cfg)
	if err != nil {
		return err
	}
	defer repo.Close() //nolint:errcheck

	a, err := repo.GetOid(nameA)
	if err != nil {
		return err
	}
	b, err := repo.GetOid(nameB)
	if err != nil {
		return err
	}
	base, err := repo.MergeBaseFor(a, b)
	if err != nil {
		return err
	}
	if base.IsZero() {
		return historygraph.ErrNoCommonAncestor
	}
	fmt.Fprintln(out, base.String())
	return nil
}
