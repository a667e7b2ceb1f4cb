package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newMergeCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge OID",
		Short: "merge OID into HEAD",
		Args:  cobra.ExactArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return mergeCmd(cmd.OutOrStdout(), cfg, args[0])
	}

	return cmd
}

func mergeCmd(out io.Writer, cfg *globalFlags, name string) error {
	repo, err := loadRepository(cfg)
	if err != nil {
		return err
	}
	defer repo.Close() //nolint:errcheck

	id, err := repo.GetOid(name)
	if err != nil {
		return err
	}
	res, err := repo.Merge(id)
	if err != nil {
		return err
	}

	switch {
	case res.FastForward:
		fmt.Fprintln(out, "Fast-forward")
	case len(res.Conflicts) > 0:
		fmt.Fprintln(out, "Automatic merge failed; fix conflicts and commit the result:")
		fmt.Fprintln(out, strings.Join(res.Conflicts, "\n"))
	default:
		fmt.Fprintln(out, "Merge made, ready to commit.")
	}
	return nil
}
