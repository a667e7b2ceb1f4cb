package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/augustgit/egit/objects"
)

func newReadTreeCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read-tree OID",
		Short: "materialize a tree object into the working directory",
		Args:  cobra.ExactArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return readTreeCmd(cmd.OutOrStdout(), cfg, args[0])
	}

	return cmd
}

func readTreeCmd(_ io.Writer, cfg *globalFlags, oidStr string) error {
	repo, err := loadRepository(cfg)
	if err != nil {
		return err
	}
	defer repo.Close() //nolint:errcheck

	id, err := objects.NewOidFromHex(oidStr)
	if err != nil {
		return err
	}
	return repo.ReadTree(id)
}
