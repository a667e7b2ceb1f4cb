package main

import (
	"io"

	"github.com/spf13/cobra"
)

func newTagCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag NAME OID",
		Short: "create a tag named NAME pointing at OID",
		Args:  cobra.ExactArgs(2),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return tagCmd(cmd.OutOrStdout(), cfg, args[0], args[1])
	}

	return cmd
}

func tagCmd(_ io.Writer, cfg *globalFlags, name, oidStr string) error {
	repo, err := loadRepository(cfg)
	if err != nil {
		return err
	}
	defer repo.Close() //nolint:errcheck

	id, err := repo.GetOid(oidStr)
	if err != nil {
		return err
	}
	return repo.Tag(name, id)
}
