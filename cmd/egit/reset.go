package main

import (
	"io"

	"github.com/spf13/cobra"
)

func newResetCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset OID",
		Short: "move HEAD and the working directory to OID",
		Args:  cobra.ExactArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return resetCmd(cmd.OutOrStdout(), cfg, args[0])
	}

	return cmd
}

func resetCmd(_ io.Writer, cfg *globalFlags, name string) error {
	repo, err := loadRepository(cfg)
	if err != nil {
		return err
	}
	defer repo.Close() //nolint:errcheck

	id, err := repo.GetOid(name)
	if err != nil {
		return err
	}
	return repo.Reset(id)
}
