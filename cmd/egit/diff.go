package main

import (
	"io"

	"github.com/spf13/cobra"
)

func newDiffCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "diff the working directory against HEAD",
		Args:  cobra.NoArgs,
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return diffCmd(cmd.OutOrStdout(), cfg)
	}

	return cmd
}

func diffCmd(out io.Writer, cfg *globalFlags) error {
	repo, err := loadRepository(cfg)
	if err != nil {
		return err
	}
	defer repo.Close() //nolint:errcheck

	out2, err := repo.DiffHead()
	if err != nil {
		return err
	}
	_, err = out.Write(out2)
	return err
}
