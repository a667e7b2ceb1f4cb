package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newHashObjectCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash-object FILE",
		Short: "compute the object ID of a file, optionally writing it to the store",
		Args:  cobra.ExactArgs(1),
	}

	write := cmd.Flags().BoolP("write", "w", false, "write the object into the store")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return hashObjectCmd(cmd.OutOrStdout(), cfg, args[0], *write)
	}

	return cmd
}

func hashObjectCmd(out io.Writer, cfg *globalFlags, path string, write bool) error {
	repo, err := loadRepository(cfg)
	if err != nil {
		return err
	}
	defer repo.Close() //nolint:errcheck

	id, err := repo.HashFile(path, write)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, id.String())
	return nil
}
