package main

import (
	"io"

	"github.com/spf13/cobra"
)

func newCheckoutCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkout NAME",
		Short: "switch the working directory and HEAD to a branch, tag, or OID",
		Args:  cobra.ExactArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return checkoutCmd(cmd.OutOrStdout(), cfg, args[0])
	}

	return cmd
}

func checkoutCmd(_ io.Writer, cfg *globalFlags, name string) error {
	repo, err := loadRepository(cfg)
	if err != nil {
		return err
	}
	defer repo.Close() //nolint:errcheck

	return repo.Checkout(name)
}
