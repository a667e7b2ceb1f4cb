package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newCommitCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "record a new commit from the current working directory",
		Args:  cobra.NoArgs,
	}

	message := cmd.Flags().StringP("message", "m", "", "commit message")
	_ = cmd.MarkFlagRequired("message")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return commitCmd(cmd.OutOrStdout(), cfg, *message)
	}

	return cmd
}

func commitCmd(out io.Writer, cfg *globalFlags, message string) error {
	repo, err := loadRepository(cfg)
	if err != nil {
		return err
	}
	defer repo.Close() //nolint:errcheck

	id, err := repo.Commit(message)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, id.String())
	return nil
}
