package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	egit "github.com/augustgit/egit"
)

func newInitCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "create an empty repository",
		Args:  cobra.NoArgs,
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return initCmd(cmd.OutOrStdout(), cfg)
	}

	return cmd
}

func initCmd(out io.Writer, cfg *globalFlags) error {
	repo, err := egit.Init(cfg.fs, cfg.c.String())
	if err != nil {
		return err
	}
	defer repo.Close() //nolint:errcheck // best-effort close on a command that already succeeded

	fmt.Fprintln(out, "Initialized empty egit repository in", repo.DotEgitPath())
	return nil
}
