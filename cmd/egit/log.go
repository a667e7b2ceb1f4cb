package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/augustgit/egit/backend"
)

func newLogCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log [OID]",
		Short: "print the commit history reachable from OID (default HEAD)",
		Args:  cobra.MaximumNArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		start := backend.HeadRef
		if len(args) > 0 {
			start = args[0]
		}
		return logCmd(cmd.OutOrStdout(), cfg, start)
	}

	return cmd
}

func logCmd(out io.Writer, cfg *globalFlags, start string) error {
	repo, err := loadRepository(cfg)
	if err != nil {
		return err
	}
	defer repo.Close() //nolint:errcheck

	id, err := repo.GetOid(start)
	if err != nil {
		return err
	}
	entries, err := repo.Log(id)
	if err != nil {
		return err
	}

	for _, e := range entries {
		line := "commit " + e.Oid.String()
		if len(e.Refs) > 0 {
			line += " (" + strings.Join(e.Refs, ", ") + ")"
		}
		fmt.Fprintln(out, line)
		fmt.Fprintln(out)
		for _, msgLine := range strings.Split(strings.TrimRight(e.Commit.Message, "\n"), "\n") {
			fmt.Fprintln(out, "    "+msgLine)
		}
		fmt.Fprintln(out)
	}
	return nil
}
