package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/augustgit/egit/backend"
)

func newShowCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [OID]",
		Short: "print a commit and its diff against its first parent (default HEAD)",
		Args:  cobra.MaximumNArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		name := backend.HeadRef
		if len(args) > 0 {
			name = args[0]
		}
		return showCmd(cmd.OutOrStdout(), cfg, name)
	}

	return cmd
}

func showCmd(out io.Writer, cfg *globalFlags, name string) error {
	repo, err := loadRepository(cfg)
	if err != nil {
		return err
	}
	defer repo.Close() //nolint:errcheck

	id, err := repo.GetOid(name)
	if err != nil {
		return err
	}
	c, err := repo.GetCommit(id)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "commit", id.String())
	fmt.Fprintln(out)
	fmt.Fprint(out, c.Message)
	fmt.Fprintln(out)

	diff, err := repo.DiffCommit(id)
	if err != nil {
		return err
	}
	_, err = out.Write(diff)
	return err
}
