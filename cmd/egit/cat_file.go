package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/augustgit/egit/objects"
)

func newCatFileCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cat-file OID",
		Short: "print the contents or type of a stored object",
		Args:  cobra.ExactArgs(1),
	}

	pretty := cmd.Flags().BoolP("print", "p", false, "pretty-print the object's payload")
	showType := cmd.Flags().BoolP("type", "t", false, "print the object's type instead of its payload")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return catFileCmd(cmd.OutOrStdout(), cfg, args[0], *pretty, *showType)
	}

	return cmd
}

func catFileCmd(out io.Writer, cfg *globalFlags, oidStr string, pretty, showType bool) error {
	repo, err := loadRepository(cfg)
	if err != nil {
		return err
	}
	defer repo.Close() //nolint:errcheck

	id, err := objects.NewOidFromHex(oidStr)
	if err != nil {
		return err
	}
	o, err := repo.CatFile(id)
	if err != nil {
		return err
	}

	if showType {
		fmt.Fprintln(out, o.Type())
		return nil
	}
	_, err = out.Write(o.Bytes())
	if err != nil {
		return err
	}
	if pretty && len(o.Bytes()) > 0 && o.Bytes()[len(o.Bytes())-1] != '\n' {
		fmt.Fprintln(out)
	}
	return nil
}
