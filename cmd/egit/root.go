package main

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/augustgit/egit/internal/pathutil"
)

// globalFlags holds the flags and shared dependencies every subcommand
// needs: the real filesystem egit operates on and the -C working
// directory override.
type globalFlags struct {
	fs afero.Fs
	c  *pathutil.PathValue
}

func newRootCmd() *cobra.Command {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	cmd := &cobra.Command{
		Use:           "egit",
		Short:         "a minimal content-addressed version control system",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cfg := &globalFlags{
		fs: afero.NewOsFs(),
		c:  pathutil.NewDirPathFlagWithDefault(cwd).(*pathutil.PathValue),
	}
	cmd.PersistentFlags().VarP(cfg.c, "C", "C", "Run as if egit was started in the provided path instead of the current working directory.")

	cmd.AddCommand(newInitCmd(cfg))
	cmd.AddCommand(newHashObjectCmd(cfg))
	cmd.AddCommand(newCatFileCmd(cfg))
	cmd.AddCommand(newWriteTreeCmd(cfg))
	cmd.AddCommand(newReadTreeCmd(cfg))
	cmd.AddCommand(newCommitCmd(cfg))
	cmd.AddCommand(newLogCmd(cfg))
	cmd.AddCommand(newCheckoutCmd(cfg))
	cmd.AddCommand(newBranchCmd(cfg))
	cmd.AddCommand(newTagCmd(cfg))
	cmd.AddCommand(newStatusCmd(cfg))
	cmd.AddCommand(newShowCmd(cfg))
	cmd.AddCommand(newDiffCmd(cfg))
	cmd.AddCommand(newResetCmd(cfg))
	cmd.AddCommand(newMergeCmd(cfg))
	cmd.AddCommand(newMergeBaseCmd(cfg))
	cmd.AddCommand(newShowRefCmd(cfg))

	return cmd
}
