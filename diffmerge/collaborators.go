package diffmerge

import (
	"bytes"
	"os"
	"os/exec"

	"golang.org/x/xerrors"

	"github.com/augustgit/egit/internal/errutil"
)

// ExecUnifiedDiff is the default UnifiedDiffFunc: it shells out to the
// system `diff --text --unified` utility. Both buffers are spilled to
// temporary files since diff(1) has no way to read two arbitrary byte
// streams from stdin at once.
func ExecUnifiedDiff(labelA string, a []byte, labelB string, b []byte) (out []byte, err error) {
	fileA, cleanupA, err := spillTemp("egit-diff-a-*", a)
	if err != nil {
		return nil, err
	}
	defer cleanupA()
	fileB, cleanupB, err := spillTemp("egit-diff-b-*", b)
	if err != nil {
		return nil, err
	}
	defer cleanupB()

	cmd := exec.Command("diff", "--text", "--unified", "--show-c-function",
		"--label", labelA, "--label", labelB, fileA, fileB)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	runErr := cmd.Run()
	if runErr != nil {
		// diff(1) exits 1 when the inputs differ; that is the expected,
		// non-error case for this collaborator.
		if exitErr, ok := runErr.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			return stdout.Bytes(), nil
		}
		return nil, xerrors.Errorf("diff %s %s: %w", labelA, labelB, runErr)
	}
	return stdout.Bytes(), nil
}

// ExecThreeWayMerge is the default ThreeWayMergeFunc: it shells out to the
// system `diff3 --text -m` utility. Exit code 0 means a clean merge, exit
// code 1 means conflict markers were embedded in the output; any other
// exit code is fatal.
func ExecThreeWayMerge(headLabel string, head []byte, otherLabel string, other []byte, baseLabel string, base []byte) (merged []byte, conflict bool, err error) {
	headFile, cleanupHead, err := spillTemp("egit-merge-head-*", head)
	if err != nil {
		return nil, false, err
	}
	defer cleanupHead()
	otherFile, cleanupOther, err := spillTemp("egit-merge-other-*", other)
	if err != nil {
		return nil, false, err
	}
	defer cleanupOther()
	baseFile, cleanupBase, err := spillTemp("egit-merge-base-*", base)
	if err != nil {
		return nil, false, err
	}
	defer cleanupBase()

	cmd := exec.Command("diff3", "--text", "-m",
		"-L", headLabel, "-L", baseLabel, "-L", otherLabel,
		headFile, baseFile, otherFile)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	runErr := cmd.Run()
	if runErr == nil {
		return stdout.Bytes(), false, nil
	}
	exitErr, ok := runErr.(*exec.ExitError)
	if ok && exitErr.ExitCode() == 1 {
		return stdout.Bytes(), true, nil
	}
	return nil, false, xerrors.Errorf("diff3 %s %s %s: %w", headLabel, baseLabel, otherLabel, runErr)
}

// spillTemp writes content to a fresh temporary file and returns its path
// and a cleanup func that removes it. diff/diff3 need a real path per
// side being compared, so each buffer gets its own temp file.
func spillTemp(pattern string, content []byte) (path string, cleanup func(), err error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", nil, xerrors.Errorf("could not create temp file: %w", err)
	}
	defer errutil.Close(f, &err)

	if _, err = f.Write(content); err != nil {
		os.Remove(f.Name()) //nolint:errcheck // best-effort cleanup on a write failure we're already reporting.
		return "", nil, xerrors.Errorf("could not write temp file: %w", err)
	}
	return f.Name(), func() { os.Remove(f.Name()) }, nil //nolint:errcheck // cleanup is best-effort.
}
