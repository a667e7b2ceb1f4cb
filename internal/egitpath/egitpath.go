// Package egitpath centralizes the names and layout of the files and
// directories egit keeps under a repository's .egit directory.
package egitpath

// DotEgitPath is the name of the directory holding all of egit's
// repository state, relative to the working tree root.
const DotEgitPath = ".egit"

// ObjectsPath is the directory holding loose objects, relative to DotEgitPath.
const ObjectsPath = "objects"

// RefsPath is the directory holding references, relative to DotEgitPath.
const RefsPath = "refs"

// RefsHeadsPath is the directory holding branch refs, relative to DotEgitPath.
const RefsHeadsPath = "refs/heads"

// RefsTagsPath is the directory holding tag refs, relative to DotEgitPath.
const RefsTagsPath = "refs/tags"

// HeadPath is the name of the HEAD ref file, relative to DotEgitPath.
const HeadPath = "HEAD"

// MergeHeadPath is the name of the MERGE_HEAD ref file, relative to DotEgitPath.
const MergeHeadPath = "MERGE_HEAD"

// ConfigPath is the name of the repository-local config file, relative to DotEgitPath.
const ConfigPath = "config"

// DefaultIgnoreFile is the default name of the ignore file, relative to the
// working tree root.
const DefaultIgnoreFile = ".egitignore"

// DefaultBranch is the branch HEAD points to right after Init when no
// default branch is configured.
const DefaultBranch = "master"
