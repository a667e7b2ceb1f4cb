package pathutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
)

// PathValueType represents the kind of path a PathValue is constrained to.
type PathValueType int

const (
	// PathValueTypeFile represents a file.
	PathValueTypeFile PathValueType = iota
	// PathValueTypeDir represents a directory.
	PathValueTypeDir
	// PathValueTypeAny represents either a file or a directory.
	PathValueTypeAny
)

var (
	// ErrIsDirectory is returned when a path points to a directory but a
	// file was expected.
	ErrIsDirectory = errors.New("path is a directory")
	// ErrIsNotDirectory is returned when a path is expected to point to a
	// directory but doesn't.
	ErrIsNotDirectory = errors.New("path is not a directory")
	// ErrUnknownType is returned when an unknown PathValueType is used.
	ErrUnknownType = errors.New("type unknown")
)

// PathValue is a pflag.Value backing a path-typed CLI flag, such as
// egit's -C.
type PathValue struct {
	defaultValue  string
	userValue     string
	typ           PathValueType
	pathMustExist bool
	valueSet      bool
}

// NewDirPathFlagWithDefault returns a pflag.Value that must hold a valid
// path to a directory, defaulting to defaultPath.
func NewDirPathFlagWithDefault(defaultPath string) pflag.Value {
	return &PathValue{
		pathMustExist: true,
		typ:           PathValueTypeDir,
		defaultValue:  defaultPath,
	}
}

// NewFilePathFlagWithDefault returns a pflag.Value that must hold a valid
// path to a file, defaulting to defaultPath.
func NewFilePathFlagWithDefault(defaultPath string) pflag.Value {
	return &PathValue{
		pathMustExist: true,
		typ:           PathValueTypeFile,
		defaultValue:  defaultPath,
	}
}

var _ pflag.Value = (*PathValue)(nil)

// String returns the flag's current value.
func (v *PathValue) String() string {
	if v.valueSet {
		return v.userValue
	}
	return v.defaultValue
}

// Set parses and validates value, resolving it to an absolute path. A
// relative value is joined against the previously set value, matching
// how repeated -C flags compose.
func (v *PathValue) Set(value string) (err error) {
	if value == "" {
		return nil
	}

	if !filepath.IsAbs(value) {
		value = filepath.Join(v.userValue, value)
	}
	value, err = filepath.Abs(value)
	if err != nil {
		return fmt.Errorf("could not find absolute path: %w", err)
	}

	info, err := os.Stat(value)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("could not check path %s: %w", value, err)
	}

	if v.pathMustExist && errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("invalid path %s: %w", value, os.ErrNotExist)
	}

	if info != nil {
		switch v.typ {
		case PathValueTypeFile:
			if info.IsDir() {
				return fmt.Errorf("invalid path %s: %w", value, ErrIsDirectory)
			}
		case PathValueTypeDir:
			if !info.IsDir() {
				return fmt.Errorf("invalid path %s: %w", value, ErrIsNotDirectory)
			}
		case PathValueTypeAny:
		default:
			return fmt.Errorf("type %d: %w", v.typ, ErrUnknownType)
		}
	}

	v.valueSet = true
	v.userValue = value
	return nil
}

// Type returns the flag's type name, as pflag requires.
func (v *PathValue) Type() string {
	return "path"
}
