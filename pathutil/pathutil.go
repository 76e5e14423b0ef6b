// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pathutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Separator is the path separator used for both joining and boundary checks.
const Separator = string(filepath.Separator)

// ErrEmptyPath is returned when an empty directory argument is canonicalized.
var ErrEmptyPath = errors.New("path is empty")

// Canonicalize turns a user-supplied path into a canonical absolute path.
// Relative paths are resolved against the current working directory.
func Canonicalize(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}

	if strings.HasPrefix(path, Separator) {
		return CanonicalizeFrom("", path)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	return CanonicalizeFrom(cwd, path)
}

// CanonicalizeFrom canonicalizes path, using cwd as the base for relative paths.
// cwd is ignored when path is already absolute.
func CanonicalizeFrom(cwd, path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}

	full := path
	if !strings.HasPrefix(path, Separator) {
		full = cwd + Separator + path
	}

	resolved, err := filepath.EvalSymlinks(full)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	// EvalSymlinks keeps the result relative when cwd itself was relative.
	resolved, err = filepath.Abs(resolved)
	if err != nil {
		return "", fmt.Errorf("failed to make %s absolute: %w", path, err)
	}

	return resolved, nil
}

// IsWithin reports whether candidate equals target or lies beneath it.
// Both arguments must already be canonical. A literal prefix is not enough:
// "/foo" does not contain "/foobar".
func IsWithin(target, candidate string) bool {
	if !strings.HasPrefix(candidate, target) {
		return false
	}

	// The root is the only canonical path that ends in a separator.
	if target == Separator {
		return true
	}

	return len(candidate) == len(target) || candidate[len(target)] == filepath.Separator
}
