// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package executor

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// StdinSource supplies the standard input for a child process.
// The built-in sources are StdinString, StdinPath and StdinFrom.
type StdinSource interface {
	fmt.Stringer

	// open returns the reader to pipe to the child and an optional
	// close function to run once the child has finished.
	open(fs afero.Fs) (io.Reader, func() error, error)
}

// StdinString feeds a literal string to the child.
type StdinString string

// String implements fmt.Stringer.
func (s StdinString) String() string {
	return strconv.Quote(string(s))
}

func (s StdinString) open(afero.Fs) (io.Reader, func() error, error) {
	return strings.NewReader(string(s)), nil, nil
}

// StdinPath feeds the contents of a file to the child. The file is
// opened when the command runs, so successive runs each read it from
// the beginning.
type StdinPath string

// String implements fmt.Stringer.
func (s StdinPath) String() string {
	return string(s)
}

func (s StdinPath) open(fs afero.Fs) (io.Reader, func() error, error) {
	f, err := fs.Open(string(s))
	if err != nil {
		return nil, nil, err
	}

	return f, f.Close, nil
}

// StdinFrom feeds an arbitrary reader to the child. The caller owns
// the reader's position and lifetime.
func StdinFrom(r io.Reader) StdinSource {
	return readerSource{r: r}
}

type readerSource struct {
	r io.Reader
}

// String implements fmt.Stringer.
func (readerSource) String() string {
	return "[reader]"
}

func (s readerSource) open(afero.Fs) (io.Reader, func() error, error) {
	return s.r, nil, nil
}
