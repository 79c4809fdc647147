// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package check

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-getter/v2"
)

// ErrGetScenarioFile is returned when a scenario file cannot be fetched.
var ErrGetScenarioFile = errors.New("failed to get scenario file")

// fetchFile retrieves a scenario file using Hashicorp's go-getter, so
// plain paths, URLs and the other getter sources all work. The
// temporary download location is removed before returning.
func fetchFile(ctx context.Context, src string) ([]byte, error) {
	if src == "" {
		return nil, ErrGetScenarioFile
	}

	tmpDir, err := os.MkdirTemp("", "proctor-getter-*")
	if err != nil {
		return nil, errors.Join(ErrGetScenarioFile, err)
	}

	defer os.RemoveAll(tmpDir) //nolint:errcheck

	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Join(ErrGetScenarioFile, err)
	}

	client := getter.Client{
		DisableSymlinks: true,
	}

	dst := filepath.Join(tmpDir, "scenarios.yaml")

	req := &getter.Request{
		Src:     src,
		Dst:     dst,
		Pwd:     wd,
		GetMode: getter.ModeFile,
	}

	if _, err := client.Get(ctx, req); err != nil {
		return nil, errors.Join(ErrGetScenarioFile, err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		return nil, errors.Join(ErrGetScenarioFile, err)
	}

	return data, nil
}
