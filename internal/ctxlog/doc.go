// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-carried structured logger built on
// the slog package. The log level is read from an environment variable
// derived from the executable name: for an executable named "proctor"
// the variable is "PROCTOR_LOG_LEVEL", set to "DEBUG", "INFO", "WARN"
// or "ERROR". Anything else defaults to "WARN".
package ctxlog
