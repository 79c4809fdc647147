// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker routes OS termination signals to interested
// parties. A broker channel can be handed to an executor so signals
// are forwarded to a supervised child, and to Watch, which cancels a
// context when a signal of the same type arrives twice.
package signalbroker
