// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package viewer provides an interactive terminal browser over previously
// generated diff documents.
package viewer
