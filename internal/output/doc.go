// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output persists diff documents and the aggregate index, and renders
// discovered entries in text, json, and yaml forms.
package output
