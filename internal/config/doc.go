// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config loads the optional moddiff.yaml configuration file and
// exposes typed, namespace-aware getters over its dotted key paths.
package config
