// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package discover enumerates module directories under a root and produces
// the deterministically ordered entry sequence the differ walks.
package discover
