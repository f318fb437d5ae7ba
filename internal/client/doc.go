// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the viewer application runtime.
//
// It loads a sealed page, opens the key cache backend the page (or the
// configuration) asks for, and hands an unlock flow to the terminal UI.
package client
