// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the signup application runtime.
//
// It wires the local store, the form controller and the terminal UI into a
// single process lifecycle.
package client
