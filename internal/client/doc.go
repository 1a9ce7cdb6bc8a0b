// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows and the client services into a single
// process lifecycle: the login flow runs until an account is authenticated,
// then the main notes loop takes over until quit or logout.
package client
