// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It checks that the server answers, then alternates between the sign-in
// flow and the todo board until the user quits.
package client
