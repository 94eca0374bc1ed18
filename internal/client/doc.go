// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the catalog command-line client.
//
// It parses a subcommand with its flags, calls the catalog API through an
// [adapter.CatalogClient] and prints the result to the configured writer.
package client
