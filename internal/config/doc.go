// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the server.
//
// Configuration is assembled from multiple sources; for each field the first
// source that sets it wins:
//  1. Environment variables (a .env file is loaded into the environment first)
//  2. Command-line flags
//  3. JSON config file
//
// Unset optional fields receive defaults, then the result is validated.
// The entry point is [GetStructuredConfig].
package config
