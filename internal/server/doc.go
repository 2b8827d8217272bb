// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the node's transports and background loops.
//
// It starts the HTTP and gRPC servers, the event hub, the storage probe and
// the lifecycle workers, and shuts all of them down on SIGINT, SIGTERM or
// SIGQUIT.
package server
