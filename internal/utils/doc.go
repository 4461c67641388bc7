// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the server and the
// client: identifier generation, JSON response writing and HTTP client
// construction.
package utils
