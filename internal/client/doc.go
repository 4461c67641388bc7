// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the employee
// registry.
//
// It parses a subcommand (list, create, update, delete, version) with its own
// flags, calls the server through an [adapter.EmployeeAdapter], and renders
// the result: lists as a table, single records as indented JSON.
package client
