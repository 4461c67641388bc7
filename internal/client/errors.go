// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrNoCommand      = errors.New("no command given, expected one of: list, create, update, delete, version")
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingID      = errors.New("-id is required")

	errInvalidAttribute = errors.New("attribute must be in the form key=value")
)
