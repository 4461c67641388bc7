// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// errInvalidJSON is reported with 400 Bad Request when a request body cannot
// be decoded as an employee object.
var errInvalidJSON = errors.New("invalid JSON was passed")
