// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// UUIDGenerator produces random (version 4) UUID strings. It satisfies the
// store's identifier generator contract.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new 128-bit random identifier in canonical textual form.
func (g *UUIDGenerator) Generate() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return uuid.Must(uuid.NewV7()).String()
	}

	return id.String()
}
