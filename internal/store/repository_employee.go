// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/employee-registry/internal/logger"
	"github.com/MKhiriev/employee-registry/models"
)

type memoryEmployeeRepository struct {
	mu sync.RWMutex

	employees map[string]models.Employee
	// order keeps IDs in insertion order so GetAll snapshots are stable.
	order []string

	idGenerator IDGenerator

	logger *logger.Logger
}

// NewMemoryEmployeeRepository returns an [EmployeeStorage] that keeps records
// in process memory for the lifetime of the process. A single RWMutex guards
// the map and the order index, so all methods are safe for concurrent use.
func NewMemoryEmployeeRepository(idGenerator IDGenerator, logger *logger.Logger) EmployeeStorage {
	logger.Debug().Msg("EmployeeRepository created")
	return &memoryEmployeeRepository{
		employees:   make(map[string]models.Employee),
		idGenerator: idGenerator,
		logger:      logger,
	}
}

func (r *memoryEmployeeRepository) Add(ctx context.Context, e models.Employee) (models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		e.ID = r.idGenerator.Generate()
	}

	if _, ok := r.employees[e.ID]; ok {
		return models.Employee{}, alreadyExists(e.ID)
	}

	stored := e.Clone()
	r.employees[stored.ID] = stored
	r.order = append(r.order, stored.ID)

	return stored.Clone(), nil
}

func (r *memoryEmployeeRepository) GetAll(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	employees := make([]models.Employee, 0, len(r.order))
	for _, id := range r.order {
		e := r.employees[id]
		if filter.Matches(e) {
			employees = append(employees, e.Clone())
		}
	}

	return employees, nil
}

func (r *memoryEmployeeRepository) Update(ctx context.Context, id string, u models.EmployeeUpdate) (models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.employees[id]
	if !ok {
		return models.Employee{}, notFound(id)
	}

	// existing shares its Attributes map with the stored value; Apply mutates
	// it in place, which is the intended merge.
	existing.Apply(u)
	r.employees[id] = existing

	return existing.Clone(), nil
}

func (r *memoryEmployeeRepository) Delete(ctx context.Context, id string) (models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.employees[id]
	if !ok {
		return models.Employee{}, notFound(id)
	}

	delete(r.employees, id)
	r.order = slices.DeleteFunc(r.order, func(storedID string) bool {
		return storedID == id
	})

	return existing, nil
}

func (r *memoryEmployeeRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.employees)
}
