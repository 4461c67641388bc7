// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/employee-registry/internal/logger"
	"github.com/MKhiriev/employee-registry/internal/metrics"
	"github.com/MKhiriev/employee-registry/internal/store"
	"github.com/MKhiriev/employee-registry/models"
)

type employeeService struct {
	employeeRepository store.EmployeeStorage

	logger *logger.Logger
}

func NewEmployeeService(employeeRepository store.EmployeeStorage, logger *logger.Logger) EmployeeService {
	return &employeeService{
		employeeRepository: employeeRepository,
		logger:             logger,
	}
}

func (s *employeeService) List(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, error) {
	employees, err := s.employeeRepository.GetAll(ctx, filter)
	s.observe("list", err)

	return employees, err
}

func (s *employeeService) Create(ctx context.Context, employee models.Employee) (models.Employee, error) {
	log := logger.FromContext(ctx)

	created, err := s.employeeRepository.Add(ctx, employee)
	s.observe("create", err)
	if err != nil {
		log.Err(err).Str("id", employee.ID).Msg("employee was not created")
		return models.Employee{}, err
	}

	log.Debug().Str("id", created.ID).Msg("employee created")
	return created, nil
}

func (s *employeeService) Update(ctx context.Context, id string, update models.EmployeeUpdate) (models.Employee, error) {
	log := logger.FromContext(ctx)

	updated, err := s.employeeRepository.Update(ctx, id, update)
	s.observe("update", err)
	if err != nil {
		log.Err(err).Str("id", id).Msg("employee was not updated")
		return models.Employee{}, err
	}

	log.Debug().Str("id", id).Msg("employee updated")
	return updated, nil
}

func (s *employeeService) Delete(ctx context.Context, id string) (models.Employee, error) {
	log := logger.FromContext(ctx)

	deleted, err := s.employeeRepository.Delete(ctx, id)
	s.observe("delete", err)
	if err != nil {
		log.Err(err).Str("id", id).Msg("employee was not deleted")
		return models.Employee{}, err
	}

	log.Debug().Str("id", id).Msg("employee deleted")
	return deleted, nil
}

func (s *employeeService) observe(operation string, err error) {
	metrics.EmployeeOperations.WithLabelValues(operation, resultLabel(err)).Inc()
	metrics.EmployeesStored.Set(float64(s.employeeRepository.Len()))
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, store.ErrEmployeeAlreadyExists):
		return metrics.ResultAlreadyExists
	case errors.Is(err, store.ErrEmployeeNotFound):
		return metrics.ResultNotFound
	default:
		return metrics.ResultError
	}
}
