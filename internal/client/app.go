// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/MKhiriev/employee-registry/internal/adapter"
	"github.com/MKhiriev/employee-registry/internal/logger"
	"github.com/MKhiriev/employee-registry/models"
)

const (
	cmdList    = "list"
	cmdCreate  = "create"
	cmdUpdate  = "update"
	cmdDelete  = "delete"
	cmdVersion = "version"
)

type App struct {
	adapter   adapter.EmployeeAdapter
	buildInfo models.AppBuildInfo
	out       io.Writer

	logger *logger.Logger
}

// NewApp creates a client that talks to the server through employeeAdapter
// and writes command output to out.
func NewApp(employeeAdapter adapter.EmployeeAdapter, buildInfo models.AppBuildInfo, out io.Writer, logger *logger.Logger) *App {
	return &App{
		adapter:   employeeAdapter,
		buildInfo: buildInfo,
		out:       out,
		logger:    logger,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	command, commandArgs := args[0], args[1:]
	a.logger.Debug().Str("command", command).Strs("args", commandArgs).Msg("running command")

	switch command {
	case cmdList:
		return a.list(ctx, commandArgs)
	case cmdCreate:
		return a.create(ctx, commandArgs)
	case cmdUpdate:
		return a.update(ctx, commandArgs)
	case cmdDelete:
		return a.delete(ctx, commandArgs)
	case cmdVersion:
		return renderBuildInfo(a.out, a.buildInfo)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

func (a *App) list(ctx context.Context, args []string) error {
	fs := newFlagSet(cmdList)
	department := fs.String("department", "", "Only list employees of this department")
	if err := parseFlags(fs, args, nil); err != nil {
		return err
	}

	var filter models.EmployeeFilter
	if *department != "" {
		filter.Department = department
	}

	employees, err := a.adapter.List(ctx, filter)
	if err != nil {
		return fmt.Errorf("error listing employees: %w", err)
	}

	return renderEmployees(a.out, employees)
}

func (a *App) create(ctx context.Context, args []string) error {
	fs := newFlagSet(cmdCreate)
	id := fs.String("id", "", "Employee ID, generated by the server when empty")
	name := fs.String("name", "", "Employee name")
	department := fs.String("department", "", "Employee department")
	var attrs attributes
	fs.Var(&attrs, "attr", "Additional attribute key=value, may be repeated")
	if err := parseFlags(fs, args, &attrs); err != nil {
		return err
	}

	employee := models.Employee{
		ID:         *id,
		Name:       *name,
		Department: *department,
	}
	if len(attrs.values) > 0 {
		employee.Attributes = attrs.values
	}

	created, err := a.adapter.Create(ctx, employee)
	if err != nil {
		return fmt.Errorf("error creating employee: %w", err)
	}

	return renderEmployee(a.out, created)
}

func (a *App) update(ctx context.Context, args []string) error {
	fs := newFlagSet(cmdUpdate)
	id := fs.String("id", "", "ID of the employee to update")
	name := fs.String("name", "", "New employee name")
	department := fs.String("department", "", "New employee department")
	var attrs attributes
	fs.Var(&attrs, "attr", "Attribute to set key=value, may be repeated")
	if err := parseFlags(fs, args, &attrs); err != nil {
		return err
	}
	if *id == "" {
		return ErrMissingID
	}

	var update models.EmployeeUpdate
	// only flags given on the command line are sent, so "-name=" clears the name
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			update.Name = name
		case "department":
			update.Department = department
		}
	})
	if len(attrs.values) > 0 {
		update.Attributes = attrs.values
	}

	updated, err := a.adapter.Update(ctx, *id, update)
	if err != nil {
		return fmt.Errorf("error updating employee: %w", err)
	}

	return renderEmployee(a.out, updated)
}

func (a *App) delete(ctx context.Context, args []string) error {
	fs := newFlagSet(cmdDelete)
	id := fs.String("id", "", "ID of the employee to delete")
	if err := parseFlags(fs, args, nil); err != nil {
		return err
	}
	if *id == "" {
		return ErrMissingID
	}

	deleted, err := a.adapter.Delete(ctx, *id)
	if err != nil {
		return fmt.Errorf("error deleting employee: %w", err)
	}

	return renderEmployee(a.out, deleted)
}

func newFlagSet(command string) *flag.FlagSet {
	return flag.NewFlagSet(command, flag.ContinueOnError)
}
