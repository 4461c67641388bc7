// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/MKhiriev/employee-registry/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

func renderEmployees(w io.Writer, employees []models.Employee) error {
	if len(employees) == 0 {
		_, err := fmt.Fprintln(w, faintStyle.Render("no employees found"))
		return err
	}

	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, []string{e.ID, e.Name, e.Department, formatAttributes(e.Attributes)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("ID", "NAME", "DEPARTMENT", "ATTRIBUTES").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func renderEmployee(w io.Writer, employee models.Employee) error {
	b, err := json.MarshalIndent(employee, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding employee: %w", err)
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}

func renderBuildInfo(w io.Writer, info models.AppBuildInfo) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render("employee-registry client"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Build version: %s\n", info.BuildVersion())
	fmt.Fprintf(&b, "Build date: %s\n", info.BuildDate())
	fmt.Fprintf(&b, "Build commit: %s", info.BuildCommit())

	_, err := fmt.Fprintln(w, b.String())
	return err
}

// formatAttributes renders attributes as key=value pairs sorted by key.
func formatAttributes(attrs map[string]any) string {
	keys := slices.Sorted(maps.Keys(attrs))

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, attrs[k]))
	}
	return strings.Join(pairs, " ")
}
