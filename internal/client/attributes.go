// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"encoding/json"
	"flag"
	"fmt"
	"strings"
)

// attributes collects repeated -attr key=value flags. Values that are valid
// JSON (numbers, booleans, objects) are stored decoded, anything else as a
// plain string.
//
// flag.FlagSet formats a failed Set with %v, so the last Set error is kept
// in err for callers that need to match it.
type attributes struct {
	values map[string]any
	err    error
}

func (a *attributes) String() string {
	if a == nil {
		return ""
	}

	pairs := make([]string, 0, len(a.values))
	for k, v := range a.values {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, v))
	}
	return strings.Join(pairs, ",")
}

func (a *attributes) Set(s string) error {
	key, raw, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		a.err = fmt.Errorf("%w: %q", errInvalidAttribute, s)
		return a.err
	}

	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		value = raw
	}

	if a.values == nil {
		a.values = make(map[string]any)
	}
	a.values[key] = value
	return nil
}

// parseFlags parses args into fs. A rejected -attr value is reported with
// its own error so it stays matchable with errors.Is.
func parseFlags(fs *flag.FlagSet, args []string, attrs *attributes) error {
	if err := fs.Parse(args); err != nil {
		if attrs != nil && attrs.err != nil {
			return attrs.err
		}
		return err
	}
	return nil
}
