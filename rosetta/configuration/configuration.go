// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package configuration

import (
	"fmt"
	"strings"
)

// StatusDefinition describes an operation status a network can report, and
// whether operations with that status are considered to have been executed.
type StatusDefinition struct {
	Status     string `json:"status"`
	Successful bool   `json:"successful"`
}

// Default status definitions.
var (
	StatusCompleted = StatusDefinition{Status: "COMPLETED", Successful: true}
	StatusFailed    = StatusDefinition{Status: "FAILED", Successful: false}
)

type Configuration struct {
	statuses []StatusDefinition
}

// New creates a configuration with the given status definitions. Without
// definitions, the default `COMPLETED` and `FAILED` statuses are used.
func New(statuses ...StatusDefinition) *Configuration {

	if len(statuses) == 0 {
		statuses = []StatusDefinition{
			StatusCompleted,
			StatusFailed,
		}
	}

	c := Configuration{
		statuses: statuses,
	}

	return &c
}

// ParseStatuses parses status definitions of the form `NAME:true`, where the
// boolean indicates whether the status is successful. A missing boolean means
// the status is successful.
func ParseStatuses(specs []string) ([]StatusDefinition, error) {
	statuses := make([]StatusDefinition, 0, len(specs))
	for _, spec := range specs {
		parts := strings.SplitN(spec, ":", 2)
		name := strings.TrimSpace(parts[0])
		if name == "" {
			return nil, fmt.Errorf("empty status name (spec: %s)", spec)
		}
		status := StatusDefinition{Status: name, Successful: true}
		if len(parts) == 2 {
			switch strings.ToLower(strings.TrimSpace(parts[1])) {
			case "true":
			case "false":
				status.Successful = false
			default:
				return nil, fmt.Errorf("invalid status success flag (spec: %s)", spec)
			}
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

func (c *Configuration) Statuses() []StatusDefinition {
	return c.statuses
}

// Status returns the definition for the given status.
func (c *Configuration) Status(name string) (StatusDefinition, bool) {
	for _, status := range c.statuses {
		if status.Status == name {
			return status, true
		}
	}
	return StatusDefinition{}, false
}
