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

package asserter

import (
	"github.com/optakt/rosetta-parser/rosetta/failure"
	"github.com/optakt/rosetta-parser/rosetta/object"
)

// Error descriptions for assertion failures.
const (
	statusMissing   = "operation status is missing"
	statusUnknown   = "operation status is not supported"
	stringEmpty     = "empty string found"
	stringDuplicate = "duplicate string found"
)

// Asserter decides whether operations were executed successfully, according
// to the status definitions of its configuration, and performs basic sanity
// checks on lists of values.
type Asserter struct {
	config Configuration
}

// New creates a new asserter using the given configuration.
func New(config Configuration) *Asserter {

	a := Asserter{
		config: config,
	}

	return &a
}

// OperationSuccessful returns whether the operation was executed successfully.
// Operations without a status, such as those that describe the intent of a
// transaction, can't be evaluated.
func (a *Asserter) OperationSuccessful(operation object.Operation) (bool, error) {
	if operation.Status == "" {
		return false, failure.Mismatch{
			Description: failure.NewDescription(statusMissing,
				failure.WithInt("index", int(operation.ID.Index)),
			),
		}
	}

	status, ok := a.config.Status(operation.Status)
	if !ok {
		return false, failure.Mismatch{
			Description: failure.NewDescription(statusUnknown,
				failure.WithInt("index", int(operation.ID.Index)),
				failure.WithString("status", operation.Status),
			),
		}
	}

	return status.Successful, nil
}

// Strings checks that the list of values, identified by the given label,
// contains neither empty nor duplicate values.
func (a *Asserter) Strings(label string, values []string) error {
	seen := make(map[string]struct{}, len(values))
	for i, value := range values {
		if value == "" {
			return failure.Mismatch{
				Description: failure.NewDescription(stringEmpty,
					failure.WithString("label", label),
					failure.WithInt("position", i),
				),
			}
		}
		_, ok := seen[value]
		if ok {
			return failure.Mismatch{
				Description: failure.NewDescription(stringDuplicate,
					failure.WithString("label", label),
					failure.WithString("value", value),
				),
			}
		}
		seen[value] = struct{}{}
	}

	return nil
}
