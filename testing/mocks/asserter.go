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

package mocks

import (
	"testing"

	"github.com/optakt/rosetta-parser/rosetta/object"
)

type Asserter struct {
	OperationSuccessfulFunc func(operation object.Operation) (bool, error)
	StringsFunc             func(label string, values []string) error
}

func BaselineAsserter(t *testing.T) *Asserter {
	t.Helper()

	a := Asserter{
		OperationSuccessfulFunc: func(operation object.Operation) (bool, error) {
			return operation.Status == GenericStatus, nil
		},
		StringsFunc: func(string, []string) error {
			return nil
		},
	}

	return &a
}

func (a *Asserter) OperationSuccessful(operation object.Operation) (bool, error) {
	return a.OperationSuccessfulFunc(operation)
}

func (a *Asserter) Strings(label string, values []string) error {
	return a.StringsFunc(label, values)
}
