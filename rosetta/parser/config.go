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

package parser

import (
	"github.com/optakt/rosetta-parser/rosetta/object"
)

// ExemptFunc decides whether an operation is exempt from balance tracking.
type ExemptFunc func(operation object.Operation) bool

// Config contains optional parameters we can set for the parser.
type Config struct {
	Exempt ExemptFunc
}

// DefaultConfig has no exemptions.
var DefaultConfig = Config{
	Exempt: func(object.Operation) bool { return false },
}

// WithExemption sets the predicate used to exclude operations from balance
// changes, such as operations on accounts with balances that can't be
// reconciled.
func WithExemption(exempt ExemptFunc) func(*Config) {
	return func(cfg *Config) {
		cfg.Exempt = exempt
	}
}
