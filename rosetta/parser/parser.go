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
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Parser groups, aggregates, matches and reconciles the operations of Rosetta
// transactions. It holds no mutable state, so a single parser can be used
// from several goroutines at once.
type Parser struct {
	log      zerolog.Logger
	asserter Asserter
	codec    Codec
	validate *validator.Validate
	cfg      Config
}

// New creates a new parser, which uses the given asserter to decide whether
// operations were successful and the given codec to compare structures.
func New(log zerolog.Logger, asserter Asserter, codec Codec, options ...func(*Config)) *Parser {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	p := Parser{
		log:      log.With().Str("component", "parser").Logger(),
		asserter: asserter,
		codec:    codec,
		validate: newDescriptionValidator(),
		cfg:      cfg,
	}

	return &p
}
