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

	"github.com/optakt/rosetta-parser/rosetta/amount"
	"github.com/optakt/rosetta-parser/rosetta/failure"
)

// Field names and tags reported by the custom struct validators. Only the tag
// ends up in the error description.
const (
	kindField = "value_kind"
	signField = "sign"

	kindInvalid = "kind_invalid"
	signInvalid = "sign_invalid"
)

func newDescriptionValidator() *validator.Validate {

	v := validator.New()

	// We register a single type per validator, so we can safely perform type
	// assertion of the provided `validator.StructLevel` to the correct type.
	v.RegisterStructValidation(metadataValidator, MetadataDescription{})
	v.RegisterStructValidation(amountValidator, AmountDescription{})

	return v
}

// validateDescriptions rejects malformed descriptions before any matching
// work is done.
func (p *Parser) validateDescriptions(descriptions Descriptions) error {

	err := p.validate.Struct(descriptions)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return failure.Mismatch{
			Description: failure.NewDescription(descriptionsInvalid,
				failure.WithErr(err),
			),
		}
	}

	first := errs[0]
	return failure.Mismatch{
		Description: failure.NewDescription(descriptionsInvalid,
			failure.WithString("field", first.Namespace()),
			failure.WithString("tag", first.Tag()),
			failure.WithString("param", first.Param()),
		),
	}
}

func metadataValidator(sl validator.StructLevel) {
	description := sl.Current().Interface().(MetadataDescription)
	_, ok := kindNames[description.ValueKind]
	if !ok {
		sl.ReportError(description.ValueKind, kindField, kindField, kindInvalid, "")
	}
}

func amountValidator(sl validator.StructLevel) {
	description := sl.Current().Interface().(AmountDescription)
	if description.Sign < amount.Any || description.Sign > amount.Positive {
		sl.ReportError(description.Sign, signField, signField, signInvalid, "")
	}
}
