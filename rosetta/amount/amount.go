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

package amount

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/optakt/rosetta-parser/rosetta/object"
)

// ErrMissingAmount is returned when trying to extract the value of an amount
// that is not there.
var ErrMissingAmount = errors.New("amount is missing")

// Value returns the numeric value of the given amount.
func Value(amount *object.Amount) (decimal.Decimal, error) {
	if amount == nil {
		return decimal.Zero, ErrMissingAmount
	}

	value, err := Parse(amount.Value)
	if err != nil {
		return decimal.Zero, err
	}

	return value, nil
}

// Parse parses a string encoded amount value.
func Parse(value string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("could not parse amount value (value: %s): %w", value, err)
	}
	return v, nil
}

// Add adds two string encoded amount values with arbitrary precision.
func Add(a string, b string) (string, error) {
	first, err := Parse(a)
	if err != nil {
		return "", fmt.Errorf("invalid first value: %w", err)
	}
	second, err := Parse(b)
	if err != nil {
		return "", fmt.Errorf("invalid second value: %w", err)
	}

	return first.Add(second).String(), nil
}

// Negate flips the sign of a string encoded amount value.
func Negate(value string) (string, error) {
	v, err := Parse(value)
	if err != nil {
		return "", err
	}

	return v.Neg().String(), nil
}
