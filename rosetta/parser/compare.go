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
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/optakt/rosetta-parser/rosetta/failure"
	"github.com/optakt/rosetta-parser/rosetta/object"
)

// comparisonMatch verifies the constraints between matched operations.
func comparisonMatch(descriptions Descriptions, matches []*Match) error {

	err := equalAmounts(descriptions.EqualAmounts, matches)
	if err != nil {
		return fmt.Errorf("%s: %w", equalAmountsContext, err)
	}

	err = oppositeAmounts(descriptions.OppositeAmounts, matches, false)
	if err != nil {
		return fmt.Errorf("%s: %w", oppositeAmountsContext, err)
	}

	err = oppositeAmounts(descriptions.OppositeZeroAmounts, matches, true)
	if err != nil {
		return fmt.Errorf("%s: %w", oppositeZeroAmountsContext, err)
	}

	err = equalAddresses(descriptions.EqualAddresses, matches)
	if err != nil {
		return fmt.Errorf("%s: %w", equalAddressesContext, err)
	}

	return nil
}

// matchIndexValid returns the match at the given index, if there is one.
func matchIndexValid(matches []*Match, index int) (*Match, error) {

	if index < 0 || index >= len(matches) {
		return nil, failure.Mismatch{
			Description: failure.NewDescription(matchIndexInvalid,
				failure.WithInt("index", index),
				failure.WithInt("matches", len(matches)),
			),
		}
	}

	if matches[index] == nil {
		return nil, failure.Mismatch{
			Description: failure.NewDescription(matchIndexNil,
				failure.WithInt("index", index),
			),
		}
	}

	return matches[index], nil
}

func equalAmounts(groups [][]int, matches []*Match) error {

	for _, group := range groups {
		var values []*decimal.Decimal
		for _, index := range group {
			match, err := matchIndexValid(matches, index)
			if err != nil {
				return err
			}
			values = append(values, match.Amounts...)
		}

		err := equalValues(values)
		if err != nil {
			return err
		}
	}

	return nil
}

// equalValues checks that all values are present and numerically equal.
func equalValues(values []*decimal.Decimal) error {

	for i, value := range values {
		if value == nil {
			return failure.Mismatch{
				Description: failure.NewDescription(amountMissing,
					failure.WithInt("position", i),
				),
			}
		}
	}

	for _, value := range values {
		if !value.Equal(*values[0]) {
			return failure.Mismatch{
				Description: failure.NewDescription(amountsUnequal,
					failure.WithStrings("values", valueStrings(values)...),
				),
			}
		}
	}

	return nil
}

// oppositeAmounts checks that the amounts of each pair of matches have opposite
// signs and the same magnitude. Within each side of a pair, all amounts need to
// be equal. If zero is allowed, pairs of zero amounts are accepted as well.
func oppositeAmounts(pairs [][]int, matches []*Match, zero bool) error {

	for _, pair := range pairs {
		if len(pair) != 2 {
			return failure.Mismatch{
				Description: failure.NewDescription(oppositePairInvalid,
					failure.WithInts("indices", pair...),
				),
			}
		}

		sides := make([]*decimal.Decimal, 0, 2)
		for _, index := range pair {
			match, err := matchIndexValid(matches, index)
			if err != nil {
				return err
			}
			if len(match.Operations) == 0 {
				return failure.Mismatch{
					Description: failure.NewDescription(oppositeSideEmpty,
						failure.WithInt("index", index),
					),
				}
			}
			err = equalValues(match.Amounts)
			if err != nil {
				return fmt.Errorf("invalid amounts for index %d: %w", index, err)
			}
			sides = append(sides, match.Amounts[0])
		}

		first, second := sides[0], sides[1]
		if zero && first.IsZero() && second.IsZero() {
			continue
		}

		if first.Sign() == second.Sign() {
			text := oppositeSameSign
			if zero {
				text = oppositeZeroInvalid
			}
			return failure.Mismatch{
				Description: failure.NewDescription(text,
					failure.WithStrings("values", first.String(), second.String()),
				),
			}
		}

		if !first.Abs().Equal(second.Abs()) {
			return failure.Mismatch{
				Description: failure.NewDescription(oppositeMagnitudeUnequal,
					failure.WithStrings("values", first.String(), second.String()),
				),
			}
		}
	}

	return nil
}

func equalAddresses(groups [][]int, matches []*Match) error {

	for _, group := range groups {
		var ops []object.Operation
		for _, index := range group {
			match, err := matchIndexValid(matches, index)
			if err != nil {
				return err
			}
			ops = append(ops, match.Operations...)
		}

		var addresses []string
		for _, op := range ops {
			if op.AccountID == nil {
				return failure.Mismatch{
					Description: failure.NewDescription(addressMissing,
						failure.WithInt("index", int(op.ID.Index)),
					),
				}
			}
			addresses = append(addresses, op.AccountID.Address)
		}

		for _, address := range addresses {
			if address != addresses[0] {
				return failure.Mismatch{
					Description: failure.NewDescription(addressesUnequal,
						failure.WithStrings("addresses", addresses...),
					),
				}
			}
		}
	}

	return nil
}

func valueStrings(values []*decimal.Decimal) []string {
	strs := make([]string, 0, len(values))
	for _, value := range values {
		strs = append(strs, value.String())
	}
	return strs
}
