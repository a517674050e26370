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
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/rosetta-parser/rosetta/failure"
	"github.com/optakt/rosetta-parser/testing/mocks"
)

func TestComparisonMatch(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		descriptions := Descriptions{
			EqualAmounts:        [][]int{{1, 2}},
			OppositeAmounts:     [][]int{{0, 1}},
			OppositeZeroAmounts: [][]int{{2, 0}},
			EqualAddresses:      [][]int{{1, 2}},
		}
		matches := []*Match{
			testMatch(0, "-10"),
			testMatch(1, "10"),
			testMatch(1, "10.0"),
		}

		err := comparisonMatch(descriptions, matches)

		assert.NoError(t, err)
	})

	t.Run("wraps errors with comparison context", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name         string
			descriptions Descriptions
			context      string
		}{
			{
				name:         "equal amounts",
				descriptions: Descriptions{EqualAmounts: [][]int{{0, 3}}},
				context:      equalAmountsContext,
			},
			{
				name:         "opposite amounts",
				descriptions: Descriptions{OppositeAmounts: [][]int{{0, 3}}},
				context:      oppositeAmountsContext,
			},
			{
				name:         "opposite or zero amounts",
				descriptions: Descriptions{OppositeZeroAmounts: [][]int{{0, 3}}},
				context:      oppositeZeroAmountsContext,
			},
			{
				name:         "equal addresses",
				descriptions: Descriptions{EqualAddresses: [][]int{{0, 3}}},
				context:      equalAddressesContext,
			},
		}

		for _, test := range tests {
			test := test
			t.Run(test.name, func(t *testing.T) {
				t.Parallel()

				matches := []*Match{testMatch(0, "-10"), testMatch(1, "10")}

				err := comparisonMatch(test.descriptions, matches)

				var mismatch failure.Mismatch
				require.ErrorAs(t, err, &mismatch)
				assert.Equal(t, matchIndexInvalid, mismatch.Description.Text)
				assert.True(t, strings.HasPrefix(err.Error(), test.context+": "))
			})
		}
	})
}

func TestMatchIndexValid(t *testing.T) {
	matches := []*Match{testMatch(0, "1"), nil}

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		match, err := matchIndexValid(matches, 0)

		require.NoError(t, err)
		assert.Equal(t, matches[0], match)
	})

	t.Run("handles out of range index", func(t *testing.T) {
		t.Parallel()

		for _, index := range []int{-1, 2} {
			_, err := matchIndexValid(matches, index)

			var mismatch failure.Mismatch
			require.ErrorAs(t, err, &mismatch)
			assert.Equal(t, matchIndexInvalid, mismatch.Description.Text)
		}
	})

	t.Run("handles nil match", func(t *testing.T) {
		t.Parallel()

		_, err := matchIndexValid(matches, 1)

		var mismatch failure.Mismatch
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, matchIndexNil, mismatch.Description.Text)
	})
}

func TestEqualAmounts(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		matches := []*Match{testMatch(0, "5", "5.00"), testMatch(1, "5")}

		err := equalAmounts([][]int{{0, 1}}, matches)

		assert.NoError(t, err)
	})

	t.Run("handles unequal amounts", func(t *testing.T) {
		t.Parallel()

		matches := []*Match{testMatch(0, "5"), testMatch(1, "6")}

		err := equalAmounts([][]int{{0, 1}}, matches)

		var mismatch failure.Mismatch
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, amountsUnequal, mismatch.Description.Text)
		assert.Contains(t, err.Error(), "[5 6]")
	})

	t.Run("handles missing amount", func(t *testing.T) {
		t.Parallel()

		missing := testMatch(1, "5")
		missing.Amounts[0] = nil
		matches := []*Match{testMatch(0, "5"), missing}

		err := equalAmounts([][]int{{0, 1}}, matches)

		var mismatch failure.Mismatch
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, amountMissing, mismatch.Description.Text)
	})
}

func TestOppositeAmounts(t *testing.T) {
	tests := []struct {
		name    string
		first   []string
		second  []string
		zero    bool
		wantErr string
	}{
		{
			name:   "opposite amounts",
			first:  []string{"-7"},
			second: []string{"7"},
		},
		{
			name:   "repeated opposite amounts",
			first:  []string{"7", "7"},
			second: []string{"-7"},
		},
		{
			name:    "same sign",
			first:   []string{"7"},
			second:  []string{"7"},
			wantErr: oppositeSameSign,
		},
		{
			name:    "zero amounts",
			first:   []string{"0"},
			second:  []string{"0"},
			wantErr: oppositeSameSign,
		},
		{
			name:    "different magnitude",
			first:   []string{"-7"},
			second:  []string{"8"},
			wantErr: oppositeMagnitudeUnequal,
		},
		{
			name:    "unequal amounts within side",
			first:   []string{"-7", "-8"},
			second:  []string{"7"},
			wantErr: amountsUnequal,
		},
		{
			name:   "zero amounts allowed",
			first:  []string{"0"},
			second: []string{"0"},
			zero:   true,
		},
		{
			name:   "opposite amounts with zero allowed",
			first:  []string{"3"},
			second: []string{"-3"},
			zero:   true,
		},
		{
			name:    "same sign with zero allowed",
			first:   []string{"-3"},
			second:  []string{"-3"},
			zero:    true,
			wantErr: oppositeZeroInvalid,
		},
		{
			name:    "single zero amount with zero allowed",
			first:   []string{"0"},
			second:  []string{"3"},
			zero:    true,
			wantErr: oppositeMagnitudeUnequal,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			matches := []*Match{testMatch(0, test.first...), testMatch(1, test.second...)}

			err := oppositeAmounts([][]int{{0, 1}}, matches, test.zero)

			if test.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var mismatch failure.Mismatch
			require.ErrorAs(t, err, &mismatch)
			assert.Equal(t, test.wantErr, mismatch.Description.Text)
		})
	}

	t.Run("handles invalid pair", func(t *testing.T) {
		t.Parallel()

		matches := []*Match{testMatch(0, "1"), testMatch(1, "-1")}

		err := oppositeAmounts([][]int{{0}}, matches, false)

		var mismatch failure.Mismatch
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, oppositePairInvalid, mismatch.Description.Text)
	})

	t.Run("handles empty side", func(t *testing.T) {
		t.Parallel()

		matches := []*Match{testMatch(0, "1"), {}}

		err := oppositeAmounts([][]int{{0, 1}}, matches, false)

		var mismatch failure.Mismatch
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, oppositeSideEmpty, mismatch.Description.Text)
	})
}

func TestEqualAddresses(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		matches := []*Match{testMatch(0, "1", "2"), testMatch(0, "3")}

		err := equalAddresses([][]int{{0, 1}}, matches)

		assert.NoError(t, err)
	})

	t.Run("handles different addresses", func(t *testing.T) {
		t.Parallel()

		matches := []*Match{testMatch(0, "1"), testMatch(1, "1")}

		err := equalAddresses([][]int{{0, 1}}, matches)

		var mismatch failure.Mismatch
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, addressesUnequal, mismatch.Description.Text)
		assert.Contains(t, err.Error(), mocks.GenericAddress(1))
	})

	t.Run("handles missing account", func(t *testing.T) {
		t.Parallel()

		missing := testMatch(1, "1")
		missing.Operations[0].AccountID = nil
		matches := []*Match{testMatch(0, "1"), missing}

		err := equalAddresses([][]int{{0, 1}}, matches)

		var mismatch failure.Mismatch
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, addressMissing, mismatch.Description.Text)
	})
}

// testMatch builds a match of operations on the generic account with the given
// index, one per value.
func testMatch(account int, values ...string) *Match {
	var match Match
	for i, value := range values {
		op := mocks.GenericOperation(0)
		op.ID.Index = int64(i)
		id := mocks.GenericAccountID(account)
		op.AccountID = &id
		op.Amount = mocks.GenericAmount(value)

		v := decimal.RequireFromString(value)
		match.Operations = append(match.Operations, op)
		match.Amounts = append(match.Amounts, &v)
	}
	return &match
}
