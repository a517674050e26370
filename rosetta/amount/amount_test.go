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

package amount_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/rosetta-parser/rosetta/amount"
	"github.com/optakt/rosetta-parser/rosetta/object"
	"github.com/optakt/rosetta-parser/testing/mocks"
)

func TestValue(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		got, err := amount.Value(mocks.GenericAmount("-1000000000000000000000001"))

		require.NoError(t, err)
		assert.Equal(t, "-1000000000000000000000001", got.String())
	})

	t.Run("handles missing amount", func(t *testing.T) {
		t.Parallel()

		_, err := amount.Value(nil)

		assert.ErrorIs(t, err, amount.ErrMissingAmount)
	})

	t.Run("handles invalid value", func(t *testing.T) {
		t.Parallel()

		_, err := amount.Value(mocks.GenericAmount("ten"))

		assert.Error(t, err)
	})
}

func TestAdd(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		got, err := amount.Add("-10", "25")

		require.NoError(t, err)
		assert.Equal(t, "15", got)
	})

	t.Run("arbitrary precision", func(t *testing.T) {
		t.Parallel()

		got, err := amount.Add("99999999999999999999999999", "1")

		require.NoError(t, err)
		assert.Equal(t, "100000000000000000000000000", got)
	})

	t.Run("handles invalid first value", func(t *testing.T) {
		t.Parallel()

		_, err := amount.Add("", "1")

		assert.Error(t, err)
	})

	t.Run("handles invalid second value", func(t *testing.T) {
		t.Parallel()

		_, err := amount.Add("1", "x")

		assert.Error(t, err)
	})
}

func TestNegate(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		got, err := amount.Negate("-42")

		require.NoError(t, err)
		assert.Equal(t, "42", got)
	})

	t.Run("zero stays zero", func(t *testing.T) {
		t.Parallel()

		got, err := amount.Negate("0")

		require.NoError(t, err)
		assert.Equal(t, "0", got)
	})

	t.Run("handles invalid value", func(t *testing.T) {
		t.Parallel()

		_, err := amount.Negate("1.2.3")

		assert.Error(t, err)
	})
}

func TestSign_Match(t *testing.T) {
	negative := mocks.GenericAmount("-5")
	positive := mocks.GenericAmount("5")
	zero := mocks.GenericAmount("0")
	invalid := mocks.GenericAmount("five")

	assert.True(t, amount.Any.Match(negative))
	assert.True(t, amount.Any.Match(invalid))
	assert.True(t, amount.Negative.Match(negative))
	assert.False(t, amount.Negative.Match(positive))
	assert.False(t, amount.Negative.Match(zero))
	assert.False(t, amount.Negative.Match(invalid))
	assert.True(t, amount.Positive.Match(positive))
	assert.False(t, amount.Positive.Match(negative))
	assert.False(t, amount.Positive.Match(zero))
	assert.False(t, amount.Positive.Match((*object.Amount)(nil)))
}

func TestSign_Text(t *testing.T) {
	t.Run("round trip through JSON", func(t *testing.T) {
		t.Parallel()

		var signs []amount.Sign
		err := json.Unmarshal([]byte(`["negative","positive","any"]`), &signs)

		require.NoError(t, err)
		assert.Equal(t, []amount.Sign{amount.Negative, amount.Positive, amount.Any}, signs)

		data, err := json.Marshal(signs)

		require.NoError(t, err)
		assert.JSONEq(t, `["negative","positive","any"]`, string(data))
	})

	t.Run("handles unknown sign", func(t *testing.T) {
		t.Parallel()

		var sign amount.Sign
		err := sign.UnmarshalText([]byte("sideways"))

		assert.Error(t, err)
	})

	t.Run("handles invalid sign", func(t *testing.T) {
		t.Parallel()

		_, err := amount.Sign(7).MarshalText()

		assert.Error(t, err)
		assert.Equal(t, "invalid(7)", amount.Sign(7).String())
	})
}
