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

package failure_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/optakt/rosetta-parser/rosetta/failure"
	"github.com/optakt/rosetta-parser/testing/mocks"
)

func TestDescription(t *testing.T) {
	descBody := "test"
	index := 84
	address := mocks.GenericAccountID(0).Address
	values := []string{"10", "-10"}

	t.Run("full description with fields", func(t *testing.T) {
		t.Parallel()

		desc := failure.NewDescription(
			descBody,
			failure.WithErr(mocks.GenericError),
			failure.WithInt("index", index),
			failure.WithInts("intents", 1, 3),
			failure.WithBool("optional", true),
			failure.WithString("address", address),
			failure.WithStrings("values", values...),
		)

		assert.Equal(t, desc.Text, descBody)
		assert.NotEqual(t, desc.String(), descBody)
		assert.Contains(t, desc.Fields.String(), mocks.GenericError.Error())
		assert.Contains(t, desc.Fields.String(), fmt.Sprintf("index: %v", index))
		assert.Contains(t, desc.Fields.String(), "intents: [1 3]")
		assert.Contains(t, desc.Fields.String(), "optional: true")
		assert.Contains(t, desc.Fields.String(), fmt.Sprintf("address: %v", address))
		assert.Contains(t, desc.Fields.String(), fmt.Sprintf("values: %v", values))
	})

	t.Run("no fields", func(t *testing.T) {
		t.Parallel()

		desc := failure.NewDescription(descBody)

		assert.Equal(t, desc.Text, descBody)
		assert.Equal(t, desc.String(), descBody)
	})
}

func TestMismatch(t *testing.T) {
	err := fmt.Errorf("could not match: %w", failure.Mismatch{
		Description: failure.NewDescription("unexpected signer", failure.WithString("signer", "B")),
	})

	var mismatch failure.Mismatch
	assert.True(t, errors.As(err, &mismatch))
	assert.Equal(t, "unexpected signer", mismatch.Description.Text)
	assert.Contains(t, err.Error(), "signer: B")
}
