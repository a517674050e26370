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

package configuration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/rosetta-parser/rosetta/configuration"
)

func TestNew(t *testing.T) {
	t.Run("default statuses", func(t *testing.T) {
		t.Parallel()

		config := configuration.New()

		want := []configuration.StatusDefinition{configuration.StatusCompleted, configuration.StatusFailed}
		assert.Equal(t, want, config.Statuses())
	})

	t.Run("custom statuses", func(t *testing.T) {
		t.Parallel()

		sealed := configuration.StatusDefinition{Status: "SEALED", Successful: true}
		config := configuration.New(sealed)

		assert.Equal(t, []configuration.StatusDefinition{sealed}, config.Statuses())

		_, ok := config.Status(configuration.StatusCompleted.Status)
		assert.False(t, ok)
	})
}

func TestConfiguration_Status(t *testing.T) {
	config := configuration.New()

	status, ok := config.Status("FAILED")
	require.True(t, ok)
	assert.Equal(t, configuration.StatusFailed, status)

	_, ok = config.Status("PENDING")
	assert.False(t, ok)
}

func TestParseStatuses(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		statuses, err := configuration.ParseStatuses([]string{"SEALED", "EXPIRED:false", " EXECUTED : TRUE "})

		require.NoError(t, err)
		want := []configuration.StatusDefinition{
			{Status: "SEALED", Successful: true},
			{Status: "EXPIRED", Successful: false},
			{Status: "EXECUTED", Successful: true},
		}
		assert.Equal(t, want, statuses)
	})

	t.Run("handles invalid flag", func(t *testing.T) {
		t.Parallel()

		_, err := configuration.ParseStatuses([]string{"SEALED:maybe"})

		assert.Error(t, err)
	})

	t.Run("handles empty name", func(t *testing.T) {
		t.Parallel()

		_, err := configuration.ParseStatuses([]string{":true"})

		assert.Error(t, err)
	})
}
