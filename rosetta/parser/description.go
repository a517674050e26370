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
	"github.com/optakt/rosetta-parser/rosetta/amount"
	"github.com/optakt/rosetta-parser/rosetta/identifier"
)

// MetadataDescription requires a metadata key to be present with a value of
// the given kind.
type MetadataDescription struct {
	Key       string `json:"key" yaml:"key" validate:"required"`
	ValueKind Kind   `json:"value_kind" yaml:"value_kind"`
}

// AccountDescription describes the account an operation must have.
type AccountDescription struct {
	Exists                 bool                   `json:"exists" yaml:"exists"`
	SubAccountExists       bool                   `json:"sub_account_exists" yaml:"sub_account_exists"`
	SubAccountAddress      string                 `json:"sub_account_address,omitempty" yaml:"sub_account_address,omitempty"`
	SubAccountMetadataKeys []*MetadataDescription `json:"sub_account_metadata_keys,omitempty" yaml:"sub_account_metadata_keys,omitempty" validate:"dive,required"`
}

// AmountDescription describes the amount an operation must have. A nil
// currency accepts any currency.
type AmountDescription struct {
	Exists   bool                 `json:"exists" yaml:"exists"`
	Sign     amount.Sign          `json:"sign" yaml:"sign"`
	Currency *identifier.Currency `json:"currency,omitempty" yaml:"currency,omitempty"`
}

// OperationDescription describes the shape of an operation. Nil account and
// amount descriptions place no requirement on the account and amount.
type OperationDescription struct {
	Type       string                 `json:"type,omitempty" yaml:"type,omitempty"`
	Account    *AccountDescription    `json:"account,omitempty" yaml:"account,omitempty"`
	Amount     *AmountDescription     `json:"amount,omitempty" yaml:"amount,omitempty"`
	Metadata   []*MetadataDescription `json:"metadata,omitempty" yaml:"metadata,omitempty" validate:"dive,required"`
	CoinAction string                 `json:"coin_action,omitempty" yaml:"coin_action,omitempty"`

	// Optional descriptions don't need to be matched by any operation.
	Optional bool `json:"optional" yaml:"optional"`

	// AllowRepeats lets a single description match several operations.
	AllowRepeats bool `json:"allow_repeats" yaml:"allow_repeats"`
}

// Descriptions is an ordered list of operation descriptions, together with
// the constraints between the operations matched by them. The constraints
// refer to descriptions by their position in the list.
type Descriptions struct {
	OperationDescriptions []*OperationDescription `json:"operation_descriptions" yaml:"operation_descriptions" validate:"min=1,dive,required"`

	// EqualAmounts lists groups of descriptions whose matched operations must
	// all have the same amount value.
	EqualAmounts [][]int `json:"equal_amounts,omitempty" yaml:"equal_amounts,omitempty"`

	// OppositeAmounts lists pairs of descriptions whose matched operations
	// must have amounts of opposite sign and equal magnitude.
	OppositeAmounts [][]int `json:"opposite_amounts,omitempty" yaml:"opposite_amounts,omitempty" validate:"dive,len=2"`

	// OppositeZeroAmounts lists pairs of descriptions whose matched operations
	// must either have opposite amounts or both have zero amounts.
	OppositeZeroAmounts [][]int `json:"opposite_zero_amounts,omitempty" yaml:"opposite_zero_amounts,omitempty" validate:"dive,len=2"`

	// EqualAddresses lists groups of descriptions whose matched operations
	// must all be on the same account address.
	EqualAddresses [][]int `json:"equal_addresses,omitempty" yaml:"equal_addresses,omitempty"`

	// ErrUnmatched makes matching fail when an operation matches none of the
	// descriptions.
	ErrUnmatched bool `json:"err_unmatched" yaml:"err_unmatched"`
}
