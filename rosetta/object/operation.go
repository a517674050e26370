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

package object

import (
	"github.com/optakt/rosetta-parser/rosetta/identifier"
)

// Operation contains all balance-changing information within a transaction. It
// is always one-sided (only affects one account identifier) and can succeed or
// fail independently from a transaction. Operations are used both to represent
// on-chain data in the Data API and to construct new transaction in the
// Construction API, creating a standard interface for reading and writing to
// blockchains.
//
// The status must not be set for operations that were not yet submitted, such
// as those that describe the intent of a transaction.
type Operation struct {
	ID         identifier.Operation   `json:"operation_identifier"`
	RelatedIDs []identifier.Operation `json:"related_operations,omitempty"`
	Type       string                 `json:"type"`
	Status     string                 `json:"status,omitempty"`
	AccountID  *identifier.Account    `json:"account,omitempty"`
	Amount     *Amount                `json:"amount,omitempty"`
	CoinChange *CoinChange            `json:"coin_change,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}
