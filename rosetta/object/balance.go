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

// BalanceChange is the net change of the balance of one currency for one
// account within one block. The difference is signed and encoded the same way
// as an amount value.
type BalanceChange struct {
	AccountID  identifier.Account  `json:"account_identifier"`
	Currency   identifier.Currency `json:"currency"`
	BlockID    identifier.Block    `json:"block_identifier"`
	Difference string              `json:"difference"`
}
