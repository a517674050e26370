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

	"github.com/optakt/rosetta-parser/rosetta/amount"
	"github.com/optakt/rosetta-parser/rosetta/object"
)

// BalanceChanges returns the net balance change of every account and currency
// pair touched by the successful operations of the block, in the order in
// which the pairs first appear. When the block was removed from the canonical
// chain, the changes are reverted and attributed to the parent block.
func (p *Parser) BalanceChanges(block object.Block, removed bool) ([]object.BalanceChange, error) {

	blockID := block.ID
	if removed {
		blockID = block.ParentID
	}

	var changes []*object.BalanceChange
	lookup := make(map[string]*object.BalanceChange)
	for _, tx := range block.Transactions {
		for _, op := range tx.Operations {

			success, err := p.asserter.OperationSuccessful(op)
			if err != nil {
				return nil, fmt.Errorf("could not check operation success (transaction: %s, index: %d): %w", tx.ID.Hash, op.ID.Index, err)
			}
			if !success {
				continue
			}

			if op.AccountID == nil || op.Amount == nil {
				continue
			}

			if p.cfg.Exempt(op) {
				p.log.Debug().
					Str("transaction", tx.ID.Hash).
					Int64("index", op.ID.Index).
					Msg("skipping exempt operation for balance changes")
				continue
			}

			value := op.Amount.Value
			if removed {
				value, err = amount.Negate(value)
				if err != nil {
					return nil, fmt.Errorf("could not negate amount (transaction: %s, index: %d): %w", tx.ID.Hash, op.ID.Index, err)
				}
			}

			key := fmt.Sprintf("%s/%s", p.codec.Fingerprint(op.AccountID), p.codec.Fingerprint(op.Amount.Currency))
			change, ok := lookup[key]
			if !ok {
				// Normalize the value, so that the first amount of a pair is
				// encoded the same way as the sums that follow.
				parsed, err := amount.Parse(value)
				if err != nil {
					return nil, fmt.Errorf("invalid amount (transaction: %s, index: %d): %w", tx.ID.Hash, op.ID.Index, err)
				}
				change = &object.BalanceChange{
					AccountID:  *op.AccountID,
					Currency:   op.Amount.Currency,
					BlockID:    blockID,
					Difference: parsed.String(),
				}
				lookup[key] = change
				changes = append(changes, change)
				continue
			}

			difference, err := amount.Add(change.Difference, value)
			if err != nil {
				return nil, fmt.Errorf("could not add amount (transaction: %s, index: %d): %w", tx.ID.Hash, op.ID.Index, err)
			}
			change.Difference = difference
		}
	}

	result := make([]object.BalanceChange, 0, len(changes))
	for _, change := range changes {
		result = append(result, *change)
	}

	return result, nil
}
