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

	"github.com/optakt/rosetta-parser/rosetta/amount"
	"github.com/optakt/rosetta-parser/rosetta/failure"
	"github.com/optakt/rosetta-parser/rosetta/identifier"
	"github.com/optakt/rosetta-parser/rosetta/object"
)

// Match contains the operations that matched an operation description, and
// the values of their amounts. Amounts are nil for operations without amount.
type Match struct {
	Operations []object.Operation
	Amounts    []*decimal.Decimal
}

// First returns the first matched operation and its amount value. It returns
// nil values if the match is empty.
func (m *Match) First() (*object.Operation, *decimal.Decimal) {
	if m == nil || len(m.Operations) == 0 {
		return nil, nil
	}
	return &m.Operations[0], m.Amounts[0]
}

// MatchOperations matches every operation against the first description it
// satisfies, and then verifies the constraints between the matched operations.
// The returned matches are aligned with the operation descriptions; the match
// of an optional description that no operation satisfied is nil.
func (p *Parser) MatchOperations(descriptions Descriptions, operations []object.Operation) ([]*Match, error) {

	if len(operations) == 0 {
		return nil, failure.Mismatch{
			Description: failure.NewDescription(operationsEmpty),
		}
	}
	err := p.validateDescriptions(descriptions)
	if err != nil {
		return nil, err
	}

	matches := make([]*Match, len(descriptions.OperationDescriptions))
	for i, op := range operations {
		matched, err := p.operationMatch(op, descriptions.OperationDescriptions, matches)
		if err != nil {
			return nil, fmt.Errorf("could not match operation (position: %d): %w", i, err)
		}
		if matched {
			continue
		}
		if descriptions.ErrUnmatched {
			return nil, failure.Mismatch{
				Description: failure.NewDescription(operationUnmatched,
					failure.WithInt("position", i),
					failure.WithString("type", op.Type),
				),
			}
		}
		p.log.Debug().Int("position", i).Str("type", op.Type).Msg("operation matched no description")
	}

	for i, match := range matches {
		if match == nil && !descriptions.OperationDescriptions[i].Optional {
			return nil, failure.Mismatch{
				Description: failure.NewDescription(descriptionUnmatched,
					failure.WithInt("description", i),
					failure.WithString("type", descriptions.OperationDescriptions[i].Type),
				),
			}
		}
	}

	err = comparisonMatch(descriptions, matches)
	if err != nil {
		return nil, err
	}

	return matches, nil
}

// operationMatch assigns the operation to the first description it satisfies.
// Descriptions that were already matched are only considered again if they
// allow repeats.
func (p *Parser) operationMatch(operation object.Operation, descriptions []*OperationDescription, matches []*Match) (bool, error) {

	for i, des := range descriptions {

		if matches[i] != nil && !des.AllowRepeats {
			continue
		}

		if des.Type != "" && des.Type != operation.Type {
			continue
		}

		err := accountMatch(des.Account, operation.AccountID)
		if err != nil {
			p.skip(i, operation, err)
			continue
		}
		err = p.amountMatch(des.Amount, operation.Amount)
		if err != nil {
			p.skip(i, operation, err)
			continue
		}
		err = metadataMatch(des.Metadata, operation.Metadata)
		if err != nil {
			p.skip(i, operation, err)
			continue
		}
		err = coinActionMatch(des.CoinAction, operation.CoinChange)
		if err != nil {
			p.skip(i, operation, err)
			continue
		}

		var value *decimal.Decimal
		if operation.Amount != nil {
			v, err := amount.Value(operation.Amount)
			if err != nil {
				return false, failure.Mismatch{
					Description: failure.NewDescription(amountUnparseable,
						failure.WithString("value", operation.Amount.Value),
						failure.WithErr(err),
					),
				}
			}
			value = &v
		}

		if matches[i] == nil {
			matches[i] = &Match{}
		}
		matches[i].Operations = append(matches[i].Operations, operation)
		matches[i].Amounts = append(matches[i].Amounts, value)

		return true, nil
	}

	return false, nil
}

func (p *Parser) skip(description int, operation object.Operation, err error) {
	p.log.Debug().
		Int("description", description).
		Int64("index", operation.ID.Index).
		Err(err).
		Msg("operation does not match description")
}

func accountMatch(req *AccountDescription, account *identifier.Account) error {

	if req == nil {
		return nil
	}

	if account == nil {
		if req.Exists {
			return failure.Mismatch{Description: failure.NewDescription(accountMissing)}
		}
		return nil
	}

	if account.SubAccount == nil {
		if req.SubAccountExists {
			return failure.Mismatch{
				Description: failure.NewDescription(subAccountMissing,
					failure.WithString("address", account.Address),
				),
			}
		}
		return nil
	}

	if !req.SubAccountExists {
		return failure.Mismatch{
			Description: failure.NewDescription(subAccountPopulated,
				failure.WithString("address", account.Address),
				failure.WithString("sub_account", account.SubAccount.Address),
			),
		}
	}

	if req.SubAccountAddress != "" && account.SubAccount.Address != req.SubAccountAddress {
		return failure.Mismatch{
			Description: failure.NewDescription(subAccountAddressInvalid,
				failure.WithString("have", account.SubAccount.Address),
				failure.WithString("want", req.SubAccountAddress),
			),
		}
	}

	err := metadataMatch(req.SubAccountMetadataKeys, account.SubAccount.Metadata)
	if err != nil {
		return fmt.Errorf("invalid sub-account metadata: %w", err)
	}

	return nil
}

func (p *Parser) amountMatch(req *AmountDescription, value *object.Amount) error {

	if req == nil {
		return nil
	}

	if value == nil {
		if req.Exists {
			return failure.Mismatch{Description: failure.NewDescription(amountMissing)}
		}
		return nil
	}

	if !req.Exists {
		return failure.Mismatch{
			Description: failure.NewDescription(amountPopulated,
				failure.WithString("value", value.Value),
			),
		}
	}

	if !req.Sign.Match(value) {
		return failure.Mismatch{
			Description: failure.NewDescription(amountSignInvalid,
				failure.WithString("value", value.Value),
				failure.WithString("sign", req.Sign.String()),
			),
		}
	}

	if req.Currency == nil {
		return nil
	}

	if p.codec.Fingerprint(value.Currency) != p.codec.Fingerprint(req.Currency) {
		return failure.Mismatch{
			Description: failure.NewDescription(amountCurrencyInvalid,
				failure.WithString("have", value.Currency.Symbol),
				failure.WithString("want", req.Currency.Symbol),
			),
		}
	}

	return nil
}

func metadataMatch(reqs []*MetadataDescription, metadata map[string]interface{}) error {

	for _, req := range reqs {
		value, ok := metadata[req.Key]
		if !ok {
			return failure.Mismatch{
				Description: failure.NewDescription(metadataKeyMissing,
					failure.WithString("key", req.Key),
				),
			}
		}
		kind := KindOf(value)
		if kind != req.ValueKind {
			return failure.Mismatch{
				Description: failure.NewDescription(metadataKindWrong,
					failure.WithString("key", req.Key),
					failure.WithString("have", kind.String()),
					failure.WithString("want", req.ValueKind.String()),
				),
			}
		}
	}

	return nil
}

func coinActionMatch(action string, change *object.CoinChange) error {

	if action == "" {
		return nil
	}

	if change == nil {
		return failure.Mismatch{
			Description: failure.NewDescription(coinChangeMissing,
				failure.WithString("want", action),
			),
		}
	}

	if change.CoinAction != action {
		return failure.Mismatch{
			Description: failure.NewDescription(coinActionInvalid,
				failure.WithString("have", change.CoinAction),
				failure.WithString("want", action),
			),
		}
	}

	return nil
}
