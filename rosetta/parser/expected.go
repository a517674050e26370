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

	"github.com/hashicorp/go-multierror"

	"github.com/optakt/rosetta-parser/rosetta/failure"
	"github.com/optakt/rosetta-parser/rosetta/identifier"
	"github.com/optakt/rosetta-parser/rosetta/object"
)

// ExpectedOperation checks that the observed operation has the same account,
// amount and type as the intended operation. Metadata and coin changes are
// not compared.
func (p *Parser) ExpectedOperation(intent object.Operation, observed object.Operation) error {

	if p.codec.Fingerprint(intent.AccountID) != p.codec.Fingerprint(observed.AccountID) {
		return failure.Mismatch{
			Description: failure.NewDescription(intentAccountMismatch,
				failure.WithString("intent", accountAddress(intent.AccountID)),
				failure.WithString("observed", accountAddress(observed.AccountID)),
			),
		}
	}

	if p.codec.Fingerprint(intent.Amount) != p.codec.Fingerprint(observed.Amount) {
		return failure.Mismatch{
			Description: failure.NewDescription(intentAmountMismatch,
				failure.WithString("intent", amountValue(intent.Amount)),
				failure.WithString("observed", amountValue(observed.Amount)),
			),
		}
	}

	if intent.Type != observed.Type {
		return failure.Mismatch{
			Description: failure.NewDescription(intentTypeMismatch,
				failure.WithString("intent", intent.Type),
				failure.WithString("observed", observed.Type),
			),
		}
	}

	return nil
}

// ExpectedOperations checks that every intended operation was observed. Each
// observed operation is paired with the first unpaired intended operation it
// matches. With errExtra, observed operations that match no intended operation
// are an error. With confirmSuccess, paired observed operations also need to
// have been executed successfully.
func (p *Parser) ExpectedOperations(intents []object.Operation, observed []object.Operation, errExtra bool, confirmSuccess bool) error {

	matched := make(map[int]struct{}, len(intents))
	var unmatched []object.Operation
	var failed []object.Operation
	for _, obs := range observed {

		found := false
		for i, intent := range intents {
			_, ok := matched[i]
			if ok {
				continue
			}
			err := p.ExpectedOperation(intent, obs)
			if err != nil {
				continue
			}

			if confirmSuccess {
				success, err := p.asserter.OperationSuccessful(obs)
				if err != nil {
					return fmt.Errorf("could not check operation success (index: %d): %w", obs.ID.Index, err)
				}
				if !success {
					failed = append(failed, obs)
				}
			}

			matched[i] = struct{}{}
			found = true
			break
		}

		if found {
			continue
		}
		if errExtra {
			return failure.Mismatch{
				Description: failure.NewDescription(intentExtraOperation,
					failure.WithInt("index", int(obs.ID.Index)),
					failure.WithString("type", obs.Type),
					failure.WithString("account", accountAddress(obs.AccountID)),
					failure.WithString("amount", amountValue(obs.Amount)),
				),
			}
		}
		unmatched = append(unmatched, obs)
	}

	var merr *multierror.Error
	for i, intent := range intents {
		_, ok := matched[i]
		if ok {
			continue
		}
		fields := []failure.FieldFunc{
			failure.WithInt("intent", i),
			failure.WithString("type", intent.Type),
			failure.WithString("account", accountAddress(intent.AccountID)),
			failure.WithString("amount", amountValue(intent.Amount)),
		}
		if len(unmatched) > 0 {
			fields = append(fields, failure.WithInts("unmatched_observed", operationIndices(unmatched)...))
		}
		merr = multierror.Append(merr, failure.Mismatch{
			Description: failure.NewDescription(intentUnmatched, fields...),
		})
	}
	if merr != nil {
		return merr.ErrorOrNil()
	}

	if len(failed) > 0 {
		return failure.Mismatch{
			Description: failure.NewDescription(intentUnsuccessful,
				failure.WithInts("indices", operationIndices(failed)...),
			),
		}
	}

	return nil
}

// ExpectedSigners checks that the observed signers are exactly the accounts
// that were intended to sign. Accounts are compared by address.
func (p *Parser) ExpectedSigners(payloads []object.SigningPayload, signers []identifier.Account) error {

	observed := make([]string, 0, len(signers))
	for _, signer := range signers {
		observed = append(observed, signer.Address)
	}
	err := p.asserter.Strings("observed signers", observed)
	if err != nil {
		return fmt.Errorf("invalid observed signers: %w", err)
	}

	// Several payloads can be signed by the same account, for example when
	// spending multiple coins of one address.
	intended := make(map[string]struct{}, len(payloads))
	for _, payload := range payloads {
		intended[payload.AccountID.Address] = struct{}{}
	}

	seen := make(map[string]struct{}, len(observed))
	var unexpected []string
	for _, address := range observed {
		_, ok := intended[address]
		if !ok {
			unexpected = append(unexpected, address)
			continue
		}
		seen[address] = struct{}{}
	}
	if len(unexpected) > 0 {
		return failure.Mismatch{
			Description: failure.NewDescription(signerUnexpected,
				failure.WithStrings("signers", unexpected...),
			),
		}
	}

	var missing []string
	reported := make(map[string]struct{}, len(payloads))
	for _, payload := range payloads {
		address := payload.AccountID.Address
		_, ok := seen[address]
		if ok {
			continue
		}
		_, ok = reported[address]
		if ok {
			continue
		}
		reported[address] = struct{}{}
		missing = append(missing, address)
	}
	if len(missing) > 0 {
		return failure.Mismatch{
			Description: failure.NewDescription(signerMissing,
				failure.WithStrings("signers", missing...),
			),
		}
	}

	return nil
}

func accountAddress(account *identifier.Account) string {
	if account == nil {
		return "<none>"
	}
	return account.Address
}

func amountValue(amount *object.Amount) string {
	if amount == nil {
		return "<none>"
	}
	return fmt.Sprintf("%s %s", amount.Value, amount.Currency.Symbol)
}

func operationIndices(ops []object.Operation) []int {
	indices := make([]int, 0, len(ops))
	for _, op := range ops {
		indices = append(indices, int(op.ID.Index))
	}
	return indices
}
