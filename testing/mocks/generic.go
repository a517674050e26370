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

package mocks

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/optakt/rosetta-parser/rosetta/identifier"
	"github.com/optakt/rosetta-parser/rosetta/object"
)

// Global variables that can be used for testing. They are non-nil valid values
// for the types commonly needed to test parser components.
var (
	NoopLogger = zerolog.New(io.Discard)

	GenericError = errors.New("dummy error")

	GenericBytes = []byte(`test`)

	GenericStatus = "COMPLETED"

	GenericType = "transfer"

	GenericCurrency = identifier.Currency{
		Symbol:   "FLOW",
		Decimals: 8,
	}

	GenericBlockID = identifier.Block{
		Index: 42,
		Hash:  GenericHash(0),
	}

	GenericParentBlockID = identifier.Block{
		Index: 41,
		Hash:  GenericHash(1),
	}
)

func GenericHashes(number int) []string {
	// Ensure consistent deterministic results.
	random := rand.New(rand.NewSource(1))

	var hashes []string
	for i := 0; i < number; i++ {
		hash := fmt.Sprintf("%016x%016x%016x%016x", random.Uint64(), random.Uint64(), random.Uint64(), random.Uint64())
		hashes = append(hashes, hash)
	}

	return hashes
}

func GenericHash(index int) string {
	return GenericHashes(index + 1)[index]
}

func GenericAddresses(number int) []string {
	// Ensure consistent deterministic results.
	random := rand.New(rand.NewSource(2))

	var addresses []string
	for i := 0; i < number; i++ {
		addresses = append(addresses, fmt.Sprintf("%016x", random.Uint64()))
	}

	return addresses
}

func GenericAddress(index int) string {
	return GenericAddresses(index + 1)[index]
}

func GenericAccountID(index int) identifier.Account {
	return identifier.Account{Address: GenericAddress(index)}
}

func GenericAmount(value string) *object.Amount {
	return &object.Amount{
		Value:    value,
		Currency: GenericCurrency,
	}
}

// GenericOperations returns transfers between two accounts. Every even
// operation withdraws from the first account and every odd operation deposits
// the same value into the second account, referencing the withdrawal before it.
func GenericOperations(number int) []object.Operation {
	var operations []object.Operation
	for i := 0; i < number; i++ {
		account := GenericAccountID(i % 2)

		value := fmt.Sprint(100 * (i/2 + 1))
		if i%2 == 0 {
			value = "-" + value
		}

		operation := object.Operation{
			ID:        identifier.Operation{Index: int64(i)},
			Type:      GenericType,
			Status:    GenericStatus,
			AccountID: &account,
			Amount:    GenericAmount(value),
		}

		if i%2 == 1 {
			operation.RelatedIDs = []identifier.Operation{{Index: int64(i - 1)}}
		}

		operations = append(operations, operation)
	}

	return operations
}

func GenericOperation(index int) object.Operation {
	return GenericOperations(index + 1)[index]
}

func GenericTransaction(operations ...object.Operation) object.Transaction {
	return object.Transaction{
		ID:         identifier.Transaction{Hash: GenericHash(2)},
		Operations: operations,
	}
}

func GenericBlock(transactions ...object.Transaction) object.Block {
	return object.Block{
		ID:           GenericBlockID,
		ParentID:     GenericParentBlockID,
		Timestamp:    90000000,
		Transactions: transactions,
	}
}
