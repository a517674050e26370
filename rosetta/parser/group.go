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
	"sort"

	"github.com/optakt/rosetta-parser/rosetta/identifier"
	"github.com/optakt/rosetta-parser/rosetta/object"
)

// OperationGroup is a set of operations that are related to each other
// through their related operation identifiers, such as both sides of a
// transfer.
//
// NilAmountPresent only reflects the operation that was added to the group
// last: it is reset when an operation with an amount is added after one
// without. Consumers that need to know whether any member lacks an amount have
// to check the members themselves.
type OperationGroup struct {
	Type             string
	Operations       []object.Operation
	Currencies       []identifier.Currency
	NilAmountPresent bool
}

// GroupOperations clusters the operations of a transaction into groups of
// related operations. Operations without related operations start a new
// group; operations with related operations join the group with the lowest
// key among the groups of the operations they reference, and all other groups
// referenced are merged into it.
//
// A related operation that has not been assigned to a group yet, because it
// comes later in the transaction or does not exist, resolves to the first
// group. If there is no first group anymore, the reference is ignored. An
// operation whose references can't be resolved at all starts its own group.
func (p *Parser) GroupOperations(transaction object.Transaction) []OperationGroup {

	ops := transaction.Operations
	groups := make(map[int]*OperationGroup)
	currencies := make(map[int]map[string]struct{})
	assignments := make([]int, len(ops))
	assign := func(index int64, key int) {
		if index < 0 || index >= int64(len(assignments)) {
			return
		}
		assignments[index] = key
	}

	next := 0
	for _, op := range ops {

		// Collect the distinct keys of the groups that the related operations
		// are currently assigned to.
		var keys []int
		seen := make(map[int]struct{})
		for _, related := range op.RelatedIDs {
			key := 0
			if related.Index >= 0 && related.Index < int64(len(assignments)) {
				key = assignments[related.Index]
			}
			_, ok := groups[key]
			if !ok {
				continue
			}
			_, ok = seen[key]
			if ok {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}

		// Operations without resolvable related operations start a new group.
		if len(keys) == 0 {
			if len(op.RelatedIDs) > 0 {
				p.log.Debug().
					Int64("index", op.ID.Index).
					Msg("related operations could not be resolved, starting new group")
			}
			key := next
			next++
			groups[key] = &OperationGroup{Type: op.Type}
			currencies[key] = make(map[string]struct{})
			p.addToGroup(groups[key], currencies[key], op)
			assign(op.ID.Index, key)
			continue
		}

		// The group with the lowest key is the one all others get merged into.
		sort.Ints(keys)
		target := keys[0]
		group := groups[target]
		p.addToGroup(group, currencies[target], op)
		assign(op.ID.Index, target)

		for _, key := range keys[1:] {
			for _, member := range groups[key].Operations {
				p.addToGroup(group, currencies[target], member)
				assign(member.ID.Index, target)
			}
			delete(groups, key)
			delete(currencies, key)
		}
	}

	keys := make([]int, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Ints(keys)

	result := make([]OperationGroup, 0, len(keys))
	for _, key := range keys {
		group := groups[key]
		sort.SliceStable(group.Operations, func(i int, j int) bool {
			return group.Operations[i].ID.Index < group.Operations[j].ID.Index
		})
		result = append(result, *group)
	}

	return result
}

func (p *Parser) addToGroup(group *OperationGroup, currencies map[string]struct{}, op object.Operation) {

	if group.Type != op.Type {
		group.Type = ""
	}

	group.Operations = append(group.Operations, op)

	if op.Amount == nil {
		group.NilAmountPresent = true
		return
	}
	group.NilAmountPresent = false

	key := p.codec.Fingerprint(op.Amount.Currency)
	_, ok := currencies[key]
	if ok {
		return
	}
	currencies[key] = struct{}{}
	group.Currencies = append(group.Currencies, op.Amount.Currency)
}
