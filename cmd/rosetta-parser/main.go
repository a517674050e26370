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

package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/optakt/rosetta-parser/codec/zbor"
	"github.com/optakt/rosetta-parser/rosetta/asserter"
	"github.com/optakt/rosetta-parser/rosetta/configuration"
	"github.com/optakt/rosetta-parser/rosetta/identifier"
	"github.com/optakt/rosetta-parser/rosetta/object"
	"github.com/optakt/rosetta-parser/rosetta/parser"
)

const (
	success = 0
	failure = 1
)

func main() {
	os.Exit(run())
}

func run() int {

	// Command line parameter initialization.
	var (
		flagBlock          string
		flagConfirmSuccess bool
		flagDescriptions   string
		flagErrExtra       bool
		flagExempt         []string
		flagIntent         string
		flagLevel          string
		flagPayloads       string
		flagRemoved        bool
		flagSigners        []string
		flagStatuses       []string
	)

	pflag.StringVarP(&flagBlock, "block", "b", "", "path to Rosetta block file (JSON, optionally zstd compressed with .zst suffix)")
	pflag.BoolVar(&flagConfirmSuccess, "confirm-success", false, "require operations matching the intent to be successful")
	pflag.StringVarP(&flagDescriptions, "descriptions", "d", "", "path to operation descriptions file (YAML or JSON) to match each transaction against")
	pflag.BoolVar(&flagErrExtra, "err-extra", false, "fail on operations that match no intended operation")
	pflag.StringSliceVarP(&flagExempt, "exempt", "e", nil, "operation types to exclude from balance changes")
	pflag.StringVarP(&flagIntent, "intent", "i", "", "path to JSON file with intended operations to reconcile the block against")
	pflag.StringVarP(&flagLevel, "level", "l", "info", "log output level")
	pflag.StringVarP(&flagPayloads, "payloads", "p", "", "path to JSON file with signing payloads to reconcile the signers against")
	pflag.BoolVarP(&flagRemoved, "removed", "r", false, "compute balance changes for the block being orphaned")
	pflag.StringSliceVar(&flagSigners, "signers", nil, "addresses of the accounts that signed the transaction")
	pflag.StringSliceVarP(&flagStatuses, "statuses", "s", nil, "operation statuses of the network, as NAME:true for successful and NAME:false for failed statuses")

	pflag.Parse()

	// Logger initialization.
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(flagLevel)
	if err != nil {
		log.Error().Str("level", flagLevel).Err(err).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)

	if flagBlock == "" {
		log.Error().Msg("need a block file to parse")
		return failure
	}

	statuses, err := configuration.ParseStatuses(flagStatuses)
	if err != nil {
		log.Error().Strs("statuses", flagStatuses).Err(err).Msg("could not parse operation statuses")
		return failure
	}

	// Parser initialization.
	codec := zbor.NewCodec()
	config := configuration.New(statuses...)
	assert := asserter.New(config)
	parse := parser.New(log, assert, codec, parser.WithExemption(exemptTypes(flagExempt)))

	var block object.Block
	err = decodeFile(codec, flagBlock, &block)
	if err != nil {
		log.Error().Str("block", flagBlock).Err(err).Msg("could not load block")
		return failure
	}

	log.Info().
		Int64("index", block.ID.Index).
		Str("hash", block.ID.Hash).
		Int("transactions", len(block.Transactions)).
		Msg("block loaded")

	for _, tx := range block.Transactions {
		groups := parse.GroupOperations(tx)
		for i, group := range groups {
			log.Info().
				Str("transaction", tx.ID.Hash).
				Int("group", i).
				Str("type", group.Type).
				Int("operations", len(group.Operations)).
				Int("currencies", len(group.Currencies)).
				Bool("nil_amount", group.NilAmountPresent).
				Msg("operation group")
		}
	}

	changes, err := parse.BalanceChanges(block, flagRemoved)
	if err != nil {
		log.Error().Err(err).Msg("could not compute balance changes")
		return failure
	}
	for _, change := range changes {
		log.Info().
			Str("account", change.AccountID.Address).
			Str("currency", change.Currency.Symbol).
			Int64("block", change.BlockID.Index).
			Str("difference", change.Difference).
			Msg("balance change")
	}

	// From here on, mismatches are logged for every transaction before we
	// exit, instead of stopping at the first one.
	code := success

	if flagDescriptions != "" {
		var descriptions parser.Descriptions
		err = decodeFile(codec, flagDescriptions, &descriptions)
		if err != nil {
			log.Error().Str("descriptions", flagDescriptions).Err(err).Msg("could not load operation descriptions")
			return failure
		}

		for _, tx := range block.Transactions {
			matches, err := parse.MatchOperations(descriptions, tx.Operations)
			if err != nil {
				log.Error().Str("transaction", tx.ID.Hash).Err(err).Msg("transaction does not match operation descriptions")
				code = failure
				continue
			}
			log.Info().Str("transaction", tx.ID.Hash).Int("matches", len(matches)).Msg("transaction matches operation descriptions")
		}
	}

	if flagIntent != "" {
		var intents []object.Operation
		err = decodeFile(codec, flagIntent, &intents)
		if err != nil {
			log.Error().Str("intent", flagIntent).Err(err).Msg("could not load intended operations")
			return failure
		}

		var observed []object.Operation
		for _, tx := range block.Transactions {
			observed = append(observed, tx.Operations...)
		}

		err = parse.ExpectedOperations(intents, observed, flagErrExtra, flagConfirmSuccess)
		if err != nil {
			log.Error().Err(err).Msg("block does not match intended operations")
			code = failure
		} else {
			log.Info().Int("intents", len(intents)).Msg("block matches intended operations")
		}
	}

	if flagPayloads != "" {
		var payloads []object.SigningPayload
		err = decodeFile(codec, flagPayloads, &payloads)
		if err != nil {
			log.Error().Str("payloads", flagPayloads).Err(err).Msg("could not load signing payloads")
			return failure
		}

		signers := make([]identifier.Account, 0, len(flagSigners))
		for _, address := range flagSigners {
			signers = append(signers, identifier.Account{Address: address})
		}

		err = parse.ExpectedSigners(payloads, signers)
		if err != nil {
			log.Error().Err(err).Msg("signers do not match signing payloads")
			code = failure
		} else {
			log.Info().Int("signers", len(signers)).Msg("signers match signing payloads")
		}
	}

	return code
}

func exemptTypes(types []string) parser.ExemptFunc {
	exempt := make(map[string]struct{}, len(types))
	for _, typ := range types {
		exempt[typ] = struct{}{}
	}
	return func(op object.Operation) bool {
		_, ok := exempt[op.Type]
		return ok
	}
}
