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

// Error descriptions for common errors.
const (
	// Description shape errors.
	descriptionsInvalid = "invalid operation descriptions"
	operationsEmpty     = "no operations to match"

	// Account match errors.
	accountMissing           = "account is missing"
	subAccountMissing        = "sub-account is missing"
	subAccountPopulated      = "sub-account is populated"
	subAccountAddressInvalid = "unexpected sub-account address"

	// Amount match errors.
	amountMissing         = "amount is missing"
	amountPopulated       = "amount is populated"
	amountSignInvalid     = "unexpected amount sign"
	amountCurrencyInvalid = "unexpected amount currency"
	amountUnparseable     = "could not parse amount"

	// Metadata match errors.
	metadataKeyMissing = "metadata key is missing"
	metadataKindWrong  = "unexpected metadata value kind"

	// Coin action errors.
	coinChangeMissing = "coin change is missing"
	coinActionInvalid = "unexpected coin action"

	// Match result errors.
	operationUnmatched   = "unable to match operation"
	descriptionUnmatched = "unable to find match for operation description"

	// Comparison errors.
	matchIndexInvalid        = "match index out of range"
	matchIndexNil            = "match index is nil"
	amountsUnequal           = "amounts are not equal"
	addressesUnequal         = "addresses are not equal"
	addressMissing           = "operation has no account to compare"
	oppositePairInvalid      = "opposite amounts comparison requires two indices"
	oppositeSideEmpty        = "opposite amounts comparison side has no operations"
	oppositeSameSign         = "opposite amounts have the same sign"
	oppositeMagnitudeUnequal = "opposite amounts have different absolute values"
	oppositeZeroInvalid      = "amounts are neither opposite nor zero"

	// Comparison contexts, used to wrap the errors above.
	equalAmountsContext        = "equal amounts comparison error"
	oppositeAmountsContext     = "opposite amounts comparison error"
	oppositeZeroAmountsContext = "opposite or zero amounts comparison error"
	equalAddressesContext      = "equal addresses comparison error"

	// Reconciliation errors.
	intentAccountMismatch = "intended account did not match observed account"
	intentAmountMismatch  = "intended amount did not match observed amount"
	intentTypeMismatch    = "intended type did not match observed type"
	intentExtraOperation  = "found extra operation"
	intentUnmatched       = "could not match intended operation"
	intentUnsuccessful    = "matched operation was not successful"
	signerUnexpected      = "unexpected signer"
	signerMissing         = "missing signer"
)
