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

package amount

import (
	"fmt"

	"github.com/optakt/rosetta-parser/rosetta/object"
)

// Sign is a requirement on the sign of an amount value. The zero value places
// no requirement on the sign.
type Sign int

const (
	Any Sign = iota
	Negative
	Positive
)

const (
	anyName      = "any"
	negativeName = "negative"
	positiveName = "positive"
)

// ParseSign parses the textual representation of a sign.
func ParseSign(name string) (Sign, error) {
	switch name {
	case "", anyName:
		return Any, nil
	case negativeName:
		return Negative, nil
	case positiveName:
		return Positive, nil
	default:
		return Any, fmt.Errorf("unknown amount sign (sign: %s)", name)
	}
}

// Match returns whether the value of the given amount satisfies the sign. Zero
// values are neither negative nor positive, and unparseable values only
// satisfy Any.
func (s Sign) Match(amount *object.Amount) bool {
	if s == Any {
		return true
	}

	value, err := Value(amount)
	if err != nil {
		return false
	}

	switch s {
	case Negative:
		return value.Sign() == -1
	case Positive:
		return value.Sign() == 1
	default:
		return false
	}
}

func (s Sign) String() string {
	switch s {
	case Any:
		return anyName
	case Negative:
		return negativeName
	case Positive:
		return positiveName
	default:
		return fmt.Sprintf("invalid(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Sign) MarshalText() ([]byte, error) {
	if s < Any || s > Positive {
		return nil, fmt.Errorf("invalid amount sign (sign: %d)", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Sign) UnmarshalText(text []byte) error {
	sign, err := ParseSign(string(text))
	if err != nil {
		return err
	}
	*s = sign
	return nil
}
