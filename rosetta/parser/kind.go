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
	"encoding/json"
	"fmt"
)

// Kind is the kind of a metadata value. Metadata is decoded from JSON, so the
// kinds mirror the JSON value types, except for arrays and null, which can't
// be required.
type Kind int

const (
	KindInvalid Kind = iota
	KindString
	KindNumber
	KindBoolean
	KindObject
)

var kindNames = map[Kind]string{
	KindString:  "string",
	KindNumber:  "number",
	KindBoolean: "boolean",
	KindObject:  "object",
}

// KindOf returns the kind of the given metadata value.
func KindOf(value interface{}) Kind {
	switch value.(type) {
	case string:
		return KindString
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, json.Number:
		return KindNumber
	case bool:
		return KindBoolean
	case map[string]interface{}:
		return KindObject
	default:
		return KindInvalid
	}
}

func (k Kind) String() string {
	name, ok := kindNames[k]
	if !ok {
		return "invalid"
	}
	return name
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	_, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("invalid value kind (kind: %d)", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown value kind (kind: %s)", string(text))
}
