// DS3-ModLocalizationExtractor: split and merge tool for FMG text JSON
// Copyright (C) 2026  Null993
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package fmg

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Document is one FMG wrapper as produced by external unpacking: display
// name, resource ID, and the message group itself.
type Document struct {
	Name string `json:"Name"`
	ID   int64  `json:"ID"`
	Fmg  Fmg    `json:"Fmg"`
}

// Fmg holds the ordered message entries plus scalar metadata whose types
// belong to the source format. The metadata fields are kept as raw JSON so
// they round-trip bit-for-bit whatever their type is.
type Fmg struct {
	Name        string          `json:"Name"`
	Version     json.RawMessage `json:"Version,omitempty"`
	BigEndian   json.RawMessage `json:"BigEndian,omitempty"`
	Unicode     json.RawMessage `json:"Unicode,omitempty"`
	Compression json.RawMessage `json:"Compression,omitempty"`
	Entries     []Entry         `json:"Entries"`
}

// Entry is one message. Text is a pointer so JSON null survives the round
// trip as null rather than collapsing into "".
type Entry struct {
	ID   int64   `json:"ID"`
	Text *string `json:"Text"`
}

// ParseDocument decodes a source document and checks that the fields the
// format requires are actually present. Invalid JSON reports ErrParse;
// well-formed JSON of the wrong shape reports ErrFormat.
func ParseDocument(data []byte) (*Document, error) {
	var probe struct {
		Name *string `json:"Name"`
		ID   *int64  `json:"ID"`
		Fmg  *struct {
			Entries *[]Entry `json:"Entries"`
		} `json:"Fmg"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, classifyJSONError(err)
	}
	switch {
	case probe.Name == nil:
		return nil, fmt.Errorf("%w: missing required field Name", ErrFormat)
	case probe.ID == nil:
		return nil, fmt.Errorf("%w: missing required field ID", ErrFormat)
	case probe.Fmg == nil:
		return nil, fmt.Errorf("%w: missing required field Fmg", ErrFormat)
	case probe.Fmg.Entries == nil:
		return nil, fmt.Errorf("%w: missing required field Fmg.Entries", ErrFormat)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, classifyJSONError(err)
	}
	return &doc, nil
}

// classifyJSONError maps a json.Unmarshal failure onto the parse/format
// split: syntax problems mean the bytes are not JSON at all, anything else
// means JSON of the wrong shape.
func classifyJSONError(err error) error {
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}
	return fmt.Errorf("%w: %v", ErrFormat, err)
}
