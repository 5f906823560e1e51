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

package fmg_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Null993/DS3-ModLocalizationExtractor/pkg/fmg"
)

func strp(s string) *string { return &s }

// sampleDocument builds a document with n entries. Every seventh entry has
// null text, the way real menu FMGs carry placeholder slots.
func sampleDocument(n int) *fmg.Document {
	entries := make([]fmg.Entry, n)
	for i := range entries {
		entries[i] = fmg.Entry{ID: int64(1000 + i*10)}
		if i%7 != 0 {
			entries[i].Text = strp(fmt.Sprintf("line %d", i))
		}
	}
	return &fmg.Document{
		Name: "GR_MenuText",
		ID:   200,
		Fmg: fmg.Fmg{
			Name:        "TalkMsg",
			Version:     []byte(`2`),
			BigEndian:   []byte(`false`),
			Unicode:     []byte(`true`),
			Compression: []byte(`"DCX_DFLT_10000_44_9"`),
			Entries:     entries,
		},
	}
}

func TestParseDocument(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:  "minimal valid document",
			input: `{"Name":"menu","ID":1,"Fmg":{"Name":"m","Entries":[]}}`,
		},
		{
			name:  "entries with null text",
			input: `{"Name":"menu","ID":1,"Fmg":{"Name":"m","Entries":[{"ID":10,"Text":null}]}}`,
		},
		{
			name:    "not JSON at all",
			input:   `{"Name": "menu",`,
			wantErr: fmg.ErrParse,
		},
		{
			name:    "missing Name",
			input:   `{"ID":1,"Fmg":{"Entries":[]}}`,
			wantErr: fmg.ErrFormat,
		},
		{
			name:    "missing ID",
			input:   `{"Name":"menu","Fmg":{"Entries":[]}}`,
			wantErr: fmg.ErrFormat,
		},
		{
			name:    "missing Fmg",
			input:   `{"Name":"menu","ID":1}`,
			wantErr: fmg.ErrFormat,
		},
		{
			name:    "missing Entries",
			input:   `{"Name":"menu","ID":1,"Fmg":{"Name":"m"}}`,
			wantErr: fmg.ErrFormat,
		},
		{
			name:    "Entries is not an array",
			input:   `{"Name":"menu","ID":1,"Fmg":{"Entries":{"ID":10}}}`,
			wantErr: fmg.ErrFormat,
		},
		{
			name:    "ID is a string",
			input:   `{"Name":"menu","ID":"one","Fmg":{"Entries":[]}}`,
			wantErr: fmg.ErrFormat,
		},
		{
			name:    "valid JSON of the wrong shape",
			input:   `[1, 2, 3]`,
			wantErr: fmg.ErrFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := fmg.ParseDocument([]byte(tt.input))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, doc)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, doc)
			}
		})
	}
}

func TestParseDocumentPreservesOpaqueMetadata(t *testing.T) {
	input := `{
		"Name": "item",
		"ID": 3,
		"Fmg": {
			"Name": "ItemName",
			"Version": 2.5,
			"BigEndian": false,
			"Unicode": true,
			"Compression": "DCX_DFLT_10000_44_9",
			"Entries": [{"ID": 1, "Text": "Estus Flask"}]
		}
	}`

	doc, err := fmg.ParseDocument([]byte(input))
	require.NoError(t, err)

	// The metadata types belong to the source format; the raw tokens must
	// survive untouched.
	assert.Equal(t, "2.5", string(doc.Fmg.Version))
	assert.Equal(t, "false", string(doc.Fmg.BigEndian))
	assert.Equal(t, "true", string(doc.Fmg.Unicode))
	assert.Equal(t, `"DCX_DFLT_10000_44_9"`, string(doc.Fmg.Compression))
}

func TestParseDocumentNullText(t *testing.T) {
	input := `{"Name":"m","ID":1,"Fmg":{"Entries":[{"ID":5,"Text":null},{"ID":6,"Text":""}]}}`

	doc, err := fmg.ParseDocument([]byte(input))
	require.NoError(t, err)
	require.Len(t, doc.Fmg.Entries, 2)

	assert.Nil(t, doc.Fmg.Entries[0].Text)
	require.NotNil(t, doc.Fmg.Entries[1].Text)
	assert.Equal(t, "", *doc.Fmg.Entries[1].Text)
}
