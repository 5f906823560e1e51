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
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Null993/DS3-ModLocalizationExtractor/pkg/fmg"
)

func TestFrameRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{
			name: "compressible payload",
			data: bytes.Repeat([]byte(`{"Text":"You Died"},`), 200),
		},
		{
			name: "short payload stored raw",
			data: []byte(`{"a":1}`),
		},
		{
			name: "empty payload",
			data: []byte{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, fmg.EncodeFrame(&buf, tt.data))

			assert.True(t, fmg.IsFramed(buf.Bytes()))

			got, err := fmg.DecodeFrame(bytes.NewReader(buf.Bytes()))
			require.NoError(t, err)
			assert.Equal(t, tt.data, got)
		})
	}
}

func TestDecodeFrameErrors(t *testing.T) {
	frame := func(t *testing.T, data []byte) []byte {
		t.Helper()
		var buf bytes.Buffer
		require.NoError(t, fmg.EncodeFrame(&buf, data))
		return buf.Bytes()
	}

	tests := []struct {
		name  string
		input func(t *testing.T) []byte
	}{
		{
			name: "wrong magic",
			input: func(t *testing.T) []byte {
				b := frame(t, []byte(`{}`))
				binary.LittleEndian.PutUint32(b, 0x12345678)
				return b
			},
		},
		{
			name: "wrong version",
			input: func(t *testing.T) []byte {
				b := frame(t, []byte(`{}`))
				binary.LittleEndian.PutUint32(b[4:], 99)
				return b
			},
		},
		{
			name: "truncated payload",
			input: func(t *testing.T) []byte {
				b := frame(t, bytes.Repeat([]byte("abcd1234"), 100))
				return b[:len(b)-10]
			},
		},
		{
			name: "truncated header",
			input: func(t *testing.T) []byte {
				return frame(t, []byte(`{}`))[:6]
			},
		},
		{
			name: "corrupted block",
			input: func(t *testing.T) []byte {
				b := frame(t, bytes.Repeat([]byte("abcd1234"), 100))
				for i := 16; i < len(b); i += 3 {
					b[i] ^= 0xff
				}
				return b
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fmg.DecodeFrame(bytes.NewReader(tt.input(t)))
			assert.ErrorIs(t, err, fmg.ErrParse)
		})
	}
}

func TestIsFramed(t *testing.T) {
	assert.False(t, fmg.IsFramed(nil))
	assert.False(t, fmg.IsFramed([]byte("{")))
	assert.False(t, fmg.IsFramed([]byte(`{"Name":"menu"}`)))

	var buf bytes.Buffer
	require.NoError(t, fmg.EncodeFrame(&buf, []byte(`{}`)))
	assert.True(t, fmg.IsFramed(buf.Bytes()))
}
