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
	"fmt"
)

const (
	// HeaderFileName is the single header file in a split directory.
	HeaderFileName = "0_header.json"
	// chunkPattern matches every chunk file in a split directory.
	chunkPattern = "part_*.json"
)

// ChunkFileName returns the file name for the 1-based chunk index.
func ChunkFileName(index int) string {
	return fmt.Sprintf("part_%d.json", index)
}

// Header is 0_header.json: everything from the source document except the
// text payload. Translators only ever touch chunk files, so the entry IDs
// live here where they cannot be corrupted.
type Header struct {
	Meta     HeaderMeta `json:"Meta"`
	EntryIDs []int64    `json:"EntryIDs"`
}

// HeaderMeta carries the wrapper fields verbatim plus the bookkeeping merge
// needs to validate chunk completeness. ChunkSize is the per-chunk entry
// limit used at extraction time; 0 means splitting was disabled.
type HeaderMeta struct {
	Name           string          `json:"Name"`
	ID             int64           `json:"ID"`
	FmgName        string          `json:"FmgName"`
	FmgVersion     json.RawMessage `json:"FmgVersion,omitempty"`
	FmgBigEndian   json.RawMessage `json:"FmgBigEndian,omitempty"`
	FmgUnicode     json.RawMessage `json:"FmgUnicode,omitempty"`
	FmgCompression json.RawMessage `json:"FmgCompression,omitempty"`
	TotalEntries   int             `json:"TotalEntries"`
	ChunkCount     int             `json:"ChunkCount"`
	ChunkSize      int             `json:"ChunkSize"`
}

// Chunk is one part_N.json: a contiguous run of text values, nothing else.
type Chunk struct {
	Meta    ChunkMeta `json:"Meta"`
	Entries []*string `json:"Entries"`
}

// ChunkMeta locates the chunk inside the full entry sequence.
type ChunkMeta struct {
	ChunkIndex int `json:"ChunkIndex"`
	ChunkCount int `json:"ChunkCount"`
	StartIndex int `json:"StartIndex"`
	Count      int `json:"Count"`
}

// buildHeader copies the non-text fields of doc and records the chunk
// layout chosen at extraction time.
func buildHeader(doc *Document, chunkCount, chunkSize int) *Header {
	ids := make([]int64, len(doc.Fmg.Entries))
	for i, e := range doc.Fmg.Entries {
		ids[i] = e.ID
	}
	return &Header{
		Meta: HeaderMeta{
			Name:           doc.Name,
			ID:             doc.ID,
			FmgName:        doc.Fmg.Name,
			FmgVersion:     doc.Fmg.Version,
			FmgBigEndian:   doc.Fmg.BigEndian,
			FmgUnicode:     doc.Fmg.Unicode,
			FmgCompression: doc.Fmg.Compression,
			TotalEntries:   len(doc.Fmg.Entries),
			ChunkCount:     chunkCount,
			ChunkSize:      chunkSize,
		},
		EntryIDs: ids,
	}
}

// validateChunkSet checks a ChunkIndex-sorted chunk set against the header:
// every index 1..ChunkCount present exactly once, ranges contiguous from 0
// with no gaps or overlaps, counts consistent with the recorded total.
func validateChunkSet(h *Header, chunks []Chunk) error {
	if len(h.EntryIDs) != h.Meta.TotalEntries {
		return fmt.Errorf("%w: header records %d entries but carries %d IDs",
			ErrIntegrity, h.Meta.TotalEntries, len(h.EntryIDs))
	}
	if len(chunks) != h.Meta.ChunkCount {
		return fmt.Errorf("%w: header expects %d chunk files, found %d",
			ErrIntegrity, h.Meta.ChunkCount, len(chunks))
	}

	offset := 0
	for i, c := range chunks {
		want := i + 1
		if c.Meta.ChunkIndex != want {
			return fmt.Errorf("%w: expected chunk index %d, found %d",
				ErrIntegrity, want, c.Meta.ChunkIndex)
		}
		if c.Meta.ChunkCount != h.Meta.ChunkCount {
			return fmt.Errorf("%w: chunk %d records chunk count %d, header says %d",
				ErrIntegrity, want, c.Meta.ChunkCount, h.Meta.ChunkCount)
		}
		if c.Meta.StartIndex != offset {
			return fmt.Errorf("%w: chunk %d starts at %d, expected %d",
				ErrIntegrity, want, c.Meta.StartIndex, offset)
		}
		if c.Meta.Count < 0 || c.Meta.Count != len(c.Entries) {
			return fmt.Errorf("%w: chunk %d declares %d entries but holds %d",
				ErrIntegrity, want, c.Meta.Count, len(c.Entries))
		}
		offset += c.Meta.Count
	}
	if offset != h.Meta.TotalEntries {
		return fmt.Errorf("%w: chunks cover %d entries, header expects %d",
			ErrIntegrity, offset, h.Meta.TotalEntries)
	}
	return nil
}
