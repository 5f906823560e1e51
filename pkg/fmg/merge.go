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
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// MergeOptions controls the output of Merge.
type MergeOptions struct {
	// Compress writes the merged document as an lz4 container instead of
	// plain JSON.
	Compress bool
}

// Merge reassembles the original document from a split directory and
// writes it to outputPath. An empty outputPath defaults to
// "<extractedDir>_merged.json" (or .fmgz when compressing) next to the
// directory. The whole chunk set is validated before anything is written;
// on any error no output file is produced.
func Merge(extractedDir, outputPath string, opts MergeOptions) (string, error) {
	header, err := readHeader(extractedDir)
	if err != nil {
		return "", err
	}

	chunks, err := readChunks(extractedDir)
	if err != nil {
		return "", err
	}
	sort.Slice(chunks, func(i, j int) bool {
		return chunks[i].Meta.ChunkIndex < chunks[j].Meta.ChunkIndex
	})
	if err := validateChunkSet(header, chunks); err != nil {
		return "", err
	}

	texts := make([]*string, 0, header.Meta.TotalEntries)
	for _, c := range chunks {
		texts = append(texts, c.Entries...)
	}

	// Position i's text pairs with position i's ID.
	entries := make([]Entry, len(header.EntryIDs))
	for i, id := range header.EntryIDs {
		entries[i] = Entry{ID: id, Text: texts[i]}
	}

	doc := &Document{
		Name: header.Meta.Name,
		ID:   header.Meta.ID,
		Fmg: Fmg{
			Name:        header.Meta.FmgName,
			Version:     header.Meta.FmgVersion,
			BigEndian:   header.Meta.FmgBigEndian,
			Unicode:     header.Meta.FmgUnicode,
			Compression: header.Meta.FmgCompression,
			Entries:     entries,
		},
	}

	if outputPath == "" {
		outputPath = defaultOutputPath(extractedDir, opts.Compress)
	}
	if err := writeDocument(outputPath, doc, opts.Compress); err != nil {
		return "", err
	}
	return outputPath, nil
}

func readHeader(dir string) (*Header, error) {
	path := filepath.Join(dir, HeaderFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s not found in %s", ErrMissingFile, HeaderFileName, dir)
		}
		return nil, err
	}

	var header Header
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, fmt.Errorf("header %s: %w", path, classifyJSONError(err))
	}
	return &header, nil
}

func readChunks(dir string) ([]Chunk, error) {
	paths, err := doublestar.FilepathGlob(filepath.Join(dir, chunkPattern))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no %s files found in %s", ErrMissingFile, chunkPattern, dir)
	}

	chunks := make([]Chunk, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var c Chunk
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("chunk %s: %w", path, classifyJSONError(err))
		}
		chunks = append(chunks, c)
	}
	return chunks, nil
}

func writeDocument(path string, doc *Document, compress bool) error {
	data, err := encodeJSON(doc)
	if err != nil {
		return err
	}
	if compress {
		var buf bytes.Buffer
		if err := EncodeFrame(&buf, data); err != nil {
			return err
		}
		data = buf.Bytes()
	}
	return writeFileAtomic(path, data)
}

func defaultOutputPath(extractedDir string, compress bool) string {
	ext := ".json"
	if compress {
		ext = ".fmgz"
	}
	clean := filepath.Clean(extractedDir)
	return filepath.Join(filepath.Dir(clean), filepath.Base(clean)+"_merged"+ext)
}
