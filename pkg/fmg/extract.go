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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Options controls how Extract partitions the entry sequence.
type Options struct {
	// Split enables chunking; when false all entries land in one chunk
	// file.
	Split bool
	// MaxEntriesPerChunk is the chunk size when Split is set. Must be
	// positive; ignored otherwise.
	MaxEntriesPerChunk int
}

// Result lists the files Extract produced.
type Result struct {
	HeaderPath string
	ChunkPaths []string
}

// Extract reads the source document at sourcePath and writes 0_header.json
// plus one or more part_N.json files into outputDir. An empty outputDir
// defaults to "<source basename>_extracted" next to the source. Extraction
// is idempotent: a prior run's header and chunk files are replaced, and
// leftover higher-numbered chunks are removed.
//
// A source with zero entries still produces exactly one chunk file with
// Count 0, so a split directory always has at least one part.
func Extract(sourcePath, outputDir string, opts Options) (*Result, error) {
	if opts.Split && opts.MaxEntriesPerChunk <= 0 {
		return nil, fmt.Errorf("%w: max entries per chunk must be positive, got %d",
			ErrConfig, opts.MaxEntriesPerChunk)
	}

	doc, err := ReadDocument(sourcePath)
	if err != nil {
		return nil, err
	}

	if outputDir == "" {
		outputDir = defaultOutputDir(sourcePath)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, err
	}
	if err := removeStaleChunks(outputDir); err != nil {
		return nil, err
	}

	total := len(doc.Fmg.Entries)
	size := 0
	if opts.Split {
		size = opts.MaxEntriesPerChunk
	}
	metas := partition(total, size)

	header := buildHeader(doc, len(metas), size)

	res := &Result{ChunkPaths: make([]string, 0, len(metas))}
	for _, meta := range metas {
		texts := make([]*string, meta.Count)
		for i := 0; i < meta.Count; i++ {
			texts[i] = doc.Fmg.Entries[meta.StartIndex+i].Text
		}
		path := filepath.Join(outputDir, ChunkFileName(meta.ChunkIndex))
		if err := writeJSONFile(path, &Chunk{Meta: meta, Entries: texts}); err != nil {
			return nil, err
		}
		res.ChunkPaths = append(res.ChunkPaths, path)
	}

	res.HeaderPath = filepath.Join(outputDir, HeaderFileName)
	if err := writeJSONFile(res.HeaderPath, header); err != nil {
		return nil, err
	}
	return res, nil
}

// ReadDocument loads and parses a source document, transparently decoding
// the lz4 container when the file starts with its magic.
func ReadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if IsFramed(data) {
		if data, err = DecodeFrame(bytes.NewReader(data)); err != nil {
			return nil, err
		}
	}
	return ParseDocument(data)
}

// partition slices [0,total) into consecutive runs of at most size entries.
// size <= 0 means no splitting. There is always at least one chunk, even
// for an empty document.
func partition(total, size int) []ChunkMeta {
	if total == 0 {
		return []ChunkMeta{{ChunkIndex: 1, ChunkCount: 1}}
	}
	if size <= 0 || size > total {
		size = total
	}

	var metas []ChunkMeta
	for start := 0; start < total; start += size {
		count := size
		if start+count > total {
			count = total - start
		}
		metas = append(metas, ChunkMeta{
			ChunkIndex: len(metas) + 1,
			StartIndex: start,
			Count:      count,
		})
	}
	for i := range metas {
		metas[i].ChunkCount = len(metas)
	}
	return metas
}

// removeStaleChunks deletes chunk files from a previous extraction. A
// smaller re-run would otherwise leave orphaned high-numbered parts that
// merge rightly rejects.
func removeStaleChunks(dir string) error {
	stale, err := doublestar.FilepathGlob(filepath.Join(dir, chunkPattern))
	if err != nil {
		return err
	}
	for _, path := range stale {
		if err := os.Remove(path); err != nil {
			return err
		}
	}
	return nil
}

// defaultOutputDir mirrors the directory naming translators already know:
// game.json extracts into game_extracted next to it.
func defaultOutputDir(sourcePath string) string {
	base := filepath.Base(sourcePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(sourcePath), base+"_extracted")
}
