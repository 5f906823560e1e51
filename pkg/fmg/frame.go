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
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pierrec/lz4"
)

// Mod packs for the old-gen games ship unpacked FMG JSON inside a small lz4
// container to keep distribution size down: magic, container version, then
// the compressed and raw block sizes, then a single lz4 block. When the
// block would not shrink it is stored as-is and both sizes are equal.
const (
	// Magic is the magic number of the compressed document container
	// ("FMGZ" little-endian).
	Magic int32 = 0x5a474d46
	// Ver is the container version number.
	Ver int32 = 0x00000001
)

// IsFramed reports whether data starts with the container magic.
func IsFramed(data []byte) bool {
	return len(data) >= 4 && int32(binary.LittleEndian.Uint32(data)) == Magic
}

// EncodeFrame compresses data into one container and writes it to w.
func EncodeFrame(w io.Writer, data []byte) error {
	dst := make([]byte, len(data))
	n, err := lz4.CompressBlock(data, dst, make([]int, 1<<16))
	if err != nil {
		return err
	}

	payload := dst[:n]
	sizeCom := int32(n)
	// lz4.CompressBlock returns 0 if the data is not compressible.
	if n == 0 {
		payload = data
		sizeCom = int32(len(data))
	}

	for _, v := range []int32{Magic, Ver, sizeCom, int32(len(data))} {
		if err := writeInt32(w, v); err != nil {
			return err
		}
	}
	_, err = w.Write(payload)
	return err
}

// DecodeFrame reads one container from r and returns the raw document
// bytes. Any malformation reports ErrParse, the same class as invalid JSON.
func DecodeFrame(r io.Reader) ([]byte, error) {
	m, err := readInt32(r)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to read container magic: %v", ErrParse, err)
	}
	if m != Magic {
		return nil, fmt.Errorf("%w: incorrect container magic: %#x", ErrParse, m)
	}

	v, err := readInt32(r)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to read container version: %v", ErrParse, err)
	}
	if v != Ver {
		return nil, fmt.Errorf("%w: unsupported container version: %#x", ErrParse, v)
	}

	sizeCom, err := readInt32(r)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to read compressed size: %v", ErrParse, err)
	}
	sizeRaw, err := readInt32(r)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to read raw size: %v", ErrParse, err)
	}
	if sizeCom < 0 || sizeRaw < 0 {
		return nil, fmt.Errorf("%w: negative container size", ErrParse)
	}

	payload := make([]byte, sizeCom)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("%w: truncated container: %v", ErrParse, err)
	}

	// Stored block: the data was not compressible.
	if sizeCom == sizeRaw {
		return payload, nil
	}

	raw := make([]byte, sizeRaw)
	n, err := lz4.UncompressBlock(payload, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to decompress container: %v", ErrParse, err)
	}
	if int32(n) != sizeRaw {
		return nil, fmt.Errorf("%w: expecting %d bytes, read %d", ErrParse, sizeRaw, n)
	}
	return raw, nil
}

// readInt32 reads an int32 from r.
func readInt32(r io.Reader) (int32, error) {
	var v int32

	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return 0, err
	}

	return v, nil
}

// writeInt32 writes an int32 to w.
func writeInt32(w io.Writer, v int32) error {
	return binary.Write(w, binary.LittleEndian, v)
}
