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

import "errors"

// Failure classes reported by Extract and Merge. Callers match with
// errors.Is; plain filesystem errors pass through unwrapped.
var (
	// ErrParse: the input is not valid JSON, or a compressed container
	// could not be decoded.
	ErrParse = errors.New("parse error")
	// ErrFormat: valid JSON with a missing or mistyped required field.
	ErrFormat = errors.New("format error")
	// ErrConfig: invalid chunking parameters.
	ErrConfig = errors.New("config error")
	// ErrMissingFile: an expected header or chunk file is absent.
	ErrMissingFile = errors.New("missing file")
	// ErrIntegrity: the chunk set is inconsistent (gaps, overlaps,
	// duplicate indexes, or count mismatches).
	ErrIntegrity = errors.New("integrity error")
)
