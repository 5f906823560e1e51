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

/*
fmgsplit splits an unpacked FMG text JSON into a translator-friendly
directory and merges it back.

Extraction writes 0_header.json (all structural metadata plus the entry ID
sequence) and part_N.json chunk files that hold only text, so translators
never touch an ID. Merging validates the chunk set and reassembles a
document identical to the source except for edited text.

Usage:

	fmgsplit extract <source.json> [-o dir] [--split] [-m max]
	fmgsplit merge <extracted-dir> [-o out.json] [--compress]

Defaults for chunk size, splitting, and compressed output can be placed in
fmgsplit.yaml in the working directory or ~/.config/fmgsplit/config.yaml.
*/
package main
