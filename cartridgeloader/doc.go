// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the gnu general public license as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package cartridgeloader reads .crt cartridge images from a file, an http(s)
// URL, or embedded data, and decodes their CHIP packets into the mapper kind
// and ROM banks the cartridge package's New constructor expects. It is a
// peer of hardware/memory/cartridge, not a part of it: the cartridge package
// knows nothing about .crt file framing, and this package knows nothing
// about bus timing or bank-switch semantics.
//
// # Hashes
//
// NewLoaderFromFilename() and NewLoaderFromData(), followed by Open(), also
// compute a SHA1 and MD5 hash of the raw file bytes, useful for matching a
// loaded image against a properties database.
package cartridgeloader
