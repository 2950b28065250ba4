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

package cartridgeloader

import (
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/go64/hardware/memory/cartridge"
)

const crtSignature = "C64 CARTRIDGE   "

// crtHardwareType is the 16-bit "hardware type" field from a CRT header. Only
// the handful of mappers the cartridge package actually implements are
// listed; anything else falls through to an error cartridge at New() time.
type crtHardwareType uint16

const (
	crtGeneric         crtHardwareType = 0
	crtFinalCartridge3 crtHardwareType = 3
	crtSimonsBasic     crtHardwareType = 4
	crtOcean           crtHardwareType = 5
	crtFunPlay         crtHardwareType = 7
	crtMagicDesk       crtHardwareType = 19
)

// Parsed is the result of parsing a CRT byte stream: a mapper kind plus its
// pre-split ROM banks, ready to be handed to cartridge.New.
type Parsed struct {
	Kind  cartridge.Kind
	Banks [][]byte
	Name  string
}

// ParseCRT decodes a complete .crt file image. It never itself fails on an
// unrecognised mapper: that case is reported as Kind == cartridge.KindNone,
// mirroring the error-cartridge fallback cartridge.New performs, so a caller
// can always proceed straight to cartridge.New(parsed.Kind, parsed.Banks).
func ParseCRT(data []byte) (Parsed, error) {
	if len(data) < 64 {
		return Parsed{}, fmt.Errorf("crt: file too short to contain a header (%d bytes)", len(data))
	}

	if string(data[0:16]) != crtSignature {
		return Parsed{}, fmt.Errorf("crt: missing %q signature", crtSignature)
	}

	headerLen := binary.BigEndian.Uint32(data[16:20])
	if int(headerLen) < 64 || int(headerLen) > len(data) {
		return Parsed{}, fmt.Errorf("crt: implausible header length (%d)", headerLen)
	}

	hardwareType := crtHardwareType(binary.BigEndian.Uint16(data[22:24]))
	exrom := data[24] != 0
	game := data[25] != 0

	name := string(data[32:64])
	if i := indexOfNull(name); i >= 0 {
		name = name[:i]
	}

	chips, err := parseCHIPPackets(data[headerLen:])
	if err != nil {
		return Parsed{}, err
	}

	kind := crtMapperKind(hardwareType, exrom, game)

	banks := make([][]byte, len(chips))
	for i, c := range chips {
		banks[i] = c.rom
	}

	return Parsed{Kind: kind, Banks: banks, Name: name}, nil
}

func indexOfNull(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return i
		}
	}
	return -1
}

type chipPacket struct {
	chipType uint16
	bank     uint16
	loadAddr uint16
	rom      []byte
}

// parseCHIPPackets walks the sequence of CHIP packets following the 64-byte
// (or longer) header, returning them in bank order.
func parseCHIPPackets(data []byte) ([]chipPacket, error) {
	var chips []chipPacket

	for len(data) > 0 {
		if len(data) < 16 {
			return nil, fmt.Errorf("crt: truncated CHIP packet header")
		}
		if string(data[0:4]) != "CHIP" {
			return nil, fmt.Errorf("crt: expected CHIP signature, found %q", data[0:4])
		}

		packetLen := binary.BigEndian.Uint32(data[4:8])
		if int(packetLen) < 16 || int(packetLen) > len(data) {
			return nil, fmt.Errorf("crt: implausible CHIP packet length (%d)", packetLen)
		}

		chipType := binary.BigEndian.Uint16(data[8:10])
		bank := binary.BigEndian.Uint16(data[10:12])
		loadAddr := binary.BigEndian.Uint16(data[12:14])
		romSize := binary.BigEndian.Uint16(data[14:16])

		romStart := 16
		romEnd := romStart + int(romSize)
		if romEnd > int(packetLen) || romEnd > len(data) {
			return nil, fmt.Errorf("crt: CHIP packet ROM size (%d) overruns packet", romSize)
		}

		rom := make([]byte, romSize)
		copy(rom, data[romStart:romEnd])

		chips = append(chips, chipPacket{
			chipType: chipType,
			bank:     bank,
			loadAddr: loadAddr,
			rom:      rom,
		})

		data = data[packetLen:]
	}

	if len(chips) == 0 {
		return nil, fmt.Errorf("crt: no CHIP packets found")
	}

	return chips, nil
}

// crtMapperKind translates a CRT hardware-type code, together with the
// EXROM/GAME lines, into the mapper kind cartridge.New understands. An
// unrecognised hardware type yields KindNone, which cartridge.New turns into
// an error cartridge rather than a hard failure.
func crtMapperKind(hw crtHardwareType, exrom, game bool) cartridge.Kind {
	switch hw {
	case crtGeneric:
		switch {
		case exrom && !game:
			return cartridge.KindUltimax
		case !exrom && game:
			return cartridge.KindStandard8k
		case !exrom && !game:
			return cartridge.KindStandard16k
		default:
			return cartridge.KindNone
		}
	case crtMagicDesk:
		return cartridge.KindMagicDesk
	case crtSimonsBasic:
		return cartridge.KindSimonsBasic
	case crtFinalCartridge3:
		return cartridge.KindFinalCartridge3
	case crtOcean:
		return cartridge.KindOcean
	case crtFunPlay:
		return cartridge.KindFunPlay
	}
	return cartridge.KindNone
}
