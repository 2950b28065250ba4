package cartridgeloader

import (
	"encoding/binary"
	"testing"

	"github.com/jetsetilly/go64/hardware/memory/cartridge"
)

// buildCRT assembles a minimal but valid CRT image: a 64-byte header
// followed by one CHIP packet wrapping rom.
func buildCRT(hardwareType uint16, exrom, game byte, rom []byte) []byte {
	header := make([]byte, 64)
	copy(header[0:16], crtSignature)
	binary.BigEndian.PutUint32(header[16:20], 64)
	binary.BigEndian.PutUint16(header[20:22], 0x0100) // version, unchecked
	binary.BigEndian.PutUint16(header[22:24], hardwareType)
	header[24] = exrom
	header[25] = game
	copy(header[32:], "TEST CARTRIDGE")

	packet := make([]byte, 16+len(rom))
	copy(packet[0:4], "CHIP")
	binary.BigEndian.PutUint32(packet[4:8], uint32(16+len(rom)))
	binary.BigEndian.PutUint16(packet[8:10], 0)  // CHIP type: ROM
	binary.BigEndian.PutUint16(packet[10:12], 0) // bank 0
	binary.BigEndian.PutUint16(packet[12:14], 0x8000)
	binary.BigEndian.PutUint16(packet[14:16], uint16(len(rom)))
	copy(packet[16:], rom)

	return append(header, packet...)
}

func TestParseCRTStandard16k(t *testing.T) {
	rom := make([]byte, 16384)
	rom[0] = 0xAA

	data := buildCRT(0, 0, 0, rom)

	parsed, err := ParseCRT(data)
	if err != nil {
		t.Fatalf("ParseCRT: %v", err)
	}
	if parsed.Kind != cartridge.KindStandard16k {
		t.Errorf("Kind = %v, want KindStandard16k", parsed.Kind)
	}
	if parsed.Name != "TEST CARTRIDGE" {
		t.Errorf("Name = %q, want %q", parsed.Name, "TEST CARTRIDGE")
	}
	if len(parsed.Banks) != 1 {
		t.Fatalf("len(Banks) = %d, want 1", len(parsed.Banks))
	}
	if parsed.Banks[0][0] != 0xAA {
		t.Errorf("bank 0 first byte = %#02x, want $aa", parsed.Banks[0][0])
	}
}

func TestParseCRTMagicDesk(t *testing.T) {
	rom := make([]byte, 8192)
	data := buildCRT(19, 0, 0, rom)

	parsed, err := ParseCRT(data)
	if err != nil {
		t.Fatalf("ParseCRT: %v", err)
	}
	if parsed.Kind != cartridge.KindMagicDesk {
		t.Errorf("Kind = %v, want KindMagicDesk", parsed.Kind)
	}
}

func TestParseCRTUnrecognisedHardwareFallsBackToKindNone(t *testing.T) {
	rom := make([]byte, 8192)
	data := buildCRT(255, 0, 0, rom)

	parsed, err := ParseCRT(data)
	if err != nil {
		t.Fatalf("ParseCRT: %v", err)
	}
	if parsed.Kind != cartridge.KindNone {
		t.Errorf("Kind = %v, want KindNone for an unrecognised hardware type", parsed.Kind)
	}
}

func TestParseCRTRejectsBadSignature(t *testing.T) {
	data := make([]byte, 64)
	copy(data[0:16], "NOT A CARTRIDGE ")
	if _, err := ParseCRT(data); err == nil {
		t.Errorf("expected an error for a bad signature")
	}
}

func TestParseCRTRejectsTruncatedChipPacket(t *testing.T) {
	data := buildCRT(0, 0, 0, make([]byte, 16384))
	data = data[:len(data)-10] // truncate the CHIP packet's ROM bytes

	if _, err := ParseCRT(data); err == nil {
		t.Errorf("expected an error for a truncated CHIP packet")
	}
}
