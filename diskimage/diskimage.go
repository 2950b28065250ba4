// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
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

// Package diskimage defines the DiskImage interface the 1541 drive package
// consumes, plus a reference adapter for the D64 container format. D64
// container validation beyond what's needed to hand sector bytes to the
// drive is out of scope, per spec's non-goals.
package diskimage

import (
	"github.com/jetsetilly/go64/errors"
)

const sectorSize = 256

// sectorsPerZone gives the sector count for each of the D64 format's four
// speed zones, indexed by zone (0 = tracks 31-35, 1 = 25-30, 2 = 18-24,
// 3 = 1-17), matching the drive's GCR bit-rate selection order.
var sectorsPerZone = [4]int{17, 18, 19, 21}

// zoneOf returns the zone index (0-3) for a 1-based track number.
func zoneOf(track int) int {
	switch {
	case track >= 31:
		return 0
	case track >= 25:
		return 1
	case track >= 18:
		return 2
	default:
		return 3
	}
}

// SectorsPerTrack returns the D64 sector count for a 1-based track number
// (1-35), per the format's four speed zones.
func SectorsPerTrack(track int) int {
	if track < 1 || track > 35 {
		return 0
	}
	return sectorsPerZone[zoneOf(track)]
}

// DiskImage is the interface the drive package consumes; it never opens a
// file itself.
type DiskImage interface {
	ReadSector(track, sector int) ([]byte, error)
	SectorsPerTrack(track int) int
}

// D64 is a reference DiskImage backed by a raw 174,848 (or 175,531 with a
// trailing error-info block) byte D64 image held entirely in memory.
type D64 struct {
	data   []byte
	errors []byte // optional per-sector error codes
}

const standardD64Size = 174848
const errorBlockD64Size = 175531

// FromD64Bytes wraps a raw D64 image. It validates only the overall size,
// not directory/BAM contents, since container validation beyond handing
// sector bytes to the drive is explicitly out of scope.
func FromD64Bytes(data []byte) (*D64, error) {
	switch len(data) {
	case standardD64Size:
		return &D64{data: data}, nil
	case errorBlockD64Size:
		return &D64{data: data[:standardD64Size], errors: data[standardD64Size:]}, nil
	}
	return nil, errors.Errorf(errors.DiskImageError, "unrecognised D64 size (%d bytes)", len(data))
}

// trackOffset returns the byte offset of the first sector of track (1-35).
func trackOffset(track int) int {
	offset := 0
	for t := 1; t < track; t++ {
		offset += SectorsPerTrack(t) * sectorSize
	}
	return offset
}

// ReadSector implements DiskImage.
func (d *D64) ReadSector(track, sector int) ([]byte, error) {
	n := SectorsPerTrack(track)
	if n == 0 || sector < 0 || sector >= n {
		return nil, errors.Errorf(errors.DiskSectorOOB, track, sector)
	}
	off := trackOffset(track) + sector*sectorSize
	return d.data[off : off+sectorSize], nil
}

// SectorsPerTrack implements DiskImage.
func (d *D64) SectorsPerTrack(track int) int {
	return SectorsPerTrack(track)
}
