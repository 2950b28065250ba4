package diskimage_test

import (
	"testing"

	"github.com/jetsetilly/go64/diskimage"
)

func TestSectorsPerTrack(t *testing.T) {
	tests := []struct {
		track int
		want  int
	}{
		{1, 21},
		{17, 21},
		{18, 19},
		{24, 19},
		{25, 18},
		{30, 18},
		{31, 17},
		{35, 17},
		{0, 0},
		{36, 0},
	}
	for _, tc := range tests {
		if got := diskimage.SectorsPerTrack(tc.track); got != tc.want {
			t.Errorf("SectorsPerTrack(%d) = %d, want %d", tc.track, got, tc.want)
		}
	}
}

func standardImage() []byte {
	data := make([]byte, 174848)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}

func TestFromD64BytesRejectsWrongSize(t *testing.T) {
	if _, err := diskimage.FromD64Bytes(make([]byte, 100)); err == nil {
		t.Fatalf("expected an error for an undersized image")
	}
}

func TestReadSectorFirstAndLast(t *testing.T) {
	d, err := diskimage.FromD64Bytes(standardImage())
	if err != nil {
		t.Fatalf("FromD64Bytes: %v", err)
	}

	first, err := d.ReadSector(1, 0)
	if err != nil {
		t.Fatalf("ReadSector(1, 0): %v", err)
	}
	if len(first) != 256 {
		t.Fatalf("sector length = %d, want 256", len(first))
	}
	if first[0] != 0 {
		t.Errorf("first sector's first byte = %d, want 0", first[0])
	}

	if _, err := d.ReadSector(35, 17); err == nil {
		t.Errorf("expected an out-of-range error for sector 17 on track 35 (only 17 sectors)")
	}
}

func TestReadSectorUnknownTrack(t *testing.T) {
	d, err := diskimage.FromD64Bytes(standardImage())
	if err != nil {
		t.Fatalf("FromD64Bytes: %v", err)
	}
	if _, err := d.ReadSector(40, 0); err == nil {
		t.Errorf("expected an error reading a track beyond 35")
	}
}
