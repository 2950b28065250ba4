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
	"bytes"
	"crypto/md5"
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/jetsetilly/go64/hardware/memory/cartridge"
	"github.com/jetsetilly/go64/logger"
	"github.com/jetsetilly/go64/resources/fs"
)

// Loader abstracts all the ways a .crt image can be loaded into the
// emulation: a local file, an http(s) URL, or a []byte already in memory
// (typically go:embed'd into a frontend binary).
type Loader struct {
	io.ReadSeeker

	// the name to use for the cartridge, derived from the filename (or the
	// name given to NewLoaderFromData). the CRT header's own name field is
	// reported in Parsed.Name by Parse(), which falls back to this value
	// when the header's name is blank
	Name string

	// filename of the cartridge being loaded. for embedded data this is
	// whatever name was passed to NewLoaderFromData
	Filename string

	// expected hash of the loaded data. empty string means unchecked. after
	// a call to Open() this holds the hash of whatever was actually loaded
	HashSHA1 string
	HashMD5  string

	// raw file bytes. nil until Open() has been called, unless the loader
	// was created by NewLoaderFromData
	//
	// the pointer-to-a-slice construct allows a Loader passed by value to
	// still mutate the data a caller holds a reference to
	Data *[]byte

	data *bytes.Buffer

	// the mapper kind and ROM banks decoded from Data by Parse(). Populated
	// lazily so that Open() alone never needs to understand CRT framing.
	parsed *Parsed

	// whether the Loader was created with NewLoaderFromData()
	embedded bool
}

// NoFilename is returned by NewLoaderFromFilename when given an empty or
// all-whitespace filename.
var NoFilename = errors.New("no filename")

// NewLoaderFromFilename is the preferred way to build a Loader from a path
// or URL. The file isn't read until Open() is called.
func NewLoaderFromFilename(filename string) (Loader, error) {
	if strings.TrimSpace(filename) == "" {
		return Loader{}, fmt.Errorf("cartridgeloader: %w", NoFilename)
	}

	var err error
	filename, err = fs.Abs(filename)
	if err != nil {
		return Loader{}, fmt.Errorf("cartridgeloader: %w", err)
	}

	ld := Loader{Filename: filename}
	data := make([]byte, 0)
	ld.Data = &data
	ld.Name = NameFromFilename(filename)

	return ld, nil
}

// NewLoaderFromData builds a Loader from bytes already in memory, e.g. a
// go:embed'd reference cartridge image.
func NewLoaderFromData(name string, data []byte) (Loader, error) {
	if len(data) == 0 {
		return Loader{}, fmt.Errorf("cartridgeloader: embedded data is empty")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return Loader{}, fmt.Errorf("cartridgeloader: no name for embedded data")
	}

	ld := Loader{
		Filename: name,
		Name:     name,
		Data:     &data,
		data:     bytes.NewBuffer(data),
		embedded: true,
		HashSHA1: fmt.Sprintf("%x", sha1.Sum(data)),
		HashMD5:  fmt.Sprintf("%x", md5.Sum(data)),
	}

	return ld, nil
}

// Implements the io.Reader interface.
func (ld Loader) Read(p []byte) (int, error) {
	if ld.data == nil {
		return 0, io.EOF
	}
	return ld.data.Read(p)
}

// Implements the io.Seeker interface. The loader only ever reads a CRT image
// in full, so seeking is a no-op beyond reporting the current length.
func (ld Loader) Seek(offset int64, whence int) (int64, error) {
	return int64(len(*ld.Data)), nil
}

// Close is a no-op for file-backed loaders (nothing is kept open between
// calls) and is provided to satisfy io.Closer for symmetry with Open.
func (ld Loader) Close() error {
	return nil
}

// Open reads the cartridge data into memory, from a local file, an http(s)
// URL, or (for embedded loaders) nothing at all since the data is already
// resident.
func (ld *Loader) Open() error {
	if ld.embedded {
		return nil
	}

	if ld.Data != nil && len(*ld.Data) > 0 {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(ld.Filename); err == nil {
		scheme = u.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return fmt.Errorf("cartridgeloader: %w", err)
		}
		defer resp.Body.Close()

		var err2 error
		*ld.Data, err2 = io.ReadAll(resp.Body)
		if err2 != nil {
			return fmt.Errorf("cartridgeloader: %w", err2)
		}

	default:
		f, err := os.Open(ld.Filename)
		if err != nil {
			return fmt.Errorf("cartridgeloader: %w", err)
		}
		defer f.Close()

		*ld.Data, err = io.ReadAll(f)
		if err != nil {
			return fmt.Errorf("cartridgeloader: %w", err)
		}
	}

	ld.data = bytes.NewBuffer(*ld.Data)

	hash := fmt.Sprintf("%x", sha1.Sum(*ld.Data))
	if ld.HashSHA1 != "" && ld.HashSHA1 != hash {
		return fmt.Errorf("cartridgeloader: unexpected SHA1 hash value")
	}
	ld.HashSHA1 = hash

	hash = fmt.Sprintf("%x", md5.Sum(*ld.Data))
	if ld.HashMD5 != "" && ld.HashMD5 != hash {
		return fmt.Errorf("cartridgeloader: unexpected MD5 hash value")
	}
	ld.HashMD5 = hash

	logger.Logf("cartridgeloader", "loaded %s (%d bytes)", ld.Filename, len(*ld.Data))

	return nil
}

// Parse decodes the CRT framing in the data Open() read, caching the result.
// Safe to call repeatedly; only the first call does any work.
func (ld *Loader) Parse() (Parsed, error) {
	if ld.parsed != nil {
		return *ld.parsed, nil
	}

	if ld.Data == nil || len(*ld.Data) == 0 {
		return Parsed{}, fmt.Errorf("cartridgeloader: no data to parse, call Open() first")
	}

	p, err := ParseCRT(*ld.Data)
	if err != nil {
		return Parsed{}, fmt.Errorf("cartridgeloader: %w", err)
	}
	if p.Name == "" {
		p.Name = ld.Name
	}

	ld.parsed = &p

	return p, nil
}

// Cartridge is a convenience wrapper around Open/Parse/cartridge.New: it
// reads and decodes the image and hands back a ready-to-run *cartridge.Cartridge.
func (ld *Loader) Cartridge() (*cartridge.Cartridge, error) {
	if err := ld.Open(); err != nil {
		return nil, err
	}
	p, err := ld.Parse()
	if err != nil {
		return nil, err
	}
	return cartridge.New(p.Kind, p.Banks), nil
}
