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

// Package fs collects the handful of filesystem path helpers the rest of the
// emulation needs: resolving a user-supplied path (which may start with "~")
// to an absolute one.
package fs

import (
	"os"
	"path/filepath"
	"strings"
)

// Abs returns the absolute path for pth, expanding a leading "~" to the
// user's home directory first.
func Abs(pth string) (string, error) {
	if pth == "~" || strings.HasPrefix(pth, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		pth = filepath.Join(home, strings.TrimPrefix(pth, "~"))
	}
	return filepath.Abs(pth)
}
