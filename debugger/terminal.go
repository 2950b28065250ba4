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

package debugger

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/term"
)

// Terminal is the debugger's view of its input/output device. The REPL
// itself never touches an os.File directly so that a scripted or test
// session can drive it through a plain io.Reader/io.Writer pair instead of
// a real tty.
type Terminal interface {
	Prompt(prompt string) (string, error)
	Output(s string)
	Close() error
}

// plainTerminal is a Terminal backed by any reader/writer pair: stdin/stdout
// for a non-interactive session, or an in-memory buffer in tests.
type plainTerminal struct {
	in  *bufio.Scanner
	out io.Writer
}

// newPlainTerminal wraps r/w as a Terminal without touching tty state.
func newPlainTerminal(r io.Reader, w io.Writer) *plainTerminal {
	return &plainTerminal{in: bufio.NewScanner(r), out: w}
}

// NewScriptedTerminal wraps r/w as a Terminal for a non-interactive session:
// a scripted command file, or an in-memory buffer in tests.
func NewScriptedTerminal(r io.Reader, w io.Writer) Terminal {
	return newPlainTerminal(r, w)
}

func (t *plainTerminal) Prompt(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)
	if !t.in.Scan() {
		if err := t.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return t.in.Text(), nil
}

func (t *plainTerminal) Output(s string) {
	fmt.Fprint(t.out, s)
}

func (t *plainTerminal) Close() error {
	return nil
}

// ttyTerminal is a Terminal backed by the controlling terminal, opened via
// pkg/term the same way the teacher's easyterm package does for its own
// debugger front end.
type ttyTerminal struct {
	tty *term.Term
	*plainTerminal
}

// NewTTYTerminal opens the named tty (e.g. "/dev/tty") for interactive use.
func NewTTYTerminal(name string) (Terminal, error) {
	tty, err := term.Open(name)
	if err != nil {
		return nil, fmt.Errorf("debugger: %w", err)
	}
	return &ttyTerminal{tty: tty, plainTerminal: newPlainTerminal(tty, tty)}, nil
}

func (t *ttyTerminal) Close() error {
	return t.tty.Restore()
}
