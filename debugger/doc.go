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

// Package debugger offers a minimal REPL for the emulated C64: single
// instruction stepping, PC breakpoints, register and memory inspection, and
// a "graph" command that dumps the live Machine's struct graph to a
// Graphviz .dot file via memviz.
//
// Interaction is through a Terminal, an interface satisfied by both a
// go:pkg/term-backed interactive terminal and a plain io.Reader/io.Writer
// pair (used for scripted or headless sessions). Initialise with NewDebugger
// and drive it with Run.
package debugger
