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

package memory

// processorPort models the 6510's built-in I/O port at $0000 (data
// direction register) and $0001 (port data), whose low three bits control
// ROM/IO bank visibility. Bits configured as input (ddr bit clear) read back
// as 1, matching the real port's external pull-ups; bits configured as
// output read back whatever was last written.
type processorPort struct {
	ddr  uint8
	data uint8
}

// reset matches the 6510's documented power-on state: DDR floats mostly to
// output, port latched to show BASIC+KERNAL+IO visible.
func (p *processorPort) reset() {
	p.ddr = 0x2f
	p.data = 0x37
}

func (p *processorPort) readDDR() uint8 { return p.ddr }

func (p *processorPort) writeDDR(v uint8) { p.ddr = v }

func (p *processorPort) writeData(v uint8) { p.data = v }

// readData returns the externally observable port value: output bits show
// the latched data, input bits float high.
func (p *processorPort) readData() uint8 {
	return (p.data & p.ddr) | (^p.ddr)
}

func (p *processorPort) loram() bool  { return p.readData()&0x01 != 0 }
func (p *processorPort) hiram() bool  { return p.readData()&0x02 != 0 }
func (p *processorPort) charen() bool { return p.readData()&0x04 != 0 }
