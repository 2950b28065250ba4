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

// c64run is a thin SDL2 front end that drives a Machine and renders its
// published VIC-II snapshot. It is a peer consumer of the hardware package's
// public API, the same relationship the teacher's gui/sdlplay has to
// hardware.VCS: no rendering logic lives in the core packages themselves.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/go64/cartridgeloader"
	"github.com/jetsetilly/go64/diskimage"
	"github.com/jetsetilly/go64/hardware"
	"github.com/jetsetilly/go64/hardware/cpu/instructions"
	"github.com/jetsetilly/go64/hardware/drive"
	"github.com/jetsetilly/go64/hardware/vic"
	"github.com/jetsetilly/go64/logger"
)

const (
	screenWidth  = 320
	screenHeight = 200
)

func init() {
	// SDL's event pump and renderer calls must happen on the thread that
	// created the window.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var (
		basicPath  = flag.String("basic", "", "path to the 8K BASIC ROM image")
		kernalPath = flag.String("kernal", "", "path to the 8K KERNAL ROM image")
		charPath   = flag.String("char", "", "path to the 4K character ROM image")
		driveRom   = flag.String("1541rom", "", "path to the 1541's 16K DOS ROM image")
		cartPath   = flag.String("cart", "", "path to a .crt cartridge image")
		diskPath   = flag.String("disk", "", "path to a .d64 disk image")
		chipName   = flag.String("chip", "PAL", "VIC-II variant: PAL, NTSC or 6567R56A")
		scale      = flag.Int("scale", 2, "integer window scale factor")
	)
	flag.Parse()

	chip, ok := vic.ChipByName(*chipName)
	if !ok {
		return fmt.Errorf("unrecognised chip variant %q", *chipName)
	}

	roms := hardware.ROMs{
		Basic:  mustReadROM(*basicPath),
		Kernal: mustReadROM(*kernalPath),
		Char:   mustReadROM(*charPath),
	}

	machine := hardware.NewMachine(roms, instructions.NMOS6502, chip)

	if *cartPath != "" {
		ld, err := cartridgeloader.NewLoaderFromFilename(*cartPath)
		if err != nil {
			return err
		}
		defer ld.Close()
		cart, err := ld.Cartridge()
		if err != nil {
			return err
		}
		machine.AttachCartridge(cart)
	}

	if *driveRom != "" {
		rom := mustReadROM(*driveRom)
		d := drive.New(rom, 0x08, 0x00)
		machine.AttachDrive(d)

		if *diskPath != "" {
			raw, err := os.ReadFile(*diskPath)
			if err != nil {
				return err
			}
			disk, err := diskimage.FromD64Bytes(raw)
			if err != nil {
				return err
			}
			if err := machine.InsertDisk(disk); err != nil {
				return err
			}
		}
	}

	if err := machine.Reset(); err != nil {
		return err
	}

	machine.Governor.EnableDashboard(":6062")

	return runDisplay(machine, *scale)
}

// mustReadROM loads path if given, otherwise returns nil (NewBus falls
// through to RAM for a nil image and drive.New reads it as $FF, enough to boot a
// synthetic test ROM but not a real KERNAL).
func mustReadROM(path string) []uint8 {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Logf("c64run", "reading %s: %v", path, err)
		return nil
	}
	return data
}

// runDisplay owns the SDL window/renderer/texture and drives the machine one
// frame at a time, blitting each published snapshot through a single
// streaming texture the way the teacher's sdldebug front end does for its
// own (much richer) pixel stream.
func runDisplay(machine *hardware.Machine, scale int) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("sdl.Init: %w", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow("c64run",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(screenWidth*scale), int32(screenHeight*scale),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return fmt.Errorf("sdl.CreateWindow: %w", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return fmt.Errorf("sdl.CreateRenderer: %w", err)
	}
	defer renderer.Destroy()

	texture, err := renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING), int32(screenWidth), int32(screenHeight))
	if err != nil {
		return fmt.Errorf("renderer.CreateTexture: %w", err)
	}
	defer texture.Destroy()

	fb := newFramebuffer()
	machine.VIC.OnFrameComplete = func(snap vic.Snapshot) {
		fb.render(snap)
	}

	for {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			switch ev.(type) {
			case *sdl.QuitEvent:
				return nil
			}
		}

		if err := machine.RunFrame(); err != nil {
			return err
		}

		if err := texture.Update(nil, fb.pixels[:], screenWidth*4); err != nil {
			return fmt.Errorf("texture.Update: %w", err)
		}
		if err := renderer.Copy(texture, nil, nil); err != nil {
			return fmt.Errorf("renderer.Copy: %w", err)
		}
		renderer.Present()
	}
}
