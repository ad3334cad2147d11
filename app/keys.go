package app

import "voxport/hal"

const (
	orbitStep = 0.08 // radians per arrow press
	zoomStep  = 8
)

// HandleKey applies one key event. Releases and unknown keys do nothing.
func (a *App) HandleKey(ev hal.KeyEvent) {
	if !ev.Press {
		return
	}
	switch ev.Code {
	case hal.KeyEscape:
		a.quit = true
		return
	case hal.KeyLeft:
		a.eng.Orbit(-orbitStep, 0)
		return
	case hal.KeyRight:
		a.eng.Orbit(orbitStep, 0)
		return
	case hal.KeyUp:
		a.eng.Orbit(0, -orbitStep)
		return
	case hal.KeyDown:
		a.eng.Orbit(0, orbitStep)
		return
	}

	switch r := ev.Rune; {
	case r == 'd' || r == 'D':
		a.eng.Dismantle()
	case r >= '1' && r <= '9':
		a.RebuildInto(int(r - '0'))
	case r == 'n' || r == 'N':
		a.loadSlot((a.model + 1) % a.reg.Len())
	case r == 'r' || r == 'R':
		on := !a.eng.AutoRotate()
		a.eng.SetAutoRotate(on)
		if on {
			a.log.WriteLineString("camera: auto-rotate on")
		} else {
			a.log.WriteLineString("camera: auto-rotate off")
		}
	case r == 'h' || r == 'H':
		a.showHelp = !a.showHelp
	case r == '+' || r == '=':
		a.eng.Zoom(-zoomStep)
	case r == '-':
		a.eng.Zoom(zoomStep)
	case r == 'q' || r == 'Q':
		a.quit = true
	}
}
