package input

import "github.com/gdamore/tcell/v2"

// Translator converts tcell events into game events. It keeps the previous
// mouse button state so that only press edges become pointer events.
type Translator struct {
	buttons tcell.ButtonMask
}

// Translate returns the game event for ev, or false if ev is not of interest.
func (t *Translator) Translate(ev tcell.Event) (Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return translateKey(ev)
	case *tcell.EventMouse:
		prev := t.buttons
		t.buttons = ev.Buttons()
		if ev.Buttons()&tcell.Button1 != 0 && prev&tcell.Button1 == 0 {
			x, y := ev.Position()
			return PointerPress(x, y), true
		}
	}
	return Event{}, false
}

func translateKey(ev *tcell.EventKey) (Event, bool) {
	mods := translateMods(ev.Modifiers())

	switch ev.Key() {
	case tcell.KeyCtrlC:
		return Quit(), true
	case tcell.KeyEnter:
		return KeyPress(KeyEnter, mods), true
	case tcell.KeyCtrlS:
		// Most terminals cannot tell Shift+Enter from Enter.
		return KeyPress(KeyEnter, ModShift), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyPress(KeyBackspace, mods), true
	case tcell.KeyLeft:
		return KeyPress(KeyLeft, mods), true
	case tcell.KeyRight:
		return KeyPress(KeyRight, mods), true
	case tcell.KeyUp:
		return KeyPress(KeyUp, mods), true
	case tcell.KeyDown:
		return KeyPress(KeyDown, mods), true
	case tcell.KeyEscape:
		return KeyPress(KeyEscape, mods), true
	case tcell.KeyF1:
		return KeyPress(KeyF1, mods), true
	case tcell.KeyTab:
		return TextInput("    "), true
	case tcell.KeyRune:
		if mods&ModCtrl != 0 {
			switch ev.Rune() {
			case 'c', 'C':
				return Quit(), true
			case 's', 'S':
				return KeyPress(KeyEnter, ModShift), true
			}
		}
		return Event{Kind: KindKey, Key: KeyText, Text: string(ev.Rune()), Mods: mods}, true
	}
	return KeyPress(KeyOther, mods), true
}

func translateMods(m tcell.ModMask) Modifier {
	var mods Modifier
	if m&tcell.ModShift != 0 {
		mods |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= ModAlt
	}
	return mods
}
