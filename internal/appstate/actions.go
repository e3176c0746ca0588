package appstate

import (
	"fmt"
	"unicode"

	"golang.org/x/mobile/event/key"
)

// KeyShortcut describes a keyboard combination that triggers an action.
// Either Rune or Code is set.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// KeyboardShortcuts returns the shortcuts associated with an action.
type KeyboardShortcuts interface {
	KeyboardShortcuts() []KeyShortcut
}

type shortcutList []KeyShortcut

func (s shortcutList) KeyboardShortcuts() []KeyShortcut { return []KeyShortcut(s) }

const shortcutModifiers = key.ModShift | key.ModControl | key.ModAlt | key.ModMeta

// actions maps action names to handlers and key combinations to names.
type actions struct {
	fns  map[string]func()
	keys map[KeyShortcut]string
}

func newActions() *actions {
	return &actions{fns: make(map[string]func()), keys: make(map[KeyShortcut]string)}
}

func (a *actions) register(name string, ks KeyboardShortcuts, fn func()) {
	a.fns[name] = fn
	if ks == nil {
		return
	}
	for _, k := range ks.KeyboardShortcuts() {
		a.keys[k] = name
	}
}

// lookup finds the action bound to a key press, trying the rune before the
// physical key code. A binding without Shift also matches with Shift held
// since Shift is already folded into the rune.
func (a *actions) lookup(e key.Event) (string, bool) {
	mods := e.Modifiers & shortcutModifiers
	var candidates []KeyShortcut
	if e.Rune > 0 {
		r := unicode.ToLower(e.Rune)
		candidates = append(candidates,
			KeyShortcut{Rune: r, Modifiers: mods},
			KeyShortcut{Rune: r, Modifiers: mods &^ key.ModShift})
	}
	candidates = append(candidates,
		KeyShortcut{Code: e.Code, Modifiers: mods},
		KeyShortcut{Code: e.Code, Modifiers: mods &^ key.ModShift})
	for _, k := range candidates {
		if name, ok := a.keys[k]; ok {
			return name, true
		}
	}
	return "", false
}

// trigger runs the named action. It reports false for unknown names.
func (a *actions) trigger(name string) bool {
	fn, ok := a.fns[name]
	if !ok {
		return false
	}
	fn()
	return true
}

// registerActions binds the window's keyboard and button actions to m.
func registerActions(m *model) *actions {
	a := newActions()
	a.register("circle", shortcutList{{Rune: 'c'}}, m.selectCircle)
	a.register("line", shortcutList{{Rune: 'l'}}, m.selectLine)
	a.register("polygon", shortcutList{{Rune: 'p'}}, m.selectPolygon)
	a.register("sides+", shortcutList{{Rune: '+'}, {Rune: '='}, {Rune: ']'}}, func() { m.adjustSides(1) })
	a.register("sides-", shortcutList{{Rune: '-'}, {Rune: '['}}, func() { m.adjustSides(-1) })
	for n := 3; n <= 9; n++ {
		n := n
		a.register(fmt.Sprintf("sides%d", n), shortcutList{{Rune: rune('0' + n)}}, func() { m.setSides(n) })
	}
	a.register("color+", shortcutList{{Rune: 'k'}}, func() { m.cycleColor(1) })
	a.register("color-", shortcutList{{Rune: 'j'}}, func() { m.cycleColor(-1) })
	a.register("copy", shortcutList{
		{Rune: 'c', Modifiers: key.ModControl},
		{Code: key.CodeC, Modifiers: key.ModControl},
	}, m.copyImage)
	a.register("copytext", shortcutList{
		{Rune: 'c', Modifiers: key.ModControl | key.ModShift},
		{Code: key.CodeC, Modifiers: key.ModControl | key.ModShift},
		{Rune: 't', Modifiers: key.ModControl},
		{Code: key.CodeT, Modifiers: key.ModControl},
	}, m.copyText)
	a.register("quit", shortcutList{{Rune: 'q'}}, func() { m.quit = true })
	return a
}
