//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && !cgo

package clipboard

import (
	"fmt"
	"image"
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var (
	initOnce sync.Once
	initErr  error
	owner    *selectionOwner
)

func ensureInit() error {
	initOnce.Do(func() {
		if !hasDisplay() {
			initErr = errNoDisplay
			return
		}
		owner, initErr = newSelectionOwner()
	})
	return initErr
}

// WriteImage encodes img as PNG and publishes it to the clipboard.
func WriteImage(img image.Image) error {
	if err := ensureInit(); err != nil {
		return err
	}
	data, err := encodePNG(img)
	if err != nil {
		return err
	}
	return owner.publish(payload{png: data})
}

// WriteText publishes text to the clipboard.
func WriteText(text string) error {
	if err := ensureInit(); err != nil {
		return err
	}
	return owner.publish(payload{text: []byte(text)})
}

type payload struct {
	text []byte
	png  []byte
}

type atoms struct {
	clipboard, targets, utf8, textPlain, png xproto.Atom
}

// selectionOwner holds the CLIPBOARD selection on an unmapped window and
// answers conversion requests from other clients until it loses ownership.
type selectionOwner struct {
	conn   *xgb.Conn
	window xproto.Window
	atoms  atoms

	mu      sync.RWMutex
	current payload
}

func newSelectionOwner() (*selectionOwner, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect to X server: %w", err)
	}
	screen := xproto.Setup(conn).DefaultScreen(conn)
	window, err := xproto.NewWindowId(conn)
	if err != nil {
		conn.Close()
		return nil, err
	}
	err = xproto.CreateWindowChecked(conn, screen.RootDepth, window, screen.Root,
		0, 0, 1, 1, 0, xproto.WindowClassInputOutput, screen.RootVisual,
		xproto.CwEventMask, []uint32{xproto.EventMaskPropertyChange}).Check()
	if err != nil {
		conn.Close()
		return nil, err
	}
	a, err := internAtoms(conn)
	if err != nil {
		xproto.DestroyWindow(conn, window)
		conn.Close()
		return nil, err
	}
	o := &selectionOwner{conn: conn, window: window, atoms: a}
	go o.serve()
	return o, nil
}

func internAtoms(conn *xgb.Conn) (atoms, error) {
	names := []string{"CLIPBOARD", "TARGETS", "UTF8_STRING", "text/plain;charset=utf-8", "image/png"}
	out := make([]xproto.Atom, len(names))
	for i, name := range names {
		reply, err := xproto.InternAtom(conn, false, uint16(len(name)), name).Reply()
		if err != nil {
			return atoms{}, fmt.Errorf("intern %s: %w", name, err)
		}
		out[i] = reply.Atom
	}
	return atoms{clipboard: out[0], targets: out[1], utf8: out[2], textPlain: out[3], png: out[4]}, nil
}

func (o *selectionOwner) publish(p payload) error {
	o.mu.Lock()
	o.current = p
	o.mu.Unlock()
	return xproto.SetSelectionOwnerChecked(o.conn, o.window, o.atoms.clipboard, xproto.TimeCurrentTime).Check()
}

func (o *selectionOwner) serve() {
	for {
		ev, err := o.conn.WaitForEvent()
		if err != nil {
			return
		}
		switch e := ev.(type) {
		case xproto.SelectionRequestEvent:
			o.answer(e)
		case xproto.SelectionClearEvent:
			o.mu.Lock()
			o.current = payload{}
			o.mu.Unlock()
		}
	}
}

// answer stores the requested target on the requestor's property and tells
// it so, or refuses with property None.
func (o *selectionOwner) answer(e xproto.SelectionRequestEvent) {
	property := e.Property
	if property == xproto.AtomNone {
		property = e.Target
	}
	o.mu.RLock()
	p := o.current
	o.mu.RUnlock()

	var (
		typ    xproto.Atom
		format byte = 8
		data   []byte
		length uint32
	)
	switch e.Target {
	case o.atoms.targets:
		targets := []xproto.Atom{o.atoms.targets}
		if len(p.text) > 0 {
			targets = append(targets, o.atoms.utf8, xproto.AtomString, o.atoms.textPlain)
		}
		if len(p.png) > 0 {
			targets = append(targets, o.atoms.png)
		}
		data = make([]byte, 4*len(targets))
		for i, t := range targets {
			xgb.Put32(data[4*i:], uint32(t))
		}
		typ, format, length = xproto.AtomAtom, 32, uint32(len(targets))
	case o.atoms.utf8, xproto.AtomString, o.atoms.textPlain:
		data, typ = p.text, o.atoms.utf8
	case o.atoms.png:
		data, typ = p.png, o.atoms.png
	}
	if format == 8 {
		length = uint32(len(data))
	}
	if len(data) == 0 {
		property = xproto.AtomNone
	} else {
		xproto.ChangeProperty(o.conn, xproto.PropModeReplace, e.Requestor, property, typ, format, length, data)
	}

	notify := xproto.SelectionNotifyEvent{
		Time:      e.Time,
		Requestor: e.Requestor,
		Selection: e.Selection,
		Target:    e.Target,
		Property:  property,
	}
	xproto.SendEvent(o.conn, false, e.Requestor, 0, string(notify.Bytes()))
}
