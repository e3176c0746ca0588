// Package notify announces clipboard copies through desktop notifications.
//
// Delivery happens on a background worker so a slow notification daemon
// never stalls the window's event loop. Call Close before exiting to flush
// anything still queued.
package notify

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/example/polypaint/internal/platform"
)

// Event identifies a notification trigger.
type Event string

const (
	// EventCopy fires when the canvas image is copied.
	EventCopy Event = "copy"
	// EventCopyText fires when the frame listing is copied.
	EventCopyText Event = "copy_text"
)

// queueSize bounds pending notifications. Extra ones are dropped.
const queueSize = 8

// Preferences holds the title and per event body formats. A format takes
// one %s verb which receives the detail passed to Copy or CopyText.
type Preferences struct {
	Title   string
	Formats map[Event]string
}

// DefaultPreferences returns the built in wording.
func DefaultPreferences() Preferences {
	return Preferences{
		Title: "PolyPaint",
		Formats: map[Event]string{
			EventCopy:     "Copied %s to clipboard",
			EventCopyText: "Copied %s to clipboard as text",
		},
	}
}

// LoadPreferences overlays POLYPAINT_NOTIFY_* environment variables on the
// defaults.
func LoadPreferences() Preferences {
	prefs := DefaultPreferences()
	if v := strings.TrimSpace(os.Getenv("POLYPAINT_NOTIFY_TITLE")); v != "" {
		prefs.Title = v
	}
	for ev, key := range map[Event]string{
		EventCopy:     "POLYPAINT_NOTIFY_COPY_TEMPLATE",
		EventCopyText: "POLYPAINT_NOTIFY_COPY_TEXT_TEMPLATE",
	} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			prefs.Formats[ev] = v
		}
	}
	return prefs
}

// send delivers a notification to the desktop.
var send = platform.Notify

type message struct {
	event Event
	title string
	body  string
	icon  image.Image
}

// Notifier queues notifications for enabled events. A nil Notifier is
// valid and silent.
type Notifier struct {
	title   string
	formats map[Event]string

	mu      sync.Mutex
	enabled map[Event]bool
	queue   chan message
	closed  bool
	done    sync.WaitGroup
}

// New creates a Notifier with every event disabled.
func New(prefs Preferences) *Notifier {
	formats := make(map[Event]string, len(prefs.Formats))
	for ev, f := range prefs.Formats {
		formats[ev] = strings.TrimSpace(f)
	}
	return &Notifier{title: prefs.Title, formats: formats, enabled: make(map[Event]bool)}
}

// Enable turns notifications for event on or off.
func (n *Notifier) Enable(event Event, on bool) {
	if n == nil {
		return
	}
	n.mu.Lock()
	n.enabled[event] = on
	n.mu.Unlock()
}

// Enabled reports whether event would produce a notification.
func (n *Notifier) Enabled(event Event) bool {
	if n == nil {
		return false
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.enabled[event] && !n.closed
}

// Copy announces a canvas copy. img, when set, becomes the notification
// icon on platforms that support one.
func (n *Notifier) Copy(detail string, img image.Image) {
	n.post(EventCopy, orDefault(detail, "canvas"), img)
}

// CopyText announces a frame listing copy.
func (n *Notifier) CopyText(detail string) {
	n.post(EventCopyText, orDefault(detail, "drawing"), nil)
}

// Close stops accepting notifications and waits for queued ones to be
// delivered.
func (n *Notifier) Close() {
	if n == nil {
		return
	}
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.closed = true
	if n.queue != nil {
		close(n.queue)
	}
	n.mu.Unlock()
	n.done.Wait()
}

func (n *Notifier) post(event Event, detail string, icon image.Image) {
	if n == nil {
		return
	}
	format := n.formats[event]
	if format == "" {
		return
	}
	body := strings.TrimSpace(fmt.Sprintf(format, detail))
	if body == "" {
		return
	}
	msg := message{event: event, title: n.title, body: body, icon: icon}

	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.enabled[event] || n.closed {
		return
	}
	if n.queue == nil {
		n.queue = make(chan message, queueSize)
		n.done.Add(1)
		go n.run(n.queue)
	}
	select {
	case n.queue <- msg:
	default:
		log.Printf("notification %s dropped: queue full", event)
	}
}

func (n *Notifier) run(queue <-chan message) {
	defer n.done.Done()
	for msg := range queue {
		deliver(msg)
	}
}

func deliver(msg message) {
	var opts platform.Options
	if msg.icon != nil {
		path, cleanup, err := writePreview(msg.icon)
		if err != nil {
			log.Printf("notification preview: %v", err)
		} else {
			defer cleanup()
			opts.IconPath = path
		}
	}
	if err := send(msg.title, msg.body, opts); err != nil {
		log.Printf("notification %s: %v", msg.event, err)
	}
}

func orDefault(s, fallback string) string {
	if s = strings.TrimSpace(s); s == "" {
		return fallback
	}
	return s
}

// writePreview stores img as a temporary PNG and returns a func removing it.
func writePreview(img image.Image) (string, func(), error) {
	f, err := os.CreateTemp("", "polypaint-preview-*.png")
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", nil, fmt.Errorf("write preview: %w", err)
	}
	return path, func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("remove preview: %v", err)
		}
	}, nil
}
