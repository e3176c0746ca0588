package notify

import (
	"image"
	"os"
	"sync"
	"testing"

	"github.com/example/polypaint/internal/platform"
)

type sent struct {
	title, body string
	opts        platform.Options
	iconExisted bool
}

type recorder struct {
	mu  sync.Mutex
	out []sent
}

func (r *recorder) all() []sent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]sent(nil), r.out...)
}

func capture(t *testing.T) *recorder {
	t.Helper()
	rec := &recorder{}
	original := send
	send = func(title, body string, opts platform.Options) error {
		s := sent{title: title, body: body, opts: opts}
		if opts.IconPath != "" {
			_, err := os.Stat(opts.IconPath)
			s.iconExisted = err == nil
		}
		rec.mu.Lock()
		rec.out = append(rec.out, s)
		rec.mu.Unlock()
		return nil
	}
	t.Cleanup(func() { send = original })
	return rec
}

func TestDisabledEventsAreSilent(t *testing.T) {
	got := capture(t)
	n := New(DefaultPreferences())
	n.Copy("", nil)
	n.CopyText("")
	n.Close()
	if len(got.all()) != 0 {
		t.Fatalf("expected no notifications, got %+v", got.all())
	}
	var nilNotifier *Notifier
	nilNotifier.Copy("x", nil)
	nilNotifier.Close()
}

func TestCopyAttachesPreview(t *testing.T) {
	got := capture(t)
	n := New(DefaultPreferences())
	n.Enable(EventCopy, true)
	n.Copy("", image.NewRGBA(image.Rect(0, 0, 4, 4)))
	n.Close()
	all := got.all()
	if len(all) != 1 {
		t.Fatalf("expected one notification, got %d", len(all))
	}
	s := all[0]
	if s.title != "PolyPaint" || s.body != "Copied canvas to clipboard" {
		t.Errorf("unexpected notification %q / %q", s.title, s.body)
	}
	if !s.iconExisted {
		t.Errorf("expected preview icon to exist while notifying")
	}
	if _, err := os.Stat(s.opts.IconPath); !os.IsNotExist(err) {
		t.Errorf("expected preview to be removed afterwards, got %v", err)
	}
}

func TestEnvironmentTemplates(t *testing.T) {
	t.Setenv("POLYPAINT_NOTIFY_TITLE", "Sketch")
	t.Setenv("POLYPAINT_NOTIFY_COPY_TEXT_TEMPLATE", "listing of %s ready")
	got := capture(t)
	n := New(LoadPreferences())
	n.Enable(EventCopyText, true)
	n.CopyText("3 shapes")
	n.Close()
	all := got.all()
	if len(all) != 1 {
		t.Fatalf("expected one notification, got %d", len(all))
	}
	if s := all[0]; s.title != "Sketch" || s.body != "listing of 3 shapes ready" {
		t.Errorf("unexpected notification %+v", s)
	}
}

func TestCloseDeliversInOrderAndStops(t *testing.T) {
	got := capture(t)
	n := New(DefaultPreferences())
	n.Enable(EventCopyText, true)
	n.CopyText("one")
	n.CopyText("two")
	n.Close()
	n.CopyText("three")
	n.Close()
	all := got.all()
	if len(all) != 2 {
		t.Fatalf("expected two notifications, got %+v", all)
	}
	if all[0].body != "Copied one to clipboard as text" || all[1].body != "Copied two to clipboard as text" {
		t.Errorf("unexpected order %+v", all)
	}
	if n.Enabled(EventCopyText) {
		t.Errorf("closed notifier must report disabled")
	}
}
