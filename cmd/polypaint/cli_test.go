package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/polypaint/internal/config"
	"github.com/example/polypaint/internal/interaction"
	"github.com/mitchellh/go-homedir"
)

// testRoot builds a root with an isolated home directory so no user config
// leaks into the test.
func testRoot(t *testing.T, args ...string) *root {
	t.Helper()
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	t.Setenv("HOME", t.TempDir())
	t.Setenv("POLYPAINT_THEME", "")
	t.Setenv("POLYPAINT_COLOR", "")
	r := newRoot()
	if err := r.fs.Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return r
}

func TestColorPrecedence(t *testing.T) {
	r := testRoot(t)
	r.config.Color = "blue"
	if err := r.resolve(); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if r.stroke != (color.RGBA{0, 0, 255, 255}) {
		t.Fatalf("config color not used, got %v", r.stroke)
	}

	t.Setenv("POLYPAINT_COLOR", "red")
	if err := r.resolve(); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if r.stroke != (color.RGBA{255, 0, 0, 255}) {
		t.Fatalf("environment must beat config, got %v", r.stroke)
	}

	r.colorSpec = "#00FF00"
	if err := r.resolve(); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if r.stroke != (color.RGBA{0, 255, 0, 255}) {
		t.Fatalf("flag must beat environment, got %v", r.stroke)
	}
}

func TestDefaultColorAndMode(t *testing.T) {
	r := testRoot(t)
	if err := r.resolve(); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if r.stroke != (color.RGBA{0, 0, 0, 255}) {
		t.Fatalf("default stroke = %v, want black", r.stroke)
	}
	if r.mode != interaction.DefaultMode() {
		t.Fatalf("default mode = %v", r.mode)
	}
}

func TestBadColorFlag(t *testing.T) {
	r := testRoot(t, "-color", "notacolor")
	if err := r.resolve(); err == nil || !strings.Contains(err.Error(), "-color") {
		t.Fatalf("expected -color error, got %v", err)
	}
}

func TestSidesFlagWinsOverMode(t *testing.T) {
	r := testRoot(t, "-mode", "circle", "-sides", "5")
	if err := r.resolve(); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if r.mode != interaction.Polygon(5) {
		t.Fatalf("mode = %v, want polygon:5", r.mode)
	}

	r = testRoot(t, "-sides", "2")
	if err := r.resolve(); err == nil {
		t.Fatalf("expected out of range error")
	}
}

func TestModeFromConfig(t *testing.T) {
	r := testRoot(t)
	r.config.Mode = "line"
	if err := r.resolve(); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if r.mode != interaction.Line() {
		t.Fatalf("mode = %v, want line", r.mode)
	}
}

func TestUnknownCommandIsUsageError(t *testing.T) {
	r := testRoot(t)
	err := r.Run([]string{"bogus"})
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected usage error, got %v", err)
	}
	help := uerr.Error()
	for _, want := range []string{"Usage: polypaint", "replay", "-theme"} {
		if !strings.Contains(help, want) {
			t.Errorf("help missing %q:\n%s", want, help)
		}
	}
}

func TestSubcommandHelpUsesProgramPath(t *testing.T) {
	r := testRoot(t)
	cmd, err := parseReplayCmd(nil, r)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	help := (&UsageError{of: cmd}).Error()
	if !strings.HasPrefix(help, "Usage: polypaint replay") {
		t.Fatalf("unexpected help:\n%s", help)
	}
	if !strings.Contains(help, "-every") {
		t.Fatalf("help must list replay flags:\n%s", help)
	}
}

func newReplay(t *testing.T, script string, args ...string) (*replayCmd, *bytes.Buffer) {
	t.Helper()
	r := testRoot(t)
	if err := r.resolve(); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	cmd, err := parseReplayCmd(args, r)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var out bytes.Buffer
	cmd.stdin = strings.NewReader(script)
	cmd.stdout = &out
	return cmd, &out
}

func TestReplayPrintsRenderedFrames(t *testing.T) {
	cmd, out := newReplay(t, "sides 4\ndrag 100 50 200 150\nrender\n")
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "frame 800x600 background #FFFFFF stroke #000000\n" +
		"polygon (200,100) (150,150) (100,100) (150,50)\n"
	if out.String() != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestReplayEveryRedraw(t *testing.T) {
	cmd, out := newReplay(t, "mode line\ndrag 0 0 10 10\n", "-every")
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	// mode change, drag move and drag release each redraw
	if got := strings.Count(out.String(), "frame 800x600"); got != 3 {
		t.Fatalf("expected 3 frames, got %d:\n%s", got, out.String())
	}
	if !strings.HasSuffix(out.String(), "line (0,0) (10,10)\n") {
		t.Fatalf("last frame must show the committed line:\n%s", out.String())
	}
}

func TestReplayFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.txt")
	if err := os.WriteFile(path, []byte("mode circle\ndrag 50 50 90 90\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cmd, out := newReplay(t, "", "-final", path)
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "oval (30,30) 40") {
		t.Fatalf("missing circle:\n%s", out.String())
	}
}

func TestReplayReportsScriptLine(t *testing.T) {
	cmd, _ := newReplay(t, "render\nwiggle 1 2\n")
	err := cmd.Run()
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected line 2 error, got %v", err)
	}
}

func TestReplayCopy(t *testing.T) {
	var copied image.Image
	original := writeClipboardImage
	writeClipboardImage = func(img image.Image) error { copied = img; return nil }
	t.Cleanup(func() { writeClipboardImage = original })

	cmd, _ := newReplay(t, "mode line\ndrag 0 5 20 5\n", "-copy")
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if copied == nil {
		t.Fatalf("expected a clipboard image")
	}
	if _, _, _, a := copied.At(10, 5).RGBA(); a == 0 {
		t.Fatalf("unexpected transparent pixel")
	}
	if r, g, b, _ := copied.At(10, 5).RGBA(); r != 0 || g != 0 || b != 0 {
		t.Fatalf("line pixel must be black")
	}
}

func TestReplayCopyError(t *testing.T) {
	sentinel := errors.New("no display")
	original := writeClipboardImage
	writeClipboardImage = func(image.Image) error { return sentinel }
	t.Cleanup(func() { writeClipboardImage = original })

	cmd, _ := newReplay(t, "render\n", "-copy")
	if err := cmd.Run(); !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped clipboard error, got %v", err)
	}
}

func TestModesMarksStartingMode(t *testing.T) {
	r := testRoot(t, "-mode", "circle")
	if err := r.resolve(); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	cmd, err := parseModesCmd(nil, r)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var out bytes.Buffer
	cmd.stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "* circle") {
		t.Fatalf("circle not marked:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "polygon:19") {
		t.Fatalf("side range not listed:\n%s", out.String())
	}
}

func TestColorsMarksStroke(t *testing.T) {
	r := testRoot(t, "-color", "red")
	if err := r.resolve(); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	cmd, err := parseColorsCmd(nil, r)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var out bytes.Buffer
	cmd.stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "*  2: Red") {
		t.Fatalf("red not marked:\n%s", out.String())
	}
}

func TestConfigSaveWritesLoadedPath(t *testing.T) {
	r := testRoot(t)
	r.configPath = filepath.Join(t.TempDir(), "nested", "config.rc")
	r.config.Color = "teal"
	r.config.Notify.Copy = true
	cmd, err := parseConfigCmd([]string{"save"}, r)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("save: %v", err)
	}
	cfg, err := config.LoadFile(r.configPath)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if cfg.Color != "teal" || !cfg.Notify.Copy {
		t.Fatalf("unexpected saved config %+v", cfg)
	}
}

func TestConfigRequiresSubcommand(t *testing.T) {
	cmd, err := parseConfigCmd(nil, testRoot(t))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var uerr *UsageError
	if !errors.As(cmd.Run(), &uerr) {
		t.Fatalf("expected usage error")
	}
}

func TestWindowTitle(t *testing.T) {
	oldVersion, oldCommit := version, commit
	t.Cleanup(func() { version, commit = oldVersion, oldCommit })
	version, commit = "1.2.0", ""

	got := windowTitle(titleOptions{Mode: "Circle", Extras: []string{"watching config"}})
	want := "PolyPaint - Circle - v1.2.0 - watching config"
	if got != want {
		t.Fatalf("windowTitle = %q, want %q", got, want)
	}
}

func TestVersionString(t *testing.T) {
	oldVersion, oldCommit, oldDate := version, commit, date
	t.Cleanup(func() { version, commit, date = oldVersion, oldCommit, oldDate })
	version, commit, date = "1.0.0", "abc123", "2024-01-02"
	if got := versionString("polypaint"); got != "polypaint version 1.0.0 (commit abc123, built 2024-01-02)" {
		t.Fatalf("got %q", got)
	}
}
