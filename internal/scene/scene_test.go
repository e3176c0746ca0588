package scene

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSceneDefaults(t *testing.T) {
	s := New()
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, s.Stroke)
	assert.Zero(t, s.Len())

	f := s.Render(RenderOptions{ShowLines: true})
	assert.Equal(t, image.Pt(800, 600), f.Size)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, f.Background)
	assert.Empty(t, f.Commands)
}

func TestAddCircleOnlyOnce(t *testing.T) {
	s := New()
	first := Circle{TopLeft: image.Pt(-20, -20), Radius: 20}
	require.True(t, s.AddCircle(first))

	for i := 0; i < 3; i++ {
		assert.False(t, s.AddCircle(Circle{TopLeft: image.Pt(i, i), Radius: 5 + i}))
	}
	require.Len(t, s.Circles, 1)
	assert.Equal(t, first, s.Circles[0])

	last, ok := s.LastCircle()
	require.True(t, ok)
	assert.Equal(t, first, last)
}

func TestAddLineAdjacentDedup(t *testing.T) {
	s := New()
	l1 := Line{Start: image.Pt(1, 1), End: image.Pt(9, 9)}
	l2 := Line{Start: image.Pt(2, 2), End: image.Pt(8, 8)}

	assert.True(t, s.AddLine(l1))
	assert.False(t, s.AddLine(l1))
	assert.True(t, s.AddLine(l2))
	// only the previous line is compared, so l1 may come back
	assert.True(t, s.AddLine(l1))
	assert.Equal(t, []Line{l1, l2, l1}, s.Lines)
}

func TestAddLineDegenerate(t *testing.T) {
	s := New()
	l := Line{Start: image.Pt(50, 50), End: image.Pt(50, 50)}
	require.True(t, s.AddLine(l))
	assert.Equal(t, []Line{l}, s.Lines)
}

func TestLastOnEmptyScene(t *testing.T) {
	s := New()
	_, ok := s.LastCircle()
	assert.False(t, ok)
	_, ok = s.LastLine()
	assert.False(t, ok)
}

func fixture() *Scene {
	s := New()
	s.AddLine(Line{Start: image.Pt(0, 0), End: image.Pt(10, 0)})
	s.AddCircle(Circle{TopLeft: image.Pt(5, 5), Radius: 3})
	s.AddPolygon(Polygon{Sides: 3, Vertices: []image.Point{{1, 1}, {2, 2}, {3, 1}}})
	s.AddPolygon(Polygon{Sides: 3, Vertices: []image.Point{{4, 4}, {5, 5}, {6, 4}}})
	return s
}

func TestRenderOrder(t *testing.T) {
	s := fixture()
	preview := LineCommand(Line{Start: image.Pt(7, 7), End: image.Pt(8, 8)})
	f := s.Render(RenderOptions{ShowLines: true, Preview: []Command{preview}})

	var kinds []CommandKind
	for _, c := range f.Commands {
		kinds = append(kinds, c.Kind)
	}
	assert.Equal(t, []CommandKind{CommandPolygon, CommandPolygon, CommandOval, CommandLine, CommandLine}, kinds)
	assert.Equal(t, image.Pt(1, 1), f.Commands[0].Points[0])
	assert.Equal(t, image.Pt(4, 4), f.Commands[1].Points[0])
	assert.Equal(t, image.Pt(5, 5), f.Commands[2].Origin)
	assert.Equal(t, 6, f.Commands[2].Diameter)
	assert.Equal(t, preview, f.Commands[4])
}

func TestRenderHidesLinesOutsideLineMode(t *testing.T) {
	s := fixture()
	f := s.Render(RenderOptions{})
	for _, c := range f.Commands {
		assert.NotEqual(t, CommandLine, c.Kind)
	}
	assert.Len(t, f.Commands, 3)
	// hiding is a render decision only
	assert.Len(t, s.Lines, 1)
}

func TestStrokeIsRetroactive(t *testing.T) {
	s := fixture()
	before := s.Render(RenderOptions{ShowLines: true})
	assert.Equal(t, DefaultStroke, before.Stroke)

	red := color.RGBA{255, 0, 0, 255}
	s.SetStroke(red)
	after := s.Render(RenderOptions{ShowLines: true})
	assert.Equal(t, red, after.Stroke)
	assert.Equal(t, before.Commands, after.Commands)
}

func TestFrameString(t *testing.T) {
	s := New()
	s.AddPolygon(Polygon{Sides: 3, Vertices: []image.Point{{1, 2}, {3, 4}, {5, 6}}})
	s.AddCircle(Circle{TopLeft: image.Pt(-20, -20), Radius: 20})
	s.AddLine(Line{Start: image.Pt(50, 50), End: image.Pt(50, 50)})
	s.SetStroke(color.RGBA{0x12, 0x34, 0x56, 0xff})

	want := "frame 800x600 background #FFFFFF stroke #123456\n" +
		"polygon (1,2) (3,4) (5,6)\n" +
		"oval (-20,-20) 40\n" +
		"line (50,50) (50,50)\n"
	assert.Equal(t, want, s.Render(RenderOptions{ShowLines: true}).String())
}
