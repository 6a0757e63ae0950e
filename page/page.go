// Package page positions a turning page with flipbook transforms.
package page

import (
	"fmt"
	"math"
	"strings"

	"github.com/akmonengine/flipbook"
)

// Side tells which half of the spread a page sits on.
type Side int

const (
	// Right pages are hinged on their left edge
	Right Side = iota
	// Left pages are hinged on their right edge
	Left
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// ParseSide accepts "left" or "right", case-insensitively.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(s) {
	case "right", "":
		return Right, nil
	case "left":
		return Left, nil
	}
	return Right, fmt.Errorf("unknown page side %q", s)
}

// Page describes one page of a two-page spread, in pixels.
type Page struct {
	ViewWidth   float64
	PageWidth   float64
	Height      float64
	Perspective float64 // viewer distance, same unit as the widths
	YMargin     float64
	Side        Side
}

// x of the page's left edge in view space, before rotation
func (p Page) originX() float64 {
	if p.Side == Left {
		return p.ViewWidth/2 - p.PageWidth
	}
	return p.ViewWidth / 2
}

// hinge is the spine edge, in page-local coordinates
func (p Page) hinge() float64 {
	if p.Side == Left {
		return p.PageWidth
	}
	return 0
}

// Pose returns the transform of the page rotated by angle degrees about its spine.
// The perspective is centered on the view.
func (p Page) Pose(angle float64) *flipbook.Transform {
	center := p.ViewWidth / 2

	return flipbook.New().
		TranslateX(center).
		Perspective(p.Perspective).
		TranslateX(-center).
		Translate(p.originX(), p.YMargin).
		TranslateX(p.hinge()).
		RotateY(angle).
		TranslateX(-p.hinge())
}

// Bounds returns the projected horizontal extent of the page at angle.
// Both values are NaN or infinite when an edge crosses the viewer's plane.
func (p Page) Bounds(angle float64) (left, right float64) {
	return bounds(p.Pose(angle), p.PageWidth)
}

func bounds(t *flipbook.Transform, width float64) (left, right float64) {
	a, b := t.ProjectX(0), t.ProjectX(width)
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.NaN(), math.NaN()
	}

	return math.Min(a, b), math.Max(a, b)
}
