package main

import (
	"fmt"
	"math"

	"github.com/akmonengine/flipbook"
	"github.com/akmonengine/flipbook/page"
)

// SetupSpread creates the right-hand page of an 800px wide spread
func SetupSpread() page.Page {
	return page.Page{
		ViewWidth:   800,
		PageWidth:   400,
		Height:      600,
		Perspective: 2400,
		Side:        page.Right,
	}
}

// DragToAngle maps a horizontal drag position onto a turn angle.
// The grabbed edge follows the pointer, so the angle is found by bisection
// over the projected right edge, which moves monotonically leftward.
func DragToAngle(p page.Page, pointerX float64) float64 {
	lo, hi := -180.0, 0.0
	for i := 0; i < 50; i++ {
		mid := (lo + hi) / 2
		edge := p.Pose(mid).ProjectX(p.PageWidth)
		if math.IsNaN(edge) || edge < pointerX {
			hi = mid
		} else {
			lo = mid
		}
	}

	return (lo + hi) / 2
}

func main() {
	p := SetupSpread()

	fmt.Println("Page turn, 12 frames")
	fmt.Println("====================")
	for _, frame := range page.Frames(p, page.Sweep(0, -180, 12), 4) {
		fmt.Printf("frame %2d  angle %8.2f  edges [%7.2f, %7.2f]\n", frame.Index, frame.Angle, frame.Left, frame.Right)
		fmt.Printf("          transform: %s\n", frame.Transform)
	}
	fmt.Println()

	fmt.Println("Drag mapping")
	fmt.Println("============")
	for _, x := range []float64{790, 700, 600, 500, 410} {
		angle := DragToAngle(p, x)
		fmt.Printf("pointer at %5.1f -> angle %8.3f (edge at %7.3f)\n", x, angle, p.Pose(angle).ProjectX(p.PageWidth))
	}

	// a page flat on the spread, copied before a speculative turn
	flat := flipbook.From(p.Pose(0))
	turned := flat.Clone().RotateY(-45)
	fmt.Printf("\nflat:   %s\nturned: %s\n", flat, turned)
}
