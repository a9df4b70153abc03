package window

import (
	"testing"

	"github.com/Carmen-Shannon/iso-go/engine/input"
)

func TestBindCollectorSeedsViewport(t *testing.T) {
	w := &engineWindow{width: 1280, height: 720}
	c := input.NewCollector()

	w.BindCollector(c)

	snap := c.Collect()
	if snap.ViewportWidth != 1280 || snap.ViewportHeight != 720 {
		t.Errorf("seeded viewport = %dx%d, want 1280x720", snap.ViewportWidth, snap.ViewportHeight)
	}
}

func TestResizeReachesCollectorAndCallback(t *testing.T) {
	orders := []struct {
		name          string
		collectorLast bool
	}{
		{"collector bound first", false},
		{"resize callback set first", true},
	}

	for _, order := range orders {
		t.Run(order.name, func(t *testing.T) {
			w := &engineWindow{width: 1280, height: 720}
			c := input.NewCollector()

			var gotW, gotH int
			callback := func(width, height int) {
				gotW, gotH = width, height
			}

			if order.collectorLast {
				w.SetResizeCallback(callback)
				w.BindCollector(c)
			} else {
				w.BindCollector(c)
				w.SetResizeCallback(callback)
			}

			w.dispatchResize(800, 600)

			if gotW != 800 || gotH != 600 {
				t.Errorf("resize callback got %dx%d, want 800x600", gotW, gotH)
			}
			snap := c.Collect()
			if snap.ViewportWidth != 800 || snap.ViewportHeight != 600 {
				t.Errorf("snapshot viewport = %dx%d, want 800x600", snap.ViewportWidth, snap.ViewportHeight)
			}
		})
	}
}
