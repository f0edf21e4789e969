// Package view is the boundary to an external line-strip viewer: it
// flattens curves into float32 vertex buffers and drives the phase angle
// at an interactive cadence. No rendering happens here.
package view

import (
	"sync"
	"time"

	"github.com/chewxy/math32"
	"github.com/gearkit/cycloid"
)

// LineStrip flattens a curve into xyz float32 triplets with z=0, the
// layout GL-style line-strip renderers consume directly.
func LineStrip(c cycloid.Curve) []float32 {
	buf := make([]float32, 0, 3*len(c.P))
	for _, pt := range c.P {
		buf = append(buf, float32(pt.X), float32(pt.Y), 0)
	}
	return buf
}

// LineStrips flattens a full curve set in the given layer order. Layers
// absent from the set are skipped.
func LineStrips(cs cycloid.CurveSet, order []cycloid.Layer) [][]float32 {
	var strips [][]float32
	for _, layer := range order {
		for _, c := range cs[layer] {
			strips = append(strips, LineStrip(c))
		}
	}
	return strips
}

// BoundingRadius returns the largest vertex distance from the origin
// across the set, for camera placement.
func BoundingRadius(cs cycloid.CurveSet) float32 {
	var max float32
	for _, curves := range cs {
		for _, c := range curves {
			for _, pt := range c.P {
				if r := math32.Hypot(float32(pt.X), float32(pt.Y)); r > max {
					max = r
				}
			}
		}
	}
	return max
}

// tickPeriod is the interactive frame cadence.
const tickPeriod = 16 * time.Millisecond

// Ticker advances the phase angle monotonically at the interactive cadence
// and hands each new phase to a callback. The callback owns recomputation
// and must finish within the tick budget or frames stutter; correctness
// does not depend on it. Pause freezes the phase, for example to export at
// a specific pose.
type Ticker struct {
	mu     sync.Mutex
	phi    float64
	speed  float64
	paused bool
	stop   chan struct{}
	wg     sync.WaitGroup
}

// NewTicker starts a phase driver. Each tick advances phi by
// 0.01*speed/60 radians and calls fn with the new value.
func NewTicker(speed float64, fn func(phi float64)) *Ticker {
	t := &Ticker{
		speed: speed,
		stop:  make(chan struct{}),
	}
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		tick := time.NewTicker(tickPeriod)
		defer tick.Stop()
		for {
			select {
			case <-t.stop:
				return
			case <-tick.C:
				if phi, ok := t.advance(); ok {
					fn(phi)
				}
			}
		}
	}()
	return t
}

func (t *Ticker) advance() (float64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.paused {
		return 0, false
	}
	t.phi += 0.01 * t.speed / 60
	return t.phi, true
}

// Phase returns the current phase angle.
func (t *Ticker) Phase() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.phi
}

// SetSpeed changes the per-tick phase increment scale.
func (t *Ticker) SetSpeed(speed float64) {
	t.mu.Lock()
	t.speed = speed
	t.mu.Unlock()
}

// Pause freezes the phase angle; Resume continues from the frozen value.
func (t *Ticker) Pause() {
	t.mu.Lock()
	t.paused = true
	t.mu.Unlock()
}

// Resume restarts phase advancement.
func (t *Ticker) Resume() {
	t.mu.Lock()
	t.paused = false
	t.mu.Unlock()
}

// Stop ends the driver goroutine and waits for it to exit. The Ticker must
// not be reused.
func (t *Ticker) Stop() {
	close(t.stop)
	t.wg.Wait()
}
