package render

import "github.com/rs/zerolog"

// Log emits one structured event per draw call.
type Log struct {
	Logger zerolog.Logger
}

func (l Log) Circle(cx, cy, r float64) {
	l.Logger.Info().
		Float64("center_x", cx).
		Float64("center_y", cy).
		Float64("radius", r).
		Msg("draw_circle")
}

func (l Log) Polygon(points []float64) {
	l.Logger.Info().
		Floats64("points", points).
		Msg("draw_polygon")
}
