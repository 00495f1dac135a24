package render

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestRecorderCopiesPolygonPoints(t *testing.T) {
	rec := &Recorder{}
	points := []float64{0, 0, 4, 0, 2, 3}
	rec.Polygon(points)
	points[0] = 99

	if !reflect.DeepEqual(rec.Calls[0].Params, []float64{0, 0, 4, 0, 2, 3}) {
		t.Fatalf("recorder must copy points, got %v", rec.Calls[0].Params)
	}
}

func TestTeeFansOut(t *testing.T) {
	a := &Recorder{}
	b := &Recorder{}
	tee := Tee{a, b}

	tee.Circle(1, 2, 3)
	tee.Polygon([]float64{0, 0, 1, 1, 2, 2})

	for _, rec := range []*Recorder{a, b} {
		if len(rec.Calls) != 2 {
			t.Fatalf("expected both calls on each surface, got %d", len(rec.Calls))
		}
		if rec.Calls[0].Op != OpCircle || rec.Calls[1].Op != OpPolygon {
			t.Fatalf("unexpected call order: %+v", rec.Calls)
		}
	}
}

func TestLogSurfaceEmitsEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	l := Log{Logger: logger}

	l.Circle(1.0, 2.0, 5.0)
	l.Polygon([]float64{0, 0, 4, 0, 2, 3})

	out := buf.String()
	if !strings.Contains(out, "draw_circle") || !strings.Contains(out, "draw_polygon") {
		t.Fatalf("missing draw events in output: %s", out)
	}
	if !strings.Contains(out, `"radius":5`) {
		t.Fatalf("missing radius field in output: %s", out)
	}
}
