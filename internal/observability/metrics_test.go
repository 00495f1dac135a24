package observability

import (
	"testing"
	"time"

	"github.com/danmuck/shapectl/internal/testutil/testlog"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	testlog.Start(t)
	RegisterMetrics()
	RegisterMetrics()

	RecordHTTPRequest("shaped", "GET", "/health", 200, 12*time.Millisecond)
	RecordDecode("circle", "ok")
	RecordDecode("", "error")
	RecordDecodeError("truncated")
	RecordDraw("triangle")
}
