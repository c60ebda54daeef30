package metrics

import (
	"strings"
	"testing"
)

func TestRenderCounters(t *testing.T) {
	IncRequest("cost")
	IncRequest("cost")
	IncEstimate(EstimateOutcomeOK)

	out := Render()

	if !strings.Contains(out, "# TYPE machinecost_http_requests_total counter") {
		t.Error("missing request counter header")
	}
	if !strings.Contains(out, `machinecost_http_requests_total{endpoint="cost"}`) {
		t.Errorf("missing cost endpoint counter:\n%s", out)
	}
	if !strings.Contains(out, `machinecost_estimates_total{outcome="ok"} `) {
		t.Errorf("missing estimate outcome counter:\n%s", out)
	}
}
