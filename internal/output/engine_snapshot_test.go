package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"

	"github.com/martgra/kjopekraft-sub001/internal/calculation"
	"github.com/martgra/kjopekraft-sub001/internal/config"
	"github.com/martgra/kjopekraft-sub001/internal/domain"
)

func loadTestReport(t *testing.T) *domain.SalaryReport {
	t.Helper()
	parser := config.NewInputParser()
	profile, err := parser.LoadFromFile(filepath.Join("testdata", "profile.yaml"))
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	report, err := calculation.NewCalculationEngine().Evaluate(profile)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	return report
}

// TestEngineSnapshot produces a deterministic snapshot of core report metrics.
func TestEngineSnapshot(t *testing.T) {
	report := loadTestReport(t)

	// Trim to stable summary fields only
	var out struct {
		BaseYear        int      `json:"base_year"`
		LatestPay       string   `json:"latest_pay"`
		AdjustedPay     string   `json:"inflation_adjusted_pay"`
		GapPercent      string   `json:"gap_percent"`
		PurchasingPower []string `json:"purchasing_power"`
		Insights        []string `json:"insights"`
	}
	out.BaseYear = report.BaseYear
	out.LatestPay = report.Statistics.LatestPay.StringFixed(0)
	out.AdjustedPay = report.Statistics.InflationAdjustedPay.StringFixed(0)
	out.GapPercent = report.Statistics.GapPercent.StringFixed(1)
	for _, r := range report.Rows {
		out.PurchasingPower = append(out.PurchasingPower, r.PurchasingPowerDelta.StringFixed(0))
	}
	for _, in := range report.Insights {
		out.Insights = append(out.Insights, string(in.Kind))
	}
	data, _ := json.MarshalIndent(out, "", "  ")

	goldenPath := filepath.Join("testdata", "engine_snapshot.golden.json")
	update := os.Getenv("UPDATE_GOLDEN") == "1"
	if update {
		if err := os.WriteFile(goldenPath, data, 0644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
	}
	golden, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	if string(golden) == "" {
		t.Fatalf("empty golden snapshot")
	}
	if string(golden) != string(data) {
		t.Fatalf("engine snapshot drift; run UPDATE_GOLDEN=1 to accept\n--- have ---\n%s\n--- want ---\n%s", string(data), string(golden))
	}
}
