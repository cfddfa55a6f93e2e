package gopbt

import (
	"testing"

	"gopbt/property"
)

// Run the property and fail the test if it does not pass.
//
// The report and the seed needed to replay the run are written to the test log on failure.
func Check(t testing.TB, p property.Testable, opts ...RunOption) property.Report {
	t.Helper()
	r, err := PrepareRunner(opts...)
	if err != nil {
		t.Fatalf("Invalid configuration: %v", err)
		return property.Report{}
	}
	report := r.Run(p)
	if !report.OK() {
		t.Errorf("%v\nReplay with GOPBT_SEED=%v", report, r.Seed())
	}
	return report
}
