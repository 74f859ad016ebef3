package textmetrics

import "testing"

func TestStubWidth(t *testing.T) {
	var tm TextMetrics = Stub{}
	if got := tm.Width("ATP"); got != 18 {
		t.Fatalf("Width(\"ATP\") = %v, want 18", got)
	}
	if got := tm.Width(""); got != 0 {
		t.Fatalf("Width(\"\") = %v, want 0", got)
	}
}

func TestStubHeight(t *testing.T) {
	var tm TextMetrics = Stub{}
	if got := tm.Height(); got != 12 {
		t.Fatalf("Height() = %v, want 12", got)
	}
}
