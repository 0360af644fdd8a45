package statuswatch

import (
	"testing"
	"time"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusUp, "up"},
		{StatusDown, "down"},
		{StatusError, "error"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status.String() = %v, want %v", got, tt.want)
		}
	}
}

func TestCheckOutcome_Responded(t *testing.T) {
	responded := CheckOutcome{Target: "A", Status: StatusUp, StatusCode: 200, Latency: 5 * time.Millisecond}
	if !responded.Responded() {
		t.Error("Responded() = false for outcome with a status code, want true")
	}

	timedOut := CheckOutcome{Target: "B", Status: StatusDown, Detail: "timeout"}
	if timedOut.Responded() {
		t.Error("Responded() = true for timeout outcome, want false")
	}
}

func TestSnapshot_Empty(t *testing.T) {
	var s Snapshot

	if s.Len() != 0 {
		t.Errorf("Len() = %v, want 0", s.Len())
	}
	if _, ok := s.Get("anything"); ok {
		t.Error("Get() on empty snapshot returned ok = true")
	}
	if got := s.Outcomes(); len(got) != 0 {
		t.Errorf("Outcomes() = %v entries, want 0", len(got))
	}
}

func TestSnapshot_PreservesOrder(t *testing.T) {
	takenAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	outcomes := []CheckOutcome{
		{Target: "C", Status: StatusUp},
		{Target: "A", Status: StatusDown},
		{Target: "B", Status: StatusError},
	}

	s := NewSnapshot(takenAt, outcomes)

	if !s.TakenAt().Equal(takenAt) {
		t.Errorf("TakenAt() = %v, want %v", s.TakenAt(), takenAt)
	}
	if s.Len() != 3 {
		t.Fatalf("Len() = %v, want 3", s.Len())
	}

	// insertion order, not alphabetical
	wantOrder := []string{"C", "A", "B"}
	for i, o := range s.Outcomes() {
		if o.Target != wantOrder[i] {
			t.Errorf("Outcomes()[%d].Target = %v, want %v", i, o.Target, wantOrder[i])
		}
	}
}

func TestSnapshot_Get(t *testing.T) {
	s := NewSnapshot(time.Now(), []CheckOutcome{
		{Target: "A", Status: StatusUp, StatusCode: 200},
		{Target: "B", Status: StatusDown, Detail: "timeout"},
	})

	a, ok := s.Get("A")
	if !ok {
		t.Fatal("Get(A) ok = false, want true")
	}
	if a.Status != StatusUp || a.StatusCode != 200 {
		t.Errorf("Get(A) = %+v, want up/200", a)
	}

	if _, ok := s.Get("missing"); ok {
		t.Error("Get(missing) ok = true, want false")
	}
}

func TestNewSnapshot_CopiesInput(t *testing.T) {
	outcomes := []CheckOutcome{{Target: "A", Status: StatusUp}}
	s := NewSnapshot(time.Now(), outcomes)

	// mutating the input slice must not leak into the snapshot
	outcomes[0].Status = StatusDown

	got, _ := s.Get("A")
	if got.Status != StatusUp {
		t.Errorf("Get(A).Status = %v after input mutation, want up", got.Status)
	}
}
