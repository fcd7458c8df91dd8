package mail

import "testing"

func TestInboxAccessors(t *testing.T) {
	in := NewInbox()

	if in.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", in.Len())
	}
	if got := in.ByID(4); got == nil || got.Subject != "Meeting Request: Project Collaboration" {
		t.Errorf("ByID(4) = %+v", got)
	}
	if got := in.ByID(99); got != nil {
		t.Errorf("ByID(99) = %+v, want nil", got)
	}
	if len(in.All()) != in.Len() {
		t.Error("All() and Len() disagree")
	}
}

func TestEmailProcessed(t *testing.T) {
	e := &Email{}
	if e.Processed() {
		t.Error("zero-value email should not be processed")
	}
	e.Category = CategoryError
	if !e.Processed() {
		t.Error("errored email counts as processed")
	}
}
