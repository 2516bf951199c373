package history

import (
	"fmt"
	"testing"
	"time"
)

func paths(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Path
	}
	return out
}

func assertOrder(t *testing.T, got []Entry, want ...string) {
	t.Helper()
	gp := paths(got)
	if len(gp) != len(want) {
		t.Fatalf("got %v, want %v", gp, want)
	}
	for i := range want {
		if gp[i] != want[i] {
			t.Fatalf("got %v, want %v", gp, want)
		}
	}
}

func TestRecordUseMovesToFront(t *testing.T) {
	s := New()
	s.RecordUse("/a")
	s.RecordUse("/b")
	s.RecordUse("/c")
	assertOrder(t, s.List(0), "/c", "/b", "/a")

	got := s.RecordUse("/a")
	assertOrder(t, got, "/a", "/c", "/b")
}

func TestRecordUseBumpsCount(t *testing.T) {
	s := New()
	s.RecordUse("/a")
	before := s.List(0)[0]
	time.Sleep(time.Millisecond)
	after := s.RecordUse("/a")[0]

	if after.UsageCount != 2 {
		t.Errorf("usage count = %d, want 2", after.UsageCount)
	}
	if !after.LastUsed.After(before.LastUsed) {
		t.Error("LastUsed did not advance")
	}
	if s.Len() != 1 {
		t.Errorf("len = %d, want 1 (no duplicate entry)", s.Len())
	}
}

func TestRecordUseIgnoresBlank(t *testing.T) {
	s := New()
	s.RecordUse("/a")
	s.RecordUse("")
	s.RecordUse("   ")
	assertOrder(t, s.List(0), "/a")
}

func TestBoundedAtMaxEntries(t *testing.T) {
	s := New()
	for i := 0; i < MaxEntries+5; i++ {
		s.RecordUse(fmt.Sprintf("/dir/%d", i))
	}
	got := s.List(0)
	if len(got) != MaxEntries {
		t.Fatalf("len = %d, want %d", len(got), MaxEntries)
	}
	if got[0].Path != fmt.Sprintf("/dir/%d", MaxEntries+4) {
		t.Errorf("newest entry = %q", got[0].Path)
	}
	// The oldest five fell off.
	for _, e := range got {
		for i := 0; i < 5; i++ {
			if e.Path == fmt.Sprintf("/dir/%d", i) {
				t.Errorf("evicted entry %q still present", e.Path)
			}
		}
	}
}

func TestListLimit(t *testing.T) {
	s := New()
	s.RecordUse("/a")
	s.RecordUse("/b")
	s.RecordUse("/c")
	if got := s.List(2); len(got) != 2 {
		t.Errorf("List(2) returned %d entries", len(got))
	}
	if got := s.List(10); len(got) != 3 {
		t.Errorf("List(10) returned %d entries", len(got))
	}
}

func TestRemove(t *testing.T) {
	s := New()
	s.RecordUse("/a")
	s.RecordUse("/b")
	if !s.Remove("/a") {
		t.Error("Remove(/a) = false, want true")
	}
	if s.Remove("/a") {
		t.Error("second Remove(/a) = true, want false")
	}
	assertOrder(t, s.List(0), "/b")
}

func TestClear(t *testing.T) {
	s := New()
	s.RecordUse("/a")
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("len after Clear = %d", s.Len())
	}
}

func TestFromEntriesSanitizes(t *testing.T) {
	now := time.Now()
	in := []Entry{
		{Path: "/a", LastUsed: now, UsageCount: 3},
		{Path: "", LastUsed: now, UsageCount: 1},
		{Path: "/a", LastUsed: now, UsageCount: 9},
		{Path: "/b", LastUsed: now, UsageCount: 0},
	}
	s := FromEntries(in)
	got := s.List(0)
	assertOrder(t, got, "/a", "/b")
	if got[0].UsageCount != 3 {
		t.Errorf("first occurrence should win, count = %d", got[0].UsageCount)
	}
	if got[1].UsageCount != 1 {
		t.Errorf("zero usage count should clamp to 1, got %d", got[1].UsageCount)
	}
}

func TestFromEntriesTruncates(t *testing.T) {
	in := make([]Entry, MaxEntries+10)
	for i := range in {
		in[i] = Entry{Path: fmt.Sprintf("/dir/%d", i), LastUsed: time.Now(), UsageCount: 1}
	}
	if got := FromEntries(in).Len(); got != MaxEntries {
		t.Errorf("len = %d, want %d", got, MaxEntries)
	}
}

func TestFromPathsMigration(t *testing.T) {
	s := FromPaths([]string{"/a", "/b", "/a", "/c"})
	got := s.List(0)
	assertOrder(t, got, "/a", "/b", "/c")
	for _, e := range got {
		if e.UsageCount != 1 {
			t.Errorf("%s: usage count = %d, want 1", e.Path, e.UsageCount)
		}
		if e.LastUsed.IsZero() {
			t.Errorf("%s: zero timestamp", e.Path)
		}
	}
}
