package inputmask

import (
	"sync"
	"testing"
	"time"
)

type fakeField struct {
	mu         sync.Mutex
	value      string
	selections []Selection
}

func (f *fakeField) Value() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

func (f *fakeField) SetSelectionRange(start, end int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.selections = append(f.selections, Selection{Start: start, End: end})
}

func (f *fakeField) setValue(value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.value = value
}

func (f *fakeField) calls() []Selection {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Selection(nil), f.selections...)
}

func TestCaretPosition(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		prefixLen int
		suffixLen int
		expected  int
	}{
		{"empty without prefix", "", 0, 0, 0},
		{"empty with prefix", "", 4, 2, 4},
		{"no decorations", "1,234.56", 0, 0, 8},
		{"before suffix", "1,234.56 €", 0, 2, 8},
		{"prefix and suffix", "prefix 1@,.1,234.56789" + "1@,. suffix", 11, 11, 22},
		{"multibyte", "€ 12 €", 2, 2, 4},
		{"shorter than suffix", "ab", 0, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CaretPosition(tt.value, tt.prefixLen, tt.suffixLen); got != tt.expected {
				t.Fatalf("CaretPosition(%q) = %d want %d", tt.value, got, tt.expected)
			}
		})
	}
}

func TestTaskQueueFlush(t *testing.T) {
	q := NewTaskQueue()
	var order []int

	q.Schedule(func() { order = append(order, 1) })
	q.Schedule(nil)
	q.Schedule(func() {
		order = append(order, 2)
		q.Schedule(func() { order = append(order, 3) })
	})

	if q.Len() != 2 {
		t.Fatalf("Len() = %d want 2", q.Len())
	}

	if ran := q.Flush(); ran != 2 {
		t.Fatalf("Flush() = %d want 2", ran)
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("order after first flush = %v", order)
	}

	if q.Len() != 1 {
		t.Fatalf("task scheduled during flush should wait, Len() = %d", q.Len())
	}
	q.Flush()
	if len(order) != 3 || order[2] != 3 {
		t.Fatalf("order after second flush = %v", order)
	}
}

func TestSchedulerFunc(t *testing.T) {
	var ran bool
	SchedulerFunc(func(task func()) { task() }).Schedule(func() { ran = true })
	if !ran {
		t.Fatal("SchedulerFunc did not run task")
	}
}

func TestAfterFuncScheduler(t *testing.T) {
	done := make(chan struct{})
	AfterFuncScheduler{Delay: time.Millisecond}.Schedule(func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("task did not run")
	}
}
