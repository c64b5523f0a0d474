package debounce

import (
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// runAll executes commands concurrently, the way the Bubble Tea runtime does,
// and returns the non-nil messages in command order.
func runAll(cmds ...tea.Cmd) []tea.Msg {
	results := make([]tea.Msg, len(cmds))
	var wg sync.WaitGroup
	for i, cmd := range cmds {
		wg.Add(1)
		go func(i int, cmd tea.Cmd) {
			defer wg.Done()
			results[i] = cmd()
		}(i, cmd)
	}
	wg.Wait()

	var msgs []tea.Msg
	for _, msg := range results {
		if msg != nil {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}

func TestBurstPropagatesOnce(t *testing.T) {
	v := New("", 20*time.Millisecond)

	var cmds []tea.Cmd
	for _, q := range []string{"a", "ab", "abc"} {
		var cmd tea.Cmd
		v, cmd = v.Set(q)
		cmds = append(cmds, cmd)
	}

	if v.Value() != "" {
		t.Fatalf("Value() = %q before the delay elapsed, want empty", v.Value())
	}

	start := time.Now()
	msgs := runAll(cmds...)
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("propagation arrived after %v, want at least the delay", elapsed)
	}

	if len(msgs) != 1 {
		t.Fatalf("got %d propagations, want exactly 1", len(msgs))
	}

	var changed bool
	v, changed = v.Update(msgs[0])
	if !changed {
		t.Error("Update() changed = false, want true")
	}
	if v.Value() != "abc" {
		t.Errorf("Value() = %q, want %q", v.Value(), "abc")
	}
	if v.Scheduled() {
		t.Error("Scheduled() = true after firing")
	}
}

func TestStaleFireMsgIgnored(t *testing.T) {
	v := New("", time.Hour)
	v, _ = v.Set("a")
	staleTag := v.tag
	v, _ = v.Set("ab")

	v, changed := v.Update(FireMsg{ID: v.ID(), Tag: staleTag})
	if changed || v.Value() != "" {
		t.Errorf("stale FireMsg applied: changed=%v value=%q", changed, v.Value())
	}

	v, changed = v.Update(FireMsg{ID: v.ID(), Tag: v.tag})
	if !changed || v.Value() != "ab" {
		t.Errorf("current FireMsg not applied: changed=%v value=%q", changed, v.Value())
	}
}

func TestFireMsgForOtherValueIgnored(t *testing.T) {
	a := New("", time.Hour)
	b := New("", time.Hour)
	a, _ = a.Set("x")

	a, changed := a.Update(FireMsg{ID: b.ID(), Tag: 1})
	if changed || a.Value() != "" {
		t.Error("FireMsg from another Value was applied")
	}
}

func TestUnchangedValueReportsNoChange(t *testing.T) {
	v := New("same", time.Hour)
	v, _ = v.Set("same")

	v, changed := v.Update(FireMsg{ID: v.ID(), Tag: v.tag})
	if changed {
		t.Error("Update() changed = true when value did not move")
	}
	if v.Scheduled() {
		t.Error("Scheduled() = true after firing")
	}
}

func TestStopCancelsPendingTimer(t *testing.T) {
	v := New("", time.Hour)
	v, cmd := v.Set("abc")
	tag := v.tag

	v = v.Stop()
	if v.Scheduled() {
		t.Error("Scheduled() = true after Stop")
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		if msg != nil {
			t.Errorf("canceled command returned %v, want nil", msg)
		}
	case <-time.After(time.Second):
		t.Fatal("canceled command did not return; timer leaked")
	}

	v, changed := v.Update(FireMsg{ID: v.ID(), Tag: tag})
	if changed || v.Value() != "" {
		t.Error("FireMsg applied after Stop")
	}
}

func TestDefaultDelay(t *testing.T) {
	if d := New(0, 0).Delay(); d != DefaultDelay {
		t.Errorf("Delay() = %v, want %v", d, DefaultDelay)
	}
}

func TestFlushAppliesImmediately(t *testing.T) {
	v := New("", time.Hour)
	v, cmd := v.Set("desk")

	v, changed := v.Flush()
	if !changed || v.Value() != "desk" {
		t.Fatalf("Flush() = %q, changed=%v", v.Value(), changed)
	}
	if v.Scheduled() {
		t.Error("Scheduled() = true after Flush")
	}
	if msg := cmd(); msg != nil {
		t.Errorf("flushed command returned %v, want nil", msg)
	}

	if _, changed := v.Flush(); changed {
		t.Error("second Flush() reported a change")
	}
}
