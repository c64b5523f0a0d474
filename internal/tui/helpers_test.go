package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/catalog/internal/catalog"
	"github.com/muurk/catalog/internal/debounce"
	"github.com/muurk/catalog/internal/product"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// typeInto sends s to the form one rune at a time.
func typeInto(f Form, s string) Form {
	for _, r := range s {
		f, _ = f.Update(runes(string(r)))
	}
	return f
}

func newTestApp(t *testing.T, delay time.Duration) AppModel {
	t.Helper()
	seed, err := product.DefaultSeed()
	if err != nil {
		t.Fatalf("DefaultSeed() error = %v", err)
	}
	return NewAppModel(catalog.New(seed), Options{
		PageSize: 6,
		Debounce: delay,
		View:     catalog.ViewList,
		Prices:   product.NewPriceFormatter("en-US", "$"),
	})
}

func send(t *testing.T, m AppModel, msgs ...tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var model tea.Model
		model, cmd = m.Update(msg)
		m = model.(AppModel)
	}
	return m, cmd
}

func typeIntoApp(t *testing.T, m AppModel, s string) (AppModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, r := range s {
		m, cmd = send(t, m, runes(string(r)))
	}
	return m, cmd
}

// waitForFire runs cmd (expanding batches) until a debounce.FireMsg appears.
func waitForFire(t *testing.T, cmd tea.Cmd) debounce.FireMsg {
	t.Helper()
	msgs := make(chan tea.Msg, 32)

	var run func(tea.Cmd)
	run = func(c tea.Cmd) {
		if c == nil {
			return
		}
		go func() {
			msg := c()
			if batch, ok := msg.(tea.BatchMsg); ok {
				for _, sub := range batch {
					run(sub)
				}
				return
			}
			msgs <- msg
		}()
	}
	run(cmd)

	timeout := time.After(2 * time.Second)
	for {
		select {
		case msg := <-msgs:
			if fire, ok := msg.(debounce.FireMsg); ok {
				return fire
			}
		case <-timeout:
			t.Fatal("no debounce.FireMsg within 2s")
			return debounce.FireMsg{}
		}
	}
}
