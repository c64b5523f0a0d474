// Package tui implements the interactive product catalog.
//
// Built on Bubble Tea, it follows the Elm architecture: AppModel owns a
// catalog.State, and every change arrives as a message in Update. View is a
// pure function of the model.
//
// # Screen
//
// One browse screen inside RenderApplicationContainer:
//   - search box (debounced; the page resets to 1 when the query changes)
//   - list/card toggle
//   - the visible page, as a table (RenderList) or a card grid (RenderCards)
//   - pager with first/prev/next/last controls
//
// Adding or editing a product opens a Form inside a Modal over a dimmed
// backdrop. The form validates on ctrl+s: failures stay inline under each
// field, success emits SubmitMsg and the app merges the payload into the
// catalog. esc emits CancelMsg and drops the draft.
//
// # Key Bindings
//
//   - Browse: / search, ↑/↓ select, ←/→ page, home/end first/last,
//     v toggle layout, n add, enter/e edit, ? more keys, q quit
//   - Search: type to filter, enter applies now, esc leaves the box
//   - Form: tab/shift+tab move between fields, ctrl+s save, esc cancel
//
// # Usage Example
//
//	app := tui.NewAppModel(catalog.New(seed), tui.Options{PageSize: 6})
//	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
//	    return err
//	}
//
// # Thread Safety
//
// All model updates happen on Bubble Tea's update goroutine. The only
// background work is the debounce wait, which reports back as a message.
package tui
