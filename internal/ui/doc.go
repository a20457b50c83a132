// Package ui contains the Bubble Tea program that drives the ESP menu.
// The Model type focuses on message orchestration, while dedicated helpers own
// navigation, command dispatch, the widgets and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Each tea.Msg is
//     routed through a typed handler registry so it is handled by a focused
//     function.
//   - Key presses are decoded into handheld button events (up, down, left,
//     right, ok, long ok, back) and routed by the active view: list views go
//     through handleListEvent, the text input, modal and terminal views own
//     their keys.
//   - Navigation helpers (navigation.go) implement the view state machine:
//     which view follows which event, how Previous is recorded and restored,
//     and the Back rules. Variant cycling relabels row 0 in place.
//   - The dispatcher (dispatch.go) runs a selected descriptor through its
//     gates in order: liveness, the two-stage connect input, free text,
//     confirmation, the cyclable slot and the capture sink.
//
// State ownership:
//   - internal/ui/state.Navigation holds the current and previous view,
//     selection memory, variant cursors and the connect flow. It lives as long
//     as the Model.
//   - Each list view keeps its rows and cursor in a state.Level.
//   - A confirmation modal owns its pending descriptor until OK or Cancel takes
//     it; results carry the modal token so a stale resolution is dropped.
//   - Outbound lines go through the internal/ui/command bus, which writes them
//     in order and reports each result back into the loop.
//
// Backend interactions:
//   - A backend.Watcher streams received output and link state. Update waits
//     for those events and hands them to applyBackendEvent, which refreshes the
//     terminal and link stores through the data dispatcher.
package ui
