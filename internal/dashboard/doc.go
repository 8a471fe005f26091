// Package dashboard implements the real-time TUI for local system metrics.
//
// The dashboard displays CPU, memory, disk, network, and GPU statistics for
// the local machine, with color-coded gauges and a scrollable per-core list.
//
// # Architecture
//
// The package uses the Bubble Tea framework, which follows The Elm Architecture
// (Model-Update-View pattern):
//
//   - Model: Holds application state (latest snapshot, history, scroll offset)
//   - Update: Processes messages (keystrokes, tick events, new snapshots)
//   - View: Renders the current state to a string for display
//
// # Key Components
//
//	Model       - The Bubble Tea model containing all dashboard state
//	Sampler     - Produces one metrics snapshot per sampling tick
//	History     - Ring buffer storage for historical metrics (sparkline graphs)
//	ScrollState - Clamped scroll offset for the per-core CPU list
//
// # Message Flow
//
// The dashboard operates on two independent tick cycles:
//
//  1. sampleTickMsg fires at the sampling interval (default 1s)
//  2. sampleCmd() runs the sampler off the UI goroutine
//  3. snapshotMsg arrives with the new snapshot, replacing the previous one
//     wholesale and feeding the history buffers
//  4. renderTickMsg fires at the render interval (default 100ms) so gauges
//     and sparklines stay fluid between samples
//
// The view only ever reads the current snapshot pointer; a snapshot is never
// mutated after it arrives, so a render between two samples always shows one
// coherent set of readings.
//
// # Keyboard Shortcuts
//
// Navigation and control is handled via keybindings defined in keybindings.go:
//
//	q, Ctrl+C        - Quit
//	j/k, ↑/↓         - Scroll the core list
//	Ctrl+D/Ctrl+U    - Scroll the core list by a page
//	Home/End         - Jump to first / last core
//	?                - Toggle expanded help
package dashboard
