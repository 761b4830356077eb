// Package pickertest provides helpers for deterministic picker tests.
//
// # Quick Start
//
// Install a fake clock, drive a column with a gesture, and settle it:
//
//	func TestFling(t *testing.T) {
//	    clk := pickertest.InstallClock(t)
//	    col := picker.NewColumn(picker.ColumnConfig{Key: picker.ColumnDay})
//	    col.SetOptions(opts)
//
//	    pickertest.Fling(clk, col, 400, 100, 50*time.Millisecond)
//	    pickertest.Settle(clk)
//	}
//
// # Haptics
//
// RecordingHaptics implements haptics.Coordinator and records each call,
// so tests can assert which feedback a gesture produced.
//
// # Animation Testing
//
// Settle steps animation tickers at 60fps on the fake clock until no
// ticker is active. Tickers are process-global, so tests that drive
// motion must not run in parallel.
package pickertest
