// Package sim provides the tick-driven airplane boarding simulation engine.
//
// # Reading Guide
//
// Start with these files to understand the engine:
//   - grid.go, cell.go: the cabin layout (entrance row, seat rows, one alley column)
//   - passenger.go: the per-tick movement state machine (down the alley, then sideways)
//   - ordering.go: boarding order policies, including the modified Steffen method
//   - simulator.go: Tick, Pause/Resume and change notification
//
// # Model
//
// Every passenger starts at the single entrance cell. Each tick, passengers
// are visited in list order and step one cell towards their assigned seat.
// Cells do not limit occupancy: passengers may pool in a cell or pass through
// an occupied seat. The ordering policy, applied once before the run, is what
// shapes the boarding sequence.
//
// The engine owns no clock. Callers decide when to call Simulator.Tick and how
// to display Simulator.Snapshot (see sim/render/).
package sim
