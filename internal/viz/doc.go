// Package viz renders the hand model in a terminal.
//
//   - [Model]: Bubble Tea program with a Braille clock face and a scrollable
//     statistics panel
//   - [Canvas]: Braille-based pixel canvas
//   - [Table] and [SpeedPlot]: static report of a run of generations
//
// # Key Bindings
//
//	A        - Add a hand
//	R        - Remove the last hand
//	Up/K     - Scroll panel up
//	Down/J   - Scroll panel down
//	Q        - Quit
package viz
