// Package face runs the clock's frame loop: it drains input, draws the
// analog face with one line per hand, the add and remove buttons, and a
// clipped, scrollable panel of per-hand statistics.
//
// Drawing goes through a [Backend] so the loop can be exercised without a
// window. The desktop implementation lives in package gui.
package face
