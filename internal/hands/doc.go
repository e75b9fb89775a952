// Package hands models the hands of a clock whose every added hand spins a
// fixed factor faster than the one before it.
//
//   - [Hand]: period plus its derived angular velocity, tip speed and
//     light-speed ratio, computed once by [Derive]
//   - [Collection]: ordered, never-empty set of hands with [Collection.Add]
//     and [Collection.Remove]
//
// Speeds are classical. A hand whose tip outruns light is only flagged
// through its color, never corrected.
package hands
