// Package defaults imposes one playback convention on a finished controller.
//
// Generated layers use the explicit convention: a state writes only what its
// clip animates. Pre-existing layers may use either convention. The
// Harmonizer counts the pre-existing states, picks one convention for the
// whole controller, flips every state to it and adds a bottom layer whose
// single state holds the resting value of every property any clip touches,
// so properties fall back to where they were authored whichever convention
// wins.
package defaults
