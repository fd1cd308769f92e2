// Package signal constructs canonical complex sequences for tests,
// examples, and benchmark inputs: impulses, constants, single-bin tones,
// and deterministic noise. All constructors validate their parameters and
// return freshly allocated sequences.
package signal
