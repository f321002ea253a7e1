// Package capture provides parallel sample sources: logic analyzer exports,
// sampler packet streams and a synthesizer.
package capture
