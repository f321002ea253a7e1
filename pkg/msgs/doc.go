// Package msgs provides the message schemas exchanged between the sampler,
// the decoder and monitors.
package msgs

// Sampler publishes SampleBatch messages. The decoder consumes them and
// publishes Frame and FrameError messages.
//
// Producer: sampler / decoder
// Consumer: decoder / monitor
