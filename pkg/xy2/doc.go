// Package xy2 provides XY2-100 protocol support.
//
// XY2-100 is the serial protocol between a scanner controller and a laser
// galvanometer driver. Each axis (X, Y, Z) has its own data line and all axes
// share a SYNC line.
//
// # Protocol Overview
//
// One frame is 20 clock periods long:
//
//	bit:   0  1  2  3 ........................... 18 19
//	std:   0  0  1  P15 ........................ P0  p   (even parity over 3..19)
//	enh:   1  P17 ............................... P0  p   (odd parity over 1..19)
//
// SYNC is high for bits 0..18 and low for bit 19, so the frame start is the
// SYNC edge seen on bit 0. The polarity is configurable with SyncConvention.
//
// # Decoding
//
// Assembler and FrameReader build RawFrames from clock-aligned samples (one
// per clock edge) of a data lane and the SYNC lane. ParallelAssembler does
// the same for all lanes of a parallel sampler word. Decode classifies a
// RawFrame and checks parity, Labeler tags the result with its axis.
//
// There is no clock recovery and positions are not scaled into physical
// units.
package xy2
