// ABOUTME: Audio package documentation
// ABOUTME: Describes shared audio types and errors
// Package audio defines the PCM format shared by decoders and outputs,
// sample range conversions, and the engine's error taxonomy.
//
// All decoded audio in this module is interleaved signed 16-bit PCM.
package audio
