// Package log provides structured codec event logging for RDM messages.
//
// The serializer and deserializer in package rdm emit one Event per pack or
// unpack call when a Logger is configured. Events are separate from
// operational logging (slog): they form a machine-readable trace of the bytes
// that went through the codec and the outcome of each call.
//
// # Basic Usage
//
//	// During development: print events through slog
//	cfg.Logger = log.NewSlogAdapter(slog.Default())
//
//	// Capture: write a CBOR event stream
//	cfg.Logger = log.NewStreamLogger(w)
//
//	// Both
//	cfg.Logger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    log.NewStreamLogger(w),
//	)
//
// # Event Types
//
//   - Message: a successful pack or unpack (MessageEvent)
//   - Error: a rejected unpack (ErrorEventData)
//
// # Stream Format
//
// Streams are a plain sequence of CBOR-encoded events with integer keys.
// NewCompressedStreamLogger wraps the sequence in a zstd stream; read it back
// with NewCompressedReader.
package log
