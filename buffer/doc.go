// Package buffer provides fixed-capacity, stack-allocated UTF-16 string
// buffers.
//
// Four variants hold up to 7, 15, 31, or 63 code units inline, in a
// struct of exactly 8, 16, 32, or 64 uint16 storage units: one unit for
// the length field plus one per character cell. The types never touch
// the heap except in String(), which materializes an owned Go string.
//
// # Core Features
//
//   - Silent truncation on overflow: appends never raise an error, they
//     drop whatever does not fit (a hot-path formatting policy)
//   - Incremental composition: literal, formatted, and width-aligned
//     segments build up a string through a sequence of append calls
//   - Field alignment: negative widths left-align (spaces appended),
//     positive widths right-align (content shifted, spaces inserted)
//   - Content equality and FNV-1a hashing across all capacities
//   - Nested formatting: every variant is itself a spanfmt.Formatter,
//     so one buffer can be formatted into another
//   - Deterministic fixed-size binary images via Bytes/Parse
//
// # Basic Usage
//
//	var s buffer.String32
//	s.AppendString("cpu=")
//	s.AppendFormatAligned(spanfmt.Float(99.5), 6, "f1")
//	s.AppendString("%")
//	fmt.Println(s.String()) // "cpu=  99.5%"
//
// Capacity-agnostic code depends on the FixedString interface;
// capacity-specific code reads the CapN constants.
//
// The variants are plain values: assignment copies content, independent
// copies are safe to use concurrently, and a single instance shared by
// several goroutines needs external synchronization like any other
// mutable value. Cells beyond Len() hold stale content, so compare with
// Equal, never with ==.
package buffer
