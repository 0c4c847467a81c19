// Package spanfmt defines the span-formatting capability consumed by the
// fixed string buffers, plus adapters that give ordinary Go values that
// capability.
//
// A Formatter renders a value into a caller-supplied span of UTF-16 code
// units. It must never write past the span and must report exactly how
// many units it wrote. Every adapter in this package is all-or-nothing:
// when the full rendering does not fit, it writes nothing and reports
// failure. This keeps partially rendered numbers (a truncated digit
// string, a bare minus sign) from ever reaching a buffer.
//
// # Usage
//
// Adapters wrap plain values so they can be appended to any fixed string:
//
//	var s buffer.String32
//	s.AppendString("port=")
//	s.AppendFormat(spanfmt.Int(8080), "")
//	s.AppendFormat(spanfmt.Uint(0xBEEF), "X")
//
// Custom types gain the capability by implementing Formatter themselves;
// the fixed string types implement it too, so buffers nest into other
// buffers.
package spanfmt
