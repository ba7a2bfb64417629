// Package ddf implements a decoder and encoder for the binary Escher record
// format.
//
// The easiest way to decode and encode records is through Decoder.Decode and
// Serialize. These decode and encode directly between byte buffers and the
// record trees of the escher package.
//
// All values are little-endian. Every record begins with an 8-byte header:
//
//	options  uint16 // instance (upper 12 bits) and version (lower 4 bits)
//	recordID uint16
//	length   uint32 // length of the body
//
// The body of a container is a sequence of records. The body of an Opt record
// is a sequence of 6-byte property headers, followed by the payloads of the
// complex properties in the same order:
//
//	id    uint16 // number (14 bits), picture flag, complex flag
//	value uint32 // the value, or the length of the payload
//
// The payload of an array property begins with a 6-byte header:
//
//	numElements         uint16
//	numElementsInMemory uint16
//	elementSize         int16 // negative values encode (-elementSize)>>2
package ddf
