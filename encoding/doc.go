// Package encoding provides the length-prefixed stream codec used to serialize
// sequences of ustr.String values.
//
// Each string is written as a uvarint byte length followed by the string's code
// units in the stream's text encoding (UTF-8, UTF-16 or UTF-32) and byte order:
//
//	+----------------+---------------------------+
//	| uvarint length | length bytes of text data |
//	+----------------+---------------------------+
//
// UTF-16 and UTF-32 code units are written with the configured endian engine.
// The decoder validates every string it reads, so a stream that decodes without
// error yields only well-formed Strings.
//
// # Usage
//
//	enc, err := encoding.NewStringEncoder(format.EncodingUTF16, endian.GetLittleEndianEngine())
//	if err != nil {
//	    return err
//	}
//	defer enc.Reset()
//	enc.WriteSlice(values)
//	data := bytes.Clone(enc.Bytes())
//
//	dec, err := encoding.NewStringDecoder(data, format.EncodingUTF16, endian.GetLittleEndianEngine())
//	for s, err := range dec.All() {
//	    ...
//	}
//
// Most users should use the higher level pack package, which adds a header,
// deduplication and compression on top of this codec.
package encoding
