// Package pack implements a self-describing binary container for a sequence of
// ustr.String values.
//
// # Format
//
//	+-----------------+---------------------+------------------------------+
//	| header 16 bytes | checksum (optional) | payload (optionally compressed) |
//	+-----------------+---------------------+------------------------------+
//
// The header carries a magic number, the text encoding of the entries, the
// compression type, the string count, the table size and the uncompressed payload
// size. Its Options field is always little-endian; every other multi-byte field,
// the checksum and all UTF-16/UTF-32 code units use the byte order selected by the
// endianness flag.
//
// The uncompressed payload is a table of length-prefixed entries written by the
// encoding package. With deduplication enabled the table holds each distinct
// string once, followed by one uvarint table reference per string.
//
// # Usage
//
//	enc, err := pack.NewEncoder(
//	    pack.WithTextEncoding(format.EncodingUTF16),
//	    pack.WithCompression(format.CompressionLZ4),
//	    pack.WithDedup(true),
//	    pack.WithChecksum(true),
//	)
//	if err != nil {
//	    return err
//	}
//	for _, s := range values {
//	    if err := enc.Add(s); err != nil {
//	        return err
//	    }
//	}
//	data, err := enc.Finish()
//
//	p, err := pack.Decode(data)
//	for i, s := range p.All() {
//	    fmt.Println(i, s)
//	}
//
// Decoding validates the header, the checksum, the payload structure and every
// string, so a Pack returned without error holds only well-formed Strings.
package pack
