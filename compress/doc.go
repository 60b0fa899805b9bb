// Package compress provides codecs for shipping encoded swatch files compactly.
//
// ASE files are mostly UTF-16 names and float32 channel values, which compress
// well. A Codec is applied to the complete encoded file; the ASE bytes
// themselves are never altered, so decompressing always yields a file that
// design tools can read.
//
// Supported algorithms (see format.CompressionType):
//   - None: the file is returned as-is
//   - Zstd: best ratio, standard zstd frames (klauspost/compress)
//   - S2: fast, Snappy-compatible block format (klauspost/compress)
//   - LZ4: fast, standard LZ4 frames (pierrec/lz4)
//
// Example:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(aseBytes)
//
// All codecs are stateless values and safe for concurrent use.
package compress
