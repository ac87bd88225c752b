/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: image.go
Description: Image format seeds. Normal payloads are minimal 1x1 images that image
parsers recognise by their magic bytes and headers; simple payloads stop after the
signature so parsers hit their truncated-input paths.
*/

package formats

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
)

var (
	pngSignature  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	jpegSignature = []byte{0xFF, 0xD8}
	gifSignature  = []byte("GIF89a")
	bmpSignature  = []byte("BM")
)

// PNGSignature returns a copy of the PNG magic bytes
func PNGSignature() []byte { return bytes.Clone(pngSignature) }

// JPEGSignature returns a copy of the JPEG start-of-image marker
func JPEGSignature() []byte { return bytes.Clone(jpegSignature) }

// GIFSignature returns a copy of the GIF89a magic bytes
func GIFSignature() []byte { return bytes.Clone(gifSignature) }

// BMPSignature returns a copy of the BMP magic bytes
func BMPSignature() []byte { return bytes.Clone(bmpSignature) }

// 1x1 RGBA PNG: signature, IHDR, IDAT, IEND
var pngNormal = mustHex(
	"89504e470d0a1a0a0000000d49484452000000010000000108060000001f15c489" +
		"0000000a49444154789c63000100000500010d0a2db40000000049454e44ae426082")

var pngSimple = mustHex("89504e470d0a1a0a")

// 1x1 baseline JPEG: SOI, APP0/JFIF, DQT, SOF0, DHT, SOS
var jpegNormal = mustHex(
	"ffd8ffe000104a46494600010100000100010000ffdb0043000101010101010101" +
		"010101010101010101010101010101010101010101010101010101010101010101" +
		"01010101010101010101010101010101010101ffc00011080001000101011100ff" +
		"c4001f0000010501010101010100000000000000000102030405060708090a0bff" +
		"da000c03010002110311003f00f6bfd9")

// SOI followed by the APP0 marker
var jpegSimple = []byte{0xFF, 0xD8, 0xFF, 0xE0}

// BMP layout constants for the 1x1 24-bit image
const (
	BMPHeaderSize     = 54 // file header (14) + BITMAPINFOHEADER (40)
	bmpInfoHeaderSize = 40
	bmpRowSize        = 4 // 3 pixel bytes padded to a 4-byte boundary
)

var bmpNormal = buildBMP()

var bmpSimple = []byte("BM")

// buildBMP lays out a 1x1 24-bit bitmap with one black pixel. Header fields
// carry the real file size and image size.
func buildBMP() []byte {
	size := BMPHeaderSize + bmpRowSize
	b := make([]byte, 0, size)
	b = append(b, bmpSignature...)
	b = binary.LittleEndian.AppendUint32(b, uint32(size))
	b = binary.LittleEndian.AppendUint32(b, 0) // reserved
	b = binary.LittleEndian.AppendUint32(b, BMPHeaderSize)
	b = binary.LittleEndian.AppendUint32(b, bmpInfoHeaderSize)
	b = binary.LittleEndian.AppendUint32(b, 1) // width
	b = binary.LittleEndian.AppendUint32(b, 1) // height
	b = binary.LittleEndian.AppendUint16(b, 1) // planes
	b = binary.LittleEndian.AppendUint16(b, 24)
	b = binary.LittleEndian.AppendUint32(b, 0) // BI_RGB
	b = binary.LittleEndian.AppendUint32(b, bmpRowSize)
	b = binary.LittleEndian.AppendUint32(b, 0) // x pixels per metre
	b = binary.LittleEndian.AppendUint32(b, 0) // y pixels per metre
	b = binary.LittleEndian.AppendUint32(b, 0) // colours used
	b = binary.LittleEndian.AppendUint32(b, 0) // important colours
	return append(b, 0x00, 0x00, 0x00, 0x00)
}

// 1x1 GIF89a without a global colour table, one image block and the trailer
var gifNormal = []byte{
	'G', 'I', 'F', '8', '9', 'a',
	0x01, 0x00, // width
	0x01, 0x00, // height
	0x00,                   // no global colour table
	0x00,                   // background colour
	0x00,                   // pixel aspect ratio
	0x2C,                   // image separator
	0x00, 0x00, 0x00, 0x00, // left, top
	0x01, 0x00, 0x01, 0x00, // width, height
	0x00,                   // no local colour table
	0x02,                   // LZW minimum code size
	0x02,                   // sub-block size
	0x04, 0x01,             // LZW data
	0x00,                   // sub-block terminator
	0x3B,                   // trailer
}

var gifSimple = []byte("GIF89a")

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("formats: bad embedded hex payload: " + err.Error())
	}
	return b
}
