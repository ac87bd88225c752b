/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: binary.go
Description: Packed binary record seed. The normal "binary"/"bin" seed is a fixed
little-endian record mixing integer widths with a fixed-length string field.
*/

package formats

import (
	"encoding/binary"
	"fmt"
)

// Binary record layout, little-endian, no padding:
//
//	offset 0  uint32   Magic
//	offset 4  uint32   Count
//	offset 8  uint16   Width
//	offset 10 uint16   Flags
//	offset 12 [10]byte Tag
const (
	BinaryRecordMagic uint32 = 0x12345678
	BinaryRecordSize         = 22
	binaryTagSize            = 10
)

// BinaryRecord is the structure packed into the binary seed
type BinaryRecord struct {
	Magic uint32
	Count uint32
	Width uint16
	Flags uint16
	Tag   [binaryTagSize]byte
}

// MarshalBinary packs the record into its fixed 22-byte layout
func (r BinaryRecord) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, BinaryRecordSize)
	b = binary.LittleEndian.AppendUint32(b, r.Magic)
	b = binary.LittleEndian.AppendUint32(b, r.Count)
	b = binary.LittleEndian.AppendUint16(b, r.Width)
	b = binary.LittleEndian.AppendUint16(b, r.Flags)
	return append(b, r.Tag[:]...), nil
}

// UnmarshalBinary decodes a packed record. Trailing bytes are rejected.
func (r *BinaryRecord) UnmarshalBinary(data []byte) error {
	if len(data) != BinaryRecordSize {
		return fmt.Errorf("binary record must be %d bytes, got %d", BinaryRecordSize, len(data))
	}
	r.Magic = binary.LittleEndian.Uint32(data[0:4])
	r.Count = binary.LittleEndian.Uint32(data[4:8])
	r.Width = binary.LittleEndian.Uint16(data[8:10])
	r.Flags = binary.LittleEndian.Uint16(data[10:12])
	copy(r.Tag[:], data[12:])
	return nil
}

var seedRecord = BinaryRecord{
	Magic: BinaryRecordMagic,
	Count: 100,
	Width: 200,
	Flags: 16,
	Tag:   [binaryTagSize]byte{'t', 'e', 's', 't', 'd', 'a', 't', 'a', '1', '2'},
}

func binaryNormal() []byte {
	b, _ := seedRecord.MarshalBinary()
	return b
}

var binarySimple = []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05}
