/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: boundary.go
Description: Boundary condition payloads. A fixed, mode-independent set of inputs
that probe edge-of-input behaviour in target parsers: empty input, oversized
repeated runs, null bytes, the high half of the byte range and mixed text/binary.
*/

package boundary

import (
	"bytes"
	"fmt"
)

// Payload is a named boundary generator
type Payload struct {
	Name     string
	Generate func() []byte
}

const (
	largeRunLength = 1000
	nullCount      = 100
)

var payloads = []Payload{
	{Name: "empty", Generate: empty},
	{Name: "large", Generate: large},
	{Name: "nulls", Generate: nulls},
	{Name: "high_ascii", Generate: highASCII},
	{Name: "mixed", Generate: mixed},
}

// Payloads returns the five boundary payloads in their fixed output order
func Payloads() []Payload {
	out := make([]Payload, len(payloads))
	copy(out, payloads)
	return out
}

// Names returns the payload names in output order
func Names() []string {
	names := make([]string, len(payloads))
	for i, p := range payloads {
		names[i] = p.Name
	}
	return names
}

// Lookup returns the payload with the given name
func Lookup(name string) (Payload, bool) {
	for _, p := range payloads {
		if p.Name == name {
			return p, true
		}
	}
	return Payload{}, false
}

// FileName returns the on-disk name for a boundary payload
func FileName(name string) string {
	return fmt.Sprintf("seed_%s.dat", name)
}

func empty() []byte {
	return []byte{}
}

// Two distinguishable runs separated by a line break
func large() []byte {
	b := make([]byte, 0, 2*largeRunLength+1)
	b = append(b, bytes.Repeat([]byte{'A'}, largeRunLength)...)
	b = append(b, '\n')
	return append(b, bytes.Repeat([]byte{'B'}, largeRunLength)...)
}

func nulls() []byte {
	return make([]byte, nullCount)
}

// Every value in [128, 255] once, ascending
func highASCII() []byte {
	b := make([]byte, 0, 128)
	for v := 128; v <= 255; v++ {
		b = append(b, byte(v))
	}
	return b
}

func mixed() []byte {
	var b bytes.Buffer
	b.WriteString("TEXT_START")
	b.Write([]byte{0x00, 0x01, 0x02, 0x03})
	b.WriteString("TEXT_MIDDLE")
	b.Write([]byte{0xFF, 0xFE, 0xFD})
	b.WriteString("TEXT_END")
	return b.Bytes()
}
