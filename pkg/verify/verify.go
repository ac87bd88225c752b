/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: verify.go
Description: Seed inspection. Confirms that generated seeds are recognisable as the
format they claim to be: magic bytes for binary formats, and for normal-mode seeds a
structural parse of the headers or document. This checks the generator's own output;
it says nothing about whether any particular fuzz target accepts a seed.
*/

package verify

import (
	"bytes"
	"encoding/binary"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"image/gif"
	"image/png"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/kleascm/akaylee-seedgen/pkg/formats"
)

// ErrMalformed is wrapped by every check failure
var ErrMalformed = errors.New("malformed seed")

var magic = []struct {
	id     string
	prefix []byte
}{
	{"png", formats.PNGSignature()},
	{"gif", formats.GIFSignature()},
	{"jpg", formats.JPEGSignature()},
	{"pdf", []byte("%PDF")},
	{"bmp", formats.BMPSignature()},
	{"xml", []byte("<?xml")},
	{"html", []byte("<!DOCTYPE html")},
	{"html", []byte("<html")},
}

// Sniff returns the identifier whose magic prefix matches data, or "" when none does
func Sniff(data []byte) string {
	for _, m := range magic {
		if bytes.HasPrefix(data, m.prefix) {
			return m.id
		}
	}
	return ""
}

// Check validates a seed for the given identifier and mode
func Check(id string, data []byte, mode formats.Mode) error {
	if !formats.ForMode(mode).Has(id) {
		return fmt.Errorf("%w: %q", formats.ErrUnknownFormat, id)
	}

	var err error
	switch id {
	case "png":
		err = checkPNG(data, mode)
	case "gif":
		err = checkGIF(data, mode)
	case "jpg":
		err = checkJPEG(data, mode)
	case "bmp":
		err = checkBMP(data, mode)
	case "pdf":
		err = checkPDF(data, mode)
	case "json":
		err = checkJSON(data, mode)
	case "xml":
		err = checkXML(data)
	case "html":
		err = checkHTML(data)
	case "csv":
		err = checkCSV(data)
	case "txt":
		err = checkText(data)
	case "binary", "bin":
		err = checkBinary(data, mode)
	case "empty":
		if len(data) != 0 {
			err = fmt.Errorf("expected no bytes, got %d", len(data))
		}
	}

	if err != nil {
		return fmt.Errorf("%w: %s (%s mode): %v", ErrMalformed, id, mode, err)
	}
	return nil
}

func requirePrefix(data, prefix []byte) error {
	if !bytes.HasPrefix(data, prefix) {
		return fmt.Errorf("missing magic bytes %x", prefix)
	}
	return nil
}

func checkPNG(data []byte, mode formats.Mode) error {
	if err := requirePrefix(data, formats.PNGSignature()); err != nil || mode == formats.ModeSimple {
		return err
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return err
	}
	if cfg.Width != 1 || cfg.Height != 1 {
		return fmt.Errorf("expected 1x1 image, got %dx%d", cfg.Width, cfg.Height)
	}
	if !bytes.HasSuffix(data, []byte("IEND\xae\x42\x60\x82")) {
		return errors.New("missing IEND chunk")
	}
	return nil
}

func checkGIF(data []byte, mode formats.Mode) error {
	if err := requirePrefix(data, formats.GIFSignature()); err != nil || mode == formats.ModeSimple {
		return err
	}
	cfg, err := gif.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return err
	}
	if cfg.Width != 1 || cfg.Height != 1 {
		return fmt.Errorf("expected 1x1 image, got %dx%d", cfg.Width, cfg.Height)
	}
	if data[len(data)-1] != 0x3B {
		return errors.New("missing trailer")
	}
	return nil
}

// The JPEG seed is a fixed byte string; check the SOI marker and the JFIF APP0 segment
func checkJPEG(data []byte, mode formats.Mode) error {
	if err := requirePrefix(data, formats.JPEGSignature()); err != nil || mode == formats.ModeSimple {
		return err
	}
	if len(data) < 11 || data[2] != 0xFF || data[3] != 0xE0 || string(data[6:11]) != "JFIF\x00" {
		return errors.New("missing JFIF APP0 segment")
	}
	return nil
}

func checkBMP(data []byte, mode formats.Mode) error {
	if err := requirePrefix(data, formats.BMPSignature()); err != nil || mode == formats.ModeSimple {
		return err
	}
	if len(data) < formats.BMPHeaderSize {
		return fmt.Errorf("header truncated at %d bytes", len(data))
	}
	le := binary.LittleEndian
	if size := le.Uint32(data[2:6]); int(size) != len(data) {
		return fmt.Errorf("file size field %d does not match length %d", size, len(data))
	}
	if offset := le.Uint32(data[10:14]); offset != formats.BMPHeaderSize {
		return fmt.Errorf("unexpected pixel data offset %d", offset)
	}
	width, height := int32(le.Uint32(data[18:22])), int32(le.Uint32(data[22:26]))
	if width != 1 || height != 1 {
		return fmt.Errorf("expected 1x1 image, got %dx%d", width, height)
	}
	if bpp := le.Uint16(data[28:30]); bpp != 24 {
		return fmt.Errorf("expected 24 bits per pixel, got %d", bpp)
	}
	return nil
}

func checkPDF(data []byte, mode formats.Mode) error {
	if err := requirePrefix(data, []byte("%PDF-")); err != nil || mode == formats.ModeSimple {
		return err
	}
	for _, section := range []string{"/Catalog", "xref", "trailer", "startxref"} {
		if !bytes.Contains(data, []byte(section)) {
			return fmt.Errorf("missing %s", section)
		}
	}
	if !bytes.HasSuffix(data, []byte("%%EOF")) {
		return errors.New("missing end-of-file marker")
	}
	return checkPDFOffsets(data)
}

// checkPDFOffsets follows startxref to the xref table and confirms that every
// in-use entry points at the start of its object
func checkPDFOffsets(data []byte) error {
	marker := []byte("startxref\n")
	idx := bytes.LastIndex(data, marker)
	if idx < 0 {
		return errors.New("missing startxref offset")
	}
	value, _, _ := strings.Cut(string(data[idx+len(marker):]), "\n")
	xrefAt, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("invalid startxref offset: %w", err)
	}
	if xrefAt < 0 || xrefAt >= len(data) || !bytes.HasPrefix(data[xrefAt:], []byte("xref\n")) {
		return fmt.Errorf("startxref %d does not point at the xref table", xrefAt)
	}

	lines := strings.Split(string(data[xrefAt:]), "\n")
	if len(lines) < 2 {
		return errors.New("xref table truncated")
	}
	var first, count int
	if _, err := fmt.Sscanf(lines[1], "%d %d", &first, &count); err != nil {
		return fmt.Errorf("invalid xref subsection: %w", err)
	}
	if len(lines) < 2+count {
		return errors.New("xref table truncated")
	}

	for i := 0; i < count; i++ {
		var offset, generation int
		var kind string
		if _, err := fmt.Sscanf(lines[2+i], "%d %d %s", &offset, &generation, &kind); err != nil {
			return fmt.Errorf("invalid xref entry %d: %w", first+i, err)
		}
		if kind != "n" {
			continue
		}
		obj := fmt.Sprintf("%d %d obj", first+i, generation)
		if offset < 0 || offset >= len(data) || !bytes.HasPrefix(data[offset:], []byte(obj)) {
			return fmt.Errorf("xref offset %d does not point at object %d", offset, first+i)
		}
	}
	return nil
}

// Keys present in the well-formed JSON seed
var jsonKeys = []string{"name", "value", "items", "nested"}

func checkJSON(data []byte, mode formats.Mode) error {
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	if mode == formats.ModeSimple {
		return nil
	}
	for _, key := range jsonKeys {
		if _, ok := doc[key]; !ok {
			return fmt.Errorf("missing key %q", key)
		}
	}
	return nil
}

func checkXML(data []byte) error {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	elements := 0
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if _, ok := tok.(xml.StartElement); ok {
			elements++
		}
	}
	if elements == 0 {
		return errors.New("no root element")
	}
	return nil
}

func checkHTML(data []byte) error {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return err
	}
	if strings.TrimSpace(doc.Find("body").Text()) == "" {
		return errors.New("empty body")
	}
	return nil
}

func checkCSV(data []byte) error {
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return err
	}
	if len(records) < 2 {
		return fmt.Errorf("expected a header and at least one row, got %d records", len(records))
	}
	return nil
}

func checkText(data []byte) error {
	if len(data) == 0 {
		return errors.New("empty text")
	}
	if !utf8.Valid(data) {
		return errors.New("invalid UTF-8")
	}
	return nil
}

func checkBinary(data []byte, mode formats.Mode) error {
	if mode == formats.ModeSimple {
		if len(data) == 0 {
			return errors.New("empty record")
		}
		return nil
	}
	var rec formats.BinaryRecord
	if err := rec.UnmarshalBinary(data); err != nil {
		return err
	}
	if rec.Magic != formats.BinaryRecordMagic {
		return fmt.Errorf("unexpected record magic %#x", rec.Magic)
	}
	return nil
}
