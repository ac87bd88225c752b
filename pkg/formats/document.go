/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: document.go
Description: Text and document format seeds: plain text, PDF, XML, JSON, HTML and CSV.
*/

package formats

var (
	textNormal = []byte("hello world\nthis is a test file\nline 3\nline 4")
	textSimple = []byte("A")
)

// Single-page PDF: catalog, page tree, page, xref table and trailer
var pdfNormal = []byte("%PDF-1.1\n" +
	"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n" +
	"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n" +
	"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 10 10] >>\nendobj\n" +
	"xref\n0 4\n0000000000 65535 f \n0000000009 00000 n \n" +
	"0000000058 00000 n \n0000000115 00000 n \n" +
	"trailer\n<< /Size 4 /Root 1 0 R >>\n" +
	"startxref\n184\n%%EOF")

// Header line only
var pdfSimple = []byte("%PDF-1.1\n")

var xmlNormal = []byte(`<?xml version="1.0" encoding="UTF-8"?>
<root>
    <item id="1">
        <name>Test Item</name>
        <value>123</value>
    </item>
</root>`)

var xmlSimple = []byte(`<?xml version="1.0"?><root></root>`)

var jsonNormal = []byte(`{
    "name": "test",
    "value": 123,
    "items": ["a", "b", "c"],
    "nested": {
        "key": "value"
    }
}`)

var jsonSimple = []byte(`{}`)

var htmlNormal = []byte(`<!DOCTYPE html>
<html>
<head>
    <title>Test Page</title>
</head>
<body>
    <h1>Hello World</h1>
    <p>This is a test page.</p>
</body>
</html>`)

// No doctype, no head
var htmlSimple = []byte(`<html><body>test</body></html>`)

var csvNormal = []byte("name,age,city\nJohn,25,New York\nJane,30,Los Angeles\nBob,35,Chicago")

var csvSimple = []byte("a,b,c\n1,2,3")
