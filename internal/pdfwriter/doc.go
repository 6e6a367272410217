// Package pdfwriter serializes laid-out pages to a PDF 1.4 file.
//
// Every page gets one content stream, compressed with FlateDecode by
// default. Text uses the standard Helvetica and Helvetica-Bold Type 1 fonts
// with WinAnsiEncoding, so no font program is embedded. The writer never
// reads the clock: a creation date is only written when the caller supplies
// one, and identical input yields identical bytes.
package pdfwriter
