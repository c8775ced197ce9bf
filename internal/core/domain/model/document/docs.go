// Package document models a file uploaded for printing together with the
// options it should be printed with.
//
// A Document is created once per uploaded file and is read-only afterwards.
// Orders reference documents by ID; the same document may be referenced by
// more than one order.
//
// Invariants:
//   - page count is at least 1 (PDFs report their real page count, images count as 1)
//   - copies is at least 1
//   - paper size is one of A4, A3, Letter and color mode is one of color, bw
package document
