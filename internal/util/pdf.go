package util

import (
	"bytes"
	"regexp"
)

var (
	pdfMagic = []byte("%PDF-")

	// Page objects are "/Type /Page"; the page tree root is "/Type /Pages".
	pdfPageObject = regexp.MustCompile(`/Type\s*/Page[^s]`)
	pdfPageCount  = regexp.MustCompile(`/Type\s*/Pages\b[^>]*?/Count\s+(\d+)`)
)

// IsPDF reports whether data starts with the PDF header.
func IsPDF(data []byte) bool {
	return bytes.HasPrefix(data, pdfMagic)
}

// CountPDFPages estimates the page count without a full parse. It prefers the largest
// /Count of a page tree node and falls back to counting page objects. Compressed
// object streams can hide both, in which case it returns 0.
func CountPDFPages(data []byte) int {
	maxCount := 0
	for _, m := range pdfPageCount.FindAllSubmatch(data, -1) {
		if n := atoi(m[1]); n > maxCount {
			maxCount = n
		}
	}
	if maxCount > 0 {
		return maxCount
	}

	return len(pdfPageObject.FindAll(data, -1))
}

func atoi(digits []byte) int {
	n := 0
	for _, d := range digits {
		n = n*10 + int(d-'0')
		if n > 1<<20 {
			return 0
		}
	}

	return n
}
