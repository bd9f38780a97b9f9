package repository

import "testing"

func TestFingerprint(t *testing.T) {
	const content = "1. ПАО Сбербанк - Потребит. кредит Дата сделки: 15-03-2019"

	a := Fingerprint(3, content)
	if len(a) != 64 {
		t.Fatalf("fingerprint length = %d, want 64 hex chars", len(a))
	}
	if b := Fingerprint(3, content); b != a {
		t.Error("fingerprint is not stable for identical input")
	}
	// the same text on another page is a different row
	if b := Fingerprint(4, content); b == a {
		t.Error("page number must participate in the fingerprint")
	}
	if b := Fingerprint(3, content+" "); b == a {
		t.Error("content must participate in the fingerprint")
	}
}
