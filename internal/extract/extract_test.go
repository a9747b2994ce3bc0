package extract

import (
	"errors"
	"strings"
	"testing"
)

func TestKindForFilename(t *testing.T) {
	cases := []struct {
		name string
		want Kind
		ok   bool
	}{
		{"notice.pdf", KindPDF, true},
		{"Budget.XLSX", KindXLSX, true},
		{"expenses.csv", KindCSV, true},
		{"notes.txt", "", false},
		{"noext", "", false},
	}
	for _, tc := range cases {
		got, ok := KindForFilename(tc.name)
		if got != tc.want || ok != tc.ok {
			t.Errorf("KindForFilename(%q) = %q, %t; want %q, %t", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}

func TestExtractCSV(t *testing.T) {
	data := []byte("item,due\nRenew insurance,2024-06-30\nReview coverage,\n")
	got, err := Extract(data, KindCSV)
	if err != nil {
		t.Fatal(err)
	}
	want := "item, due\nRenew insurance, 2024-06-30\nReview coverage,"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExtractCSVRaggedRows(t *testing.T) {
	data := []byte("a,b,c\nd\ne,f\n")
	got, err := Extract(data, KindCSV)
	if err != nil {
		t.Fatalf("ragged rows should be tolerated: %v", err)
	}
	if !strings.Contains(got, "a, b, c") || !strings.Contains(got, "e, f") {
		t.Errorf("got %q", got)
	}
}

func TestExtractCSVMalformed(t *testing.T) {
	data := []byte("a,\"unterminated\n")
	if _, err := Extract(data, KindCSV); !errors.Is(err, ErrExtraction) {
		t.Errorf("err = %v; want ErrExtraction", err)
	}
}

func TestExtractPDFGarbage(t *testing.T) {
	if _, err := Extract([]byte("not a pdf"), KindPDF); !errors.Is(err, ErrExtraction) {
		t.Errorf("err = %v; want ErrExtraction", err)
	}
}

func TestExtractXLSXGarbage(t *testing.T) {
	if _, err := Extract([]byte("not a workbook"), KindXLSX); !errors.Is(err, ErrExtraction) {
		t.Errorf("err = %v; want ErrExtraction", err)
	}
}

func TestExtractUnknownKind(t *testing.T) {
	if _, err := Extract([]byte("hi"), Kind("docx")); !errors.Is(err, ErrExtraction) {
		t.Errorf("err = %v; want ErrExtraction", err)
	}
}
