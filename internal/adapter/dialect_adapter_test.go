package adapter

import (
	"errors"
	"testing"

	m "strata.dev/pkg/strata/internal/model"
)

func TestLocalDialectAdapter_ForPath(t *testing.T) {
	tests := []struct {
		name       string
		lang       string
		extensions map[string]string
		path       m.Path
		want       string
		wantOK     bool
	}{
		{name: "java", path: "src/App.java", want: "java", wantOK: true},
		{name: "extension case is ignored", path: "src/App.JAVA", want: "java", wantOK: true},
		{name: "kotlin script", path: "build.gradle.kts", want: "kotlin", wantOK: true},
		{name: "c header", path: "include/util.h", want: "c", wantOK: true},
		{name: "tsx", path: "ui/App.tsx", want: "typescript", wantOK: true},
		{name: "unknown extension", path: "README.md"},
		{name: "no extension", path: "Makefile"},
		{name: "override without dot", extensions: map[string]string{"jav": "java"}, path: "Old.jav", want: "java", wantOK: true},
		{name: "override wins over built-in", extensions: map[string]string{".h": "cpp"}, path: "vec.h", want: "cpp", wantOK: true},
		{name: "forced language", lang: "kotlin", path: "notes.txt", want: "kotlin", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dialects, err := NewLocalDialectAdapter(tt.lang, tt.extensions)
			if err != nil {
				t.Fatalf("NewLocalDialectAdapter() error = %v", err)
			}

			got, ok := dialects.ForPath(tt.path)
			if ok != tt.wantOK {
				t.Fatalf("ForPath(%q) ok = %v, want %v", tt.path, ok, tt.wantOK)
			}

			if ok && got.Name != tt.want {
				t.Fatalf("ForPath(%q) = %q, want %q", tt.path, got.Name, tt.want)
			}
		})
	}
}

func TestNewLocalDialectAdapter_Errors(t *testing.T) {
	if _, err := NewLocalDialectAdapter("cobol", nil); !errors.Is(err, m.ErrUnknownDialect) {
		t.Fatalf("unknown lang error = %v, want ErrUnknownDialect", err)
	}

	if _, err := NewLocalDialectAdapter("", map[string]string{".cbl": "cobol"}); !errors.Is(err, m.ErrUnknownDialect) {
		t.Fatalf("unknown extension dialect error = %v, want ErrUnknownDialect", err)
	}
}

func TestLocalDialectAdapter_Names(t *testing.T) {
	dialects, err := NewLocalDialectAdapter("", nil)
	if err != nil {
		t.Fatalf("NewLocalDialectAdapter() error = %v", err)
	}

	names := dialects.Names()
	want := []string{"c", "cpp", "csharp", "go", "java", "javascript", "kotlin", "rust", "typescript"}

	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}

	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", names, want)
		}
	}

	d, err := dialects.ByName("rust")
	if err != nil || d.Name != "rust" {
		t.Fatalf("ByName(rust) = %q, %v", d.Name, err)
	}
}
