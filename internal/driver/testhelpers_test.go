package driver

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, body := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func resultFor(t *testing.T, r *CheckReport, base string) *CheckFileResult {
	t.Helper()
	for i := range r.Files {
		if filepath.Base(r.Files[i].Path) == base {
			return &r.Files[i]
		}
	}
	t.Fatalf("no result for %s", base)
	return nil
}
