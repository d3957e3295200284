package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB: ограничение для тестового корпуса
	maxFuzzInput = 1 << 16
)

// builtinSeeds cover every production of the grammar at least once.
var builtinSeeds = []string{
	"",
	"# only a comment\n",
	"a: 1\nb: -2.5e3\nc: 0x1F\nd: 017\ne: 1.5f\n",
	"s: \"ab\" 'cd' \"\\n\\101\\x41\\u00e9\\U0001F600\"\n",
	"m { x: 1 } n < y: 2 >; o: { }\n",
	"l: [1, 2, 3], ml: [{a: 1}, <a: 2>]\nml2 [{}, {}]\nempty: []\n",
	"[pkg.ext]: 1\n[type.googleapis.com/pkg.Msg] { v: \"x\" }\n",
	"e: -inf f: nan g: -x\n",
	"foo: {a: 1",
	"foo: \"abc",
	"foo: [1, 2,]",
	"a: 0x",
	"a: 09",
	"a: \"\\q\"",
	"a: \"\\ud800\"",
	"a: ]",
	"}",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.textproto файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".textproto" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) > maxSeedBytes {
		src = src[:maxSeedBytes]
	}
	return append([]byte(nil), src...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return append([]byte(nil), input...)
}
