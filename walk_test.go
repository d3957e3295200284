package txtpb_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"txtpb"
)

func TestWalkOrderAndPaths(t *testing.T) {
	t.Parallel()
	doc, err := txtpb.Parse([]byte("a: 1 m { b: 2 n < c: 3 > } l [{d: 4}, {d: 5}] z: 6"))
	require.NoError(t, err)

	var paths []string
	err = txtpb.Walk(doc.Root(), func(path []string, f txtpb.Field) error {
		paths = append(paths, strings.Join(path, "."))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"a", "m", "m.b", "m.n", "m.n.c", "l", "l[0].d", "l[1].d", "z",
	}, paths)
}

func TestWalkSkipAndStop(t *testing.T) {
	t.Parallel()
	doc, err := txtpb.Parse([]byte("m { x: 1 } y: 2 q: 3"))
	require.NoError(t, err)

	var seen []string
	err = txtpb.Walk(doc.Root(), func(path []string, f txtpb.Field) error {
		seen = append(seen, f.Name().String())
		if f.Name().String() == "m" {
			return txtpb.SkipMessage
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"m", "y", "q"}, seen)

	stop := errors.New("stop")
	seen = nil
	err = txtpb.Walk(doc.Root(), func(path []string, f txtpb.Field) error {
		seen = append(seen, f.Name().String())
		if f.Name().String() == "y" {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"m", "x", "y"}, seen)
}
