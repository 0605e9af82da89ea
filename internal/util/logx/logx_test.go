package logx

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingKeepsRecentLines(t *testing.T) {
	r := newRing(3)
	for _, s := range []string{"a\n", "b\n", "c\nd\n"} {
		_, _ = r.Write([]byte(s))
	}
	assert.Equal(t, []string{"b", "c", "d"}, r.snapshot())
}

func TestLevelsAndFileSink(t *testing.T) {
	p := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, Init(Options{Level: "warn", File: p}))
	t.Cleanup(func() { _ = Init(Options{Level: "info"}) })

	Infof("hidden %d", 1)
	Warnf("visible %d", 2)
	Sync()

	dump := Dump()
	assert.NotContains(t, dump, "hidden 1")
	assert.Contains(t, dump, "visible 2")
	assert.Contains(t, dump, "WARN")

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(b), "visible 2"))
}

func TestSetLevelIgnoresUnknown(t *testing.T) {
	SetLevel("error")
	t.Cleanup(func() { SetLevel("info") })
	SetLevel("loud")
	Warnf("should not appear")
	assert.NotContains(t, Dump(), "should not appear")
	Errorf("boom")
	lines := Lines()
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[len(lines)-1], "boom")
}
