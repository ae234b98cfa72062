package yaml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mstanek/kabigen"
	"github.com/mstanek/kabigen/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kmallocRecord = `symbol: kmalloc_node
diff-kind: function

location-old:
  file: include/linux/slab.h
  line: 541
location-new:
  file: include/linux/slab.h
  line: 578

diff: difference

affected-symbols:
  - symbol:
        name: __alloc_pages_nodemask
        kind: function
    callstack-old:
      - symbol: kmalloc_node
        file: include/linux/slab.h
        line: 718
    callstack-new:
      - symbol: kmalloc_node
        file: include/linux/slab.h
        line: 760
`

func writeRecord(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeRecord(t, dir, "kmalloc_node.diff.yaml", kmallocRecord)

	l := yaml.NewLoader()

	diffs, err := l.Load(dir)

	require.NoError(t, err)
	require.Len(t, diffs, 1)

	d := diffs[0]
	for _, sym := range []kabigen.InternalSymbol{d.SymbolOld, d.SymbolNew} {
		assert.Equal(t, "kmalloc_node", sym.Name)
		assert.Equal(t, kabigen.KindFunction, sym.Kind)
		assert.Equal(t, "include/linux/slab.h", sym.Location.File)
	}
	assert.Equal(t, 541, d.SymbolOld.Location.Line)
	assert.Equal(t, 578, d.SymbolNew.Location.Line)
	assert.Equal(t, "difference", d.Diff)

	require.Len(t, d.Affected, 1)
	aff := d.Affected[0]
	assert.Equal(t, "__alloc_pages_nodemask", aff.Symbol.Name)
	assert.Equal(t, kabigen.ExternalFunction, aff.Symbol.Kind)

	require.Len(t, aff.CallstackOld, 1)
	assert.Equal(t, "kmalloc_node", aff.CallstackOld[0].Symbol)
	assert.Equal(t, kabigen.Location{File: "include/linux/slab.h", Line: 718}, aff.CallstackOld[0].Location)

	require.Len(t, aff.CallstackNew, 1)
	assert.Equal(t, kabigen.Location{File: "include/linux/slab.h", Line: 760}, aff.CallstackNew[0].Location)
}

func TestLoader_Load_SortedBySymbolName(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeRecord(t, dir, "z.yaml", "symbol: aaa_first\ndiff-kind: macro\ndiff: d\n")
	writeRecord(t, dir, "a.yaml", "symbol: zzz_last\ndiff-kind: type\ndiff: d\n")

	l := yaml.NewLoader()

	diffs, err := l.Load(dir)

	require.NoError(t, err)
	require.Len(t, diffs, 2)
	assert.Equal(t, "aaa_first", diffs[0].SymbolOld.Name)
	assert.Equal(t, kabigen.KindMacro, diffs[0].SymbolOld.Kind)
	assert.Equal(t, "zzz_last", diffs[1].SymbolOld.Name)
}

func TestLoader_Load_UnknownKind(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeRecord(t, dir, "bad.yaml", "symbol: foo\ndiff-kind: struct\ndiff: d\n")

	l := yaml.NewLoader()

	_, err := l.Load(dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yaml")
}

func TestLoader_Load_UnknownExternalKind(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeRecord(t, dir, "bad.yaml", `symbol: foo
diff-kind: function
diff: d
affected-symbols:
  - symbol:
        name: bar
        kind: global variable
`)

	l := yaml.NewLoader()

	_, err := l.Load(dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "global variable")
}

func TestLoader_Load_MissingDir(t *testing.T) {
	t.Parallel()

	l := yaml.NewLoader()

	_, err := l.Load(filepath.Join(t.TempDir(), "missing"))

	assert.Error(t, err)
}

func TestLoader_Load_InvalidYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeRecord(t, dir, "broken.yaml", "symbol: [unclosed\n")

	l := yaml.NewLoader()

	_, err := l.Load(dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.yaml")
}
