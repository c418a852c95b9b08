package parser

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crmkit/go-crm-timeline/internal/testing/fixtures"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseFileSingleObject(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "prospect.json", `{
		"id": "p1",
		"tasks": [{"id": 1, "subject": "Send proposal"}]
	}`)

	origins, err := NewParser(2).ParseFile(path)
	require.NoError(t, err)
	require.Len(t, origins, 1)

	tasks := origins[0].Collection("tasks")
	require.Len(t, tasks, 1)
	assert.Equal(t, "Send proposal", tasks[0].Str("subject"))
}

func TestParseFileArrayOfOrigins(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "pair.json", `[
		{"id": "p1", "tasks": [{"id": 1}]},
		{"id": "c1", "emails": [{"id": 2}]}
	]`)

	origins, err := NewParser(2).ParseFile(path)
	require.NoError(t, err)
	require.Len(t, origins, 2)
	assert.Len(t, origins[0].Collection("tasks"), 1)
	assert.Len(t, origins[1].Collection("emails"), 1)
}

func TestParseFileInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "broken.json", `{not json`)

	origins, err := NewParser(2).ParseFile(path)
	assert.Error(t, err)
	assert.Nil(t, origins)
}

func TestParseFileMissing(t *testing.T) {
	_, err := NewParser(2).ParseFile(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestParseFileCachesAndInvalidates(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "p.json", `{"id": "v1"}`)

	p := NewParser(2)
	origins, err := p.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "v1", origins[0].Str("id"))

	// Rewrite on disk; cached result still served until invalidated.
	writeFile(t, dir, "p.json", `{"id": "v2"}`)
	origins, err = p.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "v1", origins[0].Str("id"))

	p.Invalidate(path)
	origins, err = p.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "v2", origins[0].Str("id"))
}

func TestParseAllKeepsFileOrder(t *testing.T) {
	dir := t.TempDir()
	var files []string
	files = append(files, writeFile(t, dir, "a.json", `{"id": "a"}`))
	files = append(files, writeFile(t, dir, "b.json", `{"id": "b"}`))
	files = append(files, writeFile(t, dir, "c.json", `{"id": "c"}`))

	origins, err := NewParser(4).ParseAll(files)
	require.NoError(t, err)
	require.Len(t, origins, 3)
	assert.Equal(t, "a", origins[0].Str("id"))
	assert.Equal(t, "b", origins[1].Str("id"))
	assert.Equal(t, "c", origins[2].Str("id"))
}

func TestParseAllReportsFirstErrorButKeepsGoodFiles(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.json", `{"id": "ok"}`)
	bad := writeFile(t, dir, "bad.json", `{{{`)

	origins, err := NewParser(2).ParseAll([]string{good, bad})
	assert.Error(t, err)
	require.Len(t, origins, 1)
	assert.Equal(t, "ok", origins[0].Str("id"))
}

func TestParseFixtureSnapshots(t *testing.T) {
	dir := t.TempDir()
	ref := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	gen := fixtures.NewTestDataGenerator(dir)

	path, err := gen.WriteSnapshot("prospect", fixtures.ProspectWithHistory(ref), fixtures.ConvertedCustomer(ref))
	require.NoError(t, err)

	origins, err := NewParser(2).ParseFile(path)
	require.NoError(t, err)
	require.Len(t, origins, 2)
	assert.Len(t, origins[0].Collection("tasks"), 2)
	assert.Len(t, origins[1].Collection("call_logs", "callLogs"), 1)
}
