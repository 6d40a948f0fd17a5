package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetResolveFlags() {
	resolveOutput = ""
	resolveListJoin = ""
}

func TestResolve_WritesPlaceholderMap(t *testing.T) {
	resetResolveFlags()

	rec := writeRecord(t, fillRecordYAML)
	resolveOutput = filepath.Join(t.TempDir(), "out", "map.json")

	require.NoError(t, runResolve(nil, []string{rec}))

	data, err := os.ReadFile(resolveOutput)
	require.NoError(t, err)

	var m map[string]string
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "Ada Lovelace", m["NAME"])
	assert.Equal(t, "MIT", m["EDU_1_SCHOOL"])
	assert.Equal(t, "Go, Python", m["SKILL_LANGUAGE"])
	assert.Equal(t, "Shipped the parser\nCut latency in half", m["EXP_1_ACHIEVEMENTS"])
}

func TestResolve_ListJoinFlag(t *testing.T) {
	resetResolveFlags()
	resolveListJoin = " / "

	rec := writeRecord(t, fillRecordYAML)
	resolveOutput = filepath.Join(t.TempDir(), "map.json")

	require.NoError(t, runResolve(nil, []string{rec}))

	data, err := os.ReadFile(resolveOutput)
	require.NoError(t, err)

	var m map[string]string
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "Go / Python", m["SKILL_LANGUAGE"])
}

func TestResolve_MalformedRecordFails(t *testing.T) {
	resetResolveFlags()

	rec := writeRecord(t, "- just\n- a\n- list\n")

	err := runResolve(nil, []string{rec})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load record")
}

func TestResolve_MissingRecordFails(t *testing.T) {
	resetResolveFlags()

	err := runResolve(nil, []string{"/nonexistent/record.yaml"})
	assert.Error(t, err)
}
