package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fillRecordYAML = `personal_info:
  name: Ada Lovelace
  email: ada@example.com
  github: github.com/ada
education:
  - institution: MIT
    degree: MS CS
    date: "2019 - 2021"
experience:
  - company: Initech
    title: Software Engineer
    achievements:
      - Shipped the parser
      - Cut latency in half
skills:
  languages: [Go, Python]
`

func TestFill_EndToEnd(t *testing.T) {
	resetFillFlags()

	template := writeTemplate(t, `<w:p><w:r><w:t>{{NAME}} — {{EMAIL}}</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>{{EDU_1_SCHOOL}}, {{EDU_1_DEGREE}}</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>{{SKILL_LANGUAGE}}</w:t></w:r></w:p>`)
	rec := writeRecord(t, fillRecordYAML)
	output := filepath.Join(t.TempDir(), "out", "filled.docx")

	err := runFill(nil, []string{template, rec, output})
	require.NoError(t, err)

	docXML := readDocumentXML(t, output)
	assert.Contains(t, docXML, "Ada Lovelace")
	assert.Contains(t, docXML, "ada@example.com")
	assert.Contains(t, docXML, "MIT")
	assert.Contains(t, docXML, "MS CS")
	assert.Contains(t, docXML, "Go, Python")
	assert.NotContains(t, docXML, "{{NAME}}")
}

func TestFill_SplitPlaceholderResolved(t *testing.T) {
	resetFillFlags()

	template := writeTemplate(t, `<w:p>`+
		`<w:r><w:t>{{NA</w:t></w:r>`+
		`<w:r><w:rPr><w:b/></w:rPr><w:t>ME</w:t></w:r>`+
		`<w:r><w:t>}}</w:t></w:r>`+
		`</w:p>`)
	rec := writeRecord(t, fillRecordYAML)
	output := filepath.Join(t.TempDir(), "filled.docx")

	require.NoError(t, runFill(nil, []string{template, rec, output}))
	assert.Contains(t, readDocumentXML(t, output), "Ada Lovelace")
}

func TestFill_UnresolvedKeyLeftInDocument(t *testing.T) {
	resetFillFlags()

	template := writeTemplate(t, `<w:p><w:r><w:t>{{NAME}} {{MYSTERY_KEY}}</w:t></w:r></w:p>`)
	rec := writeRecord(t, fillRecordYAML)
	output := filepath.Join(t.TempDir(), "filled.docx")

	require.NoError(t, runFill(nil, []string{template, rec, output}))

	docXML := readDocumentXML(t, output)
	assert.Contains(t, docXML, "{{MYSTERY_KEY}}")
	assert.Contains(t, docXML, "Ada Lovelace")
}

func TestFill_GithubHyperlink(t *testing.T) {
	resetFillFlags()

	template := writeTemplate(t, `<w:p><w:r><w:t>{{GITHUB}}</w:t></w:r></w:p>`)
	rec := writeRecord(t, fillRecordYAML)
	output := filepath.Join(t.TempDir(), "filled.docx")

	require.NoError(t, runFill(nil, []string{template, rec, output}))

	docXML := readDocumentXML(t, output)
	assert.Contains(t, docXML, "<w:hyperlink")
	assert.Contains(t, docXML, "Github")
}

func TestFill_NoHyperlinksFlag(t *testing.T) {
	resetFillFlags()
	fillNoHyperlinks = true

	template := writeTemplate(t, `<w:p><w:r><w:t>{{GITHUB}}</w:t></w:r></w:p>`)
	rec := writeRecord(t, fillRecordYAML)
	output := filepath.Join(t.TempDir(), "filled.docx")

	require.NoError(t, runFill(nil, []string{template, rec, output}))

	docXML := readDocumentXML(t, output)
	assert.NotContains(t, docXML, "<w:hyperlink")
	assert.Contains(t, docXML, "github.com/ada")
}

func TestFill_ListJoinFlag(t *testing.T) {
	resetFillFlags()
	fillListJoin = " | "

	template := writeTemplate(t, `<w:p><w:r><w:t>{{SKILL_LANGUAGE}}</w:t></w:r></w:p>`)
	rec := writeRecord(t, fillRecordYAML)
	output := filepath.Join(t.TempDir(), "filled.docx")

	require.NoError(t, runFill(nil, []string{template, rec, output}))
	assert.Contains(t, readDocumentXML(t, output), "Go | Python")
}

func TestFill_MalformedRecordFailsWithoutOutput(t *testing.T) {
	resetFillFlags()

	template := writeTemplate(t, `<w:p><w:r><w:t>{{NAME}}</w:t></w:r></w:p>`)
	rec := writeRecord(t, "education: not a list\n")
	output := filepath.Join(t.TempDir(), "filled.docx")

	err := runFill(nil, []string{template, rec, output})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse record")
	assert.NoFileExists(t, output)
}

func TestFill_MissingTemplateFails(t *testing.T) {
	resetFillFlags()

	rec := writeRecord(t, fillRecordYAML)
	output := filepath.Join(t.TempDir(), "filled.docx")

	err := runFill(nil, []string{"/nonexistent/template.docx", rec, output})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open template")
	assert.NoFileExists(t, output)
}

func TestFill_MissingRecordFails(t *testing.T) {
	resetFillFlags()

	template := writeTemplate(t, `<w:p></w:p>`)
	output := filepath.Join(t.TempDir(), "filled.docx")

	err := runFill(nil, []string{template, "/nonexistent/record.yaml", output})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read record file")
}

func TestFill_ConfigFileListJoin(t *testing.T) {
	resetFillFlags()

	cfgPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"list_join": "; "}`), 0o644))
	fillConfig = cfgPath

	template := writeTemplate(t, `<w:p><w:r><w:t>{{SKILL_LANGUAGE}}</w:t></w:r></w:p>`)
	rec := writeRecord(t, fillRecordYAML)
	output := filepath.Join(t.TempDir(), "filled.docx")

	require.NoError(t, runFill(nil, []string{template, rec, output}))
	assert.Contains(t, readDocumentXML(t, output), "Go; Python")
}

func TestFill_SchemaViolationFails(t *testing.T) {
	resetFillFlags()

	// A record that parses but breaks the schema's type constraints:
	// unknown personal_info keys must be strings.
	template := writeTemplate(t, `<w:p><w:r><w:t>{{NAME}}</w:t></w:r></w:p>`)
	rec := writeRecord(t, "personal_info:\n  name: Ada\n  age: 30\n")
	output := filepath.Join(t.TempDir(), "filled.docx")

	err := runFill(nil, []string{template, rec, output})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema")
	assert.NoFileExists(t, output)
}
