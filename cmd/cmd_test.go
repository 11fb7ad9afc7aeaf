package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/edulanding/internal/curriculum"
	"github.com/abhisek/edulanding/internal/session"
)

func newTestSession(t *testing.T) *session.Session {
	t.Helper()
	cat, err := curriculum.Default()
	require.NoError(t, err)
	return session.New(cat, nil)
}

func TestSectionRows(t *testing.T) {
	cat, err := curriculum.Default()
	require.NoError(t, err)

	rows := sectionRows(cat, false)
	require.Len(t, rows, 10)
	assert.Equal(t, "intro", rows[0].ID)
	assert.InDelta(t, 10.0, rows[0].Progress, 1e-9)
	assert.InDelta(t, 50.0, rows[4].Progress, 1e-9)
	assert.InDelta(t, 100.0, rows[9].Progress, 1e-9)
	assert.Equal(t, 1, rows[3].Charts)
	assert.Nil(t, rows[0].Outline)

	withOutline := sectionRows(cat, true)
	assert.NotEmpty(t, withOutline[0].Outline)
	assert.Equal(t, 1, withOutline[0].Outline[0].Level)
}

func TestPrintSections(t *testing.T) {
	cat, err := curriculum.Default()
	require.NoError(t, err)

	var buf bytes.Buffer
	printSections(&buf, sectionRows(cat, true))
	out := buf.String()

	assert.Contains(t, out, "checklist")
	assert.Contains(t, out, "100%")
	assert.Contains(t, out, "10 sections")
	assert.Contains(t, out, "- ")
}

func TestSectionsJSON(t *testing.T) {
	cat, err := curriculum.Default()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, sectionRows(cat, false)))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 10)
	assert.Equal(t, "testing", decoded[4]["id"])
	assert.InDelta(t, 50.0, decoded[4]["progress_percent"], 1e-9)
}

func TestApplySelections(t *testing.T) {
	sess := newTestSession(t)
	applySelections(sess, []string{"c1", "d1", "t1", "c1", "bogus"})

	assert.Equal(t, 3, sess.CheckedCount())
	assert.Equal(t, 25, sess.CompletionPercent())
}

func TestChecklistReport(t *testing.T) {
	sess := newTestSession(t)
	applySelections(sess, []string{"d2"})

	rep := checklistReport(sess)
	assert.Equal(t, 12, rep.Total)
	assert.Equal(t, 1, rep.Checked)
	assert.Equal(t, 8, rep.Percent)
	assert.Contains(t, rep.Template, "Hypothesis")
	for _, it := range rep.Items {
		assert.Equal(t, it.ID == "d2", it.Checked, it.ID)
	}
}

func TestPrintChecklist(t *testing.T) {
	sess := newTestSession(t)
	applySelections(sess, []string{"t4"})

	var buf bytes.Buffer
	printChecklist(&buf, sess)
	out := buf.String()

	assert.Contains(t, out, "Copy & Content")
	assert.Contains(t, out, "[x] t4")
	assert.Contains(t, out, "[ ] c1")
	assert.Contains(t, out, "1/12 checked (8%)")
	assert.Less(t, strings.Index(out, "Design & UX"), strings.Index(out, "Technical"))
}

func TestDescribeVersion(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"(devel)", "(devel)"},
		{"", "(devel)"},
		{"v1.2.3", "v1.2.3"},
		{"1.2.3", "v1.2.3"},
		{"v1.2", "v1.2.0"},
		{"v1.0.0-rc.1", "v1.0.0-rc.1 (pre-release)"},
		{"v1.2.3+dirty", "v1.2.3"},
		{"banana", "banana (unrecognized version)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, describeVersion(tt.in), tt.in)
	}
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, nil)
	assert.True(t, strings.HasPrefix(buf.String(), "edulanding "))
}
