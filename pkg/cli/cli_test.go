package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passengersCSV = `PassengerId,Survived,Pclass,Sex,Age
1,0,3,male,22
2,1,1,female,38
3,1,3,female,26
4,1,1,female,35
5,0,3,male,35
6,1,2,male,2
`

func writeDataset(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "titanic.csv")
	require.NoError(t, os.WriteFile(p, []byte(passengersCSV), 0o644))
	return p
}

func kv(key, value string) string {
	return fmt.Sprintf("%-14s %s", key+":", value)
}

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = execute(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestSummary_Table(t *testing.T) {
	ds := writeDataset(t)

	code, out, _ := run(t, "summary", "--dataset", ds, "--engine", "frame")
	require.Equal(t, 0, code)
	assert.Contains(t, out, kv("Souls", "6"))
	assert.Contains(t, out, kv("Saved", "4 (66.7%)"))
	assert.Contains(t, out, "Age 0–80 • All • Class All")
}

func TestSummary_JSON(t *testing.T) {
	ds := writeDataset(t)

	code, out, _ := run(t, "summary", "--dataset", ds, "--souls", "Gentlemen", "--deck", "3rd Class", "-o", "json")
	require.Equal(t, 0, code)

	var resp struct {
		Total    int    `json:"total"`
		Survived int    `json:"survived"`
		Perished int    `json:"perished"`
		Subtitle string `json:"subtitle"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 0, resp.Survived)
	assert.Equal(t, 2, resp.Perished)
	assert.Equal(t, "Age 0–80 • male • Class 3", resp.Subtitle)
}

func TestSummary_AgeAndExplicitFilters(t *testing.T) {
	ds := writeDataset(t)

	code, out, _ := run(t, "summary", "--dataset", ds, "--sex", "female", "--class", "1", "--age-min", "36", "--age-max", "40", "-o", "json")
	require.Equal(t, 0, code)

	var resp struct {
		Total    int `json:"total"`
		Survived int `json:"survived"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, 1, resp.Survived)
}

func TestSummary_UnmappedSoulsNotice(t *testing.T) {
	ds := writeDataset(t)

	code, out, errOut := run(t, "summary", "--dataset", ds, "--souls", "Ladies")
	require.Equal(t, 0, code)
	assert.Contains(t, errOut, "souls mapping")
	assert.Contains(t, out, kv("Souls", "6"))
}

func TestSummary_EmptySelection(t *testing.T) {
	ds := writeDataset(t)

	code, out, _ := run(t, "summary", "--dataset", ds, "--age-min", "70")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "No souls match these filters.")
}

func TestSummary_Errors(t *testing.T) {
	ds := writeDataset(t)

	tests := []struct {
		name       string
		args       []string
		wantStatus float64
	}{
		{name: "inverted ages", args: []string{"--age-min", "50", "--age-max", "10"}, wantStatus: 400},
		{name: "unknown deck", args: []string{"--deck", "Steerage"}, wantStatus: 400},
		{name: "bad class", args: []string{"--class", "4"}, wantStatus: 400},
		{name: "missing dataset", args: []string{"--dataset", filepath.Join(t.TempDir(), "nope.csv")}, wantStatus: 503},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"summary", "--dataset", ds, "-o", "json"}, tt.args...)
			code, out, _ := run(t, args...)
			require.Equal(t, 1, code)

			var errObj map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(out), &errObj))
			assert.NotEmpty(t, errObj["error"])
			assert.Equal(t, tt.wantStatus, errObj["http_status"])
		})
	}
}

func TestSummary_TableErrorGoesToStderr(t *testing.T) {
	code, out, errOut := run(t, "summary", "--age-min", "90")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Error:")
}

func TestRoot_RejectsUnknownOutput(t *testing.T) {
	code, _, errOut := run(t, "version", "-o", "yaml")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unsupported output format")
}

func TestRoot_OutputFromEnv(t *testing.T) {
	t.Setenv("TITANIC_OUTPUT", "json")
	code, out, _ := run(t, "version")
	require.Equal(t, 0, code)

	var v map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, "dev", v["version"])
}

func TestVersion(t *testing.T) {
	code, out, _ := run(t, "version")
	require.Equal(t, 0, code)
	assert.Equal(t, "titanic version dev (commit: none)\n", out)
}

func TestTUI_RequiresTerminal(t *testing.T) {
	code, _, errOut := run(t, "tui", "--dataset", writeDataset(t))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, errNotTerminal.Error())
}

func TestZeroArgCommandsRejectUnexpectedPositionalArgs(t *testing.T) {
	for _, args := range [][]string{{"version", "extra"}, {"summary", "extra"}, {"tui", "extra"}} {
		t.Run(args[0], func(t *testing.T) {
			cmd := newRootCmd()
			cmd.SetArgs(args)
			err := cmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "unknown command \"extra\"")
		})
	}
}
