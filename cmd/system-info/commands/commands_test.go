package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/GPUOpen-Tools/system-info-utils/cmd/system-info/commands"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	a, err := commands.New()
	require.NoError(t, err, "Setup: could not create app")

	var out bytes.Buffer
	a.SetOut(&out)
	a.SetArgs(args...)

	err = a.Run()
	return out.String(), err
}

func writeDocument(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600), "Setup: could not write document")
	return path
}

func TestShowCmd(t *testing.T) {
	// Commented JSON must load too: captures get annotated during triage.
	path := writeDocument(t, `{
		// capture from the repro machine
		"system": {"version": 2, "os": {"hostname": "box"}}
	}`)

	out, err := runApp(t, "show", path)

	require.NoError(t, err, "show should succeed")
	assert.Equal(t, "box", gjson.Get(out, "os.hostname").String(), "decoded hostname mismatch")
	assert.Equal(t, int64(2), gjson.Get(out, "version.major").Int(), "decoded version mismatch")
}

func TestShowCmdFailsOnUnknownVersion(t *testing.T) {
	path := writeDocument(t, `{"version": 99}`)

	_, err := runApp(t, "show", path)

	require.Error(t, err, "show must fail on an unknown schema version")
}

func TestShowCmdFailsOnMissingFile(t *testing.T) {
	_, err := runApp(t, "show", filepath.Join(t.TempDir(), "nope.json"))

	require.Error(t, err, "show must fail on a missing file")
}

func TestNormalizeCmd(t *testing.T) {
	path := writeDocument(t, `{"system":{"version":1}}`)

	out, err := runApp(t, "normalize", path)

	require.NoError(t, err, "normalize should succeed")
	assert.JSONEq(t, `{"version":1}`, out, "normalize output mismatch")
}

func TestOverridesCmd(t *testing.T) {
	path := writeDocument(t, `{"Components": [{"Component": "Gfx", "Structures": {"S": [
		{"SettingName": "A", "UserOverride": true},
		{"SettingName": "B", "UserOverride": false}
	]}}]}`)

	out, err := runApp(t, "overrides", path, "--chunk-version", "2")

	require.NoError(t, err, "overrides should succeed")
	settings := gjson.Get(out, "Components.0.Structures.0.Settings").Array()
	require.Len(t, settings, 1, "only overridden settings survive")
	assert.Equal(t, "A", settings[0].Get("SettingName").String(), "setting name mismatch")
}

func TestOverridesCmdRejectsBadVersion(t *testing.T) {
	path := writeDocument(t, `{"Components": []}`)

	_, err := runApp(t, "overrides", path, "--chunk-version", "1")

	require.Error(t, err, "overrides must fail outside the supported version range")
}
