package driveroverrides_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/GPUOpen-Tools/system-info-utils/driveroverrides"
)

const overridesDoc = `{
	"IsDriverExperiments": true,
	"Components": [
		{
			"Component": "Gfx",
			"Structures": {
				"ShaderCache": [
					{"SettingName": "CacheMode", "Current": 2, "Value": 0, "Description": "shader cache mode", "UserOverride": true, "Supported": true},
					{"SettingName": "CacheSize", "Current": 256, "Value": 256, "Description": "cache size", "UserOverride": false}
				],
				"": [
					{"SettingName": "DebugBits", "Current": "0x4", "Value": "0x0", "UserOverride": true, "Supported": false}
				]
			}
		},
		{
			"Component": "Dxc",
			"Structures": {
				"Compiler": [
					{"SettingName": "OptLevel", "Current": 3, "Value": 3, "UserOverride": false}
				]
			}
		}
	]
}`

func TestDecodeFiltersUserOverrides(t *testing.T) {
	t.Parallel()

	out, ok := driveroverrides.Decode(overridesDoc, 3)
	require.True(t, ok, "document should decode")
	require.True(t, gjson.Valid(out), "filtered output must be valid JSON")

	doc := gjson.Parse(out)

	assert.True(t, doc.Get("IsDriverExperiments").Bool(), "experiments marker must carry through on version 3")

	components := doc.Get("Components").Array()
	// Dxc has no user overridden settings and must be dropped entirely.
	require.Len(t, components, 1, "component count mismatch")
	assert.Equal(t, "Gfx", components[0].Get("Component").String(), "component name mismatch")

	structures := components[0].Get("Structures").Array()
	require.Len(t, structures, 2, "structure count mismatch")

	shaderCache := structures[0]
	assert.Equal(t, "ShaderCache", shaderCache.Get("Structure").String(), "structure name mismatch")
	settings := shaderCache.Get("Settings").Array()
	require.Len(t, settings, 1, "only the user overridden setting may survive")
	assert.Equal(t, "CacheMode", settings[0].Get("SettingName").String(), "setting name mismatch")
	assert.Equal(t, int64(2), settings[0].Get("Current").Int(), "current value mismatch")
	assert.Equal(t, int64(0), settings[0].Get("Value").Int(), "default value mismatch")
	assert.True(t, settings[0].Get("Supported").Bool(), "supported flag must carry through on version 3")
	assert.False(t, settings[0].Get("UserOverride").Exists(), "the override marker itself is filtered out")

	// Unnamed structures render under the miscellaneous name.
	misc := structures[1]
	assert.Equal(t, "Misc.", misc.Get("Structure").String(), "unnamed structure name mismatch")
	miscSettings := misc.Get("Settings").Array()
	require.Len(t, miscSettings, 1, "misc settings count mismatch")
	assert.Equal(t, "DebugBits", miscSettings[0].Get("SettingName").String(), "misc setting name mismatch")
	assert.Equal(t, "0x4", miscSettings[0].Get("Current").String(), "string typed values must keep their type")
}

func TestDecodeVersion2DropsVersion3Fields(t *testing.T) {
	t.Parallel()

	out, ok := driveroverrides.Decode(overridesDoc, 2)
	require.True(t, ok, "document should decode")

	doc := gjson.Parse(out)

	assert.False(t, doc.Get("IsDriverExperiments").Exists(), "version 2 has no experiments marker")

	settings := doc.Get("Components.0.Structures.0.Settings").Array()
	require.NotEmpty(t, settings, "settings must survive the filter")
	assert.False(t, settings[0].Get("Supported").Exists(), "version 2 has no supported flag")
}

func TestDecodeVersionBounds(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		version uint32
		wantOk  bool
	}{
		"Below minimum fails": {version: 1, wantOk: false},
		"Minimum decodes":     {version: 2, wantOk: true},
		"Maximum decodes":     {version: 3, wantOk: true},
		"Above maximum fails": {version: 4, wantOk: false},
		"Zero fails":          {version: 0, wantOk: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			out, ok := driveroverrides.Decode(overridesDoc, tc.version)

			assert.Equal(t, tc.wantOk, ok, "decode success mismatch")
			if !tc.wantOk {
				assert.Empty(t, out, "failed decode must return an empty string")
			}
		})
	}
}

func TestDecodeDegenerateDocuments(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		doc    string
		wantOk bool
		want   string
	}{
		"Malformed JSON fails": {
			doc:    `{"Components": [`,
			wantOk: false,
		},
		"Empty object filters to no components": {
			doc:    `{}`,
			wantOk: true,
			want:   `{"Components":[]}`,
		},
		"Nothing overridden filters to no components": {
			doc:    `{"Components": [{"Component": "Gfx", "Structures": {"S": [{"SettingName": "A", "UserOverride": false}]}}]}`,
			wantOk: true,
			want:   `{"Components":[]}`,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			out, ok := driveroverrides.Decode(tc.doc, 2)

			require.Equal(t, tc.wantOk, ok, "decode success mismatch")
			if tc.wantOk {
				assert.Equal(t, tc.want, out, "filtered output mismatch")
			}
		})
	}
}
