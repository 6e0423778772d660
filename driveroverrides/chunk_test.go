package driveroverrides_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/GPUOpen-Tools/system-info-utils/chunk"
	"github.com/GPUOpen-Tools/system-info-utils/driveroverrides"
)

func TestIsChunkPresent(t *testing.T) {
	t.Parallel()

	empty := chunk.NewMem()
	assert.False(t, driveroverrides.IsChunkPresent(empty), "empty archive must report no chunk")

	archive := chunk.NewMem()
	archive.Add(driveroverrides.ChunkIdentifier, 99, []byte("ignored"))
	// Presence is independent of whether the chunk version is usable.
	assert.True(t, driveroverrides.IsChunkPresent(archive), "archive with the chunk must report it")
}

func TestDecodeChunk(t *testing.T) {
	t.Parallel()

	doc := `{"Components": [{"Component": "Gfx", "Structures": {"S": [{"SettingName": "A", "UserOverride": true}]}}]}`

	tests := map[string]struct {
		add     bool
		version uint32

		wantOk bool
	}{
		"Supported version decodes":  {add: true, version: 3, wantOk: true},
		"Minimum version decodes":    {add: true, version: 2, wantOk: true},
		"Version below range fails":  {add: true, version: 1, wantOk: false},
		"Version above range fails":  {add: true, version: 4, wantOk: false},
		"Missing chunk fails":        {add: false, wantOk: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			archive := chunk.NewMem()
			if tc.add {
				archive.Add(driveroverrides.ChunkIdentifier, tc.version, []byte(doc))
			}

			out, ok := driveroverrides.DecodeChunk(archive)

			require.Equal(t, tc.wantOk, ok, "decode success mismatch")
			if !tc.wantOk {
				assert.Empty(t, out, "failed decode must return an empty string")
				return
			}

			settings := gjson.Get(out, "Components.0.Structures.0.Settings")
			assert.Len(t, settings.Array(), 1, "filtered settings mismatch")
		})
	}
}
