package driveroverrides

import (
	"log/slog"

	"github.com/GPUOpen-Tools/system-info-utils/chunk"
)

// ChunkIdentifier names the driver overrides chunk inside a capture archive.
const ChunkIdentifier = "DriverOverrides"

// IsChunkPresent reports whether the archive carries a driver overrides
// chunk at all, regardless of its version.
func IsChunkPresent(f chunk.File) bool {
	return f.Contains(ChunkIdentifier)
}

// DecodeChunk reads the driver overrides chunk out of an archive and
// filters it. A missing chunk, a chunk version outside the supported
// range or a read failure short-circuits to an empty string and false
// without a partial decode.
func DecodeChunk(f chunk.File) (string, bool) {
	if !f.Contains(ChunkIdentifier) {
		return "", false
	}

	version, err := f.Version(ChunkIdentifier)
	if err != nil || version < ChunkVersionMin || version > ChunkVersionMax {
		slog.Debug("rejecting driver overrides chunk", "version", version, "error", err)
		return "", false
	}

	data, err := f.Read(ChunkIdentifier)
	if err != nil {
		return "", false
	}

	return Decode(string(data), version)
}
