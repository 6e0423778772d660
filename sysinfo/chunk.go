package sysinfo

import (
	"log/slog"

	"github.com/GPUOpen-Tools/system-info-utils/chunk"
)

const (
	// ChunkIdentifier names the system info chunk inside a capture archive.
	ChunkIdentifier = "SystemInfo"

	// ChunkVersionMax is the newest chunk format version this build
	// understands. Chunks declaring a newer version are rejected before
	// any payload is read.
	ChunkVersionMax uint32 = 1
)

// DecodeChunk reads the system info chunk out of an archive and decodes
// it. A missing chunk, an unsupported chunk version or a read failure
// short-circuits to a zero record and false without a partial decode.
func DecodeChunk(f chunk.File, args ...Options) (SystemInfo, bool) {
	if !f.Contains(ChunkIdentifier) {
		return SystemInfo{}, false
	}

	version, err := f.Version(ChunkIdentifier)
	if err != nil || version > ChunkVersionMax {
		slog.Debug("rejecting system info chunk", "version", version, "error", err)
		return SystemInfo{}, false
	}

	data, err := f.Read(ChunkIdentifier)
	if err != nil {
		return SystemInfo{}, false
	}

	return Decode(string(data), args...)
}
