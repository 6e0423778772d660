package sysinfo

import (
	"log/slog"

	"github.com/tidwall/gjson"

	"github.com/GPUOpen-Tools/system-info-utils/internal/jsonnode"
)

// Options is the variadic options available to the decode functions.
type Options func(*options)

type options struct {
	log *slog.Logger
}

// WithLogger overrides the logger used for decode diagnostics.
func WithLogger(l *slog.Logger) Options {
	return func(o *options) {
		o.log = l
	}
}

// Decode parses a system info JSON document into a SystemInfo record.
//
// The payload may sit under a top level "system" envelope or form the
// whole document; both decode identically. Absent optional sections leave
// their fields at the zero value. A document that is not valid JSON, or
// that declares a schema major version this build does not know, fails:
// the returned record is then the zero value and the bool is false.
func Decode(text string, args ...Options) (info SystemInfo, ok bool) {
	opts := options{log: slog.Default()}
	for _, opt := range args {
		opt(&opts)
	}

	// Nothing past this boundary is allowed to escape as a panic; a
	// document bad enough to trip one is just a failed decode.
	defer func() {
		if r := recover(); r != nil {
			opts.log.Warn("system info decode panicked", "recover", r)
			info, ok = SystemInfo{}, false
		}
	}()

	opts.log.Debug("decoding system info")

	if !gjson.Valid(text) {
		opts.log.Warn("system info document is not valid JSON")
		return SystemInfo{}, false
	}

	node := payloadNode(gjson.Parse(text))
	if !decodeSystemNode(node, &info, opts.log) {
		return SystemInfo{}, false
	}
	return info, true
}

// Normalize extracts the payload of a system info document without
// decoding its fields: the raw "system" subtree when the envelope is
// present, the input unchanged when it is not, and the empty string when
// the document is not valid JSON.
func Normalize(text string) string {
	if !gjson.Valid(text) {
		return ""
	}

	doc := gjson.Parse(text)
	if sys := doc.Get(keySystem); sys.Exists() {
		return sys.Raw
	}
	// A chunk extracted standalone from an archive omits the envelope.
	return text
}

// payloadNode unwraps the optional document envelope.
func payloadNode(doc gjson.Result) gjson.Result {
	if jsonnode.Has(doc, keySystem) {
		return doc.Get(keySystem)
	}
	return doc
}

// decodeSystemNode reads the structure revision and runs the matching
// mapper over the payload. Version 2 and later documents carry a
// structured version object; legacy documents a bare integer.
func decodeSystemNode(node gjson.Result, info *SystemInfo, log *slog.Logger) bool {
	if v := node.Get(keyVersion); v.Exists() && v.IsObject() {
		info.Version.Major = jsonnode.Scalar(v, keyMajor, uint32(2))
		info.Version.Minor = jsonnode.Scalar(v, keyMinor, uint32(0))
		info.Version.Patch = jsonnode.Scalar(v, keyPatch, uint32(0))
		info.Version.Build = jsonnode.Scalar(v, keyBuild, uint32(0))
	} else {
		info.Version.Major = jsonnode.Scalar(node, keyVersion, uint32(1))
	}

	m, ok := mapperFor(info.Version.Major)
	if !ok {
		log.Warn("unsupported system info schema version", "major", info.Version.Major)
		return false
	}

	m(node, info)
	return true
}
