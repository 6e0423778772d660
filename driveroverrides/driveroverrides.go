// Package driveroverrides decodes the driver overrides document captured
// alongside a trace: the driver settings and experiments the user changed
// from their defaults. Decoding filters the document down to the entries
// carrying a user override marker and re-serializes the result, so tools
// display only what the user actually touched.
package driveroverrides

import (
	"encoding/json"
	"log/slog"

	"github.com/tidwall/gjson"

	"github.com/GPUOpen-Tools/system-info-utils/internal/jsonnode"
)

const (
	// ChunkVersionMin and ChunkVersionMax bound the chunk format
	// versions this build understands.
	ChunkVersionMin uint32 = 2
	ChunkVersionMax uint32 = 3
)

// Wire keys of the driver overrides document.
const (
	keyIsDriverExperiments = "IsDriverExperiments"
	keyComponents          = "Components"
	keyComponent           = "Component"
	keyStructures          = "Structures"
	keySettingName         = "SettingName"
	keyCurrent             = "Current"
	keyValue               = "Value"
	keyUserOverride        = "UserOverride"
	keyDescription         = "Description"
	keySupported           = "Supported"
)

// miscStructureName stands in for structures the document left unnamed.
const miscStructureName = "Misc."

// filterStage captures what one chunk version adds on top of the base
// filter. A new chunk version appends a stage; the walk itself is shared.
type filterStage struct {
	// experiments carries the top level driver experiments marker through.
	experiments bool
	// supported carries the per setting Supported flag through.
	supported bool
}

func stageFor(version uint32) (filterStage, bool) {
	switch version {
	case 2:
		return filterStage{}, true
	case 3:
		return filterStage{experiments: true, supported: true}, true
	}
	return filterStage{}, false
}

// Output shape of the filtered document. Current and Value keep whatever
// JSON type the driver wrote.
type setting struct {
	SettingName string          `json:"SettingName"`
	Current     json.RawMessage `json:"Current,omitempty"`
	Value       json.RawMessage `json:"Value,omitempty"`
	Description string          `json:"Description,omitempty"`
	Supported   *bool           `json:"Supported,omitempty"`
}

type structure struct {
	Structure string    `json:"Structure"`
	Settings  []setting `json:"Settings"`
}

type component struct {
	Component  string      `json:"Component"`
	Structures []structure `json:"Structures"`
}

type document struct {
	IsDriverExperiments *bool       `json:"IsDriverExperiments,omitempty"`
	Components          []component `json:"Components"`
}

// Decode filters a driver overrides JSON document of the given chunk
// version down to user overridden settings and returns the filtered
// document re-serialized. A version outside [ChunkVersionMin,
// ChunkVersionMax] or a document that is not valid JSON fails: the
// returned string is then empty and the bool false.
func Decode(text string, version uint32) (out string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("driver overrides decode panicked", "recover", r)
			out, ok = "", false
		}
	}()

	stage, ok := stageFor(version)
	if !ok {
		slog.Warn("unsupported driver overrides chunk version", "version", version)
		return "", false
	}

	if !gjson.Valid(text) {
		return "", false
	}
	doc := gjson.Parse(text)

	filtered := document{Components: []component{}}

	if stage.experiments && jsonnode.Has(doc, keyIsDriverExperiments) {
		v := jsonnode.Scalar(doc, keyIsDriverExperiments, false)
		filtered.IsDriverExperiments = &v
	}

	doc.Get(keyComponents).ForEach(func(_, componentNode gjson.Result) bool {
		c := filterComponent(componentNode, stage)
		if len(c.Structures) > 0 {
			filtered.Components = append(filtered.Components, c)
		}
		return true
	})

	data, err := json.Marshal(filtered)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// filterComponent walks one component's structures and keeps the settings
// flagged as user overridden. Structures with no surviving settings are
// dropped, as are components with no surviving structures.
func filterComponent(node gjson.Result, stage filterStage) component {
	c := component{
		Component: jsonnode.Scalar(node, keyComponent, ""),
	}

	node.Get(keyStructures).ForEach(func(name, settingsNode gjson.Result) bool {
		s := structure{Structure: name.String()}
		if s.Structure == "" {
			s.Structure = miscStructureName
		}

		settingsNode.ForEach(func(_, settingNode gjson.Result) bool {
			if !jsonnode.Scalar(settingNode, keyUserOverride, false) {
				return true
			}
			s.Settings = append(s.Settings, filterSetting(settingNode, stage))
			return true
		})

		if len(s.Settings) > 0 {
			c.Structures = append(c.Structures, s)
		}
		return true
	})

	return c
}

func filterSetting(node gjson.Result, stage filterStage) setting {
	s := setting{
		SettingName: jsonnode.Scalar(node, keySettingName, ""),
		Description: jsonnode.Scalar(node, keyDescription, ""),
	}

	if v := node.Get(keyCurrent); v.Exists() {
		s.Current = json.RawMessage(v.Raw)
	}
	if v := node.Get(keyValue); v.Exists() {
		s.Value = json.RawMessage(v.Raw)
	}
	if stage.supported && jsonnode.Has(node, keySupported) {
		supported := jsonnode.Scalar(node, keySupported, false)
		s.Supported = &supported
	}

	return s
}
