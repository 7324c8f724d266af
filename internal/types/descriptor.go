package types

import "encoding/json"

// Descriptor is the parsed definition of one installable game version.
// It mirrors the externally versioned JSON schema stored under
// versions/<id>/<id>.json and is immutable once loaded: each resolution
// run owns the descriptor it loaded and never writes to it.
type Descriptor struct {
	// ID is the version identifier, e.g. "1.20.1". It names the version
	// directory and the primary client jar.
	ID string `json:"id"`

	// MainClass is the JVM entry point started by the launch command.
	MainClass string `json:"mainClass"`

	// Assets is the optional assets index identifier.
	Assets string `json:"assets,omitempty"`

	// MinecraftArguments is the legacy flat argument template. Older
	// descriptors carry only this field.
	MinecraftArguments string `json:"minecraftArguments,omitempty"`

	// Arguments is the structured argument template introduced by newer
	// schema revisions. Both forms may be present at once; legacy content
	// precedes structured content in the composed argument list.
	Arguments *Arguments `json:"arguments,omitempty"`

	// Libraries is the ordered dependency list.
	Libraries []Library `json:"libraries,omitempty"`
}

// Arguments holds the structured argument lists of newer descriptors.
type Arguments struct {
	Game []ArgumentToken `json:"game"`
}

// ArgumentToken is one entry of a structured argument list. The wire
// format mixes plain strings with rule-scoped objects; only plain strings
// participate in substitution, object tokens are carried but inert.
type ArgumentToken struct {
	Value    string
	IsString bool
}

func (t *ArgumentToken) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err == nil {
		t.Value = value
		t.IsString = true
		return nil
	}
	// Rule-scoped object token. Its filtering semantics are defined by the
	// schema but carry no substitution effect here.
	t.Value = ""
	t.IsString = false
	return nil
}

// Library is one optional dependency of a version: a Maven-style
// coordinate plus platform-conditional inclusion rules and an optional
// map of platform-native classifier templates.
type Library struct {
	// Name is the group:artifact:version coordinate.
	Name string `json:"name"`

	// Rules guard inclusion of this library. An empty list means the
	// library is included unconditionally.
	Rules []Rule `json:"rules,omitempty"`

	// Natives maps a platform name to a native-variant classifier
	// template, e.g. "natives-windows-${arch}".
	Natives map[string]string `json:"natives,omitempty"`
}

// Rule is one allow/disallow clause constraining library inclusion by
// platform and, for allow rules, architecture.
type Rule struct {
	Action RuleAction    `json:"action"`
	OS     *OSConstraint `json:"os,omitempty"`
}

// OSConstraint narrows a rule to one platform name and optionally one
// architecture.
type OSConstraint struct {
	Name string `json:"name"`
	Arch string `json:"arch,omitempty"`
}
