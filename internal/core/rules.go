package core

import "mclauncher/internal/types"

// ShouldInclude reports whether a library guarded by the given rule list
// applies on the target platform.
//
// The decision starts at true and every rule in order may overwrite it:
// the last applicable rule wins, including unconditional rules that flip
// a decision made by a conditional rule earlier in the list. This is not
// a first-match-wins scan; no rule short-circuits the rest.
//
// Disallow rules never consult the architecture, only the platform name.
// Descriptors in the wild depend on that exact asymmetry, so it is kept
// as documented behavior.
func ShouldInclude(rules []types.Rule, platform types.Platform) bool {
	if len(rules) == 0 {
		return true
	}
	include := true
	for _, rule := range rules {
		switch rule.Action {
		case types.RuleActionAllow:
			if rule.OS == nil {
				include = true
				continue
			}
			if rule.OS.Name != platform.Name {
				include = false
				continue
			}
			include = rule.OS.Arch == "" || rule.OS.Arch == platform.Arch
		case types.RuleActionDisallow:
			if rule.OS == nil || rule.OS.Name == platform.Name {
				include = false
			}
		}
	}
	return include
}
