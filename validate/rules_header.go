package validate

import "github.com/tavernkeep/savecore/domain"

func init() {
	RegisterHeaderRule(checkGameVersionPresent)
	RegisterHeaderRule(checkHeaderVersionRange)
}

func checkGameVersionPresent(h domain.Header, ctx *Context) []Issue {
	if h.GameVersion == "" {
		return []Issue{{Severity: Warning, Code: "HEADER_001", Message: "game version missing", Path: "header.game_version"}}
	}
	return nil
}

func checkHeaderVersionRange(h domain.Header, ctx *Context) []Issue {
	if h.HeaderVersion < 1 || h.HeaderVersion > 10 {
		return []Issue{{
			Severity: Warning,
			Code:     "HEADER_002",
			Message:  "header version outside [1,10]",
			Path:     "header.header_version",
			Context:  map[string]any{"value": h.HeaderVersion},
		}}
	}
	return nil
}
