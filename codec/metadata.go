package codec

import (
	"github.com/goccy/go-json"

	"github.com/tavernkeep/savecore/domain"
	"github.com/tavernkeep/savecore/savelog"
)

// decodeMetadata tolerantly parses the envelope's metadata JSON object.
// Unknown fields are ignored; type-mismatched fields keep the zero value
// and append a warning instead of failing the load.
func decodeMetadata(raw []byte) (domain.Metadata, []string) {
	var out domain.Metadata
	if len(raw) == 0 {
		return out, nil
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return out, []string{"metadata: not a JSON object, using defaults: " + err.Error()}
	}

	var warnings []string
	note := func(field string) {
		warnings = append(warnings, "metadata: field "+field+" had an unexpected type, using default")
	}

	if v, ok := fields["CharacterName"]; ok {
		if s, ok := v.(string); ok {
			out.CharacterName = s
		} else {
			note("CharacterName")
		}
	}
	if v, ok := fields["MainHeroLevel"]; ok {
		if f, ok := v.(float64); ok {
			out.MainHeroLevel = int(f)
		} else {
			note("MainHeroLevel")
		}
	}
	if v, ok := fields["DayLong"]; ok {
		if f, ok := v.(float64); ok {
			out.Day = int32(f)
		} else {
			note("DayLong")
		}
	}
	if v, ok := fields["PlayTime"]; ok {
		if f, ok := v.(float64); ok {
			out.PlayTime = int64(f)
		} else {
			note("PlayTime")
		}
	}
	if v, ok := fields["ClanName"]; ok {
		if s, ok := v.(string); ok {
			out.ClanName = s
		} else {
			note("ClanName")
		}
	}
	if v, ok := fields["Gold"]; ok {
		if f, ok := v.(float64); ok {
			out.Gold = int64(f)
		} else {
			note("Gold")
		}
	}

	return out, warnings
}

// encodeMetadata serializes Metadata to the recognized-keys JSON object.
func encodeMetadata(m domain.Metadata) ([]byte, error) {
	fields := map[string]any{
		"CharacterName": m.CharacterName,
		"MainHeroLevel": m.MainHeroLevel,
		"DayLong":       float64(m.Day),
		"PlayTime":      m.PlayTime,
		"ClanName":      m.ClanName,
		"Gold":          m.Gold,
	}
	data, err := json.Marshal(fields)
	if err != nil {
		savelog.Error("metadata encode failed", savelog.F("error", err))
		return nil, err
	}
	return data, nil
}
