package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeMetadataTolerant(t *testing.T) {
	raw := []byte(`{"CharacterName":"Derthert","MainHeroLevel":25,"DayLong":142.0,"PlayTime":3600,"ClanName":"Varvoros","Gold":50000,"UnknownField":"ignored"}`)
	meta, warnings := decodeMetadata(raw)
	assert.Empty(t, warnings)
	assert.Equal(t, "Derthert", meta.CharacterName)
	assert.Equal(t, 25, meta.MainHeroLevel)
	assert.Equal(t, int32(142), meta.Day)
	assert.Equal(t, int64(3600), meta.PlayTime)
	assert.Equal(t, "Varvoros", meta.ClanName)
	assert.Equal(t, int64(50000), meta.Gold)
}

func TestDecodeMetadataTypeMismatchFallsBackToDefault(t *testing.T) {
	raw := []byte(`{"MainHeroLevel":"not a number"}`)
	meta, warnings := decodeMetadata(raw)
	assert.NotEmpty(t, warnings)
	assert.Equal(t, 0, meta.MainHeroLevel)
}

func TestDecodeMetadataEmpty(t *testing.T) {
	meta, warnings := decodeMetadata(nil)
	assert.Empty(t, warnings)
	assert.Zero(t, meta)
}

func TestEncodeDecodeMetadataRoundTrip(t *testing.T) {
	orig, _ := decodeMetadata([]byte(`{"CharacterName":"Ira","MainHeroLevel":10,"DayLong":5,"PlayTime":120,"ClanName":"Reach","Gold":900}`))
	raw, err := encodeMetadata(orig)
	assert.NoError(t, err)
	roundTripped, warnings := decodeMetadata(raw)
	assert.Empty(t, warnings)
	assert.Equal(t, orig, roundTripped)
}
