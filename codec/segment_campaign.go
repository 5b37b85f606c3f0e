package codec

import (
	"context"
	"encoding/binary"

	"github.com/tavernkeep/savecore/domain"
)

// TagCampaignTime is the single i64 tick counter segment.
const TagCampaignTime uint16 = 0x0001

func init() {
	RegisterSegment(TagCampaignTime, "CampaignTime", false, decodeCampaignTime, encodeCampaignTime)
}

func decodeCampaignTime(_ context.Context, payload []byte, save *domain.Save) error {
	if len(payload) < 8 {
		return nil
	}
	save.CampaignTicks = int64(binary.LittleEndian.Uint64(payload[:8]))
	return nil
}

func encodeCampaignTime(_ context.Context, save *domain.Save) ([]byte, error) {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, uint64(save.CampaignTicks))
	return buf, nil
}
