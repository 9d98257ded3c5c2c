package kafka

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lovoo/goka"
	"github.com/niksmo/shopfront/internal/core/port"
	"github.com/niksmo/shopfront/pkg/schema"
)

var _ port.RegionStats = (*RegionStatsView)(nil)

// A RegionStatsView reads the stats group table built by
// [RegionStatsProcessor]. Regions without orders read as zero.
type RegionStatsView struct {
	gv *goka.View
}

func NewRegionStatsView(
	seedBrokers []string, groupTable string,
) (*RegionStatsView, error) {
	const op = "NewRegionStatsView"

	gv, err := goka.NewView(
		seedBrokers,
		goka.GroupTable(goka.Group(groupTable)),
		newRegionStatsCodec(),
	)
	if err != nil {
		return nil, opErr(err, op)
	}

	return &RegionStatsView{gv}, nil
}

func (v *RegionStatsView) Run(ctx context.Context) {
	const op = "RegionStatsView.Run"
	log := slog.With("op", op)

	err := v.gv.Run(ctx)
	if err != nil {
		log.Error("unexpected fail on run", "err", err)
	}
}

func (v *RegionStatsView) RegionStats(
	regionCode string,
) (orders int64, revenue int64, err error) {
	const op = "RegionStatsView.RegionStats"

	value, err := v.gv.Get(regionCode)
	if err != nil {
		return 0, 0, opErr(err, op)
	}

	if value == nil {
		return 0, 0, nil
	}

	stats, ok := value.(schema.RegionStatsV1)
	if !ok {
		return 0, 0, opErr(
			fmt.Errorf("%w: %T", ErrInvalidValueType, value), op,
		)
	}
	return stats.Orders, stats.Revenue, nil
}
