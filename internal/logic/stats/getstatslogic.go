// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package stats

import (
	"context"

	"github.com/joeblew999/plat-fonts/internal/errorx"
	"github.com/joeblew999/plat-fonts/internal/svc"
	"github.com/joeblew999/plat-fonts/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type GetStatsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetStatsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetStatsLogic {
	return &GetStatsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetStatsLogic) GetStats(req *types.StatsRequest) (resp *types.StatsResponse, err error) {
	if l.svcCtx.Events == nil {
		return nil, errorx.ErrUnavailable("analytics are disabled")
	}
	siteID := l.svcCtx.Config.Analytics.SiteID

	counts, err := l.svcCtx.Events.CountByType(l.ctx, siteID)
	if err != nil {
		return nil, errorx.ErrInternal("failed to count events: " + err.Error())
	}
	recent, err := l.svcCtx.Events.ListRecent(l.ctx, siteID, req.Limit)
	if err != nil {
		return nil, errorx.ErrInternal("failed to list events: " + err.Error())
	}

	stats := make(map[string]int64, len(counts))
	var total int64
	for _, c := range counts {
		stats[c.EventType] = c.Count
		total += c.Count
	}

	items := make([]types.EventItem, 0, len(recent))
	for _, e := range recent {
		items = append(items, types.EventItem{
			Id:        e.Id,
			Type:      e.EventType,
			Payload:   e.Payload.String,
			CreatedAt: e.CreatedAt,
		})
	}

	return &types.StatsResponse{
		SiteId: siteID,
		Stats:  stats,
		Total:  total,
		Recent: items,
	}, nil
}
