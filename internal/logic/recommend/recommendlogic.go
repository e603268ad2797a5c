// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package recommend

import (
	"context"
	"errors"
	"strings"

	"github.com/joeblew999/plat-fonts/internal/errorx"
	"github.com/joeblew999/plat-fonts/internal/recommend"
	"github.com/joeblew999/plat-fonts/internal/svc"
	"github.com/joeblew999/plat-fonts/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type RecommendLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewRecommendLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RecommendLogic {
	return &RecommendLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *RecommendLogic) Recommend(req *types.RecommendRequest) (resp *types.RecommendResponse, err error) {
	if strings.TrimSpace(req.FontName) == "" {
		return nil, errorx.ErrBadRequest("fontName is required")
	}

	out, err := l.svcCtx.Recommender.Recommend(l.ctx, req.FontName)
	if err == nil && (out == nil || out.Recommendation == "") {
		err = recommend.ErrEmptyRecommendation
	}
	switch {
	case err == nil:
	case errors.Is(err, recommend.ErrUnavailable):
		return nil, errorx.ErrUnavailable("recommendations are not configured")
	default:
		l.Errorf("recommend %q: %v", req.FontName, err)
		return nil, errorx.ErrBadGateway("recommendation service failed")
	}

	return &types.RecommendResponse{
		FontName:       req.FontName,
		Recommendation: out.Recommendation,
	}, nil
}
