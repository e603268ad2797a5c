// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package font

import (
	"context"

	"github.com/joeblew999/plat-fonts/internal/panel"
	"github.com/joeblew999/plat-fonts/internal/svc"
	"github.com/joeblew999/plat-fonts/internal/types"
	"github.com/joeblew999/plat-fonts/pkg/font"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListFontsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListFontsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListFontsLogic {
	return &ListFontsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListFontsLogic) ListFonts() (resp *types.ListFontsResponse, err error) {
	weights := make([]types.WeightItem, 0, len(font.Weights))
	for _, w := range font.Weights {
		weights = append(weights, types.WeightItem{Value: w, Label: font.WeightLabel(w)})
	}

	return &types.ListFontsResponse{
		Fonts:     append([]string(nil), font.PopularFonts...),
		Weights:   weights,
		Preloaded: font.PreloadedFont,
		Defaults:  append([]string(nil), panel.DefaultFonts...),
		Count:     len(font.PopularFonts),
	}, nil
}
