// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package font

import (
	"context"
	"strings"

	"github.com/joeblew999/plat-fonts/internal/errorx"
	"github.com/joeblew999/plat-fonts/internal/svc"
	"github.com/joeblew999/plat-fonts/internal/types"
	"github.com/joeblew999/plat-fonts/pkg/font"

	"github.com/zeromicro/go-zero/core/logx"
)

type StylesheetLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewStylesheetLogic(ctx context.Context, svcCtx *svc.ServiceContext) *StylesheetLogic {
	return &StylesheetLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *StylesheetLogic) Stylesheet(req *types.StylesheetRequest) (resp *types.StylesheetResponse, err error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, errorx.ErrBadRequest("name is required")
	}

	return &types.StylesheetResponse{
		Name:      req.Name,
		Family:    font.Sanitize(req.Name),
		Url:       font.StylesheetURL(l.svcCtx.Config.Fonts.BaseURL, req.Name),
		Preloaded: req.Name == font.PreloadedFont,
	}, nil
}
