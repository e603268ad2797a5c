// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package font

import (
	"net/http"

	"github.com/joeblew999/plat-fonts/internal/errorx"
	"github.com/joeblew999/plat-fonts/internal/logic/font"
	"github.com/joeblew999/plat-fonts/internal/svc"
	"github.com/joeblew999/plat-fonts/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func StylesheetHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.StylesheetRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, errorx.ErrBadRequest(err.Error()))
			return
		}

		l := font.NewStylesheetLogic(r.Context(), svcCtx)
		resp, err := l.Stylesheet(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
