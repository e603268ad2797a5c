// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package recommend

import (
	"net/http"

	"github.com/joeblew999/plat-fonts/internal/errorx"
	"github.com/joeblew999/plat-fonts/internal/logic/recommend"
	"github.com/joeblew999/plat-fonts/internal/svc"
	"github.com/joeblew999/plat-fonts/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func RecommendHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.RecommendRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, errorx.ErrBadRequest(err.Error()))
			return
		}

		l := recommend.NewRecommendLogic(r.Context(), svcCtx)
		resp, err := l.Recommend(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
