package model

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ AnalyticsEventsModel = (*customAnalyticsEventsModel)(nil)

type (
	// AnalyticsEventsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customAnalyticsEventsModel.
	AnalyticsEventsModel interface {
		analyticsEventsModel
		withSession(session sqlx.Session) AnalyticsEventsModel
		CountByType(ctx context.Context, siteID string) ([]*TypeCount, error)
		ListRecent(ctx context.Context, siteID string, limit int) ([]*AnalyticsEvents, error)
	}

	customAnalyticsEventsModel struct {
		*defaultAnalyticsEventsModel
	}

	// TypeCount is the number of stored events of one type.
	TypeCount struct {
		EventType string `db:"event_type"`
		Count     int64  `db:"count"`
	}
)

// NewAnalyticsEventsModel returns a model for the database table.
func NewAnalyticsEventsModel(conn sqlx.SqlConn) AnalyticsEventsModel {
	return &customAnalyticsEventsModel{
		defaultAnalyticsEventsModel: newAnalyticsEventsModel(conn),
	}
}

func (m *customAnalyticsEventsModel) withSession(session sqlx.Session) AnalyticsEventsModel {
	return NewAnalyticsEventsModel(sqlx.NewSqlConnFromSession(session))
}

// CountByType groups the site's events by type. An empty siteID counts every site.
func (m *customAnalyticsEventsModel) CountByType(ctx context.Context, siteID string) ([]*TypeCount, error) {
	query := fmt.Sprintf("select `event_type`, count(*) as `count` from %s where (? = '' or `site_id` = ?) group by `event_type` order by `event_type`", m.table)
	var resp []*TypeCount
	if err := m.conn.QueryRowsCtx(ctx, &resp, query, siteID, siteID); err != nil {
		return nil, err
	}
	return resp, nil
}

// ListRecent returns the newest events first.
func (m *customAnalyticsEventsModel) ListRecent(ctx context.Context, siteID string, limit int) ([]*AnalyticsEvents, error) {
	if limit <= 0 {
		limit = 20
	}
	query := fmt.Sprintf("select %s from %s where (? = '' or `site_id` = ?) order by `created_at` desc limit ?", analyticsEventsRows, m.table)
	var resp []*AnalyticsEvents
	if err := m.conn.QueryRowsCtx(ctx, &resp, query, siteID, siteID, limit); err != nil {
		return nil, err
	}
	return resp, nil
}
