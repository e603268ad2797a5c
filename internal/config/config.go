package config

import (
	"github.com/zeromicro/go-zero/mcp"
	"github.com/zeromicro/go-zero/rest"
)

// Config holds the server configuration.
type Config struct {
	mcp.McpConf

	UI        UIConfig        `json:",optional"`
	API       APIConfig       `json:",optional"`
	Fonts     FontsConfig     `json:",optional"`
	Panels    PanelsConfig    `json:",optional"`
	Session   SessionConfig   `json:",optional"`
	Recommend RecommendConfig `json:",optional"`
	Analytics AnalyticsConfig `json:",optional"`
	Database  DatabaseConfig  `json:",optional"`
}

// UIConfig holds the Web UI server settings.
type UIConfig struct {
	rest.RestConf
}

// APIConfig holds the REST API server settings.
type APIConfig struct {
	rest.RestConf
}

// FontsConfig holds the fonts CDN settings.
type FontsConfig struct {
	BaseURL string `json:",default=https://fonts.googleapis.com"`
}

// PanelsConfig holds the comparison grid settings.
type PanelsConfig struct {
	Count int `json:",default=4,range=[1:12]"`
}

// SessionConfig holds workspace lifetime settings.
type SessionConfig struct {
	Expiry string `json:",default=2h"`
}

// RecommendConfig holds the recommendation service settings.
// An empty Endpoint disables recommendations.
type RecommendConfig struct {
	Endpoint string `json:",optional"`
	Timeout  string `json:",default=30s"`
}

// AnalyticsConfig holds analytics settings.
type AnalyticsConfig struct {
	Enabled   bool   `json:",default=true"`
	SiteID    string `json:",default=font-previewer"`
	URL       string `json:",optional"`
	Buffer    int    `json:",default=1024"`
	Workers   int    `json:",default=1"`
	RateLimit int    `json:",default=600"`
}

// DatabaseConfig holds database settings.
type DatabaseConfig struct {
	Path string `json:",default=./.data/plat-fonts.db"`
}
