package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/joeblew999/plat-fonts/internal/panel"
	"github.com/joeblew999/plat-fonts/internal/recommend"
	"github.com/joeblew999/plat-fonts/pkg/font"
	"github.com/zeromicro/go-zero/mcp"
)

type stylesheetArgs struct {
	Name string `json:"name" jsonschema:"Google Fonts family name, e.g. Open Sans"`
}

type stylesheetResult struct {
	Name      string `json:"name"`
	Family    string `json:"family"`
	URL       string `json:"url"`
	Preloaded bool   `json:"preloaded"`
}

type listFontsArgs struct{}

type weightInfo struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

type listFontsResult struct {
	Fonts    []string     `json:"fonts"`
	Weights  []weightInfo `json:"weights"`
	Defaults []string     `json:"defaults"`
}

type recommendArgs struct {
	FontName string `json:"fontName" jsonschema:"font family to get usage advice for"`
}

type recommendResult struct {
	FontName       string `json:"fontName"`
	Recommendation string `json:"recommendation"`
}

// RegisterMCPTools registers the font tools.
func RegisterMCPTools(s mcp.McpServer, fontsBaseURL string, rec recommend.Recommender) {
	registerStylesheetTool(s, fontsBaseURL)
	registerListFontsTool(s)
	registerRecommendTool(s, rec)
}

func registerStylesheetTool(s mcp.McpServer, base string) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "font_stylesheet",
		Description: "Build the Google Fonts stylesheet URL and CSS font-family value for a font name. All nine weights are requested.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args stylesheetArgs) (*mcp.CallToolResult, stylesheetResult, error) {
		if strings.TrimSpace(args.Name) == "" {
			return nil, stylesheetResult{}, fmt.Errorf("name is required")
		}
		return nil, stylesheetResult{
			Name:      args.Name,
			Family:    font.Sanitize(args.Name),
			URL:       font.StylesheetURL(base, args.Name),
			Preloaded: args.Name == font.PreloadedFont,
		}, nil
	})
}

func registerListFontsTool(s mcp.McpServer) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_fonts",
		Description: "List the popular Google Fonts offered for comparison, the weight steps and the default panel fonts.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, _ listFontsArgs) (*mcp.CallToolResult, listFontsResult, error) {
		weights := make([]weightInfo, 0, len(font.Weights))
		for _, w := range font.Weights {
			weights = append(weights, weightInfo{Value: w, Label: font.WeightLabel(w)})
		}
		return nil, listFontsResult{
			Fonts:    append([]string(nil), font.PopularFonts...),
			Weights:  weights,
			Defaults: append([]string(nil), panel.DefaultFonts...),
		}, nil
	})
}

func registerRecommendTool(s mcp.McpServer, rec recommend.Recommender) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "recommend_font",
		Description: "Ask the recommendation service for typical uses, pairings and best practices for a font.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args recommendArgs) (*mcp.CallToolResult, recommendResult, error) {
		resp, err := rec.Recommend(ctx, args.FontName)
		if err == nil && (resp == nil || resp.Recommendation == "") {
			err = recommend.ErrEmptyRecommendation
		}
		if err != nil {
			return nil, recommendResult{}, fmt.Errorf("recommend %q: %w", args.FontName, err)
		}
		return nil, recommendResult{
			FontName:       args.FontName,
			Recommendation: resp.Recommendation,
		}, nil
	})
}
