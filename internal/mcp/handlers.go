package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/saree-gallery/internal/catalog"
	"github.com/ziadkadry99/saree-gallery/internal/gallery"
)

func (s *Server) unavailable() *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("catalog unavailable: %v", s.buildErr))
}

// handleSearchSarees filters the catalog with the same rules as the grid search box.
func (s *Server) handleSearchSarees(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.buildErr != nil {
		return s.unavailable(), nil
	}

	query := request.GetString("query", "")
	limit := request.GetInt("limit", 50)
	if limit <= 0 {
		limit = 50
	}

	results := gallery.Filter(s.catalog.Items, query)
	if len(results) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No sarees match %q.", gallery.NormalizeQuery(query))), nil
	}

	return mcp.NewToolResultText(formatSearchResults(results, limit)), nil
}

// handleGetSaree returns the full record of one saree.
func (s *Server) handleGetSaree(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}
	if s.buildErr != nil {
		return s.unavailable(), nil
	}

	item, ok := s.catalog.Lookup(id)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("No saree with id %q.", id)), nil
	}

	return mcp.NewToolResultText(formatItem(item)), nil
}

// handleCatalogSummary describes the catalog snapshot.
func (s *Server) handleCatalogSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.buildErr != nil {
		return s.unavailable(), nil
	}

	photos := 0
	withOriginals := 0
	for _, it := range s.catalog.Items {
		photos += it.Count()
		if it.Originals != "" {
			withOriginals++
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Build: %s\n", s.catalog.BuildID))
	if !s.catalog.BuiltAt.IsZero() {
		sb.WriteString(fmt.Sprintf("Built at: %s\n", s.catalog.BuiltAt.Format("2006-01-02 15:04:05 MST")))
	}
	if s.catalog.Source != "" {
		sb.WriteString(fmt.Sprintf("Source: %s\n", s.catalog.Source))
	}
	sb.WriteString(fmt.Sprintf("Sarees: %d\n", s.catalog.Len()))
	sb.WriteString(fmt.Sprintf("Photos: %d\n", photos))
	sb.WriteString(fmt.Sprintf("With originals link: %d\n", withOriginals))

	return mcp.NewToolResultText(sb.String()), nil
}

// formatSearchResults lists matches one per line, truncated to limit.
func formatSearchResults(items []catalog.Item, limit int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d saree(s):\n", len(items)))

	for i, it := range items {
		if i == limit {
			sb.WriteString(fmt.Sprintf("... and %d more\n", len(items)-limit))
			break
		}
		sb.WriteString(fmt.Sprintf("- %s: %s\n", it.ID, gallery.CountLabel(it.Count())))
	}

	return sb.String()
}

func formatItem(it *catalog.Item) string {
	var sb strings.Builder
	sb.WriteString(gallery.Title(it.ID) + "\n")
	sb.WriteString(gallery.CountLabel(it.Count()) + "\n")
	sb.WriteString(fmt.Sprintf("Thumbnail: %s\n", it.Thumbnail))
	if it.Originals != "" {
		sb.WriteString(fmt.Sprintf("Originals: %s\n", it.Originals))
	}
	sb.WriteString("\nPhotos:\n")
	for i, img := range it.Images {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, img))
	}
	return sb.String()
}
