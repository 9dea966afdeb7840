package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/saree-gallery/internal/catalog"
)

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		BuildID: "b-1",
		Source:  "https://example.com/sarees",
		Items: []catalog.Item{
			{ID: "A1", Thumbnail: "images/A1/thumb.webp", Images: []string{"images/A1/1.webp"}},
			{ID: "B1", Thumbnail: "images/B1/thumb.webp", Images: []string{"images/B1/1.webp", "images/B1/2.webp"}, Originals: "http://orig/b1"},
			{ID: "B2", Thumbnail: "images/B2/thumb.webp", Images: []string{"images/B2/1.webp"}},
		},
	}
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"search_sarees", searchSareesTool, "search_sarees"},
		{"get_saree", getSareeTool, "get_saree"},
		{"catalog_summary", catalogSummaryTool, "catalog_summary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	cat := testCatalog()
	srv := NewServer(cat, nil)

	if srv == nil {
		t.Fatal("NewServer returned nil")
	}
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.catalog != cat {
		t.Error("catalog not set correctly")
	}
}

func TestHandleSearchSarees(t *testing.T) {
	srv := NewServer(testCatalog(), nil)
	ctx := context.Background()

	t.Run("matching query", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"query": " b "}

		result, err := srv.handleSearchSarees(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		text := extractText(result)
		if !strings.Contains(text, "Found 2 saree(s)") || strings.Contains(text, "A1") {
			t.Errorf("unexpected result: %s", text)
		}
	})

	t.Run("empty query lists all", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{}

		result, _ := srv.handleSearchSarees(ctx, req)
		if !strings.Contains(extractText(result), "Found 3 saree(s)") {
			t.Errorf("unexpected result: %s", extractText(result))
		}
	})

	t.Run("limit", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"limit": 1}

		result, _ := srv.handleSearchSarees(ctx, req)
		text := extractText(result)
		if !strings.Contains(text, "- A1:") || !strings.Contains(text, "... and 2 more") {
			t.Errorf("unexpected result: %s", text)
		}
	})

	t.Run("no match is not an error", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"query": "zz"}

		result, err := srv.handleSearchSarees(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Error("empty results should not be an error")
		}
		if !strings.Contains(extractText(result), `No sarees match "ZZ"`) {
			t.Errorf("unexpected result: %s", extractText(result))
		}
	})
}

func TestHandleGetSaree(t *testing.T) {
	srv := NewServer(testCatalog(), nil)
	ctx := context.Background()

	t.Run("existing", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"id": "B1"}

		result, err := srv.handleGetSaree(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		text := extractText(result)
		for _, want := range []string{"Saree B1", "2 photo(s)", "Originals: http://orig/b1", "2. images/B1/2.webp"} {
			if !strings.Contains(text, want) {
				t.Errorf("result missing %q:\n%s", want, text)
			}
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"id": "b1"}

		result, _ := srv.handleGetSaree(ctx, req)
		if !result.IsError {
			t.Error("lookup is exact; lower-case id should not match")
		}
	})

	t.Run("missing id", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{}

		result, _ := srv.handleGetSaree(ctx, req)
		if !result.IsError {
			t.Error("expected error for missing id")
		}
	})
}

func TestHandleCatalogSummary(t *testing.T) {
	srv := NewServer(testCatalog(), nil)

	result, err := srv.handleCatalogSummary(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := extractText(result)
	for _, want := range []string{"Build: b-1", "Sarees: 3", "Photos: 4", "With originals link: 1"} {
		if !strings.Contains(text, want) {
			t.Errorf("summary missing %q:\n%s", want, text)
		}
	}
}

func TestBuildErrorReported(t *testing.T) {
	buildErr := &catalog.LoadError{Path: "originals-map.json", Status: 404}
	srv := NewServer(nil, buildErr)
	ctx := context.Background()

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{"query": "A", "id": "A1"}

	for name, call := range map[string]func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error){
		"search":  srv.handleSearchSarees,
		"get":     srv.handleGetSaree,
		"summary": srv.handleCatalogSummary,
	} {
		result, err := call(ctx, req)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if !result.IsError || !strings.Contains(extractText(result), "status 404") {
			t.Errorf("%s: expected build error, got %q", name, extractText(result))
		}
	}
}

// extractText gets the text content from a CallToolResult.
func extractText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}
