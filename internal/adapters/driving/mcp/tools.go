package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/evsearch/internal/adapters/driven/notify"
	"github.com/custodia-labs/evsearch/internal/core/domain"
)

// SearchInput is the input schema for the search_files tool.
type SearchInput struct {
	Query      string `json:"query" jsonschema:"Everything search text; terms are ANDed"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"maximum number of results (default from settings)"`
	Mode       string `json:"mode,omitempty" jsonschema:"transport: cli or native (default from settings)"`
	Sort       string `json:"sort,omitempty" jsonschema:"order such as name-ascending or date-modified-descending"`
	Regex      bool   `json:"regex,omitempty" jsonschema:"treat the query as a regular expression"`
}

// ListDirectoryInput is the input schema for the list_directory tool.
type ListDirectoryInput struct {
	Path string `json:"path" jsonschema:"absolute path of the directory to list"`
}

// SDKInfoInput is the (empty) input schema for the sdk_info tool.
type SDKInfoInput struct{}

// FilesOutput is the output schema for search_files and list_directory.
type FilesOutput struct {
	Results []FileOutput `json:"results"`
	Count   int          `json:"count"`
}

// FileOutput represents a single file-system entry.
type FileOutput struct {
	Name        string     `json:"name"`
	Path        string     `json:"path"`
	Size        *uint64    `json:"size,omitempty"`
	Created     *time.Time `json:"created,omitempty"`
	Modified    *time.Time `json:"modified,omitempty"`
	IsDirectory bool       `json:"is_directory"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_files",
		Description: "Search file and folder names with the Everything index",
	}, s.handleSearch)
	s.tools = append(s.tools, "search_files")

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_directory",
		Description: "List a directory, folders first then by name",
	}, s.handleListDirectory)
	s.tools = append(s.tools, "list_directory")

	if s.ports.Inspector != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "sdk_info",
			Description: "Report the Everything SDK version and index capabilities",
		}, s.handleSDKInfo)
		s.tools = append(s.tools, "sdk_info")
	}
}

// handleSearch handles the search_files tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, FilesOutput, error) {
	opts, err := s.searchOptions(input)
	if err != nil {
		return nil, FilesOutput{}, err
	}

	ctx, collector := notify.WithCollector(ctx)
	results := s.ports.Search.Search(ctx, input.Query, opts)
	if err := failureFrom(collector); err != nil && len(results) == 0 {
		return nil, FilesOutput{}, err
	}

	return nil, toOutput(results), nil
}

// handleListDirectory handles the list_directory tool invocation.
func (s *Server) handleListDirectory(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListDirectoryInput,
) (*mcp.CallToolResult, FilesOutput, error) {
	if strings.TrimSpace(input.Path) == "" {
		return nil, FilesOutput{}, fmt.Errorf("%w: path is required", domain.ErrInvalidInput)
	}

	ctx, collector := notify.WithCollector(ctx)
	results := s.ports.Search.ListDirectory(ctx, input.Path)
	if err := failureFrom(collector); err != nil {
		return nil, FilesOutput{}, err
	}

	return nil, toOutput(results), nil
}

// handleSDKInfo handles the sdk_info tool invocation.
func (s *Server) handleSDKInfo(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ SDKInfoInput,
) (*mcp.CallToolResult, domain.ServiceInfo, error) {
	info, err := s.ports.Inspector.Info()
	if err != nil {
		return nil, domain.ServiceInfo{}, err
	}
	return nil, *info, nil
}

// searchOptions overlays the tool input on the configured defaults.
func (s *Server) searchOptions(input SearchInput) (domain.QueryOptions, error) {
	mode := domain.TransportMode(strings.ToLower(strings.TrimSpace(input.Mode)))
	if mode != "" && !mode.IsValid() {
		return domain.QueryOptions{}, fmt.Errorf("%w: %q", ErrInvalidMode, input.Mode)
	}

	opts := s.ports.queryOptions(mode)
	if input.MaxResults > 0 {
		opts.MaxResults = input.MaxResults
	}
	if input.Sort != "" {
		order, ok := domain.ParseSortOrder(input.Sort)
		if !ok {
			return opts, fmt.Errorf("%w: unknown sort %q", domain.ErrInvalidInput, input.Sort)
		}
		opts.Sort = order
	}
	if input.Regex {
		opts.Regex = true
	}
	return opts, nil
}

// failureFrom turns a collected failure notification into a tool error.
func failureFrom(c *notify.Collector) error {
	n, ok := c.Failure()
	if !ok {
		return nil
	}
	return fmt.Errorf("%s: %s", n.Title, n.Message)
}

func toOutput(results []domain.FileResult) FilesOutput {
	out := FilesOutput{
		Results: make([]FileOutput, len(results)),
		Count:   len(results),
	}
	for i, r := range results {
		out.Results[i] = FileOutput{
			Name:        r.Name,
			Path:        r.FullPath,
			Size:        r.Size,
			Created:     r.CreatedAt,
			Modified:    r.ModifiedAt,
			IsDirectory: r.IsDirectory,
		}
	}
	return out
}
