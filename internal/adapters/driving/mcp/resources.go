package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/evsearch/internal/core/domain"
)

const (
	// URIScheme is the custom URI scheme for evsearch resources.
	uriScheme = "evsearch://"

	redacted = "********"
)

// settingsView is the JSON shape of the settings resource.
type settingsView struct {
	Mode        string `json:"mode"`
	MaxResults  int    `json:"max_results"`
	Sort        string `json:"sort"`
	Regex       bool   `json:"regex"`
	MinChars    int    `json:"min_chars"`
	CLIPath     string `json:"cli_path,omitempty"`
	ExtraArgs   string `json:"cli_extra_args,omitempty"`
	UTF8Console bool   `json:"cli_utf8_console"`
	AutoInstall bool   `json:"cli_auto_install"`
	LibraryPath string `json:"native_library_path,omitempty"`
	GitHubToken string `json:"github_token,omitempty"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Current search settings (secrets redacted)",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "sort-orders",
		Name:        "sort-orders",
		Description: "Sort orders accepted by search_files",
		MIMEType:    "application/json",
	}, s.handleSortOrdersResource)
}

// handleSettingsResource returns the effective settings.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, newSettingsView(s.ports.settings()))
}

// handleSortOrdersResource lists every accepted sort order.
func (s *Server) handleSortOrdersResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	keys := domain.AllSortKeys()
	orders := make([]string, 0, 2*len(keys))
	for _, key := range keys {
		orders = append(orders,
			domain.SortOrder{Key: key}.String(),
			domain.SortOrder{Key: key, Descending: true}.String())
	}
	return jsonResource(req.Params.URI, orders)
}

func newSettingsView(st domain.AppSettings) settingsView {
	v := settingsView{
		Mode:        st.Search.Mode.String(),
		MaxResults:  st.Search.MaxResults,
		Sort:        st.Search.Sort.String(),
		Regex:       st.Search.Regex,
		MinChars:    st.Search.MinChars,
		CLIPath:     st.CLI.Path,
		ExtraArgs:   st.CLI.ExtraArgs,
		UTF8Console: st.CLI.UTF8Console,
		AutoInstall: st.CLI.AutoInstall,
		LibraryPath: st.Native.LibraryPath,
	}
	if st.GitHub.Token != "" {
		v.GitHubToken = redacted
	}
	return v
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
