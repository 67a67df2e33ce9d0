package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/evsearch/internal/logger"
)

// Version is the default MCP server version.
const Version = "0.1.0"

// shutdownTimeout bounds how long RunHTTP waits for open requests.
const shutdownTimeout = 5 * time.Second

// Server exposes the search facade as MCP tools and resources.
type Server struct {
	ports  *Ports
	server *mcp.Server
	tools  []string
}

// Option configures NewServer.
type Option func(*mcp.Implementation)

// WithVersion reports v as the server version. Empty keeps Version.
func WithVersion(v string) Option {
	return func(impl *mcp.Implementation) {
		if v != "" {
			impl.Version = v
		}
	}
}

// NewServer creates a server over ports. The sdk_info tool is only
// offered when ports.Inspector is set.
func NewServer(ports *Ports, opts ...Option) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{Name: "evsearch", Version: Version}
	for _, opt := range opts {
		opt(impl)
	}

	s := &Server{
		ports:  ports,
		server: mcp.NewServer(impl, &mcp.ServerOptions{Instructions: instructions(ports)}),
	}
	s.registerTools()
	s.registerResources()

	logger.Debug("mcp: %s %s tools=%s", impl.Name, impl.Version, strings.Join(s.tools, ","))
	return s, nil
}

// ToolNames returns the registered tools in registration order.
func (s *Server) ToolNames() []string {
	return append([]string(nil), s.tools...)
}

// instructions tells the client which transport answers by default and
// what is available.
func instructions(ports *Ports) string {
	var b strings.Builder
	b.WriteString("Searches file and folder names with the Everything index on this machine. ")
	fmt.Fprintf(&b, "Default transport: %s. ", ports.settings().Search.Mode.Description())
	b.WriteString("Terms are ANDed; pass regex=true to match the whole query as a regular expression. ")
	b.WriteString("list_directory reads the file system directly, folders first.")
	if ports.Inspector == nil {
		b.WriteString(" SDK details (sdk_info) are not available.")
	}
	return b.String()
}

// Run serves over stdio until ctx is cancelled or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	logger.Info("MCP server on stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP serves the streamable HTTP transport on addr until ctx is
// cancelled.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("MCP HTTP shutdown: %v", err)
		}
	}()

	logger.Info("MCP server on http://%s", addr)
	if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
