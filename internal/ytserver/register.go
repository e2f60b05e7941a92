// Package ytserver exposes the transcript pipeline as MCP tools.
package ytserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers all transcript tools on the given MCP server.
func RegisterTools(server *mcp.Server) {
	registerGetTranscript(server)
}
