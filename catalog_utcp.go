package concierge

import (
	"fmt"
	"strings"

	utcp "github.com/universal-tool-calling-protocol/go-utcp"
)

// UTCPToolSpecs discovers tools from a UTCP client and converts them into
// catalog specs. Tools without a usable name are skipped. Execution stays
// with the UTCP client; the session only advertises names and descriptions.
func UTCPToolSpecs(client utcp.UtcpClientInterface, query string, limit int) ([]ToolSpec, error) {
	if client == nil {
		return nil, fmt.Errorf("utcp client is nil")
	}
	found, err := client.SearchTools(query, limit)
	if err != nil {
		return nil, fmt.Errorf("utcp tool search: %w", err)
	}

	specs := make([]ToolSpec, 0, len(found))
	for _, tool := range found {
		name := strings.TrimSpace(tool.Name)
		if name == "" {
			continue
		}
		specs = append(specs, ToolSpec{
			Name:        name,
			Description: strings.TrimSpace(tool.Description),
		})
	}
	return specs, nil
}
