package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// regionSchema is shared by the tools that accept an optional crop.
var regionSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"x1": map[string]interface{}{"type": "integer", "description": "Left edge X coordinate (0-based)"},
		"y1": map[string]interface{}{"type": "integer", "description": "Top edge Y coordinate (0-based)"},
		"x2": map[string]interface{}{"type": "integer", "description": "Right edge X coordinate (exclusive)"},
		"y2": map[string]interface{}{"type": "integer", "description": "Bottom edge Y coordinate (exclusive)"},
	},
	"required":    []string{"x1", "y1", "x2", "y2"},
	"description": "Optional region to use instead of the whole image.",
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and alpha information.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "placeholder_encode",
			Description: "Compute a compact BlurHash placeholder for an image file. The image is shrunk to at most 100x100 before hashing; the original dimensions are returned alongside the hash.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"components_x": map[string]interface{}{
						"type":        "integer",
						"description": "Horizontal components, 1-9 (default 4)",
						"default":     4,
					},
					"components_y": map[string]interface{}{
						"type":        "integer",
						"description": "Vertical components, 1-9 (default 3)",
						"default":     3,
					},
					"region": regionSchema,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "placeholder_data_uri",
			Description: "Decode a BlurHash placeholder into a small PNG and return it as a data:image/png;base64 URI, ready to inline in HTML.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hash": map[string]interface{}{
						"type":        "string",
						"description": "BlurHash string",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Optional original image width, used to keep the aspect ratio",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Optional original image height, used to keep the aspect ratio",
					},
					"punch": map[string]interface{}{
						"type":        "integer",
						"description": "Contrast boost (default 1)",
						"default":     1,
					},
				},
				"required": []string{"hash"},
			},
		},
		{
			Name:        "image_data_uri",
			Description: "Shrink an image file to a thumbnail and return it as a data:image/png;base64 URI.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"max_size": map[string]interface{}{
						"type":        "integer",
						"description": "Longest edge of the thumbnail in pixels, 1-256 (default 100)",
						"default":     100,
					},
					"blur": map[string]interface{}{
						"type":        "number",
						"description": "Optional Gaussian blur radius in pixels (default 0)",
						"default":     0,
					},
					"region": regionSchema,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "png_inspect",
			Description: "Verify a PNG data URI and list its header fields and chunks with their checksums.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"data_uri": map[string]interface{}{
						"type":        "string",
						"description": "A data:image/png;base64 URI",
					},
				},
				"required": []string{"data_uri"},
			},
		},
	}
}

// handleToolsList returns the tool catalogue.
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
