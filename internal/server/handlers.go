package server

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/ironsheep/placeholder-tools-mcp/internal/imaging"
	"github.com/ironsheep/placeholder-tools-mcp/internal/placeholder"
	"github.com/ironsheep/placeholder-tools-mcp/internal/pngdata"
)

// maxDataURISize caps image_data_uri thumbnails; anything bigger defeats the
// point of inlining.
const maxDataURISize = 256

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "placeholder_encode").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.debug {
			log.Printf("tool %s failed: %v", params.Name, err)
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "placeholder_encode":
		return s.handlePlaceholderEncode(args)
	case "placeholder_data_uri":
		return s.handlePlaceholderDataURI(args)
	case "image_data_uri":
		return s.handleImageDataURI(args)
	case "png_inspect":
		return s.handlePNGInspect(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Image Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

type imageDataURIArgs struct {
	Path    string          `json:"path"`
	MaxSize int             `json:"max_size"`
	Blur    float64         `json:"blur"`
	Region  *imaging.Region `json:"region,omitempty"`
}

type imageDataURIResult struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	DataURI    string `json:"data_uri"`
	MimeType   string `json:"mime_type"`
	ByteLength int    `json:"byte_length"`
}

func (s *Server) handleImageDataURI(args json.RawMessage) (interface{}, error) {
	var a imageDataURIArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.MaxSize == 0 {
		a.MaxSize = imaging.DefaultThumbnailSize
	}
	if a.MaxSize < 1 || a.MaxSize > maxDataURISize {
		return nil, fmt.Errorf("max_size %d outside 1-%d", a.MaxSize, maxDataURISize)
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	thumb, err := imaging.Thumbnail(img, imaging.ThumbnailOptions{
		Region:  a.Region,
		MaxSize: a.MaxSize,
		Blur:    a.Blur,
	})
	if err != nil {
		return nil, err
	}

	px := placeholder.FromImage(thumb)
	uri, err := s.encoder.DataURI(px.Pix, px.Width, px.Height)
	if err != nil {
		return nil, err
	}

	return &imageDataURIResult{
		Width:      px.Width,
		Height:     px.Height,
		DataURI:    uri,
		MimeType:   "image/png",
		ByteLength: len(uri),
	}, nil
}

// === Placeholder Handlers ===

type placeholderEncodeArgs struct {
	Path        string          `json:"path"`
	ComponentsX int             `json:"components_x"`
	ComponentsY int             `json:"components_y"`
	Region      *imaging.Region `json:"region,omitempty"`
}

func (s *Server) handlePlaceholderEncode(args json.RawMessage) (interface{}, error) {
	var a placeholderEncodeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.ComponentsX == 0 {
		a.ComponentsX = 4
	}
	if a.ComponentsY == 0 {
		a.ComponentsY = 3
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	if a.Region != nil {
		cropped, err := imaging.Thumbnail(img, imaging.ThumbnailOptions{Region: a.Region, MaxSize: -1})
		if err != nil {
			return nil, err
		}
		return placeholder.Encode(cropped, a.ComponentsX, a.ComponentsY)
	}
	return placeholder.Encode(img, a.ComponentsX, a.ComponentsY)
}

type placeholderDataURIArgs struct {
	Hash   string `json:"hash"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Punch  int    `json:"punch"`
}

func (s *Server) handlePlaceholderDataURI(args json.RawMessage) (interface{}, error) {
	var a placeholderDataURIArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Hash == "" {
		return nil, fmt.Errorf("hash is required")
	}
	if a.Punch == 0 {
		a.Punch = 1
	}

	w, h := placeholder.SizeFor(a.Width, a.Height)
	dec := placeholder.BlurHashDecoder{Width: w, Height: h, Punch: a.Punch}
	return placeholder.DataURI(dec, s.encoder, []byte(a.Hash))
}

// === Inspection Handlers ===

type pngInspectArgs struct {
	DataURI string `json:"data_uri"`
}

func (s *Server) handlePNGInspect(args json.RawMessage) (interface{}, error) {
	var a pngInspectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	container, err := pngdata.ParseDataURI(a.DataURI)
	if err != nil {
		return nil, err
	}
	return pngdata.Inspect(container)
}
