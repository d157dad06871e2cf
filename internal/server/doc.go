// Package server implements the MCP (Model Context Protocol) server for
// image placeholder tools.
//
// # Protocol
//
// The server speaks JSON-RPC 2.0, one request per line:
//   - Input: requests on stdin (or any io.Reader passed to Serve)
//   - Output: responses on stdout
//
// Supported MCP methods: initialize, notifications/initialized, tools/list,
// tools/call and ping.
//
// # Available Tools
//
//   - image_load: Load an image and report its metadata
//   - placeholder_encode: Compute a BlurHash placeholder for an image file
//   - placeholder_data_uri: Decode a BlurHash into a PNG data URI
//   - image_data_uri: Shrink an image file into a PNG data URI thumbnail
//   - png_inspect: List the chunks of a PNG data URI
//
// # Error Handling
//
// Tool failures are JSON-RPC errors with code -32000 and the Go error string
// in data. Malformed params yield -32602, unknown methods -32601 and
// unparseable lines -32700.
package server
