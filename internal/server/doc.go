// Package server implements the MCP (Model Context Protocol) server for image editing tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the image registry and
// the transformations in package transform through the MCP protocol.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Registry:
//   - image_load: Load a file under a name (replaces an existing name)
//   - image_save: Write a stored image to a file
//   - image_list: List stored names
//   - image_remove: Forget a stored image
//   - image_info: Get width and height
//
// Transformations (each reads "name" and writes "dest"):
//   - image_flip: Horizontal or vertical mirror
//   - image_brightness: Brighten or darken, optionally masked
//   - image_filter: Blur, sharpen, greyscale or sepia, optionally masked
//   - image_visualize: Grey image of one channel, optionally masked
//   - image_mosaic: Nearest-seed mosaic
//   - image_downscale: Nearest-neighbor shrink
//
// Analysis:
//   - image_histogram: Channel value frequencies
//   - image_sample_color: Color at a pixel
//   - image_dominant_colors: Quantized palette
//
// # Masks
//
// A masked tool computes the transformation over the whole source image and
// then keeps the result only where the mask image is pure black (0,0,0). Mask
// and source must have the same dimensions.
//
// # Image Registry
//
// Images live in memory, keyed by case-insensitive name, for the lifetime of
// the server process. A tool that fails leaves the registry unchanged.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.New(cfg)
//	if err := srv.Serve(os.Stdin, os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
package server
