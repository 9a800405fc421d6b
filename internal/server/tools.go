package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Registry
		{
			Name:        "image_load",
			Description: "Load an image file into the registry under a name, replacing any image already stored under that name. .ppm files use the plain-text P3 format; jpg, png, gif, tif and bmp are also supported.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Path to the image file",
					},
					"name": map[string]interface{}{
						"type":        "string",
						"description": "Name to store the image under (case-insensitive)",
					},
				},
				"required": []string{"path", "name"},
			},
		},
		{
			Name:        "image_save",
			Description: "Write a stored image to a file. The format follows the file extension.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{
						"type":        "string",
						"description": "Name of a stored image",
					},
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Destination path (.ppm, .png, .jpg, .gif, .tif or .bmp)",
					},
				},
				"required": []string{"name", "path"},
			},
		},
		{
			Name:        "image_list",
			Description: "List the names of all stored images.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "image_remove",
			Description: "Remove a stored image. Removing a name that is not stored does nothing.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{
						"type":        "string",
						"description": "Name of a stored image",
					},
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "image_info",
			Description: "Get the width and height of a stored image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{
						"type":        "string",
						"description": "Name of a stored image",
					},
				},
				"required": []string{"name"},
			},
		},

		// Transformations
		{
			Name:        "image_flip",
			Description: "Mirror a stored image horizontally (left-right) or vertically (top-bottom) and store the result.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{
						"type":        "string",
						"description": "Source image name",
					},
					"direction": map[string]interface{}{
						"type":        "string",
						"description": "\"horizontal\" or \"vertical\"",
					},
					"dest": map[string]interface{}{
						"type":        "string",
						"description": "Name to store the result under",
					},
				},
				"required": []string{"name", "direction", "dest"},
			},
		},
		{
			Name:        "image_brightness",
			Description: "Add a constant to every channel of a stored image, saturating at 0 and 255. Positive amounts brighten, negative amounts darken.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{
						"type":        "string",
						"description": "Source image name",
					},
					"amount": map[string]interface{}{
						"type":        "integer",
						"description": "Non-zero adjustment added to each channel",
					},
					"dest": map[string]interface{}{
						"type":        "string",
						"description": "Name to store the result under",
					},
					"mask": map[string]interface{}{
						"type":        "string",
						"description": "Optional mask image name; only its pure black pixels are changed",
					},
				},
				"required": []string{"name", "amount", "dest"},
			},
		},
		{
			Name:        "image_filter",
			Description: "Apply a blur, sharpen, greyscale or sepia filter to a stored image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{
						"type":        "string",
						"description": "Source image name",
					},
					"filter": map[string]interface{}{
						"type":        "string",
						"description": "One of: blur, sharpen, greyscale, sepia",
					},
					"dest": map[string]interface{}{
						"type":        "string",
						"description": "Name to store the result under",
					},
					"mask": map[string]interface{}{
						"type":        "string",
						"description": "Optional mask image name; only its pure black pixels are changed",
					},
				},
				"required": []string{"name", "filter", "dest"},
			},
		},
		{
			Name:        "image_visualize",
			Description: "Replace every pixel with a grey level taken from one channel or measure of the source pixel.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{
						"type":        "string",
						"description": "Source image name",
					},
					"channel": map[string]interface{}{
						"type":        "string",
						"description": "One of: red, green, blue, value, intensity, luma",
					},
					"dest": map[string]interface{}{
						"type":        "string",
						"description": "Name to store the result under",
					},
					"mask": map[string]interface{}{
						"type":        "string",
						"description": "Optional mask image name; only its pure black pixels are changed",
					},
				},
				"required": []string{"name", "channel", "dest"},
			},
		},
		{
			Name:        "image_mosaic",
			Description: "Partition a stored image into cells around randomly placed seeds and paint each cell with its seed's color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{
						"type":        "string",
						"description": "Source image name",
					},
					"seeds": map[string]interface{}{
						"type":        "integer",
						"description": "Number of seeds (at least 1)",
					},
					"dest": map[string]interface{}{
						"type":        "string",
						"description": "Name to store the result under",
					},
				},
				"required": []string{"name", "seeds", "dest"},
			},
		},
		{
			Name:        "image_downscale",
			Description: "Shrink a stored image with nearest-neighbor sampling. The target may not be larger than the source.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{
						"type":        "string",
						"description": "Source image name",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Target width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Target height in pixels",
					},
					"dest": map[string]interface{}{
						"type":        "string",
						"description": "Name to store the result under",
					},
				},
				"required": []string{"name", "width", "height", "dest"},
			},
		},

		// Analysis
		{
			Name:        "image_histogram",
			Description: "Count how often each value 0-255 occurs in the red, green, blue and intensity channels of a stored image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{
						"type":        "string",
						"description": "Name of a stored image",
					},
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the color at a pixel as hex, RGB and HSL.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{
						"type":        "string",
						"description": "Name of a stored image",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (column, 0-based)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (row, 0-based)",
					},
				},
				"required": []string{"name", "x", "y"},
			},
		},
		{
			Name:        "image_dominant_colors",
			Description: "Extract the most common colors of a stored image, quantized to multiples of 16.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{
						"type":        "string",
						"description": "Name of a stored image",
					},
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to return. Default 5",
						"default":     5,
					},
				},
				"required": []string{"name"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
