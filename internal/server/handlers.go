package server

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/ironsheep/image-processor/internal/imaging"
	"github.com/ironsheep/image-processor/internal/transform"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_filter").
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
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Resolves image names through the registry
//  3. Builds and applies a transformation, masking it if asked
//  4. Writes at most one result back to the registry
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Registry
	case "image_load":
		return s.handleImageLoad(args)
	case "image_save":
		return s.handleImageSave(args)
	case "image_list":
		return s.handleImageList(args)
	case "image_remove":
		return s.handleImageRemove(args)
	case "image_info":
		return s.handleImageInfo(args)

	// Transformations
	case "image_flip":
		return s.handleImageFlip(args)
	case "image_brightness":
		return s.handleImageBrightness(args)
	case "image_filter":
		return s.handleImageFilter(args)
	case "image_visualize":
		return s.handleImageVisualize(args)
	case "image_mosaic":
		return s.handleImageMosaic(args)
	case "image_downscale":
		return s.handleImageDownscale(args)

	// Analysis
	case "image_histogram":
		return s.handleImageHistogram(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)

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
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// ImageInfo describes a stored image.
type ImageInfo struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// TransformResult describes the image written by a transformation tool.
type TransformResult struct {
	ImageInfo
	Source     string                 `json:"source"`
	Operation  string                 `json:"operation"`
	Parameters map[string]interface{} `json:"parameters,omitempty"`
	Mask       string                 `json:"mask,omitempty"`
}

// parameters reports the settings a transformation was built with.
func parameters(tr transform.Transformation) map[string]interface{} {
	switch t := tr.(type) {
	case *transform.Brightness:
		return map[string]interface{}{"amount": t.Amount()}
	case *transform.Visualize:
		return map[string]interface{}{"channel": t.Channel().String()}
	case *transform.Mosaic:
		return map[string]interface{}{"seeds": t.Seeds()}
	case *transform.Downscale:
		w, h := t.Size()
		return map[string]interface{}{"width": w, "height": h}
	default:
		return nil
	}
}

// apply runs tr on the image named src and stores the result under dest.
//
// With a non-empty mask the result is composited over the source so that only
// the mask's black pixels change. Nothing is written unless every step succeeds.
func (s *Server) apply(src, dest, mask string, tr transform.Transformation) (*TransformResult, error) {
	if dest == "" {
		return nil, fmt.Errorf("%w: dest must not be empty", imaging.ErrInvalidArgument)
	}
	original, err := s.store.Retrieve(src)
	if err != nil {
		return nil, err
	}

	out, err := tr.Transform(original)
	if err != nil {
		return nil, err
	}

	if mask != "" {
		maskImg, err := s.store.Retrieve(mask)
		if err != nil {
			return nil, err
		}
		m, err := transform.NewMask(original, maskImg)
		if err != nil {
			return nil, err
		}
		if out, err = m.Transform(out); err != nil {
			return nil, err
		}
	}

	if err := s.store.Add(dest, out, true); err != nil {
		return nil, err
	}
	params := parameters(tr)
	if s.debug {
		log.Printf("%s %v: %s -> %s (%dx%d)", tr.Name(), params, src, dest, out.Width(), out.Height())
	}

	return &TransformResult{
		ImageInfo:  ImageInfo{Name: dest, Width: out.Width(), Height: out.Height()},
		Source:     src,
		Operation:  tr.Name(),
		Parameters: params,
		Mask:       mask,
	}, nil
}

// === Registry Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
	Name string `json:"name"`
}

// handleImageLoad decodes a file and stores it, replacing any image with the same name.
func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := imaging.Load(a.Path)
	if err != nil {
		return nil, err
	}
	if err := s.store.Add(a.Name, img, true); err != nil {
		return nil, err
	}
	return &ImageInfo{Name: a.Name, Width: img.Width(), Height: img.Height()}, nil
}

type imageSaveArgs struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

func (s *Server) handleImageSave(args json.RawMessage) (interface{}, error) {
	var a imageSaveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.store.Retrieve(a.Name)
	if err != nil {
		return nil, err
	}
	if err := imaging.Save(img, a.Path); err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"name": a.Name,
		"path": a.Path,
	}, nil
}

func (s *Server) handleImageList(_ json.RawMessage) (interface{}, error) {
	names := s.store.Names()
	return map[string]interface{}{
		"images": names,
		"count":  len(names),
	}, nil
}

type imageNameArgs struct {
	Name string `json:"name"`
}

func (s *Server) handleImageRemove(args json.RawMessage) (interface{}, error) {
	var a imageNameArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	existed := s.store.Exists(a.Name)
	s.store.Remove(a.Name)
	return map[string]interface{}{
		"name":    a.Name,
		"removed": existed,
	}, nil
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imageNameArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.store.Retrieve(a.Name)
	if err != nil {
		return nil, err
	}
	return &ImageInfo{Name: a.Name, Width: img.Width(), Height: img.Height()}, nil
}

// === Transformation Handlers ===

type imageFlipArgs struct {
	Name      string `json:"name"`
	Direction string `json:"direction"`
	Dest      string `json:"dest"`
}

func (s *Server) handleImageFlip(args json.RawMessage) (interface{}, error) {
	var a imageFlipArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	tr, err := transform.ParseDirection(a.Direction)
	if err != nil {
		return nil, err
	}
	return s.apply(a.Name, a.Dest, "", tr)
}

type imageBrightnessArgs struct {
	Name   string `json:"name"`
	Amount int    `json:"amount"`
	Dest   string `json:"dest"`
	Mask   string `json:"mask,omitempty"`
}

func (s *Server) handleImageBrightness(args json.RawMessage) (interface{}, error) {
	var a imageBrightnessArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	tr, err := transform.NewBrightness(a.Amount)
	if err != nil {
		return nil, err
	}
	return s.apply(a.Name, a.Dest, a.Mask, tr)
}

type imageFilterArgs struct {
	Name   string `json:"name"`
	Filter string `json:"filter"`
	Dest   string `json:"dest"`
	Mask   string `json:"mask,omitempty"`
}

func (s *Server) handleImageFilter(args json.RawMessage) (interface{}, error) {
	var a imageFilterArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	tr, err := transform.ParseFilter(a.Filter)
	if err != nil {
		return nil, err
	}
	return s.apply(a.Name, a.Dest, a.Mask, tr)
}

type imageVisualizeArgs struct {
	Name    string `json:"name"`
	Channel string `json:"channel"`
	Dest    string `json:"dest"`
	Mask    string `json:"mask,omitempty"`
}

func (s *Server) handleImageVisualize(args json.RawMessage) (interface{}, error) {
	var a imageVisualizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	channel, err := transform.ParseChannel(a.Channel)
	if err != nil {
		return nil, err
	}
	tr, err := transform.NewVisualize(channel)
	if err != nil {
		return nil, err
	}
	return s.apply(a.Name, a.Dest, a.Mask, tr)
}

type imageMosaicArgs struct {
	Name  string `json:"name"`
	Seeds int    `json:"seeds"`
	Dest  string `json:"dest"`
}

func (s *Server) handleImageMosaic(args json.RawMessage) (interface{}, error) {
	var a imageMosaicArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	tr, err := transform.NewMosaic(a.Seeds, s.rng)
	if err != nil {
		return nil, err
	}
	return s.apply(a.Name, a.Dest, "", tr)
}

type imageDownscaleArgs struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Dest   string `json:"dest"`
}

func (s *Server) handleImageDownscale(args json.RawMessage) (interface{}, error) {
	var a imageDownscaleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	tr, err := transform.NewDownscale(a.Width, a.Height)
	if err != nil {
		return nil, err
	}
	return s.apply(a.Name, a.Dest, "", tr)
}

// === Analysis Handlers ===

func (s *Server) handleImageHistogram(args json.RawMessage) (interface{}, error) {
	var a imageNameArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.store.Retrieve(a.Name)
	if err != nil {
		return nil, err
	}
	h := imaging.ChannelFrequencies(img)
	return map[string]interface{}{
		"name":      a.Name,
		"max":       h.Max(),
		"histogram": h,
	}, nil
}

type imageSampleColorArgs struct {
	Name string `json:"name"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.store.Retrieve(a.Name)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type imageDominantColorsArgs struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	img, err := s.store.Retrieve(a.Name)
	if err != nil {
		return nil, err
	}
	return imaging.DominantColors(img, a.Count)
}
