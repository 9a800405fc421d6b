package transform

import (
	"fmt"
	"strings"

	"github.com/ironsheep/image-processor/internal/imaging"
)

// Channel selects the scalar that Visualize spreads into a grey pixel.
type Channel int

const (
	ChannelRed Channel = iota
	ChannelGreen
	ChannelBlue
	ChannelValue     // max(R, G, B)
	ChannelIntensity // round((R+G+B)/3)
	ChannelLuma      // round(0.2126R + 0.7152G + 0.0722B)
)

var channelNames = [...]string{"red", "green", "blue", "value", "intensity", "luma"}

func (c Channel) String() string {
	if c < 0 || int(c) >= len(channelNames) {
		return fmt.Sprintf("Channel(%d)", int(c))
	}
	return channelNames[c]
}

// Channels lists every channel in declaration order.
func Channels() []Channel {
	return []Channel{ChannelRed, ChannelGreen, ChannelBlue, ChannelValue, ChannelIntensity, ChannelLuma}
}

// ParseChannel maps a case-insensitive name such as "red" or "luma" to a Channel.
func ParseChannel(name string) (Channel, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range channelNames {
		if n == name {
			return Channel(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown channel %q (want one of %s)",
		imaging.ErrInvalidArgument, name, strings.Join(channelNames[:], ", "))
}

// Visualize replaces every pixel with (v, v, v) where v is the chosen channel.
type Visualize struct {
	channel Channel
}

// NewVisualize rejects channels outside the declared set.
func NewVisualize(channel Channel) (*Visualize, error) {
	if channel < ChannelRed || channel > ChannelLuma {
		return nil, fmt.Errorf("%w: invalid channel %d", imaging.ErrInvalidArgument, int(channel))
	}
	return &Visualize{channel: channel}, nil
}

// Channel returns the visualized channel.
func (v *Visualize) Channel() Channel { return v.channel }

func (v *Visualize) Transform(img *imaging.Image) (*imaging.Image, error) {
	return perPixel(img, func(p imaging.Pixel) imaging.Pixel {
		s := v.scalar(p)
		return imaging.Pixel{R: s, G: s, B: s}
	})
}

func (v *Visualize) scalar(p imaging.Pixel) uint8 {
	switch v.channel {
	case ChannelRed:
		return p.R
	case ChannelGreen:
		return p.G
	case ChannelBlue:
		return p.B
	case ChannelValue:
		return p.Value()
	case ChannelIntensity:
		return p.Intensity()
	default: // ChannelLuma; NewVisualize admits nothing else
		return imaging.RoundChannel(lumaR*float64(p.R) + lumaG*float64(p.G) + lumaB*float64(p.B))
	}
}

func (v *Visualize) Name() string { return "visualize-" + v.channel.String() }
func (*Visualize) sealed()        {}
