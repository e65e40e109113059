package color

import "fmt"

// Channel identifies a single component in the RGB or CMYK color spaces.
type Channel int

const (
	ChannelRed Channel = iota
	ChannelGreen
	ChannelBlue
	ChannelCyan
	ChannelMagenta
	ChannelYellow
	ChannelKey
)

func (ch Channel) String() string {
	switch ch {
	case ChannelRed:
		return "red"
	case ChannelGreen:
		return "green"
	case ChannelBlue:
		return "blue"
	case ChannelCyan:
		return "cyan"
	case ChannelMagenta:
		return "magenta"
	case ChannelYellow:
		return "yellow"
	case ChannelKey:
		return "key"
	default:
		return fmt.Sprintf("Unknown(%d)", int(ch))
	}
}

// Drop returns a copy of the color with the given channel component zeroed.
// An unknown channel returns the color unchanged.
func (c Color) Drop(ch Channel) Color {
	switch ch {
	case ChannelRed:
		return FromRGB(0, c.Green(), c.Blue())
	case ChannelGreen:
		return FromRGB(c.Red(), 0, c.Blue())
	case ChannelBlue:
		return FromRGB(c.Red(), c.Green(), 0)
	case ChannelCyan:
		return FromCMYK(0, c.Magenta(), c.Yellow(), c.Key())
	case ChannelMagenta:
		return FromCMYK(c.Cyan(), 0, c.Yellow(), c.Key())
	case ChannelYellow:
		return FromCMYK(c.Cyan(), c.Magenta(), 0, c.Key())
	case ChannelKey:
		return FromCMYK(c.Cyan(), c.Magenta(), c.Yellow(), 0)
	default:
		return c
	}
}

// Isolate returns a copy of the color holding only the given channel
// component. An unknown channel returns black.
func (c Color) Isolate(ch Channel) Color {
	switch ch {
	case ChannelRed:
		return FromRGB(c.Red(), 0, 0)
	case ChannelGreen:
		return FromRGB(0, c.Green(), 0)
	case ChannelBlue:
		return FromRGB(0, 0, c.Blue())
	case ChannelCyan:
		return FromCMYK(c.Cyan(), 0, 0, 0)
	case ChannelMagenta:
		return FromCMYK(0, c.Magenta(), 0, 0)
	case ChannelYellow:
		return FromCMYK(0, 0, c.Yellow(), 0)
	case ChannelKey:
		return FromCMYK(0, 0, 0, c.Key())
	default:
		return Color{}
	}
}
