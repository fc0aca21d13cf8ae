package loudness

// Channel is the role of one input channel. It selects the weight applied
// to the channel energy before channels are summed.
type Channel int

const (
	// ChannelUnused excludes the channel from loudness (LFE included).
	ChannelUnused Channel = iota
	ChannelLeft
	ChannelRight
	ChannelCenter
	ChannelLeftSurround
	ChannelRightSurround
	// ChannelDualMono is a mono signal meant for playback on two
	// loudspeakers; it counts twice.
	ChannelDualMono
)

// Weight returns the BS.1770 channel weighting factor.
func (c Channel) Weight() float64 {
	switch c {
	case ChannelLeft, ChannelRight, ChannelCenter:
		return 1.0
	case ChannelLeftSurround, ChannelRightSurround:
		return 1.41
	case ChannelDualMono:
		return 2.0
	default:
		return 0
	}
}

// String returns a short channel label.
func (c Channel) String() string {
	switch c {
	case ChannelUnused:
		return "unused"
	case ChannelLeft:
		return "L"
	case ChannelRight:
		return "R"
	case ChannelCenter:
		return "C"
	case ChannelLeftSurround:
		return "Ls"
	case ChannelRightSurround:
		return "Rs"
	case ChannelDualMono:
		return "dual-mono"
	default:
		return "unknown"
	}
}

func (c Channel) valid() bool {
	return c >= ChannelUnused && c <= ChannelDualMono
}

// DefaultLayout returns the channel roles assumed for n channels:
// L, R, C for up to three channels, L, R, Ls, Rs for four, L, R, C, Ls, Rs
// for five and the 5.1 order L, R, C, LFE, Ls, Rs for six or more, with any
// further channels unused.
func DefaultLayout(n int) []Channel {
	if n <= 0 {
		return nil
	}

	var base []Channel

	switch {
	case n <= 3:
		base = []Channel{ChannelLeft, ChannelRight, ChannelCenter}
	case n == 4:
		base = []Channel{ChannelLeft, ChannelRight, ChannelLeftSurround, ChannelRightSurround}
	case n == 5:
		base = []Channel{ChannelLeft, ChannelRight, ChannelCenter, ChannelLeftSurround, ChannelRightSurround}
	default:
		base = []Channel{ChannelLeft, ChannelRight, ChannelCenter, ChannelUnused, ChannelLeftSurround, ChannelRightSurround}
	}

	layout := make([]Channel, n)
	copy(layout, base)

	return layout
}
