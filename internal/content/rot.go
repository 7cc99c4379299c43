package content

// RotBand maps a range of rot days to presentation values. Pure
// configuration; the tracker itself only counts days.
type RotBand struct {
	MaxDays int // inclusive upper bound; the last band has MaxDays < 0
	Emoji   string
	Label   string
	Color   string
}

var rotBands = []RotBand{
	{MaxDays: 0, Emoji: "😊", Label: "Living clean!", Color: "#00FF00"},
	{MaxDays: 2, Emoji: "😐", Label: "Getting stale...", Color: "#FFD700"},
	{MaxDays: 5, Emoji: "😞", Label: "Starting to rot", Color: "#FFA500"},
	{MaxDays: 10, Emoji: "😩", Label: "Deeply rotting", Color: "#FF6B6B"},
	{MaxDays: 15, Emoji: "😭", Label: "Completely rotten", Color: "#FF4444"},
	{MaxDays: 20, Emoji: "💀", Label: "Dead inside", Color: "#8B0000"},
	{MaxDays: -1, Emoji: "🪦", Label: "Beyond recovery", Color: "#4A0000"},
}

// RotSeverity returns the presentation band for a rot-day count.
func RotSeverity(rotDays int) RotBand {
	for _, b := range rotBands {
		if b.MaxDays >= 0 && rotDays <= b.MaxDays {
			return b
		}
	}
	return rotBands[len(rotBands)-1]
}
