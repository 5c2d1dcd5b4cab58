// Package shop is the arcade economy: the item catalog, purchases, equipped
// cosmetics, theme unlocks and coin rewards for finished games.
package shop

import "github.com/vovakirdan/neon-arcade/internal/progress"

// Item is something that can be bought with coins.
type Item struct {
	ID          string
	Name        string
	Description string
	Price       int
	Category    progress.Category
	Icon        string
	// Grants is what ownership records for this item: a style name for
	// cursors and name colors, the display name for titles, the slot count
	// for badge slots and the item id for badges.
	Grants string
}

var catalog = []Item{
	{"cursor-sword", "Pixel Sword", "Epic pixelated sword cursor", 3, progress.CategoryCursor, "⚔️", "pixel-sword"},
	{"cursor-hand", "Retro Hand", "Classic pointing hand", 3, progress.CategoryCursor, "👆", "retro-hand"},
	{"cursor-circle", "Neon Circle", "Glowing neon ring cursor", 5, progress.CategoryCursor, "⭕", "neon-circle"},
	{"cursor-star", "Star Cursor", "Shining star pointer", 5, progress.CategoryCursor, "⭐", "star-cursor"},

	{"color-gold", "Golden Name", "Shiny gold text", 2, progress.CategoryNameColor, "🟡", "gold"},
	{"color-rainbow", "Rainbow Name", "Animated rainbow effect", 5, progress.CategoryNameColor, "🌈", "rainbow"},
	{"color-pink", "Neon Pink", "Hot pink with glow", 2, progress.CategoryNameColor, "💖", "neon-pink"},
	{"color-green", "Matrix Green", "Hacker style green", 2, progress.CategoryNameColor, "💚", "matrix-green"},
	{"color-blue", "Cyber Blue", "Electric blue glow", 2, progress.CategoryNameColor, "💙", "cyber-blue"},

	{"badge-slot-2", "Badge Slot 2", "Unlock 2nd badge slot", 5, progress.CategoryBadgeSlot, "🎖️", "2"},
	{"badge-slot-3", "Badge Slot 3", "Unlock 3rd badge slot", 10, progress.CategoryBadgeSlot, "🎖️", "3"},

	{"badge-snake-master", "Snake Master", "Master of the serpent", 3, progress.CategoryBadge, "🐍", "badge-snake-master"},
	{"badge-high-scorer", "High Scorer", "Points champion", 3, progress.CategoryBadge, "💯", "badge-high-scorer"},
	{"badge-speed-runner", "Speed Runner", "Lightning fast", 4, progress.CategoryBadge, "⚡", "badge-speed-runner"},
	{"badge-perfectionist", "Perfectionist", "Flawless execution", 5, progress.CategoryBadge, "✨", "badge-perfectionist"},
	{"badge-veteran", "Veteran", "Seasoned player", 4, progress.CategoryBadge, "🎖️", "badge-veteran"},
	{"badge-coin-collector", "Coin Hoarder", "Rich player", 3, progress.CategoryBadge, "💰", "badge-coin-collector"},
	{"badge-night-owl", "Night Owl", "Late night gamer", 3, progress.CategoryBadge, "🦉", "badge-night-owl"},
	{"badge-champion", "Champion", "Ultimate winner", 8, progress.CategoryBadge, "🏆", "badge-champion"},

	{"title-legend", "The Legend", `Display "The Legend" title`, 10, progress.CategoryTitle, "👑", "The Legend"},
	{"title-champion", "Champion", `Display "Champion" title`, 8, progress.CategoryTitle, "🏆", "Champion"},
	{"title-master", "Arcade Master", `Display "Arcade Master" title`, 8, progress.CategoryTitle, "🎮", "Arcade Master"},
	{"title-hacker", "Code Breaker", `Display "Code Breaker" title`, 5, progress.CategoryTitle, "💻", "Code Breaker"},
	{"title-collector", "Coin Collector", `Display "Coin Collector" title`, 5, progress.CategoryTitle, "🪙", "Coin Collector"},
}

// Categories lists item categories in display order.
var Categories = []progress.Category{
	progress.CategoryCursor,
	progress.CategoryNameColor,
	progress.CategoryBadgeSlot,
	progress.CategoryBadge,
	progress.CategoryTitle,
}

// Catalog returns every item in display order.
func Catalog() []Item {
	out := make([]Item, len(catalog))
	copy(out, catalog)
	return out
}

// ByCategory returns the items of one category.
func ByCategory(c progress.Category) []Item {
	var out []Item
	for _, it := range catalog {
		if it.Category == c {
			out = append(out, it)
		}
	}
	return out
}

// Lookup finds an item by id.
func Lookup(id string) (Item, bool) {
	for _, it := range catalog {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}
