package progress

// Achievement ids.
const (
	FirstGame        = "first_game"
	SnakeMaster      = "snake_master"
	SnakeLegend      = "snake_legend"
	PerfectSnake     = "perfect_snake"
	TicTacWinner     = "tic_tac_winner"
	MemoryGenius     = "memory_genius"
	MemorySpeedster  = "memory_speedster"
	PerfectMemory    = "perfect_memory"
	PongPro          = "pong_pro"
	PongPerfect      = "pong_perfect"
	KonamiDiscoverer = "konami_discoverer"
	HardMode         = "hard_mode"
	AllGames         = "all_games"
	Streak3          = "streak_3"
	ScoreHunter      = "score_hunter"
	MultiTalent      = "multi_talent"
	SpaceAce         = "space_ace"
	SpaceSurvivor    = "space_survivor"
)

// Definition is the static part of an achievement.
type Definition struct {
	ID          string
	Title       string
	Description string
	Icon        string
}

var catalog = []Definition{
	{FirstGame, "First Steps", "Play your first game", "🎮"},
	{SnakeMaster, "Snake Master", "Score 100+ in Snake", "🐍"},
	{SnakeLegend, "Snake Legend", "Score 200+ in Snake", "👑"},
	{PerfectSnake, "Perfect Snake", "Reach 50 points without hitting yourself", "✨"},
	{TicTacWinner, "Tic-Tac Champion", "Win 5 games of Tic-Tac-Toe", "🏆"},
	{MemoryGenius, "Memory Genius", "Complete Memory Cards in under 30 seconds", "🧠"},
	{MemorySpeedster, "Memory Speedster", "Complete Memory Cards in under 20 seconds", "⚡"},
	{PerfectMemory, "Perfect Memory", "Complete Memory with no more than 12 moves", "🌟"},
	{PongPro, "Pong Pro", "Score 10+ in Pong", "🏓"},
	{PongPerfect, "Pong Perfect", "Win 10-0 in Pong", "🎯"},
	{KonamiDiscoverer, "Secret Finder", "Discover the Konami Code", "🔐"},
	{HardMode, "Hardcore Gamer", "Beat any game on Hard difficulty", "💀"},
	{AllGames, "Game Completionist", "Play all the games", "⭐"},
	{Streak3, "3-Day Streak", "Play games on 3 different days", "🔥"},
	{ScoreHunter, "Score Hunter", "Reach the top 3 in any leaderboard", "🥇"},
	{MultiTalent, "Multi-Talented", "Score 50+ in Snake and Memory, and win at Pong", "🎨"},
	{SpaceAce, "Space Ace", "Score 5000+ in Space Invaders", "🚀"},
	{SpaceSurvivor, "Space Survivor", "Reach 2000 points in Space Invaders", "🛸"},
}

// Catalog returns the fixed list of achievements in display order.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the definition for id.
func Lookup(id string) (Definition, bool) {
	for _, d := range catalog {
		if d.ID == id {
			return d, true
		}
	}
	return Definition{}, false
}
