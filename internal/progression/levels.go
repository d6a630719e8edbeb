package progression

// HeroType identifies a playable hero line.
type HeroType string

const (
	HeroBlue  HeroType = "blue"
	HeroGreen HeroType = "green"
)

// KnownHeroType reports whether h has a progression table.
func KnownHeroType(h HeroType) bool {
	_, ok := levelTables[h]
	return ok
}

// Stats is the level-derived stat block for a hero. Every field is a pure
// function of (heroType, level); stale stored values never win over this table.
type Stats struct {
	HeroName     string
	HeroSprite   string
	AttackSprite string
	Attack       int
	Health       int
}

// levelTables holds one entry per level (index = level-1) per hero line.
// Names and sprites change at the evolution boundaries (levels 4 and 8).
var levelTables = map[HeroType][]Stats{
	HeroBlue: {
		{HeroName: "Aqualing", HeroSprite: "hero_blue_1", AttackSprite: "attack_blue_1", Attack: 2, Health: 10},
		{HeroName: "Aqualing", HeroSprite: "hero_blue_1", AttackSprite: "attack_blue_1", Attack: 3, Health: 12},
		{HeroName: "Aqualing", HeroSprite: "hero_blue_1", AttackSprite: "attack_blue_1", Attack: 4, Health: 14},
		{HeroName: "Aquafang", HeroSprite: "hero_blue_2", AttackSprite: "attack_blue_2", Attack: 5, Health: 16},
		{HeroName: "Aquafang", HeroSprite: "hero_blue_2", AttackSprite: "attack_blue_2", Attack: 6, Health: 18},
		{HeroName: "Aquafang", HeroSprite: "hero_blue_2", AttackSprite: "attack_blue_2", Attack: 7, Health: 20},
		{HeroName: "Aquafang", HeroSprite: "hero_blue_2", AttackSprite: "attack_blue_2", Attack: 8, Health: 22},
		{HeroName: "Aquazilla", HeroSprite: "hero_blue_3", AttackSprite: "attack_blue_3", Attack: 9, Health: 24},
		{HeroName: "Aquazilla", HeroSprite: "hero_blue_3", AttackSprite: "attack_blue_3", Attack: 10, Health: 26},
		{HeroName: "Aquazilla", HeroSprite: "hero_blue_3", AttackSprite: "attack_blue_3", Attack: 12, Health: 30},
	},
	HeroGreen: {
		{HeroName: "Sproutling", HeroSprite: "hero_green_1", AttackSprite: "attack_green_1", Attack: 2, Health: 10},
		{HeroName: "Sproutling", HeroSprite: "hero_green_1", AttackSprite: "attack_green_1", Attack: 3, Health: 12},
		{HeroName: "Sproutling", HeroSprite: "hero_green_1", AttackSprite: "attack_green_1", Attack: 4, Health: 14},
		{HeroName: "Thornback", HeroSprite: "hero_green_2", AttackSprite: "attack_green_2", Attack: 5, Health: 16},
		{HeroName: "Thornback", HeroSprite: "hero_green_2", AttackSprite: "attack_green_2", Attack: 6, Health: 18},
		{HeroName: "Thornback", HeroSprite: "hero_green_2", AttackSprite: "attack_green_2", Attack: 7, Health: 20},
		{HeroName: "Thornback", HeroSprite: "hero_green_2", AttackSprite: "attack_green_2", Attack: 8, Health: 22},
		{HeroName: "Verdantyrant", HeroSprite: "hero_green_3", AttackSprite: "attack_green_3", Attack: 9, Health: 24},
		{HeroName: "Verdantyrant", HeroSprite: "hero_green_3", AttackSprite: "attack_green_3", Attack: 10, Health: 26},
		{HeroName: "Verdantyrant", HeroSprite: "hero_green_3", AttackSprite: "attack_green_3", Attack: 12, Health: 30},
	},
}

// StatsFor looks up the stat block for a hero at a level.
func StatsFor(hero HeroType, level int) (Stats, error) {
	table, ok := levelTables[hero]
	if !ok || level < 1 || level > len(table) {
		return Stats{}, &ErrInvalidProgressionTable{HeroType: hero, Level: level}
	}
	return table[level-1], nil
}
