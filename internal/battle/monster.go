package battle

// monsterRoster names one monster per hero level. The monster's stat budget
// always mirrors the hero's current stats, so a fight is balanced by design;
// only the identity varies.
var monsterRoster = []struct {
	Name         string
	Sprite       string
	AttackSprite string
}{
	{"Gloop", "monster_gloop", "attack_gloop"},
	{"Snagglet", "monster_snagglet", "attack_snagglet"},
	{"Fuzzfang", "monster_fuzzfang", "attack_fuzzfang"},
	{"Grumblepod", "monster_grumblepod", "attack_grumblepod"},
	{"Cindersnap", "monster_cindersnap", "attack_cindersnap"},
	{"Howlroot", "monster_howlroot", "attack_howlroot"},
	{"Quakemaw", "monster_quakemaw", "attack_quakemaw"},
	{"Stormgnash", "monster_stormgnash", "attack_stormgnash"},
	{"Voidwhisker", "monster_voidwhisker", "attack_voidwhisker"},
	{"Dreadcrown", "monster_dreadcrown", "attack_dreadcrown"},
}

// MonsterFor builds the opposing combatant for a hero level, mirroring the
// given attack/health budget.
func MonsterFor(level, attack, health int) Combatant {
	idx := level - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(monsterRoster) {
		idx = len(monsterRoster) - 1
	}
	m := monsterRoster[idx]
	return Combatant{
		Name:         m.Name,
		Sprite:       m.Sprite,
		AttackSprite: m.AttackSprite,
		Attack:       attack,
		Health:       health,
	}
}
