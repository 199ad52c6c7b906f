package discovery

import "gameatlas/backend/pkg/terms"

// AliasTable maps a canonical term to related terms that should also match it.
// Keys and values are expected in normalised form.
type AliasTable map[string][]string

// Expand returns the normalised term followed by its aliases.
func (t AliasTable) Expand(term string) []string {
	n := terms.Normalize(term)
	if n == "" {
		return nil
	}
	return append([]string{n}, t[n]...)
}

// PlatformAliases broadens platform filters to store fronts and device names.
var PlatformAliases = AliasTable{
	"pc":          {"steam", "windows", "microsoft windows", "epic games", "gog", "itch.io"},
	"mac":         {"macos", "os x", "osx", "apple"},
	"linux":       {"steamos", "steam deck", "ubuntu"},
	"playstation": {"ps4", "ps5", "ps3", "ps vita", "psn", "sony"},
	"xbox":        {"xbox one", "xbox series", "xbox 360", "microsoft store"},
	"switch":      {"nintendo", "nintendo switch", "eshop"},
	"console":     {"playstation", "xbox", "switch", "nintendo"},
	"mobile":      {"ios", "android", "iphone", "ipad", "google play", "app store"},
	"web":         {"browser", "html5", "webgl"},
	"vr":          {"virtual reality", "oculus", "meta quest", "steamvr", "vive"},
}

// GenreAliases broadens genre filters to sub-genres and common spellings.
var GenreAliases = AliasTable{
	"rpg":        {"role-playing", "role playing", "jrpg", "crpg", "arpg"},
	"action":     {"hack and slash", "beat 'em up", "fighting", "shooter"},
	"adventure":  {"point-and-click", "point and click", "narrative", "visual novel", "exploration"},
	"shooter":    {"fps", "first-person shooter", "shoot 'em up", "shmup", "bullet hell"},
	"strategy":   {"rts", "4x", "tactics", "tactical", "turn-based", "tower defense", "grand strategy"},
	"simulation": {"simulator", "management", "tycoon", "city builder", "life sim", "farming"},
	"platformer": {"platform", "metroidvania", "precision platformer"},
	"roguelike":  {"roguelite", "rogue-like", "rogue-lite", "dungeon crawler"},
	"puzzle":     {"logic", "match 3", "match-3", "sokoban"},
	"horror":     {"survival horror", "psychological horror"},
	"racing":     {"driving", "kart"},
	"sports":     {"football", "soccer", "basketball", "golf"},
	"card game":  {"deckbuilder", "deck-building", "deckbuilding", "card battler", "tcg", "ccg"},
	"sandbox":    {"open world", "crafting", "survival"},
	"casual":     {"idle", "clicker", "hyper-casual"},
	"indie":      {"independent"},
}
