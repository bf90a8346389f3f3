package game

import "strings"

// Theme is a fixed campaign genre determining race/class vocabulary and
// narrative flavor
type Theme string

const (
	ThemeFantasy   Theme = "Classic Fantasy"
	ThemeSciFi     Theme = "Sci-Fi Space Opera"
	ThemeWestern   Theme = "Weird West"
	ThemeCyberpunk Theme = "Cyberpunk"
	ThemeHorror    Theme = "Lovecraftian Horror"
)

// Themes returns all themes in display order
func Themes() []Theme {
	return []Theme{ThemeFantasy, ThemeSciFi, ThemeWestern, ThemeCyberpunk, ThemeHorror}
}

// IsValid reports whether the theme is a known genre
func (t Theme) IsValid() bool {
	for _, known := range Themes() {
		if t == known {
			return true
		}
	}
	return false
}

// Preset holds the advisory race/class vocabulary for a theme
type Preset struct {
	Races   []string
	Classes []string
}

var presets = map[Theme]Preset{
	ThemeFantasy: {
		Races:   []string{"Human", "Elf", "Dwarf", "Halfling", "Orc", "Tiefling", "Dragonborn", "Gnome"},
		Classes: []string{"Fighter", "Wizard", "Rogue", "Cleric", "Paladin", "Ranger", "Bard", "Barbarian", "Druid", "Monk", "Sorcerer", "Warlock"},
	},
	ThemeSciFi: {
		Races:   []string{"Human", "Android", "Grey Alien", "Martian", "Cyborg", "Hologram", "Reptilian"},
		Classes: []string{"Pilot", "Soldier", "Engineer", "Medic", "Bounty Hunter", "Psychic", "Diplomat", "Smuggler"},
	},
	ThemeWestern: {
		Races:   []string{"Human", "Revenant", "Spirit-Touched"},
		Classes: []string{"Gunslinger", "Sheriff", "Outlaw", "Preacher", "Gambler", "Prospector", "Bounty Hunter", "Doc"},
	},
	ThemeCyberpunk: {
		Races:   []string{"Human", "Cyborg", "Synthetic", "Bio-Modded"},
		Classes: []string{"Street Samurai", "Netrunner", "Techie", "Solo", "Fixer", "Rockerboy", "Corpo"},
	},
	ThemeHorror: {
		Races:   []string{"Human", "Vampire", "Werewolf", "Ghost", "Medium", "Awakened"},
		Classes: []string{"Investigator", "Occultist", "Survivor", "Hunter", "Medium", "Professor", "Priest"},
	},
}

// PresetFor returns the vocabulary for a theme. Unknown themes fall back to
// the fantasy preset.
func PresetFor(t Theme) Preset {
	if p, ok := presets[t]; ok {
		return p
	}
	return presets[ThemeFantasy]
}

// MatchVocab maps a candidate term onto the vocabulary, case-insensitively.
// Off-list terms are accepted as-is: the vocabulary is advisory, not enforced.
func MatchVocab(vocab []string, candidate string) string {
	if strings.TrimSpace(candidate) == "" && len(vocab) > 0 {
		return vocab[0]
	}
	for _, term := range vocab {
		if strings.EqualFold(term, candidate) {
			return term
		}
	}
	return candidate
}
