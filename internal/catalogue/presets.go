package catalogue

import "github.com/osse101/DropLuck_Go/internal/domain"

// Barter is the Java Edition 1.16.1 piglin bartering table (total weight 423).
func Barter() Catalogue {
	return New(NameBarter,
		domain.DropEntry{Item: domain.ItemEnchantedBook, Weight: 5, MinCount: 1, MaxCount: 1},
		domain.DropEntry{Item: domain.ItemIronBoots, Weight: 8, MinCount: 1, MaxCount: 1},
		domain.DropEntry{Item: domain.ItemPotion, Weight: 10, MinCount: 1, MaxCount: 1},
		domain.DropEntry{Item: domain.ItemSplashPotion, Weight: 10, MinCount: 1, MaxCount: 1},
		domain.DropEntry{Item: domain.ItemIronNugget, Weight: 10, MinCount: 9, MaxCount: 36},
		domain.DropEntry{Item: domain.ItemQuartz, Weight: 20, MinCount: 8, MaxCount: 16},
		domain.DropEntry{Item: domain.ItemGlowstoneDust, Weight: 20, MinCount: 5, MaxCount: 12},
		domain.DropEntry{Item: domain.ItemMagmaCream, Weight: 20, MinCount: 2, MaxCount: 6},
		domain.DropEntry{Item: domain.ItemEnderPearl, Weight: 20, MinCount: 4, MaxCount: 8},
		domain.DropEntry{Item: domain.ItemString, Weight: 20, MinCount: 8, MaxCount: 24},
		domain.DropEntry{Item: domain.ItemFireCharge, Weight: 40, MinCount: 1, MaxCount: 5},
		domain.DropEntry{Item: domain.ItemGravel, Weight: 40, MinCount: 8, MaxCount: 16},
		domain.DropEntry{Item: domain.ItemLeather, Weight: 40, MinCount: 4, MaxCount: 10},
		domain.DropEntry{Item: domain.ItemNetherBrick, Weight: 40, MinCount: 4, MaxCount: 16},
		domain.DropEntry{Item: domain.ItemObsidian, Weight: 40, MinCount: 1, MaxCount: 1},
		domain.DropEntry{Item: domain.ItemCryingObsidian, Weight: 40, MinCount: 1, MaxCount: 3},
		domain.DropEntry{Item: domain.ItemSoulSand, Weight: 40, MinCount: 4, MaxCount: 16},
	)
}

// Blaze models a blaze kill: one rod or nothing, evenly.
func Blaze() Catalogue {
	return New(NameBlaze,
		domain.DropEntry{Item: domain.ItemBlazeRod, Weight: 1, MinCount: 0, MaxCount: 1},
	)
}

// Preset returns a built-in catalogue by name.
func Preset(name string) (Catalogue, bool) {
	switch name {
	case NameBarter:
		return Barter(), true
	case NameBlaze:
		return Blaze(), true
	default:
		return Catalogue{}, false
	}
}
