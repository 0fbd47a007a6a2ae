package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Item identifies one possible drop outcome.
type Item string

// Item internal name constants - stable code identifiers
const (
	ItemNone Item = "none"

	// Piglin barter outcomes
	ItemEnchantedBook  Item = "enchanted_book"
	ItemIronBoots      Item = "iron_boots"
	ItemPotion         Item = "potion"
	ItemSplashPotion   Item = "splash_potion"
	ItemIronNugget     Item = "iron_nugget"
	ItemQuartz         Item = "quartz"
	ItemGlowstoneDust  Item = "glowstone_dust"
	ItemMagmaCream     Item = "magma_cream"
	ItemEnderPearl     Item = "ender_pearl"
	ItemString         Item = "string"
	ItemFireCharge     Item = "fire_charge"
	ItemGravel         Item = "gravel"
	ItemLeather        Item = "leather"
	ItemNetherBrick    Item = "nether_brick"
	ItemObsidian       Item = "obsidian"
	ItemCryingObsidian Item = "crying_obsidian"
	ItemSoulSand       Item = "soul_sand"

	// Blaze outcomes
	ItemBlazeRod Item = "blaze_rod"
)

var titleCaser = cases.Title(language.English)

// String implements fmt.Stringer.
func (i Item) String() string {
	return string(i)
}

// DisplayName renders the item for humans, e.g. "Ender Pearl".
func (i Item) DisplayName() string {
	return titleCaser.String(strings.ReplaceAll(string(i), "_", " "))
}
