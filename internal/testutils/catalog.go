package testutils

import (
	"github.com/KirkDiggler/sr4-ledger/internal/catalog"
	"github.com/KirkDiggler/sr4-ledger/internal/entities/sr4"
)

// CreateTestCatalog creates an in-memory catalog backed by the shared test
// content
func CreateTestCatalog() catalog.Catalog {
	return catalog.New(CreateTestCatalogContent())
}

// CreateTestCatalogContent builds a reference dataset covering every
// collection, enough for orchestrator tests to exercise the full purchase
// surface without loading YAML files.
func CreateTestCatalogContent() *catalog.Content {
	return &catalog.Content{
		Metatypes: []*catalog.MetatypeData{
			{
				Name: "Human",
				BP:   0,
				Attributes: metatypeAttributes(map[sr4.Attribute]catalog.AttributeRange{
					sr4.AttributeEdge: {Min: 2, Max: 7, AugmentedMax: 7},
				}),
			},
			{
				Name: "Elf",
				BP:   30,
				Attributes: metatypeAttributes(map[sr4.Attribute]catalog.AttributeRange{
					sr4.AttributeAgility:  {Min: 2, Max: 7, AugmentedMax: 10},
					sr4.AttributeCharisma: {Min: 3, Max: 8, AugmentedMax: 12},
					sr4.AttributeEdge:     {Min: 1, Max: 6, AugmentedMax: 6},
				}),
			},
			{
				Name: "Night One",
				BP:   35,
				Attributes: metatypeAttributes(map[sr4.Attribute]catalog.AttributeRange{
					sr4.AttributeAgility:  {Min: 2, Max: 7, AugmentedMax: 10},
					sr4.AttributeCharisma: {Min: 3, Max: 8, AugmentedMax: 12},
					sr4.AttributeEdge:     {Min: 1, Max: 6, AugmentedMax: 6},
				}),
			},
			{
				Name: "Ork",
				BP:   20,
				Attributes: metatypeAttributes(map[sr4.Attribute]catalog.AttributeRange{
					sr4.AttributeBody:     {Min: 4, Max: 9, AugmentedMax: 13},
					sr4.AttributeStrength: {Min: 3, Max: 8, AugmentedMax: 12},
					sr4.AttributeCharisma: {Min: 1, Max: 5, AugmentedMax: 7},
					sr4.AttributeLogic:    {Min: 1, Max: 5, AugmentedMax: 7},
					sr4.AttributeEdge:     {Min: 1, Max: 6, AugmentedMax: 6},
				}),
			},
			{
				Name: "Troll",
				BP:   40,
				Attributes: metatypeAttributes(map[sr4.Attribute]catalog.AttributeRange{
					sr4.AttributeBody:      {Min: 5, Max: 10, AugmentedMax: 15},
					sr4.AttributeAgility:   {Min: 1, Max: 5, AugmentedMax: 7},
					sr4.AttributeStrength:  {Min: 5, Max: 10, AugmentedMax: 15},
					sr4.AttributeCharisma:  {Min: 1, Max: 4, AugmentedMax: 6},
					sr4.AttributeIntuition: {Min: 1, Max: 5, AugmentedMax: 7},
					sr4.AttributeLogic:     {Min: 1, Max: 5, AugmentedMax: 7},
					sr4.AttributeEdge:      {Min: 1, Max: 6, AugmentedMax: 6},
				}),
			},
		},
		Qualities: []*catalog.QualityData{
			{Name: "Magician", Category: sr4.QualityPositive, BP: 15},
			{Name: "Adept", Category: sr4.QualityPositive, BP: 5},
			{Name: "Mystic Adept", Category: sr4.QualityPositive, BP: 10},
			{Name: "Aspected Magician (Sorcerer)", Category: sr4.QualityPositive, BP: 10},
			{Name: "Technomancer", Category: sr4.QualityPositive, BP: 5},
			{Name: "Ambidextrous", Category: sr4.QualityPositive, BP: 5},
			{Name: "Guts", Category: sr4.QualityPositive, BP: 5},
			{Name: "SINner", Category: sr4.QualityNegative, BP: -5},
			{Name: "Addiction (Mild)", Category: sr4.QualityNegative, BP: -5},
		},
		Skills: []*catalog.SkillData{
			{Name: "Pistols", Group: "Firearms", LinkedAttribute: sr4.AttributeAgility},
			{Name: "Automatics", Group: "Firearms", LinkedAttribute: sr4.AttributeAgility},
			{Name: "Blades", Group: "Close Combat", LinkedAttribute: sr4.AttributeAgility},
			{Name: "Dodge", LinkedAttribute: sr4.AttributeReaction},
			{Name: "Spellcasting", Group: "Sorcery", LinkedAttribute: sr4.AttributeMagic},
			{Name: "Summoning", Group: "Conjuring", LinkedAttribute: sr4.AttributeMagic},
			{Name: "Compiling", Group: "Tasking", LinkedAttribute: sr4.AttributeResonance},
			{Name: "Seattle Street Gangs", LinkedAttribute: sr4.AttributeIntuition, Knowledge: true},
			{Name: "Magic Theory", LinkedAttribute: sr4.AttributeLogic, Knowledge: true},
		},
		Spells: []*catalog.SpellData{
			{Name: "Manabolt", Category: "Combat"},
			{Name: "Stunbolt", Category: "Combat"},
			{Name: "Heal", Category: "Health"},
			{Name: "Invisibility", Category: "Illusion"},
		},
		ComplexForms: []*catalog.ComplexFormData{
			{Name: "Browse", Target: "File"},
			{Name: "Edit", Target: "File"},
			{Name: "Armor", Target: "Persona"},
		},
		Powers: []*catalog.PowerData{
			{Name: "Improved Reflexes", Cost: 1.5, MaxRating: 3},
			{Name: "Killing Hands", Cost: 0.5},
			{Name: "Mystic Armor", Cost: 0.5, MaxRating: 4},
		},
		Weapons: []*catalog.WeaponData{
			{Name: "Ares Predator IV", Category: "Heavy Pistols", Damage: "5P", AP: "-1", Mode: "SA", Ammo: "15(c)", Cost: 350},
			{Name: "AK-97", Category: "Assault Rifles", Damage: "6P", AP: "-1", Mode: "SA/BF/FA", Ammo: "38(c)", Cost: 500},
			{Name: "Combat Knife", Category: "Blades", Damage: "(STR/2+2)P", AP: "-1", Cost: 300},
		},
		Armor: []*catalog.ArmorData{
			{Name: "Armor Jacket", Ballistic: 8, Impact: 6, Capacity: 8, Cost: 900},
			{Name: "Lined Coat", Ballistic: 6, Impact: 4, Capacity: 6, Cost: 700},
			{Name: "Armor Vest", Ballistic: 6, Impact: 4, Capacity: 4, Cost: 600},
		},
		ArmorMods: []*catalog.ArmorModData{
			{Name: "Fire Resistance", MaxRating: 6, CapacityCost: 1, Cost: 50},
			{Name: "Nonconductivity", MaxRating: 6, CapacityCost: 1, Cost: 50},
			{Name: "Thermal Damping", MaxRating: 6, CapacityCost: 1, Cost: 500},
		},
		Cyberware: []*catalog.CyberwareData{
			{Name: "Datajack", EssenceCost: 0.1, Cost: 720},
			{Name: "Wired Reflexes", EssenceCost: 2.0, Cost: 11000, MaxRating: 3},
			{Name: "Cybereyes", EssenceCost: 0.2, Cost: 500, MaxRating: 4},
		},
		Bioware: []*catalog.BiowareData{
			{Name: "Muscle Toner", EssenceCost: 0.2, Cost: 8000, MaxRating: 4},
			{Name: "Platelet Factories", EssenceCost: 0.2, Cost: 4500},
		},
		Vehicles: []*catalog.VehicleData{
			{Name: "Suzuki Mirage", Category: "Bikes", Handling: 2, Body: 5, Armor: 4, Pilot: 1, Cost: 8500},
			{Name: "Ford Americar", Category: "Sedans", Handling: 0, Body: 11, Armor: 6, Pilot: 1, Cost: 20000},
			{Name: "MCT-Nissan Roto-Drone", Category: "Drones", Handling: 0, Body: 3, Armor: 0, Pilot: 3, Cost: 5000},
		},
		Gear: []*catalog.GearData{
			{Name: "Backpack", Category: "Containers", Cost: 20, Capacity: 30},
			{Name: "Medkit", Category: "Medical", Cost: 100, Capacity: 6, CapacityCost: 6, MaxRating: 6},
			{Name: "Trauma Patch", Category: "Medical", Cost: 500, CapacityCost: 1},
			{Name: "Commlink", Category: "Electronics", Cost: 700, CapacityCost: 1},
		},
		Lifestyles: []*catalog.LifestyleData{
			{Name: "Street", MonthlyCost: 0},
			{Name: "Low", MonthlyCost: 2000},
			{Name: "Middle", MonthlyCost: 5000},
		},
		MartialArts: []*catalog.MartialArtData{
			{Name: "Karate", BP: 5, Techniques: []string{"Counterstrike", "Set-Up", "Sweep"}},
			{Name: "Kung Fu", BP: 5, Techniques: []string{"Sweep", "Throw", "Vicious Blow"}},
		},
		Mentors: []*catalog.MentorData{
			{Name: "Bear", Advantage: "+2 dice for Health spells"},
			{Name: "Rat", Advantage: "+2 dice for Infiltration tests"},
		},
	}
}

// metatypeAttributes returns the nine standard attribute ranges at the
// human baseline of 1/6/9, with the given overrides applied.
func metatypeAttributes(overrides map[sr4.Attribute]catalog.AttributeRange) map[sr4.Attribute]catalog.AttributeRange {
	attributes := make(map[sr4.Attribute]catalog.AttributeRange, len(sr4.StandardAttributes()))
	for _, code := range sr4.StandardAttributes() {
		attributes[code] = catalog.AttributeRange{Min: 1, Max: 6, AugmentedMax: 9}
	}
	for code, bounds := range overrides {
		attributes[code] = bounds
	}
	return attributes
}
