package catalog

import (
	"github.com/KirkDiggler/sr4-ledger/internal/entities/sr4"
)

// AttributeRange is the metatype bound for one attribute as written in
// the catalog files
type AttributeRange struct {
	Min          int32 `yaml:"min"`
	Max          int32 `yaml:"max"`
	AugmentedMax int32 `yaml:"augmented_max"`
}

// MetatypeData describes one playable metatype
type MetatypeData struct {
	Name       string                           `yaml:"name"`
	BP         int32                            `yaml:"bp"`
	Attributes map[sr4.Attribute]AttributeRange `yaml:"attributes"`
}

// QualityData describes one selectable quality. Negative qualities carry
// a negative BP value (they grant points).
type QualityData struct {
	Name     string              `yaml:"name"`
	Category sr4.QualityCategory `yaml:"category"`
	BP       int32               `yaml:"bp"`
}

// SkillData describes one learnable active or knowledge skill
type SkillData struct {
	Name            string        `yaml:"name"`
	Group           string        `yaml:"group,omitempty"`
	LinkedAttribute sr4.Attribute `yaml:"linked_attribute,omitempty"`
	Knowledge       bool          `yaml:"knowledge,omitempty"`
}

// SpellData describes one learnable spell
type SpellData struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

// ComplexFormData describes one learnable complex form
type ComplexFormData struct {
	Name   string `yaml:"name"`
	Target string `yaml:"target,omitempty"`
}

// PowerData describes one adept power; Cost is power points per rating
// level
type PowerData struct {
	Name      string  `yaml:"name"`
	Cost      float64 `yaml:"cost"`
	MaxRating int32   `yaml:"max_rating,omitempty"`
}

// WeaponData describes one purchasable weapon
type WeaponData struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Damage   string `yaml:"damage"`
	AP       string `yaml:"ap,omitempty"`
	Mode     string `yaml:"mode,omitempty"`
	Ammo     string `yaml:"ammo,omitempty"`
	Cost     int32  `yaml:"cost"`
}

// ArmorData describes one purchasable armor piece
type ArmorData struct {
	Name      string `yaml:"name"`
	Ballistic int32  `yaml:"ballistic"`
	Impact    int32  `yaml:"impact"`
	Capacity  int32  `yaml:"capacity"`
	Cost      int32  `yaml:"cost"`
}

// ArmorModData describes one installable armor modification
type ArmorModData struct {
	Name         string `yaml:"name"`
	MaxRating    int32  `yaml:"max_rating,omitempty"`
	CapacityCost int32  `yaml:"capacity_cost"`
	Cost         int32  `yaml:"cost"`
}

// CyberwareData describes one implant before grade multipliers
type CyberwareData struct {
	Name        string  `yaml:"name"`
	EssenceCost float64 `yaml:"essence"`
	Cost        int32   `yaml:"cost"`
	MaxRating   int32   `yaml:"max_rating,omitempty"`
}

// BiowareData describes one bioware implant before grade multipliers
type BiowareData struct {
	Name        string  `yaml:"name"`
	EssenceCost float64 `yaml:"essence"`
	Cost        int32   `yaml:"cost"`
	MaxRating   int32   `yaml:"max_rating,omitempty"`
}

// VehicleData describes one purchasable vehicle or drone
type VehicleData struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Handling int32  `yaml:"handling"`
	Body     int32  `yaml:"body"`
	Armor    int32  `yaml:"armor"`
	Pilot    int32  `yaml:"pilot"`
	Cost     int32  `yaml:"cost"`
}

// GearData describes one purchasable gear item. Capacity makes the item
// a container; CapacityCost is the room it takes inside one.
type GearData struct {
	Name         string `yaml:"name"`
	Category     string `yaml:"category"`
	Cost         int32  `yaml:"cost"`
	Capacity     int32  `yaml:"capacity,omitempty"`
	CapacityCost int32  `yaml:"capacity_cost,omitempty"`
	MaxRating    int32  `yaml:"max_rating,omitempty"`
}

// LifestyleData describes one lifestyle tier
type LifestyleData struct {
	Name        string `yaml:"name"`
	MonthlyCost int32  `yaml:"monthly_cost"`
}

// MartialArtData describes one martial art style and its techniques
type MartialArtData struct {
	Name       string   `yaml:"name"`
	BP         int32    `yaml:"bp"`
	Techniques []string `yaml:"techniques,omitempty"`
}

// MentorData describes one mentor spirit
type MentorData struct {
	Name      string `yaml:"name"`
	Advantage string `yaml:"advantage,omitempty"`
}

// Content is the full reference dataset a catalog serves
type Content struct {
	Metatypes    []*MetatypeData    `yaml:"metatypes"`
	Qualities    []*QualityData     `yaml:"qualities"`
	Skills       []*SkillData       `yaml:"skills"`
	Spells       []*SpellData       `yaml:"spells"`
	ComplexForms []*ComplexFormData `yaml:"complex_forms"`
	Powers       []*PowerData       `yaml:"powers"`
	Weapons      []*WeaponData      `yaml:"weapons"`
	Armor        []*ArmorData       `yaml:"armor"`
	ArmorMods    []*ArmorModData    `yaml:"armor_mods"`
	Cyberware    []*CyberwareData   `yaml:"cyberware"`
	Bioware      []*BiowareData     `yaml:"bioware"`
	Vehicles     []*VehicleData     `yaml:"vehicles"`
	Gear         []*GearData        `yaml:"gear"`
	Lifestyles   []*LifestyleData   `yaml:"lifestyles"`
	MartialArts  []*MartialArtData  `yaml:"martial_arts"`
	Mentors      []*MentorData      `yaml:"mentors"`
}
