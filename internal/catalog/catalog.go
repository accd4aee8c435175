// Package catalog provides the read-only game data catalog: name-indexed
// tables of metatypes, qualities, skills, spells, gear, and prices. The
// ledger only consumes lookups; nothing here mutates.
package catalog

import (
	"context"
	"strings"

	"github.com/KirkDiggler/sr4-ledger/internal/entities/sr4"
	"github.com/KirkDiggler/sr4-ledger/internal/errors"
)

//go:generate mockgen -destination=mock/mock_catalog.go -package=catalogmock github.com/KirkDiggler/sr4-ledger/internal/catalog Catalog

// Catalog is the lookup interface the ledger consumes. Lookups are
// case-insensitive by name and return a NotFound error for unknown names.
type Catalog interface {
	GetMetatype(ctx context.Context, name string) (*MetatypeData, error)
	GetQuality(ctx context.Context, name string) (*QualityData, error)
	GetSkill(ctx context.Context, name string) (*SkillData, error)
	GetSpell(ctx context.Context, name string) (*SpellData, error)
	GetComplexForm(ctx context.Context, name string) (*ComplexFormData, error)
	GetPower(ctx context.Context, name string) (*PowerData, error)
	GetWeapon(ctx context.Context, name string) (*WeaponData, error)
	GetArmor(ctx context.Context, name string) (*ArmorData, error)
	GetArmorMod(ctx context.Context, name string) (*ArmorModData, error)
	GetCyberware(ctx context.Context, name string) (*CyberwareData, error)
	GetBioware(ctx context.Context, name string) (*BiowareData, error)
	GetVehicle(ctx context.Context, name string) (*VehicleData, error)
	GetGear(ctx context.Context, name string) (*GearData, error)
	GetLifestyle(ctx context.Context, name string) (*LifestyleData, error)
	GetMartialArt(ctx context.Context, name string) (*MartialArtData, error)
	GetMentor(ctx context.Context, name string) (*MentorData, error)

	ListMetatypes(ctx context.Context) ([]*MetatypeData, error)
	ListQualities(ctx context.Context, category sr4.QualityCategory) ([]*QualityData, error)
}

// memory serves a Content dataset from name-keyed indexes
type memory struct {
	content      *Content
	metatypes    map[string]*MetatypeData
	qualities    map[string]*QualityData
	skills       map[string]*SkillData
	spells       map[string]*SpellData
	complexForms map[string]*ComplexFormData
	powers       map[string]*PowerData
	weapons      map[string]*WeaponData
	armor        map[string]*ArmorData
	armorMods    map[string]*ArmorModData
	cyberware    map[string]*CyberwareData
	bioware      map[string]*BiowareData
	vehicles     map[string]*VehicleData
	gear         map[string]*GearData
	lifestyles   map[string]*LifestyleData
	martialArts  map[string]*MartialArtData
	mentors      map[string]*MentorData
}

// New builds a catalog over the given content
func New(content *Content) Catalog {
	if content == nil {
		content = &Content{}
	}

	m := &memory{
		content:      content,
		metatypes:    make(map[string]*MetatypeData),
		qualities:    make(map[string]*QualityData),
		skills:       make(map[string]*SkillData),
		spells:       make(map[string]*SpellData),
		complexForms: make(map[string]*ComplexFormData),
		powers:       make(map[string]*PowerData),
		weapons:      make(map[string]*WeaponData),
		armor:        make(map[string]*ArmorData),
		armorMods:    make(map[string]*ArmorModData),
		cyberware:    make(map[string]*CyberwareData),
		bioware:      make(map[string]*BiowareData),
		vehicles:     make(map[string]*VehicleData),
		gear:         make(map[string]*GearData),
		lifestyles:   make(map[string]*LifestyleData),
		martialArts:  make(map[string]*MartialArtData),
		mentors:      make(map[string]*MentorData),
	}

	for _, entry := range content.Metatypes {
		m.metatypes[nameKey(entry.Name)] = entry
	}
	for _, entry := range content.Qualities {
		m.qualities[nameKey(entry.Name)] = entry
	}
	for _, entry := range content.Skills {
		m.skills[nameKey(entry.Name)] = entry
	}
	for _, entry := range content.Spells {
		m.spells[nameKey(entry.Name)] = entry
	}
	for _, entry := range content.ComplexForms {
		m.complexForms[nameKey(entry.Name)] = entry
	}
	for _, entry := range content.Powers {
		m.powers[nameKey(entry.Name)] = entry
	}
	for _, entry := range content.Weapons {
		m.weapons[nameKey(entry.Name)] = entry
	}
	for _, entry := range content.Armor {
		m.armor[nameKey(entry.Name)] = entry
	}
	for _, entry := range content.ArmorMods {
		m.armorMods[nameKey(entry.Name)] = entry
	}
	for _, entry := range content.Cyberware {
		m.cyberware[nameKey(entry.Name)] = entry
	}
	for _, entry := range content.Bioware {
		m.bioware[nameKey(entry.Name)] = entry
	}
	for _, entry := range content.Vehicles {
		m.vehicles[nameKey(entry.Name)] = entry
	}
	for _, entry := range content.Gear {
		m.gear[nameKey(entry.Name)] = entry
	}
	for _, entry := range content.Lifestyles {
		m.lifestyles[nameKey(entry.Name)] = entry
	}
	for _, entry := range content.MartialArts {
		m.martialArts[nameKey(entry.Name)] = entry
	}
	for _, entry := range content.Mentors {
		m.mentors[nameKey(entry.Name)] = entry
	}

	return m
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (m *memory) GetMetatype(_ context.Context, name string) (*MetatypeData, error) {
	if entry, ok := m.metatypes[nameKey(name)]; ok {
		return entry, nil
	}
	return nil, errors.NotFoundf("metatype %q not found", name)
}

func (m *memory) GetQuality(_ context.Context, name string) (*QualityData, error) {
	if entry, ok := m.qualities[nameKey(name)]; ok {
		return entry, nil
	}
	return nil, errors.NotFoundf("quality %q not found", name)
}

func (m *memory) GetSkill(_ context.Context, name string) (*SkillData, error) {
	if entry, ok := m.skills[nameKey(name)]; ok {
		return entry, nil
	}
	return nil, errors.NotFoundf("skill %q not found", name)
}

func (m *memory) GetSpell(_ context.Context, name string) (*SpellData, error) {
	if entry, ok := m.spells[nameKey(name)]; ok {
		return entry, nil
	}
	return nil, errors.NotFoundf("spell %q not found", name)
}

func (m *memory) GetComplexForm(_ context.Context, name string) (*ComplexFormData, error) {
	if entry, ok := m.complexForms[nameKey(name)]; ok {
		return entry, nil
	}
	return nil, errors.NotFoundf("complex form %q not found", name)
}

func (m *memory) GetPower(_ context.Context, name string) (*PowerData, error) {
	if entry, ok := m.powers[nameKey(name)]; ok {
		return entry, nil
	}
	return nil, errors.NotFoundf("power %q not found", name)
}

func (m *memory) GetWeapon(_ context.Context, name string) (*WeaponData, error) {
	if entry, ok := m.weapons[nameKey(name)]; ok {
		return entry, nil
	}
	return nil, errors.NotFoundf("weapon %q not found", name)
}

func (m *memory) GetArmor(_ context.Context, name string) (*ArmorData, error) {
	if entry, ok := m.armor[nameKey(name)]; ok {
		return entry, nil
	}
	return nil, errors.NotFoundf("armor %q not found", name)
}

func (m *memory) GetArmorMod(_ context.Context, name string) (*ArmorModData, error) {
	if entry, ok := m.armorMods[nameKey(name)]; ok {
		return entry, nil
	}
	return nil, errors.NotFoundf("armor mod %q not found", name)
}

func (m *memory) GetCyberware(_ context.Context, name string) (*CyberwareData, error) {
	if entry, ok := m.cyberware[nameKey(name)]; ok {
		return entry, nil
	}
	return nil, errors.NotFoundf("cyberware %q not found", name)
}

func (m *memory) GetBioware(_ context.Context, name string) (*BiowareData, error) {
	if entry, ok := m.bioware[nameKey(name)]; ok {
		return entry, nil
	}
	return nil, errors.NotFoundf("bioware %q not found", name)
}

func (m *memory) GetVehicle(_ context.Context, name string) (*VehicleData, error) {
	if entry, ok := m.vehicles[nameKey(name)]; ok {
		return entry, nil
	}
	return nil, errors.NotFoundf("vehicle %q not found", name)
}

func (m *memory) GetGear(_ context.Context, name string) (*GearData, error) {
	if entry, ok := m.gear[nameKey(name)]; ok {
		return entry, nil
	}
	return nil, errors.NotFoundf("gear %q not found", name)
}

func (m *memory) GetLifestyle(_ context.Context, name string) (*LifestyleData, error) {
	if entry, ok := m.lifestyles[nameKey(name)]; ok {
		return entry, nil
	}
	return nil, errors.NotFoundf("lifestyle %q not found", name)
}

func (m *memory) GetMartialArt(_ context.Context, name string) (*MartialArtData, error) {
	if entry, ok := m.martialArts[nameKey(name)]; ok {
		return entry, nil
	}
	return nil, errors.NotFoundf("martial art %q not found", name)
}

func (m *memory) GetMentor(_ context.Context, name string) (*MentorData, error) {
	if entry, ok := m.mentors[nameKey(name)]; ok {
		return entry, nil
	}
	return nil, errors.NotFoundf("mentor %q not found", name)
}

func (m *memory) ListMetatypes(_ context.Context) ([]*MetatypeData, error) {
	return m.content.Metatypes, nil
}

func (m *memory) ListQualities(_ context.Context, category sr4.QualityCategory) ([]*QualityData, error) {
	var matches []*QualityData
	for _, entry := range m.content.Qualities {
		if category == "" || entry.Category == category {
			matches = append(matches, entry)
		}
	}
	return matches, nil
}
