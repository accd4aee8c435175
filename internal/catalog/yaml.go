package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/sr4-ledger/internal/entities/sr4"
	"github.com/KirkDiggler/sr4-ledger/internal/errors"
)

// Catalog file names looked up inside the content directory. A missing
// file yields an empty collection, not an error, so partial datasets
// (tests, trimmed campaign content) stay loadable.
const (
	metatypesFile    = "metatypes.yaml"
	qualitiesFile    = "qualities.yaml"
	skillsFile       = "skills.yaml"
	spellsFile       = "spells.yaml"
	complexFormsFile = "complex_forms.yaml"
	powersFile       = "powers.yaml"
	weaponsFile      = "weapons.yaml"
	armorFile        = "armor.yaml"
	armorModsFile    = "armor_mods.yaml"
	cyberwareFile    = "cyberware.yaml"
	biowareFile      = "bioware.yaml"
	vehiclesFile     = "vehicles.yaml"
	gearFile         = "gear.yaml"
	lifestylesFile   = "lifestyles.yaml"
	martialArtsFile  = "martial_arts.yaml"
	mentorsFile      = "mentors.yaml"
)

// Load reads a content directory and returns a catalog over it
func Load(dir string) (Catalog, error) {
	content, err := LoadContent(dir)
	if err != nil {
		return nil, err
	}
	return New(content), nil
}

// LoadContent reads and validates a content directory
func LoadContent(dir string) (*Content, error) {
	if dir == "" {
		return nil, errors.InvalidArgument("catalog directory is required")
	}

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("catalog directory %s does not exist", dir)
		}
		return nil, errors.Wrapf(err, "failed to stat catalog directory %s", dir)
	}
	if !info.IsDir() {
		return nil, errors.InvalidArgumentf("catalog path %s is not a directory", dir)
	}

	content := &Content{}

	if err := loadFile(dir, metatypesFile, &content.Metatypes); err != nil {
		return nil, err
	}
	if err := loadFile(dir, qualitiesFile, &content.Qualities); err != nil {
		return nil, err
	}
	if err := loadFile(dir, skillsFile, &content.Skills); err != nil {
		return nil, err
	}
	if err := loadFile(dir, spellsFile, &content.Spells); err != nil {
		return nil, err
	}
	if err := loadFile(dir, complexFormsFile, &content.ComplexForms); err != nil {
		return nil, err
	}
	if err := loadFile(dir, powersFile, &content.Powers); err != nil {
		return nil, err
	}
	if err := loadFile(dir, weaponsFile, &content.Weapons); err != nil {
		return nil, err
	}
	if err := loadFile(dir, armorFile, &content.Armor); err != nil {
		return nil, err
	}
	if err := loadFile(dir, armorModsFile, &content.ArmorMods); err != nil {
		return nil, err
	}
	if err := loadFile(dir, cyberwareFile, &content.Cyberware); err != nil {
		return nil, err
	}
	if err := loadFile(dir, biowareFile, &content.Bioware); err != nil {
		return nil, err
	}
	if err := loadFile(dir, vehiclesFile, &content.Vehicles); err != nil {
		return nil, err
	}
	if err := loadFile(dir, gearFile, &content.Gear); err != nil {
		return nil, err
	}
	if err := loadFile(dir, lifestylesFile, &content.Lifestyles); err != nil {
		return nil, err
	}
	if err := loadFile(dir, martialArtsFile, &content.MartialArts); err != nil {
		return nil, err
	}
	if err := loadFile(dir, mentorsFile, &content.Mentors); err != nil {
		return nil, err
	}

	if err := content.Validate(); err != nil {
		return nil, err
	}

	return content, nil
}

func loadFile[T any](dir, file string, target *[]*T) error {
	path := filepath.Join(dir, file)

	data, err := os.ReadFile(path) // #nosec G304 -- catalog dir comes from operator config
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "failed to read catalog file %s", file)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to parse catalog file %s", file)
	}

	return nil
}

// Validate checks the dataset for entries the ledger could not safely
// serve: empty or duplicate names, negative prices, quality BP signs that
// contradict their category, metatype bounds out of order.
func (c *Content) Validate() error {
	vb := errors.NewValidationBuilder()

	validateUniqueNames(vb, "metatypes", len(c.Metatypes), func(i int) string { return c.Metatypes[i].Name })
	validateUniqueNames(vb, "qualities", len(c.Qualities), func(i int) string { return c.Qualities[i].Name })
	validateUniqueNames(vb, "skills", len(c.Skills), func(i int) string { return c.Skills[i].Name })
	validateUniqueNames(vb, "spells", len(c.Spells), func(i int) string { return c.Spells[i].Name })
	validateUniqueNames(vb, "complex_forms", len(c.ComplexForms), func(i int) string { return c.ComplexForms[i].Name })
	validateUniqueNames(vb, "powers", len(c.Powers), func(i int) string { return c.Powers[i].Name })
	validateUniqueNames(vb, "weapons", len(c.Weapons), func(i int) string { return c.Weapons[i].Name })
	validateUniqueNames(vb, "armor", len(c.Armor), func(i int) string { return c.Armor[i].Name })
	validateUniqueNames(vb, "armor_mods", len(c.ArmorMods), func(i int) string { return c.ArmorMods[i].Name })
	validateUniqueNames(vb, "cyberware", len(c.Cyberware), func(i int) string { return c.Cyberware[i].Name })
	validateUniqueNames(vb, "bioware", len(c.Bioware), func(i int) string { return c.Bioware[i].Name })
	validateUniqueNames(vb, "vehicles", len(c.Vehicles), func(i int) string { return c.Vehicles[i].Name })
	validateUniqueNames(vb, "gear", len(c.Gear), func(i int) string { return c.Gear[i].Name })
	validateUniqueNames(vb, "lifestyles", len(c.Lifestyles), func(i int) string { return c.Lifestyles[i].Name })
	validateUniqueNames(vb, "martial_arts", len(c.MartialArts), func(i int) string { return c.MartialArts[i].Name })
	validateUniqueNames(vb, "mentors", len(c.Mentors), func(i int) string { return c.Mentors[i].Name })

	for i, metatype := range c.Metatypes {
		if len(metatype.Attributes) == 0 {
			vb.Fieldf(fmt.Sprintf("metatypes[%d]", i), "must define attribute limits")
		}
		for code, bounds := range metatype.Attributes {
			if bounds.Min > bounds.Max {
				vb.Fieldf(fmt.Sprintf("metatypes[%d].attributes.%s", i, code), "min %d exceeds max %d", bounds.Min, bounds.Max)
			}
			if bounds.AugmentedMax != 0 && bounds.AugmentedMax < bounds.Max {
				vb.Fieldf(fmt.Sprintf("metatypes[%d].attributes.%s", i, code), "augmented max %d below max %d", bounds.AugmentedMax, bounds.Max)
			}
		}
	}

	for i, quality := range c.Qualities {
		switch quality.Category {
		case sr4.QualityPositive:
			if quality.BP < 0 {
				vb.Fieldf(fmt.Sprintf("qualities[%d]", i), "positive quality has negative bp %d", quality.BP)
			}
		case sr4.QualityNegative:
			if quality.BP > 0 {
				vb.Fieldf(fmt.Sprintf("qualities[%d]", i), "negative quality has positive bp %d", quality.BP)
			}
		default:
			vb.Fieldf(fmt.Sprintf("qualities[%d].category", i), "unknown category %q", quality.Category)
		}
	}

	for i, weapon := range c.Weapons {
		if weapon.Cost < 0 {
			vb.Fieldf(fmt.Sprintf("weapons[%d].cost", i), "must not be negative")
		}
	}
	for i, armor := range c.Armor {
		if armor.Cost < 0 {
			vb.Fieldf(fmt.Sprintf("armor[%d].cost", i), "must not be negative")
		}
		if armor.Capacity < 0 {
			vb.Fieldf(fmt.Sprintf("armor[%d].capacity", i), "must not be negative")
		}
	}
	for i, implant := range c.Cyberware {
		if implant.Cost < 0 {
			vb.Fieldf(fmt.Sprintf("cyberware[%d].cost", i), "must not be negative")
		}
		if implant.EssenceCost < 0 {
			vb.Fieldf(fmt.Sprintf("cyberware[%d].essence", i), "must not be negative")
		}
	}
	for i, implant := range c.Bioware {
		if implant.Cost < 0 {
			vb.Fieldf(fmt.Sprintf("bioware[%d].cost", i), "must not be negative")
		}
		if implant.EssenceCost < 0 {
			vb.Fieldf(fmt.Sprintf("bioware[%d].essence", i), "must not be negative")
		}
	}
	for i, item := range c.Gear {
		if item.Cost < 0 {
			vb.Fieldf(fmt.Sprintf("gear[%d].cost", i), "must not be negative")
		}
		if item.Capacity < 0 || item.CapacityCost < 0 {
			vb.Fieldf(fmt.Sprintf("gear[%d]", i), "capacity values must not be negative")
		}
	}
	for i, lifestyle := range c.Lifestyles {
		if lifestyle.MonthlyCost < 0 {
			vb.Fieldf(fmt.Sprintf("lifestyles[%d].monthly_cost", i), "must not be negative")
		}
	}

	return vb.Build()
}

func validateUniqueNames(vb *errors.ValidationBuilder, collection string, count int, nameAt func(int) string) {
	seen := make(map[string]int, count)
	for i := 0; i < count; i++ {
		name := nameAt(i)
		if name == "" {
			vb.Fieldf(fmt.Sprintf("%s[%d].name", collection, i), "is required")
			continue
		}
		key := nameKey(name)
		if first, dup := seen[key]; dup {
			vb.Fieldf(fmt.Sprintf("%s[%d].name", collection, i), "duplicates entry %d (%s)", first, name)
			continue
		}
		seen[key] = i
	}
}
