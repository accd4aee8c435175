package ledger

import (
	"context"
	"strings"

	"github.com/KirkDiggler/sr4-ledger/internal/entities/sr4"
	"github.com/KirkDiggler/sr4-ledger/internal/errors"
	"github.com/KirkDiggler/sr4-ledger/internal/services/ledger"
)

// Equipment purchases. Legal in both modes; every purchase is gated on
// the nuyen balance and every removal refunds exactly the cost stored on
// the instance at purchase time.

// AddWeapon purchases a weapon from the catalog. The ammo counter starts
// full, parsed from the catalog's capacity string.
func (o *Orchestrator) AddWeapon(
	ctx context.Context,
	input *ledger.AddWeaponInput,
) (*ledger.AddWeaponOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	weapon, err := o.catalog.GetWeapon(ctx, input.Name)
	if err != nil {
		return nil, err
	}

	logMark := len(character.ExpenseLog)
	if err := o.spendNuyen(character, weapon.Cost, "Purchased "+weapon.Name); err != nil {
		return nil, err
	}

	character.Equipment.Weapons = append(character.Equipment.Weapons, sr4.Weapon{
		ID:          o.idGen.Generate(),
		Name:        weapon.Name,
		Category:    weapon.Category,
		Damage:      weapon.Damage,
		AP:          weapon.AP,
		Mode:        weapon.Mode,
		Ammo:        weapon.Ammo,
		CurrentAmmo: sr4.ParseAmmoCapacity(weapon.Ammo),
		Cost:        weapon.Cost,
	})

	updated, err := o.persist(ctx, character, logMark)
	if err != nil {
		return nil, err
	}
	return &ledger.AddWeaponOutput{Character: updated}, nil
}

// RemoveWeapon sells back a weapon for exactly what it cost
func (o *Orchestrator) RemoveWeapon(
	ctx context.Context,
	input *ledger.RemoveWeaponInput,
) (*ledger.RemoveWeaponOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	logMark := len(character.ExpenseLog)
	weapon := character.Equipment.RemoveWeapon(input.WeaponID)
	if weapon == nil {
		return nil, errors.NotFoundf("weapon %q not found", input.WeaponID)
	}
	o.refundNuyen(character, weapon.Cost, "Sold "+weapon.Name)

	updated, err := o.persist(ctx, character, logMark)
	if err != nil {
		return nil, err
	}
	return &ledger.RemoveWeaponOutput{Character: updated}, nil
}

// AddArmor purchases an armor piece from the catalog
func (o *Orchestrator) AddArmor(
	ctx context.Context,
	input *ledger.AddArmorInput,
) (*ledger.AddArmorOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	armor, err := o.catalog.GetArmor(ctx, input.Name)
	if err != nil {
		return nil, err
	}

	logMark := len(character.ExpenseLog)
	if err := o.spendNuyen(character, armor.Cost, "Purchased "+armor.Name); err != nil {
		return nil, err
	}

	character.Equipment.Armor = append(character.Equipment.Armor, sr4.Armor{
		ID:        o.idGen.Generate(),
		Name:      armor.Name,
		Ballistic: armor.Ballistic,
		Impact:    armor.Impact,
		Capacity:  armor.Capacity,
		Cost:      armor.Cost,
	})

	updated, err := o.persist(ctx, character, logMark)
	if err != nil {
		return nil, err
	}
	return &ledger.AddArmorOutput{Character: updated}, nil
}

// RemoveArmor sells back an armor piece along with every mod fitted to
// it, refunding the full amount paid for both
func (o *Orchestrator) RemoveArmor(
	ctx context.Context,
	input *ledger.RemoveArmorInput,
) (*ledger.RemoveArmorOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	logMark := len(character.ExpenseLog)
	armor := character.Equipment.RemoveArmor(input.ArmorID)
	if armor == nil {
		return nil, errors.NotFoundf("armor %q not found", input.ArmorID)
	}
	refund := armor.Cost
	for i := range armor.Mods {
		refund += armor.Mods[i].Cost
	}
	o.refundNuyen(character, refund, "Sold "+armor.Name)

	updated, err := o.persist(ctx, character, logMark)
	if err != nil {
		return nil, err
	}
	return &ledger.RemoveArmorOutput{Character: updated}, nil
}

// AddArmorMod fits a modification onto owned armor, bounded by the
// armor's capacity. Rated mods scale cost and capacity use by rating.
func (o *Orchestrator) AddArmorMod(
	ctx context.Context,
	input *ledger.AddArmorModInput,
) (*ledger.AddArmorModOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("mod", input.Mod, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	armor := character.Equipment.FindArmor(input.ArmorID)
	if armor == nil {
		return nil, errors.NotFoundf("armor %q not found", input.ArmorID)
	}

	mod, err := o.catalog.GetArmorMod(ctx, input.Mod)
	if err != nil {
		return nil, err
	}
	for i := range armor.Mods {
		if strings.EqualFold(armor.Mods[i].Name, mod.Name) {
			return nil, errors.Duplicate("armor mod", mod.Name)
		}
	}

	rating, err := resolveRating(input.Rating, mod.MaxRating, "armor mod "+mod.Name)
	if err != nil {
		return nil, err
	}

	cost := mod.Cost
	capacityCost := mod.CapacityCost
	if rating > 0 {
		cost *= rating
		capacityCost *= rating
	}
	if free := armor.Capacity - armor.CapacityUsed; capacityCost > free {
		return nil, errors.OutOfRangef("mod %q needs %d capacity, armor %q has %d free",
			mod.Name, capacityCost, armor.Name, free)
	}

	logMark := len(character.ExpenseLog)
	if err := o.spendNuyen(character, cost, "Purchased "+mod.Name+" for "+armor.Name); err != nil {
		return nil, err
	}

	armor.Mods = append(armor.Mods, sr4.ArmorMod{
		Name:         mod.Name,
		Rating:       rating,
		CapacityCost: capacityCost,
		Cost:         cost,
	})
	armor.CapacityUsed += capacityCost

	updated, err := o.persist(ctx, character, logMark)
	if err != nil {
		return nil, err
	}
	return &ledger.AddArmorModOutput{Character: updated}, nil
}

// RemoveArmorMod strips a modification from owned armor, freeing its
// capacity and refunding its cost
func (o *Orchestrator) RemoveArmorMod(
	ctx context.Context,
	input *ledger.RemoveArmorModInput,
) (*ledger.RemoveArmorModOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	armor := character.Equipment.FindArmor(input.ArmorID)
	if armor == nil {
		return nil, errors.NotFoundf("armor %q not found", input.ArmorID)
	}

	modIndex := -1
	for i := range armor.Mods {
		if strings.EqualFold(armor.Mods[i].Name, input.Mod) {
			modIndex = i
			break
		}
	}
	if modIndex < 0 {
		return nil, errors.NotFoundf("armor mod %q not found on %q", input.Mod, armor.Name)
	}

	logMark := len(character.ExpenseLog)
	mod := armor.Mods[modIndex]
	armor.Mods = append(armor.Mods[:modIndex], armor.Mods[modIndex+1:]...)
	armor.CapacityUsed -= mod.CapacityCost
	o.refundNuyen(character, mod.Cost, "Sold "+mod.Name)

	updated, err := o.persist(ctx, character, logMark)
	if err != nil {
		return nil, err
	}
	return &ledger.RemoveArmorModOutput{Character: updated}, nil
}

// AddCyberware installs cyberware at a grade. The grade multipliers are
// applied once at purchase and the graded essence and nuyen costs are
// stored on the instance; both balances are checked before either moves.
func (o *Orchestrator) AddCyberware(
	ctx context.Context,
	input *ledger.AddCyberwareInput,
) (*ledger.AddCyberwareOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	grade, err := resolveGrade(input.Grade)
	if err != nil {
		return nil, err
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	item, err := o.catalog.GetCyberware(ctx, input.Name)
	if err != nil {
		return nil, err
	}

	rating, err := resolveRating(input.Rating, item.MaxRating, "cyberware "+item.Name)
	if err != nil {
		return nil, err
	}

	cost, essenceCost := gradedCosts(grade, item.Cost, item.EssenceCost, rating)
	if character.Essence < essenceCost {
		return nil, errors.InsufficientEssence(essenceCost, character.Essence)
	}

	logMark := len(character.ExpenseLog)
	if err := o.spendNuyen(character, cost, installReason(item.Name, grade)); err != nil {
		return nil, err
	}
	character.Essence = sr4.RoundEssence(character.Essence - essenceCost)

	character.Equipment.Cyberware = append(character.Equipment.Cyberware, sr4.Cyberware{
		ID:          o.idGen.Generate(),
		Name:        item.Name,
		Grade:       grade,
		Rating:      rating,
		EssenceCost: essenceCost,
		Cost:        cost,
	})

	updated, err := o.persist(ctx, character, logMark)
	if err != nil {
		return nil, err
	}
	return &ledger.AddCyberwareOutput{Character: updated}, nil
}

// RemoveCyberware removes an installed implant, refunding the stored
// nuyen cost and restoring the stored essence cost
func (o *Orchestrator) RemoveCyberware(
	ctx context.Context,
	input *ledger.RemoveCyberwareInput,
) (*ledger.RemoveCyberwareOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	logMark := len(character.ExpenseLog)
	item := character.Equipment.RemoveCyberware(input.CyberwareID)
	if item == nil {
		return nil, errors.NotFoundf("cyberware %q not found", input.CyberwareID)
	}
	character.Essence = sr4.RoundEssence(character.Essence + item.EssenceCost)
	o.refundNuyen(character, item.Cost, "Removed "+item.Name)

	updated, err := o.persist(ctx, character, logMark)
	if err != nil {
		return nil, err
	}
	return &ledger.RemoveCyberwareOutput{Character: updated}, nil
}

// AddBioware installs bioware at a grade, priced the same way as
// cyberware
func (o *Orchestrator) AddBioware(
	ctx context.Context,
	input *ledger.AddBiowareInput,
) (*ledger.AddBiowareOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	grade, err := resolveGrade(input.Grade)
	if err != nil {
		return nil, err
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	item, err := o.catalog.GetBioware(ctx, input.Name)
	if err != nil {
		return nil, err
	}

	rating, err := resolveRating(input.Rating, item.MaxRating, "bioware "+item.Name)
	if err != nil {
		return nil, err
	}

	cost, essenceCost := gradedCosts(grade, item.Cost, item.EssenceCost, rating)
	if character.Essence < essenceCost {
		return nil, errors.InsufficientEssence(essenceCost, character.Essence)
	}

	logMark := len(character.ExpenseLog)
	if err := o.spendNuyen(character, cost, installReason(item.Name, grade)); err != nil {
		return nil, err
	}
	character.Essence = sr4.RoundEssence(character.Essence - essenceCost)

	character.Equipment.Bioware = append(character.Equipment.Bioware, sr4.Bioware{
		ID:          o.idGen.Generate(),
		Name:        item.Name,
		Grade:       grade,
		Rating:      rating,
		EssenceCost: essenceCost,
		Cost:        cost,
	})

	updated, err := o.persist(ctx, character, logMark)
	if err != nil {
		return nil, err
	}
	return &ledger.AddBiowareOutput{Character: updated}, nil
}

// RemoveBioware removes installed bioware, refunding cost and essence
func (o *Orchestrator) RemoveBioware(
	ctx context.Context,
	input *ledger.RemoveBiowareInput,
) (*ledger.RemoveBiowareOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	logMark := len(character.ExpenseLog)
	item := character.Equipment.RemoveBioware(input.BiowareID)
	if item == nil {
		return nil, errors.NotFoundf("bioware %q not found", input.BiowareID)
	}
	character.Essence = sr4.RoundEssence(character.Essence + item.EssenceCost)
	o.refundNuyen(character, item.Cost, "Removed "+item.Name)

	updated, err := o.persist(ctx, character, logMark)
	if err != nil {
		return nil, err
	}
	return &ledger.RemoveBiowareOutput{Character: updated}, nil
}

// AddVehicle purchases a vehicle or drone from the catalog
func (o *Orchestrator) AddVehicle(
	ctx context.Context,
	input *ledger.AddVehicleInput,
) (*ledger.AddVehicleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	vehicle, err := o.catalog.GetVehicle(ctx, input.Name)
	if err != nil {
		return nil, err
	}

	logMark := len(character.ExpenseLog)
	if err := o.spendNuyen(character, vehicle.Cost, "Purchased "+vehicle.Name); err != nil {
		return nil, err
	}

	character.Equipment.Vehicles = append(character.Equipment.Vehicles, sr4.Vehicle{
		ID:       o.idGen.Generate(),
		Name:     vehicle.Name,
		Category: vehicle.Category,
		Handling: vehicle.Handling,
		Body:     vehicle.Body,
		Armor:    vehicle.Armor,
		Pilot:    vehicle.Pilot,
		Cost:     vehicle.Cost,
	})

	updated, err := o.persist(ctx, character, logMark)
	if err != nil {
		return nil, err
	}
	return &ledger.AddVehicleOutput{Character: updated}, nil
}

// RemoveVehicle sells back a vehicle for exactly what it cost
func (o *Orchestrator) RemoveVehicle(
	ctx context.Context,
	input *ledger.RemoveVehicleInput,
) (*ledger.RemoveVehicleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	logMark := len(character.ExpenseLog)
	vehicle := character.Equipment.RemoveVehicle(input.VehicleID)
	if vehicle == nil {
		return nil, errors.NotFoundf("vehicle %q not found", input.VehicleID)
	}
	o.refundNuyen(character, vehicle.Cost, "Sold "+vehicle.Name)

	updated, err := o.persist(ctx, character, logMark)
	if err != nil {
		return nil, err
	}
	return &ledger.RemoveVehicleOutput{Character: updated}, nil
}

// resolveGrade defaults an empty grade to standard and rejects anything
// not in the grade table
func resolveGrade(grade sr4.Grade) (sr4.Grade, error) {
	if grade == "" {
		return sr4.GradeStandard, nil
	}
	if !grade.Valid() {
		return "", errors.InvalidArgumentf("unknown grade %q", grade)
	}
	return grade, nil
}

// resolveRating normalizes a requested rating against a catalog maximum.
// Unrated items (max 0) ignore the request; rated items default to 1 and
// must stay within the maximum.
func resolveRating(requested, maxRating int32, what string) (int32, error) {
	if maxRating == 0 {
		return 0, nil
	}
	if requested == 0 {
		requested = 1
	}
	if requested < 0 || requested > maxRating {
		return 0, errors.OutOfRangef("rating %d for %s must be between 1 and %d", requested, what, maxRating)
	}
	return requested, nil
}

// gradedCosts applies rating scaling then grade multipliers to a catalog
// base price. Rated items multiply the base cost and essence by rating
// before grading.
func gradedCosts(grade sr4.Grade, baseCost int32, baseEssence float64, rating int32) (int32, float64) {
	if rating > 0 {
		baseCost *= rating
		baseEssence *= float64(rating)
	}
	return grade.Cost(baseCost), grade.Essence(baseEssence)
}

func installReason(name string, grade sr4.Grade) string {
	if grade == sr4.GradeStandard {
		return "Installed " + name
	}
	return "Installed " + name + " (" + string(grade) + ")"
}
