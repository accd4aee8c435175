package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/sr4-ledger/internal/entities/sr4"
	"github.com/KirkDiggler/sr4-ledger/internal/errors"
	"github.com/KirkDiggler/sr4-ledger/internal/services/ledger"
)

type EquipmentTestSuite struct {
	ledgerSuite
}

func TestEquipmentSuite(t *testing.T) {
	suite.Run(t, new(EquipmentTestSuite))
}

func (s *EquipmentTestSuite) TestAddWeapon_Success() {
	char := s.createCharacterWithFunds(20)

	output, err := s.orchestrator.AddWeapon(s.ctx, &ledger.AddWeaponInput{
		ID:   char.ID,
		Name: "Ares Predator IV",
	})

	s.Require().NoError(err)
	s.Equal(int32(89650), output.Character.Nuyen)
	s.Require().Len(output.Character.Equipment.Weapons, 1)

	weapon := output.Character.Equipment.Weapons[0]
	s.NotEmpty(weapon.ID)
	s.Equal("Ares Predator IV", weapon.Name)
	s.Equal("Heavy Pistols", weapon.Category)
	s.Equal("5P", weapon.Damage)
	s.Equal(int32(15), weapon.CurrentAmmo)
	s.Equal(int32(350), weapon.Cost)

	entry := s.lastExpense(output.Character)
	s.Equal(sr4.ExpenseNuyen, entry.Type)
	s.Equal(int32(-350), entry.Amount)
	s.Equal("Purchased Ares Predator IV", entry.Reason)
}

func (s *EquipmentTestSuite) TestAddWeapon_InsufficientNuyen() {
	char := s.createCharacter()

	output, err := s.orchestrator.AddWeapon(s.ctx, &ledger.AddWeaponInput{
		ID:   char.ID,
		Name: "Ares Predator IV",
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsResourceExhausted(err))
	s.Contains(err.Error(), "Not enough nuyen (need 350, have 0)")
}

func (s *EquipmentTestSuite) TestAddWeapon_UnknownWeapon() {
	char := s.createCharacterWithFunds(20)

	output, err := s.orchestrator.AddWeapon(s.ctx, &ledger.AddWeaponInput{
		ID:   char.ID,
		Name: "Panther XXL",
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsNotFound(err))
}

func (s *EquipmentTestSuite) TestRemoveWeapon_RefundsSalePrice() {
	char := s.createCharacterWithFunds(20)

	addOutput, err := s.orchestrator.AddWeapon(s.ctx, &ledger.AddWeaponInput{
		ID:   char.ID,
		Name: "Ares Predator IV",
	})
	s.Require().NoError(err)
	weaponID := addOutput.Character.Equipment.Weapons[0].ID

	output, err := s.orchestrator.RemoveWeapon(s.ctx, &ledger.RemoveWeaponInput{
		ID:       char.ID,
		WeaponID: weaponID,
	})

	s.Require().NoError(err)
	s.Empty(output.Character.Equipment.Weapons)
	s.Equal(int32(90000), output.Character.Nuyen)

	entry := s.lastExpense(output.Character)
	s.Equal(int32(350), entry.Amount)
	s.Equal("Sold Ares Predator IV", entry.Reason)
}

func (s *EquipmentTestSuite) TestRemoveWeapon_NotFound() {
	char := s.createCharacter()

	output, err := s.orchestrator.RemoveWeapon(s.ctx, &ledger.RemoveWeaponInput{
		ID:       char.ID,
		WeaponID: "missing",
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsNotFound(err))
	s.Contains(err.Error(), `weapon "missing" not found`)
}

func (s *EquipmentTestSuite) TestAddArmor_Success() {
	char := s.createCharacterWithFunds(20)

	output, err := s.orchestrator.AddArmor(s.ctx, &ledger.AddArmorInput{
		ID:   char.ID,
		Name: "Armor Jacket",
	})

	s.Require().NoError(err)
	s.Equal(int32(89100), output.Character.Nuyen)
	s.Require().Len(output.Character.Equipment.Armor, 1)

	armor := output.Character.Equipment.Armor[0]
	s.Equal("Armor Jacket", armor.Name)
	s.Equal(int32(8), armor.Ballistic)
	s.Equal(int32(6), armor.Impact)
	s.Equal(int32(8), armor.Capacity)
	s.Equal(int32(0), armor.CapacityUsed)
	s.Equal(int32(900), armor.Cost)
}

func (s *EquipmentTestSuite) TestAddArmorMod_Success() {
	char := s.createCharacterWithFunds(20)

	addOutput, err := s.orchestrator.AddArmor(s.ctx, &ledger.AddArmorInput{ID: char.ID, Name: "Armor Jacket"})
	s.Require().NoError(err)
	armorID := addOutput.Character.Equipment.Armor[0].ID

	output, err := s.orchestrator.AddArmorMod(s.ctx, &ledger.AddArmorModInput{
		ID:      char.ID,
		ArmorID: armorID,
		Mod:     "Fire Resistance",
		Rating:  3,
	})

	s.Require().NoError(err)
	armor := output.Character.Equipment.FindArmor(armorID)
	s.Require().NotNil(armor)
	s.Require().Len(armor.Mods, 1)
	s.Equal("Fire Resistance", armor.Mods[0].Name)
	s.Equal(int32(3), armor.Mods[0].Rating)
	s.Equal(int32(150), armor.Mods[0].Cost)
	s.Equal(int32(3), armor.Mods[0].CapacityCost)
	s.Equal(int32(3), armor.CapacityUsed)
	s.Equal(int32(88950), output.Character.Nuyen)

	entry := s.lastExpense(output.Character)
	s.Equal("Purchased Fire Resistance for Armor Jacket", entry.Reason)
}

func (s *EquipmentTestSuite) TestAddArmorMod_DefaultsToRatingOne() {
	char := s.createCharacterWithFunds(20)

	addOutput, err := s.orchestrator.AddArmor(s.ctx, &ledger.AddArmorInput{ID: char.ID, Name: "Armor Jacket"})
	s.Require().NoError(err)
	armorID := addOutput.Character.Equipment.Armor[0].ID

	output, err := s.orchestrator.AddArmorMod(s.ctx, &ledger.AddArmorModInput{
		ID:      char.ID,
		ArmorID: armorID,
		Mod:     "Nonconductivity",
	})

	s.Require().NoError(err)
	armor := output.Character.Equipment.FindArmor(armorID)
	s.Equal(int32(1), armor.Mods[0].Rating)
	s.Equal(int32(50), armor.Mods[0].Cost)
	s.Equal(int32(1), armor.CapacityUsed)
}

func (s *EquipmentTestSuite) TestAddArmorMod_CapacityExceeded() {
	char := s.createCharacterWithFunds(20)

	addOutput, err := s.orchestrator.AddArmor(s.ctx, &ledger.AddArmorInput{ID: char.ID, Name: "Armor Vest"})
	s.Require().NoError(err)
	armorID := addOutput.Character.Equipment.Armor[0].ID

	output, err := s.orchestrator.AddArmorMod(s.ctx, &ledger.AddArmorModInput{
		ID:      char.ID,
		ArmorID: armorID,
		Mod:     "Thermal Damping",
		Rating:  6,
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsOutOfRange(err))
	s.Contains(err.Error(), `mod "Thermal Damping" needs 6 capacity, armor "Armor Vest" has 4 free`)
}

func (s *EquipmentTestSuite) TestAddArmorMod_Duplicate() {
	char := s.createCharacterWithFunds(20)

	addOutput, err := s.orchestrator.AddArmor(s.ctx, &ledger.AddArmorInput{ID: char.ID, Name: "Armor Jacket"})
	s.Require().NoError(err)
	armorID := addOutput.Character.Equipment.Armor[0].ID

	_, err = s.orchestrator.AddArmorMod(s.ctx, &ledger.AddArmorModInput{
		ID: char.ID, ArmorID: armorID, Mod: "Fire Resistance", Rating: 2,
	})
	s.Require().NoError(err)

	output, err := s.orchestrator.AddArmorMod(s.ctx, &ledger.AddArmorModInput{
		ID: char.ID, ArmorID: armorID, Mod: "Fire Resistance", Rating: 3,
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsAlreadyExists(err))
}

func (s *EquipmentTestSuite) TestAddArmorMod_ArmorNotFound() {
	char := s.createCharacterWithFunds(20)

	output, err := s.orchestrator.AddArmorMod(s.ctx, &ledger.AddArmorModInput{
		ID:      char.ID,
		ArmorID: "missing",
		Mod:     "Fire Resistance",
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsNotFound(err))
	s.Contains(err.Error(), `armor "missing" not found`)
}

func (s *EquipmentTestSuite) TestRemoveArmorMod_Success() {
	char := s.createCharacterWithFunds(20)

	addOutput, err := s.orchestrator.AddArmor(s.ctx, &ledger.AddArmorInput{ID: char.ID, Name: "Armor Jacket"})
	s.Require().NoError(err)
	armorID := addOutput.Character.Equipment.Armor[0].ID

	_, err = s.orchestrator.AddArmorMod(s.ctx, &ledger.AddArmorModInput{
		ID: char.ID, ArmorID: armorID, Mod: "Fire Resistance", Rating: 3,
	})
	s.Require().NoError(err)

	output, err := s.orchestrator.RemoveArmorMod(s.ctx, &ledger.RemoveArmorModInput{
		ID:      char.ID,
		ArmorID: armorID,
		Mod:     "Fire Resistance",
	})

	s.Require().NoError(err)
	armor := output.Character.Equipment.FindArmor(armorID)
	s.Empty(armor.Mods)
	s.Equal(int32(0), armor.CapacityUsed)
	s.Equal(int32(89100), output.Character.Nuyen)

	entry := s.lastExpense(output.Character)
	s.Equal(int32(150), entry.Amount)
	s.Equal("Sold Fire Resistance", entry.Reason)
}

func (s *EquipmentTestSuite) TestRemoveArmorMod_NotFound() {
	char := s.createCharacterWithFunds(20)

	addOutput, err := s.orchestrator.AddArmor(s.ctx, &ledger.AddArmorInput{ID: char.ID, Name: "Armor Jacket"})
	s.Require().NoError(err)
	armorID := addOutput.Character.Equipment.Armor[0].ID

	output, err := s.orchestrator.RemoveArmorMod(s.ctx, &ledger.RemoveArmorModInput{
		ID:      char.ID,
		ArmorID: armorID,
		Mod:     "Fire Resistance",
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsNotFound(err))
	s.Contains(err.Error(), `armor mod "Fire Resistance" not found on "Armor Jacket"`)
}

func (s *EquipmentTestSuite) TestRemoveArmor_RefundsModsToo() {
	char := s.createCharacterWithFunds(20)

	addOutput, err := s.orchestrator.AddArmor(s.ctx, &ledger.AddArmorInput{ID: char.ID, Name: "Armor Jacket"})
	s.Require().NoError(err)
	armorID := addOutput.Character.Equipment.Armor[0].ID

	_, err = s.orchestrator.AddArmorMod(s.ctx, &ledger.AddArmorModInput{
		ID: char.ID, ArmorID: armorID, Mod: "Fire Resistance", Rating: 3,
	})
	s.Require().NoError(err)

	output, err := s.orchestrator.RemoveArmor(s.ctx, &ledger.RemoveArmorInput{
		ID:      char.ID,
		ArmorID: armorID,
	})

	s.Require().NoError(err)
	s.Empty(output.Character.Equipment.Armor)
	s.Equal(int32(90000), output.Character.Nuyen)

	entry := s.lastExpense(output.Character)
	s.Equal(int32(1050), entry.Amount)
	s.Equal("Sold Armor Jacket", entry.Reason)
}

func (s *EquipmentTestSuite) TestAddCyberware_StandardGrade() {
	char := s.createCharacterWithFunds(20)

	output, err := s.orchestrator.AddCyberware(s.ctx, &ledger.AddCyberwareInput{
		ID:   char.ID,
		Name: "Datajack",
	})

	s.Require().NoError(err)
	s.InDelta(5.9, output.Character.Essence, 0.0001)
	s.Equal(int32(89280), output.Character.Nuyen)
	s.Require().Len(output.Character.Equipment.Cyberware, 1)

	ware := output.Character.Equipment.Cyberware[0]
	s.Equal("Datajack", ware.Name)
	s.Equal(sr4.GradeStandard, ware.Grade)
	s.InDelta(0.1, ware.EssenceCost, 0.0001)
	s.Equal(int32(720), ware.Cost)

	entry := s.lastExpense(output.Character)
	s.Equal("Installed Datajack", entry.Reason)
}

func (s *EquipmentTestSuite) TestAddCyberware_AlphawareGrade() {
	char := s.createCharacterWithFunds(20)

	output, err := s.orchestrator.AddCyberware(s.ctx, &ledger.AddCyberwareInput{
		ID:    char.ID,
		Name:  "Wired Reflexes",
		Grade: sr4.GradeAlphaware,
	})

	s.Require().NoError(err)
	s.InDelta(4.4, output.Character.Essence, 0.0001)
	s.Equal(int32(68000), output.Character.Nuyen)

	ware := output.Character.Equipment.Cyberware[0]
	s.Equal(sr4.GradeAlphaware, ware.Grade)
	s.InDelta(1.6, ware.EssenceCost, 0.0001)
	s.Equal(int32(22000), ware.Cost)

	entry := s.lastExpense(output.Character)
	s.Equal("Installed Wired Reflexes (alphaware)", entry.Reason)
}

func (s *EquipmentTestSuite) TestAddCyberware_GradeTable() {
	testCases := []struct {
		grade       sr4.Grade
		wantEssence float64
		wantCost    int32
	}{
		{grade: sr4.GradeStandard, wantEssence: 2.0, wantCost: 11000},
		{grade: sr4.GradeAlphaware, wantEssence: 1.6, wantCost: 22000},
		{grade: sr4.GradeBetaware, wantEssence: 1.4, wantCost: 44000},
		{grade: sr4.GradeDeltaware, wantEssence: 1.0, wantCost: 110000},
		{grade: sr4.GradeUsed, wantEssence: 2.4, wantCost: 5500},
	}

	for _, tc := range testCases {
		s.Run(string(tc.grade), func() {
			char := s.createCharacterWithFunds(30)

			output, err := s.orchestrator.AddCyberware(s.ctx, &ledger.AddCyberwareInput{
				ID:    char.ID,
				Name:  "Wired Reflexes",
				Grade: tc.grade,
			})

			s.Require().NoError(err)
			ware := output.Character.Equipment.Cyberware[0]
			s.InDelta(tc.wantEssence, ware.EssenceCost, 0.0001)
			s.Equal(tc.wantCost, ware.Cost)
			s.InDelta(sr4.DefaultEssence-tc.wantEssence, output.Character.Essence, 0.0001)
			s.Equal(char.Nuyen-tc.wantCost, output.Character.Nuyen)
		})
	}
}

func (s *EquipmentTestSuite) TestAddCyberware_RatingScalesBeforeGrade() {
	char := s.createCharacterWithFunds(20)

	output, err := s.orchestrator.AddCyberware(s.ctx, &ledger.AddCyberwareInput{
		ID:     char.ID,
		Name:   "Cybereyes",
		Grade:  sr4.GradeAlphaware,
		Rating: 2,
	})

	s.Require().NoError(err)
	ware := output.Character.Equipment.Cyberware[0]
	s.Equal(int32(2), ware.Rating)
	s.Equal(int32(2000), ware.Cost)
	s.InDelta(0.32, ware.EssenceCost, 0.0001)
	s.InDelta(5.68, output.Character.Essence, 0.0001)
}

func (s *EquipmentTestSuite) TestAddCyberware_RatingOutOfRange() {
	char := s.createCharacterWithFunds(20)

	output, err := s.orchestrator.AddCyberware(s.ctx, &ledger.AddCyberwareInput{
		ID:     char.ID,
		Name:   "Cybereyes",
		Rating: 5,
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsOutOfRange(err))
	s.Contains(err.Error(), "rating 5 for cyberware Cybereyes must be between 1 and 4")
}

func (s *EquipmentTestSuite) TestAddCyberware_UnknownGrade() {
	char := s.createCharacterWithFunds(20)

	output, err := s.orchestrator.AddCyberware(s.ctx, &ledger.AddCyberwareInput{
		ID:    char.ID,
		Name:  "Datajack",
		Grade: sr4.Grade("gammaware"),
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), `unknown grade "gammaware"`)
}

func (s *EquipmentTestSuite) TestAddCyberware_InsufficientEssence() {
	char := s.createCharacterWithFunds(20)

	for i := 0; i < 2; i++ {
		_, err := s.orchestrator.AddCyberware(s.ctx, &ledger.AddCyberwareInput{
			ID:    char.ID,
			Name:  "Wired Reflexes",
			Grade: sr4.GradeUsed,
		})
		s.Require().NoError(err)
	}

	output, err := s.orchestrator.AddCyberware(s.ctx, &ledger.AddCyberwareInput{
		ID:    char.ID,
		Name:  "Wired Reflexes",
		Grade: sr4.GradeUsed,
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsResourceExhausted(err))
	s.Contains(err.Error(), "Not enough essence (need 2.4, have 1.2)")
}

func (s *EquipmentTestSuite) TestRemoveCyberware_RestoresEssence() {
	char := s.createCharacterWithFunds(20)

	addOutput, err := s.orchestrator.AddCyberware(s.ctx, &ledger.AddCyberwareInput{
		ID:   char.ID,
		Name: "Datajack",
	})
	s.Require().NoError(err)
	wareID := addOutput.Character.Equipment.Cyberware[0].ID

	output, err := s.orchestrator.RemoveCyberware(s.ctx, &ledger.RemoveCyberwareInput{
		ID:          char.ID,
		CyberwareID: wareID,
	})

	s.Require().NoError(err)
	s.Empty(output.Character.Equipment.Cyberware)
	s.InDelta(6.0, output.Character.Essence, 0.0001)
	s.Equal(int32(90000), output.Character.Nuyen)

	entry := s.lastExpense(output.Character)
	s.Equal(int32(720), entry.Amount)
	s.Equal("Removed Datajack", entry.Reason)
}

func (s *EquipmentTestSuite) TestRemoveCyberware_NotFound() {
	char := s.createCharacter()

	output, err := s.orchestrator.RemoveCyberware(s.ctx, &ledger.RemoveCyberwareInput{
		ID:          char.ID,
		CyberwareID: "missing",
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsNotFound(err))
}

func (s *EquipmentTestSuite) TestAddBioware_Success() {
	char := s.createCharacterWithFunds(20)

	output, err := s.orchestrator.AddBioware(s.ctx, &ledger.AddBiowareInput{
		ID:     char.ID,
		Name:   "Muscle Toner",
		Rating: 2,
	})

	s.Require().NoError(err)
	s.InDelta(5.6, output.Character.Essence, 0.0001)
	s.Equal(int32(74000), output.Character.Nuyen)

	ware := output.Character.Equipment.Bioware[0]
	s.Equal("Muscle Toner", ware.Name)
	s.Equal(int32(2), ware.Rating)
	s.Equal(int32(16000), ware.Cost)
	s.InDelta(0.4, ware.EssenceCost, 0.0001)
}

func (s *EquipmentTestSuite) TestRemoveBioware_RestoresEssence() {
	char := s.createCharacterWithFunds(20)

	addOutput, err := s.orchestrator.AddBioware(s.ctx, &ledger.AddBiowareInput{
		ID:   char.ID,
		Name: "Platelet Factories",
	})
	s.Require().NoError(err)
	wareID := addOutput.Character.Equipment.Bioware[0].ID

	output, err := s.orchestrator.RemoveBioware(s.ctx, &ledger.RemoveBiowareInput{
		ID:        char.ID,
		BiowareID: wareID,
	})

	s.Require().NoError(err)
	s.Empty(output.Character.Equipment.Bioware)
	s.InDelta(6.0, output.Character.Essence, 0.0001)
	s.Equal(int32(90000), output.Character.Nuyen)
}

func (s *EquipmentTestSuite) TestAddVehicle_Success() {
	char := s.createCharacterWithFunds(20)

	output, err := s.orchestrator.AddVehicle(s.ctx, &ledger.AddVehicleInput{
		ID:   char.ID,
		Name: "Suzuki Mirage",
	})

	s.Require().NoError(err)
	s.Equal(int32(81500), output.Character.Nuyen)
	s.Require().Len(output.Character.Equipment.Vehicles, 1)

	vehicle := output.Character.Equipment.Vehicles[0]
	s.Equal("Suzuki Mirage", vehicle.Name)
	s.Equal("Bikes", vehicle.Category)
	s.Equal(int32(8500), vehicle.Cost)

	entry := s.lastExpense(output.Character)
	s.Equal("Purchased Suzuki Mirage", entry.Reason)
}

func (s *EquipmentTestSuite) TestRemoveVehicle_Success() {
	char := s.createCharacterWithFunds(20)

	addOutput, err := s.orchestrator.AddVehicle(s.ctx, &ledger.AddVehicleInput{
		ID:   char.ID,
		Name: "Suzuki Mirage",
	})
	s.Require().NoError(err)
	vehicleID := addOutput.Character.Equipment.Vehicles[0].ID

	output, err := s.orchestrator.RemoveVehicle(s.ctx, &ledger.RemoveVehicleInput{
		ID:        char.ID,
		VehicleID: vehicleID,
	})

	s.Require().NoError(err)
	s.Empty(output.Character.Equipment.Vehicles)
	s.Equal(int32(90000), output.Character.Nuyen)

	entry := s.lastExpense(output.Character)
	s.Equal("Sold Suzuki Mirage", entry.Reason)
}

// Buying and selling everything lands the balance and essence exactly
// where they started.
func (s *EquipmentTestSuite) TestEquipmentRoundTrip_ConservesResources() {
	char := s.createCharacterWithFunds(20)

	weaponOutput, err := s.orchestrator.AddWeapon(s.ctx, &ledger.AddWeaponInput{ID: char.ID, Name: "AK-97"})
	s.Require().NoError(err)
	weaponID := weaponOutput.Character.Equipment.Weapons[0].ID

	wareOutput, err := s.orchestrator.AddCyberware(s.ctx, &ledger.AddCyberwareInput{
		ID:    char.ID,
		Name:  "Wired Reflexes",
		Grade: sr4.GradeAlphaware,
	})
	s.Require().NoError(err)
	wareID := wareOutput.Character.Equipment.Cyberware[0].ID

	bioOutput, err := s.orchestrator.AddBioware(s.ctx, &ledger.AddBiowareInput{
		ID:     char.ID,
		Name:   "Muscle Toner",
		Rating: 3,
	})
	s.Require().NoError(err)
	bioID := bioOutput.Character.Equipment.Bioware[0].ID

	_, err = s.orchestrator.RemoveWeapon(s.ctx, &ledger.RemoveWeaponInput{ID: char.ID, WeaponID: weaponID})
	s.Require().NoError(err)
	_, err = s.orchestrator.RemoveCyberware(s.ctx, &ledger.RemoveCyberwareInput{ID: char.ID, CyberwareID: wareID})
	s.Require().NoError(err)
	removeOutput, err := s.orchestrator.RemoveBioware(s.ctx, &ledger.RemoveBiowareInput{ID: char.ID, BiowareID: bioID})
	s.Require().NoError(err)

	s.Equal(int32(90000), removeOutput.Character.Nuyen)
	s.InDelta(6.0, removeOutput.Character.Essence, 0.0001)
}
