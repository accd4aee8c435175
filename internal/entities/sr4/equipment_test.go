package sr4_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/sr4-ledger/internal/entities/sr4"
)

type EquipmentTestSuite struct {
	suite.Suite
}

func TestEquipmentSuite(t *testing.T) {
	suite.Run(t, new(EquipmentTestSuite))
}

func (s *EquipmentTestSuite) TestParseAmmoCapacity() {
	testCases := []struct {
		name     string
		ammo     string
		expected int32
	}{
		{"clip", "15(c)", 15},
		{"cylinder", "6(cy)", 6},
		{"magazine", "38(m)", 38},
		{"belt", "100(belt)", 100},
		{"leading space", " 24(c)", 24},
		{"no container suffix", "10", 10},
		{"melee weapon", "-", 0},
		{"empty", "", 0},
		{"non-numeric", "(c)", 0},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, sr4.ParseAmmoCapacity(tc.ammo))
		})
	}
}

func (s *EquipmentTestSuite) TestWeaponRemoval() {
	equipment := sr4.Equipment{
		Weapons: []sr4.Weapon{
			{ID: "weapon-1", Name: "Ares Predator IV", Cost: 350},
			{ID: "weapon-2", Name: "AK-97", Cost: 500},
		},
	}

	removed := equipment.RemoveWeapon("weapon-1")
	s.Require().NotNil(removed)
	s.Assert().Equal("Ares Predator IV", removed.Name)
	s.Assert().Len(equipment.Weapons, 1)
	s.Assert().Nil(equipment.FindWeapon("weapon-1"))
	s.Assert().NotNil(equipment.FindWeapon("weapon-2"))

	s.Assert().Nil(equipment.RemoveWeapon("weapon-1"))
}

func (s *EquipmentTestSuite) TestGearContents() {
	equipment := sr4.Equipment{
		Gear: []sr4.Gear{
			{ID: "bag", Name: "Duffel Bag", Capacity: 10},
			{ID: "kit", Name: "Medkit", ContainerID: "bag", CapacityCost: 2},
			{ID: "cam", Name: "Micro Camera", ContainerID: "bag", CapacityCost: 1},
			{ID: "loose", Name: "Credstick"},
		},
	}

	contents := equipment.GearContents("bag")
	s.Require().Len(contents, 2)
	s.Assert().Equal("Medkit", contents[0].Name)
	s.Assert().Equal("Micro Camera", contents[1].Name)

	s.Assert().Empty(equipment.GearContents("kit"))
}

func (s *EquipmentTestSuite) TestGearSubtreeVisitsChildrenFirst() {
	equipment := sr4.Equipment{
		Gear: []sr4.Gear{
			{ID: "bag", Capacity: 20},
			{ID: "case", ContainerID: "bag", Capacity: 5, CapacityCost: 3},
			{ID: "chip", ContainerID: "case", CapacityCost: 1},
		},
	}

	subtree := equipment.GearSubtree("bag")
	s.Assert().Equal([]string{"chip", "case", "bag"}, subtree)
}

func (s *EquipmentTestSuite) TestGearContains() {
	equipment := sr4.Equipment{
		Gear: []sr4.Gear{
			{ID: "bag", Capacity: 20},
			{ID: "case", ContainerID: "bag", Capacity: 5, CapacityCost: 3},
			{ID: "chip", ContainerID: "case", CapacityCost: 1},
			{ID: "loose"},
		},
	}

	s.Assert().True(equipment.GearContains("bag", "case"))
	s.Assert().True(equipment.GearContains("bag", "chip"))
	s.Assert().True(equipment.GearContains("case", "chip"))
	s.Assert().False(equipment.GearContains("case", "bag"))
	s.Assert().False(equipment.GearContains("bag", "loose"))
	s.Assert().False(equipment.GearContains("bag", "bag"))
}

func (s *EquipmentTestSuite) TestRemainingCapacity() {
	container := sr4.Gear{ID: "bag", Capacity: 3, CapacityUsed: 2}
	s.Assert().Equal(int32(1), container.RemainingCapacity())
}

func (s *EquipmentTestSuite) TestMartialArtRemoval() {
	equipment := sr4.Equipment{
		MartialArts: []sr4.MartialArt{
			{Style: "Karate", Rating: 1, BP: 5, Techniques: []string{"Kick Attack"}},
		},
	}

	s.Assert().NotNil(equipment.FindMartialArt("karate"))

	removed := equipment.RemoveMartialArt("Karate")
	s.Require().NotNil(removed)
	s.Assert().Equal(int32(5), removed.BP)
	s.Assert().Empty(equipment.MartialArts)
}
