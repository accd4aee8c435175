package sr4

import (
	"strconv"
	"strings"
)

// Equipment groups everything a character owns. Costs stored on items are
// the amounts actually charged at purchase time (grade multipliers already
// applied), so removal refunds exactly what was paid.
type Equipment struct {
	Weapons     []Weapon
	Armor       []Armor
	Cyberware   []Cyberware
	Bioware     []Bioware
	Vehicles    []Vehicle
	Gear        []Gear
	MartialArts []MartialArt
	Lifestyle   *Lifestyle
}

// Weapon is one purchased weapon
type Weapon struct {
	ID          string
	Name        string
	Category    string
	Damage      string
	AP          string
	Mode        string
	Ammo        string
	CurrentAmmo int32
	Cost        int32
}

// Armor is one purchased armor piece with a modification list bounded by
// capacity
type Armor struct {
	ID           string
	Name         string
	Ballistic    int32
	Impact       int32
	Capacity     int32
	CapacityUsed int32
	Mods         []ArmorMod
	Cost         int32
}

// ArmorMod is one installed armor modification
type ArmorMod struct {
	Name         string
	Rating       int32
	CapacityCost int32
	Cost         int32
}

// Cyberware is one installed implant. EssenceCost and Cost carry the
// graded values computed at purchase.
type Cyberware struct {
	ID          string
	Name        string
	Grade       Grade
	Rating      int32
	EssenceCost float64
	Cost        int32
}

// Bioware is one installed bioware implant
type Bioware struct {
	ID          string
	Name        string
	Grade       Grade
	Rating      int32
	EssenceCost float64
	Cost        int32
}

// Vehicle is one purchased vehicle or drone
type Vehicle struct {
	ID       string
	Name     string
	Category string
	Handling int32
	Body     int32
	Armor    int32
	Pilot    int32
	Cost     int32
}

// Gear is one purchased gear item. Containment forms a tree through
// ContainerID; an empty ContainerID means the item sits at the top level.
type Gear struct {
	ID           string
	Name         string
	Category     string
	Rating       int32
	Quantity     int32
	Cost         int32
	Capacity     int32
	CapacityUsed int32
	CapacityCost int32
	ContainerID  string
}

// RemainingCapacity returns the unused capacity of a container item
func (g *Gear) RemainingCapacity() int32 {
	return g.Capacity - g.CapacityUsed
}

// MartialArt is one studied style with its learned techniques
type MartialArt struct {
	Style      string
	Rating     int32
	BP         int32
	Techniques []string
}

// Lifestyle is the character's one prepaid living arrangement
type Lifestyle struct {
	Name        string
	MonthlyCost int32
	Months      int32
	Cost        int32
}

// FindWeapon returns the weapon with the given instance ID, or nil
func (e *Equipment) FindWeapon(id string) *Weapon {
	for i := range e.Weapons {
		if e.Weapons[i].ID == id {
			return &e.Weapons[i]
		}
	}
	return nil
}

// RemoveWeapon removes and returns the weapon with the given instance ID,
// or nil if absent
func (e *Equipment) RemoveWeapon(id string) *Weapon {
	for i := range e.Weapons {
		if e.Weapons[i].ID == id {
			removed := e.Weapons[i]
			e.Weapons = append(e.Weapons[:i], e.Weapons[i+1:]...)
			return &removed
		}
	}
	return nil
}

// FindArmor returns the armor with the given instance ID, or nil
func (e *Equipment) FindArmor(id string) *Armor {
	for i := range e.Armor {
		if e.Armor[i].ID == id {
			return &e.Armor[i]
		}
	}
	return nil
}

// RemoveArmor removes and returns the armor with the given instance ID,
// or nil if absent
func (e *Equipment) RemoveArmor(id string) *Armor {
	for i := range e.Armor {
		if e.Armor[i].ID == id {
			removed := e.Armor[i]
			e.Armor = append(e.Armor[:i], e.Armor[i+1:]...)
			return &removed
		}
	}
	return nil
}

// FindCyberware returns the implant with the given instance ID, or nil
func (e *Equipment) FindCyberware(id string) *Cyberware {
	for i := range e.Cyberware {
		if e.Cyberware[i].ID == id {
			return &e.Cyberware[i]
		}
	}
	return nil
}

// RemoveCyberware removes and returns the implant with the given instance
// ID, or nil if absent
func (e *Equipment) RemoveCyberware(id string) *Cyberware {
	for i := range e.Cyberware {
		if e.Cyberware[i].ID == id {
			removed := e.Cyberware[i]
			e.Cyberware = append(e.Cyberware[:i], e.Cyberware[i+1:]...)
			return &removed
		}
	}
	return nil
}

// FindBioware returns the bioware with the given instance ID, or nil
func (e *Equipment) FindBioware(id string) *Bioware {
	for i := range e.Bioware {
		if e.Bioware[i].ID == id {
			return &e.Bioware[i]
		}
	}
	return nil
}

// RemoveBioware removes and returns the bioware with the given instance
// ID, or nil if absent
func (e *Equipment) RemoveBioware(id string) *Bioware {
	for i := range e.Bioware {
		if e.Bioware[i].ID == id {
			removed := e.Bioware[i]
			e.Bioware = append(e.Bioware[:i], e.Bioware[i+1:]...)
			return &removed
		}
	}
	return nil
}

// FindVehicle returns the vehicle with the given instance ID, or nil
func (e *Equipment) FindVehicle(id string) *Vehicle {
	for i := range e.Vehicles {
		if e.Vehicles[i].ID == id {
			return &e.Vehicles[i]
		}
	}
	return nil
}

// RemoveVehicle removes and returns the vehicle with the given instance
// ID, or nil if absent
func (e *Equipment) RemoveVehicle(id string) *Vehicle {
	for i := range e.Vehicles {
		if e.Vehicles[i].ID == id {
			removed := e.Vehicles[i]
			e.Vehicles = append(e.Vehicles[:i], e.Vehicles[i+1:]...)
			return &removed
		}
	}
	return nil
}

// FindGear returns the gear item with the given instance ID, or nil
func (e *Equipment) FindGear(id string) *Gear {
	for i := range e.Gear {
		if e.Gear[i].ID == id {
			return &e.Gear[i]
		}
	}
	return nil
}

// GearContents returns the items directly contained by the given
// container
func (e *Equipment) GearContents(containerID string) []*Gear {
	var contents []*Gear
	for i := range e.Gear {
		if e.Gear[i].ContainerID == containerID {
			contents = append(contents, &e.Gear[i])
		}
	}
	return contents
}

// GearSubtree returns the given item's instance ID plus the IDs of
// everything transitively contained in it, children before parents so
// removal can refund leaves first.
func (e *Equipment) GearSubtree(id string) []string {
	var ids []string
	for _, child := range e.GearContents(id) {
		ids = append(ids, e.GearSubtree(child.ID)...)
	}
	return append(ids, id)
}

// GearContains reports whether ancestorID transitively contains id
func (e *Equipment) GearContains(ancestorID, id string) bool {
	item := e.FindGear(id)
	for item != nil && item.ContainerID != "" {
		if item.ContainerID == ancestorID {
			return true
		}
		item = e.FindGear(item.ContainerID)
	}
	return false
}

// RemoveGearByID removes and returns the single gear item with the given
// instance ID without touching its contents; callers handle the subtree.
func (e *Equipment) RemoveGearByID(id string) *Gear {
	for i := range e.Gear {
		if e.Gear[i].ID == id {
			removed := e.Gear[i]
			e.Gear = append(e.Gear[:i], e.Gear[i+1:]...)
			return &removed
		}
	}
	return nil
}

// FindMartialArt returns the studied style with the given name
// (case-insensitive), or nil
func (e *Equipment) FindMartialArt(style string) *MartialArt {
	for i := range e.MartialArts {
		if strings.EqualFold(e.MartialArts[i].Style, style) {
			return &e.MartialArts[i]
		}
	}
	return nil
}

// RemoveMartialArt removes and returns the studied style with the given
// name, or nil if absent
func (e *Equipment) RemoveMartialArt(style string) *MartialArt {
	for i := range e.MartialArts {
		if strings.EqualFold(e.MartialArts[i].Style, style) {
			removed := e.MartialArts[i]
			e.MartialArts = append(e.MartialArts[:i], e.MartialArts[i+1:]...)
			return &removed
		}
	}
	return nil
}

// ParseAmmoCapacity extracts the round count from an ammo capacity string
// such as "15(c)" or "6(cy)". Strings without a leading number parse to 0.
func ParseAmmoCapacity(ammo string) int32 {
	ammo = strings.TrimSpace(ammo)
	end := 0
	for end < len(ammo) && ammo[end] >= '0' && ammo[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	rounds, err := strconv.Atoi(ammo[:end])
	if err != nil {
		return 0
	}
	return int32(rounds)
}
