package sr4

import "strings"

// Magic is the capability block for awakened characters. Present iff the
// character has a magical-type quality; the MAG attribute itself lives in
// Character.Attributes while this block exists.
type Magic struct {
	Tradition       string
	Mentor          string
	InitiateGrade   int32
	PowerPoints     float64
	PowerPointsUsed float64
	Spells          []Spell
	Powers          []AdeptPower
	Spirits         []Spirit
	Foci            []Focus
	Metamagics      []string
}

// Spell is one learned spell
type Spell struct {
	Name     string
	Category string
}

// AdeptPower is one purchased adept power; Cost is in power points
type AdeptPower struct {
	Name   string
	Rating int32
	Cost   float64
}

// Spirit is one summoned spirit with its remaining services
type Spirit struct {
	ID       string
	Type     string
	Force    int32
	Services int32
	Bound    bool
}

// Focus is one purchased focus
type Focus struct {
	ID    string
	Name  string
	Type  string
	Force int32
	Cost  int32
}

// Resonance is the capability block for technomancers. Present iff the
// character has a technomancer-type quality; the RES attribute lives in
// Character.Attributes while this block exists.
type Resonance struct {
	Stream          string
	SubmersionGrade int32
	ComplexForms    []ComplexForm
	Sprites         []Sprite
	Echoes          []string
}

// ComplexForm is one threaded complex form
type ComplexForm struct {
	Name   string
	Target string
}

// Sprite is one compiled sprite with its remaining tasks
type Sprite struct {
	ID         string
	Type       string
	Rating     int32
	Tasks      int32
	Registered bool
}

// FindSpell returns the spell with the given name (case-insensitive),
// or nil
func (m *Magic) FindSpell(name string) *Spell {
	if m == nil {
		return nil
	}
	for i := range m.Spells {
		if strings.EqualFold(m.Spells[i].Name, name) {
			return &m.Spells[i]
		}
	}
	return nil
}

// RemoveSpell removes the named spell and reports whether it was present
func (m *Magic) RemoveSpell(name string) bool {
	for i := range m.Spells {
		if strings.EqualFold(m.Spells[i].Name, name) {
			m.Spells = append(m.Spells[:i], m.Spells[i+1:]...)
			return true
		}
	}
	return false
}

// FindPower returns the adept power with the given name
// (case-insensitive), or nil
func (m *Magic) FindPower(name string) *AdeptPower {
	if m == nil {
		return nil
	}
	for i := range m.Powers {
		if strings.EqualFold(m.Powers[i].Name, name) {
			return &m.Powers[i]
		}
	}
	return nil
}

// RemovePower removes and returns the named adept power, or nil if absent
func (m *Magic) RemovePower(name string) *AdeptPower {
	for i := range m.Powers {
		if strings.EqualFold(m.Powers[i].Name, name) {
			removed := m.Powers[i]
			m.Powers = append(m.Powers[:i], m.Powers[i+1:]...)
			return &removed
		}
	}
	return nil
}

// PowerPointsFree returns the unspent power point balance
func (m *Magic) PowerPointsFree() float64 {
	if m == nil {
		return 0
	}
	return m.PowerPoints - m.PowerPointsUsed
}

// FindSpirit returns the spirit with the given instance ID, or nil
func (m *Magic) FindSpirit(id string) *Spirit {
	if m == nil {
		return nil
	}
	for i := range m.Spirits {
		if m.Spirits[i].ID == id {
			return &m.Spirits[i]
		}
	}
	return nil
}

// RemoveSpirit removes the spirit with the given instance ID and reports
// whether it was present
func (m *Magic) RemoveSpirit(id string) bool {
	for i := range m.Spirits {
		if m.Spirits[i].ID == id {
			m.Spirits = append(m.Spirits[:i], m.Spirits[i+1:]...)
			return true
		}
	}
	return false
}

// FindFocus returns the focus with the given instance ID, or nil
func (m *Magic) FindFocus(id string) *Focus {
	if m == nil {
		return nil
	}
	for i := range m.Foci {
		if m.Foci[i].ID == id {
			return &m.Foci[i]
		}
	}
	return nil
}

// RemoveFocus removes and returns the focus with the given instance ID,
// or nil if absent
func (m *Magic) RemoveFocus(id string) *Focus {
	for i := range m.Foci {
		if m.Foci[i].ID == id {
			removed := m.Foci[i]
			m.Foci = append(m.Foci[:i], m.Foci[i+1:]...)
			return &removed
		}
	}
	return nil
}

// HasMetamagic reports whether the named metamagic is already learned
func (m *Magic) HasMetamagic(name string) bool {
	if m == nil {
		return false
	}
	for _, known := range m.Metamagics {
		if strings.EqualFold(known, name) {
			return true
		}
	}
	return false
}

// FindComplexForm returns the complex form with the given name
// (case-insensitive), or nil
func (r *Resonance) FindComplexForm(name string) *ComplexForm {
	if r == nil {
		return nil
	}
	for i := range r.ComplexForms {
		if strings.EqualFold(r.ComplexForms[i].Name, name) {
			return &r.ComplexForms[i]
		}
	}
	return nil
}

// RemoveComplexForm removes the named complex form and reports whether it
// was present
func (r *Resonance) RemoveComplexForm(name string) bool {
	for i := range r.ComplexForms {
		if strings.EqualFold(r.ComplexForms[i].Name, name) {
			r.ComplexForms = append(r.ComplexForms[:i], r.ComplexForms[i+1:]...)
			return true
		}
	}
	return false
}

// FindSprite returns the sprite with the given instance ID, or nil
func (r *Resonance) FindSprite(id string) *Sprite {
	if r == nil {
		return nil
	}
	for i := range r.Sprites {
		if r.Sprites[i].ID == id {
			return &r.Sprites[i]
		}
	}
	return nil
}

// RemoveSprite removes the sprite with the given instance ID and reports
// whether it was present
func (r *Resonance) RemoveSprite(id string) bool {
	for i := range r.Sprites {
		if r.Sprites[i].ID == id {
			r.Sprites = append(r.Sprites[:i], r.Sprites[i+1:]...)
			return true
		}
	}
	return false
}

// HasEcho reports whether the named echo is already learned
func (r *Resonance) HasEcho(name string) bool {
	if r == nil {
		return false
	}
	for _, known := range r.Echoes {
		if strings.EqualFold(known, name) {
			return true
		}
	}
	return false
}
