package sr4

import (
	"encoding/json"
	"fmt"
)

// MarshalSnapshot serializes a character for persistence or interchange.
// Round-tripping through UnmarshalSnapshot reproduces a field-for-field
// equal character, including gear containment references by id.
func MarshalSnapshot(character *Character) ([]byte, error) {
	if character == nil {
		return nil, fmt.Errorf("character is required")
	}
	data, err := json.Marshal(character)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal character %s: %w", character.ID, err)
	}
	return data, nil
}

// UnmarshalSnapshot deserializes a character snapshot
func UnmarshalSnapshot(data []byte) (*Character, error) {
	var character Character
	if err := json.Unmarshal(data, &character); err != nil {
		return nil, fmt.Errorf("failed to unmarshal character: %w", err)
	}
	return &character, nil
}

// CloneCharacter returns a deep copy of a character by round-tripping
// through the snapshot form. Ledger operations mutate a clone and swap it
// in on success so failures never leave a partially-updated character
// visible.
func CloneCharacter(character *Character) (*Character, error) {
	data, err := MarshalSnapshot(character)
	if err != nil {
		return nil, err
	}
	return UnmarshalSnapshot(data)
}
