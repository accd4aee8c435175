package character

import (
	"context"
	"sync"

	"github.com/KirkDiggler/sr4-ledger/internal/entities/sr4"
	"github.com/KirkDiggler/sr4-ledger/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*sr4.Character
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*sr4.Character),
	}
}

// Create stores a new character
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	stored, err := sr4.CloneCharacter(input.Character)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Character.ID]; exists {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", input.Character.ID)
	}

	r.store[input.Character.ID] = stored

	return &CreateOutput{Character: input.Character}, nil
}

// Get retrieves a character by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	r.mu.RLock()
	stored, exists := r.store[input.ID]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.NotFoundf("character with ID %s not found", input.ID)
	}

	// Return a copy to prevent external modification
	character, err := sr4.CloneCharacter(stored)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Character: character}, nil
}

// Update replaces an existing character
func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	stored, err := sr4.CloneCharacter(input.Character)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Character.ID]; !exists {
		return nil, errors.NotFoundf("character with ID %s not found", input.Character.ID)
	}

	r.store[input.Character.ID] = stored

	return &UpdateOutput{Character: input.Character}, nil
}

// Delete removes a character
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFoundf("character with ID %s not found", input.ID)
	}

	delete(r.store, input.ID)

	return &DeleteOutput{}, nil
}

// ListByPlayerID retrieves all characters owned by a player
func (r *InMemoryRepository) ListByPlayerID(
	_ context.Context,
	input ListByPlayerIDInput,
) (*ListByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	characters := make([]*sr4.Character, 0)
	for _, stored := range r.store {
		if stored.PlayerID != input.PlayerID {
			continue
		}
		character, err := sr4.CloneCharacter(stored)
		if err != nil {
			return nil, err
		}
		characters = append(characters, character)
	}

	return &ListByPlayerIDOutput{Characters: characters}, nil
}
