package main

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/sr4-ledger/internal/catalog"
	"github.com/KirkDiggler/sr4-ledger/internal/engine/sr4rules"
	ledgerorch "github.com/KirkDiggler/sr4-ledger/internal/orchestrators/ledger"
	"github.com/KirkDiggler/sr4-ledger/internal/pkg/clock"
	"github.com/KirkDiggler/sr4-ledger/internal/pkg/idgen"
	"github.com/KirkDiggler/sr4-ledger/internal/redis"
	characterrepo "github.com/KirkDiggler/sr4-ledger/internal/repositories/character"
	"github.com/KirkDiggler/sr4-ledger/internal/services/ledger"
)

// newLedgerService wires the full ledger stack: YAML catalog, rules
// engine, event bus, and the orchestrator. Characters live in an
// in-memory repository unless a Redis address is given. The repository
// is returned alongside the service so commands can seed snapshots
// loaded from disk.
func newLedgerService(catalogDir, redisAddr string) (ledger.Service, characterrepo.Repository, error) {
	gameCatalog, err := catalog.Load(catalogDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	repo, err := newCharacterRepository(redisAddr)
	if err != nil {
		return nil, nil, err
	}

	eventBus := events.NewBus()
	rulesEngine, err := sr4rules.NewAdapter(&sr4rules.AdapterConfig{
		EventBus:   eventBus,
		DiceRoller: dice.DefaultRoller,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create rules engine: %w", err)
	}

	service, err := ledgerorch.New(&ledgerorch.Config{
		CharacterRepo: repo,
		Catalog:       gameCatalog,
		Engine:        rulesEngine,
		IDGenerator:   idgen.NewUUID("char"),
		Clock:         clock.New(),
		EventBus:      eventBus,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create ledger service: %w", err)
	}

	return service, repo, nil
}

func newCharacterRepository(redisAddr string) (characterrepo.Repository, error) {
	if redisAddr == "" {
		return characterrepo.NewInMemory(), nil
	}

	client, err := redis.NewClient(redisAddr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", redisAddr, err)
	}

	repo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis repository: %w", err)
	}
	return repo, nil
}
