package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/sr4-ledger/internal/engine"
	"github.com/KirkDiggler/sr4-ledger/internal/engine/sr4rules"
)

var (
	rollPool int32
	rollEdge int32
)

var rollCmd = &cobra.Command{
	Use:   "roll",
	Short: "Roll a dice pool",
	Long: `Roll a d6 pool and score it: fives and sixes are hits, more ones
than half the pool is a glitch. Edge dice are added to the pool before
the roll.`,
	RunE: runRoll,
}

func init() {
	rollCmd.Flags().Int32Var(&rollPool, "pool", 0, "number of dice to roll (required)")
	rollCmd.Flags().Int32Var(&rollEdge, "edge", 0, "edge dice added to the pool")

	_ = rollCmd.MarkFlagRequired("pool")
}

func runRoll(_ *cobra.Command, _ []string) error {
	adapter, err := sr4rules.NewAdapter(&sr4rules.AdapterConfig{
		EventBus:   events.NewBus(),
		DiceRoller: dice.DefaultRoller,
	})
	if err != nil {
		return fmt.Errorf("failed to create rules engine: %w", err)
	}

	output, err := adapter.RollPool(context.Background(), &engine.RollPoolInput{
		Pool:     rollPool,
		Modifier: rollEdge,
	})
	if err != nil {
		return fmt.Errorf("failed to roll pool: %w", err)
	}

	fmt.Printf("Rolled %d dice: %v\n", len(output.Rolls), output.Rolls)
	fmt.Printf("Hits: %d\n", output.Hits)

	switch {
	case output.CriticalGlitch:
		fmt.Println("CRITICAL GLITCH")
	case output.Glitch:
		fmt.Println("Glitch")
	}
	return nil
}
