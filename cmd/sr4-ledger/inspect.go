package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/sr4-ledger/internal/engine"
	"github.com/KirkDiggler/sr4-ledger/internal/entities/sr4"
	characterrepo "github.com/KirkDiggler/sr4-ledger/internal/repositories/character"
	"github.com/KirkDiggler/sr4-ledger/internal/services/ledger"
)

var (
	inspectFile       string
	inspectCatalogDir string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Inspect a character snapshot",
	Long: `Load a snapshot JSON file and print the character's identity,
mode, resource balances, and derived projections.`,
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectFile, "file", "f", "", "snapshot file to inspect (required)")
	inspectCmd.Flags().StringVar(&inspectCatalogDir, "catalog", "data/catalog", "catalog directory")

	_ = inspectCmd.MarkFlagRequired("file")
}

func runInspect(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(inspectFile)
	if err != nil {
		return fmt.Errorf("failed to read snapshot file: %w", err)
	}

	character, err := sr4.UnmarshalSnapshot(data)
	if err != nil {
		return fmt.Errorf("failed to parse snapshot: %w", err)
	}

	service, repo, err := newLedgerService(inspectCatalogDir, "")
	if err != nil {
		return err
	}
	ctx := context.Background()

	if _, err := repo.Create(ctx, characterrepo.CreateInput{Character: character}); err != nil {
		return fmt.Errorf("failed to load snapshot into repository: %w", err)
	}

	output, err := service.GetDerivedStats(ctx, &ledger.GetDerivedStatsInput{ID: character.ID})
	if err != nil {
		return fmt.Errorf("failed to compute derived stats: %w", err)
	}

	printCharacter(output.Character, output.Stats)
	return nil
}

func printCharacter(character *sr4.Character, stats *engine.CalculateDerivedStatsOutput) {
	name := character.Name
	if character.Alias != "" {
		name = fmt.Sprintf("%s %q", character.Name, character.Alias)
	}

	fmt.Printf("%s\n", name)
	fmt.Printf("  Player:    %s\n", character.PlayerID)
	fmt.Printf("  Metatype:  %s", character.Metatype)
	if character.Metavariant != "" {
		fmt.Printf(" (%s)", character.Metavariant)
	}
	fmt.Println()
	fmt.Printf("  Mode:      %s\n", character.Status)
	fmt.Println()

	fmt.Println("Resources")
	if character.Status == sr4.StatusCreation {
		fmt.Printf("  Build Points: %d spent, %d remaining\n",
			character.BuildPointsSpent.Total(), stats.RemainingBuildPoints)
	}
	fmt.Printf("  Karma:        %d (lifetime %d)\n", character.Karma, character.TotalKarma)
	fmt.Printf("  Nuyen:        %d\n", character.Nuyen)
	fmt.Printf("  Essence:      %.2f\n", stats.EssenceRemaining)
	fmt.Printf("  Edge:         %d remaining\n", stats.EdgeRemaining)
	if character.Magic != nil && character.Magic.PowerPoints > 0 {
		fmt.Printf("  Power Points: %g free\n", stats.PowerPointsFree)
	}
	fmt.Println()

	fmt.Println("Attributes")
	for _, code := range sr4.StandardAttributes() {
		value := character.Attributes[code]
		if value == nil {
			continue
		}
		fmt.Printf("  %s %d", code, value.Rating())
		if augmented := value.AugmentedRating(); augmented != value.Rating() {
			fmt.Printf(" (%d)", augmented)
		}
		fmt.Println()
	}
	fmt.Println()

	fmt.Println("Derived")
	fmt.Printf("  Condition:      %d physical / %d stun boxes\n", stats.PhysicalMonitor, stats.StunMonitor)
	fmt.Printf("  Wound Modifier: %d\n", stats.WoundModifier)
	fmt.Printf("  Initiative:     %d (augmented %d)\n", stats.Initiative, stats.AugmentedInitiative)
	fmt.Printf("  Armor:          %d ballistic / %d impact\n", stats.BallisticArmor, stats.ImpactArmor)
	if stats.EncumbrancePenalty != 0 {
		fmt.Printf("  Encumbrance:    %d\n", stats.EncumbrancePenalty)
	}
	fmt.Printf("  Classification: %s\n", stats.Classification)
	fmt.Printf("  Street Cred:    %d\n", stats.StreetCred)

	if len(character.ExpenseLog) > 0 {
		fmt.Println()
		fmt.Printf("Ledger (%d entries, last %d shown)\n",
			len(character.ExpenseLog), lastEntriesShown(character.ExpenseLog))
		for _, entry := range tailEntries(character.ExpenseLog) {
			fmt.Printf("  %+d %s  %s\n", entry.Amount, entry.Type, entry.Reason)
		}
	}
}

const ledgerTailLength = 10

func lastEntriesShown(log []sr4.ExpenseEntry) int {
	if len(log) < ledgerTailLength {
		return len(log)
	}
	return ledgerTailLength
}

func tailEntries(log []sr4.ExpenseEntry) []sr4.ExpenseEntry {
	if len(log) <= ledgerTailLength {
		return log
	}
	return log[len(log)-ledgerTailLength:]
}
