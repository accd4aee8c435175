package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/sr4-ledger/internal/entities/sr4"
	"github.com/KirkDiggler/sr4-ledger/internal/services/ledger"
)

var (
	newName        string
	newMetatype    string
	newMetavariant string
	newPlayer      string
	newBuildPoints int32
	newCatalogDir  string
	newRedisAddr   string
	newOutputFile  string
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new character",
	Long: `Create a character in creation mode and write its snapshot JSON.
The metatype's build point price is charged up front and attributes
start at the metatype minimums.`,
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringVar(&newName, "name", "", "character name (required)")
	newCmd.Flags().StringVar(&newMetatype, "metatype", "Human", "metatype from the catalog")
	newCmd.Flags().StringVar(&newMetavariant, "metavariant", "", "metavariant of the chosen metatype")
	newCmd.Flags().StringVar(&newPlayer, "player", "", "owning player ID (required)")
	newCmd.Flags().Int32Var(&newBuildPoints, "bp", sr4.DefaultBuildPoints, "build point budget")
	newCmd.Flags().StringVar(&newCatalogDir, "catalog", "data/catalog", "catalog directory")
	newCmd.Flags().StringVar(&newRedisAddr, "redis", "", "also persist to the Redis store at this address")
	newCmd.Flags().StringVarP(&newOutputFile, "output", "o", "", "snapshot file to write (default stdout)")

	_ = newCmd.MarkFlagRequired("name")
	_ = newCmd.MarkFlagRequired("player")
}

func runNew(_ *cobra.Command, _ []string) error {
	service, _, err := newLedgerService(newCatalogDir, newRedisAddr)
	if err != nil {
		return err
	}
	ctx := context.Background()

	output, err := service.CreateCharacter(ctx, &ledger.CreateCharacterInput{
		PlayerID:    newPlayer,
		Name:        newName,
		Metatype:    newMetatype,
		Metavariant: newMetavariant,
		BuildPoints: newBuildPoints,
	})
	if err != nil {
		return fmt.Errorf("failed to create character: %w", err)
	}
	character := output.Character

	slog.Info("character created",
		"id", character.ID,
		"metatype", character.Metatype,
		"build_points", character.BuildPoints)

	snapshot, err := sr4.MarshalSnapshot(character)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, snapshot, "", "  "); err != nil {
		return fmt.Errorf("failed to format snapshot: %w", err)
	}
	pretty.WriteByte('\n')

	if newOutputFile == "" {
		_, err = os.Stdout.Write(pretty.Bytes())
		return err
	}

	if err := os.WriteFile(newOutputFile, pretty.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot file: %w", err)
	}
	slog.Info("snapshot written", "file", newOutputFile)
	return nil
}
