// Command validate-catalog lints a catalog content directory and prints
// every problem the loader would reject.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/KirkDiggler/sr4-ledger/internal/catalog"
)

func main() {
	dir := "data/catalog"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	fmt.Println("Validating catalog directory:", dir)

	content, err := catalog.LoadContent(dir)
	if err != nil {
		log.Fatal("Catalog is invalid: ", err)
	}

	fmt.Println("Catalog is valid")
	fmt.Printf("  metatypes:     %d\n", len(content.Metatypes))
	fmt.Printf("  qualities:     %d\n", len(content.Qualities))
	fmt.Printf("  skills:        %d\n", len(content.Skills))
	fmt.Printf("  spells:        %d\n", len(content.Spells))
	fmt.Printf("  complex forms: %d\n", len(content.ComplexForms))
	fmt.Printf("  powers:        %d\n", len(content.Powers))
	fmt.Printf("  weapons:       %d\n", len(content.Weapons))
	fmt.Printf("  armor:         %d\n", len(content.Armor))
	fmt.Printf("  armor mods:    %d\n", len(content.ArmorMods))
	fmt.Printf("  cyberware:     %d\n", len(content.Cyberware))
	fmt.Printf("  bioware:       %d\n", len(content.Bioware))
	fmt.Printf("  vehicles:      %d\n", len(content.Vehicles))
	fmt.Printf("  gear:          %d\n", len(content.Gear))
	fmt.Printf("  lifestyles:    %d\n", len(content.Lifestyles))
	fmt.Printf("  martial arts:  %d\n", len(content.MartialArts))
	fmt.Printf("  mentors:       %d\n", len(content.Mentors))
}
