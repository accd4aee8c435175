package ledger

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/sr4-ledger/internal/entities/sr4"
	"github.com/KirkDiggler/sr4-ledger/internal/errors"
	"github.com/KirkDiggler/sr4-ledger/internal/services/ledger"
)

// Gear and lifestyle operations. Gear forms a containment tree: items
// bought into a container consume its capacity, and removing a container
// removes and refunds everything inside it.

// AddGear purchases gear, optionally nested inside an owned container.
// Quantity multiplies the cost and the capacity taken; rated gear scales
// its unit cost by rating.
func (o *Orchestrator) AddGear(
	ctx context.Context,
	input *ledger.AddGearInput,
) (*ledger.AddGearOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if input.Quantity < 0 {
		vb.InvalidField("quantity", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	item, err := o.catalog.GetGear(ctx, input.Name)
	if err != nil {
		return nil, err
	}

	rating, err := resolveRating(input.Rating, item.MaxRating, "gear "+item.Name)
	if err != nil {
		return nil, err
	}

	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}

	unitCost := item.Cost
	if rating > 0 {
		unitCost *= rating
	}
	cost := unitCost * quantity
	capacityCost := item.CapacityCost * quantity

	var container *sr4.Gear
	if input.ContainerID != "" {
		container = character.Equipment.FindGear(input.ContainerID)
		if container == nil {
			return nil, errors.NotFoundf("container %q not found", input.ContainerID)
		}
		if container.Capacity == 0 {
			return nil, errors.InvalidArgumentf("gear %q is not a container", container.Name)
		}
		if free := container.RemainingCapacity(); capacityCost > free {
			return nil, errors.OutOfRangef("%s needs %d capacity, container %q has %d free",
				item.Name, capacityCost, container.Name, free)
		}
	}

	logMark := len(character.ExpenseLog)
	if err := o.spendNuyen(character, cost, purchaseReason(item.Name, quantity)); err != nil {
		return nil, err
	}

	character.Equipment.Gear = append(character.Equipment.Gear, sr4.Gear{
		ID:           o.idGen.Generate(),
		Name:         item.Name,
		Category:     item.Category,
		Rating:       rating,
		Quantity:     quantity,
		Cost:         cost,
		Capacity:     item.Capacity,
		CapacityCost: capacityCost,
		ContainerID:  input.ContainerID,
	})
	if container != nil {
		container.CapacityUsed += capacityCost
	}

	updated, err := o.persist(ctx, character, logMark)
	if err != nil {
		return nil, err
	}
	return &ledger.AddGearOutput{Character: updated}, nil
}

// RemoveGear sells back a gear item. Containers are emptied depth first:
// every contained item is removed and refunded along with the container
// itself, as one combined refund.
func (o *Orchestrator) RemoveGear(
	ctx context.Context,
	input *ledger.RemoveGearInput,
) (*ledger.RemoveGearOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	root := character.Equipment.FindGear(input.GearID)
	if root == nil {
		return nil, errors.NotFoundf("gear %q not found", input.GearID)
	}
	rootName := root.Name
	rootCapacityCost := root.CapacityCost
	parentID := root.ContainerID

	logMark := len(character.ExpenseLog)

	var refund int32
	for _, id := range character.Equipment.GearSubtree(input.GearID) {
		if removed := character.Equipment.RemoveGearByID(id); removed != nil {
			refund += removed.Cost
		}
	}
	if parentID != "" {
		if parent := character.Equipment.FindGear(parentID); parent != nil {
			parent.CapacityUsed -= rootCapacityCost
		}
	}
	o.refundNuyen(character, refund, "Sold "+rootName)

	updated, err := o.persist(ctx, character, logMark)
	if err != nil {
		return nil, err
	}
	return &ledger.RemoveGearOutput{Character: updated}, nil
}

// MoveGear moves an item between containers, updating capacity on both
// ends. An item can never move into itself or into its own contents, and
// an empty container ID moves it to the top level.
func (o *Orchestrator) MoveGear(
	ctx context.Context,
	input *ledger.MoveGearInput,
) (*ledger.MoveGearOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	item := character.Equipment.FindGear(input.GearID)
	if item == nil {
		return nil, errors.NotFoundf("gear %q not found", input.GearID)
	}

	if input.ContainerID != "" {
		if input.ContainerID == item.ID {
			return nil, errors.InvalidArgumentf("cannot move %q into itself", item.Name)
		}
		if character.Equipment.GearContains(item.ID, input.ContainerID) {
			return nil, errors.InvalidArgumentf("cannot move %q into its own contents", item.Name)
		}

		target := character.Equipment.FindGear(input.ContainerID)
		if target == nil {
			return nil, errors.NotFoundf("container %q not found", input.ContainerID)
		}
		if target.Capacity == 0 {
			return nil, errors.InvalidArgumentf("gear %q is not a container", target.Name)
		}
		free := target.RemainingCapacity()
		if item.ContainerID == target.ID {
			free += item.CapacityCost
		}
		if item.CapacityCost > free {
			return nil, errors.OutOfRangef("%s needs %d capacity, container %q has %d free",
				item.Name, item.CapacityCost, target.Name, free)
		}
	}

	if item.ContainerID != "" {
		if previous := character.Equipment.FindGear(item.ContainerID); previous != nil {
			previous.CapacityUsed -= item.CapacityCost
		}
	}
	item.ContainerID = input.ContainerID
	if input.ContainerID != "" {
		if target := character.Equipment.FindGear(input.ContainerID); target != nil {
			target.CapacityUsed += item.CapacityCost
		}
	}

	updated, err := o.persist(ctx, character, len(character.ExpenseLog))
	if err != nil {
		return nil, err
	}
	return &ledger.MoveGearOutput{Character: updated}, nil
}

// SetLifestyle rents a lifestyle for a number of months, replacing any
// current one. The previous prepaid cost comes back and the new cost is
// charged, with the balance checked over the combined movement so the
// whole swap is all-or-nothing.
func (o *Orchestrator) SetLifestyle(
	ctx context.Context,
	input *ledger.SetLifestyleInput,
) (*ledger.SetLifestyleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if input.Months < 0 {
		vb.InvalidField("months", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	lifestyle, err := o.catalog.GetLifestyle(ctx, input.Name)
	if err != nil {
		return nil, err
	}

	months := input.Months
	if months == 0 {
		months = 1
	}
	cost := lifestyle.MonthlyCost * months

	var refund int32
	if character.Equipment.Lifestyle != nil {
		refund = character.Equipment.Lifestyle.Cost
	}
	if character.Nuyen+refund < cost {
		return nil, errors.Insufficient("nuyen", int(cost), int(character.Nuyen+refund))
	}

	logMark := len(character.ExpenseLog)
	if previous := character.Equipment.Lifestyle; previous != nil {
		character.Equipment.Lifestyle = nil
		o.refundNuyen(character, previous.Cost, "Lifestyle refund: "+previous.Name)
	}
	if err := o.spendNuyen(character, cost, lifestyleReason(lifestyle.Name, months)); err != nil {
		return nil, err
	}
	character.Equipment.Lifestyle = &sr4.Lifestyle{
		Name:        lifestyle.Name,
		MonthlyCost: lifestyle.MonthlyCost,
		Months:      months,
		Cost:        cost,
	}

	updated, err := o.persist(ctx, character, logMark)
	if err != nil {
		return nil, err
	}
	return &ledger.SetLifestyleOutput{Character: updated}, nil
}

// RemoveLifestyle cancels the current lifestyle and refunds the full
// prepaid cost
func (o *Orchestrator) RemoveLifestyle(
	ctx context.Context,
	input *ledger.RemoveLifestyleInput,
) (*ledger.RemoveLifestyleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	lifestyle := character.Equipment.Lifestyle
	if lifestyle == nil {
		return nil, errors.NotFound("no lifestyle to remove")
	}

	logMark := len(character.ExpenseLog)
	character.Equipment.Lifestyle = nil
	o.refundNuyen(character, lifestyle.Cost, "Lifestyle refund: "+lifestyle.Name)

	updated, err := o.persist(ctx, character, logMark)
	if err != nil {
		return nil, err
	}
	return &ledger.RemoveLifestyleOutput{Character: updated}, nil
}

func purchaseReason(name string, quantity int32) string {
	if quantity > 1 {
		return fmt.Sprintf("Purchased %dx %s", quantity, name)
	}
	return "Purchased " + name
}

func lifestyleReason(name string, months int32) string {
	if months == 1 {
		return "Lifestyle: " + name + " (1 month)"
	}
	return fmt.Sprintf("Lifestyle: %s (%d months)", name, months)
}
