// Package errors provides the structured error type used across the delve.
//
// Every rule violation a player can trigger is reported with a code, so the
// engine can tell a rejected choice apart from a broken game:
//
//	err := errors.FailedPrecondition("the dragon's lair is empty")
//	err := errors.OutOfRangef("die %d is not in the party", idx)
//
// Rejected choices carry a recoverable code (InvalidArgument, NotFound,
// FailedPrecondition, OutOfRange). The engine reports the message and asks
// again:
//
//	if errors.IsRecoverable(err) {
//	    display.Render(ctx, st.Snapshot(phase, errors.GetMessage(err)))
//	    continue
//	}
//
// Anything else (Internal, ResourceExhausted from an unexpected place,
// Canceled) aborts the delve and is returned to the caller wrapped with
// context:
//
//	if err := st.RerollDungeon(dice); err != nil {
//	    return errors.Wrap(err, "failed to reroll")
//	}
//
// Configuration structs validate themselves with the ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRange("party_dice", cfg.PartyDice, 1, 12, vb)
//	return vb.Build()
package errors
