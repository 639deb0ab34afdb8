// Package undo records document mutations as reversible steps.
//
// Every change the layer operations make to a sprite goes through a Step:
// a typed struct that applies the change in Execute and restores the exact
// previous state in Undo. Steps capture the state they overwrite when they
// execute, so a step that was undone can be executed again (redo).
//
// Steps are collected by a Transaction, which executes each step as it is
// added. The transaction is the undo unit: committing it keeps the changes,
// rolling it back undoes the applied prefix in reverse order.
//
// # Example
//
//	tx := undo.New("Merge Down")
//	tx.Execute(undo.NewSetCelOpacity(cel, 255))
//	tx.Execute(undo.NewRemoveLayer(top))
//	if err := tx.Commit(); err != nil {
//		return err
//	}
//	// Later:
//	_ = tx.Undo()
package undo

// Kind identifies the type of a step.
type Kind uint8

const (
	// Layer steps
	KindAddLayer           Kind = iota // Insert a layer into a group
	KindRemoveLayer                    // Detach a layer from its group
	KindSetLayerName                   // Rename a layer
	KindSetLayerOpacity                // Change layer opacity
	KindSetLayerBlendMode              // Change layer blend mode
	KindSetLayerVisibility             // Show or hide a layer

	// Cel steps
	KindAddCel         // Attach a cel to a layer
	KindRemoveCel      // Detach a cel from its layer
	KindReplaceImage   // Swap an image in every cel showing it
	KindSetCelPosition // Move a cel
	KindSetCelOpacity  // Change cel opacity
	KindSetCelZIndex   // Change cel z-index
	KindUnlinkCel      // Give a linked cel private content
)

// kindNames maps Kind values to their string representation.
var kindNames = [...]string{
	KindAddLayer:           "AddLayer",
	KindRemoveLayer:        "RemoveLayer",
	KindSetLayerName:       "SetLayerName",
	KindSetLayerOpacity:    "SetLayerOpacity",
	KindSetLayerBlendMode:  "SetLayerBlendMode",
	KindSetLayerVisibility: "SetLayerVisibility",
	KindAddCel:             "AddCel",
	KindRemoveCel:          "RemoveCel",
	KindReplaceImage:       "ReplaceImage",
	KindSetCelPosition:     "SetCelPosition",
	KindSetCelOpacity:      "SetCelOpacity",
	KindSetCelZIndex:       "SetCelZIndex",
	KindUnlinkCel:          "UnlinkCel",
}

// String returns the string representation of a Kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Step is one reversible mutation.
//
// Execute applies the change and Undo reverts it. A step is only ever
// undone right after it was executed (possibly with later steps undone in
// between), and executed again only after being undone.
type Step interface {
	// Kind returns the type of the step.
	Kind() Kind

	// Execute applies the change, capturing whatever Undo needs.
	Execute()

	// Undo restores the state captured by the last Execute.
	Undo()
}

var (
	_ Step = (*AddLayer)(nil)
	_ Step = (*RemoveLayer)(nil)
	_ Step = (*SetLayerName)(nil)
	_ Step = (*SetLayerOpacity)(nil)
	_ Step = (*SetLayerBlendMode)(nil)
	_ Step = (*SetLayerVisibility)(nil)
	_ Step = (*AddCel)(nil)
	_ Step = (*RemoveCel)(nil)
	_ Step = (*ReplaceImage)(nil)
	_ Step = (*SetCelPosition)(nil)
	_ Step = (*SetCelOpacity)(nil)
	_ Step = (*SetCelZIndex)(nil)
	_ Step = (*UnlinkCel)(nil)
)
