package tapn

import (
	"github.com/Ali1tnk/DAT-evaluation/internal/attack"
)

// Layout constants for the TAPAAL canvas. State places fill rows of five,
// each transition sits under its place, enablement places get their own row.
const (
	gridStep      = 150
	gridWrapX     = 600
	gridRowStep   = 100
	transitionDY  = 50
	enablementRow = 200
)

// Compile translates an attack tree into a timed-arc Petri net.
//
// Every node gets a state place (initially empty) and an attack transition
// guarded by [earliest, earliest+duration]. Firing a node's transition
// deposits a token in its own state place. An internal node's transition
// consumes one token from each child's state place, whatever the gate type,
// so it can only fire once all children are compromised. Each leaf gets a
// marked enablement place feeding its transition, which both lets leaves
// fire from the initial marking and makes each leaf attack single-shot.
func Compile(t *attack.Tree, attrs attack.AttrMap, treeID string) *Document {
	doc := &Document{
		Xmlns: pnmlNamespace,
		Net: Net{
			ID:   "tree_" + treeID,
			Type: netType,
			Name: Name{Text: "Attack Tree " + treeID},
			Page: Page{ID: "Page0"},
		},
	}
	page := &doc.Net.Page

	nodes := t.Nodes()
	leaves := t.Leaves()

	// State places laid out on a grid, wrapping after five per row.
	x, y := 0, 0
	positions := make(map[string]Position, len(nodes))
	for _, id := range nodes {
		pos := Position{X: x, Y: y}
		positions[id] = pos
		page.Places = append(page.Places, Place{
			ID:             PlaceID(id),
			Graphics:       Graphics{Position: pos},
			Name:           Name{Text: placeName(id)},
			InitialMarking: Marking{Text: 0},
			Type:           PlaceType{Text: "int"},
		})
		x += gridStep
		if x > gridWrapX {
			x = 0
			y += gridRowStep
		}
	}

	// Enablement places on their own row, one per leaf.
	for i, id := range leaves {
		page.Places = append(page.Places, Place{
			ID:             EnablementID(id),
			Graphics:       Graphics{Position: Position{X: i * gridStep, Y: enablementRow}},
			Name:           Name{Text: EnablementID(id)},
			InitialMarking: Marking{Text: 1},
			Type:           PlaceType{Text: "int"},
		})
	}

	// One attack transition per node, directly under its state place.
	for _, id := range nodes {
		a := nodeAttrs(attrs, id)
		pos := positions[id]
		page.Transitions = append(page.Transitions, Transition{
			ID:       TransitionID(id),
			Graphics: Graphics{Position: Position{X: pos.X, Y: pos.Y + transitionDY}},
			Name:     Name{Text: TransitionID(id)},
			TimeGuard: TimeGuard{
				Interval: Interval{
					Start: a.Earliest(),
					End:   a.Earliest() + a.Duration,
				},
			},
		})
	}

	// Child state places feed the parent's transition.
	for _, id := range nodes {
		for _, child := range t.Children(id) {
			page.Arcs = append(page.Arcs, Arc{
				ID:          "arc_" + child + "_to_" + id,
				Source:      PlaceID(child),
				Target:      TransitionID(id),
				Inscription: Inscription{Text: 1},
			})
		}
	}

	// Every transition deposits into its own state place.
	for _, id := range nodes {
		page.Arcs = append(page.Arcs, Arc{
			ID:          "arc_" + id + "_compromise",
			Source:      TransitionID(id),
			Target:      PlaceID(id),
			Inscription: Inscription{Text: 1},
		})
	}

	// Enablement places feed the leaf transitions.
	for _, id := range leaves {
		page.Arcs = append(page.Arcs, Arc{
			ID:          "arc_can_attack_" + id,
			Source:      EnablementID(id),
			Target:      TransitionID(id),
			Inscription: Inscription{Text: 1},
		})
	}

	return doc
}

// nodeAttrs looks up a node's attributes, substituting a one-hour action in
// a [0, 10] window when the node has none.
func nodeAttrs(attrs attack.AttrMap, id string) attack.Attributes {
	if a, ok := attrs[id]; ok {
		return a
	}
	return attack.Attributes{TimeInterval: [2]int{0, 10}, Duration: 1}
}
