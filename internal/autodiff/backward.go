package autodiff

import "github.com/pkg/errors"

// Backward computes the gradient of v with respect to every node reachable
// from it.
//
// Algorithm:
//  1. Topologically order the graph below v
//  2. Reset the gradient of every derived node and seed v.grad = 1
//  3. Walk the order in reverse (v first, leaves last) and apply each
//     node's rule once, adding its contribution onto its operands
//
// By the time a node's rule runs every node consuming it has already
// finished, so contributions from several consumers add up.
//
// Leaf gradients are never reset here: calling Backward again, on the same
// root or on another root sharing leaves, accumulates into them. Callers
// zero leaf gradients between independent training steps.
func (v *Value) Backward() error {
	topo, err := TopologicalOrder(v)
	if err != nil {
		return errors.WithMessage(err, "backward")
	}

	for _, node := range topo {
		if !node.IsLeaf() {
			node.grad = 0
		}
	}
	v.grad = 1

	for i := len(topo) - 1; i >= 0; i-- {
		topo[i].propagate()
	}
	return nil
}

// propagate applies the node's rule, adding its gradient onto its operands.
func (v *Value) propagate() {
	if v.IsLeaf() {
		return
	}

	a := v.operands[0]
	var bData float64
	if len(v.operands) > 1 {
		bData = v.operands[1].data
	}

	gradA, gradB := v.op.Backward(a.data, bData, v.data, v.grad)
	a.grad += gradA
	if len(v.operands) > 1 {
		v.operands[1].grad += gradB
	}
}
