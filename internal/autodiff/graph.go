package autodiff

import "github.com/pkg/errors"

type visitState uint8

const (
	unvisited visitState = iota
	onPath
	done
)

// frame is one entry of the explicit DFS stack: a node and the index of
// the next operand to visit.
type frame struct {
	node *Value
	next int
}

// TopologicalOrder returns every node reachable from root, each exactly
// once, such that a node comes after all of its operands. root is last.
//
// The walk is an iterative post-order DFS keyed by node identity, so
// shared sub-expressions are visited once and deep graphs do not grow the
// goroutine stack. Reaching a node that is still on the current DFS path
// means the graph is not a DAG and fails with ErrGraphCycle.
func TopologicalOrder(root *Value) ([]*Value, error) {
	if root == nil {
		return nil, errors.Wrap(ErrInvalidOperand, "topological order: nil root")
	}

	state := map[*Value]visitState{root: onPath}
	order := make([]*Value, 0, 16)
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.node.operands) {
			child := top.node.operands[top.next]
			top.next++

			switch state[child] {
			case onPath:
				return nil, errors.Wrapf(ErrGraphCycle, "%v is reachable from itself", child)
			case done:
				continue
			}
			state[child] = onPath
			stack = append(stack, frame{node: child})
			continue
		}

		state[top.node] = done
		order = append(order, top.node)
		stack = stack[:len(stack)-1]
	}

	return order, nil
}

// ZeroGradGraph resets the gradient of every node reachable from root.
func ZeroGradGraph(root *Value) error {
	topo, err := TopologicalOrder(root)
	if err != nil {
		return errors.WithMessage(err, "zero grad")
	}
	for _, v := range topo {
		v.grad = 0
	}
	return nil
}
