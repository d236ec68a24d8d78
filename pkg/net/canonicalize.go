package net

// Canonicalize prunes every agent unreachable from the root, splicing
// a fresh Epsilon into each of their surviving edges, then draining
// the Epsilons it just introduced. Adapted from vic-GoDNet's
// Network.Canonicalize (a visited-set DFS from a given root) and
// ApplyErasureCanonization (the splice-in-eraser step); here the root
// is always agent 0's principal, since every net in this package
// exposes exactly that as its external port.
func (n *Net[T]) Canonicalize() {
	alreadyFreed := make(map[int]bool, len(n.Freed))
	for _, f := range n.Freed {
		alreadyFreed[f] = true
	}

	visited := make(map[int]bool, len(n.Agents))
	stack := []int{0}
	for len(stack) > 0 {
		addr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[addr] {
			continue
		}
		visited[addr] = true

		for _, slot := range []Slot{SlotPrincipal, SlotLeft, SlotRight} {
			other := n.Follow(pack[T](addr, slot))
			if !visited[other.Address()] {
				stack = append(stack, other.Address())
			}
		}
	}

	// Any pending redex between two agents this pass is about to
	// prune is discarded rather than reduced: both ends are garbage
	// regardless of what rewrite would have produced.
	keptActive := n.Active[:0]
	for _, addr := range n.Active {
		if visited[addr] {
			keptActive = append(keptActive, addr)
		}
	}
	n.Active = keptActive

	for addr := range n.Agents {
		if visited[addr] || alreadyFreed[addr] {
			continue
		}

		for _, slot := range []Slot{SlotPrincipal, SlotLeft, SlotRight} {
			p := pack[T](addr, slot)
			other := n.Follow(p)
			if other == p || !visited[other.Address()] {
				continue
			}
			n.Disconnect(p)
			era := n.Add(Epsilon)
			n.Connect(pack[T](era, SlotPrincipal), other)
		}
		n.Free(addr)
	}

	n.ReduceAll()
}
