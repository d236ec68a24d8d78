// Package net implements the interaction-net backend (components H, I,
// J): a flat agent arena addressed by packed integer ports, a
// single-threaded active-pair drain loop, and the Term<->Net compiler
// (see pkg/compile) built on top of it.
//
// Ports carry no pointers and no atomics — the net is a value the
// caller owns exclusively for the duration of a build/reduce/read-back
// cycle (spec.md §5), in contrast to vic-GoDNet's deltanet.Network,
// which guards every node with CAS state and routes rewrites through a
// worker-goroutine scheduler. The vocabulary below (Delta for the
// multiplicative agent, Zeta for variable duplication, Epsilon for the
// eraser) is the original Rust evaluator's naming, kept because it
// maps 1:1 onto the annihilate/commute/erase rule dispatch in
// rewrite.go; vic-GoDNet's Fan/Replicator/Eraser names describe the
// same three roles under its heavier level/delta sharing scheme, which
// this package does not use.
package net

// Slot identifies one of an agent's three ports.
type Slot uint8

const (
	SlotPrincipal Slot = iota
	SlotLeft
	SlotRight
)

func (s Slot) String() string {
	switch s {
	case SlotPrincipal:
		return "principal"
	case SlotLeft:
		return "left"
	case SlotRight:
		return "right"
	default:
		return "invalid-slot"
	}
}

// AgentType distinguishes the four agent roles. Root is unique (always
// address 0) and never participates in a rewrite. Equal types
// annihilate on contact; unequal types commute, unless one side is
// Epsilon, which erases the other.
type AgentType uint8

const (
	Root AgentType = iota
	Epsilon
	Delta
	Zeta
)

func (t AgentType) String() string {
	switch t {
	case Root:
		return "Root"
	case Epsilon:
		return "Epsilon"
	case Delta:
		return "Delta"
	case Zeta:
		return "Zeta"
	default:
		return "Unknown"
	}
}

// Unsigned bounds the storage width used to pack a port's address and
// slot into a single integer, mirroring original_source's
// impl_storage! instantiation over u8..u128 (Go has no native u128, so
// the widest offered here is uint64).
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

func maxOf[T Unsigned]() T {
	var zero T
	return ^zero
}

// MaxNodes returns how many agent addresses a port of width T can
// encode: (T's max value >> 2) + 1, since two low bits are reserved for
// slot. The largest encodable address is one less.
func MaxNodes[T Unsigned]() int {
	return int(maxOf[T]()>>2) + 1
}

// Port is a packed (address, slot) pair: address<<2 | slot.
type Port[T Unsigned] struct {
	raw T
}

func pack[T Unsigned](address int, slot Slot) Port[T] {
	return Port[T]{raw: T(address)<<2 | T(slot)}
}

// PortOf constructs the port addressing agent addr's given slot. It is
// the external counterpart of the package-private pack helper, needed
// by pkg/compile (component I) to name specific ports of agents it
// just allocated rather than only ever reading whatever a slot
// currently follows to.
func PortOf[T Unsigned](addr int, slot Slot) Port[T] {
	return pack[T](addr, slot)
}

// Address is the agent index this port belongs to.
func (p Port[T]) Address() int { return int(p.raw >> 2) }

// Slot is which of the agent's three ports this is.
func (p Port[T]) Slot() Slot { return Slot(p.raw & 3) }

// IsRoot reports whether this port belongs to the net's root agent.
func (p Port[T]) IsRoot() bool { return p.Address() == 0 }

// Agent is one node in the net: three packed ports and a type tag.
type Agent[T Unsigned] struct {
	Principal Port[T]
	Left      Port[T]
	Right     Port[T]
	Type      AgentType
}

func (a *Agent[T]) slot(s Slot) Port[T] {
	switch s {
	case SlotLeft:
		return a.Left
	case SlotRight:
		return a.Right
	default:
		return a.Principal
	}
}

func (a *Agent[T]) setSlot(s Slot, p Port[T]) {
	switch s {
	case SlotLeft:
		a.Left = p
	case SlotRight:
		a.Right = p
	default:
		a.Principal = p
	}
}

// Net is the flat agent arena: Agents is the storage, Freed the reuse
// list, Active the set of addresses whose principal port currently
// faces another agent's principal port (a redex awaiting reduction).
type Net[T Unsigned] struct {
	Agents []Agent[T]
	Freed  []int
	Active []int

	trace traceState
}

// New builds a net whose agent 0 is Root: its left and right ports are
// self-connected to each other, and its principal port — left a plain
// self-loop by Add's default — is the net's external port, to be wired
// to a compiled term's entry port by the caller.
func New[T Unsigned]() *Net[T] {
	n := &Net[T]{}
	root := n.Add(Root)
	n.Connect(n.Agents[root].Left, n.Agents[root].Right)
	return n
}

// RootPort is the net's external connection point: Root's principal.
func (n *Net[T]) RootPort() Port[T] {
	return pack[T](0, SlotPrincipal)
}

// Add allocates a new agent, reusing a freed address if one is
// available, and initializes every port to a self-loop.
func (n *Net[T]) Add(ty AgentType) int {
	var addr int
	if l := len(n.Freed); l > 0 {
		addr = n.Freed[l-1]
		n.Freed = n.Freed[:l-1]
	} else {
		addr = len(n.Agents)
		n.Agents = append(n.Agents, Agent[T]{})
	}

	n.Agents[addr] = Agent[T]{
		Principal: pack[T](addr, SlotPrincipal),
		Left:      pack[T](addr, SlotLeft),
		Right:     pack[T](addr, SlotRight),
		Type:      ty,
	}
	return addr
}

// Free returns addr to the reuse list, resetting its three ports to
// self-loops first. The reset matters beyond hygiene: a stale Active
// entry referencing addr (queued against a connection that a later
// rewrite already superseded, e.g. the repeated rewiring of a shared
// binder port as pkg/compile splices in Zeta agents for each
// additional use) must not be mistaken for a live redex against
// whatever the agent's pre-free wiring happened to still say.
func (n *Net[T]) Free(addr int) {
	n.Agents[addr] = Agent[T]{
		Principal: pack[T](addr, SlotPrincipal),
		Left:      pack[T](addr, SlotLeft),
		Right:     pack[T](addr, SlotRight),
	}
	n.Freed = append(n.Freed, addr)
}

// Follow returns the port currently written into p's slot — the other
// end of the edge p participates in (or p itself, if unconnected).
func (n *Net[T]) Follow(p Port[T]) Port[T] {
	return n.Agents[p.Address()].slot(p.Slot())
}

// Connect wires a and b together: each is written into the other's
// slot. When both are principal ports and neither belongs to Root,
// the lower-addressed participant is queued as an active redex.
func (n *Net[T]) Connect(a, b Port[T]) {
	if a.Slot() == SlotPrincipal && b.Slot() == SlotPrincipal && !a.IsRoot() && !b.IsRoot() {
		lower := a.Address()
		if b.Address() < lower {
			lower = b.Address()
		}
		n.Active = append(n.Active, lower)
	}

	n.Agents[a.Address()].setSlot(a.Slot(), b)
	n.Agents[b.Address()].setSlot(b.Slot(), a)
}

// Disconnect severs a reciprocal edge at a, restoring both endpoints
// to self-loops. A non-reciprocal port (already a self-loop, or mid
// rewrite) is left untouched.
func (n *Net[T]) Disconnect(a Port[T]) {
	b := n.Follow(a)
	if n.Follow(b) != a {
		return
	}
	n.Agents[a.Address()].setSlot(a.Slot(), a)
	n.Agents[b.Address()].setSlot(b.Slot(), b)
}
