package net_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vic/eacore/pkg/net"
)

func TestAddInitializesSelfLoops(t *testing.T) {
	n := net.New[uint32]()
	a := n.Add(net.Delta)

	require.Equal(t, a, n.Follow(n.Agents[a].Left).Address())
	require.Equal(t, a, n.Follow(n.Agents[a].Right).Address())
}

func TestConnectQueuesActivePairOnPrincipalMeet(t *testing.T) {
	n := net.New[uint32]()
	a := n.Add(net.Delta)
	b := n.Add(net.Delta)

	require.Empty(t, n.Active)
	n.Connect(n.Agents[a].Principal, n.Agents[b].Principal)
	require.Len(t, n.Active, 1)
}

func TestConnectThroughRootNeverQueues(t *testing.T) {
	n := net.New[uint32]()
	a := n.Add(net.Delta)
	n.Connect(n.RootPort(), n.Agents[a].Principal)
	require.Empty(t, n.Active)
}

func TestAnnihilationOfEqualTypesFreesBothAndWiresAuxPorts(t *testing.T) {
	n := net.New[uint32]()
	a := n.Add(net.Delta)
	b := n.Add(net.Delta)

	aLeftPeer := n.Add(net.Epsilon)
	n.Connect(n.Agents[a].Left, n.Agents[aLeftPeer].Principal)
	bLeftPeer := n.Add(net.Epsilon)
	n.Connect(n.Agents[b].Left, n.Agents[bLeftPeer].Principal)

	n.Connect(n.Agents[a].Principal, n.Agents[b].Principal)
	rewrites := n.ReduceAll()
	require.GreaterOrEqual(t, rewrites, 1)

	require.Equal(t, aLeftPeer, n.Follow(n.Agents[aLeftPeer].Principal).Address())
}

func TestEraseReplacesLiveAgentAuxPortsWithFreshEpsilons(t *testing.T) {
	n := net.New[uint32]()
	delta := n.Add(net.Delta)
	era := n.Add(net.Epsilon)
	peer := n.Add(net.Delta)
	n.Connect(n.Agents[delta].Left, n.Agents[peer].Left)

	n.Connect(n.Agents[delta].Principal, n.Agents[era].Principal)
	rewrites := n.ReduceAll()
	require.Equal(t, 1, rewrites)

	leftPeer := n.Follow(net.PortOf[uint32](peer, net.SlotLeft)).Address()
	require.Equal(t, net.Epsilon, n.Agents[leftPeer].Type)
}

func TestCommutationOfDistinctNonEraserTypesProducesFourFreshAgents(t *testing.T) {
	n := net.New[uint32]()
	d := n.Add(net.Delta)
	z := n.Add(net.Zeta)

	before := len(n.Agents)
	n.Connect(n.Agents[d].Principal, n.Agents[z].Principal)
	rewrites := n.ReduceAll()
	require.Equal(t, 1, rewrites)
	require.Equal(t, before+4, len(n.Agents))
}

func TestReduceRespectsMaxRewrites(t *testing.T) {
	n := net.New[uint32]()
	a := n.Add(net.Epsilon)
	b := n.Add(net.Epsilon)
	n.Connect(n.Agents[a].Principal, n.Agents[b].Principal)

	c := n.Add(net.Epsilon)
	d := n.Add(net.Epsilon)
	n.Connect(n.Agents[c].Principal, n.Agents[d].Principal)

	rewrites := n.Reduce(1)
	require.Equal(t, 1, rewrites)
	require.Len(t, n.Active, 1)
}

func TestTraceRecordsRewrites(t *testing.T) {
	n := net.New[uint32]()
	n.EnableTrace(4)

	a := n.Add(net.Epsilon)
	b := n.Add(net.Epsilon)
	n.Connect(n.Agents[a].Principal, n.Agents[b].Principal)
	n.ReduceAll()

	events := n.TraceSnapshot()
	require.Len(t, events, 1)
	require.Equal(t, net.RuleAnnihilate, events[0].Rule)
}

func TestDisableTraceStopsRecording(t *testing.T) {
	n := net.New[uint32]()
	n.EnableTrace(4)
	n.DisableTrace()

	a := n.Add(net.Epsilon)
	b := n.Add(net.Epsilon)
	n.Connect(n.Agents[a].Principal, n.Agents[b].Principal)
	n.ReduceAll()

	require.Nil(t, n.TraceSnapshot())
}

func TestCanonicalizePrunesUnreachableGarbage(t *testing.T) {
	n := net.New[uint32]()
	live := n.Add(net.Delta)
	n.Connect(n.RootPort(), n.Agents[live].Principal)

	garbage := n.Add(net.Delta)
	garbagePeer := n.Add(net.Delta)
	n.Connect(n.Agents[garbage].Principal, n.Agents[garbagePeer].Principal)

	n.Canonicalize()

	require.Equal(t, net.Delta, n.Agents[live].Type)
}
