package assembler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ptil-org/ptil/pkg/csc"
)

func TestAssembleDropsIncompatibleRole(t *testing.T) {
	roles := map[csc.Role]csc.Entity{
		csc.RoleAgent:      csc.NewEntity("boy"),
		csc.RoleInstrument: csc.NewEntity("hammer"), // not admissible under COGNITION
	}

	got := Assemble(csc.RootCognition, nil, roles, nil)

	require.Contains(t, got.Roles, csc.RoleAgent)
	require.NotContains(t, got.Roles, csc.RoleInstrument)
	require.True(t, csc.RoleAdmissible(got.Root, csc.RoleAgent))
}

func TestAssembleKeepsValidOpsAndMeta(t *testing.T) {
	meta := csc.MetaAssertive
	got := Assemble(csc.RootMotion, []csc.Operator{csc.OpFuture, csc.OpNegation}, nil, &meta)

	require.Equal(t, []csc.Operator{csc.OpFuture, csc.OpNegation}, got.Ops)
	require.NotNil(t, got.Meta)
	require.Equal(t, csc.MetaAssertive, *got.Meta)
}

func TestAssembleDropsUnknownOperator(t *testing.T) {
	got := Assemble(csc.RootMotion, []csc.Operator{csc.OpFuture, "BOGUS"}, nil, nil)
	require.Equal(t, []csc.Operator{csc.OpFuture}, got.Ops)
}

func TestAssembleNilMetaStaysNil(t *testing.T) {
	got := Assemble(csc.RootMotion, nil, nil, nil)
	require.Nil(t, got.Meta)
}
