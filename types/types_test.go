package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypes(t *testing.T) {
	{
		tokens := []string{"INFLOW", " outlet ", "Wall", "slip_wall", "freestream"}
		flags := []BCFLAG{BC_In, BC_Out, BC_Slip, BC_Slip, BC_Far}
		for i, token := range tokens {
			bf, err := NewBCFLAG(token)
			require.NoError(t, err)
			assert.Equal(t, flags[i], bf)
		}
		_, err := NewBCFLAG("periodic")
		assert.Error(t, err)
	}
	{
		assert.Equal(t, "SlipWall", BC_Slip.String())
		assert.Equal(t, "None", BC_None.String())
		assert.Equal(t, "JMax", JMax.String())
		assert.Equal(t, "IMin=Inflow, IMax=Outflow, JMin=SlipWall, JMax=SlipWall",
			DefaultEdgeBCs.String())
	}
	{
		e, err := NewEdge(" jmax")
		require.NoError(t, err)
		assert.Equal(t, JMax, e)
		assert.Equal(t, 1, e.Normal())
		assert.Equal(t, 0, IMin.Normal())
		_, err = NewEdge("top")
		assert.Error(t, err)
	}
	{
		eb, err := NewEdgeBCs(map[string]string{"JMax": "farfield", "IMin": "inlet"})
		require.NoError(t, err)
		assert.Equal(t, EdgeBCs{BC_In, BC_Out, BC_Slip, BC_Far}, eb)
		_, err = NewEdgeBCs(map[string]string{"JMax": "periodic"})
		assert.Error(t, err)
		_, err = NewEdgeBCs(map[string]string{"Top": "wall"})
		assert.Error(t, err)
		eb, err = NewEdgeBCs(nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultEdgeBCs, eb)
	}
}
