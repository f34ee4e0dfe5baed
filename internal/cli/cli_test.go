package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTeamSpec(t *testing.T) {
	name, members, err := parseTeamSpec("Reds:alice, ada")
	require.NoError(t, err)
	assert.Equal(t, "Reds", name)
	assert.Equal(t, []string{"alice", "ada"}, members)

	_, _, err = parseTeamSpec("NoMembers")
	assert.Error(t, err)

	_, _, err = parseTeamSpec(":alice")
	assert.Error(t, err)

	_, _, err = parseTeamSpec("Reds: , ,")
	assert.Error(t, err)
}

func TestParseMoney(t *testing.T) {
	n, err := parseMoney("500")
	require.NoError(t, err)
	assert.Equal(t, 500, n)

	n, err = parseMoney("$750")
	require.NoError(t, err)
	assert.Equal(t, 750, n)

	_, err = parseMoney("banana")
	assert.Error(t, err)

	_, err = parseMoney("-100")
	assert.Error(t, err)
}

func TestWheelLabel(t *testing.T) {
	assert.Equal(t, "$500", wheelLabel(WheelInfo{Kind: "MONEY", Amount: 500}))
	assert.Equal(t, "DANCE ($1001)", wheelLabel(WheelInfo{Kind: "PRIZE", Prize: "DANCE", Amount: 1001}))
	assert.Equal(t, "BANKRUPT", wheelLabel(WheelInfo{Kind: "BANKRUPT"}))
}

func TestSpaced(t *testing.T) {
	assert.Equal(t, "_ _ L L _   _ _ _ L _", spaced("__LL_ ___L_"))
	assert.Equal(t, "", spaced(""))
}
