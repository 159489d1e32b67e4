package suffixarray

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sortMatches(ms []GSAMatch) {
	sort.Slice(ms, func(i, j int) bool { return ms[i].String < ms[j].String })
	for _, m := range ms {
		sort.Slice(m.Occurrences, func(i, j int) bool { return m.Occurrences[i] < m.Occurrences[j] })
	}
}

func TestNewGSARejectsSeparatorByte(t *testing.T) {
	_, err := NewGSAFromBytes([][]byte{{'a', 0x00, 'b'}})
	assert.Error(t, err)
}

func TestGSALookupTextOrder(t *testing.T) {
	g, err := NewGSA([]string{"abzababab", "babaxyzab", "jvoabbabrpvpabewge"})
	assert.NoError(t, err)

	got := g.LookupTextOrder([]byte("ab"))
	sortMatches(got)

	assert.Equal(t, []GSAMatch{
		{String: 0, Occurrences: []int32{0, 3, 5, 7}},
		{String: 1, Occurrences: []int32{1, 7}},
		{String: 2, Occurrences: []int32{3, 6, 12}},
	}, got)
}

func TestGSALookupTextOrderEmptyPrefix(t *testing.T) {
	g, err := NewGSA([]string{"aaaaaaa"})
	assert.NoError(t, err)
	got := g.LookupTextOrder(nil)
	sortMatches(got)
	assert.Equal(t, []GSAMatch{{String: 0, Occurrences: []int32{0, 1, 2, 3, 4, 5, 6}}}, got)
}

func TestGSALookupPrefixAndSuffix(t *testing.T) {
	g, err := NewGSA([]string{"aaa", "bbbb", "ccccc"})
	assert.NoError(t, err)

	pref := g.LookupPrefix([]byte(""))
	sortMatches(pref)
	assert.Equal(t, []GSAMatch{
		{String: 0, Occurrences: []int32{0}},
		{String: 1, Occurrences: []int32{0}},
		{String: 2, Occurrences: []int32{0}},
	}, pref)

	suf := g.LookupSuffix([]byte(""))
	sortMatches(suf)
	assert.Equal(t, []GSAMatch{
		{String: 0, Occurrences: []int32{3}},
		{String: 1, Occurrences: []int32{4}},
		{String: 2, Occurrences: []int32{5}},
	}, suf)
}

func TestGSALookupPrefixSuffixNotFound(t *testing.T) {
	g, err := NewGSA([]string{"aaa", "bbbb", "ccccc"})
	assert.NoError(t, err)
	assert.Empty(t, g.LookupPrefix([]byte("x")))
	assert.Empty(t, g.LookupSuffix([]byte("x")))
}

func TestGSALookupPrefixSuffixSingleString(t *testing.T) {
	g, err := NewGSA([]string{"abbacdababaaaaaab"})
	assert.NoError(t, err)
	assert.Equal(t, []GSAMatch{{String: 0, Occurrences: []int32{0}}}, g.LookupPrefix([]byte("ab")))
	assert.Equal(t, []GSAMatch{{String: 0, Occurrences: []int32{15}}}, g.LookupSuffix([]byte("ab")))
}

func TestGSAManyStringsOccurrenceCounts(t *testing.T) {
	strs := []string{
		"abzababab",
		"babaxyzab",
		"jvoabbabrpvpabewge",
		"wcccchervabgimeog",
		"xqabqqqhfimmoabmhbaabfiq",
	}
	g, err := NewGSA(strs)
	assert.NoError(t, err)

	got := g.LookupTextOrder([]byte("ab"))
	sortMatches(got)
	assert.Len(t, got, 5)
	for i, m := range got {
		assert.Equal(t, i, m.String)
	}
}

func TestGSAEmptyInput(t *testing.T) {
	g, err := NewGSA(nil)
	assert.NoError(t, err)
	assert.Empty(t, g.LookupTextOrder([]byte("a")))
}
