package suffixarray

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestNewMatchesBruteForce(t *testing.T) {
	tests := map[string]string{
		"empty":        "",
		"single":       "a",
		"constant":     "aaaaaaaaaa",
		"banana":       "banana",
		"abracadabra":  "abracadabra",
		"mississippi":  "mississippi",
		"alternating":  "abababababab",
		"dna":          "ACGTGCCTAGCCTACCGTGCC",
	}
	for name, s := range tests {
		t.Run(name, func(t *testing.T) {
			x, err := New([]byte(s))
			assert.NoError(t, err)
			var sym []int32
			for _, b := range []byte(s) {
				sym = append(sym, int32(b))
			}
			assert.Equal(t, makeSA(sym), x.sa)
		})
	}
}

func TestSetReusesStorage(t *testing.T) {
	x, err := New([]byte("abracadabra"))
	assert.NoError(t, err)
	oldCap := cap(x.sa)

	assert.NoError(t, x.Set([]byte("banana")))
	assert.Equal(t, 7, x.Len()+1)
	assert.LessOrEqual(t, cap(x.sa), oldCap)
	assert.Nil(t, x.bkt)

	s, sa := x.Parts()
	assert.Equal(t, []byte("banana"), s)
	assert.Len(t, sa, 7)
}

func TestFit(t *testing.T) {
	x, err := New([]byte("abracadabraabracadabra"))
	assert.NoError(t, err)
	assert.NoError(t, x.Set([]byte("a")))
	x.Fit()
	assert.Equal(t, 2, cap(x.sa))
}

func TestPartsAndIntoParts(t *testing.T) {
	x, err := New([]byte("banana"))
	assert.NoError(t, err)
	s, sa := x.Parts()
	assert.Equal(t, []byte("banana"), s)
	assert.Len(t, sa, 7)

	s2, sa2 := x.IntoParts()
	assert.Equal(t, s, s2)
	assert.Equal(t, sa, sa2)
	assert.Equal(t, 0, x.Len())
	assert.Nil(t, x.sa)
}

func TestFromPartsAccepts(t *testing.T) {
	x, err := New([]byte("mississippi"))
	assert.NoError(t, err)
	s, sa := x.Parts()
	saCopy := append([]int32(nil), sa...)

	y, err := FromParts(s, saCopy)
	assert.NoError(t, err)
	assert.Equal(t, sa, y.sa)
}

func TestFromPartsRejectsCyclicShift(t *testing.T) {
	x, err := New([]byte("mississippi"))
	assert.NoError(t, err)
	s, sa := x.Parts()

	shifted := append(append([]int32(nil), sa[1:]...), sa[0])
	_, err = FromParts(s, shifted)
	assert.ErrorIs(t, err, ErrInconsistentSA)
}

func TestFromPartsRejectsWrongLength(t *testing.T) {
	_, err := FromParts([]byte("abc"), []int32{0, 1})
	assert.ErrorIs(t, err, ErrInconsistentSA)
}

func TestFromPartsRejectsNonPermutation(t *testing.T) {
	_, err := FromParts([]byte("ab"), []int32{0, 0, 2})
	assert.ErrorIs(t, err, ErrInconsistentSA)
}

func TestUncheckedFromPartsSkipsValidation(t *testing.T) {
	x := UncheckedFromParts([]byte("abc"), []int32{9, 9, 9, 9})
	assert.Equal(t, []int32{9, 9, 9, 9}, x.sa)
}

func TestIsEmpty(t *testing.T) {
	x, err := New(nil)
	assert.NoError(t, err)
	assert.True(t, x.IsEmpty())

	y, err := New([]byte("a"))
	assert.NoError(t, err)
	assert.False(t, y.IsEmpty())
}

func TestEnableBucketsIsQueryNeutral(t *testing.T) {
	strs := []string{"banana", "mississippi", "abracadabra", "", "a", "aaaaaaa", "ACGTGCCTAGCCTACCGTGCC"}
	patterns := []string{"a", "an", "ana", "b", "iss", "issa", "z", ""}

	for _, s := range strs {
		x, err := New([]byte(s))
		assert.NoError(t, err)

		before := map[string][]int32{}
		for _, p := range patterns {
			before[p] = append([]int32(nil), x.SearchAll([]byte(p))...)
		}

		x.EnableBuckets()
		x.EnableBuckets() // idempotent

		for _, p := range patterns {
			assert.Equal(t, before[p], x.SearchAll([]byte(p)), "s=%q pat=%q", s, p)
		}
	}
}

func TestRapidPermutationAndOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 512).Draw(t, "n")
		alphabet := rapid.SampledFrom([]string{"ab", "abc", "abcdefgh"}).Draw(t, "alphabet")
		b := make([]byte, n)
		for i := range b {
			b[i] = alphabet[rand.Intn(len(alphabet))]
		}

		x, err := New(b)
		if err != nil {
			t.Fatal(err)
		}
		if !x.checkIntegrity() {
			t.Fatalf("sa is not a valid permutation/order for %q", b)
		}
	})
}

func TestRapidConstantAndMonotone(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 256).Draw(t, "n")
		kind := rapid.SampledFrom([]string{"constant", "increasing", "decreasing", "alternating"}).Draw(t, "kind")
		b := make([]byte, n)
		for i := range b {
			switch kind {
			case "constant":
				b[i] = 'x'
			case "increasing":
				b[i] = byte(i % 256)
			case "decreasing":
				b[i] = byte(255 - i%256)
			case "alternating":
				if i%2 == 0 {
					b[i] = 'a'
				} else {
					b[i] = 'b'
				}
			}
		}
		x, err := New(b)
		if err != nil {
			t.Fatal(err)
		}
		if !x.checkIntegrity() {
			t.Fatalf("sa invalid for %s string of length %d", kind, n)
		}
	})
}
