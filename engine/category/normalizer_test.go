package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	alpha Category = "alpha"
	beta  Category = "beta"
	gamma Category = "gamma"
)

func testNormalizer() *Normalizer {
	return TwoStage(NewSet(alpha, beta, gamma), beta, []KeywordSet{
		{Category: alpha, Keywords: []string{"first", "one"}},
		{Category: beta, Keywords: []string{"second"}},
		{Category: gamma, Keywords: []string{"third", "one"}},
	})
}

func TestNormalizer_Normalize(t *testing.T) {
	n := testNormalizer()

	t.Run("Should return canonical token regardless of case and surrounding text", func(t *testing.T) {
		assert.Equal(t, gamma, n.Normalize("Category: GAMMA."))
		assert.Equal(t, alpha, n.Normalize("  the answer is alpha\n"))
	})

	t.Run("Should prefer earlier canonical tokens when several appear", func(t *testing.T) {
		assert.Equal(t, alpha, n.Normalize("gamma or alpha"))
	})

	t.Run("Should let direct matches win over keywords", func(t *testing.T) {
		assert.Equal(t, gamma, n.Normalize("first, but really gamma"))
	})

	t.Run("Should fall back to keywords in table order", func(t *testing.T) {
		assert.Equal(t, gamma, n.Normalize("the third thing"))
		assert.Equal(t, alpha, n.Normalize("just one"))
	})

	t.Run("Should return default for empty and unmatched input", func(t *testing.T) {
		assert.Equal(t, beta, n.Normalize(""))
		assert.Equal(t, beta, n.Normalize("   \t"))
		assert.Equal(t, beta, n.Normalize("nothing relevant"))
	})

	t.Run("Should always return a member of the set", func(t *testing.T) {
		for _, in := range []string{"", "x", "alpha", "ONE", "?!", "third second"} {
			assert.True(t, n.Set().Contains(n.Normalize(in)), in)
		}
	})

	t.Run("Should be idempotent over its own output", func(t *testing.T) {
		for _, c := range n.Set() {
			assert.Equal(t, c, n.Normalize(string(c)))
		}
	})
}

func TestNewNormalizer(t *testing.T) {
	t.Run("Should panic when default is outside the set", func(t *testing.T) {
		assert.Panics(t, func() { NewNormalizer(NewSet(alpha), gamma) })
	})

	t.Run("Should panic when a rule targets a foreign category", func(t *testing.T) {
		assert.Panics(t, func() {
			NewNormalizer(NewSet(alpha), alpha, Rule{Category: gamma, Match: Contains("g")})
		})
	})

	t.Run("Should panic on duplicate categories", func(t *testing.T) {
		assert.Panics(t, func() { NewSet(alpha, alpha) })
	})
}

func TestMatchers(t *testing.T) {
	t.Run("Should combine substring predicates", func(t *testing.T) {
		assert.True(t, AllOf("order", "track")("please track my order"))
		assert.False(t, AllOf("order", "track")("my order"))
		assert.False(t, AllOf()("anything"))
		assert.True(t, AnyOf("x", "Refund")("refund please"))
		assert.True(t, Either(Contains("faq"), AllOf("a", "b"))("ab"))
		assert.True(t, Both(Contains("email"), AnyOf("outreach", "compose"))("compose an email"))
		assert.False(t, Both()("x"))
	})
}
