package domain_test

import (
	"strings"
	"testing"

	"github.com/niksmo/shopfront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Run("FullWidthAndCaseFold", func(t *testing.T) {
		assert.Equal(t, "abc123", domain.Normalize("ＡＢＣ123"))
	})

	t.Run("CaseFold", func(t *testing.T) {
		assert.Equal(t, "marlboro gold", domain.Normalize("Marlboro Gold"))
	})

	t.Run("PassThrough", func(t *testing.T) {
		assert.Equal(t, "南京煙", domain.Normalize("南京煙"))
	})

	t.Run("FullWidthDigits", func(t *testing.T) {
		assert.Equal(t, "100s", domain.Normalize("１００Ｓ"))
	})
}

func TestExpandVariants(t *testing.T) {
	t.Run("MappedCharacter", func(t *testing.T) {
		vs := domain.ExpandVariants("南京烟")
		require.Len(t, vs, 2)
		assert.Equal(t, "南京烟", vs[0])
		assert.Equal(t, "南京煙", vs[1])
	})

	t.Run("NoMappedCharacters", func(t *testing.T) {
		vs := domain.ExpandVariants("softpack")
		require.Len(t, vs, 1)
		assert.Equal(t, "softpack", vs[0])
	})
}

func TestSearchCatalog(t *testing.T) {
	catalog := []domain.Product{
		{Name: "南京煙", Price: 50},
		{Name: "Marlboro Gold", Price: 45},
		{Name: "Seven Stars", Price: 60},
	}

	t.Run("SingleCharacterContainment", func(t *testing.T) {
		matches := domain.SearchCatalog("gxqz", catalog)
		// only "g" occurs anywhere; one character is enough
		require.Len(t, matches, 1)
		assert.Equal(t, "Marlboro Gold", matches[0].Name)
	})

	t.Run("SimplifiedMatchesTraditional", func(t *testing.T) {
		matches := domain.SearchCatalog("烟", catalog)
		require.Len(t, matches, 1)
		assert.Equal(t, "南京煙", matches[0].Name)
	})

	t.Run("FullWidthKeyword", func(t *testing.T) {
		matches := domain.SearchCatalog("ＧＯＬＤ", catalog)
		require.NotEmpty(t, matches)
		assert.Equal(t, "Marlboro Gold", matches[0].Name)
	})

	t.Run("CatalogOrderPreserved", func(t *testing.T) {
		// "r" occurs in both english names.
		matches := domain.SearchCatalog("r", catalog)
		require.Len(t, matches, 2)
		assert.Equal(t, "Marlboro Gold", matches[0].Name)
		assert.Equal(t, "Seven Stars", matches[1].Name)
	})

	t.Run("BlankKeywordMatchesNothing", func(t *testing.T) {
		assert.Nil(t, domain.SearchCatalog("", catalog))
		assert.Nil(t, domain.SearchCatalog("   ", catalog))
	})

	t.Run("NoMatch", func(t *testing.T) {
		assert.Empty(t, domain.SearchCatalog("zzz", catalog[:1]))
	})

	t.Run("MatchesContainKeywordCharacter", func(t *testing.T) {
		keyword := domain.Normalize("Star")
		matches := domain.SearchCatalog("Star", catalog)
		require.NotEmpty(t, matches)
		for _, p := range matches {
			assert.True(
				t, strings.ContainsAny(domain.Normalize(p.Name), keyword),
			)
		}
	})
}
