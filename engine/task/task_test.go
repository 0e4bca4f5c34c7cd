package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notewise/notewise/engine/core"
)

func TestParse(t *testing.T) {
	t.Run("Should accept every routed kind", func(t *testing.T) {
		for _, name := range []string{"summarize", "tags", "grammar", "glossary"} {
			kind, err := Parse(name)
			require.NoError(t, err)
			assert.Equal(t, Kind(name), kind)
		}
	})

	t.Run("Should reject an unknown task with UNKNOWN_TASK", func(t *testing.T) {
		_, err := Parse("translate")
		require.Error(t, err)
		assert.Equal(t, core.ErrUnknownTaskCode, core.CodeOf(err))
	})

	t.Run("Should reject the reserved fixerrors kind", func(t *testing.T) {
		_, err := Parse("fixerrors")
		require.Error(t, err)
		assert.Equal(t, core.ErrUnknownTaskCode, core.CodeOf(err))
	})

	t.Run("Should reject the empty string", func(t *testing.T) {
		_, err := Parse("")
		require.Error(t, err)
	})
}

func TestLookup(t *testing.T) {
	t.Run("Should resolve every defined kind to a complete definition", func(t *testing.T) {
		kinds := append(RoutedKinds(), KindFixErrors)
		for _, kind := range kinds {
			def, err := Lookup(kind)
			require.NoError(t, err, "kind %s", kind)
			assert.Equal(t, kind, def.Kind)
			assert.NotEmpty(t, def.Template.System, "kind %s has no instruction", kind)
			assert.NotEmpty(t, def.Template.Shape, "kind %s has no shape", kind)
			assert.NotNil(t, def.Normalize, "kind %s has no normalizer", kind)
		}
	})

	t.Run("Should fail for an undefined kind", func(t *testing.T) {
		_, err := Lookup(Kind("translate"))
		require.Error(t, err)
		assert.Equal(t, core.ErrUnknownTaskCode, core.CodeOf(err))
	})

	t.Run("Should assign the declared shape to each routed kind", func(t *testing.T) {
		expected := map[Kind]Shape{
			KindSummarize: ShapePlainText,
			KindTags:      ShapeTagList,
			KindGrammar:   ShapePlainText,
			KindGlossary:  ShapeGlossary,
		}
		for kind, shape := range expected {
			def, err := Lookup(kind)
			require.NoError(t, err)
			assert.Equal(t, shape, def.Template.Shape)
		}
	})
}
