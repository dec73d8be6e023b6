package variants

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ressKim-io/emotion-classifier/internal/domain/entity"
)

func TestBuiltin(t *testing.T) {
	catalog, err := Builtin()
	require.NoError(t, err)

	assert.Equal(t, []string{"classic", "extended"}, catalog.Names())

	t.Run("classic", func(t *testing.T) {
		v, err := catalog.Get("classic")
		require.NoError(t, err)

		assert.Equal(t, []string{"happy", "sad", "nostalgic", "inspired"}, v.Labels())
		assert.Equal(t, entity.EmotionInspired, v.DefaultEmotion)
		assert.Equal(t, v.RenderPrompt(), v.SystemPrompt)
	})

	t.Run("extended", func(t *testing.T) {
		v, err := catalog.Get("extended")
		require.NoError(t, err)

		assert.Equal(t, []string{"happy", "sad", "nostalgic", "bored", "unknown"}, v.Labels())
		assert.Equal(t, entity.EmotionUnknown, v.DefaultEmotion)
		assert.Equal(t, v.RenderPrompt(), v.SystemPrompt)
	})

	t.Run("empty name selects default", func(t *testing.T) {
		v, err := catalog.Get("")
		require.NoError(t, err)
		assert.Equal(t, DefaultVariant, v.Name)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := catalog.Get("grumpy")
		assert.ErrorIs(t, err, ErrUnknownVariant)
	})
}

func TestParse(t *testing.T) {
	t.Run("renders missing prompt", func(t *testing.T) {
		catalog, err := Parse([]byte(`
variants:
  - name: tiny
    allowed_emotions: [happy, sad]
    default_emotion: sad
`))
		require.NoError(t, err)

		v, err := catalog.Get("tiny")
		require.NoError(t, err)
		assert.Contains(t, v.SystemPrompt, "happy, sad")
		assert.Contains(t, v.SystemPrompt, `respond with "sad"`)
	})

	t.Run("rejects default outside allow-list", func(t *testing.T) {
		_, err := Parse([]byte(`
variants:
  - name: broken
    allowed_emotions: [happy]
    default_emotion: sad
`))
		assert.ErrorIs(t, err, entity.ErrDefaultNotAllowed)
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		_, err := Parse([]byte(`
variants:
  - name: a
    allowed_emotions: [happy]
    default_emotion: happy
  - name: a
    allowed_emotions: [sad]
    default_emotion: sad
`))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "defined twice")
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		_, err := Parse([]byte(`
variants:
  - name: a
    allowed_emotions: [happy]
    default_emotion: happy
    temperature: 1
`))
		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Run("no file returns builtin", func(t *testing.T) {
		catalog, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, []string{"classic", "extended"}, catalog.Names())
	})

	t.Run("file overlays builtin", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "variants.yaml")
		err := os.WriteFile(path, []byte(`
variants:
  - name: classic
    allowed_emotions: [happy, sad]
    default_emotion: happy
  - name: moody
    allowed_emotions: [calm, angry, unknown]
    default_emotion: unknown
`), 0o600)
		require.NoError(t, err)

		catalog, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, []string{"classic", "extended", "moody"}, catalog.Names())
		classic, err := catalog.Get("classic")
		require.NoError(t, err)
		assert.Equal(t, []string{"happy", "sad"}, classic.Labels())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
