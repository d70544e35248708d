package toolkit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spetersoncode/autotool"
	"github.com/spetersoncode/autotool/crud"
)

func pair(name string, verb crud.Verb) ToolPair {
	return ToolPair{
		Tool: autotool.Tool{Name: name, Description: "test tool"},
		Handler: func(ctx context.Context, call autotool.ToolCall) (string, error) {
			return "", nil
		},
		Verb: verb,
	}
}

func TestRegistryRegister(t *testing.T) {
	t.Run("registers and retrieves", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Register(pair("get_thing", crud.VerbRead)))

		assert.Equal(t, 1, r.Len())

		p, ok := r.Get("get_thing")
		assert.True(t, ok)
		assert.Equal(t, crud.VerbRead, p.Verb)

		tool, ok := r.GetTool("get_thing")
		assert.True(t, ok)
		assert.Equal(t, "get_thing", tool.Name)

		h, ok := r.Handler("get_thing")
		assert.True(t, ok)
		assert.NotNil(t, h)
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Register(pair("get_thing", crud.VerbRead)))

		err := r.Register(pair("get_thing", crud.VerbRead))
		require.Error(t, err)

		var dup *ErrDuplicateTool
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "get_thing", dup.Name)
	})

	t.Run("MustRegister panics on duplicate", func(t *testing.T) {
		r := NewRegistry()
		r.MustRegister(pair("get_thing", crud.VerbRead))

		assert.Panics(t, func() {
			r.MustRegister(pair("get_thing", crud.VerbRead))
		})
	})

	t.Run("missing lookups report absence", func(t *testing.T) {
		r := NewRegistry()

		_, ok := r.Get("nope")
		assert.False(t, ok)
		_, ok = r.GetTool("nope")
		assert.False(t, ok)
		h, ok := r.Handler("nope")
		assert.False(t, ok)
		assert.Nil(t, h)
		assert.False(t, r.Has("nope"))
	})
}

func TestRegistryByVerb(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(pair("get_thing", crud.VerbRead))
	r.MustRegister(pair("list_things", crud.VerbRead))
	r.MustRegister(pair("delete_thing", crud.VerbDelete))

	reads := r.ByVerb(crud.VerbRead)
	require.Len(t, reads, 2)
	assert.Equal(t, "get_thing", reads[0].Name)
	assert.Equal(t, "list_things", reads[1].Name)

	deletes := r.ByVerb(crud.VerbDelete)
	require.Len(t, deletes, 1)
	assert.Equal(t, "delete_thing", deletes[0].Name)

	assert.Empty(t, r.ByVerb(crud.VerbCreate))
}

func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(pair("get_thing", crud.VerbRead))
	r.MustRegister(pair("list_things", crud.VerbRead))

	r.Unregister("get_thing")

	assert.Equal(t, 1, r.Len())
	assert.False(t, r.Has("get_thing"))

	reads := r.ByVerb(crud.VerbRead)
	require.Len(t, reads, 1)
	assert.Equal(t, "list_things", reads[0].Name)

	// Unregistering an absent tool is a no-op.
	r.Unregister("nope")
	assert.Equal(t, 1, r.Len())
}

func TestRegistryNamesAndTools(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(pair("get_thing", crud.VerbRead))
	r.MustRegister(pair("delete_thing", crud.VerbDelete))

	assert.ElementsMatch(t, []string{"get_thing", "delete_thing"}, r.Names())
	assert.Len(t, r.Tools(), 2)
}
