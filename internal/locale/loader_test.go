package locale

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en.toml": &fstest.MapFile{Data: []byte(`title = "English"

[person]
first_name = ["Ada", "Alan"]
`)},
		"locales/de_CH.json": &fstest.MapFile{Data: []byte(`{"title": "German (Switzerland)", "location": {"postcode": ["####"]}}`)},
		"locales/README.md":  &fstest.MapFile{Data: []byte("ignored")},
	}

	set, err := LoadFromFS(fsys, "locales")
	require.NoError(t, err)
	assert.Equal(t, []string{"de_CH", "en"}, set.Keys())

	r, err := NewResolver(set, "de_CH", "en", nil)
	require.NoError(t, err)

	postcode, ok := r.Entry("location", "postcode")
	require.True(t, ok)
	assert.Equal(t, []any{"####"}, postcode)

	first, ok := r.Entry("person", "first_name")
	require.True(t, ok)
	assert.Equal(t, []any{"Ada", "Alan"}, first)
}

func TestLoadFromFSErrors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{name: "no files", fsys: fstest.MapFS{"locales/notes.txt": &fstest.MapFile{}}},
		{name: "bad toml", fsys: fstest.MapFS{"locales/en.toml": &fstest.MapFile{Data: []byte("title = ")}}},
		{name: "bad json", fsys: fstest.MapFS{"locales/en.json": &fstest.MapFile{Data: []byte("{")}}},
		{name: "duplicate locale", fsys: fstest.MapFS{
			"locales/en.toml": &fstest.MapFile{Data: []byte(`title = "a"`)},
			"locales/en.json": &fstest.MapFile{Data: []byte(`{"title": "b"}`)},
		}},
		{name: "invalid key", fsys: fstest.MapFS{"locales/not a locale!.toml": &fstest.MapFile{Data: []byte(`title = "x"`)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFS(tt.fsys, "locales")
			assert.Error(t, err)
		})
	}
}

func TestTag(t *testing.T) {
	tag, err := Tag("de_CH")
	require.NoError(t, err)
	assert.Equal(t, "de-CH", tag.String())

	tag, err = Tag("en")
	require.NoError(t, err)
	assert.Equal(t, "en", tag.String())

	_, err = Tag("")
	assert.Error(t, err)
}
