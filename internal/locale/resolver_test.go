package locale

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Project-Sylos/Mirage/internal/deprecation"
)

func testSet() Set {
	return Set{
		"en": Definition{
			"title": "English",
			"person": map[string]any{
				"first_name": []any{"Ada", "Alan"},
				"last_name":  []any{"Lovelace", "Turing"},
				"suffix":     "Jr.",
			},
			"location": map[string]any{
				"city_name": []any{"Springfield"},
				"postcode":  "#####",
			},
			"science": map[string]any{
				"unit": []any{"meter"},
			},
		},
		"de_CH": Definition{
			"title": "German (Switzerland)",
			"person": map[string]any{
				"last_name": []any{"Meier", "Keller"},
				"suffix":    nil,
			},
			"location": map[string]any{
				"postcode": "####",
			},
			"commerce": map[string]any{
				"department": []any{"Bücher"},
			},
		},
		"empty": Definition{},
	}
}

func newResolver(t *testing.T, primary, fallback string, notify deprecation.Notifier) *Resolver {
	t.Helper()
	r, err := NewResolver(testSet(), primary, fallback, notify)
	require.NoError(t, err)
	return r
}

func TestEntryPrecedence(t *testing.T) {
	r := newResolver(t, "de_CH", "en", nil)

	tests := []struct {
		name   string
		module string
		entry  string
		want   any
		found  bool
	}{
		{name: "primary wins", module: "person", entry: "last_name", want: []any{"Meier", "Keller"}, found: true},
		{name: "fallback fills gap", module: "person", entry: "first_name", want: []any{"Ada", "Alan"}, found: true},
		{name: "nil in primary falls through", module: "person", entry: "suffix", want: "Jr.", found: true},
		{name: "module only in primary", module: "commerce", entry: "department", want: []any{"Bücher"}, found: true},
		{name: "module only in fallback", module: "science", entry: "unit", want: []any{"meter"}, found: true},
		{name: "missing entry", module: "person", entry: "middle_name", found: false},
		{name: "missing module", module: "vehicle", entry: "model", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Entry(tt.module, tt.entry)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, got)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}

func TestMetadata(t *testing.T) {
	r := newResolver(t, "empty", "de_CH", nil)

	title, ok := r.Metadata("title")
	require.True(t, ok)
	assert.Equal(t, "German (Switzerland)", title)

	require.NoError(t, r.SetPrimary("en"))
	title, _ = r.Metadata("title")
	assert.Equal(t, "English", title)

	// Only enumerated keys are metadata.
	_, ok = r.Metadata("person")
	assert.False(t, ok)
}

func TestModuleViewCaching(t *testing.T) {
	r := newResolver(t, "de_CH", "en", nil)

	view, ok := r.Module("person")
	require.True(t, ok)
	again, _ := r.Module("person")
	assert.Same(t, view, again)
	assert.Equal(t, "person", view.Name())

	_, ok = r.Module("vehicle")
	assert.False(t, ok)

	_, ok = r.Module("title")
	assert.False(t, ok, "metadata keys are not modules")
}

func TestModuleViewFollowsLocaleChanges(t *testing.T) {
	r := newResolver(t, "de_CH", "en", nil)

	view, ok := r.Module("person")
	require.True(t, ok)
	names, _ := view.Strings("last_name")
	assert.Equal(t, []string{"Meier", "Keller"}, names)

	require.NoError(t, r.SetPrimary("en"))
	names, _ = view.Strings("last_name")
	assert.Equal(t, []string{"Lovelace", "Turing"}, names)

	fresh, _ := r.Module("person")
	assert.NotSame(t, view, fresh, "locale change drops cached views")

	_, ok = r.Module("commerce")
	assert.False(t, ok, "commerce only exists in de_CH")
}

func TestModuleViewCoercion(t *testing.T) {
	r := newResolver(t, "de_CH", "en", nil)
	view, _ := r.Module("location")

	postcode, ok := view.String("postcode")
	require.True(t, ok)
	assert.Equal(t, "####", postcode)

	_, ok = view.String("street")
	assert.False(t, ok)

	assert.Equal(t, []string{"city_name", "postcode"}, view.Entries())

	person, _ := r.Module("person")
	assert.Equal(t, []string{"first_name", "last_name", "suffix"}, person.Entries())
}

func TestSetLocaleValidation(t *testing.T) {
	r := newResolver(t, "de_CH", "en", nil)

	err := r.SetPrimary("fr")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedLocale))
	var unsupported *UnsupportedLocaleError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "fr", unsupported.Locale)
	assert.Equal(t, "de_CH", r.Primary())

	err = r.SetFallback("")
	assert.ErrorIs(t, err, ErrUnsupportedLocale)
	assert.Equal(t, "en", r.Fallback())

	_, err = NewResolver(testSet(), "en", "xx", nil)
	assert.ErrorIs(t, err, ErrUnsupportedLocale)

	nilDef := testSet()
	nilDef["broken"] = nil
	_, err = NewResolver(nilDef, "broken", "en", nil)
	assert.ErrorIs(t, err, ErrUnsupportedLocale)
}

func TestAliasesNotifyAndDelegate(t *testing.T) {
	var rec deprecation.Recorder
	r := newResolver(t, "de_CH", "en", rec.Notify)

	value, ok := r.Entry("address", "postcode")
	require.True(t, ok)
	assert.Equal(t, "####", value)

	view, ok := r.Module("name")
	require.True(t, ok)
	assert.Equal(t, "person", view.Name())
	canonical, _ := r.Module("person")
	assert.Same(t, canonical, view)

	notices := rec.Notices()
	require.Len(t, notices, 2)
	assert.Equal(t, "definitions.address", notices[0].Deprecated)
	assert.Equal(t, "definitions.location", notices[0].Proposed)
	assert.Equal(t, "definitions.name", notices[1].Deprecated)
	assert.Equal(t, "8.0", notices[1].Since)
	assert.Equal(t, "10.0", notices[1].Until)

	// Canonical names never notify.
	r.Entry("location", "postcode")
	assert.Len(t, rec.Notices(), 2)

	name, ok := Canonical("address")
	assert.True(t, ok)
	assert.Equal(t, "location", name)
	name, ok = Canonical("person")
	assert.False(t, ok)
	assert.Equal(t, "person", name)
}

func TestCloneSharesSetNotCache(t *testing.T) {
	r := newResolver(t, "de_CH", "en", nil)
	view, _ := r.Module("person")

	clone := r.Clone()
	assert.Equal(t, "de_CH", clone.Primary())
	assert.Equal(t, "en", clone.Fallback())
	cloned, _ := clone.Module("person")
	assert.NotSame(t, view, cloned)

	require.NoError(t, clone.SetPrimary("en"))
	assert.Equal(t, "de_CH", r.Primary(), "clones are independent")
}

func TestMissingDataError(t *testing.T) {
	err := error(&MissingDataError{Module: "person", Entry: "first_name"})
	assert.ErrorIs(t, err, ErrMissingLocaleData)
	assert.Equal(t, "no locale data for person.first_name", err.Error())
	assert.Equal(t, "no locale data for module vehicle", (&MissingDataError{Module: "vehicle"}).Error())
}

func TestSetKeys(t *testing.T) {
	assert.Equal(t, []string{"de_CH", "empty", "en"}, testSet().Keys())
}
