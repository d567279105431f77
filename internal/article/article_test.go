package article

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_EmptyArray(t *testing.T) {
	got, err := Decode([]byte(`[]`))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDecode_NullIsEmpty(t *testing.T) {
	got, err := Decode([]byte(`null`))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDecode_PreservesOrder(t *testing.T) {
	got, err := Decode([]byte(`[{"id":2,"title":"B"},{"id":1,"title":"A","body":"ignored"}]`))
	require.NoError(t, err)

	want := []Article{
		{ID: json.RawMessage(`2`), Title: "B"},
		{ID: json.RawMessage(`1`), Title: "A"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_Malformed(t *testing.T) {
	for _, body := range []string{``, `not json`, `{"id":1,"title":"A"}`, `[{"id":1`} {
		t.Run(body, func(t *testing.T) {
			_, err := Decode([]byte(body))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformed)
			assert.NotErrorIs(t, err, ErrSchema)
		})
	}
}

func TestDecode_SchemaMismatch(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing id", `[{"title":"A"}]`},
		{"missing title", `[{"id":1}]`},
		{"null id", `[{"id":null,"title":"A"}]`},
		{"object id", `[{"id":{"n":1},"title":"A"}]`},
		{"array id", `[{"id":[1],"title":"A"}]`},
		{"numeric title", `[{"id":1,"title":7}]`},
		{"null title", `[{"id":1,"title":null}]`},
		{"element not object", `[{"id":1,"title":"A"}, "B"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.body))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSchema)
			assert.NotErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestArticle_Key(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{`1`, "1"},
		{`1.0`, "1"},
		{`"abc-123"`, "abc-123"},
		{`true`, "true"},
		{`2.5`, "2.5"},
	}
	for _, tt := range tests {
		a := Article{ID: json.RawMessage(tt.id), Title: "t"}
		assert.Equal(t, tt.want, a.Key(), "id %s", tt.id)
	}
}

func TestStatusError_Is(t *testing.T) {
	var err error = &StatusError{Code: 503}
	assert.True(t, errors.Is(err, ErrStatus))
	assert.False(t, errors.Is(err, ErrNetwork))
	assert.Equal(t, "unexpected status 503", err.Error())
}
