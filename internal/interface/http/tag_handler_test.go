package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tagPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestTags_RequireAuth(t *testing.T) {
	s := newTestServer(t)

	w, _ := s.do(t, http.MethodGet, tagsURL, nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = s.do(t, http.MethodPost, tagsURL, map[string]string{"name": "Vegan"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTags_CreateAndList(t *testing.T) {
	s := newTestServer(t)
	s.createUser(t, "test@gmail.com", "testpass123", "")
	s.createUser(t, "other@gmail.com", "testpass123", "")
	token := s.tokenFor(t, "test@gmail.com", "testpass123")
	other := s.tokenFor(t, "other@gmail.com", "testpass123")

	for _, name := range []string{"Dessert", "Vegan"} {
		w, env := s.do(t, http.MethodPost, tagsURL, map[string]string{"name": name}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var tag tagPayload
		require.NoError(t, json.Unmarshal(env.Data, &tag))
		assert.Equal(t, name, tag.Name)
		assert.NotEmpty(t, tag.ID)
	}
	w, _ := s.do(t, http.MethodPost, tagsURL, map[string]string{"name": "Fruity"}, other)
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := s.do(t, http.MethodGet, tagsURL, nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var tags []tagPayload
	require.NoError(t, json.Unmarshal(env.Data, &tags))
	require.Len(t, tags, 2)
	assert.Equal(t, "Vegan", tags[0].Name)
	assert.Equal(t, "Dessert", tags[1].Name)
}

func TestTags_BlankName(t *testing.T) {
	s := newTestServer(t)
	s.createUser(t, "test@gmail.com", "testpass123", "")
	token := s.tokenFor(t, "test@gmail.com", "testpass123")

	for _, name := range []string{"", "   "} {
		w, env := s.do(t, http.MethodPost, tagsURL, map[string]string{"name": name}, token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, env.Error, "name")
	}
}
