package router

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigatorRendersByView(t *testing.T) {
	var rendered []string
	record := func(tag string) Renderer {
		return RendererFunc(func(state NavigationState) error {
			rendered = append(rendered, tag+":"+state.Param("name"))
			return nil
		})
	}

	registry := Registry{}
	for _, v := range Views() {
		registry[v] = record(v.String())
	}

	nav := NewNavigator(panelTable(t), registry)
	assert.Nil(t, nav.Current())

	_, err := nav.Navigate("/")
	require.NoError(t, err)
	_, err = nav.Navigate("/configuration/edit/eth0")
	require.NoError(t, err)

	assert.Equal(t, []string{"Statistics:", "EditPort:eth0"}, rendered)
	assert.Equal(t, "/configuration/edit/eth0", nav.Current().Path)
}

func TestNavigatorKeepsStateOnFailure(t *testing.T) {
	nav := NewNavigator(panelTable(t), Registry{
		Statistics: RendererFunc(func(NavigationState) error { return nil }),
	})

	_, err := nav.Navigate("/statistics")
	require.NoError(t, err)

	_, err = nav.Navigate("/nope")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "/statistics", nav.Current().Path)

	_, err = nav.Navigate("/diagnostic")
	require.Error(t, err, "diagnostic has no renderer")
	assert.Contains(t, err.Error(), "no renderer for view Diagnostic")
	assert.Equal(t, "/statistics", nav.Current().Path)
}

func TestNavigatorWithoutRenderer(t *testing.T) {
	nav := NewNavigator(panelTable(t), nil)

	state, err := nav.Navigate("/configuration/add")
	require.NoError(t, err)
	assert.Equal(t, AddPort, state.View())
	assert.Same(t, state, nav.Current())
}

func TestNavigationStateJSON(t *testing.T) {
	state, err := panelTable(t).Navigate("/configuration/edit/wlan1")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(state))
	assert.JSONEq(t, `{"path":"/configuration/edit/wlan1","params":{"name":"wlan1"}}`, buf.String())
}

func TestViewNames(t *testing.T) {
	for _, v := range Views() {
		parsed, err := ParseView(strings.ToLower(v.String()))
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}

	_, err := ParseView("Settings")
	assert.Error(t, err)
	assert.Equal(t, "", NoView.String())
	assert.False(t, NoView.Valid())

	data, err := json.Marshal(EditPort)
	require.NoError(t, err)
	assert.Equal(t, `"EditPort"`, string(data))

	var v View
	require.NoError(t, json.Unmarshal([]byte(`"addport"`), &v))
	assert.Equal(t, AddPort, v)
	assert.Error(t, json.Unmarshal([]byte(`"nope"`), &v))
}
