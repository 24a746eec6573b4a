package explorer

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope_Err(t *testing.T) {
	status := func(s string) *string { return &s }

	t.Run("a 2xx answer without status succeeds", func(t *testing.T) {
		assert.NoError(t, Envelope{}.Err(http.StatusOK))
	})

	t.Run("a 2xx answer with the success status succeeds", func(t *testing.T) {
		assert.NoError(t, Envelope{Status: status(StatusOK), Message: "OK"}.Err(http.StatusOK))
	})

	t.Run("a 2xx answer with a failure status fails with its message", func(t *testing.T) {
		err := Envelope{Status: status("0"), Message: "Invalid address format"}.Err(http.StatusOK)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Invalid address format", apiErr.Message)
		assert.ErrorIs(t, err, ErrUpstreamFailure)
	})

	t.Run("a non-2xx answer fails even without status", func(t *testing.T) {
		err := Envelope{Message: "Not found"}.Err(http.StatusNotFound)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Equal(t, "explorer returned status 404: Not found", err.Error())
	})

	t.Run("a failure without message still describes the status", func(t *testing.T) {
		err := Envelope{}.Err(http.StatusInternalServerError)
		assert.Equal(t, "explorer returned status 500", err.Error())
	})
}

func TestAddressInfo_Unmarshal(t *testing.T) {
	t.Run("reads the coin balance", func(t *testing.T) {
		var info AddressInfo
		require.NoError(t, json.Unmarshal([]byte(`{"hash":"0xabc","coin_balance":"42"}`), &info))

		require.NotNil(t, info.CoinBalance)
		assert.Equal(t, "42", *info.CoinBalance)
		assert.Nil(t, info.Status)
	})

	t.Run("keeps a null coin balance absent", func(t *testing.T) {
		var info AddressInfo
		require.NoError(t, json.Unmarshal([]byte(`{"hash":"0xabc","coin_balance":null}`), &info))
		assert.Nil(t, info.CoinBalance)
	})
}

func TestBlock_Unmarshal(t *testing.T) {
	var b Block
	require.NoError(t, json.Unmarshal([]byte(`{"height":8675309,"timestamp":"2024-05-01T12:00:00.000000Z","hash":"0xfeed"}`), &b))

	assert.Equal(t, "Latest block:\nNumber: 8675309\nTimestamp: 2024-05-01T12:00:00.000000Z\nHash: 0xfeed", FormatBlock(b))
}
