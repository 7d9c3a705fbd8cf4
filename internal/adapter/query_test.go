package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddParam_DropsEmptyValues(t *testing.T) {
	var params []queryParam
	params = addParam(params, "search", "")
	params = addParam(params, "status", "active")
	params = addIntParam(params, "category", 0)
	params = addIntParam(params, "page", 2)

	assert.Equal(t, []queryParam{
		{key: "status", value: "active"},
		{key: "page", value: "2"},
	}, params)
}

func TestEncodeParams_Empty(t *testing.T) {
	assert.Equal(t, "", encodeParams(nil))
	assert.Equal(t, "", encodeParams([]queryParam{}))
}

func TestEncodeParams_PreservesInsertionOrder(t *testing.T) {
	params := []queryParam{
		{key: "search", value: "laptop"},
		{key: "role", value: "buyer"},
		{key: "page", value: "3"},
	}

	// url.Values would sort these; the backend sees them in filter order.
	assert.Equal(t, "?search=laptop&role=buyer&page=3", encodeParams(params))
}

func TestEncodeParams_EscapesValues(t *testing.T) {
	params := []queryParam{
		{key: "search", value: "john doe"},
		{key: "status", value: "a&b=c"},
	}

	assert.Equal(t, "?search=john+doe&status=a%26b%3Dc", encodeParams(params))
}
