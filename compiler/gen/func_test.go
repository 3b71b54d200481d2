package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnake(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Color", "color"},
		{"FullName", "full_name"},
		{"HTTPCode", "http_code"},
		{"UserID", "user_id"},
		{"XMLParser", "xml_parser"},
		{"getHTTPResponse", "get_http_response"},
		{"already_snake", "already_snake"},
		{"A", "a"},
		{"ABC", "abc"},
		{"", ""},
		{"PHBOrg", "phb_org"},
		{"UserIDs", "user_ids"},
		{"Level2", "level2"},
		{"V2Status", "v2_status"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, snake(tt.input))
		})
	}
}

func TestPascal(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"RED", "Red"},
		{"DARK_BLUE", "DarkBlue"},
		{"darkBlue", "DarkBlue"},
		{"user_id", "UserID"},
		{"HTTP_ERROR", "HTTPError"},
		{"full-admin", "FullAdmin"},
		{"a", "A"},
		{"a_b", "AB"},
		{"api_url", "APIURL"},
		{"Monday", "Monday"},
		{"_", ""},
		{"NOT_FOUND_2", "NotFound2"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, pascal(tt.input))
		})
	}
}

func TestUnexport(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Color", "color"},
		{"HTTPStatus", "httpStatus"},
		{"ID", "id"},
		{"A", "a"},
		{"already", "already"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, unexport(tt.input))
		})
	}
}

func TestReceiver(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Color", "c"},
		{"HTTPStatus", "h"},
		{"Number", "e"},
		{"Order", "e"},
		{"Size", "e"},
		{"Visibility", "e"},
		{"Weekday", "w"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, receiver(tt.input))
		})
	}
}

func TestPlural(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Color", "Colors"},
		{"Category", "Categories"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, plural(tt.input))
		})
	}
}
