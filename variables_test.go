package skills_installer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandVariables(t *testing.T) {
	variables := StringMap{"name": "world"}
	assert.Equal(t, "hello world", ExpandVariables("hello {{.name}}", variables))
	assert.Equal(t, "hello WORLD", ExpandVariables("hello {{upper .name}}", variables))
	assert.Equal(t, "plain", ExpandVariables("plain", variables))
}

func TestExpandVariablesInvalidTemplateReturnsInput(t *testing.T) {
	assert.Equal(t, "{{.broken", ExpandVariables("{{.broken", StringMap{}))
}

func TestMergeVariables(t *testing.T) {
	merged := MergeVariables(
		StringMap{"a": "1", "b": "2"},
		StringMap{"b": "3", "c": "4"},
	)
	assert.Equal(t, StringMap{"a": "1", "b": "3", "c": "4"}, merged)
}
