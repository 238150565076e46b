package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"loomstock/internal/core/entity"
	"loomstock/internal/core/id"
)

type mockMaster struct {
	entity.Base
	Code   string `db:"code" json:"code"`
	Name   string `db:"name" json:"name"`
	Hidden string `db:"-"`
	NoTag  string
}

func TestExtractDBColumns(t *testing.T) {
	cols := ExtractDBColumns[mockMaster]()

	assert.Contains(t, cols, "id")
	assert.Contains(t, cols, "created_at")
	assert.Contains(t, cols, "code")
	assert.Contains(t, cols, "name")
	assert.NotContains(t, cols, "-")
	assert.NotContains(t, cols, "Hidden")
	assert.NotContains(t, cols, "NoTag")
}

func TestStructToMap(t *testing.T) {
	m := mockMaster{
		Code:   "RM-001",
		Name:   "Cotton Yarn",
		Hidden: "skip me",
	}
	m.ID = id.New()

	got := StructToMap(m)

	assert.Equal(t, m.ID, got["id"])
	assert.Equal(t, "RM-001", got["code"])
	assert.Equal(t, "Cotton Yarn", got["name"])
	assert.NotContains(t, got, "Hidden")
	assert.NotContains(t, got, "NoTag")
}

func TestStructToMap_Pointer(t *testing.T) {
	m := &mockMaster{Code: "FG-7"}
	got := StructToMap(m)
	assert.Equal(t, "FG-7", got["code"])
}

func TestStructToMap_NonStruct(t *testing.T) {
	assert.Nil(t, StructToMap(42))
	assert.Nil(t, StructToMap("nope"))
}
